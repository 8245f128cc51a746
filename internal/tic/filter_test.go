package tic

import (
	"strings"
	"testing"
)

func TestLoadFilterAllowsOnlyListedLabels(t *testing.T) {
	f, err := LoadFilter(testDialect, strings.NewReader("#ticfilter\nADCO BASE\n"))
	if err != nil {
		t.Fatalf("LoadFilter: %v", err)
	}

	adco, _ := testDialect.lookup("ADCO")
	base, _ := testDialect.lookup("BASE")
	hex1, _ := testDialect.lookup("HEX1")

	if !f.Allows(adco.ID) || !f.Allows(base.ID) {
		t.Errorf("filter should allow ADCO and BASE")
	}
	if f.Allows(hex1.ID) {
		t.Errorf("filter should not allow HEX1")
	}
}

func TestLoadFilterMissingHeader(t *testing.T) {
	_, err := LoadFilter(testDialect, strings.NewReader("ADCO\n"))
	if err == nil {
		t.Fatal("expected error for missing #ticfilter header")
	}
	if _, ok := err.(*ConfigError); !ok {
		t.Errorf("expected *ConfigError, got %T", err)
	}
}

func TestLoadFilterUnknownLabel(t *testing.T) {
	_, err := LoadFilter(testDialect, strings.NewReader("#ticfilter\nNOPE\n"))
	if err == nil {
		t.Fatal("expected error for unknown label")
	}
}

func TestFilterNilAllowsEverything(t *testing.T) {
	var f *Filter
	if !f.Allows(200) {
		t.Errorf("nil filter should allow any tag id")
	}
}
