package tic

import "testing"

func TestMakeFieldHexPayload(t *testing.T) {
	etiq := NewEtiquette(0, "STGE", THex, UnitNone, false, "")
	f, err := makeField(etiq, []byte("1A"), nil)
	if err != nil {
		t.Fatalf("makeField: %v", err)
	}
	if f.Int != 0x1A {
		t.Errorf("got %d, want %d", f.Int, 0x1A)
	}
}

func TestMakeFieldBadIntegerPayload(t *testing.T) {
	etiq := NewEtiquette(0, "BASE", TInt, UnitWh, false, "")
	if _, err := makeField(etiq, []byte("not-a-number"), nil); err == nil {
		t.Fatal("expected an error for a non-numeric payload")
	}
}

func TestFieldCloneIsIndependent(t *testing.T) {
	etiq := NewEtiquette(0, "ADCO", TString, UnitNone, false, "")
	backing := []byte("012345678901")
	f := Field{Etiq: etiq, IsString: true, Str: backing}

	clone := f.Clone()
	backing[0] = 'X'

	if string(clone.Str) == string(backing) {
		t.Errorf("clone shares storage with the original: %q", clone.Str)
	}
	if string(clone.Str) != "012345678901" {
		t.Errorf("clone mutated unexpectedly: %q", clone.Str)
	}
}

func TestDataStringIgnoredField(t *testing.T) {
	etiq := NewEtiquette(0, "IGN1", TIgnore, UnitNone, false, "")
	f := Field{Etiq: etiq, Int: 42}
	if got := f.DataString(); got != "" {
		t.Errorf("T_IGN DataString() = %q, want empty", got)
	}
}
