package tic

import (
	"reflect"
	"testing"
)

func TestDecodeDayProfile(t *testing.T) {
	payload := "00004003 06004004 22004003 NONUTILE NONUTILE NONUTILE NONUTILE NONUTILE NONUTILE NONUTILE NONUTILE"
	got := DecodeDayProfile(payload)
	want := []DayProfileSlot{
		{StartTime: "00:00", Action: 0x4003},
		{StartTime: "06:00", Action: 0x4004},
		{StartTime: "22:00", Action: 0x4003},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestDecodeDayProfileSkipsMalformedBlock(t *testing.T) {
	payload := "00004003 bogus 06004004 NONUTILE"
	got := DecodeDayProfile(payload)
	want := []DayProfileSlot{
		{StartTime: "00:00", Action: 0x4003},
		{StartTime: "06:00", Action: 0x4004},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestDecodeDayProfileCapsAtElevenSlots(t *testing.T) {
	payload := ""
	for i := 0; i < 15; i++ {
		payload += "00004003 "
	}
	got := DecodeDayProfile(payload)
	if len(got) != maxDayProfileSlots {
		t.Fatalf("got %d slots, want %d", len(got), maxDayProfileSlots)
	}
}

func TestDecodeDayProfileEmpty(t *testing.T) {
	if got := DecodeDayProfile("NONUTILE"); len(got) != 0 {
		t.Fatalf("got %+v, want empty", got)
	}
}
