package tic

import "testing"

func TestParseHorodateV02(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"E210715143012", 13},
		{" 210715143012", 13},
		{"H210715143012", 13},
		{"X210715143012", 0}, // invalid season byte
		{"E21071514301", 0},  // too short
		// ParseHorodateV02 matches a fixed-length token positionally (spec
		// §4.1 "HORODATE regex"): trailing bytes after the 13th are not its
		// concern, the scanner decides what they mean (more data, a
		// separator, ...).
		{"E2107151430122", 13},
		{"E21071a143012", 0}, // non-digit
	}
	for _, c := range cases {
		if got := ParseHorodateV02([]byte(c.in)); got != c.want {
			t.Errorf("ParseHorodateV02(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseHorodateV01PME(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"15/07/21 14:30:12", 17},
		{"15-07/21 14:30:12", 0}, // wrong separator
		{"15/07/21 14:30:1", 0},  // too short
	}
	for _, c := range cases {
		if got := ParseHorodateV01PME([]byte(c.in)); got != c.want {
			t.Errorf("ParseHorodateV01PME(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestFormatISOV02(t *testing.T) {
	got, err := FormatISOV02([]byte("E210715143012"))
	if err != nil {
		t.Fatalf("FormatISOV02: %v", err)
	}
	if want := "2021-07-15T14:30:12+02:00"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	got, err = FormatISOV02([]byte("H210715143012"))
	if err != nil {
		t.Fatalf("FormatISOV02: %v", err)
	}
	if want := "2021-07-15T14:30:12+01:00"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	got, err = FormatISOV02([]byte(" 210715143012"))
	if err != nil {
		t.Fatalf("FormatISOV02: %v", err)
	}
	if want := "2021-07-15T14:30:12"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatISOV01PME(t *testing.T) {
	got, err := FormatISOV01PME([]byte("15/07/21 14:30:12"))
	if err != nil {
		t.Fatalf("FormatISOV01PME: %v", err)
	}
	if want := "2021-07-15T14:30:12"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
