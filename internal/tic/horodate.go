package tic

import "fmt"

// ParseHorodateV02 recognises the V02 horodate pattern at the start of
// peek: one season byte in {space,E,e,H,h} followed by 12 decimal digits
// (spec §4.1 "HORODATE pattern"). Like the scanner's "Data | HORODATE
// regex" production, this matches a fixed-length token positionally and
// does not care what follows it in peek — the caller (closeDataset) is
// responsible for consuming exactly the returned length and treating the
// rest of peek as whatever comes after the horodate. Returns 13 when the
// first 13 bytes of peek form a valid horodate, else 0.
func ParseHorodateV02(peek []byte) int {
	if len(peek) < 13 {
		return 0
	}
	switch peek[0] {
	case ' ', 'E', 'e', 'H', 'h':
	default:
		return 0
	}
	for _, c := range peek[1:13] {
		if c < '0' || c > '9' {
			return 0
		}
	}
	return 13
}

// ParseHorodateV01PME recognises the V01PME "JJ/MM/AA HH:MM:SS" pattern
// (17 bytes) at the start of peek. V01PME's horodate embeds the dialect's
// own separator byte (SP, 0x20) between date and time, so it must be
// recognised by this fixed-length positional match rather than by
// splitting the dataset on separator bytes — splitting would cut the
// horodate itself in two (spec §4.1 "HORODATE regex").
func ParseHorodateV01PME(peek []byte) int {
	if len(peek) < 17 {
		return 0
	}
	layout := "DD/MM/YY HH:MM:SS"
	for i := 0; i < 17; i++ {
		c := peek[i]
		switch layout[i] {
		case '/', ' ', ':':
			if c != layout[i] {
				return 0
			}
		default:
			if c < '0' || c > '9' {
				return 0
			}
		}
	}
	return 17
}

// FormatISOV02 re-emits a V02 horodate in ISO-8601 with the season-derived
// UTC offset (spec §6 "long-date format", spec §8 "Horodate formatting"):
// E/e -> +02:00 (summer), H/h -> +01:00 (winter), space -> no offset.
func FormatISOV02(raw []byte) (string, error) {
	if len(raw) != 13 {
		return "", fmt.Errorf("tic: bad V02 horodate length %d", len(raw))
	}
	season := raw[0]
	yy, mo, dd := raw[1:3], raw[3:5], raw[5:7]
	hh, mi, ss := raw[7:9], raw[9:11], raw[11:13]

	var offset string
	switch season {
	case 'E', 'e':
		offset = "+02:00"
	case 'H', 'h':
		offset = "+01:00"
	case ' ':
		offset = ""
	default:
		return "", fmt.Errorf("tic: bad V02 horodate season byte 0x%02X", season)
	}
	return fmt.Sprintf("20%s-%s-%sT%s:%s:%s%s", yy, mo, dd, hh, mi, ss, offset), nil
}

// FormatISOV01PME re-emits a V01PME "JJ/MM/AA HH:MM:SS" horodate as
// ISO-8601 with no offset: V01PME carries no DST hint (spec §6).
func FormatISOV01PME(raw []byte) (string, error) {
	if len(raw) != 17 {
		return "", fmt.Errorf("tic: bad V01PME horodate length %d", len(raw))
	}
	dd, mo, yy := raw[0:2], raw[3:5], raw[6:8]
	hh, mi, ss := raw[9:11], raw[12:14], raw[15:17]
	return fmt.Sprintf("20%s-%s-%sT%s:%s:%s", yy, mo, dd, hh, mi, ss), nil
}
