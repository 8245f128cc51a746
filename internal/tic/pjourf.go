package tic

import (
	"fmt"
	"strconv"
	"strings"
)

// DayProfileSlot is one entry of a decoded PJOURF+1/PPOINTE payload (spec
// §4.5): a start time and the 16-bit action code active from that time.
type DayProfileSlot struct {
	StartTime string `json:"start_time"`
	Action    uint16 `json:"action"`
}

// maxDayProfileSlots bounds the decoded list: spec §4.5 caps the wire
// format at 11 blocks.
const maxDayProfileSlots = 11

// DecodeDayProfile parses a string of up to 11 whitespace-separated
// 8-char HHMMSSSS blocks, stopping at (and excluding) the first literal
// NONUTILE marker. A block whose 4-digit action field is not valid hex is
// skipped — spec Open Question (b) leaves the action width at 16 bits
// without mandating how a malformed block fails; skipping and continuing
// keeps one bad block from discarding the rest of a valid profile.
func DecodeDayProfile(payload string) []DayProfileSlot {
	slots := make([]DayProfileSlot, 0, maxDayProfileSlots)
	for _, block := range strings.Fields(payload) {
		if block == "NONUTILE" {
			break
		}
		if len(slots) >= maxDayProfileSlots {
			break
		}
		slot, ok := decodeDayProfileBlock(block)
		if !ok {
			continue
		}
		slots = append(slots, slot)
	}
	return slots
}

func decodeDayProfileBlock(block string) (DayProfileSlot, bool) {
	if len(block) != 8 {
		return DayProfileSlot{}, false
	}
	hh, mm := block[0:2], block[2:4]
	if _, err := strconv.Atoi(hh); err != nil {
		return DayProfileSlot{}, false
	}
	if _, err := strconv.Atoi(mm); err != nil {
		return DayProfileSlot{}, false
	}
	action, err := strconv.ParseUint(block[4:8], 16, 16)
	if err != nil {
		return DayProfileSlot{}, false
	}
	return DayProfileSlot{
		StartTime: fmt.Sprintf("%s:%s", hh, mm),
		Action:    uint16(action),
	}, true
}
