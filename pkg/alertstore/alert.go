package alertstore

import (
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/ticdecoder/tic2json/internal/tic"
)

// Transition is one STGE field that changed value and has not been
// reported before.
type Transition struct {
	Field string
	Value string
}

// Diff compares two decoded status registers field-by-field and returns
// the subset of changes that IsNew considers unseen, recording each as it
// goes. Callers pass the previously-seen register (or the zero value, on
// first call) and the freshly decoded one.
func Diff(db *bolt.DB, prev, cur tic.Stge) ([]Transition, error) {
	candidates := []Transition{
		{"DryContact", cur.DryContact},
		{"CutOffCause", cur.CutOffCause},
		{"TerminalCover", cur.TerminalCover},
		{"OvervoltagePresent", boolField(cur.OvervoltagePresent)},
		{"ExceedsReferencePower", boolField(cur.ExceedsReferencePower)},
		{"Producer", boolField(cur.Producer)},
		{"ActiveEnergyNegative", boolField(cur.ActiveEnergyNegative)},
		{"SupplierIndex", fmt.Sprintf("%d", cur.SupplierIndex)},
		{"DistributorIndex", fmt.Sprintf("%d", cur.DistributorIndex)},
		{"ClockValid", boolField(cur.ClockValid)},
		{"OutputMode", cur.OutputMode},
		{"EuridisState", cur.EuridisState},
		{"PLCStatus", cur.PLCStatus},
		{"PLCSync", boolField(cur.PLCSync)},
		{"TempoToday", cur.TempoToday},
		{"TempoTomorrow", cur.TempoTomorrow},
		{"MobilePeakWarning", cur.MobilePeakWarning},
		{"MobilePeakActive", cur.MobilePeakActive},
	}

	var out []Transition
	for _, t := range candidates {
		if !changed(prev, cur, t.Field) {
			continue
		}
		isNew, err := IsNew(db, t.Field, t.Value)
		if err != nil {
			return nil, err
		}
		if isNew {
			out = append(out, t)
		}
	}
	return out, nil
}

func boolField(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// changed compares the named field between prev and cur. A small manual
// switch rather than reflection: Stge has a fixed, known field set and
// this runs on every frame of a live agent.
func changed(prev, cur tic.Stge, field string) bool {
	switch field {
	case "DryContact":
		return prev.DryContact != cur.DryContact
	case "CutOffCause":
		return prev.CutOffCause != cur.CutOffCause
	case "TerminalCover":
		return prev.TerminalCover != cur.TerminalCover
	case "OvervoltagePresent":
		return prev.OvervoltagePresent != cur.OvervoltagePresent
	case "ExceedsReferencePower":
		return prev.ExceedsReferencePower != cur.ExceedsReferencePower
	case "Producer":
		return prev.Producer != cur.Producer
	case "ActiveEnergyNegative":
		return prev.ActiveEnergyNegative != cur.ActiveEnergyNegative
	case "SupplierIndex":
		return prev.SupplierIndex != cur.SupplierIndex
	case "DistributorIndex":
		return prev.DistributorIndex != cur.DistributorIndex
	case "ClockValid":
		return prev.ClockValid != cur.ClockValid
	case "OutputMode":
		return prev.OutputMode != cur.OutputMode
	case "EuridisState":
		return prev.EuridisState != cur.EuridisState
	case "PLCStatus":
		return prev.PLCStatus != cur.PLCStatus
	case "PLCSync":
		return prev.PLCSync != cur.PLCSync
	case "TempoToday":
		return prev.TempoToday != cur.TempoToday
	case "TempoTomorrow":
		return prev.TempoTomorrow != cur.TempoTomorrow
	case "MobilePeakWarning":
		return prev.MobilePeakWarning != cur.MobilePeakWarning
	case "MobilePeakActive":
		return prev.MobilePeakActive != cur.MobilePeakActive
	default:
		return false
	}
}
