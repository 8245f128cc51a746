package tic

// Stge is the decoded form of the STGE status register (spec §4.4): a
// 32-bit integer payload split into 18 disjoint bit-field keys. It is
// content-addressable — any sink can ask for it from a raw STGE Field's
// integer payload, which is why it lives in the core rather than in a
// downstream sink (spec §1).
type Stge struct {
	DryContact            string `json:"contact_sec"`
	CutOffCause           string `json:"coupure"`
	TerminalCover         string `json:"cache_borne"`
	OvervoltagePresent    bool   `json:"surtension"`
	ExceedsReferencePower bool   `json:"depassement_puissance"`
	Producer              bool   `json:"producteur"`
	ActiveEnergyNegative  bool   `json:"energie_negative"`
	SupplierIndex         int    `json:"index_fournisseur"`
	DistributorIndex      int    `json:"index_distributeur"`
	ClockValid            bool   `json:"horloge"`
	OutputMode            string `json:"mode_sortie"`
	EuridisState          string `json:"euridis"`
	PLCStatus             string `json:"cpl"`
	PLCSync               bool   `json:"cpl_sync"`
	TempoToday            string `json:"tempo_jour"`
	TempoTomorrow         string `json:"tempo_demain"`
	MobilePeakWarning     string `json:"pm_annonce"`
	MobilePeakActive      string `json:"pm_active"`
}

var stgeCutOffCauses = [8]string{
	"fermeture générale du contacteur",
	"surpuissance",
	"surtension",
	"délestage",
	"ordre CPL ou Euridis",
	"surchauffe avec réduction de puissance",
	"surchauffe avec coupure",
	"réservé",
}

var stgeEuridisStates = [4]string{"désactivée", "désactivée sans sécurité", "activée sans sécurité", "activée avec sécurité"}

var stgePLCStatuses = [4]string{"New/Unlock", "New/Lock", "Registered", "—"}

var stgeTempoColours = [4]string{"—", "bleu", "blanc", "rouge"}

var stgeMobilePeak = [4]string{"pas de préavis", "PM1", "PM2", "PM3"}

func bit(v uint32, n uint) bool { return v&(1<<n) != 0 }

func bits(v uint32, lo, hi uint) uint32 {
	mask := uint32(1)<<(hi-lo+1) - 1
	return (v >> lo) & mask
}

func boolStr(b bool, f, t string) string {
	if b {
		return t
	}
	return f
}

// DecodeStge splits a raw STGE integer payload per spec §4.4. Every table
// access below is bounds-safe by construction: every multi-bit field is
// masked to exactly its declared width, so a payload of 0xFFFFFFFF can
// never index past the end of any lookup table (spec §8, "STGE bit
// decoding").
func DecodeStge(raw uint32) Stge {
	return Stge{
		DryContact:            boolStr(bit(raw, 0), "fermé", "ouvert"),
		CutOffCause:           stgeCutOffCauses[bits(raw, 1, 3)],
		TerminalCover:         boolStr(bit(raw, 4), "fermé", "ouvert"),
		OvervoltagePresent:    bit(raw, 6),
		ExceedsReferencePower: bit(raw, 7),
		Producer:              bit(raw, 8),
		ActiveEnergyNegative:  bit(raw, 9),
		SupplierIndex:         int(bits(raw, 10, 13)) + 1,
		// Bits 14-15 carry the distributor tariff index; bit 16 is a
		// separate, standalone clock-state flag (see DESIGN.md: the
		// literal "14-16" range in the status-register table would
		// overlap the following single-bit "clock state" row, which
		// cannot be right for a well-formed bit-field register).
		DistributorIndex:  int(bits(raw, 14, 15)) + 1,
		ClockValid:        !bit(raw, 16),
		OutputMode:        boolStr(bit(raw, 17), "historique", "standard"),
		EuridisState:      stgeEuridisStates[bits(raw, 19, 20)],
		PLCStatus:         stgePLCStatuses[bits(raw, 21, 22)],
		PLCSync:           bit(raw, 23),
		TempoToday:        stgeTempoColours[bits(raw, 24, 25)],
		TempoTomorrow:     stgeTempoColours[bits(raw, 26, 27)],
		MobilePeakWarning: stgeMobilePeak[bits(raw, 28, 29)],
		MobilePeakActive:  stgeMobilePeak[bits(raw, 30, 31)],
	}
}
