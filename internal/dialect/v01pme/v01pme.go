// Package v01pme implements the PME-PMI variant of the "historique"
// dialect used by commercial/professional meters: it shares V01's
// separator and checksum quirk but adds horodated fundamentals and
// parameterised "poste horaire" label families.
package v01pme

import (
	"strconv"
	"strings"

	"github.com/ticdecoder/tic2json/internal/tic"
)

const (
	sep                     = 0x20 // SP
	supportsEOT             = true
	trailingSepCompensation = true
)

// nPostes is the number of tariff "postes horaires" a PME-PMI meter
// exposes: DATEPA1..DATEPA4 and PA1_S/PA1_I..PA4_S/PA4_I.
const nPostes = 4

var table = tic.Table{
	"ADCO":    tic.NewEtiquette(0, "ADCO", tic.TString, tic.UnitNone, false, "adresse du compteur"),
	"OPTARIF": tic.NewEtiquette(1, "OPTARIF", tic.TString, tic.UnitNone, false, "option tarifaire choisie"),
	"ISOUSC":  tic.NewEtiquette(2, "ISOUSC", tic.TInt, tic.UnitA, false, "intensité souscrite"),
	"PS":      tic.NewEtiquette(3, "PS", tic.TInt, tic.UnitKW, false, "puissance souscrite"),

	"DATE":    tic.NewEtiquette(4, "DATE", tic.TString, tic.UnitNone, true, "date et heure courante"),
	"DEBP":    tic.NewEtiquette(5, "DEBP", tic.TString, tic.UnitNone, true, "début de la période de pointe mobile en cours"),
	"DEBP-1":  tic.NewEtiquette(6, "DEBP-1", tic.TString, tic.UnitNone, true, "début de la période de pointe mobile précédente"),
	"FINP-1":  tic.NewEtiquette(7, "FINP-1", tic.TString, tic.UnitNone, true, "fin de la période de pointe mobile précédente"),
	"PREAVIS": tic.NewEtiquette(8, "PREAVIS", tic.TInt, tic.UnitMin, false, "préavis de pointe mobile"),

	"EAS":   tic.NewEtiquette(9, "EAS", tic.TInt, tic.UnitKWh, false, "énergie active soutirée totale"),
	"EAPS":  tic.NewEtiquette(10, "EAPS", tic.TInt, tic.UnitKWh, false, "énergie active soutirée en pointe mobile"),
	"ERS":   tic.NewEtiquette(11, "ERS", tic.TInt, tic.UnitKVArh, false, "énergie réactive soutirée totale"),
	"PTCOUR": tic.NewEtiquette(12, "PTCOUR", tic.TIgnore, tic.UnitNone, false, "code de la période tarifaire en cours (dynamique, non exposé)"),
	"TNF":    tic.NewEtiquette(13, "TNF", tic.TIgnore, tic.UnitNone, false, "tangente phi (coefficient réactif, non exposé)"),

	// SANS-unit numeric label subject to the V01PME trailing-suffix
	// reclassification (spec §4.3, §8 scenario 5): wire payload ends in
	// 'A' (kVA) or 'W' (kW).
	"PS_C": tic.NewEtiquette(14, "PS_C", tic.TInt, tic.UnitNone, false, "puissance de référence contractuelle courante"),
}

const firstParamID uint8 = 15 // first dense id handed to a parameterised family instance

// lookupParam recognises the DATEPAx / PAx_S / PAx_I families, patching the
// poste digit into a fresh Etiquette built from a shared template the way
// spec §4.3 describes ("a single label string template that the scanner
// patches in place"). x ranges 1..nPostes.
func lookupParam(label string) (tic.Etiquette, bool) {
	if strings.HasPrefix(label, "DATEPA") {
		digit := label[len("DATEPA"):]
		n, ok := posteNumber(digit)
		if !ok {
			return tic.Etiquette{}, false
		}
		return tic.NewEtiquette(firstParamID+n-1, label, tic.TString, tic.UnitNone, true,
			"date de début du poste horaire "+digit), true
	}
	if strings.HasPrefix(label, "PA") {
		rest := label[len("PA"):]
		digit, suffix, ok := splitPosteSuffix(rest)
		if !ok {
			return tic.Etiquette{}, false
		}
		n, ok := posteNumber(digit)
		if !ok {
			return tic.Etiquette{}, false
		}
		base := firstParamID + nPostes + (n-1)*2
		switch suffix {
		case "_S":
			return tic.NewEtiquette(base, label, tic.TInt, tic.UnitKWh, false,
				"énergie active soutirée, poste "+digit), true
		case "_I":
			return tic.NewEtiquette(base+1, label, tic.TInt, tic.UnitKWh, false,
				"énergie active injectée, poste "+digit), true
		}
	}
	return tic.Etiquette{}, false
}

func posteNumber(digit string) (uint8, bool) {
	n, err := strconv.Atoi(digit)
	if err != nil || n < 1 || n > nPostes {
		return 0, false
	}
	return uint8(n), true
}

func splitPosteSuffix(rest string) (digit, suffix string, ok bool) {
	if strings.HasSuffix(rest, "_S") {
		return strings.TrimSuffix(rest, "_S"), "_S", true
	}
	if strings.HasSuffix(rest, "_I") {
		return strings.TrimSuffix(rest, "_I"), "_I", true
	}
	return "", "", false
}

func lookup(label string) (tic.Etiquette, bool) {
	if e, ok := table.Lookup(label); ok {
		return e, true
	}
	return lookupParam(label)
}

// reclassifyUnit implements the V01PME trailing-suffix-letter rule (spec
// §4.3, §8 scenario 5): a numeric field whose table unit is SANS but whose
// wire payload ends in 'A' or 'W' is reclassified to kVA/kW, and the
// suffix byte is stripped before integer parsing.
func reclassifyUnit(etiq tic.Etiquette, data []byte) (tic.Etiquette, []byte) {
	if etiq.Unit() != tic.UnitNone || etiq.DataType() != tic.TInt || len(data) == 0 {
		return etiq, data
	}
	switch data[len(data)-1] {
	case 'A':
		return etiq.WithUnit(tic.UnitKVA), data[:len(data)-1]
	case 'W':
		return etiq.WithUnit(tic.UnitKW), data[:len(data)-1]
	default:
		return etiq, data
	}
}

// Dialect is the PME-PMI dialect value, read-only and safe to share across
// decoder instances.
var Dialect = &tic.Dialect{
	Name:                    "V01PME",
	Sep:                     sep,
	SupportsEOT:             supportsEOT,
	TrailingSepCompensation: trailingSepCompensation,
	Table:                   table,
	Lookup:                  lookup,
	ParseHorodate:           tic.ParseHorodateV01PME,
	ReclassifyUnit:          reclassifyUnit,
}
