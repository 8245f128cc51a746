// Package v02 implements the "standard" TIC dialect table: the current
// Linky generation, HT-separated, horodated energy/power registers, and
// the STGE status register.
package v02

import "github.com/ticdecoder/tic2json/internal/tic"

const (
	sep                     = 0x09 // HT
	supportsEOT             = false
	trailingSepCompensation = false
)

var table = tic.Table{
	"NGTF": tic.NewEtiquette(0, "NGTF", tic.TString, tic.UnitNone, false, "nom du calendrier tarifaire fournisseur"),
	"LTARF": tic.NewEtiquette(1, "LTARF", tic.TString, tic.UnitNone, false, "libellé tarif fournisseur en cours"),
	"ADSC": tic.NewEtiquette(2, "ADSC", tic.TString, tic.UnitNone, false, "adresse secondaire du compteur"),
	"VTIC": tic.NewEtiquette(3, "VTIC", tic.TString, tic.UnitNone, false, "version de la TIC"),
	"PRM":  tic.NewEtiquette(4, "PRM", tic.TString, tic.UnitNone, false, "point référence mesure"),
	"MSG1": tic.NewEtiquette(5, "MSG1", tic.TString, tic.UnitNone, false, "message court"),
	"MSG2": tic.NewEtiquette(6, "MSG2", tic.TString, tic.UnitNone, false, "message ultra court"),

	"STGE": tic.NewEtiquette(7, "STGE", tic.THex, tic.UnitNone, false, "registre de statuts"),

	"PJOURF+1": tic.NewEtiquette(8, "PJOURF+1", tic.TProfile, tic.UnitNone, false, "profil du prochain jour calendrier fournisseur"),
	"PPOINTE":  tic.NewEtiquette(9, "PPOINTE", tic.TProfile, tic.UnitNone, false, "profil du prochain jour de pointe"),

	"EAST":    tic.NewEtiquette(10, "EAST", tic.TInt, tic.UnitWh, false, "énergie active soutirée totale"),
	"EASF01":  tic.NewEtiquette(11, "EASF01", tic.TInt, tic.UnitWh, false, "énergie active soutirée fournisseur, index 01"),
	"EASF02":  tic.NewEtiquette(12, "EASF02", tic.TInt, tic.UnitWh, false, "énergie active soutirée fournisseur, index 02"),
	"EASF03":  tic.NewEtiquette(13, "EASF03", tic.TInt, tic.UnitWh, false, "énergie active soutirée fournisseur, index 03"),
	"EASF04":  tic.NewEtiquette(14, "EASF04", tic.TInt, tic.UnitWh, false, "énergie active soutirée fournisseur, index 04"),
	"EASF05":  tic.NewEtiquette(15, "EASF05", tic.TInt, tic.UnitWh, false, "énergie active soutirée fournisseur, index 05"),
	"EASF06":  tic.NewEtiquette(16, "EASF06", tic.TInt, tic.UnitWh, false, "énergie active soutirée fournisseur, index 06"),
	"EASF07":  tic.NewEtiquette(17, "EASF07", tic.TInt, tic.UnitWh, false, "énergie active soutirée fournisseur, index 07"),
	"EASF08":  tic.NewEtiquette(18, "EASF08", tic.TInt, tic.UnitWh, false, "énergie active soutirée fournisseur, index 08"),
	"EASF09":  tic.NewEtiquette(19, "EASF09", tic.TInt, tic.UnitWh, false, "énergie active soutirée fournisseur, index 09"),
	"EASF10":  tic.NewEtiquette(20, "EASF10", tic.TInt, tic.UnitWh, false, "énergie active soutirée fournisseur, index 10"),
	"EASD01":  tic.NewEtiquette(21, "EASD01", tic.TInt, tic.UnitWh, false, "énergie active soutirée distributeur, index 01"),
	"EASD02":  tic.NewEtiquette(22, "EASD02", tic.TInt, tic.UnitWh, false, "énergie active soutirée distributeur, index 02"),
	"EASD03":  tic.NewEtiquette(23, "EASD03", tic.TInt, tic.UnitWh, false, "énergie active soutirée distributeur, index 03"),
	"EASD04":  tic.NewEtiquette(24, "EASD04", tic.TInt, tic.UnitWh, false, "énergie active soutirée distributeur, index 04"),
	"EAIT":    tic.NewEtiquette(25, "EAIT", tic.TInt, tic.UnitWh, false, "énergie active injectée totale"),
	"ERQ1":    tic.NewEtiquette(26, "ERQ1", tic.TInt, tic.UnitVArh, false, "énergie réactive Q1 totale"),
	"ERQ2":    tic.NewEtiquette(27, "ERQ2", tic.TInt, tic.UnitVArh, false, "énergie réactive Q2 totale"),
	"ERQ3":    tic.NewEtiquette(28, "ERQ3", tic.TInt, tic.UnitVArh, false, "énergie réactive Q3 totale"),
	"ERQ4":    tic.NewEtiquette(29, "ERQ4", tic.TInt, tic.UnitVArh, false, "énergie réactive Q4 totale"),

	"IRMS1": tic.NewEtiquette(30, "IRMS1", tic.TInt, tic.UnitA, false, "courant efficace, phase 1"),
	"IRMS2": tic.NewEtiquette(31, "IRMS2", tic.TInt, tic.UnitA, false, "courant efficace, phase 2"),
	"IRMS3": tic.NewEtiquette(32, "IRMS3", tic.TInt, tic.UnitA, false, "courant efficace, phase 3"),
	"URMS1": tic.NewEtiquette(33, "URMS1", tic.TInt, tic.UnitV, false, "tension efficace, phase 1"),
	"URMS2": tic.NewEtiquette(34, "URMS2", tic.TInt, tic.UnitV, false, "tension efficace, phase 2"),
	"URMS3": tic.NewEtiquette(35, "URMS3", tic.TInt, tic.UnitV, false, "tension efficace, phase 3"),
	"UMOY1": tic.NewEtiquette(36, "UMOY1", tic.TInt, tic.UnitV, true, "tension moyenne, phase 1"),
	"UMOY2": tic.NewEtiquette(37, "UMOY2", tic.TInt, tic.UnitV, true, "tension moyenne, phase 2"),
	"UMOY3": tic.NewEtiquette(38, "UMOY3", tic.TInt, tic.UnitV, true, "tension moyenne, phase 3"),

	"PREF":  tic.NewEtiquette(39, "PREF", tic.TInt, tic.UnitKVA, false, "puissance de référence"),
	"PCOUP": tic.NewEtiquette(40, "PCOUP", tic.TInt, tic.UnitKVA, false, "puissance de coupure"),

	"SINSTS":  tic.NewEtiquette(41, "SINSTS", tic.TInt, tic.UnitVA, false, "puissance apparente instantanée soutirée"),
	"SINSTS1": tic.NewEtiquette(42, "SINSTS1", tic.TInt, tic.UnitVA, false, "puissance apparente instantanée soutirée, phase 1"),
	"SINSTS2": tic.NewEtiquette(43, "SINSTS2", tic.TInt, tic.UnitVA, false, "puissance apparente instantanée soutirée, phase 2"),
	"SINSTS3": tic.NewEtiquette(44, "SINSTS3", tic.TInt, tic.UnitVA, false, "puissance apparente instantanée soutirée, phase 3"),
	"SINSTI":  tic.NewEtiquette(45, "SINSTI", tic.TInt, tic.UnitVA, false, "puissance apparente instantanée injectée"),
	"SMAXSN":  tic.NewEtiquette(46, "SMAXSN", tic.TInt, tic.UnitVA, true, "puissance apparente max soutirée n"),
	"SMAXSN1": tic.NewEtiquette(47, "SMAXSN1", tic.TInt, tic.UnitVA, true, "puissance apparente max soutirée n, phase 1"),
	"SMAXSN2": tic.NewEtiquette(48, "SMAXSN2", tic.TInt, tic.UnitVA, true, "puissance apparente max soutirée n, phase 2"),
	"SMAXSN3": tic.NewEtiquette(49, "SMAXSN3", tic.TInt, tic.UnitVA, true, "puissance apparente max soutirée n, phase 3"),
	"SMAXSN-1": tic.NewEtiquette(50, "SMAXSN-1", tic.TInt, tic.UnitVA, true, "puissance apparente max soutirée n-1"),
	"SMAXIN":  tic.NewEtiquette(51, "SMAXIN", tic.TInt, tic.UnitVA, true, "puissance apparente max injectée n"),
	"SMAXIN-1": tic.NewEtiquette(52, "SMAXIN-1", tic.TInt, tic.UnitVA, true, "puissance apparente max injectée n-1"),
	"CCASN":   tic.NewEtiquette(53, "CCASN", tic.TInt, tic.UnitW, true, "point n de la courbe de charge active soutirée"),
	"CCASN-1": tic.NewEtiquette(54, "CCASN-1", tic.TInt, tic.UnitW, true, "point n-1 de la courbe de charge active soutirée"),
	"CCAIN":   tic.NewEtiquette(55, "CCAIN", tic.TInt, tic.UnitW, true, "point n de la courbe de charge active injectée"),
	"CCAIN-1": tic.NewEtiquette(56, "CCAIN-1", tic.TInt, tic.UnitW, true, "point n-1 de la courbe de charge active injectée"),

	"DPM1": tic.NewEtiquette(57, "DPM1", tic.TInt, tic.UnitNone, true, "début mobile pointe 1"),
	"FPM1": tic.NewEtiquette(58, "FPM1", tic.TInt, tic.UnitNone, true, "fin mobile pointe 1"),
	"DPM2": tic.NewEtiquette(59, "DPM2", tic.TInt, tic.UnitNone, true, "début mobile pointe 2"),
	"FPM2": tic.NewEtiquette(60, "FPM2", tic.TInt, tic.UnitNone, true, "fin mobile pointe 2"),
	"DPM3": tic.NewEtiquette(61, "DPM3", tic.TInt, tic.UnitNone, true, "début mobile pointe 3"),
	"FPM3": tic.NewEtiquette(62, "FPM3", tic.TInt, tic.UnitNone, true, "fin mobile pointe 3"),

	"RELAIS":   tic.NewEtiquette(63, "RELAIS", tic.TInt, tic.UnitNone, false, "état des relais"),
	"NTARF":    tic.NewEtiquette(64, "NTARF", tic.TInt, tic.UnitNone, false, "numéro de l'index tarifaire en cours"),
	"NJOURF":   tic.NewEtiquette(65, "NJOURF", tic.TInt, tic.UnitNone, false, "numéro du jour calendrier fournisseur"),
	"NJOURF+1": tic.NewEtiquette(66, "NJOURF+1", tic.TInt, tic.UnitNone, false, "numéro du prochain jour calendrier fournisseur"),

	// DATE carries no data of its own: the dataset is the horodate (spec
	// §8 scenario 3, "field ::= label SEP HORODATE SEP SEP").
	"DATE": tic.NewEtiquette(67, "DATE", tic.TString, tic.UnitNone, true, "date et heure courantes"),
}

// Dialect is the "standard" dialect value, read-only and safe to share
// across decoder instances.
var Dialect = &tic.Dialect{
	Name:                    "V02",
	Sep:                     sep,
	SupportsEOT:             supportsEOT,
	TrailingSepCompensation: trailingSepCompensation,
	Table:                   table,
	ParseHorodate:           tic.ParseHorodateV02,
}
