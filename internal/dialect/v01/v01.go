// Package v01 implements the "historique" TIC dialect table: the oldest
// and simplest of the three, one tariff meter generation behind V02, with
// no horodate at all and a space (SP) separator.
package v01

import "github.com/ticdecoder/tic2json/internal/tic"

const (
	sep                     = 0x20 // SP
	supportsEOT             = true
	trailingSepCompensation = true // SP cancels in the checksum fold
)

var table = tic.Table{
	"ADCO":    tic.NewEtiquette(0, "ADCO", tic.TString, tic.UnitNone, false, "adresse du compteur"),
	"OPTARIF": tic.NewEtiquette(1, "OPTARIF", tic.TString, tic.UnitNone, false, "option tarifaire choisie"),
	"ISOUSC":  tic.NewEtiquette(2, "ISOUSC", tic.TInt, tic.UnitA, false, "intensité souscrite"),

	"BASE":   tic.NewEtiquette(3, "BASE", tic.TInt, tic.UnitWh, false, "index option base"),
	"HCHC":   tic.NewEtiquette(4, "HCHC", tic.TInt, tic.UnitWh, false, "index heures creuses"),
	"HCHP":   tic.NewEtiquette(5, "HCHP", tic.TInt, tic.UnitWh, false, "index heures pleines"),
	"EJPHN":  tic.NewEtiquette(6, "EJPHN", tic.TInt, tic.UnitWh, false, "index heures normales EJP"),
	"EJPHPM": tic.NewEtiquette(7, "EJPHPM", tic.TInt, tic.UnitWh, false, "index heures de pointe mobile EJP"),
	"BBRHCJB": tic.NewEtiquette(8, "BBRHCJB", tic.TInt, tic.UnitWh, false, "index heures creuses jours bleus"),
	"BBRHPJB": tic.NewEtiquette(9, "BBRHPJB", tic.TInt, tic.UnitWh, false, "index heures pleines jours bleus"),
	"BBRHCJW": tic.NewEtiquette(10, "BBRHCJW", tic.TInt, tic.UnitWh, false, "index heures creuses jours blancs"),
	"BBRHPJW": tic.NewEtiquette(11, "BBRHPJW", tic.TInt, tic.UnitWh, false, "index heures pleines jours blancs"),
	"BBRHCJR": tic.NewEtiquette(12, "BBRHCJR", tic.TInt, tic.UnitWh, false, "index heures creuses jours rouges"),
	"BBRHPJR": tic.NewEtiquette(13, "BBRHPJR", tic.TInt, tic.UnitWh, false, "index heures pleines jours rouges"),

	"PEJP": tic.NewEtiquette(14, "PEJP", tic.TInt, tic.UnitMin, false, "préavis début EJP"),

	"PTEC":    tic.NewEtiquette(15, "PTEC", tic.TString, tic.UnitNone, false, "période tarifaire en cours"),
	"DEMAIN":  tic.NewEtiquette(16, "DEMAIN", tic.TString, tic.UnitNone, false, "couleur du lendemain"),
	"HHPHC":   tic.NewEtiquette(17, "HHPHC", tic.TString, tic.UnitNone, false, "horaire heures pleines/heures creuses"),
	"MOTDETAT": tic.NewEtiquette(18, "MOTDETAT", tic.TString, tic.UnitNone, false, "mot d'état du compteur"),
	"PPOT":    tic.NewEtiquette(19, "PPOT", tic.TString, tic.UnitNone, false, "présence des potentiels"),

	"IINST":  tic.NewEtiquette(20, "IINST", tic.TInt, tic.UnitA, false, "intensité instantanée"),
	"IINST1": tic.NewEtiquette(21, "IINST1", tic.TInt, tic.UnitA, false, "intensité instantanée phase 1"),
	"IINST2": tic.NewEtiquette(22, "IINST2", tic.TInt, tic.UnitA, false, "intensité instantanée phase 2"),
	"IINST3": tic.NewEtiquette(23, "IINST3", tic.TInt, tic.UnitA, false, "intensité instantanée phase 3"),
	"ADPS":   tic.NewEtiquette(24, "ADPS", tic.TInt, tic.UnitA, false, "avertissement de dépassement de puissance souscrite"),
	"IMAX":   tic.NewEtiquette(25, "IMAX", tic.TInt, tic.UnitA, false, "intensité maximale appelée"),
	"IMAX1":  tic.NewEtiquette(26, "IMAX1", tic.TInt, tic.UnitA, false, "intensité maximale appelée phase 1"),
	"IMAX2":  tic.NewEtiquette(27, "IMAX2", tic.TInt, tic.UnitA, false, "intensité maximale appelée phase 2"),
	"IMAX3":  tic.NewEtiquette(28, "IMAX3", tic.TInt, tic.UnitA, false, "intensité maximale appelée phase 3"),
	"ADIR1":  tic.NewEtiquette(29, "ADIR1", tic.TInt, tic.UnitA, false, "avertissement de dépassement ADPS phase 1"),
	"ADIR2":  tic.NewEtiquette(30, "ADIR2", tic.TInt, tic.UnitA, false, "avertissement de dépassement ADPS phase 2"),
	"ADIR3":  tic.NewEtiquette(31, "ADIR3", tic.TInt, tic.UnitA, false, "avertissement de dépassement ADPS phase 3"),

	"PMAX": tic.NewEtiquette(32, "PMAX", tic.TInt, tic.UnitW, false, "puissance maximale triphasée atteinte"),
	"PAPP": tic.NewEtiquette(33, "PAPP", tic.TInt, tic.UnitVA, false, "puissance apparente"),

	// GAZ/AUTRE carry no fixed interpretation in the reference tables;
	// decided as ordinary no-horodate string entries (Open Question a).
	"GAZ":   tic.NewEtiquette(34, "GAZ", tic.TString, tic.UnitNone, false, "index compteur gaz associé (télé-report)"),
	"AUTRE": tic.NewEtiquette(35, "AUTRE", tic.TString, tic.UnitNone, false, "index compteur tiers associé (télé-report)"),
}

// Dialect is the "historique" dialect value, read-only and safe to share
// across decoder instances.
var Dialect = &tic.Dialect{
	Name:                    "V01",
	Sep:                     sep,
	SupportsEOT:             supportsEOT,
	TrailingSepCompensation: trailingSepCompensation,
	Table:                   table,
	ParseHorodate:           func([]byte) int { return 0 }, // historique carries no horodate
}
