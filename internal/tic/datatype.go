package tic

// DataType enumerates the payload forms a dataset's data bytes can take.
// Packed in the high 4 bits of the unittype octet (see Etiquette).
type DataType uint8

const (
	// TInt is the default: the data bytes are a base-10 signed integer.
	TInt DataType = iota
	// TString: the data bytes are an opaque ASCII string, owned verbatim.
	TString
	// THex: the data bytes are a base-16 signed integer.
	THex
	// TProfile: the data bytes are a day-profile blob (PJOURF+1/PPOINTE).
	TProfile
	// TIgnore: the dataset is parsed (and contributes to the checksum) but
	// never reaches the sink.
	TIgnore
)

// unittypeOctet packs a Unit and a DataType into one octet: high nibble is
// the DataType, low nibble is the Unit. This mirrors the reference C union
// where unittype is stored alongside the label in the etiquette table.
type unittypeOctet uint8

func packUnitType(t DataType, u Unit) unittypeOctet {
	return unittypeOctet(uint8(t)<<4 | uint8(u)&0x0F)
}

func (o unittypeOctet) dataType() DataType { return DataType(o >> 4) }
func (o unittypeOctet) unit() Unit         { return Unit(o & 0x0F) }
