package tic

import "strconv"

// Field is a decoded dataset: an etiquette, a discriminated payload, and
// an optional horodate. The Str/Horodate byte slices are borrowed from the
// decoder's internal lexer buffer (spec §9, "ownership of byte buffers") —
// they are only valid for the duration of the Sink callback that receives
// them. A Sink that needs to retain a Field past its callback must call
// Clone.
type Field struct {
	Etiq     Etiquette
	IsString bool
	Str      []byte // valid when IsString (T_STRING or T_PROFILE)
	Int      int64  // valid when !IsString, meaningless for T_IGN
	Horodate []byte // nil when the dataset carries no horodate
}

// Clone returns a Field whose byte slices are copies owned independently of
// the decoder's lexer buffer. Sinks that queue Field values for later
// delivery must clone; the JSON, MQTT and UDP sinks instead copy each
// field's rendered value out during PrintField and keep no Field.
func (f Field) Clone() Field {
	c := f
	if f.Str != nil {
		c.Str = append([]byte(nil), f.Str...)
	}
	if f.Horodate != nil {
		c.Horodate = append([]byte(nil), f.Horodate...)
	}
	return c
}

// DataString renders the payload the way dict/list JSON output expects it:
// a string for T_STRING/T_PROFILE, the decimal/hex-as-decimal integer
// rendering otherwise. T_IGN fields render as an empty string; callers
// normally never print them at all (see sink/jsonsink).
func (f Field) DataString() string {
	if f.Etiq.DataType() == TIgnore {
		return ""
	}
	if f.IsString {
		return string(f.Str)
	}
	return strconv.FormatInt(f.Int, 10)
}

// makeField constructs a Field from raw payload bytes per spec §4.2's
// "field construction" rules. Any dialect-specific unit reclassification
// (the V01PME trailing-suffix rule) must already have been applied to etiq
// and data by the caller.
func makeField(etiq Etiquette, data, horodate []byte) (Field, error) {
	f := Field{Etiq: etiq, Horodate: horodate}

	switch etiq.DataType() {
	case TString, TProfile:
		f.IsString = true
		f.Str = data
	case TIgnore:
		// payload discarded; bytes already folded into the checksum by
		// the scanner.
	case THex:
		n, err := strconv.ParseInt(string(data), 16, 64)
		if err != nil {
			return Field{}, &DatasetError{Label: etiq.Label, Reason: "bad hex payload: " + err.Error()}
		}
		f.Int = n
	default: // TInt
		if len(data) == 0 {
			// horodate-only dataset: no data bytes, no integer to parse.
			break
		}
		n, err := strconv.ParseInt(string(data), 10, 64)
		if err != nil {
			return Field{}, &DatasetError{Label: etiq.Label, Reason: "bad integer payload: " + err.Error()}
		}
		f.Int = n
	}
	return f, nil
}
