package jsonsink

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/ticdecoder/tic2json/internal/tic"
)

func TestDictModeTvalide(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, Options{Dict: true})

	adco := tic.NewEtiquette(0, "ADCO", tic.TString, tic.UnitNone, false, "adresse du compteur")
	s.PrintField(tic.Field{Etiq: adco, IsString: true, Str: []byte("012345678901")})
	s.FrameSep()
	s.Flush()

	var got map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v, body=%s", err, buf.String())
	}
	if got["_tvalide"].(float64) != 1 {
		t.Errorf("_tvalide = %v, want 1", got["_tvalide"])
	}
	adcoOut, ok := got["ADCO"].(map[string]interface{})
	if !ok || adcoOut["data"] != "012345678901" {
		t.Errorf("ADCO = %+v", got["ADCO"])
	}
}

func TestDictModeInvalidFrame(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, Options{Dict: true})

	s.FrameErr()
	s.FrameSep()
	s.Flush()

	var got map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["_tvalide"].(float64) != 0 {
		t.Errorf("_tvalide = %v, want 0", got["_tvalide"])
	}
}

func TestZeroMaskOmitsZeroNumerics(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, Options{ZeroMask: true})

	base := tic.NewEtiquette(1, "BASE", tic.TInt, tic.UnitWh, false, "")
	s.PrintField(tic.Field{Etiq: base, Int: 0})
	s.FrameSep()
	s.Flush()

	var got []interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected zero-masked field to be omitted, got %+v", got)
	}
}

func TestFilterGatesFields(t *testing.T) {
	var buf bytes.Buffer
	f := tic.NewFilter(tic.Table{})
	f.Enable(1)
	s := New(&buf, Options{Filter: f})

	allowed := tic.NewEtiquette(1, "BASE", tic.TInt, tic.UnitWh, false, "")
	blocked := tic.NewEtiquette(2, "HCHC", tic.TInt, tic.UnitWh, false, "")
	s.PrintField(tic.Field{Etiq: allowed, Int: 5})
	s.PrintField(tic.Field{Etiq: blocked, Int: 7})
	s.FrameSep()
	s.Flush()

	var got []map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 1 || got[0]["label"] != "BASE" {
		t.Errorf("got %+v, want only BASE", got)
	}
}
