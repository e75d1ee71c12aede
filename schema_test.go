package opensshkey

import (
	"math/big"
	"testing"
)

var testRSAPublicSchema = Schema{
	{Name: "e", Tag: TagMPInt},
	{Name: "n", Tag: TagMPInt},
}

func TestSchemaWriteReadRoundTrip(t *testing.T) {
	values := map[string]Value{
		"e": MPInt(big.NewInt(65537)),
		"n": MPInt(big.NewInt(1234567891)),
	}
	w := &Writer{}
	if err := testRSAPublicSchema.Write(w, values); err != nil {
		t.Fatal(err)
	}
	r := NewReader(w.Bytes())
	got, err := testRSAPublicSchema.Read(r)
	if err != nil {
		t.Fatal(err)
	}
	if !got["e"].Equal(values["e"]) || !got["n"].Equal(values["n"]) {
		t.Fatalf("round-trip mismatch: got %+v", got)
	}
}

func TestSchemaWriteMissingField(t *testing.T) {
	w := &Writer{}
	err := testRSAPublicSchema.Write(w, map[string]Value{"e": MPInt(big.NewInt(1))})
	if err == nil {
		t.Fatal("expected error for missing field")
	}
}

func TestSchemaWriteWrongType(t *testing.T) {
	w := &Writer{}
	err := testRSAPublicSchema.Write(w, map[string]Value{
		"e": Text("not an mpint"),
		"n": MPInt(big.NewInt(1)),
	})
	if err == nil {
		t.Fatal("expected error for field of the wrong type")
	}
}

func TestSchemaWriteNegativeMPIntRejected(t *testing.T) {
	w := &Writer{}
	err := testRSAPublicSchema.Write(w, map[string]Value{
		"e": MPInt(big.NewInt(-1)),
		"n": MPInt(big.NewInt(1)),
	})
	if err == nil {
		t.Fatal("expected error for negative mpint in a non-negative field")
	}
}

func TestSchemaCheckMatchesWarnsOnMissingField(t *testing.T) {
	sink := &CollectSink{}
	testRSAPublicSchema.CheckMatches(map[string]Value{"e": MPInt(big.NewInt(1))}, sink)
	if len(sink.Warnings) != 1 || sink.Warnings[0].Kind != WarnSoftValidationFailed {
		t.Fatalf("expected one soft validation warning, got %+v", sink.Warnings)
	}
}

func TestSchemaCheckMatchesWarnsOnWrongType(t *testing.T) {
	sink := &CollectSink{}
	testRSAPublicSchema.CheckMatches(map[string]Value{
		"e": Text("wrong kind"),
		"n": MPInt(big.NewInt(1)),
	}, sink)
	if len(sink.Warnings) != 1 {
		t.Fatalf("expected one soft validation warning, got %+v", sink.Warnings)
	}
}

func TestSchemaCheckMatchesSilentOnGoodValues(t *testing.T) {
	sink := &CollectSink{}
	testRSAPublicSchema.CheckMatches(map[string]Value{
		"e": MPInt(big.NewInt(1)),
		"n": MPInt(big.NewInt(2)),
	}, sink)
	if len(sink.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %+v", sink.Warnings)
	}
}

func TestSchemaFixedBytesLength(t *testing.T) {
	s := Schema{{Name: "nonce", Tag: TagFixedBytes, Len: 4}}
	w := &Writer{}
	if err := s.Write(w, map[string]Value{"nonce": BytesValue([]byte{1, 2, 3})}); err == nil {
		t.Fatal("expected error for wrong-length fixed bytes field")
	}
	if err := s.Write(w, map[string]Value{"nonce": BytesValue([]byte{1, 2, 3, 4})}); err != nil {
		t.Fatal(err)
	}
	r := NewReader(w.Bytes())
	got, err := s.Read(r)
	if err != nil {
		t.Fatal(err)
	}
	if len(got["nonce"].Bytes) != 4 {
		t.Fatalf("expected 4 bytes, got %d", len(got["nonce"].Bytes))
	}
}
