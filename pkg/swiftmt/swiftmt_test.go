package swiftmt

import (
	"strings"
	"testing"

	"github.com/deltran/swiftmt/internal/config"
)

const sampleMT103Wire = "{1:F01BANKDEFFAXXX0000000001}" +
	"{2:I103BANKDEFFXXXXN}" +
	"{4:\n" +
	":20:REF123456\n" +
	":23B:CRED\n" +
	":32A:231225USD1234,56\n" +
	":50K:/12345678\n" +
	"ORDERING CUSTOMER\n" +
	":59:/98765432\n" +
	"BENEFICIARY\n" +
	":33B:USD1234,56\n" +
	":71A:SHA\n" +
	"-}"

func TestParseAutoDispatchesMT103(t *testing.T) {
	pm, rep, err := ParseAuto([]byte(sampleMT103Wire), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pm.MessageType != "103" {
		t.Errorf("MessageType = %q, want 103", pm.MessageType)
	}
	if pm.MT103 == nil {
		t.Fatal("expected MT103 to be populated")
	}
	if pm.MT202 != nil || pm.MT110 != nil || pm.Generic != nil {
		t.Error("expected only MT103 to be populated")
	}
	if !rep.Valid() {
		t.Errorf("expected no NVR violations for a well-formed message with matching BIC countries, got %v", rep.Errors)
	}
}

func TestParseAutoRejectsUnsupportedMessageType(t *testing.T) {
	raw := strings.Replace(sampleMT103Wire, "I103", "I999", 1)
	if _, _, err := ParseAuto([]byte(raw), nil); err == nil {
		t.Error("expected error for an unsupported message type")
	}
}

func TestParseAutoRejectsOversizedMessage(t *testing.T) {
	cfg := config.Default()
	cfg.Parser.MaxMessageBytes = 10
	if _, _, err := ParseAuto([]byte(sampleMT103Wire), cfg); err == nil {
		t.Error("expected error when the message exceeds the configured maximum size")
	}
}

func TestParseAutoDefaultsConfigWhenNil(t *testing.T) {
	if _, _, err := ParseAuto([]byte(sampleMT103Wire), nil); err != nil {
		t.Fatalf("expected ParseAuto(raw, nil) to use config.Default(): %v", err)
	}
}

func TestParseAutoShortCircuitStopsAtFirstViolation(t *testing.T) {
	// give 33B a currency that mismatches 32A without a compensating 36,
	// which trips both C1 and (for a DE/DE BIC pair) nothing else here.
	raw := strings.Replace(sampleMT103Wire, ":33B:USD1234,56", ":33B:EUR1234,56", 1)
	cfg := config.Default()
	cfg.Validation.ShortCircuit = true
	_, rep, err := ParseAuto([]byte(raw), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rep.Errors) == 0 {
		t.Fatal("expected at least one NVR violation")
	}
}

func TestToMTMessageRoundTrip(t *testing.T) {
	pm, _, err := ParseAuto([]byte(sampleMT103Wire), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wire := pm.ToMTMessage()

	reparsed, _, err := ParseAuto(wire, nil)
	if err != nil {
		t.Fatalf("unexpected error reparsing serialized output: %v", err)
	}
	if reparsed.MessageType != pm.MessageType {
		t.Errorf("MessageType = %q, want %q", reparsed.MessageType, pm.MessageType)
	}
	if reparsed.MT103.SenderReference.ToWire() != pm.MT103.SenderReference.ToWire() {
		t.Errorf("round-tripped SenderReference mismatch: %q vs %q",
			reparsed.MT103.SenderReference.ToWire(), pm.MT103.SenderReference.ToWire())
	}
}

func TestBICFromBasicAndAppHeader(t *testing.T) {
	pm, _, err := ParseAuto([]byte(sampleMT103Wire), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := BICFromBasicHeader(pm.Basic); got != "BANKDEFF" {
		t.Errorf("BICFromBasicHeader = %q, want BANKDEFF", got)
	}
	if got := BICFromAppHeader(pm.App); got != "BANKDEFF" {
		t.Errorf("BICFromAppHeader = %q, want BANKDEFF", got)
	}
}
