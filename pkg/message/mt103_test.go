package message

import (
	"testing"

	"github.com/deltran/swiftmt/pkg/framer"
	"github.com/deltran/swiftmt/pkg/verrors"
)

func mt103Occurrences() []framer.TagOccurrence {
	return []framer.TagOccurrence{
		{Tag: "20", Value: "REF123456", Position: 0},
		{Tag: "23B", Value: "CRED", Position: 1},
		{Tag: "32A", Value: "231225USD1234,56", Position: 2},
		{Tag: "50", Variant: "K", Value: "/12345678\nORDERING CUSTOMER", Position: 3},
		{Tag: "59", Value: "/98765432\nBENEFICIARY", Position: 4},
		{Tag: "71A", Value: "SHA", Position: 5},
	}
}

func TestParseMT103Minimal(t *testing.T) {
	m, err := ParseMT103(mt103Occurrences(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.SenderReference.ToWire() != "REF123456" {
		t.Errorf("got %+v", m.SenderReference)
	}
	if m.BeneficiaryCustomer == nil {
		t.Fatal("expected beneficiary to be populated")
	}
	rep := verrors.NewReport(false)
	m.Validate(rep)
	if !rep.Valid() {
		t.Errorf("expected no NVR violations for a minimal well-formed message, got %v", rep.Errors)
	}
}

func TestParseMT103MissingMandatoryField(t *testing.T) {
	occ := mt103Occurrences()[1:] // drop field 20
	if _, err := ParseMT103(occ, false); err == nil {
		t.Error("expected error for missing mandatory field 20")
	}
}

func TestMT103SerializeRoundTrip(t *testing.T) {
	occ := mt103Occurrences()
	m, err := ParseMT103(occ, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wire := m.Serialize()
	// each input field's wire value should appear verbatim in the reserialized body
	for _, want := range []string{"REF123456", "CRED", "231225USD1234,56", "SHA"} {
		if !containsSubstring(wire, want) {
			t.Errorf("serialized body missing %q:\n%s", want, wire)
		}
	}
}

func containsSubstring(haystack, needle string) bool {
	return len(haystack) >= len(needle) && (func() bool {
		for i := 0; i+len(needle) <= len(haystack); i++ {
			if haystack[i:i+len(needle)] == needle {
				return true
			}
		}
		return false
	})()
}

func TestMT103ValidateC1RequiresExchangeRate(t *testing.T) {
	occ := append(mt103Occurrences(), framer.TagOccurrence{Tag: "33B", Value: "EUR1000,", Position: 6})
	m, err := ParseMT103(occ, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rep := verrors.NewReport(false)
	m.Validate(rep)
	found := false
	for _, e := range rep.Errors {
		if e.Code == "C1" {
			found = true
		}
	}
	if !found {
		t.Error("expected C1 violation: 33B currency (EUR) differs from 32A currency (USD) without field 36")
	}
}

func TestMT103ValidateC1SatisfiedWithExchangeRate(t *testing.T) {
	occ := append(mt103Occurrences(),
		framer.TagOccurrence{Tag: "33B", Value: "EUR1000,", Position: 6},
		framer.TagOccurrence{Tag: "36", Value: "1,1", Position: 7},
	)
	m, err := ParseMT103(occ, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rep := verrors.NewReport(false)
	m.Validate(rep)
	for _, e := range rep.Errors {
		if e.Code == "C1" {
			t.Errorf("unexpected C1 violation when 36 is present: %v", e)
		}
	}
}

func TestMT103ValidateC7BENRequiresSendersCharges(t *testing.T) {
	occ := mt103Occurrences()
	occ[5] = framer.TagOccurrence{Tag: "71A", Value: "BEN", Position: 5}
	m, err := ParseMT103(occ, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rep := verrors.NewReport(false)
	m.Validate(rep)
	found := false
	for _, e := range rep.Errors {
		if e.Code == "C7" {
			found = true
		}
	}
	if !found {
		t.Error("expected C7 violation: 71A=BEN requires field 71F")
	}
}

func TestMT103ValidateC4RequiresCorrespondents(t *testing.T) {
	occ := append(mt103Occurrences(), framer.TagOccurrence{Tag: "55", Variant: "A", Value: "DEUTDEFF", Position: 6})
	m, err := ParseMT103(occ, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rep := verrors.NewReport(false)
	m.Validate(rep)
	count := 0
	for _, e := range rep.Errors {
		if e.Code == "C4" {
			count++
		}
	}
	if count != 2 {
		t.Errorf("expected 2 C4 violations (missing 53a and 54a), got %d: %v", count, rep.Errors)
	}
}

func TestMT103STPValidateC3RejectsNonSTPInstructionCode(t *testing.T) {
	occ := append(mt103Occurrences(), framer.TagOccurrence{Tag: "23E", Value: "PHON", Position: 6})
	m, err := ParseMT103(occ, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rep := verrors.NewReport(false)
	m.Validate(rep)
	found := false
	for _, e := range rep.Errors {
		if e.Code == "C3" {
			found = true
		}
	}
	if !found {
		t.Error("expected C3 violation: PHON is not a valid STP instruction code")
	}
}

func TestMT103ValidateC2RequiresInstructedAmountForEUEEAPair(t *testing.T) {
	m, err := ParseMT103(mt103Occurrences(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rep := verrors.NewReport(false)
	m.ValidateC2("DEUTDEFF", "BNPAFRPP", rep)
	if rep.Valid() {
		t.Error("expected C2 violation: both DE and FR are EU/EEA, 33B is missing")
	}
}

func TestMT103ValidateC2SkippedOutsideEUEEA(t *testing.T) {
	m, err := ParseMT103(mt103Occurrences(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rep := verrors.NewReport(false)
	m.ValidateC2("CHASUS33", "BNPAFRPP", rep)
	if !rep.Valid() {
		t.Errorf("expected no C2 violation when sender BIC country (US) is outside EU/EEA, got %v", rep.Errors)
	}
}
