package message

import (
	"testing"

	"github.com/deltran/swiftmt/pkg/framer"
	"github.com/deltran/swiftmt/pkg/verrors"
)

func mt202Occurrences() []framer.TagOccurrence {
	return []framer.TagOccurrence{
		{Tag: "20", Value: "TXNREF001", Position: 0},
		{Tag: "21", Value: "RELREF001", Position: 1},
		{Tag: "32A", Value: "231225USD5000,00", Position: 2},
		{Tag: "58", Variant: "A", Value: "DEUTDEFF", Position: 3},
	}
}

func TestParseMT202Plain(t *testing.T) {
	m, err := ParseMT202(mt202Occurrences(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.BeneficiaryInstitution == nil || m.BeneficiaryInstitution.A == nil {
		t.Fatalf("got %+v", m.BeneficiaryInstitution)
	}
	rep := verrors.NewReport(false)
	m.Validate(rep)
	if !rep.Valid() {
		t.Errorf("expected no NVR violations for a plain MT202, got %v", rep.Errors)
	}
}

func TestParseMT202MissingMandatoryField58(t *testing.T) {
	occ := mt202Occurrences()[:3]
	if _, err := ParseMT202(occ, false); err == nil {
		t.Error("expected error for missing mandatory field 58")
	}
}

func TestMT202COVRequiresUnderlyingTransaction(t *testing.T) {
	m, err := ParseMT202(mt202Occurrences(), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rep := verrors.NewReport(false)
	m.Validate(rep)
	found := false
	for _, e := range rep.Errors {
		if e.Code == "COV1" {
			found = true
		}
	}
	if !found {
		t.Error("expected COV1 violation: COV message missing field 77E")
	}
}

func TestMT202COVSatisfiedWithUnderlyingTransaction(t *testing.T) {
	occ := append(mt202Occurrences(), framer.TagOccurrence{
		Tag: "77E", Value: "/ORDP/JOHN DOE\n/BENM/JANE DOE", Position: 4,
	})
	m, err := ParseMT202(occ, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rep := verrors.NewReport(false)
	m.Validate(rep)
	if !rep.Valid() {
		t.Errorf("expected no COV1 violation when 77E is present, got %v", rep.Errors)
	}
}

func TestMT202PlainDoesNotRequireUnderlyingTransaction(t *testing.T) {
	m, err := ParseMT202(mt202Occurrences(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rep := verrors.NewReport(false)
	m.Validate(rep)
	if !rep.Valid() {
		t.Errorf("a plain (non-COV) MT202 should never require field 77E, got %v", rep.Errors)
	}
}

func TestMT202SerializeRoundTrip(t *testing.T) {
	m, err := ParseMT202(mt202Occurrences(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wire := m.Serialize()
	for _, want := range []string{"TXNREF001", "RELREF001", "231225USD5000,00", "DEUTDEFF"} {
		if !containsSubstring(wire, want) {
			t.Errorf("serialized body missing %q:\n%s", want, wire)
		}
	}
}
