package fields

import "testing"

func TestParseField23B(t *testing.T) {
	f, err := ParseField23B("CRED")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.ToWire() != "CRED" {
		t.Errorf("ToWire = %q, want CRED", f.ToWire())
	}
	if _, err := ParseField23B("BOGUS"); err == nil {
		t.Error("expected error for code outside the enumeration")
	}
}

func TestParseField23EWithAdditionalInformation(t *testing.T) {
	f, err := ParseField23E("PHON/CALL BEFORE RELEASE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Code != "PHON" || f.AdditionalInformation != "CALL BEFORE RELEASE" {
		t.Errorf("got %+v", f)
	}
	if f.ToWire() != "PHON/CALL BEFORE RELEASE" {
		t.Errorf("ToWire = %q", f.ToWire())
	}
}

func TestParseField23EBareCode(t *testing.T) {
	f, err := ParseField23E("SDVA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.ToWire() != "SDVA" {
		t.Errorf("ToWire = %q, want SDVA", f.ToWire())
	}
}

func TestParseField23ERejectsUnknownCode(t *testing.T) {
	if _, err := ParseField23E("ZZZZ"); err == nil {
		t.Error("expected error for unknown instruction code")
	}
}

func TestParseField71A(t *testing.T) {
	f, err := ParseField71A("SHA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.ToWire() != "SHA" {
		t.Errorf("ToWire = %q, want SHA", f.ToWire())
	}
	if _, err := ParseField71A("XXX"); err == nil {
		t.Error("expected error for code outside BEN/OUR/SHA")
	}
}
