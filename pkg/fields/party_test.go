package fields

import "testing"

func TestParseField50ARoundTrip(t *testing.T) {
	raw := "/12345678\nDEUTDEFF"
	f, err := ParseField50A(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Account != "12345678" || f.BIC != "DEUTDEFF" {
		t.Errorf("got %+v", f)
	}
	if got := f.ToWire(); got != raw {
		t.Errorf("ToWire = %q, want %q", got, raw)
	}
}

func TestParseField50ANoAccount(t *testing.T) {
	f, err := ParseField50A("DEUTDEFF")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Account != "" || f.ToWire() != "DEUTDEFF" {
		t.Errorf("got %+v", f)
	}
}

func TestParseField50KRoundTrip(t *testing.T) {
	raw := "/12345678\nJOHN DOE\n123 MAIN ST"
	f, err := ParseField50K(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Account != "12345678" || len(f.Lines) != 2 {
		t.Errorf("got %+v", f)
	}
	if got := f.ToWire(); got != raw {
		t.Errorf("ToWire = %q, want %q", got, raw)
	}
}

func TestParseField50KRejectsTooManyLines(t *testing.T) {
	raw := "LINE1\nLINE2\nLINE3\nLINE4\nLINE5"
	if _, err := ParseField50K(raw); err == nil {
		t.Error("expected error for more than 4 name/address lines")
	}
}

func TestParseField50FRoundTrip(t *testing.T) {
	raw := "/12345678\n1/JOHN DOE\n2/123 MAIN ST"
	f, err := ParseField50F(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.PartyIdentifier != "/12345678" {
		t.Errorf("PartyIdentifier = %q", f.PartyIdentifier)
	}
	if got := f.ToWire(); got != raw {
		t.Errorf("ToWire = %q, want %q", got, raw)
	}
}

func TestParseField52OptionA(t *testing.T) {
	f, err := ParseField52("A", "DEUTDEFF")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.A == nil || f.A.BIC != "DEUTDEFF" {
		t.Errorf("got %+v", f)
	}
	letter, wire := f.ToWire()
	if letter != "A" || wire != "DEUTDEFF" {
		t.Errorf("ToWire = (%q,%q)", letter, wire)
	}
}

func TestParseField52OptionC(t *testing.T) {
	f, err := ParseField52("C", "/12345")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.C == nil || f.C.PartyIdentifier != "12345" {
		t.Errorf("got %+v", f)
	}
	letter, wire := f.ToWire()
	if letter != "C" || wire != "/12345" {
		t.Errorf("ToWire = (%q,%q)", letter, wire)
	}
}

func TestParseField52OptionD(t *testing.T) {
	f, err := ParseField52("D", "/12345\nBANK NAME\nBANK ADDRESS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.D == nil || f.D.PartyIdentifier != "12345" || len(f.D.Lines) != 2 {
		t.Errorf("got %+v", f.D)
	}
}

func TestParseField52RejectsUnknownOption(t *testing.T) {
	if _, err := ParseField52("Z", "whatever"); err == nil {
		t.Error("expected error for unknown option letter")
	}
}

func TestParseField53OptionB(t *testing.T) {
	f, err := ParseField53("B", "/12345\nNEW YORK")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.B == nil || f.B.PartyIdentifier != "12345" || f.B.Location != "NEW YORK" {
		t.Errorf("got %+v", f.B)
	}
	if got := f.B.ToWire(); got != "/12345\nNEW YORK" {
		t.Errorf("ToWire = %q", got)
	}
}

func TestParseField57AllFourOptions(t *testing.T) {
	if f, err := ParseField57("A", "DEUTDEFF"); err != nil || f.A == nil {
		t.Errorf("option A: f=%+v err=%v", f, err)
	}
	if f, err := ParseField57("B", "/12345\nLOCATION"); err != nil || f.B == nil {
		t.Errorf("option B: f=%+v err=%v", f, err)
	}
	if f, err := ParseField57("C", "/12345"); err != nil || f.C == nil {
		t.Errorf("option C: f=%+v err=%v", f, err)
	}
	if f, err := ParseField57("D", "/12345\nNAME"); err != nil || f.D == nil {
		t.Errorf("option D: f=%+v err=%v", f, err)
	}
}

func TestParseField58RejectsOptionB(t *testing.T) {
	if _, err := ParseField58("B", "/12345\nLOCATION"); err == nil {
		t.Error("expected error: field 58 only supports options A and D")
	}
}

func TestParseField59Unlettered(t *testing.T) {
	raw := "/98765432\nBENEFICIARY NAME\nBENEFICIARY ADDRESS"
	f, err := ParseField59("", raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Account == nil || *f.Account != "98765432" {
		t.Errorf("got %+v", f)
	}
	letter, wire := f.ToWire()
	if letter != "" || wire != raw {
		t.Errorf("ToWire = (%q,%q), want (\"\",%q)", letter, wire, raw)
	}
}

func TestParseField59OptionF(t *testing.T) {
	raw := "/98765432\n1/BENEFICIARY NAME"
	f, err := ParseField59("F", raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.F == nil {
		t.Fatalf("expected F option populated")
	}
	letter, wire := f.ToWire()
	if letter != "F" || wire != raw {
		t.Errorf("ToWire = (%q,%q), want (\"F\",%q)", letter, wire, raw)
	}
}
