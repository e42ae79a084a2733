package slash

import "testing"

func TestParseNone(t *testing.T) {
	got, err := Parse(None, "ABC123", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ABC123" {
		t.Errorf("got %q, want %q", got, "ABC123")
	}
}

func TestParseOptional(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"absent", "", ""},
		{"present", "/12345", "12345"},
		{"no slash passthrough", "12345", "12345"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(Optional, tc.raw, 0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseRequired(t *testing.T) {
	got, err := Parse(Required, "/ABCD1234", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ABCD1234" {
		t.Errorf("got %q, want %q", got, "ABCD1234")
	}
	if _, err := Parse(Required, "ABCD1234", 0); err == nil {
		t.Error("expected error for missing leading slash")
	}
}

func TestParseDouble(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"", ""},
		{"//REF", "REF"},
		{"/REF", "REF"},
	}
	for _, tc := range cases {
		got, err := Parse(Double, tc.raw, 0)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tc.raw, err)
		}
		if got != tc.want {
			t.Errorf("Parse(Double, %q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestParseWrapper(t *testing.T) {
	got, err := Parse(Wrapper, "/RFB/", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "RFB" {
		t.Errorf("got %q, want %q", got, "RFB")
	}
	if got, err := Parse(Wrapper, "", 0); err != nil || got != "" {
		t.Errorf("Parse(Wrapper, \"\") = %q, %v", got, err)
	}
}

func TestParseOptionalNumeric(t *testing.T) {
	got, err := Parse(OptionalNumeric, "/123", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "123" {
		t.Errorf("got %q, want %q", got, "123")
	}
	if got, err := Parse(OptionalNumeric, "", 5); err != nil || got != "" {
		t.Errorf("Parse(OptionalNumeric, \"\") = %q, %v", got, err)
	}
	if _, err := Parse(OptionalNumeric, "123", 5); err == nil {
		t.Error("expected error when numeric component is missing leading slash")
	}
	if _, err := Parse(OptionalNumeric, "/123456", 5); err == nil {
		t.Error("expected error when numeric component exceeds max digits")
	}
	if _, err := Parse(OptionalNumeric, "/12a", 5); err == nil {
		t.Error("expected error for non-digit content")
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	cases := []struct {
		mode  Mode
		value string
	}{
		{Optional, "12345"},
		{Required, "ABCD1234"},
		{Double, "REF"},
		{Wrapper, "RFB"},
		{OptionalNumeric, "123"},
	}
	maxDigits := 5
	for _, tc := range cases {
		wire := Serialize(tc.mode, tc.value)
		got, err := Parse(tc.mode, wire, maxDigits)
		if err != nil {
			t.Fatalf("mode %v: Parse(%q) failed: %v", tc.mode, wire, err)
		}
		if got != tc.value {
			t.Errorf("mode %v: round trip got %q, want %q (wire %q)", tc.mode, got, tc.value, wire)
		}
	}
}

func TestSerializeIdempotent(t *testing.T) {
	modes := []Mode{None, Optional, Required, Double, Wrapper, OptionalNumeric}
	for _, m := range modes {
		first := Serialize(m, "ABC")
		second := Serialize(m, first)
		if first != second {
			t.Errorf("mode %v: Serialize not idempotent: %q vs %q", m, first, second)
		}
	}
}

func TestParseUnknownMode(t *testing.T) {
	if _, err := Parse(Mode(99), "x", 0); err == nil {
		t.Error("expected error for unknown mode")
	}
}
