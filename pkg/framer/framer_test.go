package framer

import "testing"

const sampleMT103 = "{1:F01BANKBEBBAXXX0000000000}{2:I103BANKDEFFXXXXN}{4:\n" +
	":20:REF123456\n" +
	":23B:CRED\n" +
	":32A:231225USD1234,56\n" +
	":50K:/12345678\n" +
	"ORDERING CUSTOMER\n" +
	":59:/98765432\n" +
	"BENEFICIARY\n" +
	":71A:OUR\n" +
	"-}{5:{CHK:123456789ABC}}"

func TestFrameBasicMessage(t *testing.T) {
	msg, err := Frame([]byte(sampleMT103))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Block1 == nil || msg.Block1.ApplicationID != "F" {
		t.Fatalf("block 1 not parsed correctly: %+v", msg.Block1)
	}
	if msg.Block2 == nil || msg.Block2.MessageType != "103" {
		t.Fatalf("block 2 not parsed correctly: %+v", msg.Block2)
	}
	if msg.Block2.IO != 'I' {
		t.Errorf("IO = %q, want 'I'", msg.Block2.IO)
	}
	if len(msg.Block4) != 6 {
		t.Fatalf("got %d occurrences, want 6: %+v", len(msg.Block4), msg.Block4)
	}
	if msg.Block4[0].Tag != "20" || msg.Block4[0].Value != "REF123456" {
		t.Errorf("occurrence 0 = %+v", msg.Block4[0])
	}
	if msg.Block4[3].Tag != "50" || msg.Block4[3].Variant != "K" {
		t.Errorf("occurrence 3 = %+v", msg.Block4[3])
	}
	if msg.Block4[3].Value != "/12345678\nORDERING CUSTOMER" {
		t.Errorf("continuation line not joined: %q", msg.Block4[3].Value)
	}
	if msg.Block5 == nil || msg.Block5.Fields["CHK"] != "123456789ABC" {
		t.Errorf("block 5 not parsed correctly: %+v", msg.Block5)
	}
}

func TestFrameMissingBlock4(t *testing.T) {
	raw := "{1:F01BANKBEBBAXXX0000000000}{2:I103BANKDEFFXXXXN}"
	if _, err := Frame([]byte(raw)); err == nil {
		t.Error("expected error when block 4 is missing")
	}
}

func TestFrameMalformedBlock1Length(t *testing.T) {
	raw := "{1:F01SHORT}{2:I103BANKDEFFXXXXN}{4:\n:20:REF\n-}"
	if _, err := Frame([]byte(raw)); err == nil {
		t.Error("expected error for malformed block 1")
	}
}

func TestFrameOutputDirection(t *testing.T) {
	raw := "{1:F01BANKBEBBAXXX0000000000}{2:O1030000231225BANKDEFFXXXX0000000000002312251200N}" +
		"{4:\n:20:REF123456\n-}"
	msg, err := Frame([]byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Block2.IO != 'O' {
		t.Errorf("IO = %q, want 'O'", msg.Block2.IO)
	}
	if msg.Block2.DestinationAddress != "" {
		t.Errorf("DestinationAddress should be empty for output direction, got %q", msg.Block2.DestinationAddress)
	}
}

func TestFrameNestedBracesInBlock4(t *testing.T) {
	raw := "{1:F01BANKBEBBAXXX0000000000}{2:I103BANKDEFFXXXXN}{4:\n" +
		":70:PAYMENT REF {ISO}TEST{/ISO}\n" +
		"-}"
	msg, err := Frame([]byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(msg.Block4) != 1 || msg.Block4[0].Value != "PAYMENT REF {ISO}TEST{/ISO}" {
		t.Errorf("nested braces in field value not preserved: %+v", msg.Block4)
	}
}

func TestFrameContinuationBeforeAnyField(t *testing.T) {
	raw := "{1:F01BANKBEBBAXXX0000000000}{2:I103BANKDEFFXXXXN}{4:\nstray line\n:20:REF\n-}"
	if _, err := Frame([]byte(raw)); err == nil {
		t.Error("expected error for continuation line before any field")
	}
}

func TestParseFieldLine(t *testing.T) {
	cases := []struct {
		line        string
		wantTag     string
		wantVariant string
		wantValue   string
		wantOK      bool
	}{
		{":20:REF123", "20", "", "REF123", true},
		{":32A:231225USD1234,56", "32", "A", "231225USD1234,56", true},
		{"not a field line", "", "", "", false},
		{":1:", "", "", "", false},
	}
	for _, tc := range cases {
		tag, variant, value, ok := parseFieldLine(tc.line)
		if ok != tc.wantOK {
			t.Errorf("parseFieldLine(%q) ok = %v, want %v", tc.line, ok, tc.wantOK)
			continue
		}
		if !ok {
			continue
		}
		if tag != tc.wantTag || variant != tc.wantVariant || value != tc.wantValue {
			t.Errorf("parseFieldLine(%q) = (%q,%q,%q), want (%q,%q,%q)",
				tc.line, tag, variant, value, tc.wantTag, tc.wantVariant, tc.wantValue)
		}
	}
}
