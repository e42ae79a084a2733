package fields

import (
	"strings"
)

// Narrative is the shared shape of the free-text multiline fields (70, 72,
// 77B, 77E, 79, 86): a bounded number of lines, each within a per-field
// character budget, with no empty lines permitted (spec.md §4.4).
type Narrative struct {
	Lines []string `json:"lines"`
}

func parseNarrative(tag, raw string, maxLines, maxLineLen int) (Narrative, error) {
	lines := splitLines(raw)
	nl, err := parseMultiline(tag, lines, maxLines, maxLineLen)
	if err != nil {
		return Narrative{}, err
	}
	return Narrative{Lines: nl}, nil
}

func (n Narrative) ToWire() string { return strings.Join(n.Lines, "\n") }

// Field70 is Remittance Information: up to 4 lines of 35 characters.
type Field70 struct{ Narrative }

func ParseField70(raw string) (*Field70, error) {
	n, err := parseNarrative("70", raw, 4, 35)
	if err != nil {
		return nil, err
	}
	return &Field70{n}, nil
}

// Field72 is Sender to Receiver Information: up to 6 lines of 35
// characters, conventionally using "/8a/" structured codewords on each
// line, which this layer does not further decompose (spec.md leaves
// codeword parsing to the NVR layer where a rule needs it).
type Field72 struct{ Narrative }

func ParseField72(raw string) (*Field72, error) {
	n, err := parseNarrative("72", raw, 6, 35)
	if err != nil {
		return nil, err
	}
	return &Field72{n}, nil
}

// Field77B is Regulatory Reporting: up to 3 lines of 35 characters.
type Field77B struct{ Narrative }

func ParseField77B(raw string) (*Field77B, error) {
	n, err := parseNarrative("77B", raw, 3, 35)
	if err != nil {
		return nil, err
	}
	return &Field77B{n}, nil
}

// Field77E is the Accompanying Documents/Proprietary Message narrative
// block used by cover messages (MT202/205 COV): up to 20 lines of 35
// characters, generous enough for the full ordering-customer/beneficiary
// repeat spec.md expects these messages to carry.
type Field77E struct{ Narrative }

func ParseField77E(raw string) (*Field77E, error) {
	n, err := parseNarrative("77E", raw, 20, 35)
	if err != nil {
		return nil, err
	}
	return &Field77E{n}, nil
}

// Field79 is free-format narrative attached to a referenced message (e.g.
// MT292's Narrative Description of Original Message): up to 35 lines of 50
// characters.
type Field79 struct{ Narrative }

func ParseField79(raw string) (*Field79, error) {
	n, err := parseNarrative("79", raw, 35, 50)
	if err != nil {
		return nil, err
	}
	return &Field79{n}, nil
}

// Field86 is Information to Account Owner on statement messages: up to 6
// lines of 65 characters.
type Field86 struct{ Narrative }

func ParseField86(raw string) (*Field86, error) {
	n, err := parseNarrative("86", raw, 6, 65)
	if err != nil {
		return nil, err
	}
	return &Field86{n}, nil
}
