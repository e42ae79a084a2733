// Package message implements the L7 per-message-type record layer
// (spec.md §4.7): one typed record with full NVR evaluation for the six
// message types spec.md gives concrete rule text for (103, 103 STP, 110,
// 202, 292, 920), and a schema-driven generic record — full parse,
// serialize, dispatch and JSON round-trip, plus baseline structural
// validation — for the remaining message types in the target set.
package message

import (
	"strings"

	"github.com/deltran/swiftmt/pkg/framer"
	"github.com/deltran/swiftmt/pkg/sequence"
	"github.com/deltran/swiftmt/pkg/verrors"
)

// SlotKind classifies a declared field slot within a message schema.
type SlotKind int

const (
	Mandatory SlotKind = iota
	Optional
	Repetitive
)

// Slot declares one expected tag (base tag, e.g. "50" or "32") within a
// schema, the option letters it may carry (empty means no letter), and how
// many times it may occur.
type Slot struct {
	Tag         string
	Letters     []string // allowed option letters; nil/empty means unlettered only
	Kind        SlotKind
	MaxOccurs   int // 0 means unbounded for Repetitive, ignored otherwise
	Description string
}

// Schema is the ordered slot list plus the sequence-carving profile for one
// message type, used to drive the generic record builder.
type Schema struct {
	MessageType string
	Sequence    sequence.Profile
	Slots       []Slot
}

// RawField is one parsed-but-not-further-typed tag occurrence retained by
// the generic record: enough to validate structure and to serialize back
// byte-identically.
type RawField struct {
	Tag     string `json:"tag"`
	Variant string `json:"variant,omitempty"`
	Value   string `json:"value"`
}

// Record is the schema-driven generic per-message record: every field is
// carried as a RawField in wire order, with Fields grouped into sequences
// for validation and JSON shape.
type Record struct {
	MessageType string     `json:"message_type"`
	SequenceA   []RawField `json:"sequence_a"`
	SequenceB   []RawField `json:"sequence_b,omitempty"`
	SequenceC   []RawField `json:"sequence_c,omitempty"`
}

func toRawFields(occ []framer.TagOccurrence) []RawField {
	out := make([]RawField, 0, len(occ))
	for _, o := range occ {
		out = append(out, RawField{Tag: o.Tag, Variant: o.Variant, Value: o.Value})
	}
	return out
}

// Build carves occ per schema.Sequence and wraps the result into a generic
// Record, without further per-tag typing.
func Build(schema *Schema, occ []framer.TagOccurrence) *Record {
	carved := sequence.Carve(occ, schema.Sequence)
	return &Record{
		MessageType: schema.MessageType,
		SequenceA:   toRawFields(carved.A),
		SequenceB:   toRawFields(carved.B),
		SequenceC:   toRawFields(carved.C),
	}
}

// Validate applies baseline structural checks from schema against r:
// mandatory-slot presence, per-slot max-occurrence caps, and option-letter
// legality. It never short-circuits; every violation is appended to rep.
// overrides relaxes a slot's maximum repeat count without forking the
// schema, keyed "MT/TAG" (e.g. "940/61"); pass nil for the declared caps.
func Validate(schema *Schema, r *Record, overrides map[string]int, rep *verrors.Report) {
	all := append(append(append([]RawField{}, r.SequenceA...), r.SequenceB...), r.SequenceC...)

	// count under both the base tag and the letter-attached spelling, so a
	// slot may be declared either way ("32" with Letters, or "28C").
	counts := map[string]int{}
	lettersSeen := map[string]map[string]bool{}
	for _, f := range all {
		counts[f.Tag]++
		if f.Variant != "" {
			counts[f.Tag+f.Variant]++
		}
		if lettersSeen[f.Tag] == nil {
			lettersSeen[f.Tag] = map[string]bool{}
		}
		lettersSeen[f.Tag][f.Variant] = true
	}

	for _, s := range schema.Slots {
		n := counts[s.Tag]
		switch s.Kind {
		case Mandatory:
			if n == 0 {
				rep.Add(verrors.General("MISSING", s.Tag, "structure", "mandatory field "+s.Tag+" is missing: "+s.Description))
			}
		case Repetitive:
			limit := s.MaxOccurs
			if o, ok := overrides[schema.MessageType+"/"+s.Tag]; ok {
				limit = o
			}
			if limit > 0 && n > limit {
				rep.Add(verrors.Business("T10", s.Tag, nil,
					"field "+s.Tag+" occurs more than the permitted maximum"))
			}
		}
		if len(s.Letters) > 0 {
			for letter := range lettersSeen[s.Tag] {
				if !containsLetter(s.Letters, letter) {
					rep.Add(verrors.Content("INVALID_OPTION", s.Tag, letter, "one of "+joinLetters(s.Letters)))
				}
			}
		}
	}
}

func containsLetter(letters []string, letter string) bool {
	for _, l := range letters {
		if l == letter {
			return true
		}
	}
	return false
}

func joinLetters(letters []string) string {
	out := ""
	for i, l := range letters {
		if i > 0 {
			out += ","
		}
		out += l
	}
	return out
}

// Serialize walks the record's sequences in order and re-emits each field
// as ":TAG<letter>:VALUE", terminating with "-". All line separators,
// including continuation lines inside multi-line values, are CRLF on the
// wire.
func (r *Record) Serialize() string {
	var out []byte
	emit := func(fs []RawField) {
		for _, f := range fs {
			out = append(out, ':')
			out = append(out, f.Tag...)
			out = append(out, f.Variant...)
			out = append(out, ':')
			out = append(out, strings.ReplaceAll(f.Value, "\n", "\r\n")...)
			out = append(out, '\r', '\n')
		}
	}
	emit(r.SequenceA)
	emit(r.SequenceB)
	emit(r.SequenceC)
	out = append(out, '-')
	return string(out)
}
