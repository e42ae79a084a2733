package message

import (
	"github.com/deltran/swiftmt/pkg/fields"
	"github.com/deltran/swiftmt/pkg/framer"
	"github.com/deltran/swiftmt/pkg/verrors"
)

// MT292 is the Request for Cancellation record: a reference to the message
// being cancelled, plus either a narrative description (field 79) or a
// verbatim copy of the original message's key fields (spec.md §4.7 C1
// disjunction).
type MT292 struct {
	SenderReference *fields.Field20 `json:"field_20"`
	RelatedReference *fields.Field21 `json:"field_21"`
	Narrative       *fields.Field79 `json:"field_79,omitempty"`
	CopyOfOriginal  []RawField      `json:"copy_of_original,omitempty"`
}

// ParseMT292 builds an MT292 record. Every occurrence besides 20/21/79 is
// taken to be part of the copied original-message field block.
func ParseMT292(occ []framer.TagOccurrence) (*MT292, error) {
	m := &MT292{}

	o20, ok := firstOccurrence(occ, "20")
	if !ok {
		return nil, verrors.MissingRequiredField("20")
	}
	f20, err := fields.ParseField20(o20.Value)
	if err != nil {
		return nil, err
	}
	m.SenderReference = f20

	o21, ok := firstOccurrence(occ, "21")
	if !ok {
		return nil, verrors.MissingRequiredField("21")
	}
	f21, err := fields.ParseField21(o21.Value)
	if err != nil {
		return nil, err
	}
	m.RelatedReference = f21

	if o, ok := firstOccurrence(occ, "79"); ok {
		f, err := fields.ParseField79(o.Value)
		if err != nil {
			return nil, err
		}
		m.Narrative = f
	}

	for _, o := range occ {
		if o.Tag == "20" || o.Tag == "21" || o.Tag == "79" {
			continue
		}
		m.CopyOfOriginal = append(m.CopyOfOriginal, RawField{Tag: o.Tag, Variant: o.Variant, Value: o.Value})
	}

	return m, nil
}

// Validate runs MT292's C1: narrative 79 present, or a copy of the
// original message's key fields present.
func (m *MT292) Validate(rep *verrors.Report) {
	if m.Narrative == nil && len(m.CopyOfOriginal) == 0 {
		rep.Add(verrors.Relation("C1", "79", []string{"20", "21"},
			"either field 79 or a copy of the original message's key fields must be present"))
	}
}
