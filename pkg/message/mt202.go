package message

import (
	"github.com/deltran/swiftmt/pkg/fields"
	"github.com/deltran/swiftmt/pkg/framer"
	"github.com/deltran/swiftmt/pkg/verrors"
)

// MT202 is the General Financial Institution Transfer record. IsCOV marks
// a cover payment (MT202 COV), which carries the underlying customer
// credit transfer's narrative in field 77E (spec.md §4.4 note on 77E).
type MT202 struct {
	IsCOV bool `json:"is_cov"`

	TransactionReference *fields.Field20 `json:"field_20"`
	RelatedReference      *fields.Field21 `json:"field_21"`
	ValueDate             *fields.Field32A `json:"field_32a"`
	OrderingInstitution   *fields.Field52  `json:"field_52,omitempty"`
	SendersCorrespondent  *fields.Field53  `json:"field_53,omitempty"`
	ReceiversCorrespondent *fields.Field54 `json:"field_54,omitempty"`
	IntermediaryInstitution *fields.Field56 `json:"field_56,omitempty"`
	AccountWithInstitution *fields.Field57 `json:"field_57,omitempty"`
	BeneficiaryInstitution *fields.Field58 `json:"field_58"`
	SenderToReceiverInfo  *fields.Field72  `json:"field_72,omitempty"`
	UnderlyingTransaction *fields.Field77E `json:"field_77e,omitempty"`
}

// ParseMT202 builds an MT202 record. isCOV is determined by the caller
// from block 3's validation flag (field 119 set to "COV").
func ParseMT202(occ []framer.TagOccurrence, isCOV bool) (*MT202, error) {
	m := &MT202{IsCOV: isCOV}

	o20, ok := firstOccurrence(occ, "20")
	if !ok {
		return nil, verrors.MissingRequiredField("20")
	}
	f20, err := fields.ParseField20(o20.Value)
	if err != nil {
		return nil, err
	}
	m.TransactionReference = f20

	o21, ok := firstOccurrence(occ, "21")
	if !ok {
		return nil, verrors.MissingRequiredField("21")
	}
	f21, err := fields.ParseField21(o21.Value)
	if err != nil {
		return nil, err
	}
	m.RelatedReference = f21

	o32a, ok := firstOccurrence(occ, "32A")
	if !ok {
		return nil, verrors.MissingRequiredField("32A")
	}
	f32a, err := fields.ParseField32A(o32a.Value)
	if err != nil {
		return nil, err
	}
	m.ValueDate = f32a

	if o, ok := firstOccurrence(occ, "52"); ok {
		f, err := fields.ParseField52(o.Variant, o.Value)
		if err != nil {
			return nil, err
		}
		m.OrderingInstitution = f
	}
	if o, ok := firstOccurrence(occ, "53"); ok {
		f, err := fields.ParseField53(o.Variant, o.Value)
		if err != nil {
			return nil, err
		}
		m.SendersCorrespondent = f
	}
	if o, ok := firstOccurrence(occ, "54"); ok {
		f, err := fields.ParseField54(o.Variant, o.Value)
		if err != nil {
			return nil, err
		}
		m.ReceiversCorrespondent = f
	}
	if o, ok := firstOccurrence(occ, "56"); ok {
		f, err := fields.ParseField56(o.Variant, o.Value)
		if err != nil {
			return nil, err
		}
		m.IntermediaryInstitution = f
	}
	if o, ok := firstOccurrence(occ, "57"); ok {
		f, err := fields.ParseField57(o.Variant, o.Value)
		if err != nil {
			return nil, err
		}
		m.AccountWithInstitution = f
	}

	o58, ok := firstOccurrence(occ, "58")
	if !ok {
		return nil, verrors.MissingRequiredField("58")
	}
	f58, err := fields.ParseField58(o58.Variant, o58.Value)
	if err != nil {
		return nil, err
	}
	m.BeneficiaryInstitution = f58

	if o, ok := firstOccurrence(occ, "72"); ok {
		f, err := fields.ParseField72(o.Value)
		if err != nil {
			return nil, err
		}
		m.SenderToReceiverInfo = f
	}
	if o, ok := firstOccurrence(occ, "77E"); ok {
		f, err := fields.ParseField77E(o.Value)
		if err != nil {
			return nil, err
		}
		m.UnderlyingTransaction = f
	}

	return m, nil
}

// Validate runs MT202's structural NVR: a COV message must carry its
// underlying-transaction narrative.
func (m *MT202) Validate(rep *verrors.Report) {
	if m.IsCOV && m.UnderlyingTransaction == nil {
		rep.Add(verrors.Relation("COV1", "77E", []string{"20"},
			"a cover payment (MT202 COV) must carry the underlying transaction in field 77E"))
	}
}
