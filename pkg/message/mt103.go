package message

import (
	"github.com/deltran/swiftmt/pkg/charset"
	"github.com/deltran/swiftmt/pkg/fields"
	"github.com/deltran/swiftmt/pkg/framer"
	"github.com/deltran/swiftmt/pkg/verrors"
)

// MT103 is the Single Customer Credit Transfer record. IsSTP marks the
// message as having been sent under the STP validation profile (block 3
// field 119 = "STP"), which adds NVR checks C3 and C6 (spec.md §4.7).
type MT103 struct {
	IsSTP bool `json:"is_stp"`

	SenderReference     *fields.Field20  `json:"field_20"`
	BankOperationCode   *fields.Field23B `json:"field_23b"`
	InstructionCodes    []*fields.Field23E `json:"field_23e,omitempty"`
	ValueDate           *fields.Field32A `json:"field_32a"`
	OrderingCustomerLetter string        `json:"ordering_customer_letter,omitempty"`
	OrderingCustomer    *Field50Wire     `json:"field_50,omitempty"`
	OrderingInstitution *fields.Field52  `json:"field_52,omitempty"`
	SendersCorrespondent *fields.Field53 `json:"field_53,omitempty"`
	ReceiversCorrespondent *fields.Field54 `json:"field_54,omitempty"`
	ThirdReimbursementInstitution *fields.Field55 `json:"field_55,omitempty"`
	IntermediaryInstitution *fields.Field56 `json:"field_56,omitempty"`
	AccountWithInstitution *fields.Field57 `json:"field_57,omitempty"`
	BeneficiaryLetter   string           `json:"beneficiary_letter,omitempty"`
	BeneficiaryCustomer *fields.Field59  `json:"field_59"`
	RemittanceInformation *fields.Field70 `json:"field_70,omitempty"`
	DetailsOfCharges    *fields.Field71A `json:"field_71a"`
	SendersCharges      *fields.Field71F `json:"field_71f,omitempty"`
	ReceiversCharges    *fields.Field71G `json:"field_71g,omitempty"`
	ExchangeRate        *fields.Field36  `json:"field_36,omitempty"`
	SenderToReceiverInfo *fields.Field72 `json:"field_72,omitempty"`
	RegulatoryReporting *fields.Field77B `json:"field_77b,omitempty"`
	InstructedAmount    *fields.Field33B `json:"field_33b,omitempty"`
}

// Field50Wire carries whichever of 50/50A/50F/50K was present, keyed by
// letter so JSON keeps a single discriminated shape.
type Field50Wire struct {
	Plain *fields.Field50  `json:"plain,omitempty"`
	A     *fields.Field50A `json:"a,omitempty"`
	F     *fields.Field50F `json:"f,omitempty"`
	K     *fields.Field50K `json:"k,omitempty"`
}

func parseField50Wire(letter, raw string) (*Field50Wire, error) {
	switch letter {
	case "", "K":
		k, err := fields.ParseField50K(raw)
		if err != nil {
			return nil, err
		}
		return &Field50Wire{K: k}, nil
	case "A":
		a, err := fields.ParseField50A(raw)
		if err != nil {
			return nil, err
		}
		return &Field50Wire{A: a}, nil
	case "F":
		f, err := fields.ParseField50F(raw)
		if err != nil {
			return nil, err
		}
		return &Field50Wire{F: f}, nil
	default:
		return nil, charset.NewFormatError("50"+letter, raw, "unlettered, A, F, or K")
	}
}

func (w *Field50Wire) ToWire() string {
	switch {
	case w.Plain != nil:
		return w.Plain.ToWire()
	case w.A != nil:
		return w.A.ToWire()
	case w.F != nil:
		return w.F.ToWire()
	case w.K != nil:
		return w.K.ToWire()
	}
	return ""
}

// firstOccurrence finds a tag by its base digits ("50", matching any
// option letter) or by its full spelling ("23B", "32A") — the framer
// carries the letter separately, but slots for fields whose letter selects
// a distinct entity rather than an option variant are declared with the
// letter attached.
func firstOccurrence(occ []framer.TagOccurrence, tag string) (framer.TagOccurrence, bool) {
	for _, o := range occ {
		if o.Tag == tag || o.FullTag() == tag {
			return o, true
		}
	}
	return framer.TagOccurrence{}, false
}

func occurrencesOf(occ []framer.TagOccurrence, tag string) []framer.TagOccurrence {
	var out []framer.TagOccurrence
	for _, o := range occ {
		if o.Tag == tag || o.FullTag() == tag {
			out = append(out, o)
		}
	}
	return out
}

// ParseMT103 builds an MT103 record from block-4 occurrences. Sequence
// carving is not needed: MT103 carries exactly one transaction, so every
// occurrence lives in a single flat list.
func ParseMT103(occ []framer.TagOccurrence, isSTP bool) (*MT103, error) {
	m := &MT103{IsSTP: isSTP}

	o20, ok := firstOccurrence(occ, "20")
	if !ok {
		return nil, verrors.MissingRequiredField("20")
	}
	f20, err := fields.ParseField20(o20.Value)
	if err != nil {
		return nil, err
	}
	m.SenderReference = f20

	if o, ok := firstOccurrence(occ, "23B"); ok {
		f, err := fields.ParseField23B(o.Value)
		if err != nil {
			return nil, err
		}
		m.BankOperationCode = f
	} else {
		return nil, verrors.MissingRequiredField("23B")
	}

	for _, o := range occurrencesOf(occ, "23E") {
		f, err := fields.ParseField23E(o.Value)
		if err != nil {
			return nil, err
		}
		m.InstructionCodes = append(m.InstructionCodes, f)
	}

	o32a, ok := firstOccurrence(occ, "32A")
	if !ok {
		return nil, verrors.MissingRequiredField("32A")
	}
	f32a, err := fields.ParseField32A(o32a.Value)
	if err != nil {
		return nil, err
	}
	m.ValueDate = f32a

	o50, ok := firstOccurrence(occ, "50")
	if !ok {
		return nil, verrors.MissingRequiredField("50")
	}
	f50, err := parseField50Wire(o50.Variant, o50.Value)
	if err != nil {
		return nil, err
	}
	m.OrderingCustomerLetter = o50.Variant
	m.OrderingCustomer = f50

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
	if o, ok := firstOccurrence(occ, "55"); ok {
		f, err := fields.ParseField55(o.Variant, o.Value)
		if err != nil {
			return nil, err
		}
		m.ThirdReimbursementInstitution = f
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

	o59, ok := firstOccurrence(occ, "59")
	if !ok {
		return nil, verrors.MissingRequiredField("59")
	}
	f59, err := fields.ParseField59(o59.Variant, o59.Value)
	if err != nil {
		return nil, err
	}
	m.BeneficiaryLetter = o59.Variant
	m.BeneficiaryCustomer = f59

	if o, ok := firstOccurrence(occ, "70"); ok {
		f, err := fields.ParseField70(o.Value)
		if err != nil {
			return nil, err
		}
		m.RemittanceInformation = f
	}

	o71a, ok := firstOccurrence(occ, "71A")
	if !ok {
		return nil, verrors.MissingRequiredField("71A")
	}
	f71a, err := fields.ParseField71A(o71a.Value)
	if err != nil {
		return nil, err
	}
	m.DetailsOfCharges = f71a

	if o, ok := firstOccurrence(occ, "71F"); ok {
		f, err := fields.ParseField71F(o.Value)
		if err != nil {
			return nil, err
		}
		m.SendersCharges = f
	}
	if o, ok := firstOccurrence(occ, "71G"); ok {
		f, err := fields.ParseField71G(o.Value)
		if err != nil {
			return nil, err
		}
		m.ReceiversCharges = f
	}
	if o, ok := firstOccurrence(occ, "36"); ok {
		f, err := fields.ParseField36(o.Value)
		if err != nil {
			return nil, err
		}
		m.ExchangeRate = f
	}
	if o, ok := firstOccurrence(occ, "72"); ok {
		f, err := fields.ParseField72(o.Value)
		if err != nil {
			return nil, err
		}
		m.SenderToReceiverInfo = f
	}
	if o, ok := firstOccurrence(occ, "77B"); ok {
		f, err := fields.ParseField77B(o.Value)
		if err != nil {
			return nil, err
		}
		m.RegulatoryReporting = f
	}
	if o, ok := firstOccurrence(occ, "33B"); ok {
		f, err := fields.ParseField33B(o.Value)
		if err != nil {
			return nil, err
		}
		m.InstructedAmount = f
	}

	return m, nil
}

// Validate runs every MT103 NVR (C1, C2, C4, C5, C7, C8, plus C3/C6 when
// IsSTP) against m, appending every violation to rep without stopping
// (spec.md §4.7 examples).
func (m *MT103) Validate(rep *verrors.Report) {
	// C1: if 33B present with currency != 32A currency, 36 mandatory, else forbidden.
	if m.InstructedAmount != nil && m.ValueDate != nil && m.InstructedAmount.Currency != m.ValueDate.Currency {
		if m.ExchangeRate == nil {
			rep.Add(verrors.Business("C1", "36", []string{"33B", "32A"},
				"field 36 is mandatory when 33B currency differs from 32A currency"))
		}
	} else if m.ExchangeRate != nil {
		rep.Add(verrors.Business("C1", "36", []string{"33B", "32A"},
			"field 36 is forbidden when 33B currency matches 32A currency or 33B is absent"))
	}

	// C2: both sender/receiver BIC country in EU/EEA => 33B mandatory.
	// The sender/receiver BIC is carried at the envelope level, not on this
	// record; callers evaluate C2 via ValidateC2 when the header
	// BICs are available.

	// C4: any 55a present => 53a and 54a both mandatory.
	if m.ThirdReimbursementInstitution != nil {
		if m.SendersCorrespondent == nil {
			rep.Add(verrors.Relation("C4", "53a", []string{"55a"},
				"field 53a is mandatory when field 55a is present"))
		}
		if m.ReceiversCorrespondent == nil {
			rep.Add(verrors.Relation("C4", "54a", []string{"55a"},
				"field 54a is mandatory when field 55a is present"))
		}
	}

	// C5: 56a present => 57a mandatory.
	if m.IntermediaryInstitution != nil && m.AccountWithInstitution == nil {
		rep.Add(verrors.Relation("C5", "57a", []string{"56a"},
			"field 57a is mandatory when field 56a is present"))
	}

	// C7: 71A=OUR => 71F forbidden, 71G optional; SHA => 71G forbidden; BEN => 71F mandatory, 71G forbidden.
	if m.DetailsOfCharges != nil {
		switch m.DetailsOfCharges.Code {
		case "OUR":
			if m.SendersCharges != nil {
				rep.Add(verrors.Relation("C7", "71F", []string{"71A"}, "field 71F is forbidden when 71A=OUR"))
			}
		case "SHA":
			if m.ReceiversCharges != nil {
				rep.Add(verrors.Relation("C7", "71G", []string{"71A"}, "field 71G is forbidden when 71A=SHA"))
			}
		case "BEN":
			if m.SendersCharges == nil {
				rep.Add(verrors.Relation("C7", "71F", []string{"71A"}, "field 71F is mandatory when 71A=BEN"))
			}
			if m.ReceiversCharges != nil {
				rep.Add(verrors.Relation("C7", "71G", []string{"71A"}, "field 71G is forbidden when 71A=BEN"))
			}
		}
	}

	// C8: 71F or 71G present => 33B mandatory.
	if (m.SendersCharges != nil || m.ReceiversCharges != nil) && m.InstructedAmount == nil {
		rep.Add(verrors.Relation("C8", "33B", []string{"71F", "71G"},
			"field 33B is mandatory when 71F or 71G is present"))
	}

	if m.IsSTP {
		// C3: 23E instruction code must be one of CORT, INTC, SDVA, REPA.
		stpCodes := map[string]bool{"CORT": true, "INTC": true, "SDVA": true, "REPA": true}
		for _, code := range m.InstructionCodes {
			if !stpCodes[code.Code] {
				rep.Add(verrors.Content("C3", "23E", code.Code, "one of CORT, INTC, SDVA, REPA under STP"))
			}
		}
		// C6: 23B = SPRI => 56a forbidden.
		if m.BankOperationCode != nil && m.BankOperationCode.Code == "SPRI" && m.IntermediaryInstitution != nil {
			rep.Add(verrors.Relation("C6", "56a", []string{"23B"}, "field 56a is forbidden when 23B=SPRI under STP"))
		}
	}
}

// ValidateC2 evaluates MT103's C2 (EU/EEA BIC pair requires 33B), which
// needs the sender/receiver BICs carried on the message envelope rather
// than the block-4 record itself.
func (m *MT103) ValidateC2(senderBIC, receiverBIC string, rep *verrors.Report) {
	senderCC := charset.BICCountry(senderBIC)
	receiverCC := charset.BICCountry(receiverBIC)
	if charset.IsEUEEACountry(senderCC) && charset.IsEUEEACountry(receiverCC) && m.InstructedAmount == nil {
		rep.Add(verrors.Business("C2", "33B", []string{"32A"},
			"field 33B is mandatory when both sender and receiver BIC country codes are in the EU/EEA set"))
	}
}
