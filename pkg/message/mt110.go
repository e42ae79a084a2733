package message

import (
	"time"

	"github.com/deltran/swiftmt/pkg/charset"
	"github.com/deltran/swiftmt/pkg/fields"
	"github.com/deltran/swiftmt/pkg/framer"
	"github.com/deltran/swiftmt/pkg/verrors"
)

// maxMT110Cheques is the NVR C1 cap (spec.md: "MT110 C1: at most 10 cheque
// occurrences").
const maxMT110Cheques = 10

// Cheque32 carries whichever of 32A/32B was present for one cheque
// occurrence, with the currency surfaced directly for C02 comparison.
type Cheque32 struct {
	A *fields.Field32A `json:"a,omitempty"`
	B *fields.Field32B `json:"b,omitempty"`
}

func (c Cheque32) Currency() string {
	if c.A != nil {
		return c.A.Currency
	}
	if c.B != nil {
		return c.B.Currency
	}
	return ""
}

func parseCheque32(letter, raw string) (Cheque32, error) {
	switch letter {
	case "A":
		f, err := fields.ParseField32A(raw)
		if err != nil {
			return Cheque32{}, err
		}
		return Cheque32{A: f}, nil
	case "B":
		f, err := fields.ParseField32B(raw)
		if err != nil {
			return Cheque32{}, err
		}
		return Cheque32{B: f}, nil
	default:
		return Cheque32{}, charset.NewFormatError("32"+letter, raw, "option A or B")
	}
}

// Cheque is one MT110 cheque occurrence: 21, 30, 32(A|B), optional 50/52, 59.
type Cheque struct {
	ChequeNumber *fields.Field21 `json:"field_21"`
	DateOfIssue  time.Time       `json:"date_of_issue"`
	AmountField  Cheque32        `json:"field_32"`
	PayerLetter  string          `json:"payer_letter,omitempty"`
	Payer        *Field50Wire    `json:"payer,omitempty"`
	DrawerBank   *fields.Field52 `json:"drawer_bank,omitempty"`
	Payee        *fields.Field59 `json:"field_59"`
}

// MT110 is the Advice of Cheque record.
type MT110 struct {
	SenderReference      *fields.Field20 `json:"field_20"`
	SendersCorrespondent *fields.Field53 `json:"field_53,omitempty"`
	Cheques              []Cheque        `json:"cheques"`
}

// ParseMT110 builds an MT110 record. Cheque occurrences are delimited by
// repeated "21" tags, mirroring sequence.SplitTransactions' marker-based
// grouping but applied directly here since MT110 has no Sequence C.
func ParseMT110(occ []framer.TagOccurrence) (*MT110, error) {
	m := &MT110{}

	o20, ok := firstOccurrence(occ, "20")
	if !ok {
		return nil, verrors.MissingRequiredField("20")
	}
	f20, err := fields.ParseField20(o20.Value)
	if err != nil {
		return nil, err
	}
	m.SenderReference = f20

	if o, ok := firstOccurrence(occ, "53"); ok {
		f, err := fields.ParseField53(o.Variant, o.Value)
		if err != nil {
			return nil, err
		}
		m.SendersCorrespondent = f
	}

	var group []framer.TagOccurrence
	flush := func() error {
		if len(group) == 0 {
			return nil
		}
		c, err := parseCheque(group)
		if err != nil {
			return err
		}
		m.Cheques = append(m.Cheques, c)
		group = nil
		return nil
	}
	for _, o := range occ {
		if o.Tag == "20" || o.Tag == "53" {
			continue
		}
		if o.Tag == "21" {
			if err := flush(); err != nil {
				return nil, err
			}
		}
		group = append(group, o)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return m, nil
}

func parseCheque(occ []framer.TagOccurrence) (Cheque, error) {
	var c Cheque
	o21, ok := firstOccurrence(occ, "21")
	if !ok {
		return Cheque{}, verrors.MissingRequiredField("21")
	}
	f21, err := fields.ParseField21(o21.Value)
	if err != nil {
		return Cheque{}, err
	}
	c.ChequeNumber = f21

	o30, ok := firstOccurrence(occ, "30")
	if !ok {
		return Cheque{}, verrors.MissingRequiredField("30")
	}
	date, err := charset.ParseDateYYMMDD(o30.Value, "30")
	if err != nil {
		return Cheque{}, err
	}
	c.DateOfIssue = date

	o32, ok := firstOccurrence(occ, "32")
	if !ok {
		return Cheque{}, verrors.MissingRequiredField("32a")
	}
	amt, err := parseCheque32(o32.Variant, o32.Value)
	if err != nil {
		return Cheque{}, err
	}
	c.AmountField = amt

	if o, ok := firstOccurrence(occ, "50"); ok {
		f, err := parseField50Wire(o.Variant, o.Value)
		if err != nil {
			return Cheque{}, err
		}
		c.PayerLetter = o.Variant
		c.Payer = f
	}
	if o, ok := firstOccurrence(occ, "52"); ok {
		f, err := fields.ParseField52(o.Variant, o.Value)
		if err != nil {
			return Cheque{}, err
		}
		c.DrawerBank = f
	}

	o59, ok := firstOccurrence(occ, "59")
	if !ok {
		return Cheque{}, verrors.MissingRequiredField("59")
	}
	f59, err := fields.ParseField59(o59.Variant, o59.Value)
	if err != nil {
		return Cheque{}, err
	}
	c.Payee = f59

	return c, nil
}

// Validate runs MT110's C1 (max 10 cheques) and C2 (currency consistency
// across all cheque occurrences) NVRs.
func (m *MT110) Validate(rep *verrors.Report) {
	if len(m.Cheques) > maxMT110Cheques {
		rep.Add(verrors.Business("T10", "21-59a", nil,
			"field 21-59a occurs more than the permitted maximum of 10 cheque occurrences"))
	}

	if len(m.Cheques) == 0 {
		return
	}
	expected := m.Cheques[0].AmountField.Currency()
	for _, c := range m.Cheques[1:] {
		if got := c.AmountField.Currency(); got != expected {
			rep.Add(verrors.Business("C02", "32a", nil,
				"the currency of field 32a ("+got+") must be identical across all cheque occurrences (expected "+expected+")"))
			return
		}
	}
}
