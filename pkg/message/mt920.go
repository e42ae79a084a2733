package message

import (
	"github.com/deltran/swiftmt/pkg/charset"
	"github.com/deltran/swiftmt/pkg/fields"
	"github.com/deltran/swiftmt/pkg/framer"
	"github.com/deltran/swiftmt/pkg/verrors"
)

// StatementRequest is one MT920 request block: the message type being
// requested (e.g. "940", "942"), the account it concerns, and up to two
// debit/credit floor limits.
type StatementRequest struct {
	RequestedMessageType string           `json:"requested_message_type"`
	Account               *fields.Field25 `json:"field_25"`
	Floors                []*fields.Field34F `json:"field_34f,omitempty"`
}

// MT920 is the Request Message record.
type MT920 struct {
	SenderReference *fields.Field20    `json:"field_20"`
	Requests        []StatementRequest `json:"requests"`
}

func parseField12(raw string) (string, error) {
	if _, err := charset.ParseExactLength(raw, 3, "12"); err != nil {
		return "", err
	}
	if _, err := charset.ParseSwiftDigits(raw, "12"); err != nil {
		return "", err
	}
	return raw, nil
}

// ParseMT920 builds an MT920 record. Each appearance of field 12 opens a
// new request block, closed by the next 12 or end of input.
func ParseMT920(occ []framer.TagOccurrence) (*MT920, error) {
	m := &MT920{}

	o20, ok := firstOccurrence(occ, "20")
	if !ok {
		return nil, verrors.MissingRequiredField("20")
	}
	f20, err := fields.ParseField20(o20.Value)
	if err != nil {
		return nil, err
	}
	m.SenderReference = f20

	var group []framer.TagOccurrence
	flush := func() error {
		if len(group) == 0 {
			return nil
		}
		r, err := parseStatementRequest(group)
		if err != nil {
			return err
		}
		m.Requests = append(m.Requests, r)
		group = nil
		return nil
	}
	for _, o := range occ {
		if o.Tag == "20" {
			continue
		}
		if o.Tag == "12" {
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

func parseStatementRequest(occ []framer.TagOccurrence) (StatementRequest, error) {
	var r StatementRequest
	o12, ok := firstOccurrence(occ, "12")
	if !ok {
		return StatementRequest{}, verrors.MissingRequiredField("12")
	}
	mt, err := parseField12(o12.Value)
	if err != nil {
		return StatementRequest{}, err
	}
	r.RequestedMessageType = mt

	o25, ok := firstOccurrence(occ, "25")
	if !ok {
		return StatementRequest{}, verrors.MissingRequiredField("25")
	}
	f25, err := fields.ParseField25(o25.Value)
	if err != nil {
		return StatementRequest{}, err
	}
	r.Account = f25

	for _, o := range occurrencesOf(occ, "34F") {
		f, err := fields.ParseField34F(o.Value)
		if err != nil {
			return StatementRequest{}, err
		}
		r.Floors = append(r.Floors, f)
	}

	return r, nil
}

// Validate runs MT920's C1 (942 request requires a debit floor) and C2
// (two floors present => first debit, second credit, same currency).
func (m *MT920) Validate(rep *verrors.Report) {
	for _, req := range m.Requests {
		if req.RequestedMessageType == "942" {
			hasDebit := false
			for _, f := range req.Floors {
				// an unsigned 34F is a shared floor applying to both
				// debit and credit entries
				if f.DebitCredit == "D" || f.DebitCredit == "" {
					hasDebit = true
				}
			}
			if !hasDebit {
				rep.Add(verrors.Business("C1", "34F", []string{"12"},
					"field 34F debit floor must be present when the requested message type is 942"))
			}
		}
		if len(req.Floors) == 2 {
			first, second := req.Floors[0], req.Floors[1]
			if first.DebitCredit != "D" || second.DebitCredit != "C" {
				rep.Add(verrors.Business("C2", "34F", []string{"34F"},
					"when two field 34F occurrences are present, the first must be debit-signed and the second credit-signed"))
			} else if first.Currency != second.Currency {
				rep.Add(verrors.Business("C2", "34F", []string{"34F"},
					"the two field 34F occurrences must share the same currency"))
			}
		}
	}
}
