package message

import (
	"github.com/deltran/swiftmt/pkg/charset"
	"github.com/deltran/swiftmt/pkg/fields"
)

// toFieldsMT103 walks m's slots in declaration order and emits the wire
// form of each present field (spec.md §4.7 "Record serialization walks
// slots in declared order").
func toFieldsMT103(m *MT103) []RawField {
	var out []RawField
	add := func(tag, variant, value string) {
		out = append(out, RawField{Tag: tag, Variant: variant, Value: value})
	}
	add("20", "", m.SenderReference.ToWire())
	add("23B", "", m.BankOperationCode.ToWire())
	for _, ie := range m.InstructionCodes {
		add("23E", "", ie.ToWire())
	}
	add("32A", "", m.ValueDate.ToWire())
	if m.InstructedAmount != nil {
		add("33B", "", m.InstructedAmount.ToWire())
	}
	if m.ExchangeRate != nil {
		add("36", "", m.ExchangeRate.ToWire())
	}
	if m.OrderingCustomer != nil {
		add("50", m.OrderingCustomerLetter, m.OrderingCustomer.ToWire())
	}
	if m.OrderingInstitution != nil {
		letter, wire := m.OrderingInstitution.ToWire()
		add("52", letter, wire)
	}
	if m.SendersCorrespondent != nil {
		letter, wire := serializeField53(m.SendersCorrespondent)
		add("53", letter, wire)
	}
	if m.ReceiversCorrespondent != nil {
		letter, wire := serializeField54(m.ReceiversCorrespondent)
		add("54", letter, wire)
	}
	if m.ThirdReimbursementInstitution != nil {
		letter, wire := serializeField55(m.ThirdReimbursementInstitution)
		add("55", letter, wire)
	}
	if m.IntermediaryInstitution != nil {
		letter, wire := serializeField56(m.IntermediaryInstitution)
		add("56", letter, wire)
	}
	if m.AccountWithInstitution != nil {
		letter, wire := serializeField57(m.AccountWithInstitution)
		add("57", letter, wire)
	}
	if m.BeneficiaryCustomer != nil {
		letter, wire := m.BeneficiaryCustomer.ToWire()
		add("59", letter, wire)
	}
	if m.RemittanceInformation != nil {
		add("70", "", m.RemittanceInformation.ToWire())
	}
	add("71A", "", m.DetailsOfCharges.ToWire())
	if m.SendersCharges != nil {
		add("71F", "", m.SendersCharges.ToWire())
	}
	if m.ReceiversCharges != nil {
		add("71G", "", m.ReceiversCharges.ToWire())
	}
	if m.SenderToReceiverInfo != nil {
		add("72", "", m.SenderToReceiverInfo.ToWire())
	}
	if m.RegulatoryReporting != nil {
		add("77B", "", m.RegulatoryReporting.ToWire())
	}
	return out
}

func serializeField53(f *fields.Field53) (string, string) {
	switch {
	case f.A != nil:
		return "A", f.A.ToWire()
	case f.B != nil:
		return "B", f.B.ToWire()
	case f.D != nil:
		return "D", f.D.ToWire()
	}
	return "", ""
}

func serializeField54(f *fields.Field54) (string, string) {
	switch {
	case f.A != nil:
		return "A", f.A.ToWire()
	case f.B != nil:
		return "B", f.B.ToWire()
	case f.D != nil:
		return "D", f.D.ToWire()
	}
	return "", ""
}

func serializeField55(f *fields.Field55) (string, string) {
	switch {
	case f.A != nil:
		return "A", f.A.ToWire()
	case f.B != nil:
		return "B", f.B.ToWire()
	case f.D != nil:
		return "D", f.D.ToWire()
	}
	return "", ""
}

func serializeField56(f *fields.Field56) (string, string) {
	switch {
	case f.A != nil:
		return "A", f.A.ToWire()
	case f.C != nil:
		return "C", f.C.ToWire()
	case f.D != nil:
		return "D", f.D.ToWire()
	}
	return "", ""
}

func serializeField57(f *fields.Field57) (string, string) {
	switch {
	case f.A != nil:
		return "A", f.A.ToWire()
	case f.B != nil:
		return "B", f.B.ToWire()
	case f.C != nil:
		return "C", f.C.ToWire()
	case f.D != nil:
		return "D", f.D.ToWire()
	}
	return "", ""
}

func serializeField58(f *fields.Field58) (string, string) {
	switch {
	case f.A != nil:
		return "A", f.A.ToWire()
	case f.D != nil:
		return "D", f.D.ToWire()
	}
	return "", ""
}

func serializeCheque32(c Cheque32) (string, string) {
	if c.A != nil {
		return "A", c.A.ToWire()
	}
	if c.B != nil {
		return "B", c.B.ToWire()
	}
	return "", ""
}

func toFieldsMT110(m *MT110) []RawField {
	var out []RawField
	add := func(tag, variant, value string) {
		out = append(out, RawField{Tag: tag, Variant: variant, Value: value})
	}
	add("20", "", m.SenderReference.ToWire())
	if m.SendersCorrespondent != nil {
		letter, wire := serializeField53(m.SendersCorrespondent)
		add("53", letter, wire)
	}
	for _, c := range m.Cheques {
		out = append(out, chequeFields(c)...)
	}
	return out
}

func chequeFields(c Cheque) []RawField {
	var out []RawField
	add := func(tag, variant, value string) {
		out = append(out, RawField{Tag: tag, Variant: variant, Value: value})
	}
	add("21", "", c.ChequeNumber.ToWire())
	add("30", "", charset.FormatDateYYMMDD(c.DateOfIssue))
	letter, wire := serializeCheque32(c.AmountField)
	add("32", letter, wire)
	if c.Payer != nil {
		add("50", c.PayerLetter, c.Payer.ToWire())
	}
	if c.DrawerBank != nil {
		letter, wire := c.DrawerBank.ToWire()
		add("52", letter, wire)
	}
	if c.Payee != nil {
		letter, wire := c.Payee.ToWire()
		add("59", letter, wire)
	}
	return out
}

func toFieldsMT202(m *MT202) []RawField {
	var out []RawField
	add := func(tag, variant, value string) {
		out = append(out, RawField{Tag: tag, Variant: variant, Value: value})
	}
	add("20", "", m.TransactionReference.ToWire())
	add("21", "", m.RelatedReference.ToWire())
	add("32A", "", m.ValueDate.ToWire())
	if m.OrderingInstitution != nil {
		letter, wire := m.OrderingInstitution.ToWire()
		add("52", letter, wire)
	}
	if m.SendersCorrespondent != nil {
		letter, wire := serializeField53(m.SendersCorrespondent)
		add("53", letter, wire)
	}
	if m.ReceiversCorrespondent != nil {
		letter, wire := serializeField54(m.ReceiversCorrespondent)
		add("54", letter, wire)
	}
	if m.IntermediaryInstitution != nil {
		letter, wire := serializeField56(m.IntermediaryInstitution)
		add("56", letter, wire)
	}
	if m.AccountWithInstitution != nil {
		letter, wire := serializeField57(m.AccountWithInstitution)
		add("57", letter, wire)
	}
	if m.BeneficiaryInstitution != nil {
		letter, wire := serializeField58(m.BeneficiaryInstitution)
		add("58", letter, wire)
	}
	if m.SenderToReceiverInfo != nil {
		add("72", "", m.SenderToReceiverInfo.ToWire())
	}
	if m.UnderlyingTransaction != nil {
		add("77E", "", m.UnderlyingTransaction.ToWire())
	}
	return out
}

func toFieldsMT292(m *MT292) []RawField {
	var out []RawField
	out = append(out, RawField{Tag: "20", Value: m.SenderReference.ToWire()})
	out = append(out, RawField{Tag: "21", Value: m.RelatedReference.ToWire()})
	if m.Narrative != nil {
		out = append(out, RawField{Tag: "79", Value: m.Narrative.ToWire()})
	}
	out = append(out, m.CopyOfOriginal...)
	return out
}

// Serialize renders m back to wire form: ":tag<letter?>:value\r\n" per
// field in declaration order, terminated by "-".
func (m *MT103) Serialize() string { return (&Record{SequenceA: toFieldsMT103(m)}).Serialize() }
func (m *MT110) Serialize() string { return (&Record{SequenceA: toFieldsMT110(m)}).Serialize() }
func (m *MT202) Serialize() string { return (&Record{SequenceA: toFieldsMT202(m)}).Serialize() }
func (m *MT292) Serialize() string { return (&Record{SequenceA: toFieldsMT292(m)}).Serialize() }
func (m *MT920) Serialize() string { return (&Record{SequenceA: toFieldsMT920(m)}).Serialize() }

func toFieldsMT920(m *MT920) []RawField {
	var out []RawField
	out = append(out, RawField{Tag: "20", Value: m.SenderReference.ToWire()})
	for _, r := range m.Requests {
		out = append(out, requestFields(r)...)
	}
	return out
}

func requestFields(r StatementRequest) []RawField {
	out := []RawField{
		{Tag: "12", Value: r.RequestedMessageType},
		{Tag: "25", Value: r.Account.ToWire()},
	}
	for _, f := range r.Floors {
		out = append(out, RawField{Tag: "34F", Value: f.ToWire()})
	}
	return out
}
