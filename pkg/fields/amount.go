package fields

import (
	"strings"
	"time"

	"github.com/deltran/swiftmt/pkg/charset"
	"github.com/deltran/swiftmt/pkg/grammar"
	"github.com/shopspring/decimal"
)

// AmountValue pairs the parsed decimal with the exact wire string it came
// from, so serialization can reproduce the original bytes even when the
// decimal's canonical formatting would differ (spec.md §9 "currency-aware
// amount formatting" / "preserve the exact on-wire amount string").
type AmountValue struct {
	Decimal decimal.Decimal `json:"value"`
	Raw     string          `json:"raw"`
}

func parseAmountComponent(raw, name string) (AmountValue, error) {
	d, err := charset.ParseAmount(raw, name)
	if err != nil {
		return AmountValue{}, err
	}
	return AmountValue{Decimal: d, Raw: raw}, nil
}

// Wire renders the amount for ccy, preferring the original wire string when
// this value came from a parse rather than being constructed in code.
func (a AmountValue) Wire(ccy string) string {
	if a.Raw != "" {
		return a.Raw
	}
	return charset.FormatSwiftAmountForCurrency(a.Decimal, ccy)
}

// WireRaw renders a currency-less decimal (field 36 exchange rates),
// falling back to a plain decimal-comma rendering of Decimal.
func (a AmountValue) WireRaw() string {
	if a.Raw != "" {
		return a.Raw
	}
	return charset.FormatAmountRaw(a.Decimal)
}

func NewAmountValue(d decimal.Decimal) AmountValue { return AmountValue{Decimal: d} }

var spec32A = grammar.MustCompile("6!n3!a15d")

// Field32A is Value Date / Currency / Amount.
type Field32A struct {
	ValueDate time.Time   `json:"value_date"`
	Currency  string      `json:"currency"`
	Amount    AmountValue `json:"amount"`
}

func ParseField32A(raw string) (*Field32A, error) {
	vals, err := spec32A.ParseValues(raw)
	if err != nil {
		return nil, err
	}
	date, err := charset.ParseDateYYMMDD(vals[0], "32A value date")
	if err != nil {
		return nil, err
	}
	ccy, err := charset.ParseCurrency(vals[1])
	if err != nil {
		return nil, err
	}
	amt, err := parseAmountComponent(vals[2], "32A amount")
	if err != nil {
		return nil, err
	}
	return &Field32A{ValueDate: date, Currency: ccy, Amount: amt}, nil
}

func (f *Field32A) ToWire() string {
	return charset.FormatDateYYMMDD(f.ValueDate) + f.Currency + f.Amount.Wire(f.Currency)
}

// Field32B is Currency/Amount (no date) used for settlement/instructed
// amount fields.
type Field32B struct {
	Currency string      `json:"currency"`
	Amount   AmountValue `json:"amount"`
}

func ParseField32B(raw string) (*Field32B, error) {
	if len(raw) < 3 {
		return nil, charset.NewFormatError("32B", raw, "3!a15d")
	}
	ccy, err := charset.ParseCurrency(raw[0:3])
	if err != nil {
		return nil, err
	}
	amt, err := parseAmountComponent(raw[3:], "32B amount")
	if err != nil {
		return nil, err
	}
	return &Field32B{Currency: ccy, Amount: amt}, nil
}

func (f *Field32B) ToWire() string { return f.Currency + f.Amount.Wire(f.Currency) }

// Field33B is Currency/Instructed Amount.
type Field33B struct {
	Currency string      `json:"currency"`
	Amount   AmountValue `json:"amount"`
}

func ParseField33B(raw string) (*Field33B, error) {
	if len(raw) < 3 {
		return nil, charset.NewFormatError("33B", raw, "3!a15d")
	}
	ccy, err := charset.ParseCurrency(raw[0:3])
	if err != nil {
		return nil, err
	}
	amt, err := parseAmountComponent(raw[3:], "33B amount")
	if err != nil {
		return nil, err
	}
	return &Field33B{Currency: ccy, Amount: amt}, nil
}

func (f *Field33B) ToWire() string { return f.Currency + f.Amount.Wire(f.Currency) }

// Field34F is a debit/credit floor limit indicator: optional D/C mark,
// currency, amount.
type Field34F struct {
	DebitCredit string      `json:"debit_credit,omitempty"` // "D" or "C", empty if unspecified
	Currency    string      `json:"currency"`
	Amount      AmountValue `json:"amount"`
}

func ParseField34F(raw string) (*Field34F, error) {
	rest := raw
	dc := ""
	// a leading D/C is a mark only if skipping it still leaves a valid
	// currency code behind; otherwise it's the first letter of the code.
	if len(rest) >= 4 {
		if rest[0] == 'D' || rest[0] == 'C' {
			if _, err := charset.ParseCurrency(rest[1:4]); err == nil {
				dc = string(rest[0])
				rest = rest[1:]
			}
		}
	}
	if len(rest) < 3 {
		return nil, charset.NewFormatError("34F", raw, "[D/C]3!a15d")
	}
	ccy, err := charset.ParseCurrencyNonCommodity(rest[0:3])
	if err != nil {
		return nil, err
	}
	amt, err := parseAmountComponent(rest[3:], "34F amount")
	if err != nil {
		return nil, err
	}
	return &Field34F{DebitCredit: dc, Currency: ccy, Amount: amt}, nil
}

func (f *Field34F) ToWire() string { return f.DebitCredit + f.Currency + f.Amount.Wire(f.Currency) }

// Field36 is an Exchange Rate: a bare decimal-comma amount.
type Field36 struct {
	Rate AmountValue `json:"rate"`
}

func ParseField36(raw string) (*Field36, error) {
	amt, err := parseAmountComponent(raw, "36 rate")
	if err != nil {
		return nil, err
	}
	return &Field36{Rate: amt}, nil
}

func (f *Field36) ToWire() string { return f.Rate.WireRaw() }

// dcMark validates a credit/debit mark against the allowed set.
func dcMark(raw, field string, allowed ...string) (string, error) {
	for _, a := range allowed {
		if raw == a {
			return raw, nil
		}
	}
	return "", charset.NewFormatError(field, raw, "one of "+strings.Join(allowed, ","))
}

// balanceField is the shared shape of Fields 60F/60M/62F/62M/64/65: a
// mandatory D/C mark, a YYMMDD date, a currency, and an amount.
type balanceField struct {
	DebitCredit string      `json:"debit_credit"`
	Date        time.Time   `json:"date"`
	Currency    string      `json:"currency"`
	Amount      AmountValue `json:"amount"`
}

func parseBalanceField(field, raw string) (balanceField, error) {
	if len(raw) < 1+6+3 {
		return balanceField{}, charset.NewFormatError(field, raw, "1!a6!n3!a15d")
	}
	dc, err := dcMark(raw[0:1], field, "D", "C")
	if err != nil {
		return balanceField{}, err
	}
	date, err := charset.ParseDateYYMMDD(raw[1:7], field+" date")
	if err != nil {
		return balanceField{}, err
	}
	ccy, err := charset.ParseCurrency(raw[7:10])
	if err != nil {
		return balanceField{}, err
	}
	amt, err := parseAmountComponent(raw[10:], field+" amount")
	if err != nil {
		return balanceField{}, err
	}
	return balanceField{DebitCredit: dc, Date: date, Currency: ccy, Amount: amt}, nil
}

func (b balanceField) ToWire() string {
	return b.DebitCredit + charset.FormatDateYYMMDD(b.Date) + b.Currency + b.Amount.Wire(b.Currency)
}

// Field60F is the Opening Balance, final type (one occurrence).
type Field60F struct{ balanceField }

func ParseField60F(raw string) (*Field60F, error) {
	b, err := parseBalanceField("60F", raw)
	if err != nil {
		return nil, err
	}
	return &Field60F{b}, nil
}

// Field60M is the Opening Balance, intermediate type (multiple statements).
type Field60M struct{ balanceField }

func ParseField60M(raw string) (*Field60M, error) {
	b, err := parseBalanceField("60M", raw)
	if err != nil {
		return nil, err
	}
	return &Field60M{b}, nil
}

// Field62F is the Closing (Booked) Balance, final type.
type Field62F struct{ balanceField }

func ParseField62F(raw string) (*Field62F, error) {
	b, err := parseBalanceField("62F", raw)
	if err != nil {
		return nil, err
	}
	return &Field62F{b}, nil
}

// Field62M is the Closing (Booked) Balance, intermediate type.
type Field62M struct{ balanceField }

func ParseField62M(raw string) (*Field62M, error) {
	b, err := parseBalanceField("62M", raw)
	if err != nil {
		return nil, err
	}
	return &Field62M{b}, nil
}

// Field64 is the Closing Available Balance.
type Field64 struct{ balanceField }

func ParseField64(raw string) (*Field64, error) {
	b, err := parseBalanceField("64", raw)
	if err != nil {
		return nil, err
	}
	return &Field64{b}, nil
}

// Field65 is a Forward Available Balance (repeatable).
type Field65 struct{ balanceField }

func ParseField65(raw string) (*Field65, error) {
	b, err := parseBalanceField("65", raw)
	if err != nil {
		return nil, err
	}
	return &Field65{b}, nil
}

// Field71F is Sender's Charges (repeatable).
type Field71F struct {
	Currency string      `json:"currency"`
	Amount   AmountValue `json:"amount"`
}

func ParseField71F(raw string) (*Field71F, error) {
	if len(raw) < 3 {
		return nil, charset.NewFormatError("71F", raw, "3!a15d")
	}
	ccy, err := charset.ParseCurrency(raw[0:3])
	if err != nil {
		return nil, err
	}
	amt, err := parseAmountComponent(raw[3:], "71F amount")
	if err != nil {
		return nil, err
	}
	return &Field71F{Currency: ccy, Amount: amt}, nil
}

func (f *Field71F) ToWire() string { return f.Currency + f.Amount.Wire(f.Currency) }

// Field71G is Receiver's Charges.
type Field71G struct {
	Currency string      `json:"currency"`
	Amount   AmountValue `json:"amount"`
}

func ParseField71G(raw string) (*Field71G, error) {
	if len(raw) < 3 {
		return nil, charset.NewFormatError("71G", raw, "3!a15d")
	}
	ccy, err := charset.ParseCurrency(raw[0:3])
	if err != nil {
		return nil, err
	}
	amt, err := parseAmountComponent(raw[3:], "71G amount")
	if err != nil {
		return nil, err
	}
	return &Field71G{Currency: ccy, Amount: amt}, nil
}

func (f *Field71G) ToWire() string { return f.Currency + f.Amount.Wire(f.Currency) }

// Field90C is Number and Sum of Credit Entries.
type Field90C struct {
	Count    int         `json:"count"`
	Currency string      `json:"currency"`
	Amount   AmountValue `json:"amount"`
}

func parseCountCurrencyAmount(field, raw string) (int, string, AmountValue, error) {
	idx := 0
	for idx < len(raw) && charset.IsDigit(rune(raw[idx])) {
		idx++
	}
	if idx == 0 || idx > 5 {
		return 0, "", AmountValue{}, charset.NewFormatError(field, raw, "5n3!a15d")
	}
	count := atoiSimple(raw[:idx])
	rest := raw[idx:]
	if len(rest) < 3 {
		return 0, "", AmountValue{}, charset.NewFormatError(field, raw, "5n3!a15d")
	}
	ccy, err := charset.ParseCurrency(rest[0:3])
	if err != nil {
		return 0, "", AmountValue{}, err
	}
	amt, err := parseAmountComponent(rest[3:], field+" amount")
	if err != nil {
		return 0, "", AmountValue{}, err
	}
	return count, ccy, amt, nil
}

func atoiSimple(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}

func ParseField90C(raw string) (*Field90C, error) {
	count, ccy, amt, err := parseCountCurrencyAmount("90C", raw)
	if err != nil {
		return nil, err
	}
	return &Field90C{Count: count, Currency: ccy, Amount: amt}, nil
}

func (f *Field90C) ToWire() string {
	return itoaSimple(f.Count) + f.Currency + f.Amount.Wire(f.Currency)
}

// Field90D is Number and Sum of Debit Entries.
type Field90D struct {
	Count    int         `json:"count"`
	Currency string      `json:"currency"`
	Amount   AmountValue `json:"amount"`
}

func ParseField90D(raw string) (*Field90D, error) {
	count, ccy, amt, err := parseCountCurrencyAmount("90D", raw)
	if err != nil {
		return nil, err
	}
	return &Field90D{Count: count, Currency: ccy, Amount: amt}, nil
}

func (f *Field90D) ToWire() string {
	return itoaSimple(f.Count) + f.Currency + f.Amount.Wire(f.Currency)
}

func itoaSimple(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
