package fields

import (
	"strconv"
	"strings"

	"github.com/deltran/swiftmt/pkg/charset"
)

// Field25 is the Account Identification: up to 35 SWIFT-X characters.
type Field25 struct {
	Account string `json:"account"`
}

func ParseField25(raw string) (*Field25, error) {
	if _, err := charset.ParseMaxLength(raw, 35, "25"); err != nil {
		return nil, err
	}
	if _, err := charset.ParseSwiftChars(raw, "25"); err != nil {
		return nil, err
	}
	return &Field25{Account: raw}, nil
}

func (f *Field25) ToWire() string { return f.Account }

// Field28 is Statement Number, optionally with a sequence number:
// statement[/sequence]. Grounded on original_source/src/fields/field28.rs:
// both components are plain digit runs and index/total-style cross checks
// are handled a layer up.
type Field28 struct {
	StatementNumber string `json:"statement_number"`
	SequenceNumber  string `json:"sequence_number,omitempty"`
}

func ParseField28(raw string) (*Field28, error) {
	stmt, seq, hasSeq := strings.Cut(raw, "/")
	if _, err := charset.ParseSwiftDigits(stmt, "28 statement number"); err != nil {
		return nil, err
	}
	if len(stmt) > 5 {
		return nil, charset.NewFormatError("28", raw, "statement number of at most 5 digits")
	}
	f := &Field28{StatementNumber: stmt}
	if hasSeq {
		if _, err := charset.ParseSwiftDigits(seq, "28 sequence number"); err != nil {
			return nil, err
		}
		if len(seq) > 5 {
			return nil, charset.NewFormatError("28", raw, "sequence number of at most 5 digits")
		}
		f.SequenceNumber = seq
	}
	return f, nil
}

func (f *Field28) ToWire() string {
	if f.SequenceNumber == "" {
		return f.StatementNumber
	}
	return f.StatementNumber + "/" + f.SequenceNumber
}

// pageIndexTotal is the shared shape of Fields 28C/28D: a mandatory page
// index and page total, both digit runs, separated by "/". spec.md §4.4
// requires index <= total and both nonzero.
type pageIndexTotal struct {
	Index int `json:"index"`
	Total int `json:"total"`
}

func parsePageIndexTotal(tag, raw string) (pageIndexTotal, error) {
	idxStr, totStr, ok := strings.Cut(raw, "/")
	if !ok {
		return pageIndexTotal{}, charset.NewFormatError(tag, raw, "index/total")
	}
	if _, err := charset.ParseSwiftDigits(idxStr, tag+" index"); err != nil {
		return pageIndexTotal{}, err
	}
	if _, err := charset.ParseSwiftDigits(totStr, tag+" total"); err != nil {
		return pageIndexTotal{}, err
	}
	idx, _ := strconv.Atoi(idxStr)
	tot, _ := strconv.Atoi(totStr)
	if idx == 0 || tot == 0 {
		return pageIndexTotal{}, charset.NewFormatError(tag, raw, "nonzero index and total")
	}
	if idx > tot {
		return pageIndexTotal{}, charset.NewFormatError(tag, raw, "index <= total")
	}
	return pageIndexTotal{Index: idx, Total: tot}, nil
}

func (p pageIndexTotal) ToWire() string {
	return strconv.Itoa(p.Index) + "/" + strconv.Itoa(p.Total)
}

// Field28C is Statement/Sequence Number for MT940/MT942: page index/total.
type Field28C struct{ pageIndexTotal }

func ParseField28C(raw string) (*Field28C, error) {
	p, err := parsePageIndexTotal("28C", raw)
	if err != nil {
		return nil, err
	}
	return &Field28C{p}, nil
}

// Field28D is Message Index/Total for multi-part messages.
type Field28D struct{ pageIndexTotal }

func ParseField28D(raw string) (*Field28D, error) {
	p, err := parsePageIndexTotal("28D", raw)
	if err != nil {
		return nil, err
	}
	return &Field28D{p}, nil
}

// Field61 is a Statement Line: value date, optional entry date, D/C mark
// (D, C, RD, or RC), funds code, amount, transaction type + identification
// code, customer reference, and an optional "//bank reference" plus a
// supplementary-details continuation line. Grounded on
// original_source/src/fields/field61.rs's component-by-component hand
// parser and DennisVis-mt's StatementLine.UnmarshalMT line splitting.
type Field61 struct {
	ValueDate            string      `json:"value_date"`
	EntryMonth           string      `json:"entry_month,omitempty"`
	EntryDay             string      `json:"entry_day,omitempty"`
	DebitCredit          string      `json:"debit_credit"`
	FundsCode            string      `json:"funds_code,omitempty"`
	Amount               AmountValue `json:"amount"`
	TransactionType      string      `json:"transaction_type"`
	IdentificationCode   string      `json:"identification_code"`
	CustomerReference    string      `json:"customer_reference"`
	BankReference        string      `json:"bank_reference,omitempty"`
	SupplementaryDetails string      `json:"supplementary_details,omitempty"`
}

var field61DCMarks = map[string]bool{"D": true, "C": true, "RD": true, "RC": true}

func ParseField61(raw string) (*Field61, error) {
	lines := splitLines(raw)
	line := lines[0]
	f := &Field61{}

	if len(line) < 6 {
		return nil, charset.NewFormatError("61", raw, "6!n value date")
	}
	date, err := charset.ParseSwiftDigits(line[0:6], "61 value date")
	if err != nil {
		return nil, err
	}
	f.ValueDate = date
	rest := line[6:]

	if len(rest) >= 4 && charset.IsDigit(rune(rest[0])) && charset.IsDigit(rune(rest[1])) &&
		charset.IsDigit(rune(rest[2])) && charset.IsDigit(rune(rest[3])) {
		f.EntryMonth = rest[0:2]
		f.EntryDay = rest[2:4]
		rest = rest[4:]
	}

	dc := ""
	for _, cand := range []string{"RD", "RC", "D", "C"} {
		if strings.HasPrefix(rest, cand) {
			dc = cand
			break
		}
	}
	if !field61DCMarks[dc] {
		return nil, charset.NewFormatError("61", raw, "D, C, RD, or RC mark")
	}
	f.DebitCredit = dc
	rest = rest[len(dc):]

	if len(rest) > 0 && charset.IsAlphaUpper(rune(rest[0])) {
		nextIsDigit := len(rest) > 1 && charset.IsDigit(rune(rest[1]))
		if nextIsDigit {
			f.FundsCode = rest[0:1]
			rest = rest[1:]
		}
	}

	end := 0
	seenComma := false
	for end < len(rest) {
		r := rune(rest[end])
		if charset.IsDigit(r) {
			end++
			continue
		}
		if r == ',' && !seenComma {
			seenComma = true
			end++
			continue
		}
		break
	}
	if end == 0 {
		return nil, charset.NewFormatError("61", raw, "amount")
	}
	amt, err := parseAmountComponent(rest[:end], "61 amount")
	if err != nil {
		return nil, err
	}
	f.Amount = amt
	rest = rest[end:]

	if len(rest) < 1 {
		return nil, charset.NewFormatError("61", raw, "transaction type + identification code")
	}
	// transaction type is "S" (SWIFT) + 3 alnum-upper, or "N" + 3 digits,
	// i.e. always 4 characters immediately following the amount.
	if len(rest) < 4 {
		return nil, charset.NewFormatError("61", raw, "4-character transaction type/code")
	}
	f.TransactionType = rest[0:1]
	f.IdentificationCode = rest[1:4]
	rest = rest[4:]

	refPart, bankRefPart, hasBankRef := strings.Cut(rest, "//")
	cref, err := charset.ParseMaxLength(refPart, 16, "61 customer reference")
	if err != nil {
		return nil, err
	}
	if _, err := charset.ParseSwiftChars(cref, "61 customer reference"); err != nil {
		return nil, err
	}
	f.CustomerReference = cref
	if hasBankRef {
		bref, err := charset.ParseMaxLength(bankRefPart, 16, "61 bank reference")
		if err != nil {
			return nil, err
		}
		f.BankReference = bref
	}

	if len(lines) > 1 {
		sup := strings.Join(lines[1:], "\n")
		if _, err := charset.ParseMaxLength(sup, 34, "61 supplementary details"); err != nil {
			return nil, err
		}
		f.SupplementaryDetails = sup
	}

	return f, nil
}

func (f *Field61) ToWire() string {
	var b strings.Builder
	b.WriteString(f.ValueDate)
	if f.EntryMonth != "" {
		b.WriteString(f.EntryMonth)
		b.WriteString(f.EntryDay)
	}
	b.WriteString(f.DebitCredit)
	b.WriteString(f.FundsCode)
	b.WriteString(f.Amount.WireRaw())
	b.WriteString(f.TransactionType)
	b.WriteString(f.IdentificationCode)
	b.WriteString(f.CustomerReference)
	if f.BankReference != "" {
		b.WriteString("//")
		b.WriteString(f.BankReference)
	}
	if f.SupplementaryDetails != "" {
		b.WriteString("\n")
		b.WriteString(f.SupplementaryDetails)
	}
	return b.String()
}
