package charset

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a SWIFT decimal-comma amount ("1234,56", "1000,",
// "0,05") into a decimal.Decimal. A decimal point is also accepted on
// input even though this core never emits one: tolerant input, strict
// output.
func ParseAmount(s, name string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Decimal{}, fail(name, s, "non-empty decimal amount")
	}
	for _, r := range s {
		if !IsDigit(r) && r != ',' && r != '.' {
			return decimal.Decimal{}, fail(name, s, "digits and one decimal separator")
		}
	}
	commas := strings.Count(s, ",")
	dots := strings.Count(s, ".")
	if commas+dots > 1 {
		return decimal.Decimal{}, fail(name, s, "at most one decimal separator")
	}

	normalized := s
	if commas == 1 {
		normalized = strings.Replace(s, ",", ".", 1)
	}
	if strings.HasSuffix(normalized, ".") {
		normalized += "0"
	}
	if normalized == "" {
		return decimal.Decimal{}, fail(name, s, "non-empty decimal amount")
	}

	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Decimal{}, fail(name, s, "valid decimal amount")
	}
	return d, nil
}

// FormatSwiftAmountForCurrency renders amount on the wire using the
// currency's declared decimal-place cap, decimal comma, and never a
// trailing ".0" — a zero fractional part renders as a bare trailing comma
// (e.g. "1234,"), matching real SWIFT traffic.
func FormatSwiftAmountForCurrency(amount decimal.Decimal, ccy string) string {
	decimals := Decimals(ccy)
	rounded := amount.Round(int32(decimals))
	fixed := rounded.StringFixed(int32(decimals))

	if decimals == 0 {
		return fixed + ","
	}

	intPart, fracPart, found := strings.Cut(fixed, ".")
	if !found {
		return fixed + ","
	}
	if allZero(fracPart) {
		return intPart + ","
	}
	return intPart + "," + fracPart
}

func allZero(s string) bool {
	for _, r := range s {
		if r != '0' {
			return false
		}
	}
	return true
}

// FormatAmountRaw is a convenience wrapper used where the decimal count
// should follow strconv.FormatFloat precision rather than a currency table
// (used by non-currency numeric components such as field 34F floor limits
// when the currency has already been applied upstream).
func FormatAmountRaw(amount decimal.Decimal) string {
	s := amount.String()
	return strings.ReplaceAll(s, ".", ",")
}

// ValidateDecimalPrecision enforces spec.md §8 property 7: formatting an
// amount with more fractional digits than the currency allows is rejected.
func ValidateDecimalPrecision(amount decimal.Decimal, ccy string) error {
	max := Decimals(ccy)
	exp := -amount.Exponent()
	if int(exp) > max {
		return fail("amount", amount.String(), strconv.Itoa(max)+" fractional digits for "+ccy)
	}
	return nil
}
