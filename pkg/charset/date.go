package charset

import (
	"fmt"
	"time"
)

// ParseDateYYMMDD parses a 6-digit SWIFT date using the Y2K pivot window:
// 00-49 maps to 20YY, 50-99 maps to 19YY.
func ParseDateYYMMDD(s, name string) (time.Time, error) {
	if _, err := ParseExactLength(s, 6, name); err != nil {
		return time.Time{}, err
	}
	if _, err := ParseSwiftDigits(s, name); err != nil {
		return time.Time{}, err
	}
	yy, mm, dd := s[0:2], s[2:4], s[4:6]
	year := 2000 + atoi(yy)
	if atoi(yy) >= 50 {
		year = 1900 + atoi(yy)
	}
	return validDate(name, s, year, atoi(mm), atoi(dd))
}

// ParseDateYYYYMMDD parses an 8-digit date, used by block 1/2 framing and a
// handful of fields that carry a full year on the wire.
func ParseDateYYYYMMDD(s, name string) (time.Time, error) {
	if _, err := ParseExactLength(s, 8, name); err != nil {
		return time.Time{}, err
	}
	if _, err := ParseSwiftDigits(s, name); err != nil {
		return time.Time{}, err
	}
	return validDate(name, s, atoi(s[0:4]), atoi(s[4:6]), atoi(s[6:8]))
}

func validDate(name, raw string, year, month, day int) (time.Time, error) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fail(name, raw, "valid calendar date")
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, fail(name, raw, "valid calendar date")
	}
	return t, nil
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}

// FormatDateYYMMDD renders t as a 6-digit SWIFT date.
func FormatDateYYMMDD(t time.Time) string {
	return fmt.Sprintf("%02d%02d%02d", t.Year()%100, t.Month(), t.Day())
}

// FormatDateYYYYMMDD renders t as an 8-digit date.
func FormatDateYYYYMMDD(t time.Time) string {
	return fmt.Sprintf("%04d%02d%02d", t.Year(), t.Month(), t.Day())
}

// ParseMonthDay parses a 4-digit MMDD component used by field 61's optional
// entry date, which carries no year of its own.
func ParseMonthDay(s, name string) (month, day int, err error) {
	if _, err := ParseExactLength(s, 4, name); err != nil {
		return 0, 0, err
	}
	if _, err := ParseSwiftDigits(s, name); err != nil {
		return 0, 0, err
	}
	mm, dd := atoi(s[0:2]), atoi(s[2:4])
	if mm < 1 || mm > 12 || dd < 1 || dd > 31 {
		return 0, 0, fail(name, s, "valid month/day")
	}
	return mm, dd, nil
}
