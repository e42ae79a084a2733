// Package fields implements the L4 field library (spec.md §4.4): one typed
// record per SWIFT tag, each with Parse.../ToWire matching the teacher's
// parse/serialize pairing (gateway-go/internal/swift) and the original
// Rust source's per-field hand parsers (field28.rs, field61.rs) for
// anything not a simple fixed/decimal concatenation.
package fields

import (
	"github.com/deltran/swiftmt/pkg/charset"
)

// Reference is the shared shape of every plain SWIFT-character reference
// field (20, 21, 21C/D/E/F/R, 23 free-form identification): up to maxLen
// SWIFT-X characters, no leading/trailing slash, no internal "//".
type Reference struct {
	Value string `json:"value"`
}

func parseReference(tag, raw string, maxLen int) (Reference, error) {
	if _, err := charset.ParseMaxLength(raw, maxLen, tag); err != nil {
		return Reference{}, err
	}
	if _, err := charset.ParseSwiftChars(raw, tag); err != nil {
		return Reference{}, err
	}
	if _, err := charset.ParseNoSlashWrap(raw, tag); err != nil {
		return Reference{}, err
	}
	return Reference{Value: raw}, nil
}

func (r Reference) ToWire() string { return r.Value }

// Field20 is the Sender's Reference (mandatory in almost every MT type).
type Field20 struct{ Reference }

func ParseField20(raw string) (*Field20, error) {
	r, err := parseReference("20", raw, 16)
	if err != nil {
		return nil, err
	}
	return &Field20{r}, nil
}

// Field21 is the Related Reference.
type Field21 struct{ Reference }

func ParseField21(raw string) (*Field21, error) {
	r, err := parseReference("21", raw, 16)
	if err != nil {
		return nil, err
	}
	return &Field21{r}, nil
}

// Field21Lettered covers 21C/21D/21E/21F/21R, the lettered Related
// Reference variants used by cheque/cover/return messages. SWIFT permits a
// slightly larger character budget for these (up to 16x, same as 21) but
// some (21R) are conventionally rendered without the no-slash constraint
// relaxed; we apply the same Reference rule across all of them, which
// matches every example payload in the retained corpus.
type Field21Lettered struct {
	Letter string `json:"letter"`
	Reference
}

func ParseField21Lettered(letter, raw string) (*Field21Lettered, error) {
	r, err := parseReference("21"+letter, raw, 16)
	if err != nil {
		return nil, err
	}
	return &Field21Lettered{Letter: letter, Reference: r}, nil
}

// Field23 is a generic further-identification/bank-operation-code field (up
// to 16 SWIFT-X characters), used plain ("Further Identification") rather
// than as the enumerated 23B/23E instruction fields.
type Field23 struct{ Reference }

func ParseField23(raw string) (*Field23, error) {
	r, err := parseReference("23", raw, 16)
	if err != nil {
		return nil, err
	}
	return &Field23{r}, nil
}

// Field26T is the Transaction Type Code: 3 alphanumeric-upper characters.
type Field26T struct {
	Code string `json:"code"`
}

func ParseField26T(raw string) (*Field26T, error) {
	if _, err := charset.ParseExactLength(raw, 3, "26T"); err != nil {
		return nil, err
	}
	for _, r := range raw {
		if !charset.IsAlnumUpperC(r) {
			return nil, charset.NewFormatError("26T", raw, "alphanumeric-upper")
		}
	}
	return &Field26T{Code: raw}, nil
}

func (f *Field26T) ToWire() string { return f.Code }
