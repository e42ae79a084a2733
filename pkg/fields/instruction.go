package fields

import (
	"strings"

	"github.com/deltran/swiftmt/pkg/charset"
)

// field23BCodes is the closed enumeration spec.md §4.4 gives for Field23B's
// Bank Operation Code.
var field23BCodes = map[string]bool{
	"CRED": true, "CRTS": true, "SPAY": true, "SPRI": true, "SSTD": true,
}

// Field23B is the Bank Operation Code.
type Field23B struct {
	Code string `json:"code"`
}

func ParseField23B(raw string) (*Field23B, error) {
	code := strings.TrimSpace(raw)
	if !field23BCodes[code] {
		return nil, charset.NewFormatError("23B", raw, "one of CRED,CRTS,SPAY,SPRI,SSTD")
	}
	return &Field23B{Code: code}, nil
}

func (f *Field23B) ToWire() string { return f.Code }

// field23ECodes is the closed enumeration for Field23E's Instruction Code.
var field23ECodes = map[string]bool{
	"CRED": true, "CRTS": true, "SPAY": true, "SPRI": true, "SSTD": true,
	"URGP": true, "SDVA": true, "TELB": true, "PHON": true, "PHOB": true,
	"PHOI": true, "TELE": true, "REPA": true, "CORT": true, "INTC": true,
	"HOLD": true,
}

// Field23E is the Instruction Code, with an optional free-text additional
// information component (e.g. "PHON/CALL BEFORE RELEASE").
type Field23E struct {
	Code                 string `json:"code"`
	AdditionalInformation string `json:"additional_information,omitempty"`
}

func ParseField23E(raw string) (*Field23E, error) {
	code, rest, hasSlash := strings.Cut(raw, "/")
	if !field23ECodes[code] {
		return nil, charset.NewFormatError("23E", raw, "a member of the 23E instruction-code enumeration")
	}
	f := &Field23E{Code: code}
	if hasSlash {
		if _, err := charset.ParseMaxLength(rest, 30, "23E additional information"); err != nil {
			return nil, err
		}
		if _, err := charset.ParseSwiftChars(rest, "23E additional information"); err != nil {
			return nil, err
		}
		f.AdditionalInformation = rest
	}
	return f, nil
}

func (f *Field23E) ToWire() string {
	if f.AdditionalInformation == "" {
		return f.Code
	}
	return f.Code + "/" + f.AdditionalInformation
}

// field71ACodes is the closed enumeration for Field71A's Details of Charges.
var field71ACodes = map[string]bool{"BEN": true, "OUR": true, "SHA": true}

// Field71A is Details of Charges.
type Field71A struct {
	Code string `json:"code"`
}

func ParseField71A(raw string) (*Field71A, error) {
	code := strings.TrimSpace(raw)
	if !field71ACodes[code] {
		return nil, charset.NewFormatError("71A", raw, "one of BEN,OUR,SHA")
	}
	return &Field71A{Code: code}, nil
}

func (f *Field71A) ToWire() string { return f.Code }
