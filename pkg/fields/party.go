package fields

import (
	"strings"

	"github.com/deltran/swiftmt/pkg/charset"
)

// NameAndAddress is the shared shape of the free-form multiline "name and
// address" lines carried by Fields 50F/50K, 59/59A/59F and similar: up to 4
// lines of up to 35 SWIFT-X characters each. Grounded on original_source's
// field50.rs / field59.rs multiline handling and DennisVis-mt's line-based
// NameAndAddress parser.
type NameAndAddress struct {
	Lines []string `json:"name_and_address"`
}

func parseMultiline(tag string, lines []string, maxLines, maxLineLen int) ([]string, error) {
	if len(lines) == 0 {
		return nil, charset.NewFormatError(tag, "", "at least one line")
	}
	if len(lines) > maxLines {
		return nil, charset.NewFormatError(tag, strings.Join(lines, "\n"), "no more than N lines")
	}
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l == "" {
			return nil, charset.NewFormatError(tag, l, "non-empty line")
		}
		if _, err := charset.ParseMaxLength(l, maxLineLen, tag); err != nil {
			return nil, err
		}
		if _, err := charset.ParseSwiftChars(l, tag); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

func splitLines(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	return strings.Split(raw, "\n")
}

// PartyAccount is the account-number line prefix ("/" + account) that
// precedes the name-and-address lines in the K and F/A-with-account
// variants of the party fields.
type PartyAccount struct {
	Account string `json:"account,omitempty"`
}

// Field50A is the Ordering Customer given by BIC (with optional account).
type Field50A struct {
	Account string `json:"account,omitempty"`
	BIC     string `json:"bic"`
}

func ParseField50A(raw string) (*Field50A, error) {
	lines := splitLines(raw)
	f := &Field50A{}
	if len(lines) > 2 {
		return nil, charset.NewFormatError("50A", raw, "[/account] line then BIC line")
	}
	bicLine := lines[len(lines)-1]
	if len(lines) == 2 {
		acct, _, ok := cutAccountLine(lines[0])
		if !ok {
			return nil, charset.NewFormatError("50A", raw, "/account on its own line")
		}
		f.Account = acct
	}
	bic, err := charset.ParseBIC(bicLine)
	if err != nil {
		return nil, err
	}
	f.BIC = bic
	return f, nil
}

func (f *Field50A) ToWire() string {
	if f.Account == "" {
		return f.BIC
	}
	return "/" + f.Account + "\n" + f.BIC
}

// cutAccountLine strips the leading "/" from an account line and returns
// the whole remainder as the account; rest is always empty, and ok is false
// when the line does not start with "/".
func cutAccountLine(line string) (account, rest string, ok bool) {
	if !strings.HasPrefix(line, "/") {
		return "", line, false
	}
	body := line[1:]
	return body, "", true
}

// Field50K is the Ordering Customer given by name and address, with an
// optional leading "/account" line.
type Field50K struct {
	Account string   `json:"account,omitempty"`
	Lines   []string `json:"name_and_address"`
}

func ParseField50K(raw string) (*Field50K, error) {
	lines := splitLines(raw)
	f := &Field50K{}
	if len(lines) > 0 && strings.HasPrefix(lines[0], "/") {
		acct, err := charset.ParseMaxLength(lines[0][1:], 34, "50K account")
		if err != nil {
			return nil, err
		}
		f.Account = acct
		lines = lines[1:]
	}
	nl, err := parseMultiline("50K", lines, 4, 35)
	if err != nil {
		return nil, err
	}
	f.Lines = nl
	return f, nil
}

func (f *Field50K) ToWire() string {
	var b strings.Builder
	if f.Account != "" {
		b.WriteString("/" + f.Account + "\n")
	}
	b.WriteString(strings.Join(f.Lines, "\n"))
	return b.String()
}

// Field50F is the structured Ordering Customer (party identifier + numbered
// name/address/country lines), used by MT103 STP.
type Field50F struct {
	PartyIdentifier string   `json:"party_identifier"`
	Lines           []string `json:"name_and_address"`
}

func ParseField50F(raw string) (*Field50F, error) {
	lines := splitLines(raw)
	if len(lines) < 1 {
		return nil, charset.NewFormatError("50F", raw, "party identifier line + at least one numbered line")
	}
	pid, err := charset.ParseMaxLength(lines[0], 35, "50F party identifier")
	if err != nil {
		return nil, err
	}
	nl, err := parseMultiline("50F", lines[1:], 4, 35)
	if err != nil {
		return nil, err
	}
	return &Field50F{PartyIdentifier: pid, Lines: nl}, nil
}

func (f *Field50F) ToWire() string {
	return f.PartyIdentifier + "\n" + strings.Join(f.Lines, "\n")
}

// Field50 is the plain, unlettered Ordering Customer variant (account plus
// name/address lines, identical shape to 50K but distinct tag).
type Field50 struct {
	Account string   `json:"account,omitempty"`
	Lines   []string `json:"name_and_address"`
}

func ParseField50(raw string) (*Field50, error) {
	k, err := ParseField50K(raw)
	if err != nil {
		return nil, err
	}
	return &Field50{Account: k.Account, Lines: k.Lines}, nil
}

func (f *Field50) ToWire() string { return (&Field50K{Account: f.Account, Lines: f.Lines}).ToWire() }

// bicOptionParty is the shared shape of the plain-BIC option letters (A)
// across the 52-58 correspondent/institution fields: optional party
// identifier line, then a BIC.
type bicOptionParty struct {
	PartyIdentifier string `json:"party_identifier,omitempty"`
	BIC             string `json:"bic"`
}

func parseBICOption(tag, raw string) (bicOptionParty, error) {
	lines := splitLines(raw)
	p := bicOptionParty{}
	bicLine := lines[len(lines)-1]
	if len(lines) == 2 {
		if !strings.HasPrefix(lines[0], "/") {
			return bicOptionParty{}, charset.NewFormatError(tag, raw, "[/party identifier]\\nBIC")
		}
		pid, err := charset.ParseMaxLength(lines[0][1:], 35, tag+" party identifier")
		if err != nil {
			return bicOptionParty{}, err
		}
		p.PartyIdentifier = pid
	} else if len(lines) != 1 {
		return bicOptionParty{}, charset.NewFormatError(tag, raw, "[/party identifier]\\nBIC")
	}
	bic, err := charset.ParseBIC(bicLine)
	if err != nil {
		return bicOptionParty{}, err
	}
	p.BIC = bic
	return p, nil
}

func (p bicOptionParty) ToWire() string {
	if p.PartyIdentifier == "" {
		return p.BIC
	}
	return "/" + p.PartyIdentifier + "\n" + p.BIC
}

// nameAddressOptionParty is the shared shape of the name-and-address option
// letter D across 52-58: optional party identifier line, then up to 4
// name/address lines.
type nameAddressOptionParty struct {
	PartyIdentifier string   `json:"party_identifier,omitempty"`
	Lines           []string `json:"name_and_address"`
}

func parseNameAddressOption(tag, raw string) (nameAddressOptionParty, error) {
	lines := splitLines(raw)
	p := nameAddressOptionParty{}
	if len(lines) > 0 && strings.HasPrefix(lines[0], "/") {
		pid, err := charset.ParseMaxLength(lines[0][1:], 35, tag+" party identifier")
		if err != nil {
			return nameAddressOptionParty{}, err
		}
		p.PartyIdentifier = pid
		lines = lines[1:]
	}
	nl, err := parseMultiline(tag, lines, 4, 35)
	if err != nil {
		return nameAddressOptionParty{}, err
	}
	p.Lines = nl
	return p, nil
}

func (p nameAddressOptionParty) ToWire() string {
	var b strings.Builder
	if p.PartyIdentifier != "" {
		b.WriteString("/" + p.PartyIdentifier + "\n")
	}
	b.WriteString(strings.Join(p.Lines, "\n"))
	return b.String()
}

// partyOnlyIdentifier is Field52C / 57C's account-identifier-only option:
// a bare "/party identifier" with no BIC and no name lines.
type partyOnlyIdentifier struct {
	PartyIdentifier string `json:"party_identifier"`
}

func parsePartyOnlyIdentifier(tag, raw string) (partyOnlyIdentifier, error) {
	if !strings.HasPrefix(raw, "/") {
		return partyOnlyIdentifier{}, charset.NewFormatError(tag, raw, "/party identifier")
	}
	pid, err := charset.ParseMaxLength(raw[1:], 34, tag+" party identifier")
	if err != nil {
		return partyOnlyIdentifier{}, err
	}
	return partyOnlyIdentifier{PartyIdentifier: pid}, nil
}

func (p partyOnlyIdentifier) ToWire() string { return "/" + p.PartyIdentifier }

// Field52 is Ordering Institution: A (BIC), C (party identifier only) or D
// (name/address).
type Field52 struct {
	A *bicOptionParty         `json:"a,omitempty"`
	C *partyOnlyIdentifier    `json:"c,omitempty"`
	D *nameAddressOptionParty `json:"d,omitempty"`
}

func ParseField52(letter, raw string) (*Field52, error) {
	switch letter {
	case "A", "":
		p, err := parseBICOption("52A", raw)
		if err != nil {
			return nil, err
		}
		return &Field52{A: &p}, nil
	case "C":
		p, err := parsePartyOnlyIdentifier("52C", raw)
		if err != nil {
			return nil, err
		}
		return &Field52{C: &p}, nil
	case "D":
		p, err := parseNameAddressOption("52D", raw)
		if err != nil {
			return nil, err
		}
		return &Field52{D: &p}, nil
	default:
		return nil, charset.NewFormatError("52"+letter, raw, "option A, C, or D")
	}
}

func (f *Field52) ToWire() (letter, wire string) {
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

// Field53 is Sender's Correspondent: A, B (party-identifier + optional
// location line), or D.
type Field53 struct {
	A *bicOptionParty         `json:"a,omitempty"`
	B *Field53B               `json:"b,omitempty"`
	D *nameAddressOptionParty `json:"d,omitempty"`
}

// Field53B is the party-identifier-plus-location-line option shared by
// 53B/54B/55B/56B.
type Field53B struct {
	PartyIdentifier string `json:"party_identifier,omitempty"`
	Location        string `json:"location,omitempty"`
}

func parseOptionB(tag, raw string) (Field53B, error) {
	lines := splitLines(raw)
	f := Field53B{}
	idx := 0
	if idx < len(lines) && strings.HasPrefix(lines[idx], "/") {
		pid, err := charset.ParseMaxLength(lines[idx][1:], 34, tag+" party identifier")
		if err != nil {
			return Field53B{}, err
		}
		f.PartyIdentifier = pid
		idx++
	}
	if idx < len(lines) {
		loc, err := charset.ParseMaxLength(lines[idx], 35, tag+" location")
		if err != nil {
			return Field53B{}, err
		}
		f.Location = loc
		idx++
	}
	if idx != len(lines) {
		return Field53B{}, charset.NewFormatError(tag, raw, "[/party identifier]\\n[location]")
	}
	return f, nil
}

func (f Field53B) ToWire() string {
	var parts []string
	if f.PartyIdentifier != "" {
		parts = append(parts, "/"+f.PartyIdentifier)
	}
	if f.Location != "" {
		parts = append(parts, f.Location)
	}
	return strings.Join(parts, "\n")
}

func ParseField53(letter, raw string) (*Field53, error) {
	switch letter {
	case "A", "":
		p, err := parseBICOption("53A", raw)
		if err != nil {
			return nil, err
		}
		return &Field53{A: &p}, nil
	case "B":
		p, err := parseOptionB("53B", raw)
		if err != nil {
			return nil, err
		}
		return &Field53{B: &p}, nil
	case "D":
		p, err := parseNameAddressOption("53D", raw)
		if err != nil {
			return nil, err
		}
		return &Field53{D: &p}, nil
	default:
		return nil, charset.NewFormatError("53"+letter, raw, "option A, B, or D")
	}
}

// Field54 and Field55 share the A/B/D option shape of Field53 with
// different semantic roles (Receiver's Correspondent and Third
// Reimbursement Institution); Field56 (Intermediary Institution) instead
// has the A/C/D shape of Field52.
type Field54 struct {
	A *bicOptionParty         `json:"a,omitempty"`
	B *Field53B               `json:"b,omitempty"`
	D *nameAddressOptionParty `json:"d,omitempty"`
}

func ParseField54(letter, raw string) (*Field54, error) {
	f53, err := ParseField53(letter, raw)
	if err != nil {
		return nil, err
	}
	return &Field54{A: f53.A, B: f53.B, D: f53.D}, nil
}

type Field55 struct {
	A *bicOptionParty         `json:"a,omitempty"`
	B *Field53B               `json:"b,omitempty"`
	D *nameAddressOptionParty `json:"d,omitempty"`
}

func ParseField55(letter, raw string) (*Field55, error) {
	f53, err := ParseField53(letter, raw)
	if err != nil {
		return nil, err
	}
	return &Field55{A: f53.A, B: f53.B, D: f53.D}, nil
}

type Field56 struct {
	A *bicOptionParty         `json:"a,omitempty"`
	C *partyOnlyIdentifier    `json:"c,omitempty"`
	D *nameAddressOptionParty `json:"d,omitempty"`
}

func ParseField56(letter, raw string) (*Field56, error) {
	f52, err := ParseField52(letter, raw)
	if err != nil {
		return nil, err
	}
	return &Field56{A: f52.A, C: f52.C, D: f52.D}, nil
}

// Field57 is Account With Institution: A, B, C, or D (the only party field
// with all four option letters, per spec.md §4.4).
type Field57 struct {
	A *bicOptionParty         `json:"a,omitempty"`
	B *Field53B               `json:"b,omitempty"`
	C *partyOnlyIdentifier    `json:"c,omitempty"`
	D *nameAddressOptionParty `json:"d,omitempty"`
}

func ParseField57(letter, raw string) (*Field57, error) {
	switch letter {
	case "A", "":
		p, err := parseBICOption("57A", raw)
		if err != nil {
			return nil, err
		}
		return &Field57{A: &p}, nil
	case "B":
		p, err := parseOptionB("57B", raw)
		if err != nil {
			return nil, err
		}
		return &Field57{B: &p}, nil
	case "C":
		p, err := parsePartyOnlyIdentifier("57C", raw)
		if err != nil {
			return nil, err
		}
		return &Field57{C: &p}, nil
	case "D":
		p, err := parseNameAddressOption("57D", raw)
		if err != nil {
			return nil, err
		}
		return &Field57{D: &p}, nil
	default:
		return nil, charset.NewFormatError("57"+letter, raw, "option A, B, C, or D")
	}
}

// Field58 is Beneficiary Institution: A or D only (no B, no C).
type Field58 struct {
	A *bicOptionParty         `json:"a,omitempty"`
	D *nameAddressOptionParty `json:"d,omitempty"`
}

func ParseField58(letter, raw string) (*Field58, error) {
	switch letter {
	case "A", "":
		p, err := parseBICOption("58A", raw)
		if err != nil {
			return nil, err
		}
		return &Field58{A: &p}, nil
	case "D":
		p, err := parseNameAddressOption("58D", raw)
		if err != nil {
			return nil, err
		}
		return &Field58{D: &p}, nil
	default:
		return nil, charset.NewFormatError("58"+letter, raw, "option A or D")
	}
}

// Field59 is the Beneficiary Customer: the unlettered option (account +
// name/address, no party identifier slash form), A (BIC), or F (structured
// numbered lines like 50F).
type Field59 struct {
	Account *string                 `json:"account,omitempty"`
	Lines   []string                `json:"name_and_address,omitempty"`
	A       *bicOptionParty         `json:"a,omitempty"`
	F       *Field50F               `json:"f,omitempty"`
}

func ParseField59(letter, raw string) (*Field59, error) {
	switch letter {
	case "A":
		p, err := parseBICOption("59A", raw)
		if err != nil {
			return nil, err
		}
		return &Field59{A: &p}, nil
	case "F":
		f, err := ParseField50F(raw)
		if err != nil {
			return nil, err
		}
		return &Field59{F: f}, nil
	case "":
		lines := splitLines(raw)
		f := &Field59{}
		if len(lines) > 0 && strings.HasPrefix(lines[0], "/") {
			acct, err := charset.ParseMaxLength(lines[0][1:], 34, "59 account")
			if err != nil {
				return nil, err
			}
			f.Account = &acct
			lines = lines[1:]
		}
		nl, err := parseMultiline("59", lines, 4, 35)
		if err != nil {
			return nil, err
		}
		f.Lines = nl
		return f, nil
	default:
		return nil, charset.NewFormatError("59"+letter, raw, "unlettered, option A, or option F")
	}
}

func (f *Field59) ToWire() (letter, wire string) {
	switch {
	case f.A != nil:
		return "A", f.A.ToWire()
	case f.F != nil:
		return "F", f.F.ToWire()
	default:
		var b strings.Builder
		if f.Account != nil {
			b.WriteString("/" + *f.Account + "\n")
		}
		b.WriteString(strings.Join(f.Lines, "\n"))
		return "", b.String()
	}
}
