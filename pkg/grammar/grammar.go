// Package grammar compiles SWIFT format specifiers ("3!n6!n3!a15d",
// "[/1!a]4!a2!a2!c[3!c]", "6*35x") into an ordered component list plus a
// structural regex, per spec.md §4.2. Components with simple concatenated
// fixed/decimal grammars (amounts, dates, BIC-shaped option letters) are
// driven end to end by Spec.ParseValues/Serialize; fields with genuinely
// free-form multi-line or option-variant content (50/59 name-and-address,
// 61 statement lines, 86/77B narrative) parse by hand in pkg/fields using
// pkg/charset and pkg/slash directly — the same split-and-slice approach
// the original Rust implementation's field parsers use, rather than forcing
// every field through one generic combinator.
package grammar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/deltran/swiftmt/pkg/charset"
	"github.com/deltran/swiftmt/pkg/slash"
)

// Charset identifies the component-level character class.
type Charset int

const (
	AlphaUpper Charset = iota // a
	Digits                    // n
	AlnumUpperC               // c
	SwiftX                    // x
	DecimalAmount             // d
)

// LengthKind identifies how a component's length is declared.
type LengthKind int

const (
	Exact LengthKind = iota // n!
	UpTo                    // n
	Lines                   // m*n
)

// Component is one element of a compiled format specifier.
type Component struct {
	Slash    slash.Mode
	Optional bool
	Length   LengthKind
	N        int // chars per unit (Exact/UpTo), or chars per line (Lines)
	LineMax  int // number of lines, only set when Length == Lines
	Charset  Charset
}

// Spec is a compiled format specifier: the component list plus a structural
// regex used for whole-value sanity checks (spec.md §4.2's "single regex
// used to locate boundaries").
type Spec struct {
	Raw        string
	Components []Component
	Pattern    *regexp.Regexp
}

// Compile parses a format specifier string into a Spec.
func Compile(specifier string) (*Spec, error) {
	var components []Component
	var patternParts []string
	rest := specifier
	for rest != "" {
		c, consumed, err := compileComponent(rest)
		if err != nil {
			return nil, fmt.Errorf("grammar: compiling %q: %w", specifier, err)
		}
		components = append(components, c)
		patternParts = append(patternParts, componentPattern(c))
		rest = rest[consumed:]
	}
	pattern, err := regexp.Compile("^" + strings.Join(patternParts, "") + "$")
	if err != nil {
		return nil, fmt.Errorf("grammar: building pattern for %q: %w", specifier, err)
	}
	return &Spec{Raw: specifier, Components: components, Pattern: pattern}, nil
}

// MustCompile panics on a malformed specifier; used for package-level field
// grammar tables where the specifier is a compile-time constant.
func MustCompile(specifier string) *Spec {
	s, err := Compile(specifier)
	if err != nil {
		panic(err)
	}
	return s
}

func compileComponent(s string) (Component, int, error) {
	i := 0
	optional := false
	if s[i] == '[' {
		optional = true
		i++
	}
	slashes := 0
	for i < len(s) && s[i] == '/' {
		slashes++
		i++
	}
	start := i
	for i < len(s) && charset.IsDigit(rune(s[i])) {
		i++
	}
	if i == start {
		return Component{}, 0, fmt.Errorf("expected digit at offset %d in %q", i, s)
	}
	firstNum, _ := strconv.Atoi(s[start:i])

	length := UpTo
	n := firstNum
	lineMax := 0

	if i < len(s) && s[i] == '*' {
		i++
		start2 := i
		for i < len(s) && charset.IsDigit(rune(s[i])) {
			i++
		}
		if i == start2 {
			return Component{}, 0, fmt.Errorf("expected digit after '*' at offset %d in %q", i, s)
		}
		secondNum, _ := strconv.Atoi(s[start2:i])
		length = Lines
		lineMax = firstNum
		n = secondNum
	}

	if i < len(s) && s[i] == '!' {
		i++
		if length != Lines {
			length = Exact
		}
	}

	if i >= len(s) {
		return Component{}, 0, fmt.Errorf("missing charset letter at offset %d in %q", i, s)
	}
	cs, err := charsetFromByte(s[i])
	if err != nil {
		return Component{}, 0, err
	}
	i++

	trailingSlash := false
	if i < len(s) && s[i] == '/' {
		trailingSlash = true
		i++
	}

	if optional {
		if i >= len(s) || s[i] != ']' {
			return Component{}, 0, fmt.Errorf("missing closing ']' in %q", s)
		}
		i++
	}

	mode := resolveSlashMode(slashes, trailingSlash, optional, cs)

	return Component{
		Slash:    mode,
		Optional: optional,
		Length:   length,
		N:        n,
		LineMax:  lineMax,
		Charset:  cs,
	}, i, nil
}

func resolveSlashMode(slashes int, trailingSlash, optional bool, cs Charset) slash.Mode {
	switch {
	case slashes == 1 && trailingSlash:
		return slash.Wrapper
	case slashes == 2:
		return slash.Double
	case slashes == 1 && optional && cs == Digits:
		return slash.OptionalNumeric
	case slashes == 1 && optional:
		return slash.Optional
	case slashes == 1:
		return slash.Required
	default:
		return slash.None
	}
}

func charsetFromByte(b byte) (Charset, error) {
	switch b {
	case 'a':
		return AlphaUpper, nil
	case 'n':
		return Digits, nil
	case 'c':
		return AlnumUpperC, nil
	case 'x':
		return SwiftX, nil
	case 'd':
		return DecimalAmount, nil
	default:
		return 0, fmt.Errorf("unknown charset letter %q", string(b))
	}
}

func componentPattern(c Component) string {
	var class string
	switch {
	case c.Length == Lines:
		class = "[\\s\\S]"
	default:
		switch c.Charset {
		case AlphaUpper:
			class = "[A-Z]"
		case Digits:
			class = "[0-9]"
		case AlnumUpperC:
			class = "[A-Z0-9/\\-?.,()'+]"
		case SwiftX:
			class = "[A-Za-z0-9/:?,()+.'\\- ]"
		case DecimalAmount:
			class = "[0-9,.]"
		default:
			class = "."
		}
	}
	quant := "*"
	if c.Length == Exact {
		quant = fmt.Sprintf("{%d}", c.N)
	} else if c.Length == UpTo {
		quant = fmt.Sprintf("{0,%d}", c.N)
	}
	body := class + quant
	if c.Optional {
		return "(?:" + body + ")?"
	}
	return body
}
