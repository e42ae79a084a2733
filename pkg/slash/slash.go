// Package slash centralises the five slash-prefix modes used throughout the
// field grammar (spec.md §4.3), so field implementations in pkg/fields never
// hand-roll slash stripping/adding.
package slash

import (
	"fmt"
	"strings"
)

// Mode identifies one of the five slash-handling strategies a format
// component can declare.
type Mode int

const (
	// None applies no slash handling; the value passes through unchanged.
	None Mode = iota
	// Optional strips/adds a single leading slash only when the value is
	// present ("[/x]").
	Optional
	// Required mandates exactly one leading slash ("/x").
	Required
	// Double mandates two leading slashes, collapsing a single slash to two
	// on serialize ("[//x]" / "//x").
	Double
	// Wrapper wraps the value between a leading and trailing slash
	// ("/x/"), stripping any pre-existing wrapping slashes on parse.
	Wrapper
	// OptionalNumeric is Optional restricted to a digit-only payload with a
	// declared maximum width ("[/5n]").
	OptionalNumeric
)

// Parse strips the slash(es) this mode prescribes from raw and returns the
// bare content. maxDigits is only consulted for OptionalNumeric.
func Parse(mode Mode, raw string, maxDigits int) (string, error) {
	switch mode {
	case None:
		return raw, nil
	case Optional:
		if raw == "" {
			return "", nil
		}
		if !strings.HasPrefix(raw, "/") {
			return raw, nil
		}
		return strings.TrimPrefix(raw, "/"), nil
	case Required:
		if !strings.HasPrefix(raw, "/") {
			return "", fmt.Errorf("slash: required leading '/' missing in %q", raw)
		}
		return strings.TrimPrefix(raw, "/"), nil
	case Double:
		if raw == "" {
			return "", nil
		}
		if strings.HasPrefix(raw, "//") {
			return raw[2:], nil
		}
		if strings.HasPrefix(raw, "/") {
			return raw[1:], nil
		}
		return raw, nil
	case Wrapper:
		if raw == "" {
			return "", nil
		}
		v := raw
		v = strings.TrimPrefix(v, "/")
		v = strings.TrimSuffix(v, "/")
		return v, nil
	case OptionalNumeric:
		if raw == "" {
			return "", nil
		}
		if !strings.HasPrefix(raw, "/") {
			return "", fmt.Errorf("slash: optional-numeric component must start with '/' when present: %q", raw)
		}
		content := raw[1:]
		if len(content) > maxDigits {
			return "", fmt.Errorf("slash: numeric component exceeds %d digits: %q", maxDigits, content)
		}
		for _, r := range content {
			if r < '0' || r > '9' {
				return "", fmt.Errorf("slash: numeric component contains non-digit: %q", content)
			}
		}
		return content, nil
	default:
		return "", fmt.Errorf("slash: unknown mode %d", mode)
	}
}

// Serialize applies the slash(es) this mode prescribes to value. It is
// idempotent: Serialize(mode, Serialize(mode, v)) == Serialize(mode, v).
func Serialize(mode Mode, value string) string {
	switch mode {
	case None:
		return value
	case Optional:
		if value == "" {
			return ""
		}
		return "/" + strings.TrimPrefix(value, "/")
	case Required:
		return "/" + strings.TrimPrefix(value, "/")
	case Double:
		v := strings.TrimPrefix(strings.TrimPrefix(value, "/"), "/")
		if v == "" {
			return ""
		}
		return "//" + v
	case Wrapper:
		if value == "" {
			return "//"
		}
		v := strings.TrimPrefix(value, "/")
		v = strings.TrimSuffix(v, "/")
		return "/" + v + "/"
	case OptionalNumeric:
		if value == "" {
			return ""
		}
		return "/" + strings.TrimPrefix(value, "/")
	default:
		return value
	}
}
