package grammar

import (
	"fmt"
	"strings"
)

// ParseValues walks the compiled component list over raw and returns one
// string per component. It implements the "regular" case described in the
// package doc: every component except possibly the last is Exact-length;
// the last component, if UpTo or Lines, greedily consumes the remainder of
// raw. This covers every concatenated fixed/decimal grammar in pkg/fields
// (32A, 60F/60M, 62F/62M, 71F/71G, 90C/90D, ...). Components carrying a
// slash mode are expected to have already had their slash stripped by the
// caller via pkg/slash — ParseValues only handles bare character classes.
func (s *Spec) ParseValues(raw string) ([]string, error) {
	values := make([]string, len(s.Components))
	pos := 0
	last := len(s.Components) - 1
	for idx, c := range s.Components {
		remaining := raw[pos:]
		if c.Optional && remaining == "" {
			values[idx] = ""
			continue
		}
		switch c.Length {
		case Exact:
			if len(remaining) < c.N {
				return nil, fmt.Errorf("grammar: %q too short for component %d (need %d exact chars)", raw, idx, c.N)
			}
			values[idx] = remaining[:c.N]
			pos += c.N
		case UpTo:
			if idx != last {
				return nil, fmt.Errorf("grammar: up-to component %d must be the final component in %q", idx, s.Raw)
			}
			if len(remaining) > c.N {
				return nil, fmt.Errorf("grammar: %q exceeds max length %d for final component", remaining, c.N)
			}
			values[idx] = remaining
			pos += len(remaining)
		case Lines:
			if idx != last {
				return nil, fmt.Errorf("grammar: lines component %d must be the final component in %q", idx, s.Raw)
			}
			lines := strings.Split(remaining, "\n")
			if len(lines) > c.LineMax {
				return nil, fmt.Errorf("grammar: %d lines exceeds max %d", len(lines), c.LineMax)
			}
			for _, ln := range lines {
				if len(ln) > c.N {
					return nil, fmt.Errorf("grammar: line %q exceeds max width %d", ln, c.N)
				}
			}
			values[idx] = remaining
			pos += len(remaining)
		}
	}
	if pos != len(raw) {
		return nil, fmt.Errorf("grammar: %q has unconsumed trailing data %q", raw, raw[pos:])
	}
	return values, nil
}

// Serialize concatenates component values with no separators, the inverse
// of ParseValues.
func (s *Spec) Serialize(values []string) string {
	var b strings.Builder
	for _, v := range values {
		b.WriteString(v)
	}
	return b.String()
}
