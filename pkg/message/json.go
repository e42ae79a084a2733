package message

import (
	"github.com/deltran/swiftmt/pkg/fields"
)

// WireFields returns the record's slots in wire emission order, one
// RawField per present occurrence. It is the shared input of both
// Serialize and the canonical JSON view.
func (m *MT103) WireFields() []RawField { return toFieldsMT103(m) }
func (m *MT110) WireFields() []RawField { return toFieldsMT110(m) }
func (m *MT202) WireFields() []RawField { return toFieldsMT202(m) }
func (m *MT292) WireFields() []RawField { return toFieldsMT292(m) }
func (m *MT920) WireFields() []RawField { return toFieldsMT920(m) }

// CanonicalFieldMap builds the stable JSON view of a field list: keys are
// SWIFT tag strings, option-lettered unions nest their value under the
// letter discriminator, and repeated tags collect into arrays in wire
// order.
func CanonicalFieldMap(fs []RawField) map[string]any {
	out := make(map[string]any, len(fs))
	for _, f := range fs {
		v := canonicalFieldValue(f.Tag, f.Variant, f.Value)
		switch existing := out[f.Tag].(type) {
		case nil:
			out[f.Tag] = v
		case []any:
			out[f.Tag] = append(existing, v)
		default:
			out[f.Tag] = []any{existing, v}
		}
	}
	return out
}

func letterKeyed(letter string, inner any) any {
	if letter == "" {
		return inner
	}
	return map[string]any{letter: inner}
}

// canonicalFieldValue re-parses one wire value into its typed component
// struct for JSON rendering. Values reaching this point came out of a
// ToWire call (or a schema-level structural parse), so a parse failure
// here only happens for tags this layer has no typed model for; those
// fall back to the raw wire string, which still round-trips stably.
func canonicalFieldValue(tag, variant, value string) any {
	switch tag {
	case "20":
		if f, err := fields.ParseField20(value); err == nil {
			return f
		}
	case "21":
		if variant != "" {
			if f, err := fields.ParseField21Lettered(variant, value); err == nil {
				return letterKeyed(variant, f)
			}
			break
		}
		if f, err := fields.ParseField21(value); err == nil {
			return f
		}
	case "23":
		switch variant {
		case "":
			if f, err := fields.ParseField23(value); err == nil {
				return f
			}
		case "B":
			if f, err := fields.ParseField23B(value); err == nil {
				return letterKeyed("B", f)
			}
		case "E":
			if f, err := fields.ParseField23E(value); err == nil {
				return letterKeyed("E", f)
			}
		}
	case "23B":
		if f, err := fields.ParseField23B(value); err == nil {
			return f
		}
	case "23E":
		if f, err := fields.ParseField23E(value); err == nil {
			return f
		}
	case "26":
		if variant == "T" {
			if f, err := fields.ParseField26T(value); err == nil {
				return letterKeyed("T", f)
			}
		}
	case "25":
		if f, err := fields.ParseField25(value); err == nil {
			return f
		}
	case "26T":
		if f, err := fields.ParseField26T(value); err == nil {
			return f
		}
	case "28":
		switch variant {
		case "":
			if f, err := fields.ParseField28(value); err == nil {
				return f
			}
		case "C":
			if f, err := fields.ParseField28C(value); err == nil {
				return letterKeyed("C", f)
			}
		case "D":
			if f, err := fields.ParseField28D(value); err == nil {
				return letterKeyed("D", f)
			}
		}
	case "28C":
		if f, err := fields.ParseField28C(value); err == nil {
			return f
		}
	case "28D":
		if f, err := fields.ParseField28D(value); err == nil {
			return f
		}
	case "32":
		switch variant {
		case "A":
			if f, err := fields.ParseField32A(value); err == nil {
				return letterKeyed("A", f)
			}
		case "B":
			if f, err := fields.ParseField32B(value); err == nil {
				return letterKeyed("B", f)
			}
		}
	case "32A":
		if f, err := fields.ParseField32A(value); err == nil {
			return f
		}
	case "32B":
		if f, err := fields.ParseField32B(value); err == nil {
			return f
		}
	case "33":
		if variant == "B" {
			if f, err := fields.ParseField33B(value); err == nil {
				return letterKeyed("B", f)
			}
		}
	case "33B":
		if f, err := fields.ParseField33B(value); err == nil {
			return f
		}
	case "34":
		if variant == "F" {
			if f, err := fields.ParseField34F(value); err == nil {
				return letterKeyed("F", f)
			}
		}
	case "34F":
		if f, err := fields.ParseField34F(value); err == nil {
			return f
		}
	case "36":
		if f, err := fields.ParseField36(value); err == nil {
			return f
		}
	case "50":
		switch variant {
		case "":
			if f, err := fields.ParseField50(value); err == nil {
				return f
			}
		case "A":
			if f, err := fields.ParseField50A(value); err == nil {
				return letterKeyed("A", f)
			}
		case "F":
			if f, err := fields.ParseField50F(value); err == nil {
				return letterKeyed("F", f)
			}
		case "K":
			if f, err := fields.ParseField50K(value); err == nil {
				return letterKeyed("K", f)
			}
		}
	case "52":
		if f, err := fields.ParseField52(variant, value); err == nil {
			switch {
			case f.C != nil:
				return letterKeyed("C", f.C)
			case f.D != nil:
				return letterKeyed("D", f.D)
			default:
				return letterKeyed(orLetter(variant, "A"), f.A)
			}
		}
	case "53", "54", "55":
		if f, err := fields.ParseField53(variant, value); err == nil {
			switch {
			case f.B != nil:
				return letterKeyed("B", f.B)
			case f.D != nil:
				return letterKeyed("D", f.D)
			default:
				return letterKeyed(orLetter(variant, "A"), f.A)
			}
		}
	case "56":
		if f, err := fields.ParseField56(variant, value); err == nil {
			switch {
			case f.C != nil:
				return letterKeyed("C", f.C)
			case f.D != nil:
				return letterKeyed("D", f.D)
			default:
				return letterKeyed(orLetter(variant, "A"), f.A)
			}
		}
	case "57":
		if f, err := fields.ParseField57(variant, value); err == nil {
			switch {
			case f.B != nil:
				return letterKeyed("B", f.B)
			case f.C != nil:
				return letterKeyed("C", f.C)
			case f.D != nil:
				return letterKeyed("D", f.D)
			default:
				return letterKeyed(orLetter(variant, "A"), f.A)
			}
		}
	case "58":
		if f, err := fields.ParseField58(variant, value); err == nil {
			if f.D != nil {
				return letterKeyed("D", f.D)
			}
			return letterKeyed(orLetter(variant, "A"), f.A)
		}
	case "59":
		if f, err := fields.ParseField59(variant, value); err == nil {
			switch {
			case f.A != nil:
				return letterKeyed("A", f.A)
			case f.F != nil:
				return letterKeyed("F", f.F)
			default:
				return f
			}
		}
	case "60":
		switch variant {
		case "F":
			if f, err := fields.ParseField60F(value); err == nil {
				return letterKeyed("F", f)
			}
		case "M":
			if f, err := fields.ParseField60M(value); err == nil {
				return letterKeyed("M", f)
			}
		}
	case "61":
		if f, err := fields.ParseField61(value); err == nil {
			return f
		}
	case "62":
		switch variant {
		case "F":
			if f, err := fields.ParseField62F(value); err == nil {
				return letterKeyed("F", f)
			}
		case "M":
			if f, err := fields.ParseField62M(value); err == nil {
				return letterKeyed("M", f)
			}
		}
	case "64":
		if f, err := fields.ParseField64(value); err == nil {
			return f
		}
	case "65":
		if f, err := fields.ParseField65(value); err == nil {
			return f
		}
	case "70":
		if f, err := fields.ParseField70(value); err == nil {
			return f
		}
	case "71":
		switch variant {
		case "A":
			if f, err := fields.ParseField71A(value); err == nil {
				return letterKeyed("A", f)
			}
		case "F":
			if f, err := fields.ParseField71F(value); err == nil {
				return letterKeyed("F", f)
			}
		case "G":
			if f, err := fields.ParseField71G(value); err == nil {
				return letterKeyed("G", f)
			}
		}
	case "71A":
		if f, err := fields.ParseField71A(value); err == nil {
			return f
		}
	case "71F":
		if f, err := fields.ParseField71F(value); err == nil {
			return f
		}
	case "71G":
		if f, err := fields.ParseField71G(value); err == nil {
			return f
		}
	case "72":
		if f, err := fields.ParseField72(value); err == nil {
			return f
		}
	case "77":
		switch variant {
		case "B":
			if f, err := fields.ParseField77B(value); err == nil {
				return letterKeyed("B", f)
			}
		case "E":
			if f, err := fields.ParseField77E(value); err == nil {
				return letterKeyed("E", f)
			}
		}
	case "77B":
		if f, err := fields.ParseField77B(value); err == nil {
			return f
		}
	case "77E":
		if f, err := fields.ParseField77E(value); err == nil {
			return f
		}
	case "79":
		if f, err := fields.ParseField79(value); err == nil {
			return f
		}
	case "86":
		if f, err := fields.ParseField86(value); err == nil {
			return f
		}
	case "90":
		switch variant {
		case "C":
			if f, err := fields.ParseField90C(value); err == nil {
				return letterKeyed("C", f)
			}
		case "D":
			if f, err := fields.ParseField90D(value); err == nil {
				return letterKeyed("D", f)
			}
		}
	}
	return letterKeyed(variant, value)
}

func orLetter(letter, fallback string) string {
	if letter == "" {
		return fallback
	}
	return letter
}

// CanonicalFields renders the record as a tag-keyed map, the "fields"
// member of the canonical JSON representation. Repetitive sub-records
// (cheques, statement requests) appear as arrays under a conventional key
// rather than flattened into their component tags.
func (m *MT103) CanonicalFields() map[string]any { return CanonicalFieldMap(m.WireFields()) }
func (m *MT202) CanonicalFields() map[string]any { return CanonicalFieldMap(m.WireFields()) }
func (m *MT292) CanonicalFields() map[string]any { return CanonicalFieldMap(m.WireFields()) }

func (m *MT110) CanonicalFields() map[string]any {
	out := map[string]any{}
	if m.SenderReference != nil {
		out["20"] = canonicalFieldValue("20", "", m.SenderReference.ToWire())
	}
	if m.SendersCorrespondent != nil {
		letter, wire := serializeField53(m.SendersCorrespondent)
		out["53"] = canonicalFieldValue("53", letter, wire)
	}
	cheques := make([]any, 0, len(m.Cheques))
	for _, c := range m.Cheques {
		cheques = append(cheques, CanonicalFieldMap(chequeFields(c)))
	}
	out["cheques"] = cheques
	return out
}

func (m *MT920) CanonicalFields() map[string]any {
	out := map[string]any{}
	if m.SenderReference != nil {
		out["20"] = canonicalFieldValue("20", "", m.SenderReference.ToWire())
	}
	requests := make([]any, 0, len(m.Requests))
	for _, r := range m.Requests {
		requests = append(requests, CanonicalFieldMap(requestFields(r)))
	}
	out["requests"] = requests
	return out
}

// CanonicalFields for a schema-driven generic record is the flat tag-keyed
// map across all carved sequences in wire order.
func (r *Record) CanonicalFields() map[string]any {
	all := make([]RawField, 0, len(r.SequenceA)+len(r.SequenceB)+len(r.SequenceC))
	all = append(all, r.SequenceA...)
	all = append(all, r.SequenceB...)
	all = append(all, r.SequenceC...)
	return CanonicalFieldMap(all)
}
