// Package framer implements the SWIFT FIN block/tag framer (spec.md §4.5):
// splitting a raw transmission into blocks {1:...}{2:...}{3:...}{4:...-}{5:...}
// and, inside block 4, into an ordered, duplicate-preserving list of
// (tag, variant letter, value) occurrences.
package framer

import (
	"fmt"
	"strings"

	"github.com/deltran/swiftmt/pkg/charset"
	"github.com/deltran/swiftmt/pkg/verrors"
)

// TagOccurrence is the atomic output of the framer: one field appearance in
// block 4. Position is the sole ordering key and is never reassigned or
// dropped downstream — duplicates are significant and drive repetition
// (spec.md §3, §9 "position-carried state").
type TagOccurrence struct {
	Tag      string // digits only, e.g. "32"
	Variant  string // letter suffix, e.g. "A"; empty when the tag has none
	Value    string // raw value, continuation lines joined by "\n"
	Position int
}

// FullTag returns the wire tag including any variant letter, e.g. "52A".
func (o TagOccurrence) FullTag() string { return o.Tag + o.Variant }

// BasicHeader is block 1, the mandatory basic header.
type BasicHeader struct {
	ApplicationID  string // 1 char: F/A/L
	ServiceID      string // 2 digits
	LogicalTerm    string // 12-char sender LT (BIC8 + terminal code + branch)
	SessionNumber  string // 4 digits
	SequenceNumber string // 6 digits
	Raw            string
}

// AppHeader is block 2, the application header. Exactly one of Input/Output
// is meaningful, selected by IO.
type AppHeader struct {
	IO                 byte // 'I' or 'O'
	MessageType        string
	DestinationAddress string // 12-char BIC address (input) or source (output)
	Priority           string // U/N/S, input only
	DeliveryMonitoring string
	Obsolescence       string
	InputTime          string // output only
	OutputDate         string
	OutputTime         string
	Raw                string
}

// UserHeader is block 3, an optional set of {tag:value} sub-fields.
type UserHeader struct {
	Fields map[string]string
	Raw    string
}

// Trailer is block 5, an optional set of {tag:value} sub-fields.
type Trailer struct {
	Fields map[string]string
	Raw    string
}

// Message is the complete framed output of one SWIFT FIN transmission.
type Message struct {
	Block1 *BasicHeader
	Block2 *AppHeader
	Block3 *UserHeader
	Block4 []TagOccurrence
	Block5 *Trailer
}

// Frame splits raw bytes into blocks and, for block 4, into an ordered list
// of tag occurrences.
func Frame(raw []byte) (*Message, error) {
	text := normalizeNewlines(string(raw))
	blocks, err := splitTopLevelBlocks(text)
	if err != nil {
		return nil, err
	}

	msg := &Message{}
	for _, b := range blocks {
		if len(b) < 3 || b[0] != '{' {
			return nil, verrors.InvalidFormat("malformed block: " + b)
		}
		switch b[1] {
		case '1':
			h, err := parseBlock1(b)
			if err != nil {
				return nil, err
			}
			msg.Block1 = h
		case '2':
			h, err := parseBlock2(b)
			if err != nil {
				return nil, err
			}
			msg.Block2 = h
		case '3':
			msg.Block3 = parseBraceFields(b, "{3:")
		case '4':
			occ, err := parseBlock4(b)
			if err != nil {
				return nil, err
			}
			msg.Block4 = occ
		case '5':
			msg.Block5 = &Trailer{Fields: parseBraceFields(b, "{5:").Fields, Raw: b}
		}
	}

	if msg.Block1 == nil || msg.Block2 == nil {
		return nil, verrors.InvalidFormat("message missing block 1 or block 2")
	}
	if msg.Block4 == nil {
		return nil, verrors.InvalidFormat("message missing block 4")
	}
	return msg, nil
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// splitTopLevelBlocks scans for {k: ... } at brace-nesting depth 0, where k
// is 1-5. Block 4's body may itself contain literal '{'/'}' inside field
// values (e.g. a narrative referencing ISO 20022 tags), so this tracks
// nesting depth rather than using a single non-nested regex.
func splitTopLevelBlocks(text string) ([]string, error) {
	var blocks []string
	i := 0
	n := len(text)
	for i < n {
		if text[i] != '{' {
			i++
			continue
		}
		if i+2 >= n || text[i+1] < '1' || text[i+1] > '5' || text[i+2] != ':' {
			i++
			continue
		}
		start := i
		depth := 1
		j := i + 1
		for j < n && depth > 0 {
			switch text[j] {
			case '{':
				depth++
			case '}':
				depth--
			}
			j++
		}
		if depth != 0 {
			return nil, verrors.InvalidFormat(fmt.Sprintf("unterminated block starting at offset %d", start))
		}
		blocks = append(blocks, text[start:j])
		i = j
	}
	if len(blocks) < 2 {
		return nil, verrors.InvalidFormat("expected at least blocks 1 and 2")
	}
	return blocks, nil
}

func parseBlock1(b string) (*BasicHeader, error) {
	body := strings.TrimSuffix(strings.TrimPrefix(b, "{1:"), "}")
	if len(body) != 25 {
		return nil, verrors.InvalidFormat(fmt.Sprintf("block 1 length %d, expected 25", len(body)))
	}
	return &BasicHeader{
		ApplicationID:  body[0:1],
		ServiceID:      body[1:3],
		LogicalTerm:    body[3:15],
		SessionNumber:  body[15:19],
		SequenceNumber: body[19:25],
		Raw:            b,
	}, nil
}

func parseBlock2(b string) (*AppHeader, error) {
	body := strings.TrimSuffix(strings.TrimPrefix(b, "{2:"), "}")
	if len(body) < 4 {
		return nil, verrors.InvalidFormat("block 2 too short")
	}
	io := body[0]
	rest := body[1:]
	if len(rest) < 3 {
		return nil, verrors.InvalidFormat("block 2 missing message type")
	}
	h := &AppHeader{IO: io, MessageType: rest[0:3], Raw: b}
	rest = rest[3:]

	switch io {
	case 'I':
		if len(rest) < 13 {
			return nil, verrors.InvalidFormat("block 2 (input) missing destination/priority")
		}
		h.DestinationAddress = rest[0:12]
		h.Priority = rest[12:13]
		rest = rest[13:]
		if len(rest) >= 1 {
			h.DeliveryMonitoring = rest[0:1]
			rest = rest[1:]
		}
		if len(rest) >= 3 {
			h.Obsolescence = rest[0:3]
		}
	case 'O':
		if len(rest) < 6+12 {
			return nil, verrors.InvalidFormat("block 2 (output) too short")
		}
		h.InputTime = rest[0:4]
		rest = rest[4:]
		// MIR (28 chars): date(6)+LT(12)+session(4)+seq(6)
		if len(rest) >= 28 {
			rest = rest[28:]
		}
		if len(rest) >= 6 {
			h.OutputDate = rest[0:6]
			rest = rest[6:]
		}
		if len(rest) >= 4 {
			h.OutputTime = rest[0:4]
			rest = rest[4:]
		}
		if len(rest) >= 1 {
			h.Priority = rest[0:1]
		}
	default:
		return nil, verrors.InvalidFormat(fmt.Sprintf("block 2: unknown I/O flag %q", string(io)))
	}
	return h, nil
}

// parseBraceFields parses the {tag:value}{tag:value}... sub-structure used
// by blocks 3 and 5.
func parseBraceFields(b, prefix string) *UserHeader {
	body := strings.TrimSuffix(strings.TrimPrefix(b, prefix), "}")
	fields := map[string]string{}
	i := 0
	for i < len(body) {
		if body[i] != '{' {
			i++
			continue
		}
		end := strings.IndexByte(body[i:], '}')
		if end < 0 {
			break
		}
		inner := body[i+1 : i+end]
		tag, val, ok := strings.Cut(inner, ":")
		if ok {
			fields[tag] = val
		}
		i += end + 1
	}
	return &UserHeader{Fields: fields, Raw: b}
}

// parseBlock4 tokenises the text block into (tag, variant, value, position)
// occurrences. A new field starts at a line of the form ":<digits><letter?>:"
// continuation lines (those not starting with ':' followed by a valid tag
// shape) are appended, newline-joined, to the current field's value.
func parseBlock4(b string) ([]TagOccurrence, error) {
	body := strings.TrimPrefix(b, "{4:")
	body = strings.TrimPrefix(body, "\n")
	if !strings.HasSuffix(body, "}") {
		return nil, verrors.InvalidFormat("block 4 missing closing brace")
	}
	body = strings.TrimSuffix(body, "}")
	body = strings.TrimSuffix(body, "\n-")
	if strings.HasSuffix(body, "-") && !strings.Contains(body, "\n-") {
		// degenerate case: "-" immediately after last field with no newline
		body = strings.TrimSuffix(body, "-")
	}

	lines := strings.Split(body, "\n")
	var occurrences []TagOccurrence
	var curTag, curVariant string
	var curValue []string
	position := 0
	flush := func() {
		if curTag == "" {
			return
		}
		occurrences = append(occurrences, TagOccurrence{
			Tag:      curTag,
			Variant:  curVariant,
			Value:    strings.Join(curValue, "\n"),
			Position: position,
		})
		position++
		curTag, curVariant, curValue = "", "", nil
	}

	for _, line := range lines {
		tag, variant, val, isField := parseFieldLine(line)
		if isField {
			flush()
			curTag, curVariant = tag, variant
			curValue = []string{val}
		} else {
			if curTag == "" {
				if strings.TrimSpace(line) == "" {
					continue
				}
				return nil, verrors.InvalidFormat("continuation line before any field: " + line)
			}
			curValue = append(curValue, line)
		}
	}
	flush()
	return occurrences, nil
}

// parseFieldLine recognises ":<2-3 digits><optional letter>:value" at the
// start of a line.
func parseFieldLine(line string) (tag, variant, value string, ok bool) {
	if len(line) < 2 || line[0] != ':' {
		return "", "", "", false
	}
	i := 1
	digitStart := i
	for i < len(line) && charset.IsDigit(rune(line[i])) {
		i++
	}
	ndigits := i - digitStart
	if ndigits < 2 || ndigits > 3 {
		return "", "", "", false
	}
	tag = line[digitStart:i]
	if i < len(line) && line[i] >= 'A' && line[i] <= 'Z' {
		variant = string(line[i])
		i++
	}
	if i >= len(line) || line[i] != ':' {
		return "", "", "", false
	}
	value = line[i+1:]
	return tag, variant, value, true
}
