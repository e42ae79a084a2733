// Package swiftmt implements L8, the top-level message dispatch and
// round-trip layer (spec.md §4.8): ParseAuto reads block 2's message type
// and dispatches to the matching L7 parser, wraps the result in an
// MT-agnostic envelope, and Serialize renders it back to wire bytes.
package swiftmt

import (
	"strings"

	"github.com/deltran/swiftmt/internal/config"
	"github.com/deltran/swiftmt/pkg/framer"
	"github.com/deltran/swiftmt/pkg/message"
	"github.com/deltran/swiftmt/pkg/verrors"
	"github.com/google/uuid"
)

// ParsedMessage is the MT-agnostic envelope returned by ParseAuto: the
// framed headers plus exactly one populated record field, selected by
// MessageType. ParseID identifies this parse attempt for diagnostics and
// log correlation; it is not part of message identity (spec.md's uuid.UUID
// note, distinguishing it from any SWIFT reference field).
type ParsedMessage struct {
	ParseID     uuid.UUID           `json:"parse_id"`
	MessageType string              `json:"message_type"`
	Basic       *framer.BasicHeader `json:"basic_header"`
	App         *framer.AppHeader   `json:"application_header"`
	User        *framer.UserHeader  `json:"user_header,omitempty"`
	Trailer     *framer.Trailer     `json:"trailer,omitempty"`

	MT103 *message.MT103 `json:"mt103,omitempty"`
	MT110 *message.MT110 `json:"mt110,omitempty"`
	MT202 *message.MT202 `json:"mt202,omitempty"`
	MT292 *message.MT292 `json:"mt292,omitempty"`
	MT920 *message.MT920 `json:"mt920,omitempty"`

	Generic *message.Record `json:"generic,omitempty"`
}

// isSTP reports whether block 3's validation flag (field 119) marks this
// message as sent under the STP service type.
func isSTP(user *framer.UserHeader) bool {
	if user == nil {
		return false
	}
	return user.Fields["119"] == "STP"
}

// isCOV reports whether block 3's validation flag marks an MT202/205 as a
// cover payment.
func isCOV(user *framer.UserHeader) bool {
	if user == nil {
		return false
	}
	return user.Fields["119"] == "COV"
}

// ParseAuto frames raw, reads the message type from block 2, and dispatches
// to the matching L7 parser. It returns the envelope, a (possibly empty)
// validation report from the NVR layer, and an error only for
// framing/mandatory-field failures — NVR violations never fail the parse,
// they accumulate into the report (spec.md §4.9).
func ParseAuto(raw []byte, cfg *config.Config) (*ParsedMessage, *verrors.Report, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if cfg.Parser.MaxMessageBytes > 0 && len(raw) > cfg.Parser.MaxMessageBytes {
		return nil, nil, verrors.InvalidFormat("message exceeds configured maximum size")
	}

	framed, err := framer.Frame(raw)
	if err != nil {
		return nil, nil, err
	}

	pm := &ParsedMessage{
		ParseID:     uuid.New(),
		MessageType: framed.Block2.MessageType,
		Basic:       framed.Block1,
		App:         framed.Block2,
		User:        framed.Block3,
		Trailer:     framed.Block5,
	}

	rep := verrors.NewReport(cfg.Validation.ShortCircuit)

	switch pm.MessageType {
	case "103":
		stp := isSTP(framed.Block3)
		m, err := message.ParseMT103(framed.Block4, stp)
		if err != nil {
			return nil, nil, err
		}
		pm.MT103 = m
		m.Validate(rep)
		m.ValidateC2(BICFromBasicHeader(pm.Basic), BICFromAppHeader(pm.App), rep)
	case "202", "205":
		cov := isCOV(framed.Block3)
		m, err := message.ParseMT202(framed.Block4, cov)
		if err != nil {
			return nil, nil, err
		}
		pm.MT202 = m
		m.Validate(rep)
	case "110":
		m, err := message.ParseMT110(framed.Block4)
		if err != nil {
			return nil, nil, err
		}
		pm.MT110 = m
		m.Validate(rep)
	case "292":
		m, err := message.ParseMT292(framed.Block4)
		if err != nil {
			return nil, nil, err
		}
		pm.MT292 = m
		m.Validate(rep)
	case "920":
		m, err := message.ParseMT920(framed.Block4)
		if err != nil {
			return nil, nil, err
		}
		pm.MT920 = m
		m.Validate(rep)
	default:
		schema, ok := message.SchemaFor(pm.MessageType)
		if !ok {
			return nil, nil, verrors.ErrUnsupportedMessage
		}
		rec := message.Build(schema, framed.Block4)
		pm.Generic = rec
		message.Validate(schema, rec, cfg.Validation.MaxOccurrenceOverrides, rep)
	}

	return pm, rep, nil
}

// ToMTMessage serializes pm back to SWIFT FIN wire bytes: the original
// block 1/2/3/5 raw text plus a freshly-rendered block 4 from the typed or
// generic record.
func (pm *ParsedMessage) ToMTMessage() []byte {
	var b strings.Builder
	if pm.Basic != nil {
		b.WriteString(pm.Basic.Raw)
	}
	if pm.App != nil {
		b.WriteString(pm.App.Raw)
	}
	if pm.User != nil {
		b.WriteString(pm.User.Raw)
	}

	b.WriteString("{4:\r\n")
	b.WriteString(bodySerialize(pm))
	b.WriteString("}")

	if pm.Trailer != nil {
		b.WriteString(pm.Trailer.Raw)
	}
	return []byte(b.String())
}

func bodySerialize(pm *ParsedMessage) string {
	switch {
	case pm.MT103 != nil:
		return pm.MT103.Serialize()
	case pm.MT110 != nil:
		return pm.MT110.Serialize()
	case pm.MT202 != nil:
		return pm.MT202.Serialize()
	case pm.MT292 != nil:
		return pm.MT292.Serialize()
	case pm.MT920 != nil:
		return pm.MT920.Serialize()
	case pm.Generic != nil:
		return pm.Generic.Serialize()
	}
	return "-"
}

// BICFromBasicHeader extracts the sender BIC8 out of block 1's logical
// terminal address.
func BICFromBasicHeader(h *framer.BasicHeader) string {
	if h == nil || len(h.LogicalTerm) < 8 {
		return ""
	}
	return h.LogicalTerm[0:8]
}

// BICFromAppHeader extracts the receiver/destination BIC8 out of block 2.
func BICFromAppHeader(h *framer.AppHeader) string {
	if h == nil || len(h.DestinationAddress) < 8 {
		return ""
	}
	return h.DestinationAddress[0:8]
}
