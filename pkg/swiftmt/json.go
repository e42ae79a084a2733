package swiftmt

import (
	"encoding/json"

	"github.com/deltran/swiftmt/pkg/framer"
)

// canonicalMessage is the stable interchange shape: block headers by
// number, then a single "fields" object keyed by SWIFT tag. ParseID is
// deliberately absent — it identifies a parse attempt, not the message,
// and must not participate in round-trip equality.
type canonicalMessage struct {
	Block1 *canonicalBlock1  `json:"block_1"`
	Block2 *canonicalBlock2  `json:"block_2"`
	Block3 map[string]string `json:"block_3,omitempty"`
	Fields map[string]any    `json:"fields"`
	Block5 map[string]string `json:"block_5,omitempty"`
}

type canonicalBlock1 struct {
	ApplicationID   string `json:"application_id"`
	ServiceID       string `json:"service_id"`
	LogicalTerminal string `json:"logical_terminal"`
	SessionNumber   string `json:"session_number"`
	SequenceNumber  string `json:"sequence_number"`
}

type canonicalBlock2 struct {
	IO                 string `json:"io"`
	MessageType        string `json:"message_type"`
	DestinationAddress string `json:"destination_address,omitempty"`
	Priority           string `json:"priority,omitempty"`
	DeliveryMonitoring string `json:"delivery_monitoring,omitempty"`
	Obsolescence       string `json:"obsolescence,omitempty"`
	InputTime          string `json:"input_time,omitempty"`
	OutputDate         string `json:"output_date,omitempty"`
	OutputTime         string `json:"output_time,omitempty"`
}

func canonicalizeBlock1(h *framer.BasicHeader) *canonicalBlock1 {
	if h == nil {
		return nil
	}
	return &canonicalBlock1{
		ApplicationID:   h.ApplicationID,
		ServiceID:       h.ServiceID,
		LogicalTerminal: h.LogicalTerm,
		SessionNumber:   h.SessionNumber,
		SequenceNumber:  h.SequenceNumber,
	}
}

func canonicalizeBlock2(h *framer.AppHeader) *canonicalBlock2 {
	if h == nil {
		return nil
	}
	return &canonicalBlock2{
		IO:                 string(h.IO),
		MessageType:        h.MessageType,
		DestinationAddress: h.DestinationAddress,
		Priority:           h.Priority,
		DeliveryMonitoring: h.DeliveryMonitoring,
		Obsolescence:       h.Obsolescence,
		InputTime:          h.InputTime,
		OutputDate:         h.OutputDate,
		OutputTime:         h.OutputTime,
	}
}

func (pm *ParsedMessage) canonicalFields() map[string]any {
	switch {
	case pm.MT103 != nil:
		return pm.MT103.CanonicalFields()
	case pm.MT110 != nil:
		return pm.MT110.CanonicalFields()
	case pm.MT202 != nil:
		return pm.MT202.CanonicalFields()
	case pm.MT292 != nil:
		return pm.MT292.CanonicalFields()
	case pm.MT920 != nil:
		return pm.MT920.CanonicalFields()
	case pm.Generic != nil:
		return pm.Generic.CanonicalFields()
	}
	return map[string]any{}
}

// CanonicalJSON renders pm in the stable interchange representation:
// {block_1, block_2, block_3?, fields, block_5?}, with SWIFT tag strings
// as field keys and option letters as union discriminators. Two parses of
// equivalent wire bytes produce byte-identical CanonicalJSON output, which
// is the round-trip equality this module tests against its fixture corpus.
func (pm *ParsedMessage) CanonicalJSON() ([]byte, error) {
	cm := canonicalMessage{
		Block1: canonicalizeBlock1(pm.Basic),
		Block2: canonicalizeBlock2(pm.App),
		Fields: pm.canonicalFields(),
	}
	if pm.User != nil {
		cm.Block3 = pm.User.Fields
	}
	if pm.Trailer != nil {
		cm.Block5 = pm.Trailer.Fields
	}
	return json.Marshal(cm)
}
