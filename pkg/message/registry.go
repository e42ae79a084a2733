package message

import "github.com/deltran/swiftmt/pkg/sequence"

// schemas holds the generic structural schema for every message type in
// spec.md §4.7's target set that is not one of the six hand-typed records
// (103, 103 STP, 110, 202, 292, 920). Coverage for these is intentionally
// structural: mandatory-slot presence, max-occurrence caps, and
// option-letter legality, not full per-field typing (see DESIGN.md,
// "L7 message-type coverage decision").
var schemas = map[string]*Schema{
	"101": {MessageType: "101", Sequence: sequence.Profile{SequenceBMarkers: []string{"21"}}, Slots: []Slot{
		{Tag: "20", Kind: Mandatory, Description: "Sender's Reference"},
		{Tag: "21", Kind: Mandatory, Description: "Related Reference"},
		{Tag: "32B", Kind: Mandatory, Description: "Currency/Transaction Amount"},
		{Tag: "59", Kind: Mandatory, Description: "Beneficiary"},
	}},
	"104": {MessageType: "104", Sequence: sequence.Profile{SequenceBMarkers: []string{"21"}}, Slots: []Slot{
		{Tag: "20", Kind: Mandatory, Description: "Sender's Reference"},
		{Tag: "30", Kind: Mandatory, Description: "Requested Execution Date"},
		{Tag: "21", Kind: Mandatory, Description: "Related Reference"},
		{Tag: "32B", Kind: Mandatory, Description: "Currency/Transaction Amount"},
		{Tag: "59", Kind: Mandatory, Description: "Beneficiary"},
	}},
	"107": {MessageType: "107", Sequence: sequence.Profile{SequenceBMarkers: []string{"21"}}, Slots: []Slot{
		{Tag: "20", Kind: Mandatory, Description: "Sender's Reference"},
		{Tag: "30", Kind: Mandatory, Description: "Requested Execution Date"},
		{Tag: "21", Kind: Mandatory, Description: "Related Reference"},
		{Tag: "32B", Kind: Mandatory, Description: "Currency/Transaction Amount"},
		{Tag: "59", Kind: Mandatory, Description: "Beneficiary"},
	}},
	"111": {MessageType: "111", Slots: []Slot{
		{Tag: "20", Kind: Mandatory, Description: "Sender's Reference"},
		{Tag: "21", Kind: Mandatory, Description: "Cheque Number"},
		{Tag: "30", Kind: Mandatory, Description: "Date of Issue"},
		{Tag: "32", Kind: Mandatory, Letters: []string{"A", "B"}, Description: "Amount"},
		{Tag: "52", Kind: Optional, Letters: []string{"A", "D"}, Description: "Drawer Bank"},
		{Tag: "59", Kind: Optional, Description: "Payee"},
	}},
	"112": {MessageType: "112", Slots: []Slot{
		{Tag: "20", Kind: Mandatory, Description: "Sender's Reference"},
		{Tag: "21", Kind: Mandatory, Description: "Cheque Number"},
		{Tag: "30", Kind: Mandatory, Description: "Date of Issue"},
		{Tag: "32", Kind: Mandatory, Letters: []string{"A", "B"}, Description: "Amount"},
		{Tag: "52", Kind: Optional, Letters: []string{"A", "D"}, Description: "Drawer Bank"},
		{Tag: "59", Kind: Optional, Description: "Payee"},
		{Tag: "76", Kind: Optional, Description: "Answers"},
	}},
	"190": statusReportSchema("190"),
	"191": statusReportSchema("191"),
	"192": cancellationRequestSchema("192"),
	"196": statusReportSchema("196"),
	"199": freeFormatSchema("199"),
	"200": {MessageType: "200", Slots: []Slot{
		{Tag: "20", Kind: Mandatory, Description: "Transaction Reference"},
		{Tag: "32A", Kind: Mandatory, Description: "Value Date/Currency/Amount"},
		{Tag: "53", Kind: Optional, Letters: []string{"A", "B", "D"}, Description: "Sender's Correspondent"},
		{Tag: "56", Kind: Optional, Letters: []string{"A", "D"}, Description: "Intermediary"},
		{Tag: "57", Kind: Optional, Letters: []string{"A", "B", "D"}, Description: "Account With Institution"},
		{Tag: "72", Kind: Optional, Description: "Sender to Receiver Information"},
	}},
	"204": {MessageType: "204", Sequence: sequence.Profile{SequenceBMarkers: []string{"20"}}, Slots: []Slot{
		{Tag: "19", Kind: Mandatory, Description: "Sum of Amounts"},
		{Tag: "30", Kind: Mandatory, Description: "Value Date"},
		{Tag: "20", Kind: Repetitive, Description: "Transaction Reference"},
		{Tag: "32B", Kind: Mandatory, Description: "Currency/Amount"},
		{Tag: "53", Kind: Optional, Letters: []string{"A", "B", "D"}, Description: "Sender's Correspondent"},
		{Tag: "58", Kind: Mandatory, Letters: []string{"A", "D"}, Description: "Beneficiary Institution"},
	}},
	"205": {MessageType: "205", Slots: []Slot{
		{Tag: "20", Kind: Mandatory, Description: "Transaction Reference"},
		{Tag: "21", Kind: Mandatory, Description: "Related Reference"},
		{Tag: "32A", Kind: Mandatory, Description: "Value Date/Currency/Amount"},
		{Tag: "58", Kind: Mandatory, Letters: []string{"A", "D"}, Description: "Beneficiary Institution"},
		{Tag: "77E", Kind: Optional, Description: "Underlying Transaction"},
	}},
	"210": {MessageType: "210", Slots: []Slot{
		{Tag: "20", Kind: Mandatory, Description: "Transaction Reference"},
		{Tag: "25", Kind: Optional, Description: "Account Identification"},
		{Tag: "30", Kind: Mandatory, Description: "Value Date"},
		{Tag: "21", Kind: Repetitive, Description: "Related Reference"},
		{Tag: "32B", Kind: Mandatory, Description: "Currency/Amount"},
		{Tag: "50", Kind: Optional, Letters: []string{"", "A", "F", "K"}, Description: "Ordering Customer"},
		{Tag: "52", Kind: Optional, Letters: []string{"A", "D"}, Description: "Ordering Institution"},
	}},
	"290": statusReportSchema("290"),
	"291": cancellationRequestSchema("291"),
	"296": statusReportSchema("296"),
	"299": freeFormatSchema("299"),
	"900": {MessageType: "900", Slots: []Slot{
		{Tag: "20", Kind: Mandatory, Description: "Transaction Reference"},
		{Tag: "21", Kind: Mandatory, Description: "Related Reference"},
		{Tag: "25", Kind: Mandatory, Description: "Account Identification"},
		{Tag: "32A", Kind: Mandatory, Description: "Value Date/Currency/Amount"},
	}},
	"910": {MessageType: "910", Slots: []Slot{
		{Tag: "20", Kind: Mandatory, Description: "Transaction Reference"},
		{Tag: "21", Kind: Mandatory, Description: "Related Reference"},
		{Tag: "25", Kind: Mandatory, Description: "Account Identification"},
		{Tag: "32A", Kind: Mandatory, Description: "Value Date/Currency/Amount"},
		{Tag: "50", Kind: Optional, Letters: []string{"", "A", "F", "K"}, Description: "Ordering Customer"},
		{Tag: "52", Kind: Optional, Letters: []string{"A", "D"}, Description: "Ordering Institution"},
	}},
	"935": {MessageType: "935", Sequence: sequence.Profile{SequenceBMarkers: []string{"23", "25"}}, Slots: []Slot{
		{Tag: "20", Kind: Mandatory, Description: "Sender's Reference"},
		{Tag: "23", Kind: Repetitive, Description: "Further Identification"},
		{Tag: "25", Kind: Optional, Description: "Account Identification"},
		{Tag: "30", Kind: Optional, Description: "Effective Date of New Rate"},
		{Tag: "37H", Kind: Optional, Description: "Interest Rate"},
	}},
	"940": statementSchema("940"),
	"941": {MessageType: "941", Slots: []Slot{
		{Tag: "20", Kind: Mandatory, Description: "Transaction Reference"},
		{Tag: "21", Kind: Optional, Description: "Related Reference"},
		{Tag: "25", Kind: Mandatory, Description: "Account Identification"},
		{Tag: "28", Kind: Mandatory, Description: "Statement Number"},
		{Tag: "60", Kind: Mandatory, Letters: []string{"F", "M"}, Description: "Opening Balance"},
		{Tag: "90", Kind: Optional, Letters: []string{"C", "D"}, Description: "Number and Sum of Entries"},
		{Tag: "62", Kind: Mandatory, Letters: []string{"F", "M"}, Description: "Closing Balance"},
		{Tag: "64", Kind: Optional, Description: "Closing Available Balance"},
	}},
	"942": statementSchema("942"),
	"950": statementSchema("950"),
}

func statementSchema(mt string) *Schema {
	return &Schema{MessageType: mt, Sequence: sequence.Profile{SequenceBMarkers: []string{"61"}}, Slots: []Slot{
		{Tag: "20", Kind: Mandatory, Description: "Transaction Reference"},
		{Tag: "21", Kind: Optional, Description: "Related Reference"},
		{Tag: "25", Kind: Mandatory, Description: "Account Identification"},
		{Tag: "28C", Kind: Mandatory, Description: "Statement/Sequence Number"},
		{Tag: "60", Kind: Mandatory, Letters: []string{"F", "M"}, Description: "Opening Balance"},
		{Tag: "61", Kind: Repetitive, Description: "Statement Line"},
		{Tag: "86", Kind: Optional, Description: "Information to Account Owner"},
		{Tag: "62", Kind: Mandatory, Letters: []string{"F", "M"}, Description: "Closing Balance"},
		{Tag: "64", Kind: Optional, Description: "Closing Available Balance"},
		{Tag: "65", Kind: Repetitive, Description: "Forward Available Balance"},
	}}
}

func statusReportSchema(mt string) *Schema {
	return &Schema{MessageType: mt, Slots: []Slot{
		{Tag: "20", Kind: Mandatory, Description: "Transaction Reference"},
		{Tag: "21", Kind: Optional, Description: "Related Reference"},
		{Tag: "76", Kind: Mandatory, Description: "Answers"},
		{Tag: "77A", Kind: Optional, Description: "Narrative"},
	}}
}

func cancellationRequestSchema(mt string) *Schema {
	return &Schema{MessageType: mt, Slots: []Slot{
		{Tag: "20", Kind: Mandatory, Description: "Transaction Reference"},
		{Tag: "21", Kind: Mandatory, Description: "Related Reference"},
		{Tag: "11S", Kind: Optional, Description: "MT and Date of the Original Message"},
		{Tag: "79", Kind: Optional, Description: "Narrative"},
	}}
}

func freeFormatSchema(mt string) *Schema {
	return &Schema{MessageType: mt, Slots: []Slot{
		{Tag: "20", Kind: Mandatory, Description: "Transaction Reference"},
		{Tag: "21", Kind: Optional, Description: "Related Reference"},
		{Tag: "79", Kind: Mandatory, Description: "Narrative"},
	}}
}

// SchemaFor returns the generic schema registered for mt, if any.
func SchemaFor(mt string) (*Schema, bool) {
	s, ok := schemas[mt]
	return s, ok
}

// HandTyped reports whether mt is one of the six message types with a full
// typed record and NVR evaluator (spec.md's target set minus the
// schema-only remainder).
func HandTyped(mt string) bool {
	switch mt {
	case "103", "110", "202", "292", "920":
		return true
	default:
		return false
	}
}
