package swiftmt

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const headerMT103 = "{1:F01BANKDEFFAXXX0000000001}{2:I103CHASUS33XXXXN}"

// An MT103 whose 33B currency differs from 32A without a compensating 36,
// and which carries 71F alongside 71A=OUR: two violations, C1 and C7, and
// the parse itself succeeds and round-trips byte-identically.
func TestMT103C1AndC7Violations(t *testing.T) {
	wire := headerMT103 + "{4:\r\n" +
		":20:E1REF2024\r\n" +
		":23B:CRED\r\n" +
		":32A:210315EUR1000,00\r\n" +
		":33B:USD900,00\r\n" +
		":50K:/12345678\r\nORDERING CUSTOMER\r\n" +
		":59:/98765432\r\nBENEFICIARY NAME\r\n" +
		":71A:OUR\r\n" +
		":71F:USD5,00\r\n" +
		"-}"

	pm, rep, err := ParseAuto([]byte(wire), nil)
	require.NoError(t, err)

	var codes []string
	for _, e := range rep.Errors {
		codes = append(codes, e.Code)
	}
	require.ElementsMatch(t, []string{"C1", "C7"}, codes)

	require.Equal(t, wire, string(pm.ToMTMessage()))
}

func TestMT110ChequeCurrencyConsistency(t *testing.T) {
	wire := "{1:F01BANKDEFFAXXX0000000001}{2:I110CHASUS33XXXXN}{4:\n" +
		":20:CHQADVICE1\n" +
		":21:CHQ001\n:30:231225\n:32B:USD1234,56\n:59:PAYEE ONE\n" +
		":21:CHQ002\n:30:231225\n:32B:EUR2345,67\n:59:PAYEE TWO\n" +
		"-}"

	_, rep, err := ParseAuto([]byte(wire), nil)
	require.NoError(t, err)
	require.Len(t, rep.Errors, 1)

	e := rep.Errors[0]
	require.Equal(t, "C02", e.Code)
	require.Equal(t, "32a", e.Field)
	require.Contains(t, e.Description, "EUR")
	require.Contains(t, e.Description, "USD")
}

func TestMT110MaxChequeOccurrences(t *testing.T) {
	var b strings.Builder
	b.WriteString("{1:F01BANKDEFFAXXX0000000001}{2:I110CHASUS33XXXXN}{4:\n")
	b.WriteString(":20:CHQADVICE2\n")
	for i := 1; i <= 11; i++ {
		fmt.Fprintf(&b, ":21:CHQ%03d\n:30:231225\n:32B:USD1,\n:59:PAYEE %d\n", i, i)
	}
	b.WriteString("-}")

	pm, rep, err := ParseAuto([]byte(b.String()), nil)
	require.NoError(t, err)
	require.Len(t, pm.MT110.Cheques, 11)
	require.Len(t, rep.Errors, 1)
	require.Equal(t, "T10", rep.Errors[0].Code)
	require.Equal(t, "21-59a", rep.Errors[0].Field)
}

func TestMT920DebitFloorRequiredFor942(t *testing.T) {
	wire := "{1:F01BANKDEFFAXXX0000000001}{2:I920CHASUS33XXXXN}{4:\n" +
		":20:REQ001\n:12:942\n:25:12345678\n:34F:CUSD1000,\n-}"

	_, rep, err := ParseAuto([]byte(wire), nil)
	require.NoError(t, err)
	require.Len(t, rep.Errors, 1)
	require.Equal(t, "C1", rep.Errors[0].Code)
	require.Equal(t, "34F", rep.Errors[0].Field)
}

// A 52D on the wire must be honoured as option D — never re-dispatched to
// A — and the canonical JSON must carry the letter as the union
// discriminator.
func TestField52DVariantDispatch(t *testing.T) {
	wire := headerMT103 + "{4:\n" +
		":20:REF52D\n" +
		":23B:CRED\n" +
		":32A:231225USD1234,56\n" +
		":50K:/12345678\nORDERING CUSTOMER\n" +
		":52D:/ACC\nBANK NAME\nCITY\n" +
		":59:/98765432\nBENEFICIARY NAME\n" +
		":71A:SHA\n" +
		"-}"

	pm, _, err := ParseAuto([]byte(wire), nil)
	require.NoError(t, err)
	require.NotNil(t, pm.MT103.OrderingInstitution)
	require.NotNil(t, pm.MT103.OrderingInstitution.D)
	require.Nil(t, pm.MT103.OrderingInstitution.A)

	raw, err := pm.CanonicalJSON()
	require.NoError(t, err)

	var doc struct {
		Fields map[string]json.RawMessage `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))

	var f52 map[string]struct {
		PartyIdentifier string   `json:"party_identifier"`
		NameAndAddress  []string `json:"name_and_address"`
	}
	require.NoError(t, json.Unmarshal(doc.Fields["52"], &f52))
	require.Contains(t, f52, "D")
	require.Equal(t, "ACC", f52["D"].PartyIdentifier)
	require.Equal(t, []string{"BANK NAME", "CITY"}, f52["D"].NameAndAddress)
}

func TestCanonicalJSONExcludesParseID(t *testing.T) {
	pm, _, err := ParseAuto([]byte(sampleMT103Wire), nil)
	require.NoError(t, err)
	raw, err := pm.CanonicalJSON()
	require.NoError(t, err)
	require.NotContains(t, string(raw), "parse_id")
	require.NotContains(t, string(raw), pm.ParseID.String())
}
