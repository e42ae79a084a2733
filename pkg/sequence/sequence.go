// Package sequence implements the L6 sequence carver (spec.md §4.6): given
// an ordered field-occurrence list and a per-message-type profile, it
// partitions the occurrences into Sequence A, repeated Sequence B
// transactions, and an optional Sequence C.
package sequence

import "github.com/deltran/swiftmt/pkg/framer"

// Profile describes how one SWIFT message type's body is carved.
type Profile struct {
	// SequenceBMarkers are the tags whose first appearance opens Sequence B.
	// Most message types use a single marker ("21"); MT935 additionally
	// treats "25" as a secondary marker (spec.md §4.6).
	SequenceBMarkers []string

	// SequenceCFields are tags that, once seen after the last
	// transaction-terminator occurrence, open Sequence C.
	SequenceCFields []string

	// HasSequenceC reports whether this message type carries a Sequence C
	// at all; when false, carving never looks for one.
	HasSequenceC bool

	// TransactionTerminators are the tags used to find "the last B
	// transaction" boundary that Sequence C must appear after.
	TransactionTerminators []string

	// PinnedToA are tags that always land in Sequence A regardless of
	// position (spec.md §4.6 step 4: currently {72, 77E, 79}).
	PinnedToA []string
}

// Flat is a message type with no Sequence B/C at all (e.g. simple
// single-occurrence messages); every occurrence lands in Sequence A.
var Flat = Profile{}

// Carved is the partitioned output of Carve.
type Carved struct {
	A []framer.TagOccurrence
	B []framer.TagOccurrence
	C []framer.TagOccurrence
}

// Carve partitions occurrences per Profile. The partition is deterministic,
// disjoint, and covering (spec.md §8 property 5).
func Carve(occurrences []framer.TagOccurrence, p Profile) Carved {
	pinned := toSet(p.PinnedToA)
	bMarkers := toSet(p.SequenceBMarkers)
	cFields := toSet(p.SequenceCFields)
	terminators := toSet(p.TransactionTerminators)

	seqBStart := -1
	for _, o := range occurrences {
		if bMarkers[o.Tag] {
			seqBStart = o.Position
			break
		}
	}

	lastTerminator := -1
	if seqBStart >= 0 {
		for _, o := range occurrences {
			if terminators[o.Tag] && o.Position >= seqBStart {
				lastTerminator = o.Position
			}
		}
	}

	seqCStart := -1
	if p.HasSequenceC && seqBStart >= 0 && lastTerminator >= 0 {
		for _, o := range occurrences {
			if o.Position > lastTerminator && cFields[o.Tag] {
				seqCStart = o.Position
				break
			}
		}
	}

	var out Carved
	for _, o := range occurrences {
		switch {
		case pinned[o.Tag]:
			out.A = append(out.A, o)
		case seqBStart < 0:
			out.A = append(out.A, o)
		case seqCStart >= 0 && o.Position >= seqCStart:
			out.C = append(out.C, o)
		case o.Position < seqBStart:
			out.A = append(out.A, o)
		default:
			out.B = append(out.B, o)
		}
	}
	return out
}

// SplitTransactions further partitions Sequence B into individual
// transaction sub-records: each appearance of a Sequence B marker tag opens
// a new transaction.
func SplitTransactions(seqB []framer.TagOccurrence, markers []string) [][]framer.TagOccurrence {
	markerSet := toSet(markers)
	var txns [][]framer.TagOccurrence
	var cur []framer.TagOccurrence
	for _, o := range seqB {
		if markerSet[o.Tag] {
			if len(cur) > 0 {
				txns = append(txns, cur)
			}
			cur = nil
		}
		cur = append(cur, o)
	}
	if len(cur) > 0 {
		txns = append(txns, cur)
	}
	return txns
}

func toSet(items []string) map[string]bool {
	m := make(map[string]bool, len(items))
	for _, s := range items {
		m[s] = true
	}
	return m
}
