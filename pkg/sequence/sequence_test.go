package sequence

import (
	"testing"

	"github.com/deltran/swiftmt/pkg/framer"
)

func occ(tag string, pos int) framer.TagOccurrence {
	return framer.TagOccurrence{Tag: tag, Position: pos}
}

func TestCarveFlatProfile(t *testing.T) {
	occs := []framer.TagOccurrence{occ("20", 0), occ("23B", 1), occ("32A", 2)}
	carved := Carve(occs, Flat)
	if len(carved.A) != 3 || len(carved.B) != 0 || len(carved.C) != 0 {
		t.Fatalf("flat profile should land everything in A, got %+v", carved)
	}
}

func TestCarveSequenceAAndB(t *testing.T) {
	profile := Profile{SequenceBMarkers: []string{"21"}}
	occs := []framer.TagOccurrence{
		occ("20", 0),
		occ("30", 1),
		occ("21", 2),
		occ("32B", 3),
		occ("59", 4),
		occ("21", 5),
		occ("32B", 6),
		occ("59", 7),
	}
	carved := Carve(occs, profile)
	if len(carved.A) != 2 {
		t.Errorf("expected 2 occurrences in sequence A, got %d: %+v", len(carved.A), carved.A)
	}
	if len(carved.B) != 6 {
		t.Errorf("expected 6 occurrences in sequence B, got %d: %+v", len(carved.B), carved.B)
	}
	if len(carved.C) != 0 {
		t.Errorf("expected no sequence C, got %+v", carved.C)
	}
}

func TestCarvePinnedToA(t *testing.T) {
	profile := Profile{SequenceBMarkers: []string{"21"}, PinnedToA: []string{"72"}}
	occs := []framer.TagOccurrence{
		occ("20", 0),
		occ("21", 1),
		occ("32B", 2),
		occ("72", 3),
	}
	carved := Carve(occs, profile)
	found := false
	for _, o := range carved.A {
		if o.Tag == "72" {
			found = true
		}
	}
	if !found {
		t.Error("pinned tag 72 should land in sequence A even after sequence B opens")
	}
	for _, o := range carved.B {
		if o.Tag == "72" {
			t.Error("pinned tag 72 should not appear in sequence B")
		}
	}
}

func TestCarveSequenceC(t *testing.T) {
	profile := Profile{
		SequenceBMarkers:       []string{"20"},
		TransactionTerminators: []string{"58"},
		SequenceCFields:        []string{"72"},
		HasSequenceC:           true,
	}
	occs := []framer.TagOccurrence{
		occ("19", 0),
		occ("30", 1),
		occ("20", 2),
		occ("32B", 3),
		occ("58", 4),
		occ("72", 5),
	}
	carved := Carve(occs, profile)
	if len(carved.C) != 1 || carved.C[0].Tag != "72" {
		t.Errorf("expected sequence C to hold the trailing 72, got %+v", carved.C)
	}
	if len(carved.A) != 2 {
		t.Errorf("expected 2 occurrences in sequence A (19, 30), got %d: %+v", len(carved.A), carved.A)
	}
}

func TestSplitTransactions(t *testing.T) {
	seqB := []framer.TagOccurrence{
		occ("21", 0),
		occ("32B", 1),
		occ("59", 2),
		occ("21", 3),
		occ("32B", 4),
		occ("59", 5),
	}
	txns := SplitTransactions(seqB, []string{"21"})
	if len(txns) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txns))
	}
	if len(txns[0]) != 3 || len(txns[1]) != 3 {
		t.Errorf("expected 3 occurrences per transaction, got %d and %d", len(txns[0]), len(txns[1]))
	}
}

func TestSplitTransactionsEmpty(t *testing.T) {
	if got := SplitTransactions(nil, []string{"21"}); len(got) != 0 {
		t.Errorf("expected no transactions for empty input, got %+v", got)
	}
}
