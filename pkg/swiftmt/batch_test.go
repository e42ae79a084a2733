package swiftmt

import (
	"strings"
	"testing"
)

func TestBatchPreservesInputOrder(t *testing.T) {
	var raws [][]byte
	for i := 0; i < 20; i++ {
		ref := "REF" + strings.Repeat("X", i%5) + "000"
		raw := strings.Replace(sampleMT103Wire, ":20:REF123456", ":20:"+ref, 1)
		raws = append(raws, []byte(raw))
	}

	results := Batch(raws, nil, 4)
	if len(results) != len(raws) {
		t.Fatalf("got %d results, want %d", len(results), len(raws))
	}
	for i, r := range results {
		if r.Index != i {
			t.Errorf("result %d has Index %d", i, r.Index)
		}
		if r.Err != nil {
			t.Errorf("result %d: unexpected error: %v", i, r.Err)
		}
		wantRef := "REF" + strings.Repeat("X", i%5) + "000"
		if r.Message == nil || r.Message.MT103 == nil || r.Message.MT103.SenderReference.ToWire() != wantRef {
			t.Errorf("result %d: got ref %v, want %q", i, r.Message, wantRef)
		}
	}
}

func TestBatchSingleWorker(t *testing.T) {
	raws := [][]byte{[]byte(sampleMT103Wire), []byte(sampleMT103Wire)}
	results := Batch(raws, nil, 1)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for _, r := range results {
		if r.Err != nil {
			t.Errorf("unexpected error: %v", r.Err)
		}
	}
}

func TestBatchZeroWorkersDefaultsToOne(t *testing.T) {
	raws := [][]byte{[]byte(sampleMT103Wire)}
	results := Batch(raws, nil, 0)
	if len(results) != 1 || results[0].Err != nil {
		t.Fatalf("got %+v", results)
	}
}

func TestBatchCapturesPerMessageErrors(t *testing.T) {
	bad := strings.Replace(sampleMT103Wire, "I103", "I999", 1)
	raws := [][]byte{[]byte(sampleMT103Wire), []byte(bad)}
	results := Batch(raws, nil, 2)
	if results[0].Err != nil {
		t.Errorf("first message: unexpected error: %v", results[0].Err)
	}
	if results[1].Err == nil {
		t.Error("second message: expected an unsupported-message-type error")
	}
}

func TestBatchEmptyInput(t *testing.T) {
	results := Batch(nil, nil, 4)
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}
