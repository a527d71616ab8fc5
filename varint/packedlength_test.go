/*
NAME
  packedlength_test.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package varint

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/ausocean/iab/bits"
)

func TestPackedLengthShortForm(t *testing.T) {
	w := bits.NewWriter()
	if err := WritePackedLength(w, 127); err != nil {
		t.Fatal(err)
	}
	w.Close()
	if len(w.Bytes()) != 1 {
		t.Fatalf("short form should be 1 byte, got %d", len(w.Bytes()))
	}
	got, err := ReadPackedLength(bits.NewReader(w.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if got != 127 {
		t.Fatalf("got %d, want 127", got)
	}
}

func TestPackedLengthLongForm(t *testing.T) {
	w := bits.NewWriter()
	if err := WritePackedLength(w, 128); err != nil {
		t.Fatal(err)
	}
	w.Close()
	if len(w.Bytes()) != 5 {
		t.Fatalf("long form should be 5 bytes, got %d", len(w.Bytes()))
	}
	if w.Bytes()[0] != 0x83 {
		t.Fatalf("marker byte = 0x%x, want 0x83", w.Bytes()[0])
	}
	got, err := ReadPackedLength(bits.NewReader(w.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if got != 128 {
		t.Fatalf("got %d, want 128", got)
	}
}

// TestPackedLengthRoundTrip is a property test: every uint32 round-trips
// through WritePackedLength/ReadPackedLength (P6).
func TestPackedLengthRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Uint32().Draw(t, "v")
		w := bits.NewWriter()
		if err := WritePackedLength(w, v); err != nil {
			t.Fatalf("write: %v", err)
		}
		w.Close()
		got, err := ReadPackedLength(bits.NewReader(w.Bytes()))
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if got != v {
			t.Fatalf("got %d, want %d", got, v)
		}
	})
}
