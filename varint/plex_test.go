/*
NAME
  plex_test.go

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

func TestPlex8SmallValueUsesSingleWindow(t *testing.T) {
	w := bits.NewWriter()
	if err := WritePlex(w, 10, 8); err != nil {
		t.Fatal(err)
	}
	w.Close()
	if len(w.Bytes()) != 1 {
		t.Fatalf("expected 1 byte, got %d (%x)", len(w.Bytes()), w.Bytes())
	}
	got, err := ReadPlex(bits.NewReader(w.Bytes()), 8)
	if err != nil {
		t.Fatal(err)
	}
	if got != 10 {
		t.Fatalf("got %d, want 10", got)
	}
}

func TestPlex8EscalatesPastEscapeValue(t *testing.T) {
	// 0xFF (255) is the escape value at width 8, so it must escalate to
	// a 16-bit window.
	w := bits.NewWriter()
	if err := WritePlex(w, 255, 8); err != nil {
		t.Fatal(err)
	}
	w.Close()
	if len(w.Bytes()) != 3 { // 1 escape byte + 2-byte value window
		t.Fatalf("expected 3 bytes, got %d (%x)", len(w.Bytes()), w.Bytes())
	}
	if w.Bytes()[0] != 0xFF {
		t.Fatalf("expected escape byte 0xff, got 0x%x", w.Bytes()[0])
	}
	got, err := ReadPlex(bits.NewReader(w.Bytes()), 8)
	if err != nil {
		t.Fatal(err)
	}
	if got != 255 {
		t.Fatalf("got %d, want 255", got)
	}
}

func TestPlex4EscalationLadder(t *testing.T) {
	for _, v := range []uint32{0, 14, 15, 254, 255, 65534, 65535, 4294967294} {
		w := bits.NewWriter()
		if err := WritePlex(w, v, 4); err != nil {
			t.Fatalf("write %d: %v", v, err)
		}
		w.Close()
		got, err := ReadPlex(bits.NewReader(w.Bytes()), 4)
		if err != nil {
			t.Fatalf("read %d: %v", v, err)
		}
		if got != v {
			t.Fatalf("got %d, want %d", got, v)
		}
	}
}

func TestPlexMaxUint32IsUnencodable(t *testing.T) {
	// 0xFFFFFFFF is all-ones at every width up to 32, so no width lets it
	// satisfy value < maxValue; WritePlex reports ErrPlexWidth for it.
	w := bits.NewWriter()
	err := WritePlex(w, 0xFFFFFFFF, 8)
	if err != ErrPlexWidth {
		t.Fatalf("got %v, want ErrPlexWidth", err)
	}
}

func TestPlexInvalidN(t *testing.T) {
	w := bits.NewWriter()
	if err := WritePlex(w, 1, 6); err != ErrPlexN {
		t.Fatalf("got %v, want ErrPlexN", err)
	}
	if _, err := ReadPlex(bits.NewReader([]byte{0}), 6); err != ErrPlexN {
		t.Fatalf("got %v, want ErrPlexN", err)
	}
}

// TestPlexRoundTrip is a property test (P6): every representable uint32
// (< 0xFFFFFFFF) round-trips through WritePlex/ReadPlex for both N=4 and
// N=8, and re-encoding the decoded value yields an encoding of the same
// length.
func TestPlexRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.SampledFrom([]int{4, 8}).Draw(t, "n")
		v := rapid.Uint32Range(0, 0xFFFFFFFE).Draw(t, "v")
		w := bits.NewWriter()
		if err := WritePlex(w, v, n); err != nil {
			t.Fatalf("write: %v", err)
		}
		w.Close()
		got, err := ReadPlex(bits.NewReader(w.Bytes()), n)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if got != v {
			t.Fatalf("got %d, want %d", got, v)
		}

		// Re-encoding the decoded value must produce an encoding of the
		// same length as the original.
		w2 := bits.NewWriter()
		WritePlex(w2, got, n)
		w2.Close()
		if len(w.Bytes()) != len(w2.Bytes()) {
			t.Fatalf("non-minimal width: %d bytes vs %d bytes", len(w.Bytes()), len(w2.Bytes()))
		}
	})
}
