package pcm

import (
	"testing"

	"github.com/ausocean/iab/model"
	"pgregory.net/rapid"
)

func TestContainerBytes(t *testing.T) {
	cases := map[model.BitDepth]int{
		model.BitDepth16: 2,
		model.BitDepth24: 4,
		model.BitDepth(99): 0,
	}
	for bd, want := range cases {
		if got := ContainerBytes(bd); got != want {
			t.Errorf("ContainerBytes(%v) = %d, want %d", bd, got, want)
		}
	}
}

func TestPackUnpackRoundTrip16(t *testing.T) {
	in := []int32{0, 1, -1, 32767, -32768}
	packed, err := Pack(in, model.BitDepth16)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	if len(packed) != len(in)*2 {
		t.Fatalf("len(packed) = %d, want %d", len(packed), len(in)*2)
	}
	out, err := Unpack(packed, model.BitDepth16)
	if err != nil {
		t.Fatalf("Unpack: %v", err)
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("sample %d: got %d, want %d", i, out[i], in[i])
		}
	}
}

func TestPackUnpackRoundTrip24(t *testing.T) {
	in := []int32{0, 1, -1, 8388607, -8388608}
	packed, err := Pack(in, model.BitDepth24)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	if len(packed) != len(in)*4 {
		t.Fatalf("len(packed) = %d, want %d", len(packed), len(in)*4)
	}
	// Low byte of every container must be zero (left-justified).
	for i := range in {
		if packed[i*4] != 0 {
			t.Errorf("container %d low byte = %#x, want 0", i, packed[i*4])
		}
	}
	out, err := Unpack(packed, model.BitDepth24)
	if err != nil {
		t.Fatalf("Unpack: %v", err)
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("sample %d: got %d, want %d", i, out[i], in[i])
		}
	}
}

func TestUnpackRejectsUnalignedLength(t *testing.T) {
	if _, err := Unpack([]byte{0, 1, 2}, model.BitDepth16); err == nil {
		t.Fatal("expected error unpacking a non-multiple-of-2 byte slice at 16-bit depth")
	}
}

func TestPackUnpackRejectsUnrecognizedBitDepth(t *testing.T) {
	if _, err := Pack([]int32{1}, model.BitDepth(99)); err == nil {
		t.Fatal("expected error packing with unrecognized bit depth")
	}
	if _, err := Unpack([]byte{1, 2}, model.BitDepth(99)); err == nil {
		t.Fatal("expected error unpacking with unrecognized bit depth")
	}
}

func TestPackUnpackRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		bd := model.BitDepth16
		if rapid.Bool().Draw(t, "wide") {
			bd = model.BitDepth24
		}
		var lo, hi int32 = -32768, 32767
		if bd == model.BitDepth24 {
			lo, hi = -8388608, 8388607
		}
		n := rapid.IntRange(0, 32).Draw(t, "n")
		samples := make([]int32, n)
		for i := range samples {
			samples[i] = rapid.Int32Range(lo, hi).Draw(t, "sample")
		}
		packed, err := Pack(samples, bd)
		if err != nil {
			t.Fatalf("Pack: %v", err)
		}
		out, err := Unpack(packed, bd)
		if err != nil {
			t.Fatalf("Unpack: %v", err)
		}
		if len(out) != len(samples) {
			t.Fatalf("len(out) = %d, want %d", len(out), len(samples))
		}
		for i := range samples {
			if out[i] != samples[i] {
				t.Fatalf("sample %d: got %d, want %d", i, out[i], samples[i])
			}
		}
	})
}
