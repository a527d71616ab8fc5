/*
NAME
  plex.go

DESCRIPTION
  plex.go implements the Plex(N) variable-length unsigned integer coding
  for N in {4,8}: a value is written at the smallest width N*2^k (k>=0,
  width<=32) in which it is strictly less than that width's all-ones
  value; narrower widths that can't fit it are signalled by an all-ones
  escape window of width N, repeated (width/N)-1 times before the value
  field itself.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package varint

import (
	"github.com/pkg/errors"

	"github.com/ausocean/iab/bits"
)

// ErrPlexN is returned when N is not 4 or 8.
var ErrPlexN = errors.New("varint: plex width must be 4 or 8")

// ErrPlexWidth is returned when decoding would need a window wider than
// 32 bits to find a non-escape value.
var ErrPlexWidth = errors.New("varint: plex value requires width > 32 bits")

func escapeBits(n int) (uint64, error) {
	switch n {
	case 4:
		return 0xF, nil
	case 8:
		return 0xFF, nil
	default:
		return 0, ErrPlexN
	}
}

// ReadPlex decodes a Plex(n) value, n in {4,8}.
func ReadPlex(r *bits.Reader, n int) (uint32, error) {
	if _, err := escapeBits(n); err != nil {
		return 0, err
	}
	width := n
	for width <= 32 {
		v, err := r.ReadBits(width)
		if err != nil {
			return 0, errors.Wrap(err, "varint: read plex window")
		}
		max := (uint64(1) << uint(width)) - 1
		if v < max {
			return uint32(v), nil
		}
		width *= 2
	}
	return 0, ErrPlexWidth
}

// WritePlex encodes v as Plex(n), n in {4,8}, at the smallest valid width.
func WritePlex(w *bits.Writer, v uint32, n int) error {
	esc, err := escapeBits(n)
	if err != nil {
		return err
	}
	width := n
	for {
		if width > 32 {
			return ErrPlexWidth
		}
		max := (uint64(1) << uint(width)) - 1
		if uint64(v) < max {
			break
		}
		width *= 2
	}
	escapeWindows := width/n - 1
	for i := 0; i < escapeWindows; i++ {
		if err := w.WriteBits(esc, n); err != nil {
			return err
		}
	}
	return w.WriteBits(uint64(v), width)
}
