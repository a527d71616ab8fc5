/*
NAME
  packedlength.go

DESCRIPTION
  packedlength.go implements the PackedLength variable-length unsigned
  integer encoding used as the element body-length prefix throughout the
  bitstream: values below 128 take a single byte; larger values are
  signalled by a marker byte followed by a fixed-width big-endian field.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package varint provides the PackedLength and Plex(N) variable-length
// unsigned integer encodings used throughout the bitstream.
package varint

import (
	"github.com/pkg/errors"

	"github.com/ausocean/iab/bits"
)

// longFormMarker is the byte value (0x83 = 128 | (4-1)) that signals the
// 32-bit long form: the low 7 bits (k-1 = 3) mean a 4*8 = 32-bit field
// follows.
const longFormMarker = 0x80 | 0x03

// ErrPackedLengthWidth is returned when a decoded long-form width would
// exceed 32 bits (k*8 > 32).
var ErrPackedLengthWidth = errors.New("varint: packed length width exceeds 32 bits")

// ReadPackedLength decodes one PackedLength value: a single byte b; if
// b < 128 the value is b itself, otherwise k = (b&0x7F)+1 and the value is
// the following k*8 bits as big-endian unsigned.
func ReadPackedLength(r *bits.Reader) (uint32, error) {
	b, err := r.ReadBits(8)
	if err != nil {
		return 0, errors.Wrap(err, "varint: read packed length marker")
	}
	if b < 128 {
		return uint32(b), nil
	}
	k := int(b&0x7F) + 1
	width := k * 8
	if width > 32 {
		return 0, ErrPackedLengthWidth
	}
	v, err := r.ReadBits(width)
	if err != nil {
		return 0, errors.Wrap(err, "varint: read packed length value")
	}
	return uint32(v), nil
}

// WritePackedLength encodes v as a PackedLength. Values < 128 take one
// byte; values >= 128 are always emitted in the canonical 32-bit long
// form (marker 0x83 followed by 32 bits), matching the fixed long-form
// width the format defines (there is only one long-form width, unlike
// Plex's escalating ladder).
func WritePackedLength(w *bits.Writer, v uint32) error {
	if v < 128 {
		return w.WriteBits(uint64(v), 8)
	}
	if err := w.WriteBits(longFormMarker, 8); err != nil {
		return err
	}
	return w.WriteBits(uint64(v), 32)
}
