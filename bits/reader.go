/*
NAME
  reader.go

DESCRIPTION
  reader.go provides a bit-granular reader over an in-memory byte buffer,
  supporting peek, byte-alignment, scan-for-pattern sync, and save/restore
  snapshotting for backtracking parses.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package bits provides bit-granular sequential I/O over a byte stream, with
// peek, sync, and save/restore support for backtracking parsers.
package bits

import (
	"bytes"
	"hash"

	"github.com/pkg/errors"
)

// ErrEndOfStream is returned by ReadBits/ReadAlignedBytes/PeekBits when the
// requested bits extend past the end of the buffer. It is distinct from a
// zero-valued read: callers must not treat it as "got zero bits".
var ErrEndOfStream = errors.New("bits: end of stream")

// ErrWidth is returned when n is outside [1,64] for ReadBits/PeekBits.
var ErrWidth = errors.New("bits: width out of range")

// State is an opaque snapshot of a Reader's cursor, returned by Save and
// consumed by Restore. It is safe to hold multiple States for one Reader and
// restore to any of them, as long as the Reader's underlying buffer hasn't
// changed.
type State struct {
	bitPos int64
}

// Reader reads bits MSB-first from an in-memory byte buffer.
//
// Reader operates on a fully-buffered byte slice rather than a generic
// io.Reader so that PeekBits, Sync and Save/Restore - which all require
// looking arbitrarily far ahead and rewinding - are simple slice
// arithmetic rather than a tee'd, re-readable stream. parser.NewStreaming
// hands NewReader the whole stream; Parser.ParseFrameBuffer hands it one
// frame's bytes.
type Reader struct {
	buf      []byte
	bitPos   int64 // absolute bit offset of next unread bit
	totalBit int64

	observers []hash.Hash
}

// NewReader returns a Reader over buf. buf is not copied; callers must not
// mutate it while the Reader is in use.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf, totalBit: int64(len(buf)) * 8}
}

// Attach registers h as a running hash observer. Every byte consumed by
// ReadBits/ReadAlignedBytes/Align (not Peek) is written to h once, when
// its last bit has been read. Save and Restore do not pause or rewind
// observers: bytes read after a Save and then rewound by Restore stay in
// the hash (see Restore).
func (r *Reader) Attach(h hash.Hash) {
	r.observers = append(r.observers, h)
}

// Position returns the current cursor position in bits from the start of
// the buffer.
func (r *Reader) Position() int64 { return r.bitPos }

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() int64 {
	if r.bitPos >= r.totalBit {
		return 0
	}
	return r.totalBit - r.bitPos
}

// Save returns a State capturing the current cursor. Restore(s) later
// rewinds to it.
func (r *Reader) Save() State { return State{bitPos: r.bitPos} }

// Restore rewinds the cursor to a previously Saved State. Hash observers
// are untouched by Restore itself: they only ever see bytes via consume,
// which fires from ReadBits/ReadAlignedBytes/Align, never from Peek. A
// caller that Saves, reads speculatively, and Restores therefore leaves
// its observers holding whatever they saw during the speculative read;
// callers needing strict "only the taken path is hashed" semantics should
// defer Attach until after the branch point is resolved.
func (r *Reader) Restore(s State) {
	r.bitPos = s.bitPos
}

// ReadBits reads n bits (n in [1,64]) MSB-first and returns them in the
// low-order bits of the result.
func (r *Reader) ReadBits(n int) (uint64, error) {
	if n < 1 || n > 64 {
		return 0, ErrWidth
	}
	if r.Remaining() < int64(n) {
		return 0, ErrEndOfStream
	}
	v := r.peekAt(r.bitPos, n)
	r.consume(r.bitPos, n)
	r.bitPos += int64(n)
	return v, nil
}

// PeekBits returns the next n bits (n in [1,64]) without advancing the
// cursor.
func (r *Reader) PeekBits(n int) (uint64, error) {
	if n < 1 || n > 64 {
		return 0, ErrWidth
	}
	if r.Remaining() < int64(n) {
		return 0, ErrEndOfStream
	}
	return r.peekAt(r.bitPos, n), nil
}

// ReadAlignedBytes aligns to the next byte boundary (if not already
// aligned) and returns the following count bytes.
func (r *Reader) ReadAlignedBytes(count int) ([]byte, error) {
	r.Align()
	if r.Remaining() < int64(count)*8 {
		return nil, ErrEndOfStream
	}
	start := int(r.bitPos / 8)
	out := make([]byte, count)
	copy(out, r.buf[start:start+count])
	r.consume(r.bitPos, count*8)
	r.bitPos += int64(count) * 8
	return out, nil
}

// Align discards any remaining high-order bits of the current byte,
// advancing the cursor to the next byte boundary. A Reader already
// byte-aligned is unaffected.
func (r *Reader) Align() {
	rem := r.bitPos % 8
	if rem == 0 {
		return
	}
	skip := 8 - rem
	if r.Remaining() < skip {
		skip = r.Remaining()
	}
	r.consume(r.bitPos, int(skip))
	r.bitPos += skip
}

// ByteAligned reports whether the cursor sits at a byte boundary.
func (r *Reader) ByteAligned() bool { return r.bitPos%8 == 0 }

// Sync scans forward, byte-aligned, from the current position (which must
// itself be byte-aligned; Sync aligns first) for the first offset where
// the following len(pattern) bytes equal pattern after masking with mask
// (mask may be nil, meaning an exact match). On success the cursor is left
// positioned at the start of the match and Sync returns true. On failure
// - including when called past the end of the buffer - the cursor is left
// unchanged and Sync returns false.
func (r *Reader) Sync(pattern, mask []byte) (bool, error) {
	if len(pattern) == 0 {
		return false, errors.New("bits: empty sync pattern")
	}
	if mask != nil && len(mask) != len(pattern) {
		return false, errors.New("bits: mask length mismatch")
	}
	start := r.bitPos
	if start%8 != 0 {
		start += 8 - start%8
	}
	startByte := int(start / 8)
	if startByte >= len(r.buf) {
		return false, nil
	}
	for i := startByte; i+len(pattern) <= len(r.buf); i++ {
		if matches(r.buf[i:i+len(pattern)], pattern, mask) {
			r.bitPos = int64(i) * 8
			return true, nil
		}
	}
	return false, nil
}

func matches(got, pattern, mask []byte) bool {
	if mask == nil {
		return bytes.Equal(got, pattern)
	}
	for i := range pattern {
		if got[i]&mask[i] != pattern[i]&mask[i] {
			return false
		}
	}
	return true
}

// consume feeds observers the bytes whose final bit lies in
// [bitPos, bitPos+n), so each byte is fed exactly once, when it has been
// entirely read.
func (r *Reader) consume(bitPos int64, n int) {
	if len(r.observers) == 0 {
		return
	}
	end := bitPos + int64(n)
	startByte := int(bitPos / 8)
	endByte := int(end / 8)
	if endByte > len(r.buf) {
		endByte = len(r.buf)
	}
	if startByte >= endByte {
		return
	}
	for _, h := range r.observers {
		h.Write(r.buf[startByte:endByte])
	}
}

// peekAt reads n bits starting at absolute bit offset pos without touching
// the cursor or observers.
func (r *Reader) peekAt(pos int64, n int) uint64 {
	var v uint64
	remaining := n
	bytePos := int(pos / 8)
	bitOff := uint(pos % 8)
	for remaining > 0 {
		avail := 8 - int(bitOff)
		take := remaining
		if take > avail {
			take = avail
		}
		b := r.buf[bytePos]
		shift := avail - take
		mask := byte((1 << uint(take)) - 1)
		chunk := (b >> uint(shift)) & mask
		v = (v << uint(take)) | uint64(chunk)
		remaining -= take
		bytePos++
		bitOff = 0
	}
	return v
}
