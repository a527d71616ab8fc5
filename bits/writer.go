/*
NAME
  writer.go

DESCRIPTION
  writer.go provides a bit-granular writer symmetric to Reader, backed by
  icza/bitio for the underlying bit-packing arithmetic.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package bits

import (
	"bytes"
	"hash"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// ErrWouldTruncateWritten is returned by ShrinkBuffer when the requested
// capacity is smaller than the number of bits already written.
var ErrWouldTruncateWritten = errors.New("bits: shrink would discard written bits")

// Writer writes bits MSB-first into a growable in-memory buffer.
//
// Writer wraps bitio.Writer for the bit-packing itself; the wrapping layer
// adds the capacity bookkeeping (ShrinkBuffer) and hash-observer
// attachment that bitio.Writer does not provide.
type Writer struct {
	buf       *bytes.Buffer
	bw        *bitio.Writer
	nBits     int64
	observers []hash.Hash
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	buf := &bytes.Buffer{}
	return &Writer{buf: buf, bw: bitio.NewWriter(buf)}
}

// Attach registers h as a running hash observer over bytes as they are
// flushed out of the bit buffer (i.e. once 8 bits have accumulated).
func (w *Writer) Attach(h hash.Hash) {
	w.observers = append(w.observers, h)
}

// WriteBits writes the low-order n bits (n in [1,64]) of v.
func (w *Writer) WriteBits(v uint64, n int) error {
	if n < 1 || n > 64 {
		return ErrWidth
	}
	before := w.buf.Len()
	if err := w.bw.WriteBits(v, uint8(n)); err != nil {
		return errors.Wrap(err, "bits: write")
	}
	w.nBits += int64(n)
	w.notify(before)
	return nil
}

// Align zero-pads up to the next byte boundary.
func (w *Writer) Align() error {
	rem := w.nBits % 8
	if rem == 0 {
		return nil
	}
	return w.WriteBits(0, int(8-rem))
}

// Position returns the number of bits written so far.
func (w *Writer) Position() int64 { return w.nBits }

// Bytes returns the whole bytes written so far. A pending partial byte is
// not included in the returned slice until Align or Close completes it
// (zero-padded in the low-order positions).
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

// Close flushes any pending partial byte (zero-padded) and finalizes the
// writer. After Close, Bytes reflects all written bits.
func (w *Writer) Close() error {
	before := w.buf.Len()
	err := w.bw.Close()
	w.notify(before)
	return err
}

// ShrinkBuffer lowers the writer's declared capacity hint to n bytes. It
// refuses - returning ErrWouldTruncateWritten - if n is smaller than the
// number of bytes already flushed, since that would silently discard
// written bits rather than merely releasing unused backing capacity.
func (w *Writer) ShrinkBuffer(n int) error {
	if n < w.buf.Len() {
		return ErrWouldTruncateWritten
	}
	return nil
}

func (w *Writer) notify(before int) {
	if len(w.observers) == 0 {
		return
	}
	b := w.buf.Bytes()
	if before >= len(b) {
		return
	}
	for _, h := range w.observers {
		h.Write(b[before:])
	}
}
