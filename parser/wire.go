/*
NAME
  wire.go

DESCRIPTION
  wire.go assigns the Plex(8) tag value for each recognized element kind
  and the fixed bit widths used by the per-field codecs, and provides the
  small encode/decode helpers (Gain, DecorCoef, ZoneGain, position,
  length-prefixed text) shared by every element body.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package parser decodes an IAB byte stream into the model package's
// element tree, and (for round-trip testing only) re-encodes a tree back
// to bytes.
package parser

import (
	"math"

	"github.com/pkg/errors"

	"github.com/ausocean/iab/bits"
	"github.com/ausocean/iab/model"
	"github.com/ausocean/iab/varint"
)

// tag is the Plex(8) ElementID value identifying one recognized element
// kind on the wire. The numbering is this implementation's own
// assignment: the retrieved ST2098-2 reference material did not carry the
// standard's registered ID table, so these are internal, self-consistent
// values (see DESIGN.md).
type tag uint32

const (
	tagFrame tag = 1 + iota
	tagBedDefinition
	tagBedRemap
	tagObjectDefinition
	tagObjectZoneDefinition19
	tagAudioDataDLC
	tagAudioDataPCM
	tagAuthoringToolInfo
	tagUserData
)

func kindForTag(t tag) (model.Kind, bool) {
	switch t {
	case tagFrame:
		return model.KindFrame, true
	case tagBedDefinition:
		return model.KindBedDefinition, true
	case tagBedRemap:
		return model.KindBedRemap, true
	case tagObjectDefinition:
		return model.KindObjectDefinition, true
	case tagObjectZoneDefinition19:
		return model.KindObjectZoneDefinition19, true
	case tagAudioDataDLC:
		return model.KindAudioDataDLC, true
	case tagAudioDataPCM:
		return model.KindAudioDataPCM, true
	case tagAuthoringToolInfo:
		return model.KindAuthoringToolInfo, true
	case tagUserData:
		return model.KindUserData, true
	default:
		return 0, false
	}
}

func tagForKind(k model.Kind) tag {
	switch k {
	case model.KindFrame:
		return tagFrame
	case model.KindBedDefinition:
		return tagBedDefinition
	case model.KindBedRemap:
		return tagBedRemap
	case model.KindObjectDefinition:
		return tagObjectDefinition
	case model.KindObjectZoneDefinition19:
		return tagObjectZoneDefinition19
	case model.KindAudioDataDLC:
		return tagAudioDataDLC
	case model.KindAudioDataPCM:
		return tagAudioDataPCM
	case model.KindAuthoringToolInfo:
		return tagAuthoringToolInfo
	case model.KindUserData:
		return tagUserData
	default:
		panic("parser: no wire tag for kind " + k.String())
	}
}

// Fixed field widths, in bits. Enum codes are given a full byte even
// where the recognized value set is narrower, trading a few spare bits
// for simplicity and forward room (spec.md §9 flags this as an open
// implementation choice, not a protocol requirement).
const (
	widthVersion    = 8
	widthSampleRate = 8
	widthBitDepth   = 8
	widthFrameRate  = 8
	widthChannelID  = 8
	widthUseCase    = 8
	widthPrefix     = 8 // GainPrefix / DecorCoefPrefix / ZoneGainPrefix
	widthGainCode   = 16
	widthDecorCode  = 8
	widthZoneCode   = 8
	widthSpreadMode = 8
	widthFloat32    = 32
	widthFlag       = 1
)

func readGain(r *bits.Reader) (model.Gain, error) {
	p, err := r.ReadBits(widthPrefix)
	if err != nil {
		return model.Gain{}, err
	}
	g := model.Gain{Prefix: model.GainPrefix(p)}
	if g.Prefix == model.GainPrefixInStream {
		c, err := r.ReadBits(widthGainCode)
		if err != nil {
			return model.Gain{}, err
		}
		g.Code = uint16(c)
	}
	return g, nil
}

func writeGain(w *bits.Writer, g model.Gain) error {
	if err := w.WriteBits(uint64(g.Prefix), widthPrefix); err != nil {
		return err
	}
	if g.Prefix == model.GainPrefixInStream {
		return w.WriteBits(uint64(g.Code), widthGainCode)
	}
	return nil
}

func readDecorCoef(r *bits.Reader) (model.DecorCoef, error) {
	p, err := r.ReadBits(widthPrefix)
	if err != nil {
		return model.DecorCoef{}, err
	}
	d := model.DecorCoef{Prefix: model.DecorCoefPrefix(p)}
	if d.Prefix == model.DecorCoefPrefixInStream {
		c, err := r.ReadBits(widthDecorCode)
		if err != nil {
			return model.DecorCoef{}, err
		}
		d.Code = uint8(c)
	}
	return d, nil
}

func writeDecorCoef(w *bits.Writer, d model.DecorCoef) error {
	if err := w.WriteBits(uint64(d.Prefix), widthPrefix); err != nil {
		return err
	}
	if d.Prefix == model.DecorCoefPrefixInStream {
		return w.WriteBits(uint64(d.Code), widthDecorCode)
	}
	return nil
}

func readZoneGain(r *bits.Reader) (model.ZoneGain, error) {
	p, err := r.ReadBits(widthPrefix)
	if err != nil {
		return model.ZoneGain{}, err
	}
	z := model.ZoneGain{Prefix: model.ZoneGainPrefix(p)}
	if z.Prefix == model.ZoneGainPrefixInStream {
		c, err := r.ReadBits(widthZoneCode)
		if err != nil {
			return model.ZoneGain{}, err
		}
		z.Code = uint8(c)
	}
	return z, nil
}

func writeZoneGain(w *bits.Writer, z model.ZoneGain) error {
	if err := w.WriteBits(uint64(z.Prefix), widthPrefix); err != nil {
		return err
	}
	if z.Prefix == model.ZoneGainPrefixInStream {
		return w.WriteBits(uint64(z.Code), widthZoneCode)
	}
	return nil
}

func readPosition(r *bits.Reader) (model.PositionUnitCube, error) {
	var p model.PositionUnitCube
	for _, f := range []*float32{&p.X, &p.Y, &p.Z} {
		v, err := r.ReadBits(widthFloat32)
		if err != nil {
			return model.PositionUnitCube{}, err
		}
		*f = math.Float32frombits(uint32(v))
	}
	return p, nil
}

func writePosition(w *bits.Writer, p model.PositionUnitCube) error {
	for _, f := range []float32{p.X, p.Y, p.Z} {
		if err := w.WriteBits(uint64(math.Float32bits(f)), widthFloat32); err != nil {
			return err
		}
	}
	return nil
}

// readText reads a length-prefixed (PackedLength byte count) ASCII
// string, used for the bed/object free-text audio description field.
func readText(r *bits.Reader) (string, error) {
	n, err := varint.ReadPackedLength(r)
	if err != nil {
		return "", errors.Wrap(err, "parser: read text length")
	}
	if n == 0 {
		return "", nil
	}
	b, err := readBitBytes(r, int(n))
	if err != nil {
		return "", errors.Wrap(err, "parser: read text bytes")
	}
	return string(b), nil
}

func writeText(w *bits.Writer, s string) error {
	if len(s) > model.AudioDescriptionTextMaxLen {
		return errors.Errorf("parser: text length %d exceeds max %d", len(s), model.AudioDescriptionTextMaxLen)
	}
	if err := varint.WritePackedLength(w, uint32(len(s))); err != nil {
		return err
	}
	return writeBitBytes(w, []byte(s))
}

// readBitBytes reads n bytes, one bit-packed byte at a time (not
// relying on the reader being byte-aligned, unlike ReadAlignedBytes).
func readBitBytes(r *bits.Reader, n int) ([]byte, error) {
	out := make([]byte, n)
	for i := range out {
		v, err := r.ReadBits(8)
		if err != nil {
			return nil, err
		}
		out[i] = byte(v)
	}
	return out, nil
}

func writeBitBytes(w *bits.Writer, b []byte) error {
	for _, v := range b {
		if err := w.WriteBits(uint64(v), 8); err != nil {
			return err
		}
	}
	return nil
}

// readNulTerminatedASCII reads bytes up to limitBits worth of bits (the
// element BodyLength) until a NUL terminator or the limit is reached,
// stopping before a limit-exceeding read. It returns the text with the
// terminator stripped; a terminator found within the limit is consumed.
func readNulTerminatedASCII(r *bits.Reader, limitBits int64) (string, error) {
	var out []byte
	var consumed int64
	for consumed+8 <= limitBits {
		v, err := r.ReadBits(8)
		if err != nil {
			return "", err
		}
		consumed += 8
		if v == 0 {
			return string(out), nil
		}
		out = append(out, byte(v))
	}
	return string(out), nil
}
