/*
NAME
  encode.go

DESCRIPTION
  encode.go is the test-only mirror of decode.go: it re-serializes an
  already-built model tree back to wire bytes, honoring each element's
  IncludeInPacking flag. It performs no validation or repair of its
  input and is used only to exercise the round-trip properties (P4, P5,
  P6) from _test.go files in this module - it is not a public authoring
  API (SPEC_FULL.md §5).

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package parser

import (
	"github.com/pkg/errors"

	"github.com/ausocean/iab/bits"
	"github.com/ausocean/iab/model"
	"github.com/ausocean/iab/varint"
)

// EncodeFrame serializes f to w as a complete frame element (tag, length,
// body). It is the symmetric counterpart of decodeFrameBody and is used
// only by tests.
func EncodeFrame(w *bits.Writer, f *model.Frame) error {
	return encodeElement(w, f)
}

func encodeElement(w *bits.Writer, e model.Element) error {
	if !e.IncludeInPacking() {
		return nil
	}
	if err := w.Align(); err != nil {
		return err
	}
	bw := bits.NewWriter()
	if err := encodeBody(bw, e); err != nil {
		return err
	}
	if err := bw.Align(); err != nil {
		return err
	}
	body := bw.Bytes()

	t := tagForKind(e.Kind())
	if err := varint.WritePlex(w, uint32(t), 8); err != nil {
		return err
	}
	if err := varint.WritePackedLength(w, uint32(len(body))); err != nil {
		return err
	}
	return writeBitBytes(w, body)
}

func includedCount(elems []model.Element) uint32 {
	var n uint32
	for _, e := range elems {
		if e.IncludeInPacking() {
			n++
		}
	}
	return n
}

func encodeSubElements(w *bits.Writer, elems []model.Element) error {
	if err := varint.WritePlex(w, includedCount(elems), 8); err != nil {
		return err
	}
	for _, e := range elems {
		if err := encodeElement(w, e); err != nil {
			return err
		}
	}
	return nil
}

func encodeBody(w *bits.Writer, e model.Element) error {
	switch v := e.(type) {
	case *model.Frame:
		return encodeFrameBody(w, v)
	case *model.BedDefinition:
		return encodeBedDefinitionBody(w, v)
	case *model.BedRemap:
		return encodeBedRemapBody(w, v)
	case *model.ObjectDefinition:
		return encodeObjectDefinitionBody(w, v)
	case *model.Zone19:
		return encodeZone19Body(w, v)
	case *model.AudioDataDLC:
		return encodeAudioDataDLCBody(w, v)
	case *model.AudioDataPCM:
		return encodeAudioDataPCMBody(w, v)
	case *model.AuthoringToolInfo:
		return encodeAuthoringToolInfoBody(w, v)
	case *model.UserData:
		return encodeUserDataBody(w, v)
	default:
		return errors.Errorf("parser: no encoder for %T", e)
	}
}

func encodeFrameBody(w *bits.Writer, f *model.Frame) error {
	if err := w.WriteBits(uint64(f.Version), widthVersion); err != nil {
		return err
	}
	if err := w.WriteBits(uint64(f.SampleRate), widthSampleRate); err != nil {
		return err
	}
	if err := w.WriteBits(uint64(f.BitDepth), widthBitDepth); err != nil {
		return err
	}
	if err := w.WriteBits(uint64(f.FrameRate), widthFrameRate); err != nil {
		return err
	}
	if err := varint.WritePlex(w, f.MaxRendered, 8); err != nil {
		return err
	}
	return encodeSubElements(w, f.SubElements())
}

func encodeBedDefinitionBody(w *bits.Writer, b *model.BedDefinition) error {
	if err := varint.WritePlex(w, uint32(b.MetaID), 8); err != nil {
		return err
	}
	cond := uint64(0)
	if b.Conditional {
		cond = 1
	}
	if err := w.WriteBits(cond, widthFlag); err != nil {
		return err
	}
	if err := w.WriteBits(uint64(b.UseCase), widthUseCase); err != nil {
		return err
	}
	if err := varint.WritePlex(w, uint32(len(b.Channels)), 8); err != nil {
		return err
	}
	for _, ch := range b.Channels {
		if err := encodeBedChannel(w, ch); err != nil {
			return err
		}
	}
	if err := writeText(w, b.AudioDescription); err != nil {
		return err
	}
	return encodeSubElements(w, b.SubElements())
}

func encodeBedChannel(w *bits.Writer, ch model.BedChannel) error {
	if err := w.WriteBits(uint64(ch.ChannelID), widthChannelID); err != nil {
		return err
	}
	if err := varint.WritePlex(w, uint32(ch.AudioDataID), 8); err != nil {
		return err
	}
	if err := writeGain(w, ch.Gain); err != nil {
		return err
	}
	return writeDecorCoef(w, ch.Decor)
}

func encodeBedRemapBody(w *bits.Writer, r *model.BedRemap) error {
	if err := varint.WritePlex(w, uint32(r.MetaID), 8); err != nil {
		return err
	}
	if err := w.WriteBits(uint64(r.UseCase), widthUseCase); err != nil {
		return err
	}
	if err := varint.WritePlex(w, r.SourceChannels, 8); err != nil {
		return err
	}
	if err := varint.WritePlex(w, r.DestChannels, 8); err != nil {
		return err
	}
	if err := varint.WritePlex(w, uint32(len(r.Subblocks)), 8); err != nil {
		return err
	}
	for _, sb := range r.Subblocks {
		if err := encodeRemapSubBlock(w, sb); err != nil {
			return err
		}
	}
	return nil
}

func encodeRemapSubBlock(w *bits.Writer, sb model.RemapSubBlock) error {
	if err := w.WriteBits(uint64(sb.DestChannelID), widthChannelID); err != nil {
		return err
	}
	if err := varint.WritePlex(w, uint32(len(sb.Coefficients)), 8); err != nil {
		return err
	}
	for _, c := range sb.Coefficients {
		if err := varint.WritePlex(w, uint32(c.SourceIndex), 8); err != nil {
			return err
		}
		if err := writeGain(w, c.Gain); err != nil {
			return err
		}
	}
	return nil
}

func encodeObjectDefinitionBody(w *bits.Writer, o *model.ObjectDefinition) error {
	if err := varint.WritePlex(w, uint32(o.MetaID), 8); err != nil {
		return err
	}
	if err := varint.WritePlex(w, uint32(o.AudioDataID), 8); err != nil {
		return err
	}
	cond := uint64(0)
	if o.Conditional {
		cond = 1
	}
	if err := w.WriteBits(cond, widthFlag); err != nil {
		return err
	}
	if err := w.WriteBits(uint64(o.UseCase), widthUseCase); err != nil {
		return err
	}
	if err := varint.WritePlex(w, uint32(len(o.Subblocks)), 8); err != nil {
		return err
	}
	for _, sb := range o.Subblocks {
		if err := encodeObjectSubBlock(w, sb); err != nil {
			return err
		}
	}
	if err := writeText(w, o.AudioDescription); err != nil {
		return err
	}
	return encodeSubElements(w, o.SubElements())
}

func encodeObjectSubBlock(w *bits.Writer, sb model.ObjectSubBlock) error {
	pan := uint64(0)
	if sb.PanInfoExists {
		pan = 1
	}
	if err := w.WriteBits(pan, widthFlag); err != nil {
		return err
	}
	if !sb.PanInfoExists {
		return nil
	}
	if err := writeGain(w, sb.Gain); err != nil {
		return err
	}
	if err := writePosition(w, sb.Position); err != nil {
		return err
	}
	snap := uint64(0)
	if sb.SnapPresent {
		snap = 1
	}
	if err := w.WriteBits(snap, widthFlag); err != nil {
		return err
	}
	snapTol := uint64(0)
	if sb.SnapTolExists {
		snapTol = 1
	}
	if err := w.WriteBits(snapTol, widthFlag); err != nil {
		return err
	}
	if err := w.WriteBits(uint64(sb.Spread), widthSpreadMode); err != nil {
		return err
	}
	for _, zg := range sb.ZoneGains9 {
		if err := writeZoneGain(w, zg); err != nil {
			return err
		}
	}
	return writeDecorCoef(w, sb.Decor)
}

func encodeZone19Body(w *bits.Writer, z *model.Zone19) error {
	if err := varint.WritePlex(w, uint32(len(z.Subblocks)), 8); err != nil {
		return err
	}
	for _, sb := range z.Subblocks {
		for _, zg := range sb.Gains {
			if err := writeZoneGain(w, zg); err != nil {
				return err
			}
		}
	}
	return nil
}

func encodeAudioDataDLCBody(w *bits.Writer, d *model.AudioDataDLC) error {
	if err := varint.WritePlex(w, uint32(d.AudioDataID), 8); err != nil {
		return err
	}
	if err := w.WriteBits(uint64(d.DLCSampleRate), widthSampleRate); err != nil {
		return err
	}
	if err := varint.WritePackedLength(w, uint32(len(d.Payload))); err != nil {
		return err
	}
	return writeBitBytes(w, d.Payload)
}

func encodeAudioDataPCMBody(w *bits.Writer, p *model.AudioDataPCM) error {
	if err := varint.WritePlex(w, uint32(p.AudioDataID), 8); err != nil {
		return err
	}
	if err := w.WriteBits(uint64(p.FrameRate), widthFrameRate); err != nil {
		return err
	}
	if err := w.WriteBits(uint64(p.SampleRate), widthSampleRate); err != nil {
		return err
	}
	if err := w.WriteBits(uint64(p.BitDepth), widthBitDepth); err != nil {
		return err
	}
	if err := varint.WritePackedLength(w, uint32(len(p.Payload))); err != nil {
		return err
	}
	return writeBitBytes(w, p.Payload)
}

func encodeAuthoringToolInfoBody(w *bits.Writer, a *model.AuthoringToolInfo) error {
	if err := writeBitBytes(w, []byte(a.Text)); err != nil {
		return err
	}
	return w.WriteBits(0, 8) // NUL terminator
}

func encodeUserDataBody(w *bits.Writer, u *model.UserData) error {
	if err := writeBitBytes(w, u.Label[:]); err != nil {
		return err
	}
	return writeBitBytes(w, u.Payload)
}
