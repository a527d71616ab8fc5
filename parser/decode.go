/*
NAME
  decode.go

DESCRIPTION
  decode.go implements the element framework's decode side (spec.md
  §4.C): reading one element's tag+length header, dispatching to a
  typed per-Kind body decoder, and tracking unknown/unallowed
  sub-elements on the parent that owns them.

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

// decodeElement reads one element's header and body starting at the
// current (not necessarily aligned) cursor position. It aligns before
// reading the header, since ElementID/BodyLength are byte-granular
// encodings. A recognized-but-unparseable body is a fatal *ParseError; an
// unrecognized tag is skipped and reported via the second return value.
func decodeElement(r *bits.Reader) (model.Element, bool /* recognized */, error) {
	r.Align()

	t, err := readTag(r)
	if err != nil {
		return nil, false, newParseError(ErrCorruption, err)
	}
	bodyLen, err := varint.ReadPackedLength(r)
	if err != nil {
		return nil, false, newParseError(ErrCorruption, err)
	}

	kind, known := kindForTag(t)
	if !known {
		if _, err := readBitBytes(r, int(bodyLen)); err != nil {
			return nil, false, newParseError(ErrElementLengthMismatch, err)
		}
		return nil, false, nil
	}

	bodyStart := r.Position()
	elem, err := decodeBody(r, kind, bodyLen)
	if err != nil {
		return nil, true, err
	}
	r.Align()
	consumed := r.Position() - bodyStart
	if consumed != int64(bodyLen)*8 {
		return nil, true, newParseError(ErrElementLengthMismatch,
			errors.Errorf("%s: consumed %d bits, declared body was %d bytes", kind, consumed, bodyLen))
	}
	return elem, true, nil
}

func readTag(r *bits.Reader) (tag, error) {
	v, err := varint.ReadPlex(r, 8)
	if err != nil {
		return 0, err
	}
	return tag(v), nil
}

// decodeSubElements reads count elements and partitions them: recognized
// tags not allowed as a child of parentKind are dropped and counted in
// numUnallowed; unrecognized tags are dropped and counted in numUndefined.
func decodeSubElements(r *bits.Reader, parentKind model.Kind, count uint32) (elements []model.Element, numUndefined, numUnallowed int, err error) {
	for i := uint32(0); i < count; i++ {
		elem, recognized, err := decodeElement(r)
		if err != nil {
			return nil, 0, 0, err
		}
		if !recognized {
			numUndefined++
			continue
		}
		if !model.IsAllowedChild(parentKind, elem.Kind()) {
			numUnallowed++
			continue
		}
		elements = append(elements, elem)
	}
	return elements, numUndefined, numUnallowed, nil
}

func decodeBody(r *bits.Reader, kind model.Kind, bodyLen uint32) (model.Element, error) {
	switch kind {
	case model.KindFrame:
		return decodeFrameBody(r)
	case model.KindBedDefinition:
		return decodeBedDefinitionBody(r)
	case model.KindBedRemap:
		return decodeBedRemapBody(r)
	case model.KindObjectDefinition:
		return decodeObjectDefinitionBody(r)
	case model.KindObjectZoneDefinition19:
		return decodeZone19Body(r)
	case model.KindAudioDataDLC:
		return decodeAudioDataDLCBody(r, bodyLen)
	case model.KindAudioDataPCM:
		return decodeAudioDataPCMBody(r, bodyLen)
	case model.KindAuthoringToolInfo:
		return decodeAuthoringToolInfoBody(r, bodyLen)
	case model.KindUserData:
		return decodeUserDataBody(r, bodyLen)
	default:
		return nil, newParseError(ErrCorruption, errors.Errorf("unhandled kind %s", kind))
	}
}

func decodeFrameBody(r *bits.Reader) (*model.Frame, error) {
	version, err := r.ReadBits(widthVersion)
	if err != nil {
		return nil, newParseError(ErrReadPastEnd, err)
	}
	sr, err := r.ReadBits(widthSampleRate)
	if err != nil {
		return nil, newParseError(ErrReadPastEnd, err)
	}
	bd, err := r.ReadBits(widthBitDepth)
	if err != nil {
		return nil, newParseError(ErrReadPastEnd, err)
	}
	fr, err := r.ReadBits(widthFrameRate)
	if err != nil {
		return nil, newParseError(ErrReadPastEnd, err)
	}
	maxRendered, err := varint.ReadPlex(r, 8)
	if err != nil {
		return nil, newParseError(ErrCorruption, err)
	}
	subCount, err := varint.ReadPlex(r, 8)
	if err != nil {
		return nil, newParseError(ErrCorruption, err)
	}

	frame := model.NewFrame(uint8(version), model.SampleRate(sr), model.BitDepth(bd), model.FrameRate(fr))
	frame.MaxRendered = maxRendered

	elems, numUndef, numUnallowed, err := decodeSubElements(r, model.KindFrame, subCount)
	if err != nil {
		return nil, err
	}
	frame.SetSubElements(elems)
	frame.NumUndefinedSubElements = numUndef
	frame.NumUnallowedSubElements = numUnallowed
	return frame, nil
}

func decodeBedDefinitionBody(r *bits.Reader) (*model.BedDefinition, error) {
	metaID, err := varint.ReadPlex(r, 8)
	if err != nil {
		return nil, newParseError(ErrCorruption, err)
	}
	condBit, err := r.ReadBits(widthFlag)
	if err != nil {
		return nil, newParseError(ErrReadPastEnd, err)
	}
	useCase, err := r.ReadBits(widthUseCase)
	if err != nil {
		return nil, newParseError(ErrReadPastEnd, err)
	}
	numChannels, err := varint.ReadPlex(r, 8)
	if err != nil {
		return nil, newParseError(ErrCorruption, err)
	}

	channels := make([]model.BedChannel, 0, numChannels)
	for i := uint32(0); i < numChannels; i++ {
		ch, err := decodeBedChannel(r)
		if err != nil {
			return nil, err
		}
		channels = append(channels, ch)
	}

	desc, err := readText(r)
	if err != nil {
		return nil, newParseError(ErrCorruption, err)
	}

	subCount, err := varint.ReadPlex(r, 8)
	if err != nil {
		return nil, newParseError(ErrCorruption, err)
	}

	bed := model.NewBedDefinition(model.MetaID(metaID))
	bed.Conditional = condBit != 0
	bed.UseCase = model.UseCase(useCase)
	bed.Channels = channels
	bed.NumChannels = uint32(len(channels))
	bed.AudioDescription = desc

	elems, numUndef, numUnallowed, err := decodeSubElements(r, model.KindBedDefinition, subCount)
	if err != nil {
		return nil, err
	}
	bed.SetSubElements(elems)
	bed.NumSubElements = uint32(len(elems))
	bed.NumUndefinedSubElements = numUndef
	bed.NumUnallowedSubElements = numUnallowed
	return bed, nil
}

func decodeBedChannel(r *bits.Reader) (model.BedChannel, error) {
	cid, err := r.ReadBits(widthChannelID)
	if err != nil {
		return model.BedChannel{}, newParseError(ErrReadPastEnd, err)
	}
	audioID, err := varint.ReadPlex(r, 8)
	if err != nil {
		return model.BedChannel{}, newParseError(ErrCorruption, err)
	}
	gain, err := readGain(r)
	if err != nil {
		return model.BedChannel{}, newParseError(ErrReadPastEnd, err)
	}
	decor, err := readDecorCoef(r)
	if err != nil {
		return model.BedChannel{}, newParseError(ErrReadPastEnd, err)
	}
	return model.BedChannel{
		ChannelID:   model.ChannelID(cid),
		AudioDataID: model.AudioDataID(audioID),
		Gain:        gain,
		Decor:       decor,
	}, nil
}

func decodeBedRemapBody(r *bits.Reader) (*model.BedRemap, error) {
	metaID, err := varint.ReadPlex(r, 8)
	if err != nil {
		return nil, newParseError(ErrCorruption, err)
	}
	useCase, err := r.ReadBits(widthUseCase)
	if err != nil {
		return nil, newParseError(ErrReadPastEnd, err)
	}
	srcChannels, err := varint.ReadPlex(r, 8)
	if err != nil {
		return nil, newParseError(ErrCorruption, err)
	}
	destChannels, err := varint.ReadPlex(r, 8)
	if err != nil {
		return nil, newParseError(ErrCorruption, err)
	}
	numSubblocks, err := varint.ReadPlex(r, 8)
	if err != nil {
		return nil, newParseError(ErrCorruption, err)
	}

	subblocks := make([]model.RemapSubBlock, 0, numSubblocks)
	for i := uint32(0); i < numSubblocks; i++ {
		sb, err := decodeRemapSubBlock(r)
		if err != nil {
			return nil, err
		}
		subblocks = append(subblocks, sb)
	}

	remap := model.NewBedRemap(model.MetaID(metaID))
	remap.UseCase = model.UseCase(useCase)
	remap.SourceChannels = srcChannels
	remap.DestChannels = destChannels
	remap.Subblocks = subblocks
	remap.NumSubblocks = uint32(len(subblocks))
	return remap, nil
}

func decodeRemapSubBlock(r *bits.Reader) (model.RemapSubBlock, error) {
	destID, err := r.ReadBits(widthChannelID)
	if err != nil {
		return model.RemapSubBlock{}, newParseError(ErrReadPastEnd, err)
	}
	numCoeffs, err := varint.ReadPlex(r, 8)
	if err != nil {
		return model.RemapSubBlock{}, newParseError(ErrCorruption, err)
	}
	coeffs := make([]model.RemapCoefficient, 0, numCoeffs)
	for i := uint32(0); i < numCoeffs; i++ {
		srcIdx, err := varint.ReadPlex(r, 8)
		if err != nil {
			return model.RemapSubBlock{}, newParseError(ErrCorruption, err)
		}
		gain, err := readGain(r)
		if err != nil {
			return model.RemapSubBlock{}, newParseError(ErrReadPastEnd, err)
		}
		coeffs = append(coeffs, model.RemapCoefficient{SourceIndex: int(srcIdx), Gain: gain})
	}
	return model.RemapSubBlock{DestChannelID: model.ChannelID(destID), Coefficients: coeffs}, nil
}

func decodeObjectDefinitionBody(r *bits.Reader) (*model.ObjectDefinition, error) {
	metaID, err := varint.ReadPlex(r, 8)
	if err != nil {
		return nil, newParseError(ErrCorruption, err)
	}
	audioID, err := varint.ReadPlex(r, 8)
	if err != nil {
		return nil, newParseError(ErrCorruption, err)
	}
	condBit, err := r.ReadBits(widthFlag)
	if err != nil {
		return nil, newParseError(ErrReadPastEnd, err)
	}
	useCase, err := r.ReadBits(widthUseCase)
	if err != nil {
		return nil, newParseError(ErrReadPastEnd, err)
	}
	numSubblocks, err := varint.ReadPlex(r, 8)
	if err != nil {
		return nil, newParseError(ErrCorruption, err)
	}

	subblocks := make([]model.ObjectSubBlock, 0, numSubblocks)
	for i := uint32(0); i < numSubblocks; i++ {
		sb, err := decodeObjectSubBlock(r)
		if err != nil {
			return nil, err
		}
		subblocks = append(subblocks, sb)
	}

	desc, err := readText(r)
	if err != nil {
		return nil, newParseError(ErrCorruption, err)
	}

	subCount, err := varint.ReadPlex(r, 8)
	if err != nil {
		return nil, newParseError(ErrCorruption, err)
	}

	obj := model.NewObjectDefinition(model.MetaID(metaID))
	obj.AudioDataID = model.AudioDataID(audioID)
	obj.Conditional = condBit != 0
	obj.UseCase = model.UseCase(useCase)
	obj.Subblocks = subblocks
	obj.NumSubblocks = uint32(len(subblocks))
	obj.AudioDescription = desc

	elems, numUndef, numUnallowed, err := decodeSubElements(r, model.KindObjectDefinition, subCount)
	if err != nil {
		return nil, err
	}
	obj.SetSubElements(elems)
	obj.NumSubElements = uint32(len(elems))
	obj.NumUndefinedSubElements = numUndef
	obj.NumUnallowedSubElements = numUnallowed
	return obj, nil
}

func decodeObjectSubBlock(r *bits.Reader) (model.ObjectSubBlock, error) {
	var sb model.ObjectSubBlock
	panBit, err := r.ReadBits(widthFlag)
	if err != nil {
		return sb, newParseError(ErrReadPastEnd, err)
	}
	sb.PanInfoExists = panBit != 0
	if !sb.PanInfoExists {
		return sb, nil
	}
	if sb.Gain, err = readGain(r); err != nil {
		return sb, newParseError(ErrReadPastEnd, err)
	}
	if sb.Position, err = readPosition(r); err != nil {
		return sb, newParseError(ErrReadPastEnd, err)
	}
	snapBit, err := r.ReadBits(widthFlag)
	if err != nil {
		return sb, newParseError(ErrReadPastEnd, err)
	}
	sb.SnapPresent = snapBit != 0
	snapTolBit, err := r.ReadBits(widthFlag)
	if err != nil {
		return sb, newParseError(ErrReadPastEnd, err)
	}
	sb.SnapTolExists = snapTolBit != 0
	spread, err := r.ReadBits(widthSpreadMode)
	if err != nil {
		return sb, newParseError(ErrReadPastEnd, err)
	}
	sb.Spread = model.SpreadMode(spread)
	for i := range sb.ZoneGains9 {
		zg, err := readZoneGain(r)
		if err != nil {
			return sb, newParseError(ErrReadPastEnd, err)
		}
		sb.ZoneGains9[i] = zg
	}
	if sb.Decor, err = readDecorCoef(r); err != nil {
		return sb, newParseError(ErrReadPastEnd, err)
	}
	return sb, nil
}

func decodeZone19Body(r *bits.Reader) (*model.Zone19, error) {
	numSubblocks, err := varint.ReadPlex(r, 8)
	if err != nil {
		return nil, newParseError(ErrCorruption, err)
	}
	subblocks := make([]model.Zone19SubBlock, 0, numSubblocks)
	for i := uint32(0); i < numSubblocks; i++ {
		var sb model.Zone19SubBlock
		for j := range sb.Gains {
			zg, err := readZoneGain(r)
			if err != nil {
				return nil, newParseError(ErrReadPastEnd, err)
			}
			sb.Gains[j] = zg
		}
		subblocks = append(subblocks, sb)
	}
	z := model.NewZone19()
	z.Subblocks = subblocks
	z.NumSubblocks = uint32(len(subblocks))
	return z, nil
}

func decodeAudioDataDLCBody(r *bits.Reader, bodyLen uint32) (*model.AudioDataDLC, error) {
	audioID, err := varint.ReadPlex(r, 8)
	if err != nil {
		return nil, newParseError(ErrCorruption, err)
	}
	sr, err := r.ReadBits(widthSampleRate)
	if err != nil {
		return nil, newParseError(ErrReadPastEnd, err)
	}
	payloadLen, err := varint.ReadPackedLength(r)
	if err != nil {
		return nil, newParseError(ErrCorruption, err)
	}
	payload, err := readBitBytes(r, int(payloadLen))
	if err != nil {
		return nil, newParseError(ErrElementLengthMismatch, err)
	}
	d := model.NewAudioDataDLC(model.AudioDataID(audioID))
	d.DLCSampleRate = model.SampleRate(sr)
	d.Payload = payload
	return d, nil
}

func decodeAudioDataPCMBody(r *bits.Reader, bodyLen uint32) (*model.AudioDataPCM, error) {
	audioID, err := varint.ReadPlex(r, 8)
	if err != nil {
		return nil, newParseError(ErrCorruption, err)
	}
	fr, err := r.ReadBits(widthFrameRate)
	if err != nil {
		return nil, newParseError(ErrReadPastEnd, err)
	}
	sr, err := r.ReadBits(widthSampleRate)
	if err != nil {
		return nil, newParseError(ErrReadPastEnd, err)
	}
	bd, err := r.ReadBits(widthBitDepth)
	if err != nil {
		return nil, newParseError(ErrReadPastEnd, err)
	}
	payloadLen, err := varint.ReadPackedLength(r)
	if err != nil {
		return nil, newParseError(ErrCorruption, err)
	}
	payload, err := readBitBytes(r, int(payloadLen))
	if err != nil {
		return nil, newParseError(ErrElementLengthMismatch, err)
	}
	p := model.NewAudioDataPCM(model.AudioDataID(audioID))
	p.FrameRate = model.FrameRate(fr)
	p.SampleRate = model.SampleRate(sr)
	p.BitDepth = model.BitDepth(bd)
	p.Payload = payload
	return p, nil
}

func decodeAuthoringToolInfoBody(r *bits.Reader, bodyLen uint32) (*model.AuthoringToolInfo, error) {
	text, err := readNulTerminatedASCII(r, int64(bodyLen)*8)
	if err != nil {
		return nil, newParseError(ErrReadPastEnd, err)
	}
	return model.NewAuthoringToolInfo(text), nil
}

func decodeUserDataBody(r *bits.Reader, bodyLen uint32) (*model.UserData, error) {
	if bodyLen < model.SMPTELabelLen {
		return nil, newParseError(ErrElementLengthMismatch,
			errors.Errorf("UserData body %d bytes shorter than label %d bytes", bodyLen, model.SMPTELabelLen))
	}
	labelBytes, err := readBitBytes(r, model.SMPTELabelLen)
	if err != nil {
		return nil, newParseError(ErrReadPastEnd, err)
	}
	var label [model.SMPTELabelLen]byte
	copy(label[:], labelBytes)

	payload, err := readBitBytes(r, int(bodyLen)-model.SMPTELabelLen)
	if err != nil {
		return nil, newParseError(ErrElementLengthMismatch, err)
	}
	u := model.NewUserData(label)
	u.Payload = payload
	return u, nil
}
