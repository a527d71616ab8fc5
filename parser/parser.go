/*
NAME
  parser.go

DESCRIPTION
  parser.go is the public entry point (spec.md §6): Parser wraps the
  state machine in frame.go and exposes the streaming and buffered parse
  modes plus the frame-header accessor methods external callers use
  without reaching into the model tree directly.

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
	"github.com/ausocean/utils/logging"

	"github.com/ausocean/iab/bits"
	"github.com/ausocean/iab/model"
)

// Parser decodes one frame at a time from either a single continuous
// byte buffer (streaming mode, repeated ParseFrame calls) or a series of
// independently supplied per-frame buffers (buffered mode,
// ParseFrameBuffer). Both modes build the same in-memory tree and share
// the same cross-frame format-version mismatch tracking.
type Parser struct {
	r   *bits.Reader // nil in buffered mode between calls
	log logging.Logger

	frame      *model.Frame
	frameCount int

	haveFormatVersion  bool
	formatVersion      uint8
	subFrameMismatches int
}

// NewStreaming returns a Parser that repeatedly decodes frames from one
// continuous byte buffer via ParseFrame. data is read in full: Reader
// needs random access for Peek, Save and Restore (bits/reader.go), which
// a plain io.Reader cannot support.
func NewStreaming(data []byte, opts ...Option) *Parser {
	p := &Parser{r: bits.NewReader(data)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewBuffered returns a Parser whose frames are each supplied
// independently via ParseFrameBuffer.
func NewBuffered(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseFrame decodes the next frame from the streaming buffer supplied to
// NewStreaming. It is an error to call this on a Parser created with
// NewBuffered.
func (p *Parser) ParseFrame() error {
	if p.r == nil {
		return newParseError(ErrCorruption, errNotStreaming)
	}
	return p.parseOneFrame(p.r)
}

// ParseFrameBuffer decodes exactly one frame from data. It is the
// buffered-mode entry point; data is wrapped in a fresh Reader each call.
func (p *Parser) ParseFrameBuffer(data []byte) error {
	r := bits.NewReader(data)
	return p.parseOneFrame(r)
}

func (p *Parser) parseOneFrame(r *bits.Reader) error {
	firstFrame := p.frameCount == 0
	if err := seekPreamble(r, firstFrame); err != nil {
		if p.log != nil {
			p.log.Debug("preamble search failed", "frame", p.frameCount, "error", err)
		}
		return err
	}
	hdr, err := readSubFrameHeader(r)
	if err != nil {
		if p.log != nil {
			p.log.Debug("sub-frame header decode failed", "frame", p.frameCount, "error", err)
		}
		return err
	}
	if p.haveFormatVersion && hdr.FormatVersion != p.formatVersion {
		p.subFrameMismatches++
		if p.log != nil {
			p.log.Warning("sub-frame format version changed", "frame", p.frameCount, "was", p.formatVersion, "now", hdr.FormatVersion)
		}
	}
	p.haveFormatVersion = true
	p.formatVersion = hdr.FormatVersion

	frame, err := readFrameElement(r, hdr)
	if err != nil {
		if p.log != nil {
			p.log.Debug("frame element decode failed", "frame", p.frameCount, "error", err)
		}
		return err
	}
	p.frame = frame
	p.frameCount++
	if p.log != nil {
		p.log.Debug("decoded frame", "frame", p.frameCount, "sub_elements", len(frame.SubElements()))
	}
	return nil
}

// Frame borrows the most recently parsed frame.
func (p *Parser) Frame() *model.Frame { return p.frame }

// ReleaseFrame returns ownership of the most recently parsed frame,
// clearing the Parser's reference to it.
func (p *Parser) ReleaseFrame() *model.Frame {
	f := p.frame
	p.frame = nil
	return f
}

// FrameCount reports how many frames have been successfully parsed so
// far.
func (p *Parser) FrameCount() int { return p.frameCount }

// SubFrameHeaderMismatches reports how many frames had a sub-frame
// header FormatVersion differing from the previous frame's - a flagged,
// non-fatal condition (spec.md §4.F).
func (p *Parser) SubFrameHeaderMismatches() int { return p.subFrameMismatches }

// SampleRate returns the most recently parsed frame's sample rate.
func (p *Parser) SampleRate() model.SampleRate {
	if p.frame == nil {
		return 0
	}
	return p.frame.SampleRate
}

// FrameRate returns the most recently parsed frame's frame rate.
func (p *Parser) FrameRate() model.FrameRate {
	if p.frame == nil {
		return 0
	}
	return p.frame.FrameRate
}

// FrameSampleCount estimates the number of audio samples spanned by one
// frame at the parsed sample rate and frame rate (Hz / fps, truncated).
// Fractional frame rates (23.976 etc.) do not divide evenly across every
// individual frame in a real encoder's cadence; this is an informational
// approximation, not used by any validation rule.
func (p *Parser) FrameSampleCount() int {
	if p.frame == nil {
		return 0
	}
	fps1000 := p.frame.FrameRate.FPS1000()
	if fps1000 == 0 {
		return 0
	}
	return p.frame.SampleRate.Hz() * 1000 / fps1000
}

// FrameSubElementCount returns the number of direct sub-elements
// successfully decoded on the most recently parsed frame.
func (p *Parser) FrameSubElementCount() int {
	if p.frame == nil {
		return 0
	}
	return len(p.frame.SubElements())
}

// UnallowedSubElementCount returns the number of recognized-but-not-
// permitted sub-elements dropped while decoding the most recently parsed
// frame.
func (p *Parser) UnallowedSubElementCount() int {
	if p.frame == nil {
		return 0
	}
	return p.frame.NumUnallowedSubElements
}

// MaximumAssetsToBeRendered returns the most recently parsed frame's
// declared MaxRendered field.
func (p *Parser) MaximumAssetsToBeRendered() uint32 {
	if p.frame == nil {
		return 0
	}
	return p.frame.MaxRendered
}

var errNotStreaming = parserModeError("parser: ParseFrame called on a buffered-mode Parser; use ParseFrameBuffer")

type parserModeError string

func (e parserModeError) Error() string { return string(e) }
