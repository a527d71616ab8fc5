package parser

import (
	"testing"

	"github.com/ausocean/iab/bits"
	"github.com/ausocean/iab/model"
	"github.com/ausocean/iab/varint"
)

// buildStream wraps an encoded Frame element in a preamble + sub-frame
// header, producing a complete one-frame stream byte slice.
func buildStream(t *testing.T, f *model.Frame, formatVersion uint8) []byte {
	t.Helper()
	fw := bits.NewWriter()
	if err := EncodeFrame(fw, f); err != nil {
		t.Fatalf("EncodeFrame: %v", err)
	}
	if err := fw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	frameBytes := fw.Bytes()

	sw := bits.NewWriter()
	if err := writeBitBytes(sw, Preamble); err != nil {
		t.Fatalf("write preamble: %v", err)
	}
	if err := sw.WriteBits(uint64(formatVersion), widthVersion); err != nil {
		t.Fatalf("write format version: %v", err)
	}
	if err := varint.WritePackedLength(sw, uint32(len(frameBytes))); err != nil {
		t.Fatalf("write frame length: %v", err)
	}
	if err := writeBitBytes(sw, frameBytes); err != nil {
		t.Fatalf("write frame bytes: %v", err)
	}
	if err := sw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return sw.Bytes()
}

func minimalFrame() *model.Frame {
	f := model.NewFrame(1, model.SampleRate48kHz, model.BitDepth24, model.FrameRate24)
	f.MaxRendered = 6

	bed := model.NewBedDefinition(1)
	bed.UseCase = model.UseCaseCinema
	bed.Channels = []model.BedChannel{
		{ChannelID: model.ChannelLeft, AudioDataID: 1, Gain: model.Gain{Prefix: model.GainPrefixUnitGain}},
		{ChannelID: model.ChannelRight, AudioDataID: 2, Gain: model.Gain{Prefix: model.GainPrefixUnitGain}},
	}
	bed.NumChannels = 2
	bed.AudioDescription = "L/R bed"
	f.AddSubElement(bed)

	for id := 1; id <= 2; id++ {
		d := model.NewAudioDataDLC(model.AudioDataID(id))
		d.DLCSampleRate = model.SampleRate48kHz
		d.Payload = []byte{byte(id), byte(id + 1), byte(id + 2)}
		f.AddSubElement(d)
	}

	at := model.NewAuthoringToolInfo("test-tool v1")
	f.AddSubElement(at)

	return f
}

func TestRoundTripMinimalFrame(t *testing.T) {
	orig := minimalFrame()
	stream := buildStream(t, orig, 1)

	p := NewStreaming(stream)
	if err := p.ParseFrame(); err != nil {
		t.Fatalf("ParseFrame: %v", err)
	}
	got := p.Frame()

	if got.Version != orig.Version || got.SampleRate != orig.SampleRate ||
		got.BitDepth != orig.BitDepth || got.FrameRate != orig.FrameRate || got.MaxRendered != orig.MaxRendered {
		t.Fatalf("header fields mismatch: got %+v, want %+v", got, orig)
	}

	beds := got.Beds()
	if len(beds) != 1 {
		t.Fatalf("len(Beds()) = %d, want 1", len(beds))
	}
	if beds[0].MetaID != 1 || len(beds[0].Channels) != 2 {
		t.Fatalf("bed mismatch: %+v", beds[0])
	}
	if beds[0].Channels[0].ChannelID != model.ChannelLeft || beds[0].Channels[0].AudioDataID != 1 {
		t.Fatalf("bed channel 0 mismatch: %+v", beds[0].Channels[0])
	}
	if beds[0].AudioDescription != "L/R bed" {
		t.Fatalf("AudioDescription = %q, want %q", beds[0].AudioDescription, "L/R bed")
	}

	dlc := got.DLCEssence()
	if len(dlc) != 2 {
		t.Fatalf("len(DLCEssence()) = %d, want 2", len(dlc))
	}
	for i, d := range dlc {
		if d.AudioDataID != model.AudioDataID(i+1) {
			t.Errorf("dlc[%d].AudioDataID = %d, want %d", i, d.AudioDataID, i+1)
		}
	}

	tools := got.AuthoringToolInfos()
	if len(tools) != 1 || tools[0].Text != "test-tool v1" {
		t.Fatalf("AuthoringToolInfos mismatch: %+v", tools)
	}
}

func TestParseFrameMissingPreambleOnFirstFrame(t *testing.T) {
	p := NewStreaming([]byte{0x00, 0x01, 0x02, 0x03})
	err := p.ParseFrame()
	perr, ok := err.(*ParseError)
	if !ok || perr.Kind != ErrMissingPreamble {
		t.Fatalf("err = %v, want ErrMissingPreamble", err)
	}
}

func TestParseFrameEndOfStreamAfterFirstFrame(t *testing.T) {
	orig := minimalFrame()
	stream := buildStream(t, orig, 1)
	stream = append(stream, make([]byte, 8)...) // padding, no second preamble

	p := NewStreaming(stream)
	if err := p.ParseFrame(); err != nil {
		t.Fatalf("first ParseFrame: %v", err)
	}
	err := p.ParseFrame()
	perr, ok := err.(*ParseError)
	if !ok || perr.Kind != ErrEndOfStream {
		t.Fatalf("second ParseFrame err = %v, want ErrEndOfStream", err)
	}
}

func TestParseFrameDetectsFormatVersionMismatch(t *testing.T) {
	f1 := minimalFrame()
	f2 := minimalFrame()
	s1 := buildStream(t, f1, 1)
	s2 := buildStream(t, f2, 2)

	p := NewStreaming(append(s1, s2...))
	if err := p.ParseFrame(); err != nil {
		t.Fatalf("frame 1: %v", err)
	}
	if err := p.ParseFrame(); err != nil {
		t.Fatalf("frame 2: %v", err)
	}
	if p.SubFrameHeaderMismatches() != 1 {
		t.Fatalf("SubFrameHeaderMismatches() = %d, want 1", p.SubFrameHeaderMismatches())
	}
}

func TestParseFrameBufferMode(t *testing.T) {
	orig := minimalFrame()
	stream := buildStream(t, orig, 1)

	p := NewBuffered()
	if err := p.ParseFrameBuffer(stream); err != nil {
		t.Fatalf("ParseFrameBuffer: %v", err)
	}
	if p.Frame() == nil {
		t.Fatal("Frame() is nil after ParseFrameBuffer")
	}
	if _, ok := interface{}(p).(interface{ ParseFrame() error }); !ok {
		t.Fatal("Parser should still expose ParseFrame")
	}
	if err := p.ParseFrame(); err == nil {
		t.Fatal("ParseFrame on a buffered-mode Parser with no streaming reader should error")
	}
}

func TestDecodeElementRecognizesEncodedFrame(t *testing.T) {
	fw := bits.NewWriter()
	if err := EncodeFrame(fw, minimalFrame()); err != nil {
		t.Fatalf("EncodeFrame: %v", err)
	}
	// Re-decode via decodeElement directly to check the framework path in
	// isolation: minimalFrame has no unknown tags, so the encoded Frame
	// must come back recognized as a Frame.
	if err := fw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	r := bits.NewReader(fw.Bytes())
	elem, recognized, err := decodeElement(r)
	if err != nil {
		t.Fatalf("decodeElement: %v", err)
	}
	if !recognized {
		t.Fatal("expected recognized Frame element")
	}
	if elem.Kind() != model.KindFrame {
		t.Fatalf("Kind() = %v, want KindFrame", elem.Kind())
	}
}

func TestFrameSampleCount(t *testing.T) {
	p := &Parser{frame: model.NewFrame(1, model.SampleRate48kHz, model.BitDepth24, model.FrameRate24)}
	if got, want := p.FrameSampleCount(), 2000; got != want {
		t.Errorf("FrameSampleCount() = %d, want %d", got, want)
	}
}

func TestMaximumAssetsToBeRendered(t *testing.T) {
	f := model.NewFrame(1, model.SampleRate48kHz, model.BitDepth24, model.FrameRate24)
	f.MaxRendered = 42
	p := &Parser{frame: f}
	if got := p.MaximumAssetsToBeRendered(); got != 42 {
		t.Errorf("MaximumAssetsToBeRendered() = %d, want 42", got)
	}
}
