package model

import "testing"

func TestFrameAccessorsFilterByKind(t *testing.T) {
	f := NewFrame(1, SampleRate48kHz, BitDepth24, FrameRate24)

	bed := NewBedDefinition(1)
	obj := NewObjectDefinition(2)
	dlc := NewAudioDataDLC(3)
	pcm := NewAudioDataPCM(4)
	ati := NewAuthoringToolInfo("test encoder")
	ud := NewUserData([SMPTELabelLen]byte{})

	for _, e := range []Element{bed, obj, dlc, pcm, ati, ud} {
		if err := f.AddSubElement(e); err != nil {
			t.Fatalf("AddSubElement(%s): %v", e.Kind(), err)
		}
	}

	if got := f.Beds(); len(got) != 1 || got[0] != bed {
		t.Errorf("Beds() = %v, want [bed]", got)
	}
	if got := f.Objects(); len(got) != 1 || got[0] != obj {
		t.Errorf("Objects() = %v, want [obj]", got)
	}
	if got := f.DLCEssence(); len(got) != 1 || got[0] != dlc {
		t.Errorf("DLCEssence() = %v, want [dlc]", got)
	}
	if got := f.PCMEssence(); len(got) != 1 || got[0] != pcm {
		t.Errorf("PCMEssence() = %v, want [pcm]", got)
	}
	if got := f.AuthoringToolInfos(); len(got) != 1 || got[0] != ati {
		t.Errorf("AuthoringToolInfos() = %v, want [ati]", got)
	}
	if got := f.UserDatas(); len(got) != 1 || got[0] != ud {
		t.Errorf("UserDatas() = %v, want [ud]", got)
	}
}

func TestNewFrameHeaderFields(t *testing.T) {
	f := NewFrame(1, SampleRate96kHz, BitDepth16, FrameRate60)
	if f.Version != 1 {
		t.Errorf("Version = %d, want 1", f.Version)
	}
	if f.SampleRate != SampleRate96kHz {
		t.Errorf("SampleRate = %v, want SampleRate96kHz", f.SampleRate)
	}
	if f.BitDepth != BitDepth16 {
		t.Errorf("BitDepth = %v, want BitDepth16", f.BitDepth)
	}
	if f.FrameRate != FrameRate60 {
		t.Errorf("FrameRate = %v, want FrameRate60", f.FrameRate)
	}
	if f.Kind() != KindFrame {
		t.Errorf("Kind() = %v, want KindFrame", f.Kind())
	}
}
