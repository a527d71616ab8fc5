package model

import "testing"

func TestIsAllowedChild(t *testing.T) {
	cases := []struct {
		parent, child Kind
		want          bool
	}{
		{KindFrame, KindBedDefinition, true},
		{KindFrame, KindObjectDefinition, true},
		{KindFrame, KindAudioDataDLC, true},
		{KindFrame, KindAudioDataPCM, true},
		{KindFrame, KindAuthoringToolInfo, true},
		{KindFrame, KindUserData, true},
		{KindFrame, KindBedRemap, false},
		{KindFrame, KindObjectZoneDefinition19, false},
		{KindBedDefinition, KindBedDefinition, true},
		{KindBedDefinition, KindBedRemap, true},
		{KindBedDefinition, KindObjectDefinition, false},
		{KindObjectDefinition, KindObjectDefinition, true},
		{KindObjectDefinition, KindObjectZoneDefinition19, true},
		{KindObjectDefinition, KindBedRemap, false},
		{KindObjectZoneDefinition19, KindObjectDefinition, false},
		{KindAudioDataDLC, KindAudioDataDLC, false},
	}
	for _, c := range cases {
		if got := IsAllowedChild(c.parent, c.child); got != c.want {
			t.Errorf("IsAllowedChild(%s, %s) = %v, want %v", c.parent, c.child, got, c.want)
		}
	}
}

func TestKindString(t *testing.T) {
	if got, want := KindFrame.String(), "IAFrame"; got != want {
		t.Errorf("KindFrame.String() = %q, want %q", got, want)
	}
	if got := Kind(255).String(); got != "Kind(255)" {
		t.Errorf("Kind(255).String() = %q, want fallback form", got)
	}
}

func TestAddSubElementRejectsDisallowed(t *testing.T) {
	f := NewFrame(0, SampleRate48kHz, BitDepth24, FrameRate24)
	remap := NewBedRemap(1)
	if err := f.AddSubElement(remap); err == nil {
		t.Fatal("expected error adding BedRemap directly to Frame")
	}
}

func TestAddRemoveSubElementRoundTrip(t *testing.T) {
	f := NewFrame(0, SampleRate48kHz, BitDepth24, FrameRate24)
	bed := NewBedDefinition(42)
	if err := f.AddSubElement(bed); err != nil {
		t.Fatalf("AddSubElement: %v", err)
	}
	if !f.IsSubElement(bed) {
		t.Fatal("bed not reported as sub-element after Add")
	}
	if got := f.Beds(); len(got) != 1 || got[0] != bed {
		t.Fatalf("Beds() = %v, want [bed]", got)
	}
	if !f.RemoveSubElement(bed) {
		t.Fatal("RemoveSubElement returned false for present element")
	}
	if f.IsSubElement(bed) {
		t.Fatal("bed still reported as sub-element after Remove")
	}
	if f.RemoveSubElement(bed) {
		t.Fatal("RemoveSubElement returned true for absent element")
	}
}

func TestClearSubElements(t *testing.T) {
	f := NewFrame(0, SampleRate48kHz, BitDepth24, FrameRate24)
	_ = f.AddSubElement(NewBedDefinition(1))
	_ = f.AddSubElement(NewObjectDefinition(2))
	f.ClearSubElements()
	if len(f.SubElements()) != 0 {
		t.Fatalf("SubElements() after Clear = %v, want empty", f.SubElements())
	}
}

func TestIncludeInPackingDefaultsTrue(t *testing.T) {
	bed := NewBedDefinition(1)
	if !bed.IncludeInPacking() {
		t.Fatal("IncludeInPacking() = false by default, want true")
	}
	bed.SetIncludeInPacking(false)
	if bed.IncludeInPacking() {
		t.Fatal("IncludeInPacking() = true after SetIncludeInPacking(false)")
	}
}
