package issue

import "testing"

func TestCodeSeverity(t *testing.T) {
	if got := CodeGeneralError.Severity(); got != Error {
		t.Errorf("CodeGeneralError.Severity() = %v, want Error", got)
	}
	if got := CodeGeneralWarning.Severity(); got != Warning {
		t.Errorf("CodeGeneralWarning.Severity() = %v, want Warning", got)
	}
	if got := CodeWarningDolIMFObjectDefinitionZoneGainsNotAPreset.Severity(); got != Warning {
		t.Errorf("DbyIMF warning code Severity() = %v, want Warning", got)
	}
}

func TestCodeNumericValues(t *testing.T) {
	// Spot-check against SMPTE's own numbering so reports stay comparable.
	cases := map[Code]int{
		CodeGeneralError:                      10000,
		CodeDLCUsedWithIncompatibleFrameRate:  10063,
		CodeDolCinFrameUnsupportedSampleRate:  10100,
		CodeDolCinObjectDefinitionZoneGainsNotAPreset: 10124,
		CodeDolIMFBedDefinitionInvalidChannelID: 10125,
		CodeDolIMFContinuousAudioSequenceNotPersistent: 10134,
		CodeGeneralWarning:                    11000,
		CodeWarningUnreferencedAudioDataPCMElement: 11020,
		CodeWarningDolIMFObjectDefinitionZoneGainsNotAPreset: 11100,
	}
	for code, want := range cases {
		if int(code) != want {
			t.Errorf("code = %d, want %d", int(code), want)
		}
	}
}
