package constraint

import (
	"testing"

	"github.com/ausocean/iab/model"
)

func TestForEverySet(t *testing.T) {
	for _, s := range All() {
		p := For(s)
		if len(p.SampleRates) == 0 {
			t.Errorf("%s: no sample rates configured", s)
		}
		if len(p.ChannelIDs) == 0 {
			t.Errorf("%s: no channel IDs configured", s)
		}
	}
}

func TestDbyCinemaStricterThanCinemaBase(t *testing.T) {
	base := For(CinemaST2098_2_2018)
	dol := For(DbyCinema)

	if dol.AllowedSampleRate(model.SampleRate96kHz) {
		t.Error("DbyCinema must not allow 96kHz")
	}
	if !base.AllowedSampleRate(model.SampleRate96kHz) {
		t.Error("base Cinema set should allow 96kHz")
	}
	if dol.MaxBedChannelCount != 10 {
		t.Errorf("DbyCinema.MaxBedChannelCount = %d, want 10", dol.MaxBedChannelCount)
	}
	if dol.MaxBedCount != 1 {
		t.Errorf("DbyCinema.MaxBedCount = %d, want 1", dol.MaxBedCount)
	}
	if dol.SubElementsAllowedInBed || dol.SubElementsAllowedInObject {
		t.Error("DbyCinema must forbid nested sub-elements")
	}
	if !dol.ObjectMetaIDsMustBeSequential {
		t.Error("DbyCinema must require sequential object MetaIDs")
	}
	if dol.AuthoringToolInfoAllowed {
		t.Error("DbyCinema must not allow AuthoringToolInfo")
	}
	if dol.AllowsReservedEnum {
		t.Error("DbyCinema must not tolerate reserved enum values")
	}
}

func TestDbyIMFContinuousAudioSequence(t *testing.T) {
	dol := For(DbyIMF)
	if !dol.ContinuousAudioSequenceRequired {
		t.Error("DbyIMF must require the continuous audio sequence rule")
	}
	if !dol.ZoneGainPresetIsWarningOnly {
		t.Error("DbyIMF zone gain preset violation must be a warning, not an error")
	}
	base := For(IMFST2098_2_2019)
	if base.ContinuousAudioSequenceRequired {
		t.Error("base IMF set must not require the continuous audio sequence rule")
	}
}

func TestAllowedHelpersAgreeWithTables(t *testing.T) {
	p := For(CinemaST2098_2_2018)
	if !p.AllowedChannelID(model.ChannelLeft) {
		t.Error("ChannelLeft should be allowed under the base Cinema set")
	}
	if p.AllowedChannelID(model.ChannelID(200)) {
		t.Error("unrecognized ChannelID must not be allowed")
	}
	if !p.AllowedBedUseCase(model.UseCaseCinema) {
		t.Error("UseCaseCinema should be allowed for beds")
	}
	if !p.AllowedFrameRate(model.FrameRate24) {
		t.Error("FrameRate24 should be allowed")
	}
	if !p.AllowedBitDepth(model.BitDepth24) {
		t.Error("BitDepth24 should be allowed")
	}
	if !p.AllowedGainPrefix(model.GainPrefixUnitGain) {
		t.Error("GainPrefixUnitGain should be allowed")
	}
	if !p.AllowedZoneGainPrefix(model.ZoneGainPrefixInStream) {
		t.Error("ZoneGainPrefixInStream should be allowed")
	}
	if !p.AllowedDecorPrefix(model.DecorCoefPrefixInStream) {
		t.Error("DecorCoefPrefixInStream should be allowed")
	}
	if !p.AllowedSpreadMode(model.SpreadModeHighRes) {
		t.Error("SpreadModeHighRes should be allowed")
	}
}
