/*
NAME
  code.go

DESCRIPTION
  code.go enumerates the numeric issue codes the validator reports,
  reusing SMPTE's own numbering scheme for the base rule set (the 10000
  range) and each profile-specific addendum (10100 DbyCinema, 10125
  DbyIMF) so reports stay comparable against other SMPTE-conformant IAB
  validators.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package issue

// Code is a stable, numeric identifier for one kind of validation issue.
type Code int

// Severity reports whether a Code is inherently an error or a warning.
// Code values below 11000 are errors; 11000 and above are warnings.
func (c Code) Severity() Severity {
	if c >= 11000 {
		return Warning
	}
	return Error
}

// Base rule set errors, 10000-10099: apply to every constraint set.
const (
	CodeGeneralError Code = 10000 + iota
	CodeFrameIllegalBitstreamVersion
	CodeFrameUnsupportedSampleRate
	CodeFrameUnsupportedBitDepth
	CodeFrameUnsupportedFrameRate
	CodeFrameMaxRenderedExceeded
	CodeFrameSubElementCountConflict
	CodeFrameBitstreamVersionNotPersistent
	CodeFrameSampleRateNotPersistent
	CodeFrameBitDepthNotPersistent

	CodeFrameFrameRateNotPersistent
	CodeFrameUndefinedElementType
	CodeFrameSizeLimitExceeded
	CodeBedDefinitionDuplicateMetaID
	CodeBedDefinitionMultiActiveSubElements
	CodeBedDefinitionHierarchyLevelExceeded
	CodeBedDefinitionChannelCountConflict
	CodeBedDefinitionDuplicateChannelID
	CodeBedDefinitionUnsupportedGainPrefix
	CodeBedDefinitionUnsupportedDecorPrefix

	CodeBedDefinitionAudioDescriptionTextExceeded
	CodeBedDefinitionSubElementCountConflict
	CodeBedDefinitionInvalidChannelID
	CodeBedDefinitionInvalidUseCase
	CodeBedDefinitionSubElementsNotAllowed
	CodeBedDefinitionCountNotPersistent
	CodeBedDefinitionChannelCountNotPersistent
	CodeBedDefinitionMetaIDNotPersistent
	CodeBedDefinitionChannelIDsNotPersistent
	CodeBedDefinitionConditionalStateNotPersistent

	CodeBedRemapDuplicateMetaID
	CodeBedRemapSourceChannelCountNotEqualToBed
	CodeBedRemapSubblockCountConflict
	CodeBedRemapSourceChannelCountConflict
	CodeBedRemapDestinationChannelCountConflict
	CodeBedRemapInvalidDestChannelID
	CodeBedRemapInvalidUseCase
	CodeBedRemapNotAnAllowedSubElement
	CodeObjectDefinitionDuplicateMetaID
	CodeObjectDefinitionMultiActiveSubElements

	CodeObjectDefinitionHierarchyLevelExceeded
	CodeObjectDefinitionPanSubblockCountConflict
	CodeObjectDefinitionUnsupportedGainPrefix
	CodeObjectDefinitionUnsupportedZoneGainPrefix
	CodeObjectDefinitionUnsupportedSpreadMode
	CodeObjectDefinitionUnsupportedDecorPrefix
	CodeObjectDefinitionAudioDescriptionTextExceeded
	CodeObjectDefinitionSubElementCountConflict
	CodeObjectDefinitionInvalidUseCase
	CodeObjectDefinitionInvalidSubElementType

	CodeObjectDefinitionConditionalStateNotPersistent
	CodeObjectZoneDefinition19SubblockCountConflict
	CodeObjectZoneDefinition19UnsupportedZoneGainPrefix
	CodeAudioDataDLCAudioDataIDZero
	CodeAudioDataDLCDuplicateAudioDataID
	CodeAudioDataDLCUnsupportedSampleRate
	CodeAudioDataDLCSampleRateConflict
	CodeAudioDataDLCNotAnAllowedSubElement
	CodeAudioDataPCMAudioDataIDZero
	CodeAudioDataPCMDuplicateAudioDataID

	CodeAudioDataPCMNotAnAllowedSubElement
	CodeMissingAudioDataEssenceElement
	CodeUserDataNotAnAllowedSubElement
	CodeDLCUsedWithIncompatibleFrameRate
)

// DbyCinema-specific errors, 10100-10124.
const (
	CodeDolCinFrameUnsupportedSampleRate Code = 10100 + iota
	CodeDolCinBedDefinitionSubElementsNotAllowed
	CodeDolCinBedDefinitionInvalidChannelID
	CodeDolCinBedDefinitionInvalidUseCase
	CodeDolCinBedDefinitionMultipleBedsNotAllowed
	CodeDolCinBedDefinitionInvalidGainPrefix
	CodeDolCinBedDefinitionChannelDecorInfoExistNotZero
	CodeDolCinBedDefinitionMaxChannelCountExceeded
	CodeDolCinBedDefinitionCountNotPersistent
	CodeDolCinBedDefinitionMetaIDNotPersistent

	CodeDolCinBedDefinitionChannelListNotPersistent
	CodeDolCinBedRemapUnsupportedGainPrefix
	CodeDolCinBedRemapNotAnAllowedSubElement
	CodeDolCinObjectDefinitionSubElementsNotAllowed
	CodeDolCinObjectDefinitionInvalidUseCase
	CodeDolCinObjectDefinitionInvalidGainPrefix
	CodeDolCinObjectDefinitionInvalidZoneGainPrefix
	CodeDolCinObjectDefinitionInvalidSpreadMode
	CodeDolCinObjectDefinitionInvalidDecorPrefix
	CodeDolCinObjectDefinitionSnapTolExistsNotZero

	CodeDolCinObjectDefinitionMaxObjectCountExceeded
	CodeDolCinObjectDefinitionNonSequentialMetaID
	CodeDolCinObjectZoneDefinition19NotAnAllowedSubElement
	CodeDolCinAuthoringToolInfoNotAnAllowedSubElement
	CodeDolCinObjectDefinitionZoneGainsNotAPreset
)

// DbyIMF-specific errors, 10125-10134: these continue the iota sequence
// directly after the DbyCinema block rather than starting at their own
// hundred-boundary, matching the source numbering.
const (
	CodeDolIMFBedDefinitionInvalidChannelID Code = 10125 + iota
	CodeDolIMFBedDefinitionInvalidGainPrefix
	CodeDolIMFBedDefinitionChannelDecorInfoExistNotZero
	CodeDolIMFObjectDefinitionInvalidGainPrefix
	CodeDolIMFObjectDefinitionInvalidZoneGainPrefix

	CodeDolIMFObjectDefinitionInvalidSpreadMode
	CodeDolIMFObjectDefinitionInvalidDecorPrefix
	CodeDolIMFObjectDefinitionSnapTolExistsNotZero
	CodeDolIMFNotMeetingContinuousAudioSequence
	CodeDolIMFContinuousAudioSequenceNotPersistent
)

// Base rule set warnings, 11000-11029.
const (
	CodeGeneralWarning Code = 11000 + iota
	CodeWarningFrameContainFrame
	CodeWarningFrameContainBedRemap
	CodeWarningFrameContainObjectZoneDefinition19
	CodeWarningFrameContainUndefinedSubElement
	CodeWarningFrameMaxRenderedNotMatchObjectNumbers
	CodeWarningAuthoringToolInfoMultipleElements
	CodeWarningBedDefinitionUndefinedUseCase
	CodeWarningBedDefinitionUndefinedChannelID
	CodeWarningBedDefinitionUndefinedAudioDescription

	CodeWarningBedDefinitionContainUnsupportedSubElement
	CodeWarningBedDefinitionAlwaysActiveSubElement
	CodeWarningBedRemapUndefinedUseCase
	CodeWarningBedRemapUndefinedChannelID
	CodeWarningObjectDefinitionUndefinedUseCase
	CodeWarningObjectDefinitionUndefinedAudioDescription
	CodeWarningObjectDefinitionMultipleZone19SubElements
	CodeWarningObjectDefinitionContainUnsupportedSubElement
	CodeWarningObjectDefinitionAlwaysActiveSubElement
	CodeWarningUnreferencedAudioDataDLCElement

	CodeWarningUnreferencedAudioDataPCMElement
)

// CodeWarningDolIMFObjectDefinitionZoneGainsNotAPreset is DbyIMF's one
// profile-specific warning.
const CodeWarningDolIMFObjectDefinitionZoneGainsNotAPreset Code = 11100
