/*
NAME
  element.go

DESCRIPTION
  element.go defines the Element interface shared by every node in the
  parsed tree and the generic sub-element list operations spec.md §4.D
  requires (get/set/add/remove/clear/is-member), plus the allowed
  parent-child table enforced by AddSubElement.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package model

import "fmt"

// Kind identifies the concrete type of an Element without a type switch,
// and doubles as the synthetic ID used on issues for elements that have no
// MetaID/AudioDataID of their own (AuthoringToolInfo, UserData, Frame,
// ObjectZoneDefinition19).
type Kind uint8

const (
	KindFrame Kind = iota
	KindBedDefinition
	KindBedRemap
	KindObjectDefinition
	KindObjectZoneDefinition19
	KindAudioDataDLC
	KindAudioDataPCM
	KindAuthoringToolInfo
	KindUserData
)

// String names a Kind the way issues and logs refer to it.
func (k Kind) String() string {
	switch k {
	case KindFrame:
		return "IAFrame"
	case KindBedDefinition:
		return "BedDefinition"
	case KindBedRemap:
		return "BedRemap"
	case KindObjectDefinition:
		return "ObjectDefinition"
	case KindObjectZoneDefinition19:
		return "ObjectZoneDefinition19"
	case KindAudioDataDLC:
		return "AudioDataDLC"
	case KindAudioDataPCM:
		return "AudioDataPCM"
	case KindAuthoringToolInfo:
		return "AuthoringToolInfo"
	case KindUserData:
		return "UserData"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Element is implemented by every node that can appear in the parsed
// tree. Elements that never carry sub-elements (essence,
// AuthoringToolInfo, UserData) still implement it with empty-list
// semantics, so the element framework (parser) and cross-element
// validator can walk any parent uniformly.
type Element interface {
	// Kind reports which concrete element type this is.
	Kind() Kind

	// SubElements returns the ordered, owned sub-element list. Callers
	// must not mutate the returned slice; use the mutators below.
	SubElements() []Element

	// SetSubElements replaces the sub-element list wholesale. Spec.md
	// §4.D: "previous members not present in the new list are
	// destroyed" - in this by-value tree that simply means they are
	// dropped (no separate destructor to run).
	SetSubElements(list []Element)

	// AddSubElement appends e, returning an error if e's Kind is not
	// allowed as a child of this element's Kind.
	AddSubElement(e Element) error

	// RemoveSubElement detaches e (by identity, see note on IsSubElement)
	// without destroying it, returning true if e was found and removed.
	RemoveSubElement(e Element) bool

	// ClearSubElements detaches every sub-element without destroying any
	// of them.
	ClearSubElements()

	// IsSubElement reports whether e is currently a direct sub-element.
	// Model elements are plain structs, not pointers with stable
	// identity in the source's sense; membership here is therefore
	// compared against each stored element's MetaID/AudioDataID (via
	// Identity), which is unique within one parent's list by
	// construction (I1/I2).
	IsSubElement(e Element) bool

	// IncludeInPacking reports whether the test-only encoder (see
	// SPEC_FULL.md §5) should emit this element. Defaults to true;
	// clearing it removes the element from serialization without
	// removing it from the in-memory tree.
	IncludeInPacking() bool
	SetIncludeInPacking(bool)

	// Identity returns a value that uniquely identifies this element
	// among its siblings of the same Kind, for IsSubElement/Remove
	// comparisons. Bed/Object/Remap use their MetaID; essence elements
	// use their AudioDataID. Kinds with no natural per-instance key
	// (AuthoringToolInfo, UserData, Zone19) always return 0, so a parent
	// with more than one such child cannot distinguish them by identity;
	// RemoveSubElement then removes whichever matching one it meets
	// first.
	Identity() uint32
}

// allowedChildren is the parent(Kind) -> allowed child Kinds table from
// spec.md §4.D.
var allowedChildren = map[Kind]map[Kind]bool{
	KindFrame: {
		KindBedDefinition:     true,
		KindObjectDefinition:  true,
		KindAudioDataDLC:      true,
		KindAudioDataPCM:      true,
		KindAuthoringToolInfo: true,
		KindUserData:          true,
	},
	KindBedDefinition: {
		KindBedDefinition: true,
		KindBedRemap:      true,
	},
	KindObjectDefinition: {
		KindObjectDefinition:       true,
		KindObjectZoneDefinition19: true,
	},
}

// IsAllowedChild reports whether child is a permitted sub-element of
// parent per the fixed table in spec.md §4.D. Kinds with no entry (and
// any Kind as a would-be child of a Kind not in the table) allow nothing.
func IsAllowedChild(parent, child Kind) bool {
	return allowedChildren[parent][child]
}
