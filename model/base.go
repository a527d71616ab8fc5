/*
NAME
  base.go

DESCRIPTION
  base.go provides the Kind, Identity, packing flag and sub-element list
  bookkeeping shared by every element kind, so each concrete element type
  only has to pass its Kind and identity to newBase.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package model

// base is embedded by every Element kind and implements the whole Element
// interface for it, including Kind() and Identity() from the values given
// to newBase.
type base struct {
	kind     Kind
	sub      []Element
	included bool
	identity uint32
}

func newBase(k Kind, identity uint32) base {
	return base{kind: k, included: true, identity: identity}
}

func (b *base) Kind() Kind { return b.kind }

func (b *base) SubElements() []Element {
	out := make([]Element, len(b.sub))
	copy(out, b.sub)
	return out
}

func (b *base) SetSubElements(list []Element) {
	b.sub = append([]Element(nil), list...)
}

func (b *base) AddSubElement(e Element) error {
	if !IsAllowedChild(b.kind, e.Kind()) {
		return &NotAllowedSubElementError{Parent: b.kind, Child: e.Kind()}
	}
	b.sub = append(b.sub, e)
	return nil
}

func (b *base) RemoveSubElement(e Element) bool {
	for i, s := range b.sub {
		if s.Kind() == e.Kind() && s.Identity() == e.Identity() {
			b.sub = append(b.sub[:i], b.sub[i+1:]...)
			return true
		}
	}
	return false
}

func (b *base) ClearSubElements() {
	b.sub = nil
}

func (b *base) IsSubElement(e Element) bool {
	for _, s := range b.sub {
		if s.Kind() == e.Kind() && s.Identity() == e.Identity() {
			return true
		}
	}
	return false
}

func (b *base) IncludeInPacking() bool     { return b.included }
func (b *base) SetIncludeInPacking(v bool) { b.included = v }
func (b *base) Identity() uint32           { return b.identity }

// NotAllowedSubElementError reports an attempt to add a child Kind that
// the parent Kind does not permit (spec.md §4.D).
type NotAllowedSubElementError struct {
	Parent, Child Kind
}

func (e *NotAllowedSubElementError) Error() string {
	return e.Child.String() + " is not an allowed sub-element of " + e.Parent.String()
}
