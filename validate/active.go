/*
NAME
  active.go

DESCRIPTION
  active.go provides ActiveUseCase, a read-only query an authoring tool
  can use to resolve which conditional bed/object sub-element would be
  live for a given UseCase, independent of running a validation pass.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package validate

import (
	"github.com/ausocean/iab/constraint"
	"github.com/ausocean/iab/model"
)

// ActiveUseCase reports the UseCase of the conditional child of parent
// that would be active under set, and true - or the zero UseCase and
// false if parent has no conditional child (or is not a BedDefinition or
// ObjectDefinition). When more than one conditional child shares a
// UseCase, the first encountered in sub-element order wins; that
// ambiguity is itself reported separately as
// issue.CodeBedDefinitionMultiActiveSubElements /
// CodeObjectDefinitionMultiActiveSubElements during a full validation
// pass.
func ActiveUseCase(parent model.Element, set constraint.Set) (model.UseCase, bool) {
	p := constraint.For(set)
	switch e := parent.(type) {
	case *model.BedDefinition:
		for _, nb := range e.NestedBeds() {
			if nb.Conditional && p.AllowedBedUseCase(nb.UseCase) {
				return nb.UseCase, true
			}
		}
	case *model.ObjectDefinition:
		for _, no := range e.NestedObjects() {
			if no.Conditional && p.AllowedObjectUseCase(no.UseCase) {
				return no.UseCase, true
			}
		}
	}
	return model.UseCaseNoUseCase, false
}
