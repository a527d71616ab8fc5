/*
NAME
  set.go

DESCRIPTION
  set.go defines Set, the six constraint profiles and the two dependency
  chains they form, plus the parent-lookup used to roll issue lists and
  results up the hierarchy.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package constraint defines the six conformance profiles a frame may be
// validated against, their dependency hierarchy, and the per-profile
// allowed-value tables the per-element and cross-element validators
// consult.
package constraint

import "fmt"

// Set identifies one of the six constraint profiles.
type Set uint8

const (
	CinemaST2098_2_2018 Set = iota
	CinemaST429_18_2019
	DbyCinema
	IMFST2098_2_2019
	IMFST2067_201_2019
	DbyIMF

	setCount
)

// String names a Set the way issue reports and registry lookups refer to
// it.
func (s Set) String() string {
	switch s {
	case CinemaST2098_2_2018:
		return "Cinema_ST2098_2_2018"
	case CinemaST429_18_2019:
		return "Cinema_ST429_18_2019"
	case DbyCinema:
		return "DbyCinema"
	case IMFST2098_2_2019:
		return "IMF_ST2098_2_2019"
	case IMFST2067_201_2019:
		return "IMF_ST2067_201_2019"
	case DbyIMF:
		return "DbyIMF"
	default:
		return fmt.Sprintf("Set(%d)", uint8(s))
	}
}

// parent maps each dependent Set to the Set directly beneath it in its
// chain. The two base sets (CinemaST2098_2_2018, IMFST2098_2_2019) have no
// parent.
var parent = map[Set]Set{
	CinemaST429_18_2019: CinemaST2098_2_2018,
	DbyCinema:            CinemaST429_18_2019,
	IMFST2067_201_2019:   IMFST2098_2_2019,
	DbyIMF:               IMFST2067_201_2019,
}

// Parent returns the Set this one directly depends on, and true - or the
// zero Set and false if s is a base set.
func Parent(s Set) (Set, bool) {
	p, ok := parent[s]
	return p, ok
}

// Chain returns the dependency chain ending at s, ordered
// [base, ..., s].
func Chain(s Set) []Set {
	var rev []Set
	for cur := s; ; {
		rev = append(rev, cur)
		p, ok := Parent(cur)
		if !ok {
			break
		}
		cur = p
	}
	out := make([]Set, len(rev))
	for i, v := range rev {
		out[len(rev)-1-i] = v
	}
	return out
}

// All returns every recognized Set, in declaration order.
func All() []Set {
	out := make([]Set, 0, setCount)
	for s := Set(0); s < setCount; s++ {
		out = append(out, s)
	}
	return out
}
