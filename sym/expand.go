// Copyright 2021 The Goela Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// ConflictTol is the relative tolerance above which a caller-supplied
// dependent constant is reported as contradicting its computed value
var ConflictTol = 1e-8

// MissingConstantError indicates that an independent constant required by
// the crystal class was not supplied
type MissingConstantError struct {
	Class string
	At    Pos
}

func (e *MissingConstantError) Error() string {
	return io.Sf("class %s requires independent constant C%d%d", e.Class, e.At.I, e.At.J)
}

// ConflictError indicates that a caller-supplied value at a dependent or
// zero position contradicts the value implied by the independent constants.
// The independent constants are trusted; the conflict is surfaced instead
// of silently overwritten.
type ConflictError struct {
	Class string
	At    Pos
	Given float64 // value supplied by the caller
	Want  float64 // value implied by the class constraints
}

func (e *ConflictError) Error() string {
	return io.Sf("class %s: supplied C%d%d=%g contradicts constrained value %g",
		e.Class, e.At.I, e.At.J, e.Given, e.Want)
}

// Expand validates a partially specified Cij and fills the complete
// symmetric 6x6 stiffness matrix according to the class constraints.
//  Input:
//   vals  -- sparse map of position to value [GPa]; positions are
//            normalised upper-triangle entries (use P)
//   cname -- crystal class name; e.g. sym.Cubic
//  Output:
//   C -- [6][6] stiffness matrix with dependents filled, off-table
//        positions zeroed and Cij = Cji enforced
func Expand(vals map[Pos]float64, cname string) (C [][]float64, err error) {

	cl, err := Get(cname)
	if err != nil {
		return
	}

	// independent constants must all be present
	C = la.MatAlloc(6, 6)
	indep := make(map[Pos]bool)
	for _, p := range cl.Indep {
		v, ok := vals[p]
		if !ok {
			return nil, &MissingConstantError{cl.Name, p}
		}
		C[p.I-1][p.J-1] = v
		indep[p] = true
	}

	// dependent constants, in table order so that expressions may read
	// positions computed by earlier entries
	dep := make(map[Pos]bool)
	for _, d := range cl.Deps {
		var v float64
		switch d.Kind {
		case DepEqual:
			v = C[d.Src.I-1][d.Src.J-1]
		case DepNegate:
			v = -C[d.Src.I-1][d.Src.J-1]
		case DepHalfDiff:
			v = (C[0][0] - C[0][1]) / 2.0
		case DepIsoC12:
			v = C[0][0] - 2.0*C[3][3]
		}
		if g, ok := vals[d.At]; ok {
			if conflicting(g, v) {
				return nil, &ConflictError{cl.Name, d.At, g, v}
			}
		}
		C[d.At.I-1][d.At.J-1] = v
		dep[d.At] = true
	}

	// everything off the table is zero by definition of the class; scan
	// in position order so the reported conflict does not depend on map
	// iteration
	rest := make([]Pos, 0, len(vals))
	for p := range vals {
		if indep[p] || dep[p] {
			continue
		}
		rest = append(rest, p)
	}
	sort.Slice(rest, func(a, b int) bool {
		if rest[a].I != rest[b].I {
			return rest[a].I < rest[b].I
		}
		return rest[a].J < rest[b].J
	})
	for _, p := range rest {
		if conflicting(vals[p], 0) {
			return nil, &ConflictError{cl.Name, p, vals[p], 0}
		}
	}

	// symmetrise unconditionally
	for i := 0; i < 6; i++ {
		for j := i + 1; j < 6; j++ {
			C[j][i] = C[i][j]
		}
	}
	return
}

// conflicting tells whether a supplied value g contradicts the constrained
// value w beyond the relative tolerance
func conflicting(g, w float64) bool {
	scale := math.Max(1.0, math.Abs(w))
	return math.Abs(g-w) > ConflictTol*scale
}
