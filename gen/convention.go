// Copyright 2021 The Goela Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package gen writes finite-element solver input from stiffness matrices:
// Abaqus UMAT subroutines and COMSOL parameter files, with the Voigt
// shear ordering each solver expects
package gen

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Voigt shear-ordering conventions. The internal ordering is
// (11,22,33,23,13,12); Abaqus uses (12,13,23) for the shear block.
const (
	ConvInternal = "internal"
	ConvAbaqus   = "abaqus"
	ConvComsol   = "comsol"
)

// perms maps convention name to the index permutation p such that
// row/col k of the output takes row/col p[k] of the internal matrix
var perms = map[string][]int{
	ConvInternal: {0, 1, 2, 3, 4, 5},
	ConvAbaqus:   {0, 1, 2, 5, 4, 3},
	ConvComsol:   {0, 1, 2, 3, 4, 5},
}

// MapConvention permutes a 6×6 matrix from the internal Voigt ordering
// into the one named by conv
func MapConvention(C [][]float64, conv string) (out [][]float64, err error) {
	p, ok := perms[conv]
	if !ok {
		return nil, chk.Err("Voigt convention %q is unavailable", conv)
	}
	if len(C) != 6 {
		chk.Panic("MapConvention needs a 6×6 matrix. len=%d is invalid", len(C))
	}
	out = la.MatAlloc(6, 6)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			out[i][j] = C[p[i]][p[j]]
		}
	}
	return
}
