// Copyright 2021 The Goela Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elast

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// planar maps the 3x3 matrix of a 2D lattice (rows C11,C22,C66) onto the
// {1,2,6} positions of the 6x6 Voigt matrix
var planar = []int{0, 1, 5}

// Embed2D places a 3x3 planar stiffness matrix into a 6x6 matrix at the
// {1,2,6} positions; all other entries are zero
func Embed2D(C3 [][]float64) (C [][]float64) {
	if len(C3) != 3 || len(C3[0]) != 3 {
		chk.Panic("planar matrix must be 3x3. %dx%d is invalid", len(C3), len(C3[0]))
	}
	C = la.MatAlloc(6, 6)
	for i, I := range planar {
		for j, J := range planar {
			C[I][J] = C3[i][j]
		}
	}
	return
}

// Extract2D pulls the {1,2,6} sub-block of a 6x6 matrix into the 3x3
// planar representation
func Extract2D(C [][]float64) (C3 [][]float64) {
	checkdims(C)
	C3 = la.MatAlloc(3, 3)
	for i, I := range planar {
		for j, J := range planar {
			C3[i][j] = C[I][J]
		}
	}
	return
}
