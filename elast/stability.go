// Copyright 2021 The Goela Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elast

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/la"
)

// StabTol is the relative tolerance on eigenvalues for the Born criteria:
// an eigenvalue above -StabTol*max|λ| still counts as positive, so that
// an exactly degenerate matrix is not misclassified by round-off
var StabTol = 1e-6

// StabilityResult holds the Born-criteria classification and the
// eigenvalues that produced it, for diagnostic display
type StabilityResult struct {
	Stable bool
	Eigs   []float64 // ascending; 3 entries for a 2D material, 6 otherwise
	Failed []int     // indices into Eigs of non-positive eigenvalues
	TwoD   bool      // input was a 2D material embedded in the 6x6 matrix
}

// Stability classifies a stiffness matrix as mechanically stable or
// unstable according to the Born criteria: all eigenvalues positive.
// A 6x6 input whose {3,4,5} diagonal block vanishes is a 2D material
// embedding and is classified on its {1,2,6} sub-block.
func Stability(C [][]float64) (res *StabilityResult, err error) {
	checkdims(C)

	res = new(StabilityResult)
	A := C
	if planarblock(C) {
		res.TwoD = true
		A = Extract2D(C)
	}

	n := len(A)
	B := la.MatAlloc(n, n)
	Q := la.MatAlloc(n, n)
	la.MatCopy(B, 1, A)
	λ := make([]float64, n)
	_, err = la.Jacobi(Q, λ, B)
	if err != nil {
		return nil, err
	}
	sort.Float64s(λ)

	λmax := 0.0
	for _, v := range λ {
		if math.Abs(v) > λmax {
			λmax = math.Abs(v)
		}
	}
	res.Eigs = λ
	res.Stable = true
	for i, v := range λ {
		if v <= -StabTol*λmax || λmax == 0 {
			res.Stable = false
			res.Failed = append(res.Failed, i)
		}
	}
	return
}

// planarblock tells whether the {3,4,5} diagonal block vanishes,
// indicating a 2D material stored in a 6x6 matrix
func planarblock(C [][]float64) bool {
	for i := 2; i < 5; i++ {
		for j := 2; j < 5; j++ {
			if C[i][j] != 0 {
				return false
			}
		}
	}
	return true
}
