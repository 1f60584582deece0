// Copyright 2021 The Goela Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package elast implements the 6x6 Voigt-notation algebra behind the
// elastic property engine: stiffness-compliance inversion, eigenvalues,
// Born stability, fourth-order contractions for directional properties,
// Bond rotations and 2D embeddings.
package elast

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// CondMax is the condition-number threshold beyond which a stiffness
// matrix is reported as numerically singular
var CondMax = 1e12

// SingularMatrixError indicates a non-invertible (or too ill-conditioned)
// stiffness matrix; this signals a physically invalid input
type SingularMatrixError struct {
	Cond float64 // ∞-norm condition estimate; 0 when factorisation failed outright
}

func (e *SingularMatrixError) Error() string {
	if e.Cond == 0 {
		return "stiffness matrix is singular"
	}
	return io.Sf("stiffness matrix is numerically singular: cond ≈ %g exceeds %g", e.Cond, CondMax)
}

// Invert computes the compliance matrix Sij [1/GPa] from Cij [GPa].
// Inputs beyond CondMax in ∞-norm condition estimate fail with
// SingularMatrixError rather than being silently tolerated.
func Invert(C [][]float64) (S [][]float64, err error) {
	checkdims(C)
	S = la.MatAlloc(6, 6)
	_, e := la.MatInv(S, C, 1e-16)
	if e != nil {
		return nil, &SingularMatrixError{}
	}
	cond := norminf(C) * norminf(S)
	if cond > CondMax {
		return nil, &SingularMatrixError{Cond: cond}
	}
	return
}

// Eigenvalues returns the 6 eigenvalues of the symmetric matrix C in
// ascending order, via Jacobi rotations
func Eigenvalues(C [][]float64) (λ []float64, err error) {
	checkdims(C)
	A := la.MatAlloc(6, 6)
	Q := la.MatAlloc(6, 6)
	la.MatCopy(A, 1, C)
	λ = make([]float64, 6)
	_, err = la.Jacobi(Q, λ, A)
	if err != nil {
		return nil, err
	}
	sort.Float64s(λ)
	return
}

// norminf returns the ∞-norm (largest absolute row sum)
func norminf(A [][]float64) (res float64) {
	for i := 0; i < len(A); i++ {
		sum := 0.0
		for j := 0; j < len(A[i]); j++ {
			sum += math.Abs(A[i][j])
		}
		if sum > res {
			res = sum
		}
	}
	return
}

// checkdims panics on a wrongly shaped matrix; this is a programming
// error, not an input-validation failure
func checkdims(A [][]float64) {
	if len(A) != 6 || len(A[0]) != 6 {
		chk.Panic("matrix must be 6x6. %dx%d is invalid", len(A), len(A[0]))
	}
}
