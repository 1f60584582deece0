// Copyright 2021 The Goela Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package vrh computes Voigt-Reuss-Hill polycrystalline averages from the
// stiffness and compliance matrices, and the scalar material indices
// derived from them (engineering moduli, anisotropy, hardness, sound
// velocities and Debye temperature).
package vrh

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// DivisionByZeroError indicates a degenerate Reuss denominator, i.e. a
// non-physical compliance matrix
type DivisionByZeroError struct {
	Which string  // "Reuss bulk" or "Reuss shear"
	Denom float64 // offending denominator
}

func (e *DivisionByZeroError) Error() string {
	return io.Sf("%s denominator is non-positive (%g); compliance is non-physical", e.Which, e.Denom)
}

// Result holds the Voigt (upper), Reuss (lower) and Hill (mean) bulk and
// shear moduli [GPa]
type Result struct {
	KV, GV float64 // Voigt bounds
	KR, GR float64 // Reuss bounds
	KH, GH float64 // Hill averages
}

// Average computes the Voigt-Reuss-Hill bulk and shear moduli from the
// stiffness C [GPa] and its compliance S [1/GPa]. The Voigt/Reuss sums
// are the orthotropic-style combinations, valid for any symmetry under
// the accepted VRH approximation. Non-positive Reuss denominators fail
// with DivisionByZeroError.
func Average(C, S [][]float64) (res *Result, err error) {
	if len(C) != 6 || len(S) != 6 {
		chk.Panic("Cij and Sij must be 6x6")
	}

	res = new(Result)
	res.KV = (C[0][0] + C[1][1] + C[2][2] + 2.0*(C[0][1]+C[0][2]+C[1][2])) / 9.0
	res.GV = (C[0][0] + C[1][1] + C[2][2] - (C[0][1] + C[0][2] + C[1][2]) +
		3.0*(C[3][3]+C[4][4]+C[5][5])) / 15.0

	a := S[0][0] + S[1][1] + S[2][2]
	b := S[0][1] + S[0][2] + S[1][2]
	c := S[3][3] + S[4][4] + S[5][5]

	dk := a + 2.0*b
	if dk <= 0 {
		return nil, &DivisionByZeroError{"Reuss bulk", dk}
	}
	res.KR = 1.0 / dk

	dg := 4.0*a - 4.0*b + 3.0*c
	if dg <= 0 {
		return nil, &DivisionByZeroError{"Reuss shear", dg}
	}
	res.GR = 15.0 / dg

	// Hill: unconditional arithmetic mean
	res.KH = (res.KV + res.KR) / 2.0
	res.GH = (res.GV + res.GR) / 2.0
	return
}

// Result2D holds planar VRH bounds for a 2D lattice: layer (area) bulk
// modulus and in-plane shear modulus [GPa·nm-independent units of the
// input]
type Result2D struct {
	KV, GV float64
	KR, GR float64
	KH, GH float64
	E, Nu  float64 // in-plane isotropised Young's modulus and Poisson's ratio
	AU     float64 // 2D anisotropy index KV/KR + GV/GR - 2
}

// Average2D computes planar Voigt-Reuss-Hill bounds from the 3x3 planar
// stiffness C3 (rows C11,C22,C66 block) and its inverse S3
func Average2D(C3, S3 [][]float64) (res *Result2D, err error) {
	if len(C3) != 3 || len(S3) != 3 {
		chk.Panic("planar Cij and Sij must be 3x3")
	}

	res = new(Result2D)
	res.KV = (C3[0][0] + C3[1][1] + 2.0*C3[0][1]) / 4.0
	res.GV = (C3[0][0] + C3[1][1] - 2.0*C3[0][1] + 4.0*C3[2][2]) / 8.0

	dk := S3[0][0] + S3[1][1] + 2.0*S3[0][1]
	if dk <= 0 {
		return nil, &DivisionByZeroError{"Reuss bulk", dk}
	}
	res.KR = 1.0 / dk

	dg := S3[0][0] + S3[1][1] - 2.0*S3[0][1] + S3[2][2]
	if dg <= 0 {
		return nil, &DivisionByZeroError{"Reuss shear", dg}
	}
	res.GR = 2.0 / dg

	res.KH = (res.KV + res.KR) / 2.0
	res.GH = (res.GV + res.GR) / 2.0

	// 2D engineering constants: E = 4KG/(K+G), ν = (K-G)/(K+G)
	res.E = 4.0 * res.KH * res.GH / (res.KH + res.GH)
	res.Nu = (res.KH - res.GH) / (res.KH + res.GH)
	res.AU = res.KV/res.KR + res.GV/res.GR - 2.0
	return
}
