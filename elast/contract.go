// Copyright 2021 The Goela Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elast

import "math"

// DirCos returns the direction cosines of the unit vector at spherical
// angles θ (polar, from z) and φ (azimuth, from x)
func DirCos(θ, φ float64) (l, m, n float64) {
	l = math.Sin(θ) * math.Cos(φ)
	m = math.Sin(θ) * math.Sin(φ)
	n = math.Cos(θ)
	return
}

// SecondDir returns the unit vector orthogonal to the (θ,φ) direction,
// rotated by χ about it. χ=0 gives the meridional tangent.
func SecondDir(θ, φ, χ float64) (l, m, n float64) {
	l = math.Cos(χ)*math.Cos(θ)*math.Cos(φ) - math.Sin(χ)*math.Sin(φ)
	m = math.Cos(χ)*math.Cos(θ)*math.Sin(φ) + math.Sin(χ)*math.Cos(φ)
	n = -math.Cos(χ) * math.Sin(θ)
	return
}

// Angles returns the spherical angles of a direction; the inverse of
// DirCos up to normalisation
func Angles(l, m, n float64) (θ, φ float64) {
	r := math.Sqrt(l*l + m*m + n*n)
	if r > 0 {
		n /= r
	}
	θ = math.Acos(math.Max(-1, math.Min(1, n)))
	φ = math.Atan2(m, l)
	return
}

// VoigtSq returns the Voigt vector of the dyad n⊗n:
//  a = (l², m², n², mn, nl, lm)
// Contract(S,a,a) is then Σ S_ijkl nᵢnⱼnₖnₗ = 1/E(n); the engineering
// shear factors of the compliance matrix are absorbed by construction.
func VoigtSq(l, m, n float64) []float64 {
	return []float64{l * l, m * m, n * n, m * n, n * l, l * m}
}

// VoigtPair returns the Voigt vector of the symmetrised dyad n⊗m + m⊗n:
//  b = (2l₁l₂, 2m₁m₂, 2n₁n₂, m₁n₂+n₁m₂, l₁n₂+n₁l₂, l₁m₂+m₁l₂)
// Contract(S,b,b) is then 4 Σ S_ijkl nᵢmⱼnₖmₗ = 1/G(n,m); the factor 4
// of the shear formula is carried here, not in VoigtSq.
func VoigtPair(l1, m1, n1, l2, m2, n2 float64) []float64 {
	return []float64{
		2 * l1 * l2,
		2 * m1 * m2,
		2 * n1 * n2,
		m1*n2 + n1*m2,
		l1*n2 + n1*l2,
		l1*m2 + m1*l2,
	}
}

// Contract computes the quadratic form aᵀ S b over the 6x6 compliance
func Contract(S [][]float64, a, b []float64) (res float64) {
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			res += S[i][j] * a[i] * b[j]
		}
	}
	return
}

// LinearCompressibility computes β(n) = Σ_{i=1..6, j=1..3} S_ij a_i
// for the direction products a = VoigtSq(n); units 1/GPa
func LinearCompressibility(S [][]float64, a []float64) (res float64) {
	for i := 0; i < 6; i++ {
		for j := 0; j < 3; j++ {
			res += S[i][j] * a[i]
		}
	}
	return
}
