// Copyright 2021 The Goela Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dirfield evaluates direction-dependent elastic properties over
// spherical grids and crystallographic plane slices: Young's modulus,
// shear modulus and Poisson's ratio (extremised over the rotation angle
// χ), linear compressibility and directional hardness.
package dirfield

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// property names
const (
	PropE        = "E"    // Young's modulus [GPa]
	PropG        = "G"    // shear modulus [GPa]; χ-extremised
	PropNu       = "nu"   // Poisson's ratio; χ-extremised
	PropBeta     = "beta" // linear compressibility [1/GPa]
	PropHardness = "H"    // Chen hardness from E and mean G [GPa]
)

// defaults
var (
	DefaultN    = 100 // grid resolution
	DefaultNchi = 180 // samples of the inner χ sweep over [0,π)
)

// Field is a property sampled over the (θ,φ) sphere. For χ-extremised
// properties every sample carries the sweep minimum and maximum next to
// the mean; for single-valued properties Min and Max are nil.
type Field struct {
	Prop  string
	Theta []float64   // polar angles, [n] over [0,π]
	Phi   []float64   // azimuthal angles, [n] over [0,2π]
	Val   [][]float64 // [n][n] value (χ-mean for G and ν)
	Min   [][]float64 // [n][n] sweep minimum, or nil
	Max   [][]float64 // [n][n] sweep maximum, or nil
	X     [][]float64 // [n][n] Cartesian surface r·n for 3D rendering
	Y     [][]float64
	Z     [][]float64
}

// Slice is a property sampled along the in-plane angle α of a
// crystallographic plane given by its normal
type Slice struct {
	Prop   string
	Normal []float64 // unit plane normal
	U, V   []float64 // orthonormal in-plane basis; d(α) = cosα·U + sinα·V
	Alpha  []float64 // [n] over [0,2π]
	Val    []float64 // [n]
	Min    []float64 // [n] or nil
	Max    []float64 // [n] or nil
}

// HasChi tells whether a property carries the inner χ sweep
func HasChi(prop string) bool {
	return prop == PropG || prop == PropNu
}

// anggrid returns n angles over [0,hi]
func anggrid(n int, hi float64) []float64 {
	return utl.LinSpace(0, hi, n)
}

// PlaneBasis builds a deterministic orthonormal basis {u,v} of the plane
// with (Miller-index) normal h; the basis depends only on h
func PlaneBasis(h []float64) (normal, u, v []float64) {
	if len(h) != 3 {
		chk.Panic("plane normal must have 3 components")
	}
	no := math.Sqrt(h[0]*h[0] + h[1]*h[1] + h[2]*h[2])
	if no < 1e-14 {
		chk.Panic("plane normal must be nonzero")
	}
	normal = []float64{h[0] / no, h[1] / no, h[2] / no}

	// seed axis: the one least aligned with the normal
	seed := []float64{1, 0, 0}
	ax, am := math.Abs(normal[0]), math.Abs(normal[1])
	if am < ax {
		seed = []float64{0, 1, 0}
		ax = am
	}
	if math.Abs(normal[2]) < ax {
		seed = []float64{0, 0, 1}
	}

	// u = normalised seed × normal; v = normal × u
	u = cross(seed, normal)
	un := math.Sqrt(u[0]*u[0] + u[1]*u[1] + u[2]*u[2])
	u[0], u[1], u[2] = u[0]/un, u[1]/un, u[2]/un
	v = cross(normal, u)
	return
}

func cross(a, b []float64) []float64 {
	return []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}
