// Copyright 2021 The Goela Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dirfield

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/goela/goela/elast"
)

// Sphere evaluates a directional property over an n×n (θ,φ) grid,
// θ∈[0,π], φ∈[0,2π]. nchi sets the χ sweep resolution for G and ν
// (≥ DefaultNchi recommended); n ≤ 0 and nchi ≤ 0 select the defaults.
// The output is deterministic for a fixed grid and compliance: grid
// cells are evaluated independently, in a fixed order.
func Sphere(S [][]float64, prop string, n, nchi int) (f *Field, err error) {
	if n <= 0 {
		n = DefaultN
	}
	if nchi <= 0 {
		nchi = DefaultNchi
	}
	if n < 2 {
		chk.Panic("grid resolution must be at least 2. n=%d is invalid", n)
	}

	f = &Field{
		Prop:  prop,
		Theta: anggrid(n, math.Pi),
		Phi:   anggrid(n, 2.0*math.Pi),
		Val:   la.MatAlloc(n, n),
		X:     la.MatAlloc(n, n),
		Y:     la.MatAlloc(n, n),
		Z:     la.MatAlloc(n, n),
	}
	if HasChi(prop) {
		f.Min = la.MatAlloc(n, n)
		f.Max = la.MatAlloc(n, n)
	}

	for i, θ := range f.Theta {

		// at the poles the direction cosines degenerate (l=m=0) and the
		// φ-dependence vanishes: evaluate the single pole sample once and
		// broadcast it across the row
		pole := math.Abs(math.Sin(θ)) < 1e-15

		for j, φ := range f.Phi {
			if pole && j > 0 {
				f.Val[i][j] = f.Val[i][0]
				if f.Min != nil {
					f.Min[i][j] = f.Min[i][0]
					f.Max[i][j] = f.Max[i][0]
				}
			} else {
				l, m, nn := elast.DirCos(θ, φ)
				val, lo, hi, e := evalDir(S, prop, θ, φ, l, m, nn, nchi)
				if e != nil {
					return nil, e
				}
				f.Val[i][j] = val
				if f.Min != nil {
					f.Min[i][j] = lo
					f.Max[i][j] = hi
				}
			}
			l, m, nn := elast.DirCos(θ, φ)
			r := f.Val[i][j]
			f.X[i][j] = r * l
			f.Y[i][j] = r * m
			f.Z[i][j] = r * nn
		}
	}
	return
}

// SliceNormal evaluates a directional property along the in-plane angle
// α∈[0,2π] of the plane with Miller-index normal h
func SliceNormal(S [][]float64, prop string, h []float64, n, nchi int) (s *Slice, err error) {
	if n <= 0 {
		n = DefaultN
	}
	if nchi <= 0 {
		nchi = DefaultNchi
	}

	normal, u, v := PlaneBasis(h)
	s = &Slice{
		Prop:   prop,
		Normal: normal,
		U:      u,
		V:      v,
		Alpha:  anggrid(n, 2.0*math.Pi),
		Val:    make([]float64, n),
	}
	if HasChi(prop) {
		s.Min = make([]float64, n)
		s.Max = make([]float64, n)
	}

	for k, α := range s.Alpha {
		l := math.Cos(α)*u[0] + math.Sin(α)*v[0]
		m := math.Cos(α)*u[1] + math.Sin(α)*v[1]
		nn := math.Cos(α)*u[2] + math.Sin(α)*v[2]
		θ, φ := elast.Angles(l, m, nn)
		val, lo, hi, e := evalDir(S, prop, θ, φ, l, m, nn, nchi)
		if e != nil {
			return nil, e
		}
		s.Val[k] = val
		if s.Min != nil {
			s.Min[k] = lo
			s.Max[k] = hi
		}
	}
	return
}

// principal-plane helpers
func SliceXY(S [][]float64, prop string, n, nchi int) (*Slice, error) {
	return SliceNormal(S, prop, []float64{0, 0, 1}, n, nchi)
}
func SliceXZ(S [][]float64, prop string, n, nchi int) (*Slice, error) {
	return SliceNormal(S, prop, []float64{0, 1, 0}, n, nchi)
}
func SliceYZ(S [][]float64, prop string, n, nchi int) (*Slice, error) {
	return SliceNormal(S, prop, []float64{1, 0, 0}, n, nchi)
}

// evalDir computes one grid sample. For χ-extremised properties it runs
// the dense sweep χ_k = k·π/nchi, k=0..nchi-1 and reports mean, min and
// max; a fixed sweep keeps results deterministic and testable.
func evalDir(S [][]float64, prop string, θ, φ, l, m, n float64, nchi int) (val, lo, hi float64, err error) {

	a := elast.VoigtSq(l, m, n)

	switch prop {

	case PropE:
		d := elast.Contract(S, a, a)
		if d <= 0 {
			return 0, 0, 0, chk.Err("directional Young's modulus is undefined: contraction %g ≤ 0 at θ=%g φ=%g", d, θ, φ)
		}
		val = 1.0 / d
		return

	case PropBeta:
		val = elast.LinearCompressibility(S, a)
		return

	case PropG:
		lo, hi = math.MaxFloat64, -math.MaxFloat64
		sum := 0.0
		dχ := math.Pi / float64(nchi)
		for k := 0; k < nchi; k++ {
			l2, m2, n2 := elast.SecondDir(θ, φ, float64(k)*dχ)
			b := elast.VoigtPair(l, m, n, l2, m2, n2)
			d := elast.Contract(S, b, b)
			if d <= 0 {
				return 0, 0, 0, chk.Err("directional shear modulus is undefined: contraction %g ≤ 0 at θ=%g φ=%g", d, θ, φ)
			}
			g := 1.0 / d
			sum += g
			lo = math.Min(lo, g)
			hi = math.Max(hi, g)
		}
		val = sum / float64(nchi)
		return

	case PropNu:
		den := elast.Contract(S, a, a)
		if den <= 0 {
			return 0, 0, 0, chk.Err("directional Poisson's ratio is undefined: contraction %g ≤ 0 at θ=%g φ=%g", den, θ, φ)
		}
		lo, hi = math.MaxFloat64, -math.MaxFloat64
		sum := 0.0
		dχ := math.Pi / float64(nchi)
		for k := 0; k < nchi; k++ {
			l2, m2, n2 := elast.SecondDir(θ, φ, float64(k)*dχ)
			a2 := elast.VoigtSq(l2, m2, n2)
			ν := -elast.Contract(S, a, a2) / den
			sum += ν
			lo = math.Min(lo, ν)
			hi = math.Max(hi, ν)
		}
		val = sum / float64(nchi)
		return

	case PropHardness:
		// Chen's model on the directional E and χ-mean G
		E, _, _, e := evalDir(S, PropE, θ, φ, l, m, n, nchi)
		if e != nil {
			return 0, 0, 0, e
		}
		G, _, _, e := evalDir(S, PropG, θ, φ, l, m, n, nchi)
		if e != nil {
			return 0, 0, 0, e
		}
		k := G / E
		arg := k * k * G
		if arg <= 0 {
			return 0, 0, 0, chk.Err("directional hardness is undefined: k²G = %g ≤ 0 at θ=%g φ=%g", arg, θ, φ)
		}
		val = 2.0*math.Pow(arg, 0.585) - 3.0
		return
	}

	return 0, 0, 0, chk.Err("property %q is unavailable", prop)
}
