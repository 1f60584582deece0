// Copyright 2021 The Goela Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vrh

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// physical constants [SI]
const (
	PlanckH    = 6.62607015e-34 // Planck constant [J·s]
	BoltzmannK = 1.380649e-23   // Boltzmann constant [J/K]
	ChenExp    = 0.585          // exponent of the Chen-Niu hardness model
)

// InvalidModulusError indicates a non-physical modulus feeding a ratio or
// fractional-power formula; the quantity is "not computed" rather than
// zero or NaN
type InvalidModulusError struct {
	Which string
	Value float64
}

func (e *InvalidModulusError) Error() string {
	return io.Sf("%s = %g is non-physical for the requested formula", e.Which, e.Value)
}

// MissingPhysicalInputError indicates that density or atomic data needed
// by the wave-velocity/Debye formulas was not supplied
type MissingPhysicalInputError struct {
	Which string
}

func (e *MissingPhysicalInputError) Error() string {
	return io.Sf("physical input %q is required and was not given", e.Which)
}

// Indices holds the scalar material indices derived from the VRH averages
type Indices struct {
	E        float64 // Young's modulus [GPa]
	Nu       float64 // Poisson's ratio
	AU       float64 // universal anisotropy index
	Cauchy   float64 // Cauchy pressure C12-C44 [GPa]
	Pugh     float64 // Pugh's ratio K/G
	Hardness float64 // Chen-Niu Vickers hardness [GPa]
}

// Derive computes the scalar indices from the stiffness matrix and the
// VRH averages. A non-physical modulus fails with InvalidModulusError;
// nothing is silently clamped.
func Derive(C [][]float64, r *Result) (ind *Indices, err error) {
	if r.KH <= 0 {
		return nil, &InvalidModulusError{"K_H", r.KH}
	}
	if r.GH <= 0 {
		return nil, &InvalidModulusError{"G_H", r.GH}
	}
	if r.KR <= 0 || r.GR <= 0 {
		return nil, &InvalidModulusError{"Reuss modulus", math.Min(r.KR, r.GR)}
	}

	ind = new(Indices)
	ind.E = 9.0 * r.KH * r.GH / (3.0*r.KH + r.GH)
	ind.Nu = (3.0*r.KH - 2.0*r.GH) / (6.0*r.KH + 2.0*r.GH)
	ind.AU = 5.0*r.GV/r.GR + r.KV/r.KR - 6.0
	ind.Cauchy = C[0][1] - C[3][3]
	ind.Pugh = r.KH / r.GH

	// Chen's model: H = 2 (k²G)^0.585 - 3 with k = G/K
	k := r.GH / r.KH
	arg := k * k * r.GH
	if arg <= 0 {
		return nil, &InvalidModulusError{"k²G", arg}
	}
	ind.Hardness = 2.0*math.Pow(arg, ChenExp) - 3.0
	return
}

// Waves holds polycrystalline sound velocities [m/s]
type Waves struct {
	VL float64 // longitudinal
	VT float64 // transverse
	Vm float64 // mean
}

// WaveVelocities computes the longitudinal, transverse and mean sound
// velocities from the Hill moduli and the mass density ρ [kg/m³].
// Missing density fails with MissingPhysicalInputError: the velocities
// are undefined, not zero.
func WaveVelocities(r *Result, ρ float64) (w *Waves, err error) {
	if ρ <= 0 {
		return nil, &MissingPhysicalInputError{"density"}
	}
	if r.KH <= 0 || r.GH <= 0 {
		return nil, &InvalidModulusError{"Hill modulus", math.Min(r.KH, r.GH)}
	}

	K := r.KH * 1e9 // GPa => Pa
	G := r.GH * 1e9

	w = new(Waves)
	w.VL = math.Sqrt((K + 4.0*G/3.0) / ρ)
	w.VT = math.Sqrt(G / ρ)
	w.Vm = math.Pow((2.0/math.Pow(w.VT, 3)+1.0/math.Pow(w.VL, 3))/3.0, -1.0/3.0)
	return
}

// DebyeTemperature computes Θ_D [K] from the mean sound velocity
// vm [m/s], the number of atoms per formula unit and the formula-unit
// volume vol [m³]:
//  Θ_D = (h/kB) · (3n / 4πV)^(1/3) · vm
func DebyeTemperature(vm float64, natoms float64, vol float64) (Θ float64, err error) {
	if natoms <= 0 {
		return 0, &MissingPhysicalInputError{"atoms per formula unit"}
	}
	if vol <= 0 {
		return 0, &MissingPhysicalInputError{"formula-unit volume"}
	}
	if vm <= 0 {
		return 0, &InvalidModulusError{"mean velocity", vm}
	}
	Θ = PlanckH / BoltzmannK * math.Pow(3.0*natoms/(4.0*math.Pi*vol), 1.0/3.0) * vm
	return
}
