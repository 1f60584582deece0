// Copyright 2021 The Goela Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana provides closed-form isotropic elasticity relations and a
// table of reference materials for tests and examples
package ana

import "math"

// Calc_K_from_Enu returns the bulk modulus given Young's modulus and
// Poisson's coefficient
func Calc_K_from_Enu(E, ν float64) float64 {
	return E / (3.0 * (1.0 - 2.0*ν))
}

// Calc_G_from_Enu returns the shear modulus given Young's modulus and
// Poisson's coefficient
func Calc_G_from_Enu(E, ν float64) float64 {
	return E / (2.0 * (1.0 + ν))
}

// Calc_E_from_KG returns Young's modulus given the bulk and shear moduli
func Calc_E_from_KG(K, G float64) float64 {
	return 9.0 * K * G / (3.0*K + G)
}

// Calc_nu_from_KG returns Poisson's coefficient given the bulk and shear
// moduli
func Calc_nu_from_KG(K, G float64) float64 {
	return (3.0*K - 2.0*G) / (6.0*K + 2.0*G)
}

// Calc_l_from_Enu returns Lamé's first parameter λ given Young's modulus
// and Poisson's coefficient
func Calc_l_from_Enu(E, ν float64) float64 {
	return E * ν / ((1.0 + ν) * (1.0 - 2.0*ν))
}

// Calc_K_from_lG returns the bulk modulus given Lamé's λ and the shear
// modulus
func Calc_K_from_lG(l, G float64) float64 {
	return l + 2.0*G/3.0
}

// Calc_M_from_KG returns the P-wave (constrained) modulus given the bulk
// and shear moduli
func Calc_M_from_KG(K, G float64) float64 {
	return K + 4.0*G/3.0
}

// Calc_vp_from_KGrho returns the longitudinal wave speed [m/s] given the
// moduli in Pa and the density in kg/m³
func Calc_vp_from_KGrho(K, G, ρ float64) float64 {
	return math.Sqrt(Calc_M_from_KG(K, G) / ρ)
}

// Calc_vs_from_Grho returns the shear wave speed [m/s] given the shear
// modulus in Pa and the density in kg/m³
func Calc_vs_from_Grho(G, ρ float64) float64 {
	return math.Sqrt(G / ρ)
}
