// Copyright 2021 The Goela Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vrh

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/goela/goela/elast"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_vrh01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vrh01. cubic diamond bounds")

	C := [][]float64{
		{1079, 124, 124, 0, 0, 0},
		{124, 1079, 124, 0, 0, 0},
		{124, 124, 1079, 0, 0, 0},
		{0, 0, 0, 578, 0, 0},
		{0, 0, 0, 0, 578, 0},
		{0, 0, 0, 0, 0, 578},
	}
	S, err := elast.Invert(C)
	if err != nil {
		tst.Errorf("Invert failed: %v\n", err)
		return
	}
	r, err := Average(C, S)
	if err != nil {
		tst.Errorf("Average failed: %v\n", err)
		return
	}
	io.Pforan("K: V=%.3f R=%.3f H=%.3f\n", r.KV, r.KR, r.KH)
	io.Pforan("G: V=%.3f R=%.3f H=%.3f\n", r.GV, r.GR, r.GH)

	// cubic bulk modulus is exact: both bounds coincide at (C11+2C12)/3
	K := (1079.0 + 2.0*124.0) / 3.0
	chk.Scalar(tst, "KV", 1e-10, r.KV, K)
	chk.Scalar(tst, "KR", 1e-10, r.KR, K)
	chk.Scalar(tst, "KH", 1e-10, r.KH, K)

	// bounds ordering and exact Hill midpoints
	if !(r.GR <= r.GH && r.GH <= r.GV) {
		tst.Errorf("shear bounds violated: %v %v %v\n", r.GR, r.GH, r.GV)
		return
	}
	chk.Scalar(tst, "GH midpoint", 1e-12, r.GH, (r.GV+r.GR)/2.0)
	chk.Scalar(tst, "KH midpoint", 1e-12, r.KH, (r.KV+r.KR)/2.0)
}

func Test_vrh02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vrh02. orthorhombic end-to-end bounds")

	C := [][]float64{
		{200, 80, 70, 0, 0, 0},
		{80, 210, 75, 0, 0, 0},
		{70, 75, 220, 0, 0, 0},
		{0, 0, 0, 60, 0, 0},
		{0, 0, 0, 0, 65, 0},
		{0, 0, 0, 0, 0, 70},
	}
	S, err := elast.Invert(C)
	if err != nil {
		tst.Errorf("Invert failed: %v\n", err)
		return
	}
	r, err := Average(C, S)
	if err != nil {
		tst.Errorf("Average failed: %v\n", err)
		return
	}
	io.Pforan("K: V=%.4f R=%.4f H=%.4f\n", r.KV, r.KR, r.KH)
	io.Pforan("G: V=%.4f R=%.4f H=%.4f\n", r.GV, r.GR, r.GH)

	// anisotropic input: Hill strictly between the bounds
	if !(r.KR < r.KH && r.KH < r.KV) {
		tst.Errorf("bulk bounds violated: %v %v %v\n", r.KR, r.KH, r.KV)
		return
	}
	if !(r.GR < r.GH && r.GH < r.GV) {
		tst.Errorf("shear bounds violated: %v %v %v\n", r.GR, r.GH, r.GV)
		return
	}

	stab, err := elast.Stability(C)
	if err != nil {
		tst.Errorf("Stability failed: %v\n", err)
		return
	}
	if !stab.Stable {
		tst.Errorf("orthorhombic sample must be stable: λ = %v\n", stab.Eigs)
	}
}

func Test_vrh03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vrh03. isotropic limit and indices")

	// cubic with C44 = (C11-C12)/2 is elastically isotropic
	K, G := 150.0, 80.0
	C := elast.IsotropicStiffness(K, G)
	S, err := elast.Invert(C)
	if err != nil {
		tst.Errorf("Invert failed: %v\n", err)
		return
	}
	r, err := Average(C, S)
	if err != nil {
		tst.Errorf("Average failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "KV=KR", 1e-11, r.KV, r.KR)
	chk.Scalar(tst, "GV=GR", 1e-11, r.GV, r.GR)
	chk.Scalar(tst, "KH", 1e-11, r.KH, K)
	chk.Scalar(tst, "GH", 1e-11, r.GH, G)

	ind, err := Derive(C, r)
	if err != nil {
		tst.Errorf("Derive failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "AU", 1e-10, ind.AU, 0)
	chk.Scalar(tst, "E", 1e-10, ind.E, 9*K*G/(3*K+G))
	chk.Scalar(tst, "nu", 1e-12, ind.Nu, (3*K-2*G)/(6*K+2*G))
	chk.Scalar(tst, "Pugh", 1e-12, ind.Pugh, K/G)
	chk.Scalar(tst, "Cauchy", 1e-12, ind.Cauchy, C[0][1]-C[3][3])
	io.Pforan("H = %.4f\n", ind.Hardness)
}

func Test_vrh04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vrh04. degenerate Reuss denominator")

	C := elast.IsotropicStiffness(150, 80)
	S := [][]float64{
		{0.01, -0.02, -0.02, 0, 0, 0},
		{-0.02, 0.01, -0.02, 0, 0, 0},
		{-0.02, -0.02, 0.01, 0, 0, 0},
		{0, 0, 0, 0.01, 0, 0},
		{0, 0, 0, 0, 0.01, 0},
		{0, 0, 0, 0, 0, 0.01},
	}
	_, err := Average(C, S)
	if err == nil {
		tst.Errorf("degenerate compliance must fail\n")
		return
	}
	if e, ok := err.(*DivisionByZeroError); !ok || e.Which != "Reuss bulk" {
		tst.Errorf("wrong error: %v\n", err)
		return
	}
	io.Pforan("err = %v\n", err)
}

func Test_vrh05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vrh05. invalid moduli are not silently computed")

	C := elast.IsotropicStiffness(150, 80)
	r := &Result{KV: 150, KR: 150, KH: 150, GV: -1, GR: -1, GH: -1}
	_, err := Derive(C, r)
	if _, ok := err.(*InvalidModulusError); !ok {
		tst.Errorf("negative G_H must fail with InvalidModulusError: %v\n", err)
		return
	}
	io.Pforan("err = %v\n", err)
}

func Test_waves01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("waves01. sound velocities and Debye temperature")

	C := [][]float64{
		{1079, 124, 124, 0, 0, 0},
		{124, 1079, 124, 0, 0, 0},
		{124, 124, 1079, 0, 0, 0},
		{0, 0, 0, 578, 0, 0},
		{0, 0, 0, 0, 578, 0},
		{0, 0, 0, 0, 0, 578},
	}
	S, err := elast.Invert(C)
	if err != nil {
		tst.Errorf("Invert failed: %v\n", err)
		return
	}
	r, err := Average(C, S)
	if err != nil {
		tst.Errorf("Average failed: %v\n", err)
		return
	}

	// missing density is an error, not zero
	_, err = WaveVelocities(r, 0)
	if _, ok := err.(*MissingPhysicalInputError); !ok {
		tst.Errorf("missing density must fail: %v\n", err)
		return
	}

	// diamond: ρ = 3515 kg/m³
	w, err := WaveVelocities(r, 3515)
	if err != nil {
		tst.Errorf("WaveVelocities failed: %v\n", err)
		return
	}
	io.Pforan("VL = %.0f VT = %.0f Vm = %.0f m/s\n", w.VL, w.VT, w.Vm)
	if !(w.VT < w.Vm && w.Vm < w.VL) {
		tst.Errorf("velocity ordering violated\n")
		return
	}
	if w.VL < 17000 || w.VL > 19000 {
		tst.Errorf("diamond VL = %v outside expected range\n", w.VL)
		return
	}

	// Debye: 2 atoms per formula unit, V = a³/4 with a = 3.567 Å
	_, err = DebyeTemperature(w.Vm, 0, 1e-29)
	if _, ok := err.(*MissingPhysicalInputError); !ok {
		tst.Errorf("missing atom count must fail: %v\n", err)
		return
	}
	a := 3.567e-10
	Θ, err := DebyeTemperature(w.Vm, 2, a*a*a/4.0)
	if err != nil {
		tst.Errorf("DebyeTemperature failed: %v\n", err)
		return
	}
	io.Pforan("Θ_D = %.0f K\n", Θ)
	if Θ < 2000 || Θ > 2500 {
		tst.Errorf("diamond Θ_D = %v outside expected range\n", Θ)
	}
}
