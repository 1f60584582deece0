// Copyright 2021 The Goela Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out assembles complete property reports from stiffness data and
// renders them as text tables, figures and terminal previews
package out

import (
	"sort"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/goela/goela/elast"
	"github.com/goela/goela/sym"
	"github.com/goela/goela/vrh"
)

// Report holds everything the analysis chain produces for one material.
// Quantities are computed independently: a failure in one leaves the
// others populated, with the error recorded in Errs under the quantity
// name.
type Report struct {
	Name  string
	Class string
	TwoD  bool

	C, S  [][]float64            // stiffness [GPa] and compliance [1/GPa]
	Stab  *elast.StabilityResult // Born stability verdict
	Avg   *vrh.Result            // 3D VRH bounds
	Avg2D *vrh.Result2D          // planar VRH bounds (2D lattices only)
	Ind   *vrh.Indices           // scalar indices
	Waves *vrh.Waves             // sound velocities (needs density)
	Debye float64                // Debye temperature [K] (needs atomic data)

	Errs map[string]error // quantity name => failure
}

// Run executes the full chain on a stiffness matrix: inversion, Born
// stability, VRH averaging, scalar indices, and, when ρ [kg/m³], natoms
// and cellvol [m³] are given (nonzero), sound velocities and the Debye
// temperature. 2D lattice classes take the planar averaging path.
func Run(name, class string, C [][]float64, ρ, natoms, cellvol float64) (r *Report) {
	r = &Report{Name: name, Class: class, C: C, Errs: make(map[string]error)}
	if cl, err := sym.Get(class); err == nil {
		r.TwoD = cl.TwoD
	}

	// stability is independent of the inversion
	stab, err := elast.Stability(C)
	if err != nil {
		r.Errs["stability"] = err
	} else {
		r.Stab = stab
	}

	// compliance
	S, err := elast.Invert(C)
	if err != nil {
		r.Errs["compliance"] = err
		return
	}
	r.S = S

	// averaging
	if r.TwoD {
		C3 := elast.Extract2D(C)
		S3 := la.MatAlloc(3, 3)
		if _, e := la.MatInv(S3, C3, 1e-16); e != nil {
			r.Errs["vrh"] = e
			return
		}
		avg, e := vrh.Average2D(C3, S3)
		if e != nil {
			r.Errs["vrh"] = e
			return
		}
		r.Avg2D = avg
		return
	}
	avg, err := vrh.Average(C, S)
	if err != nil {
		r.Errs["vrh"] = err
		return
	}
	r.Avg = avg

	// indices
	ind, err := vrh.Derive(C, avg)
	if err != nil {
		r.Errs["indices"] = err
	} else {
		r.Ind = ind
	}

	// physical quantities only when their inputs were given
	if ρ > 0 {
		w, e := vrh.WaveVelocities(avg, ρ)
		if e != nil {
			r.Errs["waves"] = e
		} else {
			r.Waves = w
			if natoms > 0 && cellvol > 0 {
				Θ, e := vrh.DebyeTemperature(w.Vm, natoms, cellvol)
				if e != nil {
					r.Errs["debye"] = e
				} else {
					r.Debye = Θ
				}
			}
		}
	}
	return
}

// FlatMap returns the populated scalar quantities keyed by property name,
// for export collaborators
func (o *Report) FlatMap() map[string]float64 {
	m := make(map[string]float64)
	if o.Avg != nil {
		m["KV"], m["KR"], m["KH"] = o.Avg.KV, o.Avg.KR, o.Avg.KH
		m["GV"], m["GR"], m["GH"] = o.Avg.GV, o.Avg.GR, o.Avg.GH
	}
	if o.Avg2D != nil {
		m["KV"], m["KR"], m["KH"] = o.Avg2D.KV, o.Avg2D.KR, o.Avg2D.KH
		m["GV"], m["GR"], m["GH"] = o.Avg2D.GV, o.Avg2D.GR, o.Avg2D.GH
		m["E"], m["nu"], m["AU"] = o.Avg2D.E, o.Avg2D.Nu, o.Avg2D.AU
	}
	if o.Ind != nil {
		m["E"], m["nu"], m["AU"] = o.Ind.E, o.Ind.Nu, o.Ind.AU
		m["cauchy"], m["pugh"], m["H"] = o.Ind.Cauchy, o.Ind.Pugh, o.Ind.Hardness
	}
	if o.Waves != nil {
		m["VL"], m["VT"], m["Vm"] = o.Waves.VL, o.Waves.VT, o.Waves.Vm
	}
	if o.Debye > 0 {
		m["ThetaD"] = o.Debye
	}
	if o.Stab != nil {
		for i, λ := range o.Stab.Eigs {
			m[io.Sf("lambda%d", i+1)] = λ
		}
	}
	return m
}

// Table returns the report as a formatted text table
func (o *Report) Table() (l string) {
	l = io.Sf("%s (%s)\n", o.Name, o.Class)
	if o.Stab != nil {
		verdict := "stable"
		if !o.Stab.Stable {
			verdict = io.Sf("UNSTABLE (modes %v)", o.Stab.Failed)
		}
		l += io.Sf("  %-14s : %s\n", "Born criterion", verdict)
		l += io.Sf("  %-14s : %v\n", "eigenvalues", o.Stab.Eigs)
	}
	if o.Avg != nil {
		l += io.Sf("  %-14s : %10s %10s %10s\n", "", "Voigt", "Reuss", "Hill")
		l += io.Sf("  %-14s : %10.3f %10.3f %10.3f\n", "K [GPa]", o.Avg.KV, o.Avg.KR, o.Avg.KH)
		l += io.Sf("  %-14s : %10.3f %10.3f %10.3f\n", "G [GPa]", o.Avg.GV, o.Avg.GR, o.Avg.GH)
	}
	if o.Avg2D != nil {
		l += io.Sf("  %-14s : %10s %10s %10s\n", "(planar)", "Voigt", "Reuss", "Hill")
		l += io.Sf("  %-14s : %10.3f %10.3f %10.3f\n", "K", o.Avg2D.KV, o.Avg2D.KR, o.Avg2D.KH)
		l += io.Sf("  %-14s : %10.3f %10.3f %10.3f\n", "G", o.Avg2D.GV, o.Avg2D.GR, o.Avg2D.GH)
		l += io.Sf("  %-14s : %10.3f\n", "E", o.Avg2D.E)
		l += io.Sf("  %-14s : %10.4f\n", "nu", o.Avg2D.Nu)
		l += io.Sf("  %-14s : %10.4f\n", "AU", o.Avg2D.AU)
	}
	if o.Ind != nil {
		l += io.Sf("  %-14s : %10.3f\n", "E [GPa]", o.Ind.E)
		l += io.Sf("  %-14s : %10.4f\n", "nu", o.Ind.Nu)
		l += io.Sf("  %-14s : %10.4f\n", "AU", o.Ind.AU)
		l += io.Sf("  %-14s : %10.3f\n", "Cauchy [GPa]", o.Ind.Cauchy)
		l += io.Sf("  %-14s : %10.4f\n", "Pugh K/G", o.Ind.Pugh)
		l += io.Sf("  %-14s : %10.3f\n", "H [GPa]", o.Ind.Hardness)
	}
	if o.Waves != nil {
		l += io.Sf("  %-14s : %10.1f %10.1f %10.1f\n", "VL VT Vm [m/s]", o.Waves.VL, o.Waves.VT, o.Waves.Vm)
	}
	if o.Debye > 0 {
		l += io.Sf("  %-14s : %10.1f\n", "Debye [K]", o.Debye)
	}
	if len(o.Errs) > 0 {
		keys := make([]string, 0, len(o.Errs))
		for k := range o.Errs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			l += io.Sf("  %-14s : not computed: %v\n", k, o.Errs[k])
		}
	}
	return
}
