// Copyright 2021 The Goela Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_sym01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sym01. cubic expansion (diamond)")

	C, err := Expand(map[Pos]float64{
		P(1, 1): 1079,
		P(1, 2): 124,
		P(4, 4): 578,
	}, Cubic)
	if err != nil {
		tst.Errorf("Expand failed: %v\n", err)
		return
	}
	chk.Matrix(tst, "C", 1e-17, C, [][]float64{
		{1079, 124, 124, 0, 0, 0},
		{124, 1079, 124, 0, 0, 0},
		{124, 124, 1079, 0, 0, 0},
		{0, 0, 0, 578, 0, 0},
		{0, 0, 0, 0, 578, 0},
		{0, 0, 0, 0, 0, 578},
	})
}

func Test_sym02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sym02. zero/dependency pattern of all classes")

	for _, name := range append(append([]string{}, Names3D...), Names2D...) {

		cl, err := Get(name)
		if err != nil {
			tst.Errorf("%v\n", err)
			return
		}

		// distinct values per independent position
		vals := make(map[Pos]float64)
		for _, p := range cl.Indep {
			vals[p] = float64(100 + 10*p.I + p.J)
		}
		if name == Isotropic {
			vals[P(4, 4)] = 30 // keep C12 = C11 - 2*C44 distinguishable
		}

		C, err := Expand(vals, name)
		if err != nil {
			tst.Errorf("Expand(%s) failed: %v\n", name, err)
			return
		}
		io.Pforan("%-14s ok\n", name)

		// independents round-trip
		for _, p := range cl.Indep {
			chk.Scalar(tst, io.Sf("%s C%d%d", name, p.I, p.J), 1e-17, C[p.I-1][p.J-1], vals[p])
		}

		// dependents match their documented expressions
		for _, d := range cl.Deps {
			var want float64
			switch d.Kind {
			case DepEqual:
				want = C[d.Src.I-1][d.Src.J-1]
			case DepNegate:
				want = -C[d.Src.I-1][d.Src.J-1]
			case DepHalfDiff:
				want = (C[0][0] - C[0][1]) / 2.0
			case DepIsoC12:
				want = C[0][0] - 2.0*C[3][3]
			}
			chk.Scalar(tst, io.Sf("%s dep C%d%d", name, d.At.I, d.At.J), 1e-17, C[d.At.I-1][d.At.J-1], want)
		}

		// forbidden off-pattern entries are exactly zero
		allowed := make(map[Pos]bool)
		for _, p := range cl.Indep {
			allowed[p] = true
		}
		for _, d := range cl.Deps {
			allowed[d.At] = true
		}
		for i := 1; i <= 6; i++ {
			for j := i; j <= 6; j++ {
				if !allowed[P(i, j)] && C[i-1][j-1] != 0 {
					tst.Errorf("%s: C%d%d = %g must be zero\n", name, i, j, C[i-1][j-1])
					return
				}
			}
		}

		// symmetry
		for i := 0; i < 6; i++ {
			for j := i + 1; j < 6; j++ {
				chk.Scalar(tst, io.Sf("%s C%d%d=C%d%d", name, i+1, j+1, j+1, i+1), 1e-17, C[i][j], C[j][i])
			}
		}
	}
}

func Test_sym03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sym03. missing constants and conflicts")

	// missing independent
	_, err := Expand(map[Pos]float64{P(1, 1): 100, P(1, 2): 50}, Cubic)
	if err == nil {
		tst.Errorf("missing C44 must fail\n")
		return
	}
	if e, ok := err.(*MissingConstantError); !ok || e.At != P(4, 4) {
		tst.Errorf("wrong error: %v\n", err)
		return
	}
	io.Pforan("missing : %v\n", err)

	// contradicting dependent value
	_, err = Expand(map[Pos]float64{
		P(1, 1): 100, P(1, 2): 50, P(4, 4): 30,
		P(2, 2): 99, // must equal C11
	}, Cubic)
	if e, ok := err.(*ConflictError); !ok || e.At != P(2, 2) {
		tst.Errorf("wrong error: %v\n", err)
		return
	}
	io.Pforan("conflict: %v\n", err)

	// nonzero entry off the class pattern
	_, err = Expand(map[Pos]float64{
		P(1, 1): 100, P(1, 2): 50, P(4, 4): 30,
		P(1, 5): 1.0,
	}, Cubic)
	if e, ok := err.(*ConflictError); !ok || e.At != P(1, 5) {
		tst.Errorf("wrong error: %v\n", err)
		return
	}

	// consistent dependent value passes
	C, err := Expand(map[Pos]float64{
		P(1, 1): 100, P(1, 2): 50, P(4, 4): 30,
		P(2, 2): 100,
	}, Cubic)
	if err != nil {
		tst.Errorf("consistent dependent must pass: %v\n", err)
		return
	}
	chk.Scalar(tst, "C22", 1e-17, C[1][1], 100)
}

func Test_sym04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sym04. isotropic as constrained cubic")

	C, err := Expand(map[Pos]float64{P(1, 1): 269, P(4, 4): 82}, Isotropic)
	if err != nil {
		tst.Errorf("Expand failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "C12", 1e-17, C[0][1], 269-2*82)
	chk.Scalar(tst, "C13", 1e-17, C[0][2], 269-2*82)
	chk.Scalar(tst, "C66", 1e-17, C[5][5], 82)
}

func Test_sym05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sym05. identification")

	for _, tc := range []struct {
		cname string
		vals  map[Pos]float64
	}{
		{Cubic, map[Pos]float64{P(1, 1): 1079, P(1, 2): 124, P(4, 4): 578}},
		{Isotropic, map[Pos]float64{P(1, 1): 269, P(4, 4): 82}},
		{Hexagonal, map[Pos]float64{P(1, 1): 398, P(1, 2): 140, P(1, 3): 112, P(3, 3): 427, P(4, 4): 105}},
		{Orthorhombic, map[Pos]float64{
			P(1, 1): 200, P(1, 2): 80, P(1, 3): 70, P(2, 2): 210, P(2, 3): 75,
			P(3, 3): 220, P(4, 4): 60, P(5, 5): 65, P(6, 6): 70}},
	} {
		C, err := Expand(tc.vals, tc.cname)
		if err != nil {
			tst.Errorf("Expand(%s) failed: %v\n", tc.cname, err)
			return
		}
		name, err := Identify(C, 1e-8)
		if err != nil {
			tst.Errorf("Identify failed: %v\n", err)
			return
		}
		io.Pforan("%-14s => %s\n", tc.cname, name)
		chk.String(tst, name, tc.cname)
	}

	// 2D
	C, err := Expand(map[Pos]float64{P(1, 1): 350, P(1, 2): 60}, Hexagonal2D)
	if err != nil {
		tst.Errorf("Expand failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "C66 2D", 1e-17, C[5][5], (350.0-60.0)/2.0)
	name, err := Identify2D(C, 1e-8)
	if err != nil {
		tst.Errorf("Identify2D failed: %v\n", err)
		return
	}
	chk.String(tst, name, Hexagonal2D)
}

func Test_sym06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sym06. class listing")

	names := Classes()
	chk.IntAssert(len(names), 15)
	chk.String(tst, names[0], Isotropic)
	for _, name := range names {
		cl, err := Get(name)
		if err != nil {
			tst.Errorf("Get(%s) failed: %v\n", name, err)
			return
		}
		chk.IntAssert(len(cl.EnabledPositions()), cl.NumIndep())
	}
}

func Test_sym07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sym07. first off-pattern conflict wins")

	// several nonzero entries off the cubic pattern: the reported
	// position must always be the smallest one, regardless of map order
	for k := 0; k < 10; k++ {
		_, err := Expand(map[Pos]float64{
			P(1, 1): 100, P(1, 2): 50, P(4, 4): 30,
			P(2, 5): 3.0, P(1, 6): 2.0, P(1, 5): 1.0,
		}, Cubic)
		e, ok := err.(*ConflictError)
		if !ok {
			tst.Errorf("off-pattern entries must fail: %v\n", err)
			return
		}
		if e.At != P(1, 5) {
			tst.Errorf("conflict reported at C%d%d instead of C15\n", e.At.I, e.At.J)
			return
		}
	}
}
