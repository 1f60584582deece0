// Copyright 2021 The Goela Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Identify classifies a full 6x6 stiffness matrix by reconstructing each
// class from its independent positions and comparing against the input,
// walking Names3D from most to least symmetric. The first match wins;
// Triclinic always matches a symmetric matrix.
//  Input:
//   C   -- [6][6] stiffness matrix
//   tol -- comparison tolerance; e.g. 1e-6
func Identify(C [][]float64, tol float64) (cname string, err error) {
	return identify(C, tol, Names3D)
}

// Identify2D classifies the {1,2,6} sub-block of a 6x6 matrix against the
// 2D lattice classes
func Identify2D(C [][]float64, tol float64) (cname string, err error) {
	return identify(C, tol, Names2D)
}

func identify(C [][]float64, tol float64, names []string) (cname string, err error) {
	if len(C) != 6 || len(C[0]) != 6 {
		return "", chk.Err("Cij must be 6x6 for identification. %dx%d is invalid", len(C), len(C[0]))
	}
	for _, name := range names {
		cl, _ := Get(name)
		vals := make(map[Pos]float64)
		for _, p := range cl.Indep {
			vals[p] = C[p.I-1][p.J-1]
		}
		R, e := Expand(vals, name)
		if e != nil {
			return "", e
		}
		if matclose(C, R, tol) {
			return name, nil
		}
	}
	return "", chk.Err("cannot classify Cij within tolerance %g", tol)
}

// matclose compares two 6x6 matrices entry-wise
func matclose(A, B [][]float64, tol float64) bool {
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			scale := math.Max(1.0, math.Abs(B[i][j]))
			if math.Abs(A[i][j]-B[i][j]) > tol*scale {
				return false
			}
		}
	}
	return true
}
