// Copyright 2021 The Goela Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elast

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// BondMatrix builds the 6x6 stress transformation matrix M corresponding
// to the 3x3 rotation R, such that σ' = M σ in Voigt notation
func BondMatrix(R [][]float64) (M [][]float64) {
	if len(R) != 3 || len(R[0]) != 3 {
		chk.Panic("rotation matrix must be 3x3. %dx%d is invalid", len(R), len(R[0]))
	}

	M = la.MatAlloc(6, 6)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			M[i][j] = R[i][j] * R[i][j]
		}
	}

	M[0][3] = 2 * R[0][1] * R[0][2]
	M[0][4] = 2 * R[0][0] * R[0][2]
	M[0][5] = 2 * R[0][0] * R[0][1]
	M[1][3] = 2 * R[1][1] * R[1][2]
	M[1][4] = 2 * R[1][0] * R[1][2]
	M[1][5] = 2 * R[1][0] * R[1][1]
	M[2][3] = 2 * R[2][1] * R[2][2]
	M[2][4] = 2 * R[2][0] * R[2][2]
	M[2][5] = 2 * R[2][0] * R[2][1]

	M[3][0] = R[1][0] * R[2][0]
	M[3][1] = R[1][1] * R[2][1]
	M[3][2] = R[1][2] * R[2][2]
	M[3][3] = R[1][1]*R[2][2] + R[1][2]*R[2][1]
	M[3][4] = R[1][0]*R[2][2] + R[1][2]*R[2][0]
	M[3][5] = R[1][0]*R[2][1] + R[1][1]*R[2][0]

	M[4][0] = R[0][0] * R[2][0]
	M[4][1] = R[0][1] * R[2][1]
	M[4][2] = R[0][2] * R[2][2]
	M[4][3] = R[0][1]*R[2][2] + R[0][2]*R[2][1]
	M[4][4] = R[0][0]*R[2][2] + R[0][2]*R[2][0]
	M[4][5] = R[0][0]*R[2][1] + R[0][1]*R[2][0]

	M[5][0] = R[0][0] * R[1][0]
	M[5][1] = R[0][1] * R[1][1]
	M[5][2] = R[0][2] * R[1][2]
	M[5][3] = R[0][1]*R[1][2] + R[0][2]*R[1][1]
	M[5][4] = R[0][0]*R[1][2] + R[0][2]*R[1][0]
	M[5][5] = R[0][0]*R[1][1] + R[0][1]*R[1][0]
	return
}

// Rotate transforms a stiffness matrix into the rotated frame:
//  C' = M C Mᵀ
func Rotate(C [][]float64, R [][]float64) (res [][]float64) {
	checkdims(C)
	M := BondMatrix(R)
	tmp := la.MatAlloc(6, 6)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			for k := 0; k < 6; k++ {
				tmp[i][j] += M[i][k] * C[k][j]
			}
		}
	}
	res = la.MatAlloc(6, 6)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			for k := 0; k < 6; k++ {
				res[i][j] += tmp[i][k] * M[j][k]
			}
		}
	}
	return
}

// RotZ returns the rotation matrix for an angle α about the z-axis
func RotZ(α float64) [][]float64 {
	c, s := math.Cos(α), math.Sin(α)
	return [][]float64{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}
