// Copyright 2021 The Goela Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elast

import "github.com/cpmech/gosl/la"

// Im is the Voigt identity vector of the second-order identity tensor
var Im = []float64{1, 1, 1, 0, 0, 0}

// Psd is the symmetric-deviatoric projector in engineering Voigt
// notation: normal block δij - 1/3, shear diagonal 1/2 so that the
// engineering shear stiffness comes out as G
var Psd = [][]float64{
	{2.0 / 3.0, -1.0 / 3.0, -1.0 / 3.0, 0, 0, 0},
	{-1.0 / 3.0, 2.0 / 3.0, -1.0 / 3.0, 0, 0, 0},
	{-1.0 / 3.0, -1.0 / 3.0, 2.0 / 3.0, 0, 0, 0},
	{0, 0, 0, 0.5, 0, 0},
	{0, 0, 0, 0, 0.5, 0},
	{0, 0, 0, 0, 0, 0.5},
}

// IsotropicStiffness builds the stiffness matrix of an isotropic material
// from bulk and shear moduli:
//  C = K I⊗I + 2G Psd
// giving C11 = K + 4G/3, C12 = K - 2G/3 and C44 = G
func IsotropicStiffness(K, G float64) (C [][]float64) {
	C = la.MatAlloc(6, 6)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			C[i][j] = K*Im[i]*Im[j] + 2.0*G*Psd[i][j]
		}
	}
	return
}
