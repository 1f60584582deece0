// Copyright 2021 The Goela Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/plt"
	"github.com/goela/goela/dirfield"
)

// PlotSlice draws a plane slice as a closed polar curve: radius is the
// property value at in-plane angle α. χ-extremised properties get the
// min and max envelopes next to the mean.
func PlotSlice(s *dirfield.Slice) {
	x, y := polar(s.Alpha, s.Val)
	plt.Plot(x, y, io.Sf("'b-', label='%s'", s.Prop))
	if s.Min != nil {
		xl, yl := polar(s.Alpha, s.Min)
		xh, yh := polar(s.Alpha, s.Max)
		plt.Plot(xl, yl, "'g--', label='min'")
		plt.Plot(xh, yh, "'r--', label='max'")
	}
	plt.Equal()
	plt.Gll(io.Sf("(%g %g %g) plane", s.Normal[0], s.Normal[1], s.Normal[2]), s.Prop, "")
}

// SaveSliceFig draws a slice and saves the figure to dirout/fname
func SaveSliceFig(dirout, fname string, s *dirfield.Slice) {
	plt.Reset()
	PlotSlice(s)
	plt.SaveD(dirout, fname)
}

// PlotSphereMap draws a filled (φ,θ) contour map of a spherical field
func PlotSphereMap(f *dirfield.Field) {
	n := len(f.Theta)
	X := la.MatAlloc(n, n)
	Y := la.MatAlloc(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			X[i][j] = f.Phi[j]
			Y[i][j] = f.Theta[i]
		}
	}
	plt.Contour(X, Y, f.Val, "cmapidx=4")
	plt.Gll("$\\phi$", "$\\theta$", "")
}

// SaveSphereFig draws a spherical field map and saves the figure to
// dirout/fname
func SaveSphereFig(dirout, fname string, f *dirfield.Field) {
	plt.Reset()
	PlotSphereMap(f)
	plt.SaveD(dirout, fname)
}

func polar(α, v []float64) (x, y []float64) {
	x = make([]float64, len(α))
	y = make([]float64, len(α))
	for k := range α {
		x[k] = v[k] * math.Cos(α[k])
		y[k] = v[k] * math.Sin(α[k])
	}
	return
}
