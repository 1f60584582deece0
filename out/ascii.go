// Copyright 2021 The Goela Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/io"
	"github.com/goela/goela/dirfield"
	"github.com/guptarohit/asciigraph"
)

// AsciiSlice renders the mean curve of a plane slice as a terminal graph
// of value versus in-plane angle
func AsciiSlice(s *dirfield.Slice, height int) string {
	if height <= 0 {
		height = 10
	}
	caption := io.Sf("%s over (%g %g %g) plane, α ∈ [0,2π]",
		s.Prop, s.Normal[0], s.Normal[1], s.Normal[2])
	return asciigraph.Plot(s.Val,
		asciigraph.Height(height),
		asciigraph.Caption(caption))
}
