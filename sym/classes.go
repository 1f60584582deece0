// Copyright 2021 The Goela Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sym encodes crystal-symmetry constraints on elastic stiffness
// matrices: which Voigt positions are independent for each lattice class,
// how the dependent positions follow from them, and how a partially
// specified Cij expands into the full symmetric 6x6 matrix.
package sym

import "github.com/cpmech/gosl/chk"

// Pos is a Voigt position within the upper triangle of Cij (1-based, I ≤ J)
type Pos struct {
	I, J int
}

// P returns a normalised position with I ≤ J
func P(i, j int) Pos {
	if i < 1 || i > 6 || j < 1 || j > 6 {
		chk.Panic("Voigt indices must be within [1,6]. (%d,%d) is invalid", i, j)
	}
	if i > j {
		i, j = j, i
	}
	return Pos{i, j}
}

// kinds of dependent-constant expressions
const (
	DepEqual    = iota // C[at] = C[src]
	DepNegate          // C[at] = -C[src]
	DepHalfDiff        // C[at] = (C11 - C12) / 2
	DepIsoC12          // C[at] = C11 - 2*C44
)

// Dep expresses one dependent constant in terms of already-known ones.
// Deps are evaluated in table order, so a Dep may reference a position
// computed by an earlier entry of the same table.
type Dep struct {
	At   Pos // dependent position
	Kind int // DepEqual, DepNegate, DepHalfDiff or DepIsoC12
	Src  Pos // source position for DepEqual and DepNegate
}

// Class holds the constraint family of one crystal system
type Class struct {
	Name  string // e.g. "Cubic"
	TwoD  bool   // 2D lattice embedded in rows/cols {1,2,6}
	Indep []Pos  // independent positions; must be given on input
	Deps  []Dep  // dependent positions; everything else is zero
}

// class names
const (
	Triclinic    = "Triclinic"
	Monoclinic1  = "Monoclinic_1" // unique z-axis
	Monoclinic2  = "Monoclinic_2" // unique x-axis
	Orthorhombic = "Orthorhombic"
	Tetragonal1  = "Tetragonal_1"
	Tetragonal2  = "Tetragonal_2"
	Trigonal1    = "Trigonal_1"
	Trigonal2    = "Trigonal_2"
	Hexagonal    = "Hexagonal"
	Cubic        = "Cubic"
	Isotropic    = "Isotropic"
	Hexagonal2D  = "Hexagonal2D"
	Square2D     = "Square2D"
	Rectangular2D = "Rectangular2D"
	Oblique2D    = "Oblique2D"
)

// classes maps name to constraint family. The tables are data, not code:
// adding a class means adding an entry here only.
var classes = map[string]*Class{

	Cubic: {
		Name:  Cubic,
		Indep: []Pos{{1, 1}, {1, 2}, {4, 4}},
		Deps: []Dep{
			{At: Pos{2, 2}, Kind: DepEqual, Src: Pos{1, 1}},
			{At: Pos{3, 3}, Kind: DepEqual, Src: Pos{1, 1}},
			{At: Pos{1, 3}, Kind: DepEqual, Src: Pos{1, 2}},
			{At: Pos{2, 3}, Kind: DepEqual, Src: Pos{1, 2}},
			{At: Pos{5, 5}, Kind: DepEqual, Src: Pos{4, 4}},
			{At: Pos{6, 6}, Kind: DepEqual, Src: Pos{4, 4}},
		},
	},

	// Isotropic is a constrained cubic family: two independent constants
	// only, with C12 following from C11 and C44
	Isotropic: {
		Name:  Isotropic,
		Indep: []Pos{{1, 1}, {4, 4}},
		Deps: []Dep{
			{At: Pos{1, 2}, Kind: DepIsoC12},
			{At: Pos{2, 2}, Kind: DepEqual, Src: Pos{1, 1}},
			{At: Pos{3, 3}, Kind: DepEqual, Src: Pos{1, 1}},
			{At: Pos{1, 3}, Kind: DepEqual, Src: Pos{1, 2}},
			{At: Pos{2, 3}, Kind: DepEqual, Src: Pos{1, 2}},
			{At: Pos{5, 5}, Kind: DepEqual, Src: Pos{4, 4}},
			{At: Pos{6, 6}, Kind: DepEqual, Src: Pos{4, 4}},
		},
	},

	Hexagonal: {
		Name:  Hexagonal,
		Indep: []Pos{{1, 1}, {1, 2}, {1, 3}, {3, 3}, {4, 4}},
		Deps: []Dep{
			{At: Pos{2, 2}, Kind: DepEqual, Src: Pos{1, 1}},
			{At: Pos{2, 3}, Kind: DepEqual, Src: Pos{1, 3}},
			{At: Pos{5, 5}, Kind: DepEqual, Src: Pos{4, 4}},
			{At: Pos{6, 6}, Kind: DepHalfDiff},
		},
	},

	Tetragonal1: {
		Name:  Tetragonal1,
		Indep: []Pos{{1, 1}, {1, 2}, {1, 3}, {3, 3}, {4, 4}, {6, 6}},
		Deps: []Dep{
			{At: Pos{2, 2}, Kind: DepEqual, Src: Pos{1, 1}},
			{At: Pos{2, 3}, Kind: DepEqual, Src: Pos{1, 3}},
			{At: Pos{5, 5}, Kind: DepEqual, Src: Pos{4, 4}},
		},
	},

	Tetragonal2: {
		Name:  Tetragonal2,
		Indep: []Pos{{1, 1}, {1, 2}, {1, 3}, {1, 6}, {3, 3}, {4, 4}, {6, 6}},
		Deps: []Dep{
			{At: Pos{2, 2}, Kind: DepEqual, Src: Pos{1, 1}},
			{At: Pos{2, 3}, Kind: DepEqual, Src: Pos{1, 3}},
			{At: Pos{5, 5}, Kind: DepEqual, Src: Pos{4, 4}},
			{At: Pos{2, 6}, Kind: DepNegate, Src: Pos{1, 6}},
		},
	},

	Trigonal1: {
		Name:  Trigonal1,
		Indep: []Pos{{1, 1}, {1, 2}, {1, 3}, {1, 4}, {3, 3}, {4, 4}},
		Deps: []Dep{
			{At: Pos{2, 2}, Kind: DepEqual, Src: Pos{1, 1}},
			{At: Pos{2, 3}, Kind: DepEqual, Src: Pos{1, 3}},
			{At: Pos{5, 5}, Kind: DepEqual, Src: Pos{4, 4}},
			{At: Pos{2, 4}, Kind: DepNegate, Src: Pos{1, 4}},
			{At: Pos{5, 6}, Kind: DepEqual, Src: Pos{1, 4}},
			{At: Pos{6, 6}, Kind: DepHalfDiff},
		},
	},

	Trigonal2: {
		Name:  Trigonal2,
		Indep: []Pos{{1, 1}, {1, 2}, {1, 3}, {1, 4}, {1, 5}, {3, 3}, {4, 4}},
		Deps: []Dep{
			{At: Pos{2, 2}, Kind: DepEqual, Src: Pos{1, 1}},
			{At: Pos{2, 3}, Kind: DepEqual, Src: Pos{1, 3}},
			{At: Pos{5, 5}, Kind: DepEqual, Src: Pos{4, 4}},
			{At: Pos{2, 4}, Kind: DepNegate, Src: Pos{1, 4}},
			{At: Pos{5, 6}, Kind: DepEqual, Src: Pos{1, 4}},
			{At: Pos{2, 5}, Kind: DepNegate, Src: Pos{1, 5}},
			{At: Pos{4, 6}, Kind: DepNegate, Src: Pos{1, 5}},
			{At: Pos{6, 6}, Kind: DepHalfDiff},
		},
	},

	Orthorhombic: {
		Name: Orthorhombic,
		Indep: []Pos{{1, 1}, {1, 2}, {1, 3}, {2, 2}, {2, 3}, {3, 3},
			{4, 4}, {5, 5}, {6, 6}},
	},

	Monoclinic1: {
		Name: Monoclinic1,
		Indep: []Pos{{1, 1}, {1, 2}, {1, 3}, {1, 6}, {2, 2}, {2, 3}, {2, 6},
			{3, 3}, {3, 6}, {4, 4}, {4, 5}, {5, 5}, {6, 6}},
	},

	Monoclinic2: {
		Name: Monoclinic2,
		Indep: []Pos{{1, 1}, {1, 2}, {1, 3}, {1, 4}, {2, 2}, {2, 3}, {2, 4},
			{3, 3}, {3, 4}, {4, 4}, {5, 5}, {5, 6}, {6, 6}},
	},

	Triclinic: {
		Name: Triclinic,
		Indep: []Pos{{1, 1}, {1, 2}, {1, 3}, {1, 4}, {1, 5}, {1, 6},
			{2, 2}, {2, 3}, {2, 4}, {2, 5}, {2, 6},
			{3, 3}, {3, 4}, {3, 5}, {3, 6},
			{4, 4}, {4, 5}, {4, 6},
			{5, 5}, {5, 6},
			{6, 6}},
	},

	// 2D lattices live in the {1,2,6} sub-block of the 6x6 matrix

	Hexagonal2D: {
		Name:  Hexagonal2D,
		TwoD:  true,
		Indep: []Pos{{1, 1}, {1, 2}},
		Deps: []Dep{
			{At: Pos{2, 2}, Kind: DepEqual, Src: Pos{1, 1}},
			{At: Pos{6, 6}, Kind: DepHalfDiff},
		},
	},

	Square2D: {
		Name:  Square2D,
		TwoD:  true,
		Indep: []Pos{{1, 1}, {1, 2}, {6, 6}},
		Deps: []Dep{
			{At: Pos{2, 2}, Kind: DepEqual, Src: Pos{1, 1}},
		},
	},

	Rectangular2D: {
		Name:  Rectangular2D,
		TwoD:  true,
		Indep: []Pos{{1, 1}, {1, 2}, {2, 2}, {6, 6}},
	},

	Oblique2D: {
		Name:  Oblique2D,
		TwoD:  true,
		Indep: []Pos{{1, 1}, {1, 2}, {1, 6}, {2, 2}, {2, 6}, {6, 6}},
	},
}

// Names3D lists the 3D classes from most to least symmetric. The order
// matters for Identify: the first reconstruction that matches wins.
var Names3D = []string{
	Isotropic, Cubic, Hexagonal, Tetragonal1, Trigonal1,
	Tetragonal2, Trigonal2, Orthorhombic, Monoclinic1, Monoclinic2,
	Triclinic,
}

// Names2D lists the 2D classes from most to least symmetric
var Names2D = []string{Hexagonal2D, Square2D, Rectangular2D, Oblique2D}

// Classes lists all class names, 3D first, each group from most to
// least symmetric
func Classes() []string {
	res := make([]string, 0, len(Names3D)+len(Names2D))
	res = append(res, Names3D...)
	res = append(res, Names2D...)
	return res
}

// Get returns a class by name
func Get(name string) (cl *Class, err error) {
	cl, ok := classes[name]
	if !ok {
		err = chk.Err("crystal class %q is unavailable", name)
	}
	return
}

// EnabledPositions returns a copy of the independent positions of a class;
// input front-ends enable exactly these cells
func (o *Class) EnabledPositions() []Pos {
	res := make([]Pos, len(o.Indep))
	copy(res, o.Indep)
	return res
}

// NumIndep returns the number of independent constants
func (o *Class) NumIndep() int {
	return len(o.Indep)
}
