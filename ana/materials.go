// Copyright 2021 The Goela Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "github.com/goela/goela/sym"

// RefMaterial holds literature single-crystal data for one material
type RefMaterial struct {
	Name    string              // name of material
	Class   string              // lattice class
	Cij     map[sym.Pos]float64 // independent constants [GPa]
	Rho     float64             // mass density [kg/m³]
	NAtoms  float64             // atoms per formula unit
	CellVol float64             // formula-unit volume [m³]
}

// Stiffness expands the reference constants into the full 6×6 matrix
func (o *RefMaterial) Stiffness() ([][]float64, error) {
	return sym.Expand(o.Cij, o.Class)
}

// RefMaterials lists the reference table. Constants are room-temperature
// literature values.
var RefMaterials = []*RefMaterial{
	{
		Name:  "diamond",
		Class: sym.Cubic,
		Cij: map[sym.Pos]float64{
			sym.P(1, 1): 1079, sym.P(1, 2): 124, sym.P(4, 4): 578,
		},
		Rho:     3515,
		NAtoms:  2,
		CellVol: 1.13454e-29, // a³/4 with a = 3.567 Å
	},
	{
		Name:  "silicon",
		Class: sym.Cubic,
		Cij: map[sym.Pos]float64{
			sym.P(1, 1): 165.7, sym.P(1, 2): 63.9, sym.P(4, 4): 79.6,
		},
		Rho:     2329,
		NAtoms:  2,
		CellVol: 4.00922e-29, // a³/4 with a = 5.431 Å
	},
	{
		Name:  "aluminum",
		Class: sym.Cubic,
		Cij: map[sym.Pos]float64{
			sym.P(1, 1): 107.3, sym.P(1, 2): 60.9, sym.P(4, 4): 28.3,
		},
		Rho: 2700,
	},
	{
		Name:  "copper",
		Class: sym.Cubic,
		Cij: map[sym.Pos]float64{
			sym.P(1, 1): 168.4, sym.P(1, 2): 121.4, sym.P(4, 4): 75.4,
		},
		Rho: 8960,
	},
	{
		Name:  "mgo",
		Class: sym.Cubic,
		Cij: map[sym.Pos]float64{
			sym.P(1, 1): 297, sym.P(1, 2): 95, sym.P(4, 4): 156,
		},
		Rho: 3580,
	},
	{
		Name:  "zinc",
		Class: sym.Hexagonal,
		Cij: map[sym.Pos]float64{
			sym.P(1, 1): 165, sym.P(1, 2): 31, sym.P(1, 3): 50,
			sym.P(3, 3): 62, sym.P(4, 4): 39.6,
		},
		Rho: 7140,
	},
	{
		Name:  "quartz",
		Class: sym.Trigonal1,
		Cij: map[sym.Pos]float64{
			sym.P(1, 1): 86.8, sym.P(1, 2): 7.0, sym.P(1, 3): 11.9,
			sym.P(1, 4): -18.0, sym.P(3, 3): 105.8, sym.P(4, 4): 58.2,
		},
		Rho: 2650,
	},
	{
		Name:  "rutile",
		Class: sym.Tetragonal1,
		Cij: map[sym.Pos]float64{
			sym.P(1, 1): 268, sym.P(1, 2): 175, sym.P(1, 3): 147,
			sym.P(3, 3): 484, sym.P(4, 4): 124, sym.P(6, 6): 190,
		},
		Rho: 4250,
	},
	{
		Name:  "forsterite",
		Class: sym.Orthorhombic,
		Cij: map[sym.Pos]float64{
			sym.P(1, 1): 328, sym.P(1, 2): 69, sym.P(1, 3): 69,
			sym.P(2, 2): 200, sym.P(2, 3): 73, sym.P(3, 3): 235,
			sym.P(4, 4): 66.7, sym.P(5, 5): 81.3, sym.P(6, 6): 80.9,
		},
		Rho: 3220,
	},
	{
		Name:  "steel",
		Class: sym.Isotropic,
		Cij: map[sym.Pos]float64{
			sym.P(1, 1): 277, sym.P(4, 4): 80,
		},
		Rho: 7850,
	},
}

// GetRef returns a reference material by name
//  Note: returns nil if not found
func GetRef(name string) *RefMaterial {
	for _, m := range RefMaterials {
		if m.Name == name {
			return m
		}
	}
	return nil
}
