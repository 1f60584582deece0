// Copyright 2021 The Goela Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements material databases read from JSON or YAML files
package inp

import (
	"encoding/json"
	goio "io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/goela/goela/sym"
	"gopkg.in/yaml.v3"
)

// Material holds one material record: the lattice class, the independent
// elastic constants and the optional physical data needed by the
// wave-velocity and Debye formulas
type Material struct {
	Name    string   `json:"name" yaml:"name"`       // name of material
	Desc    string   `json:"desc" yaml:"desc"`       // description
	Class   string   `json:"class" yaml:"class"`     // lattice class; e.g. "Cubic"
	Cij     fun.Prms `json:"cij" yaml:"cij"`         // elastic constants [GPa]; names are "C11".."C66"
	Rho     float64  `json:"rho" yaml:"rho"`         // mass density [kg/m³]; 0 => not given
	NAtoms  float64  `json:"natoms" yaml:"natoms"`   // atoms per formula unit; 0 => not given
	CellVol float64  `json:"cellvol" yaml:"cellvol"` // formula-unit volume [m³]; 0 => not given
}

// Constants converts the Cij parameter list into Voigt positions. Names
// must be "Cij" with i,j in [1,6]; duplicates keep the last value.
func (o *Material) Constants() (vals map[sym.Pos]float64, err error) {
	vals = make(map[sym.Pos]float64)
	for _, p := range o.Cij {
		nm := strings.TrimSpace(p.N)
		if len(nm) != 3 || (nm[0] != 'C' && nm[0] != 'c') {
			return nil, chk.Err("material %q: parameter %q is not an elastic constant name (want \"Cij\")", o.Name, p.N)
		}
		i, e1 := strconv.Atoi(nm[1:2])
		j, e2 := strconv.Atoi(nm[2:3])
		if e1 != nil || e2 != nil || i < 1 || i > 6 || j < 1 || j > 6 {
			return nil, chk.Err("material %q: parameter %q has indices outside [1,6]", o.Name, p.N)
		}
		vals[sym.P(i, j)] = p.V
	}
	return
}

// Expand builds the full 6×6 stiffness matrix from the material's class
// and independent constants
func (o *Material) Expand() (C [][]float64, err error) {
	vals, err := o.Constants()
	if err != nil {
		return
	}
	return sym.Expand(vals, o.Class)
}

// GetInfo returns formatted information
func (o *Material) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}

// MatDb holds all materials
type MatDb struct {
	Materials []*Material `json:"materials" yaml:"materials"`
}

// ReadMat reads a materials database from a JSON (.mat, .json) or YAML
// (.yaml, .yml) file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("cannot read materials file %q: %v", fn, err)
	}
	mdb = new(MatDb)
	switch strings.ToLower(filepath.Ext(fn)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, mdb)
	default:
		err = json.Unmarshal(b, mdb)
	}
	if err != nil {
		return nil, chk.Err("cannot unmarshal materials file %q: %v", fn, err)
	}

	// check names and classes
	seen := make(map[string]bool)
	for _, m := range mdb.Materials {
		if m.Name == "" {
			return nil, chk.Err("materials file %q has a record with no name", fn)
		}
		if seen[m.Name] {
			return nil, chk.Err("materials file %q has duplicate material %q", fn, m.Name)
		}
		seen[m.Name] = true
		if _, e := sym.Get(m.Class); e != nil {
			return nil, chk.Err("material %q: %v", m.Name, e)
		}
	}
	return
}

// Get returns a material by name
//  Note: returns nil if not found
func (o *MatDb) Get(name string) *Material {
	for _, m := range o.Materials {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// String prints one material in the database-file format
func (o Material) String() string {
	b, _ := json.MarshalIndent(o, "", "  ")
	return string(b)
}
