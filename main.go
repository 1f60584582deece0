// Copyright 2021 The Goela Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/goela/goela/ana"
	"github.com/goela/goela/dirfield"
	"github.com/goela/goela/elast"
	"github.com/goela/goela/gen"
	"github.com/goela/goela/inp"
	"github.com/goela/goela/out"
	"github.com/goela/goela/sym"
	"github.com/spf13/cobra"
)

var (
	matfile string // materials database path
	dirout  string // output directory
	asJSON  bool
	prop    string
	plane   string
	npts    int
	nchi    int
	format  string
	fname   string
)

// matData returns the stiffness matrix and physical data of a material,
// from the database file if one was given or from the built-in reference
// table otherwise
func matData(name string) (class string, C [][]float64, ρ, natoms, cellvol float64, err error) {
	if matfile != "" {
		mdb, e := inp.ReadMat(".", matfile)
		if e != nil {
			return "", nil, 0, 0, 0, e
		}
		m := mdb.Get(name)
		if m == nil {
			return "", nil, 0, 0, 0, chk.Err("material %q is not in %q", name, matfile)
		}
		C, err = m.Expand()
		return m.Class, C, m.Rho, m.NAtoms, m.CellVol, err
	}
	m := ana.GetRef(name)
	if m == nil {
		return "", nil, 0, 0, 0, chk.Err("material %q is not in the reference table; use --mat to give a database file", name)
	}
	C, err = m.Stiffness()
	return m.Class, C, m.Rho, m.NAtoms, m.CellVol, err
}

func planeNormal() ([]float64, error) {
	switch strings.ToLower(plane) {
	case "xy":
		return []float64{0, 0, 1}, nil
	case "xz":
		return []float64{0, 1, 0}, nil
	case "yz":
		return []float64{1, 0, 0}, nil
	}
	h := io.SplitFloats(strings.NewReplacer(",", " ").Replace(plane))
	if len(h) != 3 {
		return nil, chk.Err("plane %q is invalid: want xy, xz, yz or \"h,k,l\"", plane)
	}
	return h, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	class, C, ρ, natoms, cellvol, err := matData(args[0])
	if err != nil {
		return err
	}
	r := out.Run(args[0], class, C, ρ, natoms, cellvol)
	if asJSON {
		b, err := json.MarshalIndent(r.FlatMap(), "", "  ")
		if err != nil {
			return err
		}
		io.Pf("%s\n", string(b))
		return nil
	}
	io.Pf("%s", r.Table())
	return nil
}

func runField(cmd *cobra.Command, args []string) error {
	_, C, _, _, _, err := matData(args[0])
	if err != nil {
		return err
	}
	S, err := elast.Invert(C)
	if err != nil {
		return err
	}
	h, err := planeNormal()
	if err != nil {
		return err
	}
	s, err := dirfield.SliceNormal(S, prop, h, npts, nchi)
	if err != nil {
		return err
	}
	io.Pf("%s\n", out.AsciiSlice(s, 12))
	if fname != "" {
		out.SaveSliceFig(dirout, fname, s)
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	class, C, _, _, _, err := matData(args[0])
	if err != nil {
		return err
	}
	switch strings.ToLower(format) {
	case "abaqus", "umat":
		if fname == "" {
			fname = args[0] + "_umat.f"
		}
		return gen.SaveUMAT(dirout, fname, args[0], class, C)
	case "comsol":
		if fname == "" {
			fname = args[0] + "_comsol.txt"
		}
		return gen.SaveComsol(dirout, fname, args[0], class, C)
	}
	return chk.Err("format %q is unavailable: want abaqus or comsol", format)
}

func runMats(cmd *cobra.Command, args []string) error {
	if matfile != "" {
		mdb, err := inp.ReadMat(".", matfile)
		if err != nil {
			return err
		}
		for _, m := range mdb.Materials {
			cl, _ := sym.Get(m.Class)
			io.Pf("%-14s %-14s %2d constants  %s\n", m.Name, m.Class, cl.NumIndep(), m.Desc)
		}
		return nil
	}
	for _, m := range ana.RefMaterials {
		cl, _ := sym.Get(m.Class)
		io.Pf("%-14s %-14s %2d constants\n", m.Name, m.Class, cl.NumIndep())
	}
	return nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "goela",
		Short: "anisotropic elastic property engine",
	}
	rootCmd.PersistentFlags().StringVar(&matfile, "mat", "", "materials database file (.mat, .json, .yaml)")
	rootCmd.PersistentFlags().StringVar(&dirout, "dirout", "/tmp/goela", "output directory")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [material]",
		Short: "full property report: stability, VRH bounds, indices",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().BoolVar(&asJSON, "json", false, "print the flat property map as JSON")

	fieldCmd := &cobra.Command{
		Use:   "field [material]",
		Short: "directional property over a crystallographic plane",
		Args:  cobra.ExactArgs(1),
		RunE:  runField,
	}
	fieldCmd.Flags().StringVar(&prop, "prop", dirfield.PropE, "property: E, G, nu, beta or H")
	fieldCmd.Flags().StringVar(&plane, "plane", "xy", "plane: xy, xz, yz or \"h,k,l\"")
	fieldCmd.Flags().IntVar(&npts, "n", 0, "samples along the slice; 0 => default")
	fieldCmd.Flags().IntVar(&nchi, "nchi", 0, "χ sweep samples; 0 => default")
	fieldCmd.Flags().StringVar(&fname, "fig", "", "figure file name; empty => terminal preview only")

	exportCmd := &cobra.Command{
		Use:   "export [material]",
		Short: "write solver input (Abaqus UMAT or COMSOL parameters)",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
	exportCmd.Flags().StringVar(&format, "format", "abaqus", "abaqus or comsol")
	exportCmd.Flags().StringVar(&fname, "file", "", "output file name; empty => derived from material")

	matsCmd := &cobra.Command{
		Use:   "mats",
		Short: "list the materials of the database or reference table",
		RunE:  runMats,
	}

	rootCmd.AddCommand(analyzeCmd, fieldCmd, exportCmd, matsCmd)
	if err := rootCmd.Execute(); err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
}
