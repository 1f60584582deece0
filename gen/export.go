// Copyright 2021 The Goela Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import (
	"bytes"
	goio "io"
	"strings"
	"text/template"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// exportData is the template context for the solver writers
type exportData struct {
	Name  string      // material name
	Class string      // crystal class
	C     [][]float64 // stiffness in the target solver's ordering [GPa]
}

// fortranD formats a float as a Fortran double-precision literal
func fortranD(v float64) string {
	return strings.Replace(io.Sf("%.6E", v), "E", "D", 1)
}

var tmplFuncs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
	"fd":  fortranD,
	"sf":  func(v float64) string { return io.Sf("%.6f", v) },
}

var umatTmpl = template.Must(template.New("umat").Funcs(tmplFuncs).Parse(
	`C ======================================================================
C UMAT: linear anisotropic elasticity
C Material: {{.Name}} ({{.Class}})
C Constants in GPa; shear ordering (12,13,23) as required by Abaqus
C ======================================================================
      SUBROUTINE UMAT(STRESS,STATEV,DDSDDE,SSE,SPD,SCD,
     1 RPL,DDSDDT,DRPLDE,DRPLDT,
     2 STRAN,DSTRAN,TIME,DTIME,TEMP,DTEMP,PREDEF,DPRED,CMNAME,
     3 NDI,NSHR,NTENS,NSTATV,PROPS,NPROPS,COORDS,DROT,PNEWDT,
     4 CELENT,DFGRD0,DFGRD1,NOEL,NPT,LAYER,KSPT,KSTEP,KINC)
C
      INCLUDE 'ABA_PARAM.INC'
C
      CHARACTER*80 CMNAME
      DIMENSION STRESS(NTENS),STATEV(NSTATV),
     1 DDSDDE(NTENS,NTENS),DDSDDT(NTENS),DRPLDE(NTENS),
     2 STRAN(NTENS),DSTRAN(NTENS),TIME(2),PREDEF(1),DPRED(1),
     3 PROPS(NPROPS),COORDS(3),DROT(3,3),DFGRD0(3,3),DFGRD1(3,3)
C
{{range $i, $row := .C}}{{range $j, $v := $row}}      DDSDDE({{inc $i}},{{inc $j}}) = {{fd $v}}
{{end}}{{end}}C
      DO K1 = 1, NTENS
        DO K2 = 1, NTENS
          STRESS(K1) = STRESS(K1) + DDSDDE(K1,K2)*DSTRAN(K2)
        END DO
      END DO
C
      RETURN
      END
`))

var comsolTmpl = template.Must(template.New("comsol").Funcs(tmplFuncs).Parse(
	`% COMSOL parameters: anisotropic elasticity matrix D
% Material: {{.Name}} ({{.Class}})
% Voigt ordering (11,22,33,23,13,12); values in GPa
{{range $i, $row := .C}}{{range $j, $v := $row}}{{if le $i $j}}D{{inc $i}}{{inc $j}} {{sf $v}}[GPa] "Elastic constant C{{inc $i}}{{inc $j}}"
{{end}}{{end}}{{end}}`))

// ExportUMAT writes an Abaqus UMAT subroutine with the DDSDDE matrix
// filled from C (given in the internal Voigt ordering)
func ExportUMAT(w goio.Writer, name, class string, C [][]float64) (err error) {
	Ca, err := MapConvention(C, ConvAbaqus)
	if err != nil {
		return
	}
	return umatTmpl.Execute(w, &exportData{Name: name, Class: class, C: Ca})
}

// ExportComsol writes a COMSOL parameters file with the upper triangle of
// the elasticity matrix D (COMSOL uses the internal Voigt ordering)
func ExportComsol(w goio.Writer, name, class string, C [][]float64) (err error) {
	Cc, err := MapConvention(C, ConvComsol)
	if err != nil {
		return
	}
	return comsolTmpl.Execute(w, &exportData{Name: name, Class: class, C: Cc})
}

// SaveUMAT writes the UMAT subroutine to dirout/fname
func SaveUMAT(dirout, fname, name, class string, C [][]float64) (err error) {
	var b bytes.Buffer
	if err = ExportUMAT(&b, name, class, C); err != nil {
		return chk.Err("cannot generate UMAT for %q: %v", name, err)
	}
	io.WriteFileD(dirout, fname, &b)
	return
}

// SaveComsol writes the COMSOL parameters file to dirout/fname
func SaveComsol(dirout, fname, name, class string, C [][]float64) (err error) {
	var b bytes.Buffer
	if err = ExportComsol(&b, name, class, C); err != nil {
		return chk.Err("cannot generate COMSOL parameters for %q: %v", name, err)
	}
	io.WriteFileD(dirout, fname, &b)
	return
}
