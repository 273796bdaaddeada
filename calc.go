/*
 * calc.go, part of qcin.
 *
 *
 * Copyright 2025 Raul Mera <rmera{at}usachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * qcin is developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package qcin

import (
	"fmt"
	"strconv"
	"strings"
)

// CalcType is the kind of calculation requested. The set is closed: an
// engine either maps a CalcType to its run directives or rejects the
// calculation altogether.
type CalcType int

const (
	SP        CalcType = iota // single-point energy
	OPT                       // geometry optimization
	ConstrOPT                 // constrained geometry optimization
	TS                        // transition-state search
	Freq                      // frequency analysis
	NMR                       // nuclear shielding
	OptFreq                   // optimization followed by frequencies
	MEP                       // minimum-energy-path search
)

var calcTypeNames = map[CalcType]string{
	SP:        "sp",
	OPT:       "opt",
	ConstrOPT: "constr_opt",
	TS:        "ts",
	Freq:      "freq",
	NMR:       "nmr",
	OptFreq:   "opt+freq",
	MEP:       "mep",
}

func (t CalcType) String() string {
	if s, ok := calcTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("calctype(%d)", int(t))
}

// The accepted spellings for each calculation type.
var strCalcTypes = map[string]CalcType{
	"sp":                  SP,
	"single-point energy": SP,
	"single-point":        SP,
	"energy":              SP,
	"opt":                 OPT,
	"optimization":        OPT,
	"optimisation":        OPT,
	"constr_opt":          ConstrOPT,
	"constrained optimization": ConstrOPT,
	"constrained optimisation": ConstrOPT,
	"ts":              TS,
	"saddle":          TS,
	"ts optimisation": TS,
	"freq":            Freq,
	"frequencies":     Freq,
	"nmr":             NMR,
	"nmr prediction":  NMR,
	"opt+freq":        OptFreq,
	"optfreq":         OptFreq,
	"opt freq":        OptFreq,
	"mep":             MEP,
	"minimum energy path": MEP,
}

// ParseCalcType converts a string calculation type into a CalcType,
// accepting the different equivalent ways to write it.
func ParseCalcType(s string) (CalcType, error) {
	if t, ok := strCalcTypes[strings.ToLower(strings.TrimSpace(s))]; ok {
		return t, nil
	}
	return 0, fmt.Errorf("%w: unknown calculation type '%s'", ErrInvalidParameter, s)
}

// Levels of theory, as given in requests. Engines may rename these
// internally (e.g. NWChem calls its mean-field block "scf" and any
// coupled-cluster block "ccsd") but such copies are local to a generation
// run, never written back to the request.
const (
	HF  = "hf"
	DFT = "dft"
	MP2 = "mp2"
	CC  = "cc"
)

// Parameters holds the engine-independent description of the model
// chemistry. All fields are plain values set by the caller; generators
// only read them.
type Parameters struct {
	Method      string
	TheoryLevel string
	BasisSet    string
	// CustomBasisSets maps element symbols to basis-set database keywords
	// that override BasisSet for those elements only.
	CustomBasisSets map[string]string
	Solvent         string
	SolvationModel  string
	// SolvationRadii names a radii policy. Engines that only ship their
	// default radii reject anything but "" or "default".
	SolvationRadii string
	// CustomSolvationRadii is a raw "element=radius;..." list.
	CustomSolvationRadii string
	// Specifications is the free-form per-block specification string,
	// "block1(arg1);block2(arg2);bareword;...".
	Specifications string
	D3             bool //Grimme D3 dispersion correction
	D3BJ           bool //D3 with Becke-Johnson damping
}

// A Calculation is one fully-populated request for input generation.
// It is immutable during generation: a generator that needs to rename or
// reformat a field works on its own copy.
type Calculation struct {
	Type         CalcType
	Name         string
	Header       string
	Charge       int
	Multiplicity int
	Mem          int //in MB
	// XYZ is the geometry as standardized "El x y z" lines (see
	// StandardizeXYZ).
	XYZ         string
	Constraints []*Constraint
	Parameters  Parameters
}

// Conversion factors from memory-unit suffixes to megabytes.
var memoryFactors = map[string]float64{
	"m":   1,
	"mb":  1,
	"mib": 1.048576, //(1024/1000)^2
	"g":   1000,
	"gb":  1000,
	"gib": 1073.741824, //1000*(1024/1000)^3
	"t":   1000000,
	"tb":  1000000,
	"tib": 1099511.628, //1000^2*(1024/1000)^4
}

// StandardizeMemory converts a string specifying an amount of memory, with
// an optional unit suffix ("2gb", "512 mib", "4000"), to an integer number
// of megabytes. A bare number is taken as megabytes.
func StandardizeMemory(mem string) (int, error) {
	mem = strings.ToLower(strings.TrimSpace(mem))
	ind := len(mem)
	for i, c := range mem {
		if c >= 'a' && c <= 'z' {
			ind = i
			break
		}
	}
	val := strings.TrimSpace(mem[:ind])
	unit := strings.TrimSpace(mem[ind:])
	if val == "" {
		return 0, fmt.Errorf("%w: invalid memory specification '%s'", ErrInvalidParameter, mem)
	}
	if unit == "" {
		unit = "mb" //no unit given, suppose megabytes
	}
	factor, ok := memoryFactors[unit]
	if !ok {
		return 0, fmt.Errorf("%w: unknown unit in memory specification '%s'", ErrInvalidParameter, mem)
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: the amount of memory must be a number, got '%s'", ErrInvalidParameter, mem)
	}
	mb := f * factor
	if mb < 0 {
		return 0, fmt.Errorf("%w: the amount of memory must be positive, not '%s'", ErrInvalidParameter, mem)
	}
	if mb > 1e8 {
		return 0, fmt.Errorf("%w: unreasonable amount of memory requested: '%s'", ErrInvalidParameter, mem)
	}
	return int(mb + 0.5), nil
}
