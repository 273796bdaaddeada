/*
 * qm.go, part of qcin.
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

//Package qm writes input files for QM programs from qcin calculation
//requests. Each engine gets its own Handle; only the block-structured
//engines live here, engines with declarative input syntaxes are a
//different kind of generator.
package qm

import "github.com/rmera/qcin"

// An Artifact is a side file that must accompany a generated input, such
// as a custom solvation-radii parameter file.
type Artifact struct {
	Name    string
	Content string
}

// A Result is everything one generation run produces: the engine-ready
// document, any side artifacts, and the non-fatal warnings collected
// along the way. There is no partial Result; generation either finishes
// or fails with an error.
type Result struct {
	Input     string
	Artifacts []Artifact
	Warnings  []qcin.Warning
}

// Handle generates input for one QM program.
type Handle interface {

	//Sets the name for the job, used for the input and any side files.
	//The extensions depend on the program.
	SetName(name string)

	//GenerateInput builds the input document for the given calculation
	//without touching the disk.
	GenerateInput(Q *qcin.Calculation) (*Result, error)

	//BuildInput builds the input for the given calculation and writes
	//it, with any side artifacts, to disk.
	BuildInput(Q *qcin.Calculation) error
}

//isInString is a small helper, returns true if test is in container,
//false otherwise.
func isInString(container []string, test string) bool {
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}
