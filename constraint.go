/*
 * constraint.go, part of qcin.
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
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ConstraintKind is the class of a geometric restraint.
type ConstraintKind byte

const (
	DistanceConstraint ConstraintKind = 'B'
	AngleConstraint    ConstraintKind = 'A'
	DihedralConstraint ConstraintKind = 'D'
)

// How many atoms each class of constraint involves.
var constraintOrder = map[ConstraintKind]int{
	DistanceConstraint: 2,
	AngleConstraint:    3,
	DihedralConstraint: 4,
}

// The zcoord word for each class of constraint.
var constraintWord = map[ConstraintKind]string{
	DistanceConstraint: "bond",
	AngleConstraint:    "angle",
	DihedralConstraint: "torsion",
}

// ParseConstraintKind accepts the usual spellings for a constraint class.
func ParseConstraintKind(s string) (ConstraintKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "distance", "bond", "b":
		return DistanceConstraint, nil
	case "angle", "a":
		return AngleConstraint, nil
	case "dihedral", "torsion", "d":
		return DihedralConstraint, nil
	}
	return 0, fmt.Errorf("%w: unknown constraint kind '%s'", ErrInvalidParameter, s)
}

// A Constraint is one geometric restraint for a constrained optimization,
// optionally swept as a scan. Atom numbering starts at 1, as in the
// engine input.
type Constraint struct {
	Kind  ConstraintKind
	Atoms []int
	// Value is the restrained value (Angstroms or degrees). Zero means
	// "whatever the starting geometry has", measured when rendering.
	Value float64
	Scan  bool
	//Scan parameters. From zero means the measured starting value.
	From  float64
	To    float64
	Steps int
}

// FragmentKind tells a generator where a rendered constraint fragment
// belongs.
type FragmentKind int

const (
	FragmentRestraint FragmentKind = iota
	FragmentScan
)

// A Fragment is one rendered piece of engine syntax contributed by a
// constraint. A constraint can contribute both a restraint and a scan
// fragment.
type Fragment struct {
	Kind FragmentKind
	Text string
}

func (c *Constraint) measure(coords []*mat.VecDense) (float64, error) {
	p := make([]*mat.VecDense, len(c.Atoms))
	for i, a := range c.Atoms {
		if a < 1 || a > len(coords) {
			return 0, fmt.Errorf("%w: constraint atom %d outside the geometry", ErrInvalidParameter, a)
		}
		p[i] = coords[a-1]
	}
	switch c.Kind {
	case DistanceConstraint:
		return Distance(p[0], p[1]), nil
	case AngleConstraint:
		return Angle(p[0], p[1], p[2]), nil
	case DihedralConstraint:
		return Dihedral(p[0], p[1], p[2], p[3]), nil
	}
	return 0, fmt.Errorf("%w: unknown constraint kind '%c'", ErrInvalidParameter, byte(c.Kind))
}

// Fragments renders the constraint to NWChem zcoord syntax. It returns a
// restraint entry and, if the constraint declares a scan, a scan entry as
// well. Values left at zero are measured from the given coordinates.
func (c *Constraint) Fragments(coords []*mat.VecDense) ([]Fragment, error) {
	want, ok := constraintOrder[c.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown constraint kind '%c'", ErrInvalidParameter, byte(c.Kind))
	}
	if len(c.Atoms) != want {
		return nil, fmt.Errorf("%w: a %s constraint needs %d atoms, got %d", ErrInvalidParameter, constraintWord[c.Kind], want, len(c.Atoms))
	}
	atoms := make([]string, len(c.Atoms))
	for i, a := range c.Atoms {
		atoms[i] = fmt.Sprintf("%d", a)
	}
	val := c.Value
	if val == 0 {
		var err error
		if val, err = c.measure(coords); err != nil {
			return nil, err
		}
	}
	word := constraintWord[c.Kind]
	frags := []Fragment{{
		Kind: FragmentRestraint,
		Text: fmt.Sprintf("%s %s %.4f constant", word, strings.Join(atoms, " "), val),
	}}
	if c.Scan {
		if c.Steps <= 0 {
			return nil, fmt.Errorf("%w: a scanned %s constraint needs a positive number of steps", ErrInvalidParameter, word)
		}
		from := c.From
		if from == 0 {
			from = val
		}
		frags = append(frags, Fragment{
			Kind: FragmentScan,
			Text: fmt.Sprintf("%s %s %.4f %.4f %d", word, strings.Join(atoms, " "), from, c.To, c.Steps),
		})
	}
	return frags, nil
}
