/*
 * constraint_test.go, part of qcin.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func vec(x, y, z float64) *mat.VecDense {
	return mat.NewVecDense(3, []float64{x, y, z})
}

func TestGeometric(t *testing.T) {
	assert.InDelta(t, 0.74, Distance(vec(0, 0, 0), vec(0, 0, 0.74)), 1e-10)
	assert.InDelta(t, 90.0, Angle(vec(1, 0, 0), vec(0, 0, 0), vec(0, 1, 0)), 1e-8)
	assert.InDelta(t, 180.0, Angle(vec(-1, 0, 0), vec(0, 0, 0), vec(1, 0, 0)), 1e-8)
	assert.InDelta(t, 90.0, Dihedral(vec(0, 1, 0), vec(0, 0, 0), vec(1, 0, 0), vec(1, 0, 1)), 1e-8)
}

func TestConstraintFragments(t *testing.T) {
	coords := []*mat.VecDense{vec(0, 0, 0), vec(0, 0, 0.74)}

	//an explicit value is used as given
	c := &Constraint{Kind: DistanceConstraint, Atoms: []int{1, 2}, Value: 1.2}
	frags, err := c.Fragments(coords)
	require.NoError(t, err)
	require.Len(t, frags, 1)
	assert.Equal(t, FragmentRestraint, frags[0].Kind)
	assert.Equal(t, "bond 1 2 1.2000 constant", frags[0].Text)

	//a zero value is measured from the geometry
	c = &Constraint{Kind: DistanceConstraint, Atoms: []int{1, 2}}
	frags, err = c.Fragments(coords)
	require.NoError(t, err)
	require.Len(t, frags, 1)
	assert.Equal(t, "bond 1 2 0.7400 constant", frags[0].Text)

	//a scanned constraint contributes twice: restraint and scan
	c = &Constraint{Kind: DistanceConstraint, Atoms: []int{1, 2}, Scan: true, To: 1.5, Steps: 10}
	frags, err = c.Fragments(coords)
	require.NoError(t, err)
	require.Len(t, frags, 2)
	assert.Equal(t, FragmentRestraint, frags[0].Kind)
	assert.Equal(t, FragmentScan, frags[1].Kind)
	assert.Equal(t, "bond 1 2 0.7400 1.5000 10", frags[1].Text)
}

func TestConstraintFragmentsRejects(t *testing.T) {
	coords := []*mat.VecDense{vec(0, 0, 0), vec(0, 0, 0.74)}

	//wrong number of atoms for the class
	c := &Constraint{Kind: AngleConstraint, Atoms: []int{1, 2}}
	_, err := c.Fragments(coords)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	//atom index outside the geometry
	c = &Constraint{Kind: DistanceConstraint, Atoms: []int{1, 7}}
	_, err = c.Fragments(coords)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	//a scan needs steps
	c = &Constraint{Kind: DistanceConstraint, Atoms: []int{1, 2}, Scan: true, To: 1.5}
	_, err = c.Fragments(coords)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestParseConstraintKind(t *testing.T) {
	for in, want := range map[string]ConstraintKind{
		"distance": DistanceConstraint,
		"Bond":     DistanceConstraint,
		"angle":    AngleConstraint,
		"torsion":  DihedralConstraint,
		"dihedral": DihedralConstraint,
	} {
		got, err := ParseConstraintKind(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseConstraintKind("spring")
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
