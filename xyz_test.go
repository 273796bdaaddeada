/*
 * xyz_test.go, part of qcin.
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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardizeXYZ(t *testing.T) {
	got, err := StandardizeXYZ("H 0 0 0\nH 0 0 0.74")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(got), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "H")
	assert.Contains(t, lines[1], "0.74000000")

	//the two-line header of a regular .xyz file is detected and dropped
	got, err = StandardizeXYZ("2\nwater-ish\nH 0 0 0\nH 0 0 0.74")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(got), "\n"), 2)

	//atomic numbers get their symbols back
	got, err = StandardizeXYZ("8 0 0 0\n1 0 0 0.96")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "O "))
}

func TestStandardizeXYZRejects(t *testing.T) {
	cases := []string{
		"3\ncomment\nH 0 0 0\nH 0 0 0.74", //header count mismatch
		"H 0 0",                           //too few fields
		"Xx 0 0 0",                        //no such element
		"H 0 0 zero",                      //non-numeric coordinate
		"999 0 0 0",                       //no such atomic number
	}
	for _, in := range cases {
		_, err := StandardizeXYZ(in)
		require.Error(t, err, "input %q", in)
		assert.ErrorIs(t, err, ErrInvalidParameter, "input %q", in)
	}
}

func TestCleanXYZ(t *testing.T) {
	in := "H 0 0 0\x00\nH\t0 0 0.74"
	got := CleanXYZ(in)
	assert.NotContains(t, got, "\x00")
	assert.Contains(t, got, "\t") //tabs and newlines survive
	assert.Contains(t, got, "\n")
}

func TestUniqueElements(t *testing.T) {
	xyz, err := StandardizeXYZ("O 0 0 0\nH 0 0 0.96\nH 0.93 0 -0.24\nO 3 0 0")
	require.NoError(t, err)
	assert.Equal(t, []string{"O", "H"}, UniqueElements(xyz))
}

func TestCoords(t *testing.T) {
	symbols, coords, err := Coords("H 0 0 0\nH 0 0 0.74")
	require.NoError(t, err)
	require.Equal(t, []string{"H", "H"}, symbols)
	require.Len(t, coords, 2)
	assert.InDelta(t, 0.74, Distance(coords[0], coords[1]), 1e-8)
}
