/*
 * calc_test.go, part of qcin.
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
)

func TestStandardizeMemory(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"1000", 1000},
		{"1000mb", 1000},
		{"1000 mb", 1000},
		{"2gb", 2000},
		{"2 G", 2000},
		{"1gib", 1074},
		{"0.5gb", 500},
		{"1t", 1000000},
	}
	for _, c := range cases {
		got, err := StandardizeMemory(c.in)
		require.NoError(t, err, "input %q", c.in)
		assert.Equal(t, c.want, got, "input %q", c.in)
	}
}

func TestStandardizeMemoryRejects(t *testing.T) {
	for _, in := range []string{"", "mb", "-5mb", "10xx", "1e12gb", "nonsense"} {
		_, err := StandardizeMemory(in)
		require.Error(t, err, "input %q", in)
		assert.ErrorIs(t, err, ErrInvalidParameter, "input %q", in)
	}
}

func TestParseCalcType(t *testing.T) {
	for in, want := range map[string]CalcType{
		"sp":       SP,
		"Energy":   SP,
		"opt":      OPT,
		"saddle":   TS,
		"freq":     Freq,
		"opt+freq": OptFreq,
		"MEP":      MEP,
	} {
		got, err := ParseCalcType(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}
	_, err := ParseCalcType("molecular dynamics")
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestAtomicData(t *testing.T) {
	z, ok := AtomicNumber("Cl")
	require.True(t, ok)
	assert.Equal(t, 17, z)
	_, ok = AtomicNumber("cl") //symbols are case-sensitive here
	assert.False(t, ok)

	s, ok := CanonicalSymbol("cl")
	require.True(t, ok)
	assert.Equal(t, "Cl", s)
	s, ok = CanonicalSymbol("MG")
	require.True(t, ok)
	assert.Equal(t, "Mg", s)
	_, ok = CanonicalSymbol("xx")
	assert.False(t, ok)

	s, ok = SymbolForNumber(1)
	require.True(t, ok)
	assert.Equal(t, "H", s)
}
