/*
 * synonyms_test.go, part of qcin.
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
)

func TestGetMethod(t *testing.T) {
	assert.Equal(t, "b3lyp", GetMethod("B3LYP", "nwchem"))
	assert.Equal(t, "b3lyp", GetMethod("b3-lyp", "nwchem"))
	assert.Equal(t, "xtpss03 ctpss03", GetMethod("tpss", "nwchem"))
	assert.Equal(t, "xctpssh", GetMethod("TPSSh", "nwchem"))
	//unknown methods pass through as written
	assert.Equal(t, "myxcfunctional", GetMethod("myxcfunctional", "nwchem"))
}

func TestGetSolvent(t *testing.T) {
	assert.Equal(t, "water", GetSolvent("H2O", "nwchem"))
	assert.Equal(t, "acetntrl", GetSolvent("mecn", "nwchem"))
	assert.Equal(t, "dcm", GetSolvent("dichloromethane", "nwchem"))
	assert.Equal(t, "ferrofluid", GetSolvent("ferrofluid", "nwchem"))
}

func TestGetBasisSet(t *testing.T) {
	assert.Equal(t, "6-31g", GetBasisSet("631G", "nwchem"))
	assert.Equal(t, "def2-tzvp", GetBasisSet("def2tzvp", "nwchem"))
	assert.Equal(t, "stuttgart rlc ecp", GetBasisSet("sdd", "nwchem"))
	assert.Equal(t, "my-own-basis", GetBasisSet("my-own-basis", "nwchem"))
}
