/*
 * block_test.go, part of qcin.
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

package qm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockCloseIdempotent(t *testing.T) {
	b := &block{header: "dft"}
	b.add("xc b3lyp", "mult 1")
	b.close()
	once := b.render()
	b.close()
	b.close()
	assert.Equal(t, once, b.render(), "closing twice must equal closing once")
	assert.Equal(t, 1, strings.Count(once, "end"))
}

func TestBlockEmptyStaysEmpty(t *testing.T) {
	b := &block{}
	b.add("   ", "", "\t") //blank lines do not make a block non-empty
	assert.True(t, b.empty())
	b.close()
	assert.Equal(t, "", b.render(), "an empty block renders to nothing, closed or not")

	var nilBlock *block
	assert.True(t, nilBlock.empty())
	nilBlock.close() //must not panic
	assert.Equal(t, "", nilBlock.render())
}

func TestBlockHeaderAndLines(t *testing.T) {
	b := &block{header: "scf"}
	b.add("  uhf  ", "doublet")
	b.close()
	assert.Equal(t, "scf\nuhf\ndoublet\nend\n", b.render())
}
