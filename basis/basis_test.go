/*
 * basis_test.go, part of qcin.
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

package basis

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const answerWithECP = `BASIS "ao basis" SPHERICAL PRINT
I    S
      5.0000000              1.0000000
END
ECP
I nelec 28
I ul
2      1.0000000             0.0000000
END
`

const answerNoECP = `BASIS "ao basis" SPHERICAL PRINT
O    S
    130.7093200              0.1543290
O    SP
      5.0331513             -0.0999672
END
`

func TestSections(t *testing.T) {
	bs, ecp, err := Sections(answerWithECP)
	require.NoError(t, err)
	assert.Contains(t, bs, "I    S")
	assert.NotContains(t, bs, "ECP")
	assert.Contains(t, ecp, "I nelec 28")

	bs, ecp, err = Sections(answerNoECP)
	require.NoError(t, err)
	assert.Contains(t, bs, "O    SP")
	assert.Empty(t, ecp)

	_, _, err = Sections("nothing delimited here")
	assert.Error(t, err)
}

func snapshotBytes(t *testing.T, sets map[string]map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	require.NoError(t, json.NewEncoder(gz).Encode(sets))
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func TestSnapshot(t *testing.T) {
	raw := snapshotBytes(t, map[string]map[string]string{
		"lanl2dz": {"I": answerWithECP},
		"sto-3g":  {"O": answerNoECP},
	})
	s, err := ReadSnapshot(bytes.NewReader(raw))
	require.NoError(t, err)

	text, err := s.Get("I", "LANL2DZ") //keywords are case-insensitive
	require.NoError(t, err)
	assert.Equal(t, answerWithECP, text)

	_, err = s.Get("O", "lanl2dz")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get("I", "def2-svp")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSnapshotRejectsGarbage(t *testing.T) {
	_, err := ReadSnapshot(bytes.NewReader([]byte("not gzip at all")))
	assert.Error(t, err)
}
