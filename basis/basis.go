/*
 * basis.go, part of qcin.
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

//Package basis supplies per-element basis sets and effective core
//potentials in engine syntax. It plays the role the Basis Set Exchange
//plays for the Python tooling: a best-effort query that generators fall
//back from when it fails.
package basis

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// ErrNotFound is returned by a DB when it has no entry for an element and
// keyword. Generators treat it (like any other query error) as a cue to
// degrade gracefully, not as a fatal failure.
var ErrNotFound = errors.New("basis set not found in database")

// DB answers queries for the basis set of a single element, rendered in
// the syntax of an engine. The returned text may also carry an effective
// core potential section (see Sections).
type DB interface {
	Get(element, keyword string) (string, error)
}

// A Snapshot is a local, gzip-compressed JSON dump of a basis-set
// database: keyword -> element symbol -> engine-syntax text.
type Snapshot struct {
	sets map[string]map[string]string
}

// OpenSnapshot reads a snapshot file from disk.
func OpenSnapshot(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadSnapshot(f)
}

// ReadSnapshot reads a gzip-compressed JSON snapshot.
func ReadSnapshot(r io.Reader) (*Snapshot, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("basis snapshot: %w", err)
	}
	defer gz.Close()
	s := &Snapshot{sets: map[string]map[string]string{}}
	if err := json.NewDecoder(gz).Decode(&s.sets); err != nil {
		return nil, fmt.Errorf("basis snapshot: %w", err)
	}
	return s, nil
}

// Get returns the stored text for an element under a basis-set keyword.
// Keywords are matched case-insensitively; elements by canonical symbol.
func (s *Snapshot) Get(element, keyword string) (string, error) {
	set, ok := s.sets[strings.ToLower(strings.TrimSpace(keyword))]
	if !ok {
		return "", fmt.Errorf("%w: keyword '%s'", ErrNotFound, keyword)
	}
	text, ok := set[element]
	if !ok {
		return "", fmt.Errorf("%w: element '%s' under keyword '%s'", ErrNotFound, element, keyword)
	}
	return text, nil
}

// The basis and ECP sections of a database answer are contiguous spans
// between fixed markers, as in the NWChem output of the Basis Set
// Exchange.
var (
	basisSpan = regexp.MustCompile(`(?s)BASIS "ao basis" SPHERICAL PRINT\n(.*?)END`)
	ecpSpan   = regexp.MustCompile(`(?s)ECP\n(.*?)END`)
)

// Sections extracts the basis-function section and, if present, the
// effective-core-potential section from a database answer. The ECP
// section is "" when the answer carries none; a missing basis section is
// an error.
func Sections(text string) (bs string, ecp string, err error) {
	m := basisSpan.FindStringSubmatch(text)
	if m == nil {
		return "", "", fmt.Errorf("no basis section found in database answer")
	}
	bs = strings.TrimRight(m[1], "\n")
	if m := ecpSpan.FindStringSubmatch(text); m != nil {
		ecp = strings.TrimRight(m[1], "\n")
	}
	return bs, ecp, nil
}
