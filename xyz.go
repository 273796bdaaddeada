/*
 * xyz.go, part of qcin.
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
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"

	"gonum.org/v1/gonum/mat"
)

// CleanXYZ replaces every non-printable character in a geometry by a
// space, so nothing odd survives into the generated input.
func CleanXYZ(xyz string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' || unicode.IsGraphic(r) {
			return r
		}
		return ' '
	}, xyz)
}

// StandardizeXYZ converts variations of the XYZ format into the uniform
// format used in this library: one "El X Y Z" line per atom, fixed-width
// coordinates, no header. The two-line header of regular .xyz files is
// detected and removed, after checking that the declared atom count
// matches. Atoms labeled with their atomic number get their symbol back.
func StandardizeXYZ(xyz string) (string, error) {
	lines := strings.Split(strings.TrimSpace(xyz), "\n")
	//A leading bare integer is an xyz header, the next line is the comment.
	if len(lines) > 0 {
		if n, err := strconv.Atoi(strings.TrimSpace(lines[0])); err == nil {
			if n != len(lines)-2 {
				return "", fmt.Errorf("%w: invalid xyz header: %d atoms specified, but actually contains %d atoms", ErrInvalidParameter, n, len(lines)-2)
			}
			lines = lines[2:]
		}
	}
	var b strings.Builder
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 4 {
			return "", fmt.Errorf("%w: invalid xyz: found line '%s'", ErrInvalidParameter, line)
		}
		symbol := fields[0]
		if _, ok := AtomicNumber(symbol); !ok {
			z, err := strconv.Atoi(symbol)
			if err != nil {
				return "", fmt.Errorf("%w: invalid atomic label: '%s'", ErrInvalidParameter, symbol)
			}
			s, ok := SymbolForNumber(z)
			if !ok {
				return "", fmt.Errorf("%w: invalid atomic number: '%d'", ErrInvalidParameter, z)
			}
			symbol = s
		}
		coords := make([]float64, 3)
		for i, f := range fields[1:] {
			c, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return "", fmt.Errorf("%w: invalid atomic coordinate: '%s'", ErrInvalidParameter, f)
			}
			coords[i] = c
		}
		fmt.Fprintf(&b, "%-2s %12.8f %12.8f %12.8f\n", symbol, coords[0], coords[1], coords[2])
	}
	return b.String(), nil
}

// ReadXYZFile reads a geometry file from disk and standardizes it.
func ReadXYZFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: geometry file not found: %s", ErrInvalidParameter, path)
	}
	defer f.Close()
	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return StandardizeXYZ(strings.Join(lines, "\n"))
}

// Coords parses a standardized geometry and returns the per-atom symbols
// and position vectors.
func Coords(xyz string) ([]string, []*mat.VecDense, error) {
	var symbols []string
	var coords []*mat.VecDense
	for _, line := range strings.Split(xyz, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 4 {
			return nil, nil, fmt.Errorf("%w: invalid geometry line '%s'", ErrInvalidParameter, line)
		}
		v := make([]float64, 3)
		for i, f := range fields[1:] {
			c, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: invalid coordinate '%s'", ErrInvalidParameter, f)
			}
			v[i] = c
		}
		symbols = append(symbols, fields[0])
		coords = append(coords, mat.NewVecDense(3, v))
	}
	return symbols, coords, nil
}

// UniqueElements returns the element symbols present in a geometry, in
// order of first appearance.
func UniqueElements(xyz string) []string {
	var unique []string
	seen := map[string]bool{}
	for _, line := range strings.Split(xyz, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if !seen[fields[0]] {
			seen[fields[0]] = true
			unique = append(unique, fields[0])
		}
	}
	return unique
}
