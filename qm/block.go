/*
 * block.go, part of qcin.
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

import "strings"

// A block is one named, end-terminated section of block-structured engine
// input, kept as an ordered list of lines rather than a text buffer.
// Whether a block is empty, has a header, or is already closed are
// structural queries, never substring searches.
type block struct {
	header string
	lines  []string
}

// add appends lines to the block, trimming whitespace and dropping lines
// that are blank after trimming.
func (b *block) add(lines ...string) {
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		b.lines = append(b.lines, l)
	}
}

func (b *block) empty() bool {
	return b == nil || (b.header == "" && len(b.lines) == 0)
}

// closed reports whether the block already carries its closing marker.
func (b *block) closed() bool {
	if b == nil {
		return false
	}
	for _, l := range b.lines {
		if l == "end" {
			return true
		}
	}
	return false
}

// close appends the closing marker iff the block is non-empty and not
// already closed. Idempotent: closing twice is the same as closing once.
func (b *block) close() {
	if b.empty() || b.closed() {
		return
	}
	b.lines = append(b.lines, "end")
}

// render writes the block out, one line each, with a trailing newline.
// An empty block renders to nothing at all.
func (b *block) render() string {
	if b.empty() {
		return ""
	}
	var sb strings.Builder
	if b.header != "" {
		sb.WriteString(b.header)
		sb.WriteString("\n")
	}
	for _, l := range b.lines {
		sb.WriteString(l)
		sb.WriteString("\n")
	}
	return sb.String()
}
