/*
 * warn.go, part of qcin.
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

import "fmt"

// A Warning is a non-fatal condition found while generating an input file.
// Warnings never abort a generation run; they are collected and returned
// next to the finished document so the caller decides where they go
// (a logger, stderr, a web UI).
type Warning struct {
	Msg string
}

func (w Warning) String() string {
	return w.Msg
}

// Warnf builds a Warning the way fmt.Sprintf builds a string.
func Warnf(format string, a ...interface{}) Warning {
	return Warning{Msg: fmt.Sprintf(format, a...)}
}
