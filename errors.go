/*
 * errors.go, part of qcin.
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

import "errors"

// Sentinel errors for the failure modes of input generation. Generators wrap
// these with fmt.Errorf and the %w directive, so callers can match the kind
// with errors.Is while still getting a specific message.
var (
	// ErrUnsupportedCalculation means the calculation type has no task
	// keywords for the requested engine.
	ErrUnsupportedCalculation = errors.New("calculation type not supported by this engine")

	// ErrMissingParameter means a required input, such as the basis set,
	// was not given.
	ErrMissingParameter = errors.New("missing required parameter")

	// ErrInvalidParameter means a given value is malformed or refers to
	// something that does not exist (an unknown element, a non-numeric
	// radius, an empty constraint list for a constrained optimization).
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUnsupportedSolvationModel means the solvation model or radii
	// policy is not available in the engine, or clashes with the level of
	// theory.
	ErrUnsupportedSolvationModel = errors.New("solvation model not supported")
)
