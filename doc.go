/*
 * doc.go, part of qcin.
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

/*
Package qcin turns engine-independent descriptions of quantum-chemistry
calculations into the input files of specific QM programs.

This root package holds the calculation model: the Calculation request, the
closed set of calculation types, geometric constraints, element tables, xyz
standardization and the synonym tables for methods, solvents and basis
sets. The engine generators live in the qm subpackage; the basis-set
database collaborator lives in the basis subpackage.
*/
package qcin
