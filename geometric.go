/*
 * geometric.go, part of qcin.
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
	"math"

	"gonum.org/v1/gonum/mat"
)

const appzero float64 = 0.0000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

func sub(a, b *mat.VecDense) *mat.VecDense {
	r := mat.NewVecDense(3, nil)
	r.SubVec(a, b)
	return r
}

func cross(a, b *mat.VecDense) *mat.VecDense {
	return mat.NewVecDense(3, []float64{
		a.AtVec(1)*b.AtVec(2) - a.AtVec(2)*b.AtVec(1),
		a.AtVec(2)*b.AtVec(0) - a.AtVec(0)*b.AtVec(2),
		a.AtVec(0)*b.AtVec(1) - a.AtVec(1)*b.AtVec(0),
	})
}

//Distance returns the distance between the points a and b.
func Distance(a, b *mat.VecDense) float64 {
	return mat.Norm(sub(a, b), 2)
}

//Angle returns the angle in degrees formed at b by the points a, b and c.
func Angle(a, b, c *mat.VecDense) float64 {
	v1 := sub(a, b)
	v2 := sub(c, b)
	argument := mat.Dot(v1, v2) / (mat.Norm(v1, 2) * mat.Norm(v2, 2))
	//Take care of floating point math errors
	if math.Abs(argument-1) <= appzero {
		argument = 1
	} else if math.Abs(argument+1) <= appzero {
		argument = -1
	}
	return math.Acos(argument) * 180 / math.Pi
}

//Dihedral returns the dihedral angle in degrees between the points
//a, b, c and d, where the first plane is defined by abc and the second
//by bcd.
func Dihedral(a, b, c, d *mat.VecDense) float64 {
	bma := sub(b, a)
	cmb := sub(c, b)
	dmc := sub(d, c)
	bmascaled := mat.NewVecDense(3, nil)
	bmascaled.ScaleVec(mat.Norm(cmb, 2), bma)
	first := mat.Dot(bmascaled, cross(cmb, dmc))
	second := mat.Dot(cross(bma, cmb), cross(cmb, dmc))
	return math.Atan2(first, second) * 180 / math.Pi
}
