/*
 * geometric.go, part of geoanal.
 *
 * Copyright 2024 The geoanal authors.
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
 */

package chem

import (
	"math"

	v3 "github.com/rmera/geoanal/v3"
)

// Everything equal or less than this is considered zero when normalizing vectors.
const appzero float64 = 0.000000000001

// clamp takes care of floating point math errors before calling acos or asin.
func clamp(argument float64) float64 {
	return math.Max(-1, math.Min(1, argument))
}

// unitDiff puts in dest the unit vector going from b to a. Returns false if a and b coincide.
func unitDiff(dest, a, b *v3.Matrix) bool {
	dest.SubVec(a, b)
	return dest.Unit(dest, appzero)
}

// Distance returns the distance between the points a and b.
// Coincident points give a *DegenerateGeometryError.
func Distance(a, b *v3.Matrix) (float64, error) {
	d := v3.Zeros(1)
	d.SubVec(a, b)
	n := d.Norm()
	if n <= appzero {
		return 0, newDegenerate("Distance", "coincident points")
	}
	return n, nil
}

// Angle returns the angle, in degrees, between the points a, b and c, with b as the vertex.
func Angle(a, b, c *v3.Matrix) (float64, error) {
	u1 := v3.Zeros(1)
	u2 := v3.Zeros(1)
	if !unitDiff(u1, a, b) || !unitDiff(u2, c, b) {
		return 0, newDegenerate("Angle", "zero-length bond vector")
	}
	return Rad2Deg(math.Acos(clamp(u1.Dot(u2)))), nil
}

// Dihedral calculates the dihedral, in degrees, between the points a, b, c, d, where the first plane
// is defined by abc and the second by bcd. The result is in (-180,180].
// The outer bond vectors are projected on the plane perpendicular to the (normalized)
// central bond, and the angle between the projections is obtained with atan2.
func Dihedral(a, b, c, d *v3.Matrix) (float64, error) {
	b0 := v3.Zeros(1)
	b0.SubVec(a, b)
	b1 := v3.Zeros(1)
	if !unitDiff(b1, c, b) {
		return 0, newDegenerate("Dihedral", "coincident central atoms")
	}
	b2 := v3.Zeros(1)
	b2.SubVec(d, c)
	v := perpendicular(b0, b1)
	w := perpendicular(b2, b1)
	if v.Norm() <= appzero || w.Norm() <= appzero {
		return 0, newDegenerate("Dihedral", "outer atom on the central bond axis")
	}
	x := v.Dot(w)
	cr := v3.Zeros(1)
	cr.Cross(b1, v)
	y := cr.Dot(w)
	phi := Rad2Deg(math.Atan2(y, x))
	if phi <= -180 {
		phi = 180
	}
	return phi, nil
}

// perpendicular returns the component of vec perpendicular to the unit vector axis.
func perpendicular(vec, axis *v3.Matrix) *v3.Matrix {
	proj := vec.Dot(axis)
	ret := v3.Zeros(1)
	for j := 0; j < 3; j++ {
		ret.Set(0, j, vec.At(0, j)-proj*axis.At(0, j))
	}
	return ret
}

// OutOfPlane returns the Wilson out-of-plane angle, in degrees, for the pyramidal center b
// bonded to a, c and d. Each bond gives a pyramidalization angle, the arcsine of the dot product
// of its unit vector with the unit normal of the plane of the other two bonds. The three
// angles are taken in cyclic order, so they share sign, and averaged. Only the magnitude is returned.
func OutOfPlane(a, b, c, d *v3.Matrix) (float64, error) {
	u := [3]*v3.Matrix{v3.Zeros(1), v3.Zeros(1), v3.Zeros(1)}
	for i, p := range []*v3.Matrix{a, c, d} {
		if !unitDiff(u[i], p, b) {
			return 0, newDegenerate("OutOfPlane", "zero-length bond vector")
		}
	}
	n := v3.Zeros(1)
	var sum float64
	for i := 0; i < 3; i++ {
		n.Cross(u[(i+1)%3], u[(i+2)%3])
		if !n.Unit(n, appzero) {
			return 0, newDegenerate("OutOfPlane", "collinear bonds")
		}
		sum += math.Asin(clamp(u[i].Dot(n)))
	}
	return math.Abs(Rad2Deg(sum / 3)), nil
}
