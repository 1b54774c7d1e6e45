/*
 * geometric_test.go, part of geoanal.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v3 "github.com/rmera/geoanal/v3"
)

func point(x, y, z float64) *v3.Matrix {
	p, err := v3.NewMatrix([]float64{x, y, z})
	if err != nil {
		panic(err)
	}
	return p
}

func mirror(p *v3.Matrix) *v3.Matrix {
	return point(p.At(0, 0), -p.At(0, 1), p.At(0, 2))
}

func TestDistance(Te *testing.T) {
	d, err := Distance(point(0, 0, 0), point(1, 2, 2))
	require.NoError(Te, err)
	assert.InDelta(Te, 3.0, d, 1e-12)
	_, err = Distance(point(1, 1, 1), point(1, 1, 1))
	assert.True(Te, IsDegenerate(err))
}

func TestAngle(Te *testing.T) {
	o := point(0, 0, 0)
	h1 := point(0.9572, 0, 0)
	h2 := point(-0.239987, 0.926627, 0)
	a, err := Angle(h1, o, h2)
	require.NoError(Te, err)
	assert.InDelta(Te, 104.52, a, 0.01)
	b, err := Angle(h2, o, h1)
	require.NoError(Te, err)
	assert.Equal(Te, a, b)
	//colinear, the clamping must keep this from giving NaN
	a, err = Angle(point(1, 0, 0), o, point(-3, 0, 0))
	require.NoError(Te, err)
	assert.InDelta(Te, 180, a, 1e-9)
	_, err = Angle(o, o, h2)
	assert.True(Te, IsDegenerate(err))
}

func TestDihedral(Te *testing.T) {
	b := point(0, 0, 0)
	c := point(0, 0, 1.5)
	a := point(1, 0, 0)
	for _, phi := range []float64{0, 30, 60, 90, 120, 150, -30, -60, -90, -120, -150, 179} {
		r := Deg2Rad(phi)
		d := point(math.Cos(r), math.Sin(r), 1.5)
		got, err := Dihedral(a, b, c, d)
		require.NoError(Te, err)
		assert.InDelta(Te, phi, got, 1e-9)
		rev, err := Dihedral(d, c, b, a)
		require.NoError(Te, err)
		assert.InDelta(Te, got, rev, 1e-9, "reversal changed the dihedral")
		mir, err := Dihedral(mirror(a), mirror(b), mirror(c), mirror(d))
		require.NoError(Te, err)
		assert.InDelta(Te, -got, mir, 1e-9, "the mirror image should have the opposite sign")
	}
	anti, err := Dihedral(a, b, c, point(-1, 0, 1.5))
	require.NoError(Te, err)
	assert.InDelta(Te, 180, anti, 1e-9)
	assert.True(Te, anti > -180 && anti <= 180)

	_, err = Dihedral(point(0, 0, -1), b, c, point(1, 0, 1.5))
	assert.True(Te, IsDegenerate(err))
	_, err = Dihedral(a, b, b, point(1, 0, 1.5))
	assert.True(Te, IsDegenerate(err))
}

func TestOutOfPlane(Te *testing.T) {
	center := point(0, 0, 0)
	a := point(1, 0, 0)
	c := point(-0.5, math.Sqrt(3)/2, 0)
	d := point(-0.5, -math.Sqrt(3)/2, 0)
	w, err := OutOfPlane(a, center, c, d)
	require.NoError(Te, err)
	assert.InDelta(Te, 0, w, 1e-9)

	// pyramidal center, all the bonds at 20 degrees from the plane of the ends.
	z := math.Tan(Deg2Rad(20))
	pa, pc, pd := point(1, 0, z), point(-0.5, math.Sqrt(3)/2, z), point(-0.5, -math.Sqrt(3)/2, z)
	w, err = OutOfPlane(pa, center, pc, pd)
	require.NoError(Te, err)
	//each bond makes 56.05 degrees with the plane of the other two; the three are averaged, not added.
	assert.InDelta(Te, 56.0524, w, 1e-3)
	for _, perm := range [][3]*v3.Matrix{{pc, pa, pd}, {pd, pc, pa}, {pa, pd, pc}} {
		w2, err := OutOfPlane(perm[0], center, perm[1], perm[2])
		require.NoError(Te, err)
		assert.InDelta(Te, w, w2, 1e-9)
	}
	_, err = OutOfPlane(a, center, point(-1, 0, 0), point(0, 1, 0))
	assert.True(Te, IsDegenerate(err))
}

func TestErrDecorate(Te *testing.T) {
	_, err := Distance(point(0, 0, 0), point(0, 0, 0))
	err = ErrDecorate(err, "TestErrDecorate")
	var d *DegenerateGeometryError
	require.ErrorAs(Te, err, &d)
	assert.Equal(Te, "Distance", d.Function)
	assert.Equal(Te, "Distance > TestErrDecorate", Trail(err))
	assert.Nil(Te, ErrDecorate(nil, "x"))
}
