/*
 * classify.go, part of geoanal.
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

package terms

import "math"

// Conformation is one of the six conformational bins for a dihedral angle.
type Conformation int

const (
	Synperiplanar   Conformation = iota // C, [-30,30]
	PlusSynclinal                       // G+, (30,90]
	PlusAnticlinal                      // A+, (90,150]
	Antiperiplanar                      // T, (150,180] and (-180,-150)
	MinusAnticlinal                     // A-, [-150,-90)
	MinusSynclinal                      // G-, [-90,-30)
)

var conformations = [...][2]string{
	{"C", "synperiplanar"},
	{"G+", "+synclinal"},
	{"A+", "+anticlinal"},
	{"T", "antiperiplanar"},
	{"A-", "-anticlinal"},
	{"G-", "-synclinal"},
}

// Label returns the short label of the conformation, i.e. "G+".
func (c Conformation) Label() string {
	return conformations[c][0]
}

// String returns the name of the conformation, i.e. "+synclinal".
func (c Conformation) String() string {
	return conformations[c][1]
}

// Conformations lists the six bins in order.
var Conformations = []Conformation{Synperiplanar, PlusSynclinal, PlusAnticlinal, Antiperiplanar, MinusAnticlinal, MinusSynclinal}

// WrapDegrees returns the angle phi, in degrees, brought to the interval (-180,180].
func WrapDegrees(phi float64) float64 {
	phi = math.Mod(phi, 360)
	if phi > 180 {
		phi -= 360
	} else if phi <= -180 {
		phi += 360
	}
	return phi
}

// Classify returns the conformational bin for the dihedral phi, in degrees. phi is first
// brought to (-180,180]; the bins are symmetric around 0 and cover that interval with
// no gaps and no overlaps: the negative bins are the mirror images of the positive ones, so
// -90 is -synclinal, as 90 is +synclinal, and -150 is -anticlinal. phi must be a finite number.
func Classify(phi float64) Conformation {
	phi = WrapDegrees(phi)
	switch {
	case phi >= -30 && phi <= 30:
		return Synperiplanar
	case phi > 30 && phi <= 90:
		return PlusSynclinal
	case phi > 90 && phi <= 150:
		return PlusAnticlinal
	case phi > 150 || phi < -150:
		return Antiperiplanar
	case phi < -90:
		return MinusAnticlinal
	default:
		return MinusSynclinal
	}
}
