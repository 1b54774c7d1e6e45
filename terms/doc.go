/*
 * doc.go, part of geoanal.
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

/*
Package terms enumerates, canonicalizes, classifies and renders the valence terms of a
molecule: bonds, angles, dihedrals and out-of-plane (Wilson) terms.

A Term is a tuple of atom IDs with a Kind. Terms come either from the connectivity of a
molecule (Enumerate) or from an explicit specification string (ParseSpec), such as

	"1-2, 1-2-3 oop1-2-3-4"

which contains one bond, one angle and one out-of-plane term. Canonical gives each term one
orientation, chosen from the element symbols of its atoms, and Unique uses it to remove
repeated terms. Classify bins dihedral angles into the six conformational descriptors.
*/
package terms
