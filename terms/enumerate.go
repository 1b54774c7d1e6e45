/*
 * enumerate.go, part of geoanal.
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

// Connectivity is the bond graph needed to enumerate terms.
// Neighbors must return the IDs in a fixed order for the enumeration to be reproducible.
type Connectivity interface {
	AtomIDs() []int
	Neighbors(id int) []int
	Bonds() [][2]int
}

// Enumerate returns all the terms implied by the connectivity conn:
// the bonds themselves; an angle i-j-k for each pair of distinct neighbors i,k of each atom j;
// a dihedral i-j-k-l for each bond j-k, with i a neighbor of j and l a neighbor of k; and an
// out-of-plane term for each atom with exactly 3 neighbors. Quadruples i-j-k-i, from
// three-membered rings, are not dihedrals and are left out.
// The terms are not canonicalized, see Unique.
func Enumerate(conn Connectivity) *Enumeration {
	E := new(Enumeration)
	bonds := conn.Bonds()
	for _, b := range bonds {
		E.Bonds = append(E.Bonds, Term{Kind: Bond, Atoms: []int{b[0], b[1]}})
	}
	for _, j := range conn.AtomIDs() {
		nb := conn.Neighbors(j)
		for a := 0; a < len(nb); a++ {
			for c := a + 1; c < len(nb); c++ {
				E.Angles = append(E.Angles, Term{Kind: Angle, Atoms: []int{nb[a], j, nb[c]}})
			}
		}
		if len(nb) == 3 {
			E.OOPs = append(E.OOPs, Term{Kind: OutOfPlane, Atoms: []int{nb[0], j, nb[1], nb[2]}})
		}
	}
	for _, b := range bonds {
		j, k := b[0], b[1]
		nk := conn.Neighbors(k)
		for _, i := range conn.Neighbors(j) {
			if i == k {
				continue
			}
			for _, l := range nk {
				if l == j || l == i {
					continue
				}
				E.Dihedrals = append(E.Dihedrals, Term{Kind: Dihedral, Atoms: []int{i, j, k, l}})
			}
		}
	}
	return E
}
