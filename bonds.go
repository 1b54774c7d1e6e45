/*
 * bonds.go, part of geoanal.
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
	"fmt"
	"sort"

	v3 "github.com/rmera/geoanal/v3"
)

// constants from DOI:10.1186/1758-2946-3-33
const (
	tooclose = 0.63
	bondtol  = 0.45
)

// AssignBonds assigns bonds to the atoms, with coordinates coord, based on a simple distance
// criterion, similar to that described in DOI:10.1186/1758-2946-3-33. Atoms with more bonds
// than their element allows lose their longest bonds. The bonds returned have order 0
// (undetermined), and refer to the atoms by ID, with atom i (0-based) having the ID i+1.
func AssignBonds(coord *v3.Matrix, atoms []*Atom) ([]*Bond, error) {
	// might get slow for large systems. It's really not thought
	// for proteins or macromolecules.
	tot := len(atoms)
	if coord == nil || coord.NVecs() != tot {
		return nil, NewError(fmt.Sprintf("Coordinates don't match the %d atoms given", tot), "AssignBonds")
	}
	t3 := v3.Zeros(1)
	cands := make([]*Bond, 0, tot)
	for i := 0; i < tot; i++ {
		t1 := coord.VecView(i)
		cov1, ok := symbolCovrad[atoms[i].Symbol]
		if !ok {
			return nil, NewError(fmt.Sprintf("Couldn't find the covalent radius for %s %d", atoms[i].Symbol, i+1), "AssignBonds")
		}
		for j := i + 1; j < tot; j++ {
			cov2, ok := symbolCovrad[atoms[j].Symbol]
			if !ok {
				return nil, NewError(fmt.Sprintf("Couldn't find the covalent radius for %s %d", atoms[j].Symbol, j+1), "AssignBonds")
			}
			t3.SubVec(coord.VecView(j), t1)
			d := t3.Norm()
			if d < cov1+cov2+bondtol && d > tooclose {
				cands = append(cands, &Bond{At1: i + 1, At2: j + 1, Dist: d})
			}
		}
	}

	//Now we check that no atom has too many bonds.
	removed := make(map[*Bond]bool)
	for i := 0; i < tot; i++ {
		max := symbolMaxBonds[atoms[i].Symbol]
		if max == 0 {
			continue
		}
		mine := make([]*Bond, 0, max+1)
		for _, b := range cands {
			if !removed[b] && (b.At1 == i+1 || b.At2 == i+1) {
				mine = append(mine, b)
			}
		}
		sort.SliceStable(mine, func(k, l int) bool { return mine[k].Dist < mine[l].Dist })
		for _, b := range mine[min(max, len(mine)):] {
			removed[b] = true //the longest go.
		}
	}
	bonds := make([]*Bond, 0, len(cands))
	for _, b := range cands {
		if !removed[b] {
			b.Index = len(bonds)
			bonds = append(bonds, b)
		}
	}
	return bonds, nil
}
