/*
 * chem.go, part of geoanal.
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
	"math"
	"sort"

	v3 "github.com/rmera/geoanal/v3"
)

// Atom contains the atoms read except for the coordinates, which will be in a matrix.
type Atom struct {
	ID     int    //1-based, stable within a configuration. Atom ID i has coordinates in the vector i-1
	Symbol string //element symbol
	Name   string //optional
}

// Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	ret := *A
	return &ret
}

// Bond is an unordered pair of atom IDs with an integer bond order.
type Bond struct {
	Index int
	At1   int
	At2   int
	Order int     //0 means contact/undetermined. 1 to 3 single to triple, 4 and 5 special
	Dist  float64 //only filled by AssignBonds
}

// Cross returns the ID of the atom at the other end of the bond from origin.
func (B *Bond) Cross(origin int) int {
	if origin == B.At1 {
		return B.At2
	}
	if origin == B.At2 {
		return B.At1
	}
	panic("Trying to cross a bond: The origin atom given is not present in the bond!")
}

// MaxBondOrder is the largest bond order accepted.
const MaxBondOrder = 5

func bondKey(i, j int) [2]int {
	if i > j {
		i, j = j, i
	}
	return [2]int{i, j}
}

/*****Topology type***/

// Topology contains the atoms and bonds of a system, i.e. everything except for the coordinates.
// It is read-only after creation.
type Topology struct {
	atoms   []*Atom
	bonds   []*Bond
	bondmap map[[2]int]*Bond
}

// NewTopology checks and returns a topology with the given atoms and bonds. Atoms with ID 0 get
// their index+1 as ID; any other ID must be equal to index+1. Bonds must join two different existing atoms,
// have orders between 0 and MaxBondOrder, and appear only once for each pair. Bonds are re-indexed
// in the order given.
func NewTopology(atoms []*Atom, bonds []*Bond) (*Topology, error) {
	T := &Topology{atoms: atoms, bondmap: make(map[[2]int]*Bond, len(bonds))}
	for i, at := range atoms {
		if at == nil {
			return nil, NewError(fmt.Sprintf("Atom %d is nil", i), "NewTopology")
		}
		if at.ID == 0 {
			at.ID = i + 1
		}
		if at.ID != i+1 {
			return nil, NewError(fmt.Sprintf("Atom in position %d has ID %d, expected %d", i, at.ID, i+1), "NewTopology")
		}
	}
	T.bonds = make([]*Bond, 0, len(bonds))
	for i, b := range bonds {
		switch {
		case b == nil:
			return nil, NewError(fmt.Sprintf("Bond %d is nil", i), "NewTopology")
		case b.At1 < 1 || b.At1 > len(atoms) || b.At2 < 1 || b.At2 > len(atoms):
			return nil, NewError(fmt.Sprintf("Bond %d-%d references a non-existent atom", b.At1, b.At2), "NewTopology")
		case b.At1 == b.At2:
			return nil, NewError(fmt.Sprintf("Bond %d joins atom %d with itself", i, b.At1), "NewTopology")
		case b.Order < 0 || b.Order > MaxBondOrder:
			return nil, NewError(fmt.Sprintf("Bond %d-%d has invalid order %d", b.At1, b.At2, b.Order), "NewTopology")
		}
		k := bondKey(b.At1, b.At2)
		if _, ok := T.bondmap[k]; ok {
			return nil, NewError(fmt.Sprintf("More than one bond between atoms %d and %d", k[0], k[1]), "NewTopology")
		}
		b.Index = i
		T.bondmap[k] = b
		T.bonds = append(T.bonds, b)
	}
	return T, nil
}

/*Topology methods*/

// Atom returns the Atom corresponding to the index i (i.e. ID i+1). Panics if out of range.
func (T *Topology) Atom(i int) *Atom {
	return T.atoms[i]
}

// AtomByID returns the atom with the given ID, or nil if it doesn't exist.
func (T *Topology) AtomByID(id int) *Atom {
	if id < 1 || id > len(T.atoms) {
		return nil
	}
	return T.atoms[id-1]
}

// Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.atoms)
}

// Symbol returns the element symbol of the atom with the given ID, or "" if there is no such atom.
func (T *Topology) Symbol(id int) string {
	if at := T.AtomByID(id); at != nil {
		return at.Symbol
	}
	return ""
}

// Bonds returns the bond list. It must not be modified.
func (T *Topology) Bonds() []*Bond {
	return T.bonds
}

// NBonds returns the number of bonds.
func (T *Topology) NBonds() int {
	return len(T.bonds)
}

// BondOrder returns the order of the bond between atoms i and j, and whether the bond exists.
func (T *Topology) BondOrder(i, j int) (int, bool) {
	b, ok := T.bondmap[bondKey(i, j)]
	if !ok {
		return 0, false
	}
	return b.Order, true
}

// Bonded returns the sorted IDs of the atoms bonded to the atom with the given ID.
func (T *Topology) Bonded(id int) []int {
	ret := make([]int, 0, 4)
	for _, b := range T.bonds {
		if b.At1 == id || b.At2 == id {
			ret = append(ret, b.Cross(id))
		}
	}
	sort.Ints(ret)
	return ret
}

/**Molecule type**/

// Molecule contains all the info for a molecule in a single configuration.
type Molecule struct {
	*Topology
	Coords   *v3.Matrix
	Name     string //name of the system
	ConfName string //name of the configuration
}

// NewMolecule returns a molecule with the topology top and coordinates coords. It returns
// an error if the number of vectors in coords is not the number of atoms in top, or if
// any coordinate is NaN or infinite.
func NewMolecule(top *Topology, coords *v3.Matrix) (*Molecule, error) {
	if top == nil || coords == nil {
		return nil, NewError("Given nil topology or coordinates", "NewMolecule")
	}
	if coords.NVecs() != top.Len() {
		return nil, NewError(fmt.Sprintf("%d coordinates given for %d atoms", coords.NVecs(), top.Len()), "NewMolecule")
	}
	for i := 0; i < coords.NVecs(); i++ {
		for j := 0; j < 3; j++ {
			if c := coords.At(i, j); math.IsNaN(c) || math.IsInf(c, 0) {
				return nil, NewError(fmt.Sprintf("Non-finite coordinate %v for atom %d", c, i+1), "NewMolecule")
			}
		}
	}
	return &Molecule{Topology: top, Coords: coords}, nil
}

// Position returns a view of the coordinates of the atom with the given ID. Panics if
// out of range.
func (M *Molecule) Position(id int) *v3.Matrix {
	return M.Coords.VecView(id - 1)
}

// WithAssignedBonds returns a new molecule sharing atoms, coordinates and names with M, whose bonds
// have been assigned by AssignBonds. The atoms of M are not modified.
func (M *Molecule) WithAssignedBonds() (*Molecule, error) {
	bonds, err := AssignBonds(M.Coords, M.atoms)
	if err != nil {
		return nil, ErrDecorate(err, "WithAssignedBonds")
	}
	top, err := NewTopology(M.atoms, bonds)
	if err != nil {
		return nil, ErrDecorate(err, "WithAssignedBonds")
	}
	return &Molecule{Topology: top, Coords: M.Coords, Name: M.Name, ConfName: M.ConfName}, nil
}
