/*
 * term.go, part of geoanal.
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

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the type of a valence term.
type Kind int

const (
	Bond Kind = iota
	Angle
	Dihedral
	OutOfPlane
)

// Kinds contains all the term kinds, in the order used for reports and tables.
var Kinds = []Kind{Bond, Angle, Dihedral, OutOfPlane}

var kindInfo = [...]struct {
	name, title, plural string
	natoms              int
}{
	{"bond", "Bond", "bonds", 2},
	{"angle", "Angle", "angles", 3},
	{"dihedral", "Dihedral", "dihedrals", 4},
	{"oop", "Out-of-plane", "out-of-planes", 4},
}

func (k Kind) valid() bool { return k >= Bond && k <= OutOfPlane }

// String returns the short name of the kind: bond, angle, dihedral or oop.
func (k Kind) String() string {
	if !k.valid() {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindInfo[k].name
}

// Title returns the name of the kind as used in report headers.
func (k Kind) Title() string {
	if !k.valid() {
		return k.String()
	}
	return kindInfo[k].title
}

// Plural returns the plural name of the kind, i.e. "bonds".
func (k Kind) Plural() string {
	if !k.valid() {
		return k.String()
	}
	return kindInfo[k].plural
}

// NAtoms returns the number of atoms in a term of this kind.
func (k Kind) NAtoms() int {
	if !k.valid() {
		return 0
	}
	return kindInfo[k].natoms
}

// Term is a valence term: a tuple of atom IDs tagged with its kind.
// For out-of-plane terms the second atom is the center.
type Term struct {
	Kind  Kind
	Atoms []int
}

// NewTerm returns a term of the given kind. It returns an error if the number of atoms
// doesn't match the kind, or if an atom ID is not positive or appears more than once.
func NewTerm(kind Kind, atoms ...int) (Term, error) {
	if !kind.valid() {
		return Term{}, fmt.Errorf("invalid term kind %d", int(kind))
	}
	if len(atoms) != kind.NAtoms() {
		return Term{}, fmt.Errorf("a %s needs %d atoms, got %d", kind, kind.NAtoms(), len(atoms))
	}
	for i, a := range atoms {
		if a < 1 {
			return Term{}, fmt.Errorf("invalid atom number %d", a)
		}
		for _, b := range atoms[:i] {
			if a == b {
				return Term{}, fmt.Errorf("atom %d appears more than once", a)
			}
		}
	}
	return Term{Kind: kind, Atoms: append([]int(nil), atoms...)}, nil
}

// Key returns a string that identifies the term, including its orientation.
func (t Term) Key() string {
	return t.Kind.String() + ":" + joinInts(t.Atoms, "-")
}

// Equal returns whether t and o have the same kind and the same atoms in the same order.
func (t Term) Equal(o Term) bool {
	if t.Kind != o.Kind || len(t.Atoms) != len(o.Atoms) {
		return false
	}
	for i, a := range t.Atoms {
		if o.Atoms[i] != a {
			return false
		}
	}
	return true
}

func (t Term) String() string {
	return IndexString(t)
}

func joinInts(v []int, sep string) string {
	s := make([]string, len(v))
	for i, a := range v {
		s[i] = strconv.Itoa(a)
	}
	return strings.Join(s, sep)
}

// Enumeration holds the terms of each kind.
type Enumeration struct {
	Bonds     []Term
	Angles    []Term
	Dihedrals []Term
	OOPs      []Term
}

// Of returns the terms of kind k.
func (E *Enumeration) Of(k Kind) []Term {
	switch k {
	case Bond:
		return E.Bonds
	case Angle:
		return E.Angles
	case Dihedral:
		return E.Dihedrals
	case OutOfPlane:
		return E.OOPs
	}
	return nil
}

// Add appends t to the terms of its kind.
func (E *Enumeration) Add(t Term) {
	switch t.Kind {
	case Bond:
		E.Bonds = append(E.Bonds, t)
	case Angle:
		E.Angles = append(E.Angles, t)
	case Dihedral:
		E.Dihedrals = append(E.Dihedrals, t)
	case OutOfPlane:
		E.OOPs = append(E.OOPs, t)
	}
}

// Len returns the total number of terms.
func (E *Enumeration) Len() int {
	return len(E.Bonds) + len(E.Angles) + len(E.Dihedrals) + len(E.OOPs)
}
