/*
 * canonical.go, part of geoanal.
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

import "sort"

// Symboler gives the element symbol of an atom from its ID.
type Symboler interface {
	Symbol(id int) string
}

// Canonical returns the canonical orientation of t, and the element symbols of its atoms in
// that order. Symbols are compared lexicographically, and ties are broken by atom ID:
//
//	bond i-j: symbol(i) <= symbol(j).
//	angle i-j-k: j stays at the center, symbol(i) <= symbol(k).
//	dihedral i-j-k-l: symbol(j) <= symbol(k); if those are equal, symbol(i) <= symbol(l).
//	  The quadruple is always reversed as a whole.
//	out-of-plane i-j-k-l, center j: the other three are sorted, and the term is
//	  (smallest, center, middle, largest).
//
// Canonical is idempotent, and gives the same result for all the orientations of a term.
func Canonical(t Term, sym Symboler) (Term, []string) {
	a := append([]int(nil), t.Atoms...)
	s := make([]string, len(a))
	for i, id := range a {
		s[i] = sym.Symbol(id)
	}
	// before reports whether atom x (symbol sx) goes before atom y.
	before := func(sx string, x int, sy string, y int) bool {
		if sx != sy {
			return sx < sy
		}
		return x < y
	}
	switch t.Kind {
	case Bond:
		if !before(s[0], a[0], s[1], a[1]) {
			a[0], a[1] = a[1], a[0]
			s[0], s[1] = s[1], s[0]
		}
	case Angle:
		if !before(s[0], a[0], s[2], a[2]) {
			a[0], a[2] = a[2], a[0]
			s[0], s[2] = s[2], s[0]
		}
	case Dihedral:
		var reverse bool
		switch {
		case s[1] != s[2]:
			reverse = s[1] > s[2]
		case s[0] != s[3]:
			reverse = s[0] > s[3]
		default:
			reverse = a[1] > a[2]
		}
		if reverse {
			a[0], a[1], a[2], a[3] = a[3], a[2], a[1], a[0]
			s[0], s[1], s[2], s[3] = s[3], s[2], s[1], s[0]
		}
	case OutOfPlane:
		type outer struct {
			id  int
			sym string
		}
		o := []outer{{a[0], s[0]}, {a[2], s[2]}, {a[3], s[3]}}
		sort.Slice(o, func(x, y int) bool { return before(o[x].sym, o[x].id, o[y].sym, o[y].id) })
		a[0], a[2], a[3] = o[0].id, o[1].id, o[2].id
		s[0], s[2], s[3] = o[0].sym, o[1].sym, o[2].sym
	}
	return Term{Kind: t.Kind, Atoms: a}, s
}

// Unique returns the canonical forms of terms, without repetitions, in the order in which
// they first appear.
func Unique(terms []Term, sym Symboler) []Term {
	seen := make(map[string]bool, len(terms))
	ret := make([]Term, 0, len(terms))
	for _, t := range terms {
		c, _ := Canonical(t, sym)
		k := c.Key()
		if seen[k] {
			continue
		}
		seen[k] = true
		ret = append(ret, c)
	}
	return ret
}
