/*
 * render.go, part of geoanal.
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

import "strings"

// NoOrder is the order reported for an atom pair with no known bond.
const NoOrder = -1

var bondSymbols = map[int]string{
	0: "-0-",
	1: "-",
	2: "=",
	3: "#",
	4: "-4-",
	5: "-5-",
}

// BondSymbol returns the symbol used in labels for a bond of the given order.
// Orders without a symbol, including NoOrder, give ".".
func BondSymbol(order int) string {
	if s, ok := bondSymbols[order]; ok {
		return s
	}
	return "."
}

// BondOrderer gives the order of the bond between two atoms, if there is one.
type BondOrderer interface {
	BondOrder(i, j int) (int, bool)
}

// BondPairs returns the atom pairs whose bonds appear in the label of t.
// These are consecutive atoms, except for out-of-plane terms, where they
// are the center with each of the other atoms.
func BondPairs(t Term) [][2]int {
	a := t.Atoms
	if t.Kind == OutOfPlane {
		return [][2]int{{a[1], a[0]}, {a[1], a[2]}, {a[1], a[3]}}
	}
	ret := make([][2]int, 0, len(a)-1)
	for i := 1; i < len(a); i++ {
		ret = append(ret, [2]int{a[i-1], a[i]})
	}
	return ret
}

// BondOrders returns the orders of the bonds in BondPairs(t), NoOrder where unknown.
// bo can be nil.
func BondOrders(t Term, bo BondOrderer) []int {
	pairs := BondPairs(t)
	ret := make([]int, len(pairs))
	for i, p := range pairs {
		ret[i] = NoOrder
		if bo == nil {
			continue
		}
		if o, ok := bo.BondOrder(p[0], p[1]); ok {
			ret[i] = o
		}
	}
	return ret
}

// IndexString returns the atom IDs of t joined by dashes, with an "oop" prefix for
// out-of-plane terms. The result can be parsed back with ParseTerm.
func IndexString(t Term) string {
	s := joinInts(t.Atoms, "-")
	if t.Kind == OutOfPlane {
		return "oop" + s
	}
	return s
}

// Label returns the label of a term, given the symbols of its atoms and the orders of
// the bonds in BondPairs(t). i.e. "C-C=O", or "[C](-H)(-H)(=O)" for an out-of-plane term
// centered on a carbon.
func Label(t Term, symbols []string, orders []int) string {
	var b strings.Builder
	if t.Kind == OutOfPlane {
		b.WriteString("[" + symbols[1] + "]")
		for n, i := range []int{0, 2, 3} {
			b.WriteString("(" + BondSymbol(orders[n]) + symbols[i] + ")")
		}
		return b.String()
	}
	b.WriteString(symbols[0])
	for i := 1; i < len(symbols); i++ {
		b.WriteString(BondSymbol(orders[i-1]))
		b.WriteString(symbols[i])
	}
	return b.String()
}

// Rendered is a canonical term with all its annotations.
type Rendered struct {
	Term    Term
	Symbols []string
	Orders  []int
	Label   string
	Index   string
}

// Render canonicalizes t and annotates it with element symbols, bond orders, label
// and index string.
func Render(t Term, sym Symboler, bo BondOrderer) Rendered {
	c, symbols := Canonical(t, sym)
	orders := BondOrders(c, bo)
	return Rendered{
		Term:    c,
		Symbols: symbols,
		Orders:  orders,
		Label:   Label(c, symbols, orders),
		Index:   IndexString(c),
	}
}
