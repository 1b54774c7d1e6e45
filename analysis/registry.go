/*
 * registry.go, part of geoanal.
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

package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/rmera/geoanal/terms"
)

// Metadata describes one of the named results of an analysis.
type Metadata struct {
	Description    string
	Dimensionality string //"[n_bonds]" and such
	Type           string //"float" or "integer"
	Units          string
}

// Registry receives the metadata of the results an analysis can produce.
type Registry interface {
	Register(name string, m Metadata) error
}

// MapRegistry is a Registry backed by a map.
type MapRegistry map[string]Metadata

// Register adds the metadata for name. Registering a name twice is an error.
func (M MapRegistry) Register(name string, m Metadata) error {
	if _, ok := M[name]; ok {
		return fmt.Errorf("result %q registered twice", name)
	}
	M[name] = m
	return nil
}

// Names returns the registered names, sorted.
func (M MapRegistry) Names() []string {
	ret := make([]string, 0, len(M))
	for k := range M {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

// result name prefixes and value names, indexed by terms.Kind
var (
	resultPrefix = []string{"bond", "angle", "dihedral", "oop"}
	valueName    = []string{"bond_lengths", "angles", "dihedrals", "oops"}
	indexNames   = []string{"i", "j", "k", "l"}
	orderNames   = [][]string{{""}, {"ij", "jk"}, {"ij", "jk", "kl"}, {"ij", "jk", "kl"}}
)

func orderName(k terms.Kind, i int) string {
	if k == terms.Bond {
		return "bond_orders"
	}
	return resultPrefix[k] + "_bond_orders_" + orderNames[k][i]
}

func indexName(k terms.Kind, i int) string {
	return resultPrefix[k] + "_index_" + indexNames[i]
}

// ResultNames returns the names of all the results, in a fixed order.
func ResultNames() []string {
	var ret []string
	for _, k := range terms.Kinds {
		ret = append(ret, valueName[k])
		for i := range orderNames[k] {
			ret = append(ret, orderName(k, i))
		}
		for i := 0; i < k.NAtoms(); i++ {
			ret = append(ret, indexName(k, i))
		}
	}
	return ret
}

// RegisterResults registers the metadata of all the results of ComputeGeometry in reg.
// It is meant to be called once, when the program starts.
func RegisterResults(reg Registry) error {
	for _, k := range terms.Kinds {
		dim := "[n_" + k.Plural() + "]"
		if k == terms.OutOfPlane {
			dim = "[n_oops]"
		}
		units := "degree"
		if k == terms.Bond {
			units = "Å"
		}
		desc := "The " + k.Plural()
		switch k {
		case terms.Bond:
			desc = "The bond lengths"
		case terms.OutOfPlane:
			desc = "The oops"
		}
		if err := reg.Register(valueName[k], Metadata{desc, dim, "float", units}); err != nil {
			return err
		}
		for i, o := range orderNames[k] {
			desc := "The bond orders"
			if k != terms.Bond {
				desc = fmt.Sprintf("The bond orders of %c, %c", o[0], o[1])
			}
			if err := reg.Register(orderName(k, i), Metadata{desc, dim, "float", ""}); err != nil {
				return err
			}
		}
		for i := 0; i < k.NAtoms(); i++ {
			desc := fmt.Sprintf("The %s index %s", resultPrefix[k], indexNames[i])
			if err := reg.Register(indexName(k, i), Metadata{desc, dim, "integer", ""}); err != nil {
				return err
			}
		}
	}
	return nil
}

// Data returns the named results: for each kind analyzed, the values, the bond orders
// and the atom IDs of the terms, as []float64 and []int slices. Unknown bond orders are NaN.
func (R *Result) Data() map[string]interface{} {
	ret := make(map[string]interface{})
	for _, k := range R.Kinds {
		rows := R.Rows(k)
		vals := make([]float64, len(rows))
		orders := make([][]float64, len(orderNames[k]))
		idx := make([][]int, k.NAtoms())
		for i := range orders {
			orders[i] = make([]float64, len(rows))
		}
		for i := range idx {
			idx[i] = make([]int, len(rows))
		}
		for n, r := range rows {
			vals[n] = r.Value
			for i, o := range r.Orders {
				orders[i][n] = float64(o)
				if o == terms.NoOrder {
					orders[i][n] = math.NaN()
				}
			}
			for i, a := range r.Term.Atoms {
				idx[i][n] = a
			}
		}
		ret[valueName[k]] = vals
		for i := range orders {
			ret[orderName(k, i)] = orders[i]
		}
		for i := range idx {
			ret[indexName(k, i)] = idx[i]
		}
	}
	return ret
}
