/*
 * graph.go, part of geoanal.
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

// Package chemgraph builds the connectivity graph of a topology on gonum's graph
// packages, and answers the neighbor queries needed to enumerate angles, dihedrals
// and out-of-plane terms.
package chemgraph

import (
	"sort"

	chem "github.com/rmera/geoanal"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// Graph is the undirected bond graph of a topology. Nodes are atom IDs.
// It implements terms.Connectivity.
type Graph struct {
	g      *simple.UndirectedGraph
	bonds  [][2]int
	natoms int
}

// New returns the bond graph of top.
func New(top *chem.Topology) *Graph {
	G := &Graph{g: simple.NewUndirectedGraph(), natoms: top.Len()}
	for i := 1; i <= top.Len(); i++ {
		G.g.AddNode(simple.Node(i))
	}
	G.bonds = make([][2]int, 0, top.NBonds())
	for _, b := range top.Bonds() {
		//chem.NewTopology guarantees no self-bonds nor repeated pairs.
		G.g.SetEdge(G.g.NewEdge(simple.Node(b.At1), simple.Node(b.At2)))
		G.bonds = append(G.bonds, [2]int{b.At1, b.At2})
	}
	return G
}

// AtomIDs returns the IDs of all the atoms, in ascending order.
func (G *Graph) AtomIDs() []int {
	ret := make([]int, G.natoms)
	for i := range ret {
		ret[i] = i + 1
	}
	return ret
}

// Neighbors returns the IDs of the atoms bonded to id, in ascending order.
// The order is fixed so enumerations are reproducible.
func (G *Graph) Neighbors(id int) []int {
	if G.g.Node(int64(id)) == nil {
		return nil
	}
	nodes := graph.NodesOf(G.g.From(int64(id)))
	ret := make([]int, 0, len(nodes))
	for _, n := range nodes {
		ret = append(ret, int(n.ID()))
	}
	sort.Ints(ret)
	return ret
}

// Degree returns the number of bonds of the atom id.
func (G *Graph) Degree(id int) int {
	if G.g.Node(int64(id)) == nil {
		return 0
	}
	return G.g.From(int64(id)).Len()
}

// Bonds returns the bonded pairs, in the order of the topology's bond list.
func (G *Graph) Bonds() [][2]int {
	return G.bonds
}

// HasBond returns whether atoms i and j are bonded.
func (G *Graph) HasBond(i, j int) bool {
	return G.g.HasEdgeBetween(int64(i), int64(j))
}
