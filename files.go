/*
 * files.go, part of geoanal.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	v3 "github.com/rmera/geoanal/v3"
)

// XYZRead reads the first frame of the xyz file xyzname. The comment line is used as
// the name of the molecule. The molecule returned has no bonds, see Molecule.WithAssignedBonds.
func XYZRead(xyzname string) (*Molecule, error) {
	xyzfile, err := os.Open(xyzname)
	if err != nil {
		return nil, ErrDecorate(err, "XYZRead")
	}
	defer xyzfile.Close()
	mol, err := XYZReader(xyzfile)
	if err != nil {
		return nil, ErrDecorate(err, "XYZRead: "+xyzname)
	}
	return mol, nil
}

// XYZReader reads the first frame of an xyz file from r.
func XYZReader(r io.Reader) (*Molecule, error) {
	xyz := bufio.NewScanner(r)
	if !xyz.Scan() {
		return nil, NewError("Empty XYZ file", "XYZReader")
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(xyz.Text()))
	if err != nil || natoms < 0 {
		return nil, NewError("Ill formatted XYZ file: can't read the number of atoms", "XYZReader")
	}
	var name string
	if xyz.Scan() {
		name = strings.TrimSpace(xyz.Text())
	}
	atoms := make([]*Atom, natoms)
	coords := make([]float64, natoms*3)
	for i := 0; i < natoms; i++ {
		if !xyz.Scan() {
			return nil, NewError(fmt.Sprintf("Expected %d atoms, found %d", natoms, i), "XYZReader")
		}
		fields := strings.Fields(xyz.Text())
		if len(fields) < 4 {
			return nil, NewError(fmt.Sprintf("Atom line %d ill formed", i+1), "XYZReader")
		}
		atoms[i] = &Atom{ID: i + 1, Symbol: NormalizeSymbol(fields[0])}
		for j := 0; j < 3; j++ {
			coords[i*3+j], err = strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, NewError(fmt.Sprintf("Atom line %d: %s", i+1, err.Error()), "XYZReader")
			}
		}
	}
	return buildMolecule(atoms, nil, coords, name, "XYZReader")
}

// MolRead reads the first molecule of an MDL mol or SDF file (V2000).
func MolRead(molname string) (*Molecule, error) {
	f, err := os.Open(molname)
	if err != nil {
		return nil, ErrDecorate(err, "MolRead")
	}
	defer f.Close()
	mol, err := MolReader(f)
	if err != nil {
		return nil, ErrDecorate(err, "MolRead: "+molname)
	}
	return mol, nil
}

// MolReader reads the first molecule of an MDL mol or SDF (V2000) stream: the name line, the
// atom block and the bond block. Bond orders outside 0-MaxBondOrder (i.e. 8, "any") are read as 0.
func MolReader(r io.Reader) (*Molecule, error) {
	sc := bufio.NewScanner(r)
	lines := make([]string, 0, 3)
	for i := 0; i < 4; i++ {
		if !sc.Scan() {
			return nil, NewError("Unexpected end of file in the header", "MolReader")
		}
		lines = append(lines, sc.Text())
	}
	name := strings.TrimSpace(lines[0])
	counts := lines[3]
	if len(counts) < 6 {
		return nil, NewError("Counts line too short", "MolReader")
	}
	natoms, err1 := strconv.Atoi(strings.TrimSpace(counts[0:3]))
	nbonds, err2 := strconv.Atoi(strings.TrimSpace(counts[3:6]))
	if err1 != nil || err2 != nil {
		return nil, NewError("Can't read the counts line", "MolReader")
	}
	atoms := make([]*Atom, natoms)
	coords := make([]float64, natoms*3)
	for i := 0; i < natoms; i++ {
		if !sc.Scan() {
			return nil, NewError(fmt.Sprintf("Expected %d atoms, found %d", natoms, i), "MolReader")
		}
		fields := strings.Fields(sc.Text())
		if len(fields) < 4 {
			return nil, NewError(fmt.Sprintf("Atom line %d ill formed", i+1), "MolReader")
		}
		for j := 0; j < 3; j++ {
			c, err := strconv.ParseFloat(fields[j], 64)
			if err != nil {
				return nil, NewError(fmt.Sprintf("Atom line %d: %s", i+1, err.Error()), "MolReader")
			}
			coords[i*3+j] = c
		}
		atoms[i] = &Atom{ID: i + 1, Symbol: NormalizeSymbol(fields[3])}
	}
	bonds := make([]*Bond, 0, nbonds)
	for i := 0; i < nbonds; i++ {
		if !sc.Scan() {
			return nil, NewError(fmt.Sprintf("Expected %d bonds, found %d", nbonds, i), "MolReader")
		}
		line := sc.Text()
		if len(line) < 9 {
			return nil, NewError(fmt.Sprintf("Bond line %d ill formed", i+1), "MolReader")
		}
		//fixed columns, as 3-digit indexes can be glued together.
		vals := [3]int{}
		for j := range vals {
			v, err := strconv.Atoi(strings.TrimSpace(line[3*j : 3*j+3]))
			if err != nil {
				return nil, NewError(fmt.Sprintf("Bond line %d: %s", i+1, err.Error()), "MolReader")
			}
			vals[j] = v
		}
		if vals[2] < 0 || vals[2] > MaxBondOrder {
			vals[2] = 0
		}
		bonds = append(bonds, &Bond{At1: vals[0], At2: vals[1], Order: vals[2]})
	}
	return buildMolecule(atoms, bonds, coords, name, "MolReader")
}

func buildMolecule(atoms []*Atom, bonds []*Bond, coords []float64, name, caller string) (*Molecule, error) {
	top, err := NewTopology(atoms, bonds)
	if err != nil {
		return nil, ErrDecorate(err, caller)
	}
	var c *v3.Matrix
	if len(coords) == 0 {
		c = v3.Zeros(0)
	} else if c, err = v3.NewMatrix(coords); err != nil {
		return nil, ErrDecorate(err, caller)
	}
	mol, err := NewMolecule(top, c)
	if err != nil {
		return nil, ErrDecorate(err, caller)
	}
	mol.Name = name
	return mol, nil
}
