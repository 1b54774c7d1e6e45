/*
 * json.go, part of geoanal.
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

package chemjson

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	chem "github.com/rmera/geoanal"
	"github.com/rmera/geoanal/analysis"
	"github.com/rmera/geoanal/terms"
	v3 "github.com/rmera/geoanal/v3"
)

// Header is the first line of a serialized molecule.
type Header struct {
	Name     string
	ConfName string `json:",omitempty"`
	NAtoms   int
	NBonds   int
}

// Coords is a ready-to-serialize container for the coordinates of an atom.
type Coords struct {
	Coords []float64
}

// Bond is a ready-to-serialize container for a bond.
type Bond struct {
	At1   int
	At2   int
	Order int
}

// Error is an easily JSON-serializable error type.
type Error struct {
	deco          []string
	IsError       bool //If this is false (no error) all the other fields will be at their zero-values.
	InInput       bool //If error, was it in reading the molecule?
	InProcess     bool
	InPostProcess bool   //was it in preparing the output?
	Line          int    //line of the input where the error happened, if InInput
	Function      string //which go function gave the error
	Message       string //the error itself
}

// Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec != "" {
		J.deco = append(J.deco, dec)
	}
	return J.deco
}

// Marshal serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - ")) // an error while serializing an error.
	}
	return ret
}

// NewError takes an error and some additional info to create a json-marshal-able error.
// where is "input", "postprocess" or anything else for processing errors.
func NewError(where, function string, err error) *Error {
	jerr := &Error{IsError: true, Function: function, Message: err.Error(), deco: []string{function}}
	switch where {
	case "input":
		jerr.InInput = true
	case "postprocess":
		jerr.InPostProcess = true
	default:
		jerr.InProcess = true
	}
	return jerr
}

// DecodeMolecule reads a JSON molecule from stream into a molecule.
func DecodeMolecule(stream *bufio.Reader) (*chem.Molecule, *Error) {
	const funcname = "DecodeMolecule" //for the error
	line := 0
	next := func(v interface{}) *Error {
		line++
		b, err := stream.ReadBytes('\n')
		if err != nil && !(err == io.EOF && len(b) > 0) {
			jerr := NewError("input", funcname, fmt.Errorf("unexpected end of input: %w", err))
			jerr.Line = line
			return jerr
		}
		if err = json.Unmarshal(b, v); err != nil {
			jerr := NewError("input", funcname, err)
			jerr.Line = line
			return jerr
		}
		return nil
	}
	h := new(Header)
	if err := next(h); err != nil {
		return nil, err
	}
	if h.NAtoms < 0 || h.NBonds < 0 {
		return nil, NewError("input", funcname, fmt.Errorf("invalid header %+v", *h))
	}
	atoms := make([]*chem.Atom, 0, h.NAtoms)
	rawcoords := make([]float64, 0, 3*h.NAtoms)
	for i := 0; i < h.NAtoms; i++ {
		at := new(chem.Atom)
		if err := next(at); err != nil {
			return nil, err
		}
		at.Symbol = chem.NormalizeSymbol(at.Symbol)
		atoms = append(atoms, at)
		ctemp := new(Coords)
		if err := next(ctemp); err != nil {
			return nil, err
		}
		if len(ctemp.Coords) != 3 {
			jerr := NewError("input", funcname, fmt.Errorf("atom %d has %d coordinates", i+1, len(ctemp.Coords)))
			jerr.Line = line
			return nil, jerr
		}
		rawcoords = append(rawcoords, ctemp.Coords...)
	}
	bonds := make([]*chem.Bond, 0, h.NBonds)
	for i := 0; i < h.NBonds; i++ {
		b := new(Bond)
		if err := next(b); err != nil {
			return nil, err
		}
		bonds = append(bonds, &chem.Bond{At1: b.At1, At2: b.At2, Order: b.Order})
	}
	top, err := chem.NewTopology(atoms, bonds)
	if err != nil {
		return nil, NewError("input", funcname, err)
	}
	coords := v3.Zeros(0)
	if len(rawcoords) > 0 {
		if coords, err = v3.NewMatrix(rawcoords); err != nil {
			return nil, NewError("input", funcname, err)
		}
	}
	mol, err := chem.NewMolecule(top, coords)
	if err != nil {
		return nil, NewError("input", funcname, err)
	}
	mol.Name = h.Name
	mol.ConfName = h.ConfName
	return mol, nil
}

// SendMolecule encodes mol and writes it to out, in the format read by DecodeMolecule.
func SendMolecule(mol *chem.Molecule, out io.Writer) *Error {
	const funcname = "SendMolecule"
	enc := json.NewEncoder(out)
	h := &Header{Name: mol.Name, ConfName: mol.ConfName, NAtoms: mol.Len(), NBonds: mol.NBonds()}
	if err := enc.Encode(h); err != nil {
		return NewError("postprocess", funcname, err)
	}
	c := new(Coords)
	for i := 0; i < mol.Len(); i++ {
		if err := enc.Encode(mol.Atom(i)); err != nil {
			return NewError("postprocess", funcname, err)
		}
		p := mol.Position(i + 1)
		c.Coords = []float64{p.At(0, 0), p.At(0, 1), p.At(0, 2)}
		if err := enc.Encode(c); err != nil {
			return NewError("postprocess", funcname, err)
		}
	}
	for _, b := range mol.Bonds() {
		if err := enc.Encode(&Bond{At1: b.At1, At2: b.At2, Order: b.Order}); err != nil {
			return NewError("postprocess", funcname, err)
		}
	}
	return nil
}

// Results is the information passed back to the calling program after an analysis.
// Unknown bond orders are sent as null.
type Results struct {
	System        string
	ConfName      string `json:",omitempty"`
	Data          map[string]interface{}
	Conformations []string `json:",omitempty"` //labels of the dihedrals, in the same order
	Skipped       []string `json:",omitempty"`
}

// NewResults collects the information in res to be sent.
func NewResults(res *analysis.Result) *Results {
	J := &Results{System: res.SystemName, ConfName: res.ConfName, Data: make(map[string]interface{})}
	for k, v := range res.Data() {
		if f, ok := v.([]float64); ok {
			J.Data[k] = nullNaN(f)
			continue
		}
		J.Data[k] = v
	}
	if res.Analyzed(terms.Dihedral) {
		for _, r := range res.Rows(terms.Dihedral) {
			J.Conformations = append(J.Conformations, r.Conformation.Label())
		}
	}
	for _, s := range res.Skipped {
		J.Skipped = append(J.Skipped, terms.IndexString(s.Term)+": "+s.Err.Error())
	}
	return J
}

func nullNaN(f []float64) []*float64 {
	ret := make([]*float64, len(f))
	for i := range f {
		if !math.IsNaN(f[i]) {
			ret[i] = &f[i]
		}
	}
	return ret
}

// Send marshals the results and writes them to out.
func (J *Results) Send(out io.Writer) *Error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(J); err != nil {
		return NewError("postprocess", "Results.Send", err)
	}
	return nil
}
