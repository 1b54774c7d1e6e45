/*
 * json_test.go, part of geoanal.
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
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chem "github.com/rmera/geoanal"
	"github.com/rmera/geoanal/analysis"
)

func TestMoleculeRoundTrip(Te *testing.T) {
	mol, err := chem.MolRead("../testdata/formaldehyde.mol")
	require.NoError(Te, err)
	mol.ConfName = "frame1"
	var buf bytes.Buffer
	if jerr := SendMolecule(mol, &buf); jerr != nil {
		Te.Fatal(jerr)
	}
	//header, 2 lines per atom, 1 per bond.
	assert.Equal(Te, 1+2*4+3, strings.Count(buf.String(), "\n"))
	mol2, jerr := DecodeMolecule(bufio.NewReader(&buf))
	if jerr != nil {
		Te.Fatal(jerr)
	}
	assert.Equal(Te, mol.Name, mol2.Name)
	assert.Equal(Te, "frame1", mol2.ConfName)
	require.Equal(Te, mol.Len(), mol2.Len())
	require.Equal(Te, mol.NBonds(), mol2.NBonds())
	for i := 0; i < mol.Len(); i++ {
		assert.Equal(Te, mol.Atom(i).Symbol, mol2.Atom(i).Symbol)
		for j := 0; j < 3; j++ {
			assert.InDelta(Te, mol.Position(i+1).At(0, j), mol2.Position(i+1).At(0, j), 1e-9)
		}
	}
	o, ok := mol2.BondOrder(1, 2)
	assert.True(Te, ok)
	assert.Equal(Te, 2, o)
}

func TestDecodeErrors(Te *testing.T) {
	cases := map[string]string{
		"truncated":   "{\"Name\":\"w\",\"NAtoms\":2,\"NBonds\":0}\n{\"ID\":1,\"Symbol\":\"O\"}\n{\"Coords\":[0,0,0]}\n",
		"coordinates": "{\"Name\":\"w\",\"NAtoms\":1,\"NBonds\":0}\n{\"ID\":1,\"Symbol\":\"O\"}\n{\"Coords\":[0,0]}\n",
		"garbage":     "not json\n",
		"negative":    "{\"Name\":\"w\",\"NAtoms\":-1,\"NBonds\":0}\n",
	}
	for name, in := range cases {
		_, jerr := DecodeMolecule(bufio.NewReader(strings.NewReader(in)))
		require.NotNil(Te, jerr, name)
		assert.True(Te, jerr.IsError, name)
		assert.True(Te, jerr.InInput, name)
		assert.Equal(Te, "DecodeMolecule", jerr.Function, name)
	}
	_, jerr := DecodeMolecule(bufio.NewReader(strings.NewReader(cases["coordinates"])))
	assert.Equal(Te, 3, jerr.Line)
	var back map[string]interface{}
	require.NoError(Te, json.Unmarshal(jerr.Marshal(), &back))
	assert.Equal(Te, true, back["InInput"])
}

func TestResults(Te *testing.T) {
	mol, err := chem.MolRead("../testdata/formaldehyde.mol")
	require.NoError(Te, err)
	res, err := analysis.ComputeGeometry(analysis.NewSystem(mol), nil, nil)
	require.NoError(Te, err)
	var buf bytes.Buffer
	if jerr := NewResults(res).Send(&buf); jerr != nil {
		Te.Fatal(jerr)
	}
	var back struct {
		System  string
		Data    map[string][]interface{}
		Skipped []string
	}
	require.NoError(Te, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(Te, mol.Name, back.System)
	assert.Len(Te, back.Data["bond_lengths"], 3)
	assert.Len(Te, back.Data["angles"], 3)
	assert.Len(Te, back.Data["oops"], 1)
	assert.Empty(Te, back.Skipped)
	assert.Contains(Te, back.Data["bond_orders"], 2.0)
}

func TestNullNaN(Te *testing.T) {
	f := nullNaN([]float64{1, math.NaN(), 2})
	require.Len(Te, f, 3)
	assert.Nil(Te, f[1])
	assert.Equal(Te, 2.0, *f[2])
	b, err := json.Marshal(f)
	require.NoError(Te, err)
	assert.Equal(Te, "[1,null,2]", string(b))
}
