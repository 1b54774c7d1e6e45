/*
 * table_test.go, part of geoanal.
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

package table

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sample(Te *testing.T) *Table {
	t := New("valence terms")
	err := t.Append(
		Row{{"ID", "ethanol"}, {"Term", "C-C"}, {"Index 1", 1}, {"Value", 1.52}},
		Row{{"ID", ""}, {"Term", "C-O"}, {"Index 1", 2}, {"Value", 1.43}},
	)
	require.NoError(Te, err)
	return t
}

func TestAppendDefaults(Te *testing.T) {
	t := sample(Te)
	require.NoError(Te, t.Append(Row{{"Term", "H-C-C"}, {"Description", "synperiplanar"}}))
	assert.Equal(Te, 3, t.NRows())
	assert.Equal(Te, []string{"ID", "Term", "Index 1", "Value", "Description"}, t.Columns())
	assert.Equal(Te, []string{"", "", "synperiplanar"}, t.Column("Description").Strings())
	assert.Equal(Te, []int{1, 2, 0}, t.Column("Index 1").Ints())
	assert.True(Te, math.IsNaN(t.Column("Value").Floats()[2]))
	assert.Equal(Te, "", t.Column("Value").Text(2))
	assert.Nil(Te, t.Column("nope"))

	//an int goes into a float column, and a float turns an int column into a float one.
	require.NoError(Te, t.Append(Row{{"Value", 2}}))
	assert.Equal(Te, 2.0, t.Column("Value").Floats()[3])
	err := t.Append(Row{{"Term", "ok"}}, Row{{"Index 1", "one"}})
	var terr *TypeError
	assert.ErrorAs(Te, err, &terr)
	assert.Equal(Te, 4, t.NRows(), "a failed append must not change the table")
	require.NoError(Te, t.Append(Row{{"Index 1", 1.5}}))
	assert.Equal(Te, Float, t.Column("Index 1").Type)
	assert.Equal(Te, []float64{1, 2, 0, 0, 1.5}, t.Column("Index 1").Floats())
	require.NoError(Te, t.Append(Row{{"n", 1}}, Row{{"n", 0.5}}))
	assert.Equal(Te, Float, t.Column("n").Type)
	assert.Error(Te, t.Append(Row{{"x", []int{1}}}))
	assert.Error(Te, t.AddColumn("Term", Int))
	assert.NoError(Te, t.AddColumn("Term", String))
}

func TestSet(Te *testing.T) {
	S := NewSet()
	a := S.Table("bonds")
	assert.Same(Te, a, S.Table("bonds"))
	S.Table("angles")
	S.Put(New("bonds"))
	assert.Equal(Te, []string{"bonds", "angles"}, S.Names())
	assert.Equal(Te, 2, S.Len())
	assert.NotSame(Te, a, S.Table("bonds"))
}

func TestCSVRoundTrip(Te *testing.T) {
	t := sample(Te)
	require.NoError(Te, t.Append(Row{{"Term", "O-H"}}))
	name := filepath.Join(Te.TempDir(), "terms.csv")
	require.NoError(Te, Save(t, name))
	l, err := Load(name, "valence terms")
	require.NoError(Te, err)
	assert.Equal(Te, t.Columns(), l.Columns())
	assert.Equal(Te, 3, l.NRows())
	assert.Equal(Te, String, l.Column("ID").Type)
	assert.Equal(Te, Int, l.Column("Index 1").Type)
	assert.Equal(Te, Float, l.Column("Value").Type)
	assert.True(Te, math.IsNaN(l.Column("Value").Floats()[2]))
	//append to the loaded table
	require.NoError(Te, l.Append(Row{{"Term", "C-H"}, {"Value", 1.09}}))
	assert.Equal(Te, 4, l.NRows())
}

func TestCSVNumericStrings(Te *testing.T) {
	t := New("valence terms")
	require.NoError(Te, t.Append(Row{{"ID", "1"}, {"Value", 1.5}}, Row{{"ID", ""}, {"Value", 2.0}}))
	name := filepath.Join(Te.TempDir(), "terms.csv")
	require.NoError(Te, Save(t, name))
	l, err := Load(name, "valence terms")
	require.NoError(Te, err)
	//CSV has no types, so the ids come back as numbers.
	require.Equal(Te, Float, l.Column("ID").Type)
	require.NoError(Te, l.Append(Row{{"ID", "2"}, {"Value", 1.0}}, Row{{"ID", "x"}}))
	assert.Equal(Te, String, l.Column("ID").Type)
	assert.Equal(Te, []string{"1", "", "2", "x"}, l.Column("ID").Strings())
	//only inferred columns change; a number column made in memory keeps its type.
	assert.Equal(Te, Float, l.Column("Value").Type)
	var terr *TypeError
	assert.ErrorAs(Te, t.Append(Row{{"Value", "x"}}), &terr)
	assert.ErrorAs(Te, l.Append(Row{{"ID", 3}}), &terr)
	assert.Equal(Te, 4, l.NRows())
}

func TestJSONRoundTrip(Te *testing.T) {
	t := sample(Te)
	require.NoError(Te, t.Append(Row{{"Term", "O-H"}}))
	var b bytes.Buffer
	require.NoError(Te, writeJSON(t, &b))
	assert.True(Te, strings.HasPrefix(b.String(), `{"schema":{"fields":[{"name":"ID","type":"string"}`))
	assert.Contains(Te, b.String(), `"Value":null`)
	l, err := readJSON("x", &b)
	require.NoError(Te, err)
	assert.Equal(Te, t.Columns(), l.Columns())
	assert.Equal(Te, t.Column("Term").Strings(), l.Column("Term").Strings())
	assert.Equal(Te, []int{1, 2, 0}, l.Column("Index 1").Ints())
	assert.Equal(Te, 1.43, l.Column("Value").Floats()[1])
}

func TestCompressed(Te *testing.T) {
	dir := Te.TempDir()
	t := sample(Te)
	zname := filepath.Join(dir, "terms.json.zst")
	require.NoError(Te, Save(t, zname))
	raw, err := os.ReadFile(zname)
	require.NoError(Te, err)
	dec, err := zstd.NewReader(nil)
	require.NoError(Te, err)
	defer dec.Close()
	plain, err := dec.DecodeAll(raw, nil)
	require.NoError(Te, err)
	assert.Contains(Te, string(plain), `"schema"`)
	l, err := Load(zname, "t")
	require.NoError(Te, err)
	assert.Equal(Te, 2, l.NRows())

	gname := filepath.Join(dir, "terms.csv.gz")
	require.NoError(Te, Save(t, gname))
	l, err = Load(gname, "t")
	require.NoError(Te, err)
	assert.Equal(Te, []string{"C-C", "C-O"}, l.Column("Term").Strings())
}

func TestUnsupportedFormat(Te *testing.T) {
	dir := Te.TempDir()
	err := Save(sample(Te), filepath.Join(dir, "terms.parquet"))
	var ferr *UnsupportedFormatError
	require.True(Te, errors.As(err, &ferr))
	assert.Equal(Te, ".parquet", ferr.Ext)
	_, err = Load(filepath.Join(dir, "terms.txt"), "t")
	assert.ErrorAs(Te, err, &ferr)
	err = Save(sample(Te), filepath.Join(dir, "terms.bolt.zst"))
	assert.ErrorAs(Te, err, &ferr)
}

func TestText(Te *testing.T) {
	var b bytes.Buffer
	require.NoError(Te, writeText(sample(Te), &b))
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	require.Len(Te, lines, 3)
	assert.Equal(Te, "ID       Term  Index 1  Value", lines[0])
	assert.Equal(Te, "ethanol  C-C         1   1.52", lines[1])
	assert.Equal(Te, "         C-O         2   1.43", lines[2])
}

func TestXLSX(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "terms.xlsx")
	require.NoError(Te, Save(sample(Te), name))
	f, err := excelize.OpenFile(name)
	require.NoError(Te, err)
	defer f.Close()
	v, err := f.GetCellValue("valence terms", "B3")
	require.NoError(Te, err)
	assert.Equal(Te, "C-O", v)
	assert.Equal(Te, "a_b", sheetName("a/b"))
}

func TestBolt(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "results.bolt")
	t := sample(Te)
	require.NoError(Te, Save(t, name))
	other := New("angles")
	require.NoError(Te, other.Append(Row{{"Term", "H-C-H"}, {"Value", 109.5}}))
	require.NoError(Te, Save(other, name))
	l, err := Load(name, "valence terms")
	require.NoError(Te, err)
	assert.Equal(Te, t.Columns(), l.Columns())
	assert.Equal(Te, []string{"ethanol", ""}, l.Column("ID").Strings())
	a, err := Load(name, "angles")
	require.NoError(Te, err)
	assert.Equal(Te, 1, a.NRows())
	_, err = Load(name, "dihedrals")
	assert.Error(Te, err)
	l2, err := LoadOrNew(filepath.Join(Te.TempDir(), "none.csv"), "new")
	require.NoError(Te, err)
	assert.Equal(Te, 0, l2.NRows())
}
