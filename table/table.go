/*
 * table.go, part of geoanal.
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
	"fmt"
	"math"
	"strconv"
)

// Type is the data type of a column.
type Type int

const (
	String Type = iota
	Int
	Float
)

func (t Type) String() string {
	switch t {
	case String:
		return "string"
	case Int:
		return "integer"
	case Float:
		return "number"
	}
	return "Type(" + strconv.Itoa(int(t)) + ")"
}

func typeFromName(name string) (Type, bool) {
	switch name {
	case "string":
		return String, true
	case "integer":
		return Int, true
	case "number":
		return Float, true
	}
	return String, false
}

// Column is a named, typed column. Only the slice for its type is used.
type Column struct {
	Name     string
	Type     Type
	strs     []string
	ints     []int
	floats   []float64
	inferred bool //the type was guessed from text cells, as when reading a CSV file
}

func (c *Column) len() int {
	switch c.Type {
	case Int:
		return len(c.ints)
	case Float:
		return len(c.floats)
	}
	return len(c.strs)
}

func (c *Column) appendDefault() {
	switch c.Type {
	case Int:
		c.ints = append(c.ints, 0)
	case Float:
		c.floats = append(c.floats, math.NaN())
	default:
		c.strs = append(c.strs, "")
	}
}

// convert changes the type of the column to typ, which must be Float for an Int column,
// or String.
func (c *Column) convert(typ Type) {
	switch typ {
	case Float:
		c.floats = make([]float64, len(c.ints))
		for i, v := range c.ints {
			c.floats[i] = float64(v)
		}
	case String:
		c.strs = make([]string, c.len())
		for i := range c.strs {
			c.strs[i] = c.Text(i)
		}
		c.floats = nil
	}
	c.ints = nil
	c.Type = typ
}

// set sets the last cell of the column to v, which must have the column's type.
// an int is accepted for a float column.
func (c *Column) set(v interface{}) error {
	last := c.len() - 1
	switch c.Type {
	case String:
		if s, ok := v.(string); ok {
			c.strs[last] = s
			return nil
		}
	case Int:
		if i, ok := v.(int); ok {
			c.ints[last] = i
			return nil
		}
	case Float:
		switch f := v.(type) {
		case float64:
			c.floats[last] = f
			return nil
		case int:
			c.floats[last] = float64(f)
			return nil
		}
	}
	return &TypeError{Column: c.Name, Want: c.Type, Got: v}
}

// Strings returns the values of a string column. It must not be modified.
func (c *Column) Strings() []string { return c.strs }

// Ints returns the values of an int column. It must not be modified.
func (c *Column) Ints() []int { return c.ints }

// Floats returns the values of a float column. It must not be modified.
func (c *Column) Floats() []float64 { return c.floats }

// Value returns the cell in row i, as a string, int or float64.
func (c *Column) Value(i int) interface{} {
	switch c.Type {
	case Int:
		return c.ints[i]
	case Float:
		return c.floats[i]
	}
	return c.strs[i]
}

// Text returns the cell in row i formatted as text. NaN gives an empty string.
func (c *Column) Text(i int) string {
	switch c.Type {
	case Int:
		return strconv.Itoa(c.ints[i])
	case Float:
		if math.IsNaN(c.floats[i]) {
			return ""
		}
		return strconv.FormatFloat(c.floats[i], 'f', -1, 64)
	}
	return c.strs[i]
}

// Field is a cell of a row to be appended.
type Field struct {
	Column string
	Value  interface{} //string, int or float64
}

// Row is a row to be appended, as an ordered list of fields.
type Row []Field

func typeOf(v interface{}) (Type, bool) {
	switch v.(type) {
	case string:
		return String, true
	case int:
		return Int, true
	case float64:
		return Float, true
	}
	return String, false
}

// Table is a named table with typed columns.
type Table struct {
	Name  string
	cols  []*Column
	index map[string]int
	nrows int
}

// New returns an empty table.
func New(name string) *Table {
	return &Table{Name: name, index: make(map[string]int)}
}

// NRows returns the number of rows.
func (T *Table) NRows() int { return T.nrows }

// Columns returns the column names, in order.
func (T *Table) Columns() []string {
	ret := make([]string, len(T.cols))
	for i, c := range T.cols {
		ret[i] = c.Name
	}
	return ret
}

// Column returns the column with the given name, or nil if there is none.
func (T *Table) Column(name string) *Column {
	i, ok := T.index[name]
	if !ok {
		return nil
	}
	return T.cols[i]
}

// AddColumn adds a column with the given type. Rows already in the table get the default
// value for the type. Adding an existing column with the same type does nothing.
func (T *Table) AddColumn(name string, typ Type) error {
	if name == "" {
		return fmt.Errorf("table %s: empty column name", T.Name)
	}
	if c := T.Column(name); c != nil {
		if c.Type != typ {
			return &TypeError{Column: name, Want: c.Type, Got: typ}
		}
		return nil
	}
	c := &Column{Name: name, Type: typ}
	for i := 0; i < T.nrows; i++ {
		c.appendDefault()
	}
	T.index[name] = len(T.cols)
	T.cols = append(T.cols, c)
	return nil
}

// Append adds the rows to the table. Columns not in the table are created, with
// the type of the value given. An int column that gets a float value becomes a
// float column. A column whose type was inferred when loading the table (CSV) becomes
// a string column if it gets a string, its numbers kept as text. Cells not given in a row
// get the default for their column: "", 0 or NaN. If an error is returned, the table
// is not modified.
func (T *Table) Append(rows ...Row) error {
	//first check everything, so an error doesn't leave a half-appended batch.
	newcols := make(map[string]Type)
	changed := make(map[string]Type) //new types for existing columns
	for _, r := range rows {
		for _, f := range r {
			typ, ok := typeOf(f.Value)
			if !ok {
				return &TypeError{Column: f.Column, Want: -1, Got: f.Value}
			}
			if f.Column == "" {
				return fmt.Errorf("table %s: empty column name", T.Name)
			}
			c := T.Column(f.Column)
			want, exists := newcols[f.Column]
			if c != nil {
				want, exists = c.Type, true
				if t, ok := changed[f.Column]; ok {
					want = t
				}
			}
			if !exists {
				newcols[f.Column] = typ
				continue
			}
			var to Type
			switch {
			case want == typ || (want == Float && typ == Int):
				continue
			case want == Int && typ == Float:
				to = Float
			case typ == String && c != nil && c.inferred:
				to = String
			default:
				return &TypeError{Column: f.Column, Want: want, Got: f.Value}
			}
			if c != nil {
				changed[f.Column] = to
			} else {
				newcols[f.Column] = to
			}
		}
	}
	for name, typ := range changed {
		T.Column(name).convert(typ)
	}
	for _, r := range rows {
		for _, f := range r {
			if T.Column(f.Column) == nil {
				T.AddColumn(f.Column, newcols[f.Column])
			}
		}
		for _, c := range T.cols {
			c.appendDefault()
		}
		T.nrows++
		for _, f := range r {
			T.Column(f.Column).set(f.Value)
		}
	}
	return nil
}

// Set is a collection of named tables.
type Set struct {
	tables map[string]*Table
	order  []string
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{tables: make(map[string]*Table)}
}

// Table returns the table with the given name, creating it if needed.
func (S *Set) Table(name string) *Table {
	if t, ok := S.tables[name]; ok {
		return t
	}
	t := New(name)
	S.Put(t)
	return t
}

// Put adds t to the set, replacing any table with the same name.
func (S *Set) Put(t *Table) {
	if _, ok := S.tables[t.Name]; !ok {
		S.order = append(S.order, t.Name)
	}
	S.tables[t.Name] = t
}

// Names returns the names of the tables, in the order they were added.
func (S *Set) Names() []string {
	return append([]string(nil), S.order...)
}

// Len returns the number of tables in the set.
func (S *Set) Len() int { return len(S.order) }
