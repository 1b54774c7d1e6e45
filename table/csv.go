/*
 * csv.go, part of geoanal.
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
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
)

func writeCSV(t *Table, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns()); err != nil {
		return err
	}
	rec := make([]string, len(t.cols))
	for i := 0; i < t.nrows; i++ {
		for j, c := range t.cols {
			rec[j] = c.Text(i)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// readCSV reads a table with a header line. CSV files have no types, so each column
// gets the narrowest type that holds all its cells: int if they are all integers,
// float if they are all numbers or empty (empty cells become NaN), string otherwise.
// The columns are marked as inferred, so appending a string to a numeric one turns it
// into a string column.
func readCSV(name string, r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	t := New(name)
	if len(recs) == 0 {
		return t, nil
	}
	header, recs := recs[0], recs[1:]
	for j, h := range header {
		cells := make([]string, len(recs))
		for i, rec := range recs {
			cells[i] = rec[j]
		}
		c := &Column{Name: h, Type: inferType(cells), inferred: true}
		for _, s := range cells {
			switch c.Type {
			case Int:
				v, _ := strconv.Atoi(s)
				c.ints = append(c.ints, v)
			case Float:
				v := math.NaN()
				if s != "" {
					v, _ = strconv.ParseFloat(s, 64)
				}
				c.floats = append(c.floats, v)
			default:
				c.strs = append(c.strs, s)
			}
		}
		if _, dup := t.index[h]; dup {
			return nil, fmt.Errorf("table %s: repeated column %q", name, h)
		}
		t.index[h] = len(t.cols)
		t.cols = append(t.cols, c)
	}
	t.nrows = len(recs)
	return t, nil
}

func inferType(cells []string) Type {
	ints, floats, empty := true, true, 0
	for _, s := range cells {
		if s == "" {
			empty++
			ints = false
			continue
		}
		if _, err := strconv.Atoi(s); err != nil {
			ints = false
		}
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			floats = false
		}
	}
	switch {
	case empty == len(cells):
		return String
	case ints:
		return Int
	case floats:
		return Float
	}
	return String
}
