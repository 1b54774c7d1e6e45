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

package table

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
)

const pandasVersion = "1.4.0"

type fieldDoc struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type schemaDoc struct {
	Fields        []fieldDoc `json:"fields"`
	PandasVersion string     `json:"pandas_version,omitempty"`
}

func (T *Table) schema() schemaDoc {
	s := schemaDoc{Fields: make([]fieldDoc, len(T.cols)), PandasVersion: pandasVersion}
	for i, c := range T.cols {
		s.Fields[i] = fieldDoc{Name: c.Name, Type: c.Type.String()}
	}
	return s
}

// record returns row i as a JSON object, with the keys in column order. NaN is written as null.
func (T *Table) record(i int) ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for j, c := range T.cols {
		if j > 0 {
			b.WriteByte(',')
		}
		k, err := json.Marshal(c.Name)
		if err != nil {
			return nil, err
		}
		b.Write(k)
		b.WriteByte(':')
		v := c.Value(i)
		if f, ok := v.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
			b.WriteString("null")
			continue
		}
		val, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		b.Write(val)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// fromSchema returns an empty table with the columns described in s.
func fromSchema(name string, s schemaDoc) (*Table, error) {
	t := New(name)
	for _, f := range s.Fields {
		typ, ok := typeFromName(f.Type)
		if !ok {
			return nil, fmt.Errorf("table %s: column %q has unknown type %q", name, f.Name, f.Type)
		}
		if err := t.AddColumn(f.Name, typ); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// appendRecord decodes a JSON object written by record and appends it to t.
func (T *Table) appendRecord(data []byte) error {
	var rec map[string]json.RawMessage
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	row := make(Row, 0, len(rec))
	for _, c := range T.cols {
		raw, ok := rec[c.Name]
		if !ok || string(raw) == "null" {
			continue
		}
		var err error
		switch c.Type {
		case Int:
			var v int
			err = json.Unmarshal(raw, &v)
			row = append(row, Field{c.Name, v})
		case Float:
			var v float64
			err = json.Unmarshal(raw, &v)
			row = append(row, Field{c.Name, v})
		default:
			var v string
			err = json.Unmarshal(raw, &v)
			row = append(row, Field{c.Name, v})
		}
		if err != nil {
			return fmt.Errorf("table %s, column %q: %w", T.Name, c.Name, err)
		}
	}
	return T.Append(row)
}

// writeJSON writes the table as a document with a "schema" and a "data" array of records.
// This is the "table" orientation of pandas, so the files can be read by other tools.
func writeJSON(t *Table, w io.Writer) error {
	s, err := json.Marshal(t.schema())
	if err != nil {
		return err
	}
	var b bytes.Buffer
	b.WriteString(`{"schema":`)
	b.Write(s)
	b.WriteString(`,"data":[`)
	for i := 0; i < t.nrows; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		r, err := t.record(i)
		if err != nil {
			return err
		}
		b.Write(r)
	}
	b.WriteString("]}\n")
	_, err = b.WriteTo(w)
	return err
}

func readJSON(name string, r io.Reader) (*Table, error) {
	var doc struct {
		Schema schemaDoc         `json:"schema"`
		Data   []json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	t, err := fromSchema(name, doc.Schema)
	if err != nil {
		return nil, err
	}
	for _, d := range doc.Data {
		if err := t.appendRecord(d); err != nil {
			return nil, err
		}
	}
	return t, nil
}
