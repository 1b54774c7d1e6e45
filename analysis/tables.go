/*
 * tables.go, part of geoanal.
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

import "github.com/rmera/geoanal/table"

// StoreTables appends the rows of res to the tables of set, as set by cfg.TableOutput.
// Only the columns with a non-empty name in cfg are filled. If cfg.OnlyFirstID is set, the
// id is written only in the first row that the call adds to each table. Tables are
// created as needed, and rows are always appended after those already in a table.
func StoreTables(res *Result, cfg *Config, set *table.Set) error {
	if cfg.TableOutput == OutputNone || cfg.TableOutput == "" {
		return nil
	}
	var id string
	if cfg.IDColumn != "" {
		var err error
		if id, err = res.system.ResolveID(cfg.IDs); err != nil {
			return err
		}
	}
	batches := make(map[string][]table.Row)
	var order []string
	for _, k := range res.Kinds {
		name := cfg.TableFor(k)
		if _, ok := batches[name]; !ok {
			order = append(order, name)
			batches[name] = nil
		}
		for _, r := range res.Rows(k) {
			batches[name] = append(batches[name], tableRow(r, cfg))
		}
	}
	for _, name := range order {
		rows := batches[name]
		if cfg.IDColumn != "" {
			for i, r := range rows {
				v := id
				if cfg.OnlyFirstID && i > 0 {
					v = ""
				}
				rows[i] = append(table.Row{{Column: cfg.IDColumn, Value: v}}, r...)
			}
		}
		t := set.Table(name)
		if err := t.Append(rows...); err != nil {
			return err
		}
	}
	return nil
}

func tableRow(r Row, cfg *Config) table.Row {
	row := make(table.Row, 0, 12)
	add := func(col string, v interface{}) {
		if col != "" {
			row = append(row, table.Field{Column: col, Value: v})
		}
	}
	add(cfg.TermTypeColumn, r.Term.Kind.String())
	icols := cfg.indexColumns()
	ecols := cfg.elementColumns()
	for i, a := range r.Term.Atoms {
		add(icols[i], a)
		add(ecols[i], r.Symbols[i])
	}
	add(cfg.AtomIndicesColumn, r.Index)
	add(cfg.TermColumn, r.Label)
	add(cfg.ValueColumn, r.Value)
	return row
}

