/*
 * stats.go, part of geoanal.
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
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/rmera/geoanal/terms"
)

// Summary contains the statistics of the values of the terms of one kind with the same label.
type Summary struct {
	Kind   terms.Kind
	Label  string
	N      int
	Mean   float64
	StdDev float64 //0 for a single value
	Min    float64
	Max    float64
}

// Summarize returns the statistics of the values in res, grouped by kind and label.
// The groups of each kind are in the order in which their labels first appear.
func Summarize(res *Result) []Summary {
	var ret []Summary
	for _, k := range res.Kinds {
		var labels []string
		values := make(map[string][]float64)
		for _, r := range res.Rows(k) {
			if _, ok := values[r.Label]; !ok {
				labels = append(labels, r.Label)
			}
			values[r.Label] = append(values[r.Label], r.Value)
		}
		for _, l := range labels {
			v := values[l]
			s := Summary{Kind: k, Label: l, N: len(v), Min: floats.Min(v), Max: floats.Max(v)}
			if len(v) > 1 {
				s.Mean, s.StdDev = stat.MeanStdDev(v, nil)
			} else {
				s.Mean = v[0]
			}
			ret = append(ret, s)
		}
	}
	return ret
}
