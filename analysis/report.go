/*
 * report.go, part of geoanal.
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
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/rmera/geoanal/terms"
)

func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

func formatValue(k terms.Kind, v float64) string {
	if k == terms.Bond {
		return fmt.Sprintf("%.4f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

// writeKind writes the table for the terms of kind k. Indices and labels are centered,
// values right-aligned and descriptions left-aligned.
func (R *Result) writeKind(w io.Writer, k terms.Kind) {
	rows := R.Rows(k)
	fmt.Fprintf(w, "%s:\n", strings.ToUpper(k.Plural()[:1])+k.Plural()[1:])
	if len(rows) == 0 {
		fmt.Fprintf(w, "    There are no %s in this system.\n\n", k.Plural())
		return
	}
	desc := k == terms.Dihedral
	wa, wl, wv, wd := len("Atoms"), utf8.RuneCountInString(k.Title()), len("Value"), len("Description")
	vals := make([]string, len(rows))
	for i, r := range rows {
		vals[i] = formatValue(k, r.Value)
		wa = max(wa, len(r.Index))
		wl = max(wl, utf8.RuneCountInString(r.Label))
		wv = max(wv, len(vals[i]))
		if desc {
			wd = max(wd, len(r.Conformation.String()))
		}
	}
	line := func(a, l, v, d string) {
		s := "    " + center(a, wa) + "  " + center(l, wl) + "  " + fmt.Sprintf("%*s", wv, v)
		if desc {
			s += "  " + fmt.Sprintf("%-*s", wd, d)
		}
		fmt.Fprintln(w, strings.TrimRight(s, " "))
	}
	line("Atoms", k.Title(), "Value", "Description")
	sep := wa + wl + wv + 4
	if desc {
		sep += wd + 2
	}
	fmt.Fprintln(w, "    "+strings.Repeat("-", sep))
	for i, r := range rows {
		d := ""
		if r.Classified {
			d = r.Conformation.String()
		}
		line(r.Index, r.Label, vals[i], d)
	}
	fmt.Fprintln(w)
}

// WriteReport writes a text report of the results: a table for each kind analyzed,
// the terms skipped, and the statistics of the values for each label.
func (R *Result) WriteReport(w io.Writer) error {
	bw := bufio.NewWriter(w)
	name := R.SystemName
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Fprintf(bw, "Geometry analysis of %s\n\n", name)
	for _, k := range R.Kinds {
		R.writeKind(bw, k)
	}
	if len(R.Skipped) > 0 {
		fmt.Fprintln(bw, "Terms skipped:")
		for _, s := range R.Skipped {
			fmt.Fprintf(bw, "    %s: %s\n", terms.IndexString(s.Term), s.Err)
		}
		fmt.Fprintln(bw)
	}
	sums := Summarize(R)
	if len(sums) > 0 {
		fmt.Fprintln(bw, "Statistics:")
		fmt.Fprintf(bw, "    %-13s %-18s %5s %10s %10s %10s %10s\n", "Kind", "Term", "N", "Mean", "Std. dev.", "Min", "Max")
		for _, s := range sums {
			fmt.Fprintf(bw, "    %-13s %-18s %5d %10.4f %10.4f %10.4f %10.4f\n", s.Kind.Title(), s.Label, s.N, s.Mean, s.StdDev, s.Min, s.Max)
		}
	}
	return bw.Flush()
}
