/*
 * text.go, part of geoanal.
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
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// writeText writes the table with fixed width columns separated by two blanks.
// Numbers are right-aligned and strings left-aligned.
func writeText(t *Table, w io.Writer) error {
	widths := make([]int, len(t.cols))
	for j, c := range t.cols {
		widths[j] = utf8.RuneCountInString(c.Name)
		for i := 0; i < t.nrows; i++ {
			widths[j] = max(widths[j], utf8.RuneCountInString(c.Text(i)))
		}
	}
	bw := bufio.NewWriter(w)
	line := make([]string, len(t.cols))
	for j, c := range t.cols {
		line[j] = pad(c.Name, widths[j], c.Type != String)
	}
	fmt.Fprintln(bw, strings.TrimRight(strings.Join(line, "  "), " "))
	for i := 0; i < t.nrows; i++ {
		for j, c := range t.cols {
			line[j] = pad(c.Text(i), widths[j], c.Type != String)
		}
		fmt.Fprintln(bw, strings.TrimRight(strings.Join(line, "  "), " "))
	}
	return bw.Flush()
}

func pad(s string, width int, right bool) string {
	if right {
		return fmt.Sprintf("%*s", width, s)
	}
	return fmt.Sprintf("%-*s", width, s)
}
