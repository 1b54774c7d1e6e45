/*
 * doc.go, part of geoanal.
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

/*
Package table is a small column store for the results of a geometry analysis.

A Table has typed, named columns (string, int or float), and grows by appending
rows. Appending is additive: a row can bring new columns, which are filled with
default values ("", 0 or NaN) in the rows that were already there, and the cells
a row doesn't set get the same defaults. A Set holds named tables.

Tables are saved according to the extension of the file name: .csv, .json
(a "schema" plus "data" document), .xlsx, .txt (fixed width) or .bolt (a bbolt
database with one bucket per table). A .zst or .gz suffix compresses the file.
The .csv, .json and .bolt formats can be loaded back, so new results can be
appended to an existing table.
*/
package table
