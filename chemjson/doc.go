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

//Package chemjson implements the serialization and unserialization of
//molecules and analysis results as line-delimited JSON. Its planned use
//is the communication of geoanal with other, independent programs, which
//can be written in languages other than Go, for instance via UNIX pipes.
//
//A molecule is sent as a header line, then, for each atom, one line with
//the atom and one with its coordinates, and then one line per bond:
//
//	{"Name":"water","NAtoms":3,"NBonds":2}
//	{"ID":1,"Symbol":"O","Name":""}
//	{"Coords":[0,0,0]}
//	...
//	{"At1":1,"At2":2,"Order":1}
//
//Results are sent as a single line.
package chemjson
