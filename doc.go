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
Package chem is the main package of the geoanal library. It provides atom, bond, topology and
molecule structures, readers for some files used in computational chemistry, and the
geometric functions used to measure bond lengths, angles, dihedrals and out-of-plane angles.

	**geoanal Capabilities**

	Enumerates the bonds, angles, dihedrals and out-of-plane terms implied by a bond graph,
	or parses them from an explicit list (package terms).

	Gives every term one canonical orientation, based on element symbols, so tables are
	reproducible and free of duplicates.

	Computes distances, angles, dihedrals and Wilson out-of-plane angles. Degenerate
	geometries are reported as errors, never as NaN.

	Classifies dihedrals into the six conformational bins (synperiplanar, synclinal,
	anticlinal, antiperiplanar).

	Assigns bonds from interatomic distances when the input has no connectivity.

	Reads XYZ, MDL mol/SDF and JSON molecules.

	Tabulates results and writes them as CSV, JSON, XLSX or text, optionally compressed
	(package table), and plots dihedral distributions (package chemplot).

The coordinates of a molecule are kept in a v3.Matrix (package v3), where the atom with
id i is the vector i-1.
*/
package chem
