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
Package analysis runs the geometry analysis of a molecule: it selects the valence terms
(bonds, angles, dihedrals and out-of-plane terms) from the connectivity, or from an
explicit list, evaluates them on the coordinates, classifies the dihedrals, and
renders the results as rows, tables and a text report.

	cfg, err := analysis.LoadConfig(r)
	...
	res, err := analysis.ComputeGeometry(analysis.NewSystem(mol), cfg, logger)
	...
	err = res.WriteReport(os.Stdout)

The configuration mirrors the options of the analysis: which terms to compute,
and which table columns to fill. See Config.
*/
package analysis
