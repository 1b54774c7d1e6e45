/*
 * system.go, part of geoanal.
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
	"regexp"

	chem "github.com/rmera/geoanal"
	"github.com/rmera/geoanal/chemgraph"
)

// System is a molecule prepared for analysis, with its bond graph.
// It is read-only, and can be shared by concurrent analyses.
type System struct {
	Mol   *chem.Molecule
	graph *chemgraph.Graph
}

// NewSystem returns a System for mol. The molecule must not be modified afterwards.
func NewSystem(mol *chem.Molecule) *System {
	return &System{Mol: mol, graph: chemgraph.New(mol.Topology)}
}

// Name returns the name of the system.
func (S *System) Name() string { return S.Mol.Name }

// ConfName returns the name of the configuration.
func (S *System) ConfName() string { return S.Mol.ConfName }

var tokenRe = regexp.MustCompile(`<[^<>]*>`)

// ResolveID replaces the tokens <system.name> and <configuration.name> in the template
// with the names of the system. Any other token, or a token for a name that is empty,
// gives a *ConfigurationError.
func (S *System) ResolveID(template string) (string, error) {
	var err error
	ret := tokenRe.ReplaceAllStringFunc(template, func(tok string) string {
		var v string
		switch tok {
		case "<system.name>":
			v = S.Name()
		case "<configuration.name>":
			v = S.ConfName()
		default:
			if err == nil {
				err = newConfigError("IDs", "unknown token "+tok, "ResolveID")
			}
			return tok
		}
		if v == "" && err == nil {
			err = newConfigError("IDs", "the system has no value for "+tok, "ResolveID")
		}
		return v
	})
	if err != nil {
		return "", err
	}
	return ret, nil
}
