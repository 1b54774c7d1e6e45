/*
 * analysis_test.go, part of geoanal.
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
	"bytes"
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	chem "github.com/rmera/geoanal"
	"github.com/rmera/geoanal/table"
	"github.com/rmera/geoanal/terms"
	v3 "github.com/rmera/geoanal/v3"
)

func system(Te *testing.T, name string, symbols []string, coords []float64, bonds [][3]int) *System {
	atoms := make([]*chem.Atom, len(symbols))
	for i, s := range symbols {
		atoms[i] = &chem.Atom{Symbol: s}
	}
	bs := make([]*chem.Bond, len(bonds))
	for i, b := range bonds {
		bs[i] = &chem.Bond{At1: b[0], At2: b[1], Order: b[2]}
	}
	top, err := chem.NewTopology(atoms, bs)
	require.NoError(Te, err)
	c := v3.Zeros(0)
	if len(coords) > 0 {
		c, err = v3.NewMatrix(coords)
		require.NoError(Te, err)
	}
	mol, err := chem.NewMolecule(top, c)
	require.NoError(Te, err)
	mol.Name = name
	return NewSystem(mol)
}

func triangle(Te *testing.T) *System {
	return system(Te, "cyclopropane", []string{"C", "C", "C"},
		[]float64{0, 0, 0, 1.5, 0, 0, 0.75, 1.5 * math.Sqrt(3) / 2, 0},
		[][3]int{{1, 2, 1}, {2, 3, 1}, {1, 3, 1}})
}

// chain is a planar, all-trans, 4-carbon chain.
func chain(Te *testing.T) *System {
	return system(Te, "butane", []string{"C", "C", "C", "C"},
		[]float64{-0.5, 1, 0, 0, 0, 0, 1.5, 0, 0, 2, -1, 0},
		[][3]int{{1, 2, 1}, {2, 3, 1}, {3, 4, 1}})
}

// trigonal is a planar formaldehyde, with the carbon as atom 2.
func trigonal(Te *testing.T) *System {
	return system(Te, "formaldehyde", []string{"H", "C", "O", "H"},
		[]float64{-0.59, 0.93, 0, 0, 0, 0, 1.205, 0, 0, -0.59, -0.93, 0},
		[][3]int{{1, 2, 1}, {2, 3, 2}, {2, 4, 1}})
}

func count(res *Result) [4]int {
	var ret [4]int
	for _, k := range terms.Kinds {
		ret[k] = len(res.Rows(k))
	}
	return ret
}

func TestTriangle(Te *testing.T) {
	res, err := ComputeGeometry(triangle(Te), nil, nil)
	require.NoError(Te, err)
	assert.Equal(Te, [4]int{3, 3, 0, 0}, count(res))
	for _, r := range res.Rows(terms.Angle) {
		assert.InDelta(Te, 60, r.Value, 1e-9)
	}
	var b bytes.Buffer
	require.NoError(Te, res.WriteReport(&b))
	assert.Contains(Te, b.String(), "There are no dihedrals in this system.")
	assert.Contains(Te, b.String(), "There are no out-of-planes in this system.")
}

func TestChain(Te *testing.T) {
	res, err := ComputeGeometry(chain(Te), DefaultConfig(), zap.NewNop())
	require.NoError(Te, err)
	assert.Equal(Te, [4]int{3, 2, 1, 0}, count(res))
	d := res.Rows(terms.Dihedral)[0]
	assert.InDelta(Te, 180, math.Abs(d.Value), 1e-9)
	assert.True(Te, d.Classified)
	assert.Equal(Te, "T", d.Conformation.Label())
	assert.Equal(Te, "C-C-C-C", d.Label)
	assert.Equal(Te, "1-2-3-4", d.Index)
	assert.Empty(Te, res.Skipped)

	var b bytes.Buffer
	require.NoError(Te, res.WriteReport(&b))
	lines := strings.Split(b.String(), "\n")
	assert.Contains(Te, lines, "    Atoms  Bond   Value")
	assert.Contains(Te, lines, "    -------------------")
	assert.Contains(Te, lines, "     1-2   C-C   1.1180")
	assert.Contains(Te, lines, "     Atoms   Dihedral   Value  Description")
	assert.Contains(Te, lines, "    1-2-3-4  C-C-C-C   180.00  antiperiplanar")
	assert.Contains(Te, b.String(), "Statistics:")
}

func TestTrigonal(Te *testing.T) {
	res, err := ComputeGeometry(trigonal(Te), nil, nil)
	require.NoError(Te, err)
	require.Len(Te, res.Rows(terms.OutOfPlane), 1)
	o := res.Rows(terms.OutOfPlane)[0]
	assert.InDelta(Te, 0, o.Value, 1e-6)
	assert.Equal(Te, "[C](-H)(-H)(=O)", o.Label)
	assert.Equal(Te, "oop1-2-4-3", o.Index)
	assert.Equal(Te, []int{1, 1, 2}, o.Orders)
}

func TestTargets(Te *testing.T) {
	for target, want := range map[string][4]int{
		TargetBonds:     {3, 0, 0, 0},
		TargetAngles:    {0, 2, 0, 0},
		TargetDihedrals: {0, 0, 1, 0},
		TargetBondsAngs: {3, 2, 0, 0},
	} {
		cfg, err := NewConfig(func(c *Config) { c.Target = target })
		require.NoError(Te, err)
		res, err := ComputeGeometry(chain(Te), cfg, nil)
		require.NoError(Te, err)
		assert.Equal(Te, want, count(res), target)
		assert.Equal(Te, cfg.Kinds(), res.Kinds)
	}
}

func TestSpecified(Te *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	cfg, err := NewConfig(func(c *Config) {
		c.Target = TargetSpecified
		c.Specification = "1-2 1-2-3 oop1-2-3-4"
	})
	require.NoError(Te, err)
	res, err := ComputeGeometry(trigonal(Te), cfg, zap.New(core))
	require.NoError(Te, err)
	assert.Equal(Te, [4]int{1, 1, 0, 1}, count(res))
	assert.InDelta(Te, 0, res.Rows(terms.OutOfPlane)[0].Value, 1e-6)
	assert.Equal(Te, 0, logs.Len())

	cfg.Specification = "1-2, 2-x 1-9 1-2-3-4"
	res, err = ComputeGeometry(trigonal(Te), cfg, zap.New(core))
	require.NoError(Te, err)
	assert.Equal(Te, [4]int{1, 0, 1, 0}, count(res))
	require.Len(Te, res.ParseErrs, 1)
	var perr *terms.ParseError
	assert.ErrorAs(Te, res.ParseErrs[0], &perr)
	require.Len(Te, res.Skipped, 1)
	assert.Equal(Te, []int{1, 9}, res.Skipped[0].Term.Atoms)
	assert.Equal(Te, 2, logs.FilterMessage("skipping term in specification").Len())
}

func TestDegenerate(Te *testing.T) {
	sys := system(Te, "broken", []string{"C", "C", "H"},
		[]float64{0, 0, 0, 0, 0, 0, 1, 0, 0},
		[][3]int{{1, 2, 1}, {1, 3, 1}})
	res, err := ComputeGeometry(sys, nil, nil)
	require.NoError(Te, err)
	assert.Equal(Te, [4]int{1, 0, 0, 0}, count(res))
	require.Len(Te, res.Skipped, 2)
	assert.True(Te, chem.IsDegenerate(res.Skipped[0].Err))

	cfg, err := NewConfig(func(c *Config) { c.OnDegenerate = DegenerateAbort })
	require.NoError(Te, err)
	_, err = ComputeGeometry(sys, cfg, nil)
	var derr *chem.DegenerateGeometryError
	assert.ErrorAs(Te, err, &derr)
}

func TestEmptySystem(Te *testing.T) {
	res, err := ComputeGeometry(system(Te, "nothing", nil, nil, nil), nil, nil)
	require.NoError(Te, err)
	assert.Equal(Te, 0, res.Len())
	var b bytes.Buffer
	require.NoError(Te, res.WriteReport(&b))
	assert.Contains(Te, b.String(), "There are no bonds in this system.")
}

func TestParallel(Te *testing.T) {
	sys := system(Te, "ethanol", []string{"C", "C", "O", "H", "H", "H", "H", "H", "H"},
		[]float64{
			-0.7480, 0.0151, 0.0, 0.7648, -0.1077, 0.0, 1.1697, 1.2568, 0.0,
			-1.1600, 1.0300, 0.0, -1.1300, -0.5100, 0.8800, -1.1300, -0.5100, -0.8800,
			1.1600, -0.6300, 0.8800, 1.1600, -0.6300, -0.8800, 2.1300, 1.2500, 0.0,
		},
		[][3]int{{1, 2, 1}, {2, 3, 1}, {1, 4, 1}, {1, 5, 1}, {1, 6, 1}, {2, 7, 1}, {2, 8, 1}, {3, 9, 1}})
	seq, err := ComputeGeometry(sys, nil, nil)
	require.NoError(Te, err)
	cfg, err := NewConfig(func(c *Config) { c.Parallel = true })
	require.NoError(Te, err)
	par, err := ComputeGeometry(sys, cfg, nil)
	require.NoError(Te, err)
	assert.Equal(Te, [4]int{8, 13, 12, 0}, count(seq))
	for _, k := range terms.Kinds {
		assert.Equal(Te, seq.Rows(k), par.Rows(k))
	}
}

func TestStoreSingleTable(Te *testing.T) {
	cfg, err := NewConfig(func(c *Config) {
		c.TableOutput = OutputSingle
		c.IDColumn = "Molecule ID"
		c.TermTypeColumn = "Type of term"
		c.Index1Column = "Indx1"
		c.Index4Column = "Indx4"
		c.Element2Column = "El2"
		c.AtomIndicesColumn = "atom indices"
	})
	require.NoError(Te, err)
	res, err := ComputeGeometry(chain(Te), cfg, nil)
	require.NoError(Te, err)
	set := table.NewSet()
	require.NoError(Te, StoreTables(res, cfg, set))
	require.Equal(Te, []string{"valence terms"}, set.Names())
	t := set.Table("valence terms")
	assert.Equal(Te, 6, t.NRows())
	assert.Equal(Te, []string{"Molecule ID", "Type of term", "Indx1", "El2", "atom indices", "Term", "Value (Å or º)", "Indx4"}, t.Columns())
	assert.Equal(Te, []string{"butane", "", "", "", "", ""}, t.Column("Molecule ID").Strings())
	assert.Equal(Te, []string{"bond", "bond", "bond", "angle", "angle", "dihedral"}, t.Column("Type of term").Strings())
	assert.Equal(Te, []int{0, 0, 0, 0, 0, 4}, t.Column("Indx4").Ints())
	assert.InDelta(Te, 1.5, t.Column("Value (Å or º)").Floats()[1], 1e-9)

	//a second system is appended, with its own first id.
	cfg.OnlyFirstID = false
	res2, err := ComputeGeometry(triangle(Te), cfg, nil)
	require.NoError(Te, err)
	require.NoError(Te, StoreTables(res2, cfg, set))
	assert.Equal(Te, 12, t.NRows())
	assert.Equal(Te, "cyclopropane", t.Column("Molecule ID").Strings()[11])
}

// The ids of configurations named with numbers look numeric once saved to a CSV file,
// but later runs must still append to the reloaded table.
func TestStoreReloadedCSV(Te *testing.T) {
	cfg, err := NewConfig(func(c *Config) {
		c.TableOutput = OutputSingle
		c.IDColumn = "ID"
		c.IDs = "<configuration.name>"
	})
	require.NoError(Te, err)
	file := filepath.Join(Te.TempDir(), "terms.csv")
	sys := chain(Te)
	for run, conf := range []string{"1", "2", "3"} {
		loaded, err := table.LoadOrNew(file, cfg.Table)
		require.NoError(Te, err)
		set := table.NewSet()
		set.Put(loaded)
		sys.Mol.ConfName = conf
		res, err := ComputeGeometry(sys, cfg, nil)
		require.NoError(Te, err)
		require.NoError(Te, StoreTables(res, cfg, set), "run %d", run+1)
		t := set.Table(cfg.Table)
		require.Equal(Te, 6*(run+1), t.NRows())
		require.NoError(Te, table.Save(t, file))
	}
	t, err := table.Load(file, cfg.Table)
	require.NoError(Te, err)
	ids := t.Column("ID")
	assert.Equal(Te, "1", ids.Text(0))
	assert.Equal(Te, "", ids.Text(1))
	assert.Equal(Te, "2", ids.Text(6))
	assert.Equal(Te, "3", ids.Text(12))
}

func TestStoreSeparateTables(Te *testing.T) {
	cfg, err := NewConfig(func(c *Config) {
		c.TableOutput = OutputSeparate
		c.TermColumn = ""
	})
	require.NoError(Te, err)
	res, err := ComputeGeometry(trigonal(Te), cfg, nil)
	require.NoError(Te, err)
	set := table.NewSet()
	require.NoError(Te, StoreTables(res, cfg, set))
	assert.Equal(Te, []string{"bonds", "angles", "dihedrals", "out-of-planes"}, set.Names())
	assert.Equal(Te, 3, set.Table("bonds").NRows())
	assert.Equal(Te, []string{"Value (Å or º)"}, set.Table("bonds").Columns())
	assert.Equal(Te, 0, set.Table("dihedrals").NRows())
}

func TestResolveID(Te *testing.T) {
	sys := chain(Te)
	id, err := sys.ResolveID("<system.name>/x")
	require.NoError(Te, err)
	assert.Equal(Te, "butane/x", id)
	_, err = sys.ResolveID("<configuration.name>")
	var cerr *ConfigurationError
	assert.ErrorAs(Te, err, &cerr)
	_, err = sys.ResolveID("<system.formula>")
	assert.ErrorAs(Te, err, &cerr)
	sys.Mol.ConfName = "conf1"
	id, err = sys.ResolveID("<system.name>-<configuration.name>")
	require.NoError(Te, err)
	assert.Equal(Te, "butane-conf1", id)

	cfg, err := NewConfig(func(c *Config) {
		c.TableOutput = OutputSingle
		c.IDColumn = "ID"
		c.IDs = "<nope>"
	})
	require.NoError(Te, err)
	res, err := ComputeGeometry(sys, cfg, nil)
	require.NoError(Te, err)
	assert.ErrorAs(Te, StoreTables(res, cfg, table.NewSet()), &cerr)
}

func TestConfig(Te *testing.T) {
	c := DefaultConfig()
	require.NoError(Te, c.Validate())
	assert.Equal(Te, terms.Kinds, c.Kinds())
	assert.Equal(Te, "", c.TableFor(terms.Bond))

	var cerr *ConfigurationError
	_, err := NewConfig(func(c *Config) { c.Target = "everything" })
	require.True(Te, errors.As(err, &cerr))
	assert.Equal(Te, "Target", cerr.Field)
	_, err = NewConfig(func(c *Config) { c.Target = TargetSpecified })
	assert.ErrorAs(Te, err, &cerr)
	_, err = NewConfig(func(c *Config) { c.TableOutput = OutputSeparate; c.AngleTable = "" })
	assert.ErrorAs(Te, err, &cerr)
	_, err = NewConfig(func(c *Config) { c.OnDegenerate = "ignore" })
	assert.ErrorAs(Te, err, &cerr)
	_, err = ComputeGeometry(chain(Te), &Config{}, nil)
	assert.ErrorAs(Te, err, &cerr)
}

func TestLoadConfig(Te *testing.T) {
	doc := `
target: specified terms
specification: 1-2 2-3
table_output: each term to separate tables
id_column: Molecule ID
only_first_id: false
bond_table: my bonds
`
	c, err := LoadConfig(strings.NewReader(doc))
	require.NoError(Te, err)
	assert.Equal(Te, TargetSpecified, c.Target)
	assert.Equal(Te, "1-2 2-3", c.Specification)
	assert.False(Te, c.OnlyFirstID)
	assert.Equal(Te, "my bonds", c.TableFor(terms.Bond))
	assert.Equal(Te, "angles", c.TableFor(terms.Angle))
	assert.Equal(Te, "Value (Å or º)", c.ValueColumn)

	c, err = LoadConfig(strings.NewReader(""))
	require.NoError(Te, err)
	assert.Equal(Te, DefaultConfig(), c)

	var cerr *ConfigurationError
	_, err = LoadConfig(strings.NewReader("tagret: all\n"))
	assert.ErrorAs(Te, err, &cerr)
	_, err = LoadConfig(strings.NewReader("table_output: sometimes\n"))
	assert.ErrorAs(Te, err, &cerr)
}

func TestRegistry(Te *testing.T) {
	reg := MapRegistry{}
	require.NoError(Te, RegisterResults(reg))
	assert.Len(Te, reg, 26)
	assert.ElementsMatch(Te, ResultNames(), reg.Names())
	assert.Equal(Te, Metadata{"The bond lengths", "[n_bonds]", "float", "Å"}, reg["bond_lengths"])
	assert.Equal(Te, Metadata{"The bond orders of k, l", "[n_dihedrals]", "float", ""}, reg["dihedral_bond_orders_kl"])
	assert.Equal(Te, Metadata{"The oop index l", "[n_oops]", "integer", ""}, reg["oop_index_l"])
	assert.Error(Te, RegisterResults(reg))
}

func TestData(Te *testing.T) {
	res, err := ComputeGeometry(trigonal(Te), nil, nil)
	require.NoError(Te, err)
	data := res.Data()
	assert.Len(Te, data, 26)
	assert.Equal(Te, []int{2, 2, 2}, data["bond_index_i"])
	assert.Equal(Te, []int{1, 3, 4}, data["bond_index_j"])
	assert.Equal(Te, []float64{1, 2, 1}, data["bond_orders"])
	assert.Len(Te, data["oops"], 1)
	assert.Equal(Te, []float64{2}, data["oop_bond_orders_kl"])
	assert.Empty(Te, data["dihedrals"])
}

func TestSummarize(Te *testing.T) {
	res, err := ComputeGeometry(chain(Te), nil, nil)
	require.NoError(Te, err)
	s := Summarize(res)
	require.Len(Te, s, 3)
	assert.Equal(Te, terms.Bond, s[0].Kind)
	assert.Equal(Te, "C-C", s[0].Label)
	assert.Equal(Te, 3, s[0].N)
	assert.InDelta(Te, (2*math.Sqrt(1.25)+1.5)/3, s[0].Mean, 1e-9)
	assert.InDelta(Te, 1.5, s[0].Max, 1e-9)
	assert.Equal(Te, 0.0, s[2].StdDev)
}
