/*
 * config.go, part of geoanal.
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
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/rmera/geoanal/terms"
)

// Values for Config.Target
const (
	TargetAll       = "all"
	TargetBonds     = "bonds"
	TargetAngles    = "angles"
	TargetDihedrals = "dihedrals"
	TargetBondsAngs = "bonds and angles"
	TargetSpecified = "specified terms"
)

// Values for Config.TableOutput
const (
	OutputNone     = "none"
	OutputSingle   = "to a single table"
	OutputSeparate = "each term to separate tables"
)

// Values for Config.OnDegenerate
const (
	DegenerateSkip  = "skip"
	DegenerateAbort = "abort"
)

// Config contains the options for a geometry analysis. A column option set to an
// empty string disables that column in the output tables.
type Config struct {
	Target        string `yaml:"target" validate:"oneof=all bonds angles dihedrals 'bonds and angles' 'specified terms'"`
	Specification string `yaml:"specification"`
	TableOutput   string `yaml:"table_output" validate:"oneof=none 'to a single table' 'each term to separate tables'"`

	IDColumn          string `yaml:"id_column"`
	IDs               string `yaml:"ids"`
	OnlyFirstID       bool   `yaml:"only_first_id"`
	TermTypeColumn    string `yaml:"term_type_column"`
	Index1Column      string `yaml:"indx1_column"`
	Index2Column      string `yaml:"indx2_column"`
	Index3Column      string `yaml:"indx3_column"`
	Index4Column      string `yaml:"indx4_column"`
	Element1Column    string `yaml:"el1_column"`
	Element2Column    string `yaml:"el2_column"`
	Element3Column    string `yaml:"el3_column"`
	Element4Column    string `yaml:"el4_column"`
	AtomIndicesColumn string `yaml:"atom_indices_column"`
	TermColumn        string `yaml:"term_column"`
	ValueColumn       string `yaml:"value_column"`

	Table         string `yaml:"table"`
	BondTable     string `yaml:"bond_table"`
	AngleTable    string `yaml:"angle_table"`
	DihedralTable string `yaml:"dihedral_table"`
	OOPTable      string `yaml:"oop_table"`

	OnDegenerate string `yaml:"on_degenerate" validate:"oneof=skip abort"`
	Parallel     bool   `yaml:"parallel"`
}

// DefaultConfig returns the default configuration: all the terms, no table output.
func DefaultConfig() *Config {
	return &Config{
		Target:        TargetAll,
		TableOutput:   OutputNone,
		IDs:           "<system.name>",
		OnlyFirstID:   true,
		TermColumn:    "Term",
		ValueColumn:   "Value (Å or º)",
		Table:         "valence terms",
		BondTable:     "bonds",
		AngleTable:    "angles",
		DihedralTable: "dihedrals",
		OOPTable:      "out-of-planes",
		OnDegenerate:  DegenerateSkip,
	}
}

// NewConfig returns the default configuration modified by each of mods, in order,
// after checking that it is valid.
func NewConfig(mods ...func(*Config)) (*Config, error) {
	c := DefaultConfig()
	for _, m := range mods {
		m(c)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadConfig reads a YAML configuration from r. Options not in the document keep
// their default values.
func LoadConfig(r io.Reader) (*Config, error) {
	c := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, newConfigError("", err.Error(), "LoadConfig")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// ReadConfig reads a YAML configuration from the file filename.
func ReadConfig(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := LoadConfig(f)
	if err != nil {
		var cerr *ConfigurationError
		if errors.As(err, &cerr) {
			cerr.Decorate("ReadConfig: " + filename)
		}
		return nil, err
	}
	return c, nil
}

var validate = validator.New()

// Validate checks the configuration, returning a *ConfigurationError for the
// first problem found.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			e := verrs[0]
			return newConfigError(e.Field(), fmt.Sprintf("%q is not one of %s", e.Value(), e.Param()), "Validate")
		}
		return newConfigError("", err.Error(), "Validate")
	}
	if c.Target == TargetSpecified && strings.TrimSpace(c.Specification) == "" {
		return newConfigError("Specification", "required when the target is "+TargetSpecified, "Validate")
	}
	switch c.TableOutput {
	case OutputSingle:
		if c.Table == "" {
			return newConfigError("Table", "a table name is needed to output to a single table", "Validate")
		}
	case OutputSeparate:
		fields := []string{"BondTable", "AngleTable", "DihedralTable", "OOPTable"}
		for k, name := range c.kindTables() {
			if name == "" {
				return newConfigError(fields[k], "a table name is needed for each term", "Validate")
			}
		}
	}
	return nil
}

// kindTables returns the table names for each term kind, indexed by terms.Kind.
func (c *Config) kindTables() []string {
	return []string{c.BondTable, c.AngleTable, c.DihedralTable, c.OOPTable}
}

// TableFor returns the name of the table where the terms of kind k go, or "" if
// there is no table output.
func (c *Config) TableFor(k terms.Kind) string {
	switch c.TableOutput {
	case OutputSingle:
		return c.Table
	case OutputSeparate:
		return c.kindTables()[k]
	}
	return ""
}

// Kinds returns the term kinds selected by the target.
func (c *Config) Kinds() []terms.Kind {
	switch c.Target {
	case TargetBonds:
		return []terms.Kind{terms.Bond}
	case TargetAngles:
		return []terms.Kind{terms.Angle}
	case TargetDihedrals:
		return []terms.Kind{terms.Dihedral}
	case TargetBondsAngs:
		return []terms.Kind{terms.Bond, terms.Angle}
	}
	return terms.Kinds
}

func (c *Config) indexColumns() [4]string {
	return [4]string{c.Index1Column, c.Index2Column, c.Index3Column, c.Index4Column}
}

func (c *Config) elementColumns() [4]string {
	return [4]string{c.Element1Column, c.Element2Column, c.Element3Column, c.Element4Column}
}
