/*
 * main.go, part of geoanal.
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

// Command geoanal reads molecules and prints the bonds, angles, dihedrals and out-of-plane
// terms found in them. Results can also be appended to tables, sent as JSON, and the dihedrals
// plotted.
//
// Usage:
//
//	geoanal [flags] file1.xyz file2.mol ...
//
// Molecules are read from .xyz, .mol, .sdf and .json (as written by chemjson) files. A "-"
// reads a JSON molecule from the standard input. Files without bonds get them assigned
// from the interatomic distances.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	chem "github.com/rmera/geoanal"
	"github.com/rmera/geoanal/analysis"
	"github.com/rmera/geoanal/chemjson"
	"github.com/rmera/geoanal/chemplot"
	"github.com/rmera/geoanal/table"
	"github.com/rmera/geoanal/terms"
)

var (
	flagConfig  = ""
	flagVerbose = false
	flagTables  = ""
	flagFormat  = ".csv"
	flagPlot    = ""
	flagJSON    = false
)

func init() {
	flag.StringVar(&flagConfig, "c", flagConfig,
		"A YAML file with the configuration of the analysis.")
	flag.BoolVar(&flagVerbose, "v", flagVerbose,
		"Print debugging information.")
	flag.StringVar(&flagTables, "tables", flagTables,
		"Directory where the tables will be written, if the configuration asks for tables.")
	flag.StringVar(&flagFormat, "format", flagFormat,
		"Extension of the table files, with an optional .zst or .gz suffix, i.e. .csv.zst.")
	flag.StringVar(&flagPlot, "plot", flagPlot,
		"If set, a histogram and the populations of the dihedrals are plotted to files with this prefix, ending in .png.")
	flag.BoolVar(&flagJSON, "json", flagJSON,
		"Write the results as JSON, one line per molecule, instead of the text report.")
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	cfg.Encoding = "console"
	return cfg.Build()
}

func main() {
	flag.Parse()
	log, err := newLogger(flagVerbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()
	if flag.NArg() == 0 {
		log.Fatal("No input file specified")
	}
	cfg := analysis.DefaultConfig()
	if flagConfig != "" {
		if cfg, err = analysis.ReadConfig(flagConfig); err != nil {
			log.Fatal("Can't read the configuration", zap.String("file", flagConfig), zap.String("error", chem.Trail(err)))
		}
	}
	set, err := loadTables(cfg, flagTables, flagFormat, log)
	if err != nil {
		log.Fatal("Can't load the tables", zap.Error(err))
	}
	var dihedrals []float64
	failed := 0
	for _, name := range flag.Args() {
		flog := log.With(zap.String("file", name))
		mol, err := readMolecule(name)
		if err != nil {
			flog.Error("Can't read the molecule", zap.String("error", chem.Trail(err)))
			failed++
			continue
		}
		res, err := analyze(mol, cfg, flog)
		if err != nil {
			flog.Error("Analysis failed", zap.String("error", chem.Trail(err)))
			failed++
			continue
		}
		if flagJSON {
			if jerr := chemjson.NewResults(res).Send(os.Stdout); jerr != nil {
				flog.Error("Can't send the results", zap.Error(jerr))
			}
		} else if err = res.WriteReport(os.Stdout); err != nil {
			flog.Error("Can't write the report", zap.Error(err))
		}
		if err = analysis.StoreTables(res, cfg, set); err != nil {
			flog.Error("Can't store the results in tables", zap.String("error", chem.Trail(err)))
		}
		if res.Analyzed(terms.Dihedral) {
			for _, r := range res.Rows(terms.Dihedral) {
				dihedrals = append(dihedrals, r.Value)
			}
		}
	}
	if err = saveTables(set, flagTables, flagFormat, log); err != nil {
		log.Fatal("Can't save the tables", zap.Error(err))
	}
	if flagPlot != "" && len(dihedrals) > 0 {
		if err = chemplot.DihedralHistogram(dihedrals, "Dihedrals", flagPlot+"_histogram.png"); err != nil {
			log.Error("Can't plot the dihedrals", zap.Error(err))
		}
		if err = chemplot.ConformerBars(dihedrals, "Conformations", flagPlot+"_conformations.png"); err != nil {
			log.Error("Can't plot the conformations", zap.Error(err))
		}
	}
	if failed > 0 {
		log.Warn("Some files could not be analyzed", zap.Int("failed", failed), zap.Int("total", flag.NArg()))
		os.Exit(1)
	}
}

// analyze assigns bonds to mol if it has none, and runs the analysis on it.
func analyze(mol *chem.Molecule, cfg *analysis.Config, log *zap.Logger) (*analysis.Result, error) {
	if mol.NBonds() == 0 && mol.Len() > 1 {
		var err error
		if mol, err = mol.WithAssignedBonds(); err != nil {
			return nil, err
		}
		log.Debug("bonds assigned", zap.Int("bonds", mol.NBonds()))
	}
	return analysis.ComputeGeometry(analysis.NewSystem(mol), cfg, log)
}

// readMolecule reads a molecule from name, in the format given by its extension.
func readMolecule(name string) (*chem.Molecule, error) {
	if name == "-" {
		return decodeJSON(os.Stdin)
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xyz":
		return chem.XYZRead(name)
	case ".mol", ".sdf":
		return chem.MolRead(name)
	case ".json":
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return decodeJSON(f)
	}
	return nil, fmt.Errorf("unknown format for file %s", name)
}

func decodeJSON(r io.Reader) (*chem.Molecule, error) {
	mol, jerr := chemjson.DecodeMolecule(bufio.NewReader(r))
	if jerr != nil {
		return nil, jerr
	}
	return mol, nil
}

func tableFile(dir, name, format string) string {
	return filepath.Join(dir, strings.ReplaceAll(name, " ", "_")+format)
}

// loadTables returns a set with the tables that cfg will write to, containing the rows
// previously saved to dir, so new results are appended after them. Tables in formats
// that can't be read again start empty, and will be overwritten.
func loadTables(cfg *analysis.Config, dir, format string, log *zap.Logger) (*table.Set, error) {
	set := table.NewSet()
	if cfg.TableOutput == analysis.OutputNone {
		return set, nil
	}
	if dir == "" {
		return nil, fmt.Errorf("the configuration asks for tables, but no -tables directory was given")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	for _, k := range cfg.Kinds() {
		name := cfg.TableFor(k)
		if seen[name] {
			continue
		}
		seen[name] = true
		t, err := table.LoadOrNew(tableFile(dir, name, format), name)
		if _, ok := err.(*table.UnsupportedFormatError); ok {
			log.Warn("Table format can't be read, the table will be overwritten", zap.String("table", name))
			continue
		} else if err != nil {
			return nil, err
		}
		set.Put(t)
	}
	return set, nil
}

func saveTables(set *table.Set, dir, format string, log *zap.Logger) error {
	for _, name := range set.Names() {
		file := tableFile(dir, name, format)
		if err := table.Save(set.Table(name), file); err != nil {
			return err
		}
		log.Info("table saved", zap.String("table", name), zap.String("file", file))
	}
	return nil
}
