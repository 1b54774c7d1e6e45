/*
 * compute.go, part of geoanal.
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
	"fmt"
	"sync"

	"go.uber.org/zap"

	chem "github.com/rmera/geoanal"
	"github.com/rmera/geoanal/terms"
	v3 "github.com/rmera/geoanal/v3"
)

// Row is one evaluated term, canonicalized and rendered.
type Row struct {
	terms.Rendered
	Value float64 //Å for bonds, degrees for everything else

	//Only for dihedrals
	Conformation terms.Conformation
	Classified   bool
}

// Skipped is a term that could not be evaluated.
type Skipped struct {
	Term terms.Term
	Err  error
}

// Result contains the rows computed for a system, for each term kind.
type Result struct {
	SystemName string
	ConfName   string
	Kinds      []terms.Kind //the kinds analyzed, in order
	Skipped    []Skipped
	ParseErrs  []error //tokens of the specification that could not be read
	rows       [][]Row
	system     *System
}

// Rows returns the rows for the terms of kind k.
func (R *Result) Rows(k terms.Kind) []Row {
	return R.rows[k]
}

// Analyzed returns whether terms of kind k were requested.
func (R *Result) Analyzed(k terms.Kind) bool {
	for _, v := range R.Kinds {
		if v == k {
			return true
		}
	}
	return false
}

// Len returns the total number of rows.
func (R *Result) Len() int {
	n := 0
	for _, r := range R.rows {
		n += len(r)
	}
	return n
}

// ComputeGeometry evaluates the valence terms of sys selected by cfg. With a nil cfg the
// default configuration is used, and a nil log logs nothing.
// Terms with degenerate geometries are skipped, and listed in Result.Skipped, unless
// cfg.OnDegenerate is "abort", in which case the error is returned. A system without
// atoms or bonds gives an empty result, not an error.
func ComputeGeometry(sys *System, cfg *Config, log *zap.Logger) (*Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, chem.ErrDecorate(err, "ComputeGeometry")
	}
	log = log.With(zap.String("system", sys.Name()))
	res := &Result{
		SystemName: sys.Name(),
		ConfName:   sys.ConfName(),
		rows:       make([][]Row, len(terms.Kinds)),
		system:     sys,
	}
	var todo *terms.Enumeration
	if cfg.Target == TargetSpecified {
		todo = res.specified(sys, cfg.Specification, log)
		res.Kinds = terms.Kinds
	} else {
		todo = terms.Enumerate(sys.graph)
		res.Kinds = cfg.Kinds()
	}
	skipped := make([][]Skipped, len(terms.Kinds))
	errs := make([]error, len(terms.Kinds))
	eval := func(k terms.Kind) {
		res.rows[k], skipped[k], errs[k] = evaluate(sys, k, terms.Unique(todo.Of(k), sys.Mol), cfg.OnDegenerate == DegenerateAbort, log)
	}
	if cfg.Parallel {
		var wg sync.WaitGroup
		for _, k := range res.Kinds {
			wg.Add(1)
			go func(k terms.Kind) {
				defer wg.Done()
				eval(k)
			}(k)
		}
		wg.Wait()
	} else {
		for _, k := range res.Kinds {
			eval(k)
			if errs[k] != nil {
				break
			}
		}
	}
	//merged in kind order, so the result doesn't depend on the goroutine schedule.
	for _, k := range res.Kinds {
		if errs[k] != nil {
			return nil, chem.ErrDecorate(errs[k], "ComputeGeometry")
		}
		res.Skipped = append(res.Skipped, skipped[k]...)
		log.Debug("terms evaluated", zap.Stringer("kind", k), zap.Int("count", len(res.rows[k])), zap.Int("skipped", len(skipped[k])))
	}
	return res, nil
}

// specified parses the specification, dropping, with a warning, tokens that can't be read
// and terms with atoms that are not in the system.
func (R *Result) specified(sys *System, spec string, log *zap.Logger) *terms.Enumeration {
	list, errs := terms.ParseSpec(spec)
	for _, err := range errs {
		log.Warn("skipping term in specification", zap.Error(err))
	}
	R.ParseErrs = errs
	E := new(terms.Enumeration)
	natoms := sys.Mol.Len()
	for _, t := range list {
		ok := true
		for _, a := range t.Atoms {
			if a > natoms {
				ok = false
				err := fmt.Errorf("atom %d out of range for a system of %d atoms", a, natoms)
				R.Skipped = append(R.Skipped, Skipped{Term: t, Err: err})
				log.Warn("skipping term in specification", zap.Stringer("term", t), zap.Error(err))
				break
			}
		}
		if ok {
			E.Add(t)
		}
	}
	return E
}

// value evaluates the canonical term t on the coordinates of sys.
func value(sys *System, t terms.Term) (float64, error) {
	p := make([]*v3.Matrix, len(t.Atoms))
	for i, a := range t.Atoms {
		p[i] = sys.Mol.Position(a)
	}
	switch t.Kind {
	case terms.Bond:
		return chem.Distance(p[0], p[1])
	case terms.Angle:
		return chem.Angle(p[0], p[1], p[2])
	case terms.Dihedral:
		return chem.Dihedral(p[0], p[1], p[2], p[3])
	case terms.OutOfPlane:
		return chem.OutOfPlane(p[0], p[1], p[2], p[3])
	}
	return 0, fmt.Errorf("unknown term kind %v", t.Kind)
}

func evaluate(sys *System, k terms.Kind, list []terms.Term, abort bool, log *zap.Logger) ([]Row, []Skipped, error) {
	rows := make([]Row, 0, len(list))
	var skipped []Skipped
	for _, t := range list {
		r := Row{Rendered: terms.Render(t, sys.Mol, sys.Mol)}
		v, err := value(sys, r.Term)
		if err != nil {
			if !chem.IsDegenerate(err) || abort {
				return nil, nil, chem.ErrDecorate(err, "evaluate: "+r.Index)
			}
			log.Warn("skipping degenerate term", zap.String("term", r.Index), zap.Error(err))
			skipped = append(skipped, Skipped{Term: r.Term, Err: err})
			continue
		}
		r.Value = v
		if k == terms.Dihedral {
			r.Conformation = terms.Classify(v)
			r.Classified = true
		}
		rows = append(rows, r)
	}
	return rows, skipped, nil
}
