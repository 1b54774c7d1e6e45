/*
 * interfaces.go, part of geoanal.
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

package chem

import (
	"errors"
	"fmt"
	"strings"

	v3 "github.com/rmera/geoanal/v3"
)

// Atomer is the basic interface for a topology.
type Atomer interface {

	//Atom returns the Atom corresponding to the index i
	//of the Atom slice in the Topology. Should panic if
	//out of range.
	Atom(i int) *Atom

	Len() int
}

// Coorder can return the position of an atom given its id.
type Coorder interface {
	Position(id int) *v3.Matrix
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing its type or wrapping it around something else.
type Error interface {
	Error() string
	//Decorate adds the name of a function in the calling stack, optionally followed by
	//": extra info", and returns the whole decoration slice. With an empty string it
	//only returns the current slice.
	Decorate(string) []string
}

// CError is the general error type of the chem package.
type CError struct {
	msg  string
	deco []string
}

// NewError returns a *CError with message msg, decorated with the caller name.
func NewError(msg, caller string) *CError {
	return &CError{msg: msg, deco: []string{caller}}
}

func (err *CError) Error() string { return err.msg }

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// DegenerateGeometryError is returned by the geometric functions when the points given
// do not define the requested quantity, i.e. coincident points or collinear bonds.
type DegenerateGeometryError struct {
	Function string //Distance, Angle, Dihedral or OutOfPlane
	msg      string
	deco     []string
}

func newDegenerate(function, msg string) *DegenerateGeometryError {
	return &DegenerateGeometryError{Function: function, msg: msg, deco: []string{function}}
}

func (err *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("degenerate geometry in %s: %s", err.Function, err.msg)
}

// Decorate adds dec to the call trail of the error and returns it.
func (err *DegenerateGeometryError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// IsDegenerate reports whether err is, or wraps, a *DegenerateGeometryError.
func IsDegenerate(err error) bool {
	var d *DegenerateGeometryError
	return errors.As(err, &d)
}

// ErrDecorate decorates err with the caller's name before returning it, if err implements
// Error. Other errors are wrapped in a *CError, which keeps them available to errors.Unwrap.
func ErrDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var e Error
	if errors.As(err, &e) {
		e.Decorate(caller)
		return err
	}
	return &wrapped{CError{msg: err.Error(), deco: []string{caller}}, err}
}

type wrapped struct {
	CError
	inner error
}

func (w *wrapped) Unwrap() error { return w.inner }

// Trail returns the decoration of err as a single string, outermost caller last.
func Trail(err error) string {
	var e Error
	if !errors.As(err, &e) {
		return ""
	}
	return strings.Join(e.Decorate(""), " > ")
}
