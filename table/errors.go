/*
 * errors.go, part of geoanal.
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

package table

import "fmt"

// UnsupportedFormatError is returned when a table is saved to, or loaded from,
// a file with an extension not handled by this package.
type UnsupportedFormatError struct {
	Ext  string
	deco []string
}

func (err *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported table format %q", err.Ext)
}

// Decorate adds dec to the call trail of the error and returns it.
func (err *UnsupportedFormatError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// TypeError is returned when a value doesn't match the type of its column.
type TypeError struct {
	Column string
	Want   Type
	Got    interface{}
	deco   []string
}

func (err *TypeError) Error() string {
	if err.Want < 0 {
		return fmt.Sprintf("column %q: unsupported value %v (%T)", err.Column, err.Got, err.Got)
	}
	return fmt.Sprintf("column %q has type %s, got %v (%T)", err.Column, err.Want, err.Got, err.Got)
}

// Decorate adds dec to the call trail of the error and returns it.
func (err *TypeError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}
