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

package analysis

import "fmt"

// ConfigurationError is returned for an invalid configuration, including id templates
// that can't be resolved for a system.
type ConfigurationError struct {
	Field string //the configuration field at fault, if known
	msg   string
	deco  []string
}

func newConfigError(field, msg, caller string) *ConfigurationError {
	return &ConfigurationError{Field: field, msg: msg, deco: []string{caller}}
}

func (err *ConfigurationError) Error() string {
	if err.Field == "" {
		return "configuration: " + err.msg
	}
	return fmt.Sprintf("configuration: %s: %s", err.Field, err.msg)
}

// Decorate adds dec to the call trail of the error and returns it.
func (err *ConfigurationError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}
