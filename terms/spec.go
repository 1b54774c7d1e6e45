/*
 * spec.go, part of geoanal.
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

package terms

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseError is returned for a token of a specification string that can't be
// understood as a term.
type ParseError struct {
	Token string
	msg   string
	deco  []string
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("can't parse term %q: %s", err.Token, err.msg)
}

// Decorate adds dec to the call trail of the error and returns it.
func (err *ParseError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// ParseSpec parses a specification string: terms separated by commas and/or blanks.
// "i-j" is a bond, "i-j-k" an angle, "i-j-k-l" a dihedral and "oopi-j-k-l" an out-of-plane
// term centered on j. Atoms are numbered from 1.
// Tokens that can't be parsed are skipped, and a *ParseError is returned for each of them.
func ParseSpec(spec string) ([]Term, []error) {
	var ret []Term
	var errs []error
	tokens := strings.FieldsFunc(spec, func(r rune) bool { return r == ',' || unicode.IsSpace(r) })
	for _, tok := range tokens {
		t, err := ParseTerm(tok)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		ret = append(ret, t)
	}
	return ret, errs
}

// ParseTerm parses a single term, as written in a specification string.
func ParseTerm(token string) (Term, error) {
	body := token
	oop := false
	if len(body) >= 3 && strings.EqualFold(body[:3], "oop") {
		body = body[3:]
		oop = true
	}
	parts := strings.Split(body, "-")
	ids := make([]int, len(parts))
	for i, p := range parts {
		id, err := strconv.Atoi(p)
		if err != nil {
			return Term{}, &ParseError{Token: token, msg: fmt.Sprintf("%q is not an atom number", p), deco: []string{"ParseTerm"}}
		}
		ids[i] = id
	}
	var kind Kind
	switch {
	case oop && len(ids) == 4:
		kind = OutOfPlane
	case oop:
		return Term{}, &ParseError{Token: token, msg: "an out-of-plane term needs 4 atoms", deco: []string{"ParseTerm"}}
	case len(ids) == 2:
		kind = Bond
	case len(ids) == 3:
		kind = Angle
	case len(ids) == 4:
		kind = Dihedral
	default:
		return Term{}, &ParseError{Token: token, msg: fmt.Sprintf("%d atoms don't make a term", len(ids)), deco: []string{"ParseTerm"}}
	}
	t, err := NewTerm(kind, ids...)
	if err != nil {
		return Term{}, &ParseError{Token: token, msg: err.Error(), deco: []string{"ParseTerm"}}
	}
	return t, nil
}
