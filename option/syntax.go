// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package option

import (
	"fmt"
	"strings"

	"github.com/apfeltee/optionparser/fault"
)

// one parsed syntax form
type syntaxForm struct {
	isLong     bool
	isGnu      bool // only meaningful when isLong
	shortName  rune // only meaningful when !isLong
	longName   string
	needsValue bool
}

// the characters permitted as a short option name
func isShortNameRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= 'a' && r <= 'z':
		return true
	case '?' == r, '!' == r, '#' == r:
		return true
	default:
		return false
	}
}

// parse one syntax string into a form
//
// prefix decides the grammar: "--" or "/" select a long form, a single
// "-" followed by a name character selects a short form; anything else
// is a fault.SyntaxError naming the offending string.
func parseSyntax(form string) (syntaxForm, error) {

	result := syntaxForm{}

	switch {

	case strings.HasPrefix(form, "--"):
		name := form[2:]
		if strings.HasSuffix(name, "=?") {
			result.needsValue = true
			name = name[:len(name)-2]
		}
		if 0 == len(name) {
			return result, fault.SyntaxError(fmt.Sprintf("long option syntax %q is missing a name", form))
		}
		if strings.ContainsAny(name, "=:") {
			return result, fault.SyntaxError(fmt.Sprintf("long option syntax %q has an invalid name", form))
		}
		result.isLong = true
		result.isGnu = true
		result.longName = name
		return result, nil

	case strings.HasPrefix(form, "/"):
		name := form[1:]
		if strings.HasSuffix(name, ":?") {
			result.needsValue = true
			name = name[:len(name)-2]
		}
		if 0 == len(name) {
			return result, fault.SyntaxError(fmt.Sprintf("long option syntax %q is missing a name", form))
		}
		if strings.ContainsAny(name, "=:") {
			return result, fault.SyntaxError(fmt.Sprintf("long option syntax %q has an invalid name", form))
		}
		result.isLong = true
		result.longName = name
		return result, nil

	case strings.HasPrefix(form, "-"):
		body := []rune(form[1:])
		switch len(body) {
		case 1:
			// "-?" is the literal question-mark option
			if !isShortNameRune(body[0]) {
				return result, fault.SyntaxError(fmt.Sprintf("short option syntax %q has an invalid name character", form))
			}
			result.shortName = body[0]
			return result, nil
		case 2:
			// the value marker must differ from the name, so "-??" is rejected
			if '?' != body[1] || '?' == body[0] || !isShortNameRune(body[0]) {
				return result, fault.SyntaxError(fmt.Sprintf("short option syntax %q is not of the form -X or -X?", form))
			}
			result.shortName = body[0]
			result.needsValue = true
			return result, nil
		default:
			return result, fault.SyntaxError(fmt.Sprintf("short option syntax %q is not of the form -X or -X?", form))
		}
	}

	return result, fault.SyntaxError(fmt.Sprintf("option syntax %q matches no recognised grammar", form))
}

// parse a whole form list, atomically
func parseSyntaxList(forms []string) ([]syntaxForm, error) {
	if 0 == len(forms) {
		return nil, fault.ErrNoSyntaxForms
	}
	parsed := make([]syntaxForm, len(forms))
	for i, form := range forms {
		p, err := parseSyntax(form)
		if nil != err {
			return nil, err
		}
		parsed[i] = p
	}
	return parsed, nil
}

// check that every form agrees on whether a value is required
//
// covers both the short-vs-long disagreement and a GNU "=?" suffix
// conflicting with a slash ":?" suffix
func checkConsistency(forms []string, parsed []syntaxForm, needsValue bool) error {
	for i, p := range parsed {
		if p.needsValue != needsValue {
			return fault.ConsistencyError(fmt.Sprintf("option syntax %q disagrees with its sibling forms on requiring a value", forms[i]))
		}
	}
	return nil
}
