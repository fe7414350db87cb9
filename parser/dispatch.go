// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package parser

import (
	"fmt"
	"strings"

	"github.com/apfeltee/optionparser/fault"
	"github.com/apfeltee/optionparser/value"
)

// Parse - walk the argument vector and dispatch each token
//
// Callbacks run in exact token order, once per occurrence.  Any hard
// error halts the call immediately and nothing is returned.  The
// positional remainder is returned in encounter order.
func (p *Parser) Parse(arguments []string) ([]string, error) {

	state := &State{
		arguments:   arguments,
		positionals: make([]string, 0, len(arguments)),
	}

	for state.cursor < len(state.arguments) {

		argument := state.arguments[state.cursor]

		// early-stop predicates run before classification; once one
		// fires the stop is permanent for the call
		if !state.stopped {
			for _, stop := range p.stopIf {
				if stop(state) {
					p.trace("stop predicate fired at argument %d: %q", state.cursor, argument)
					state.stopped = true
					break
				}
			}
		}

		if state.stopped {
			// a predicate takes precedence over "--", which is now an
			// ordinary value
			state.positionals = append(state.positionals, argument)
			state.cursor++
			continue
		}

		// GNU behaviour: double-dash stops option parsing and is
		// itself consumed
		if "--" == argument {
			p.trace("double-dash terminator at argument %d", state.cursor)
			state.stopped = true
			state.cursor++
			continue
		}

		var err error
		switch {
		case "-" == argument || !strings.HasPrefix(argument, "-"):
			// a bare dash is a conventional stdin marker, keep it
			p.trace("positional at argument %d: %q", state.cursor, argument)
			state.positionals = append(state.positionals, argument)
			state.cursor++

		case strings.HasPrefix(argument, "--"):
			err = p.dispatchLong(state, argument)

		default:
			// short option: bundled when more than one character
			// follows the dash, simple otherwise
			name := []rune(argument[1:])
			if len(name) > 1 {
				err = p.dispatchBundle(state, argument, name)
			} else {
				err = p.dispatchSimpleShort(state, name[0])
			}
		}
		if nil != err {
			return nil, err
		}
	}

	return state.positionals, nil
}

// long option: "--name", "--name=value"
//
// the name is everything between the leading dashes and the first "=";
// a trailing "=value" on a declaration without a value is ignored
func (p *Parser) dispatchLong(state *State, argument string) error {

	body := argument[2:]
	name := body
	extracted := ""
	hasValue := false
	if eq := strings.Index(body, "="); eq >= 0 {
		name = body[:eq]
		extracted = body[eq+1:]
		hasValue = true
	}

	decl, index, ok := p.registry.FindLong(name)
	if !ok {
		if err := p.unknownOption(state, "--"+name); nil != err {
			return err
		}
		state.cursor++
		return nil
	}

	if decl.NeedsValue {
		if !hasValue {
			return fault.ValueNeededError(fmt.Sprintf("option '--%s' expected a value", name))
		}
		p.trace("long option --%s (declaration %d) value %q", name, index, extracted)
		decl.InvokeValue(value.New(extracted))
	} else {
		p.trace("long option --%s (declaration %d)", name, index)
		decl.Invoke()
	}
	state.cursor++
	return nil
}

// bundled short options: "-abc", "-ofile.txt"
//
// a value-requiring option is only allowed in first position, where the
// remainder of the token is taken whole as its value and bundling stops
func (p *Parser) dispatchBundle(state *State, argument string, name []rune) error {

	for i, r := range name {
		decl, index, ok := p.registry.FindShort(r)
		if !ok {
			if err := p.unknownOption(state, "-"+string(r)); nil != err {
				return err
			}
			// suppressed: abandon the rest of the bundle, position
			// tracking after a skipped character is not well defined
			p.trace("abandoning bundle %q after unknown '-%c'", argument, r)
			break
		}

		if decl.NeedsValue {
			if 0 != i {
				return fault.ValueNeededError(fmt.Sprintf("unexpected option '-%c' requiring a value inside '%s'", r, argument))
			}
			rest := string(name[1:])
			if 0 == len(rest) {
				return fault.ValueNeededError(fmt.Sprintf("option '-%c' expected a value", r))
			}
			p.trace("short option -%c (declaration %d) attached value %q", r, index, rest)
			decl.InvokeValue(value.New(rest))
			break
		}

		p.trace("short option -%c (declaration %d) in bundle %q", r, index, argument)
		decl.Invoke()
	}

	state.cursor++
	return nil
}

// simple short option: "-o", possibly consuming the next argument as
// its value
//
// an argument that itself looks like an option is never silently
// consumed as a value
func (p *Parser) dispatchSimpleShort(state *State, name rune) error {

	decl, index, ok := p.registry.FindShort(name)
	if !ok {
		if err := p.unknownOption(state, "-"+string(name)); nil != err {
			return err
		}
		state.cursor++
		return nil
	}

	if decl.NeedsValue {
		next := state.cursor + 1
		if next >= len(state.arguments) || strings.HasPrefix(state.arguments[next], "-") {
			return fault.ValueNeededError(fmt.Sprintf("option '-%c' expected a value", name))
		}
		p.trace("short option -%c (declaration %d) value %q", name, index, state.arguments[next])
		decl.InvokeValue(value.New(state.arguments[next]))
		state.cursor += 2
		return nil
	}

	p.trace("short option -%c (declaration %d)", name, index)
	decl.Invoke()
	state.cursor++
	return nil
}

// apply the unknown-option policy to a token
//
// nil return means the failure was suppressed and the token dropped
func (p *Parser) unknownOption(state *State, token string) error {
	if nil == p.unknown || p.unknown(token) {
		return fault.UnknownOptionError(fmt.Sprintf("unknown option '%s'", token))
	}
	p.trace("unknown option %q suppressed at argument %d", token, state.cursor)
	return nil
}
