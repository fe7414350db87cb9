// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package parser

// State - per-call dispatch state
//
// Created fresh at the start of each Parse call and discarded when the
// argument list is exhausted.  Stop predicates receive the live state
// and must treat it as read-only.
type State struct {
	arguments   []string
	cursor      int
	positionals []string
	stopped     bool
}

// Arguments - the full input sequence, immutable for the call
func (s *State) Arguments() []string {
	return s.arguments
}

// Cursor - index of the argument currently being classified
func (s *State) Cursor() int {
	return s.cursor
}

// Positionals - the non-option values collected so far, in order
func (s *State) Positionals() []string {
	return s.positionals
}

// Stopped - true once scanning has been terminated for the call
func (s *State) Stopped() bool {
	return s.stopped
}

// StopPredicate - early-stop rule
//
// Evaluated in registration order before each argument is classified;
// returning true makes every remaining argument a positional.
type StopPredicate func(*State) bool

// UnknownPolicy - unknown-option rule
//
// Invoked with the literal token, e.g. "-x" or "--foo".  Returning true
// raises the usual unknown-option failure, returning false suppresses
// it and scanning continues from the next argument.
type UnknownPolicy func(token string) bool

// StopAtFirstPositional - built-in predicate that stops scanning as
// soon as one positional value has been recorded, so that everything
// after the first bare argument is passed through untouched
func StopAtFirstPositional(s *State) bool {
	return len(s.positionals) > 0
}
