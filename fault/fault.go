// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type (
	// SyntaxError - a declaration syntax string matches none of the
	// recognised grammars
	SyntaxError GenericError

	// ConsistencyError - the forms of one declaration disagree on
	// whether a value is required
	ConsistencyError GenericError

	// UnknownOptionError - an option token matches no declaration
	UnknownOptionError GenericError

	// ValueNeededError - a declaration requiring a value was seen
	// without one available
	ValueNeededError GenericError

	// ConversionError - an extracted value does not parse as the
	// requested scalar type
	ConversionError GenericError

	// ProcessError - wraps failures from external collaborators,
	// e.g. argument file reading
	ProcessError GenericError
)

// common errors - keep in alphabetic order
var (
	ErrNoCallback    = SyntaxError("a declaration requires a callback")
	ErrNoSyntaxForms = SyntaxError("no option syntax forms supplied")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e SyntaxError) Error() string        { return string(e) }
func (e ConsistencyError) Error() string   { return string(e) }
func (e UnknownOptionError) Error() string { return string(e) }
func (e ValueNeededError) Error() string   { return string(e) }
func (e ConversionError) Error() string    { return string(e) }
func (e ProcessError) Error() string       { return string(e) }

// determine the class of an error
func IsErrSyntax(e error) bool        { _, ok := e.(SyntaxError); return ok }
func IsErrConsistency(e error) bool   { _, ok := e.(ConsistencyError); return ok }
func IsErrUnknownOption(e error) bool { _, ok := e.(UnknownOptionError); return ok }
func IsErrValueNeeded(e error) bool   { _, ok := e.(ValueNeededError); return ok }
func IsErrConversion(e error) bool    { _, ok := e.(ConversionError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
