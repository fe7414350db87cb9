// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package option

import (
	"fmt"

	"github.com/apfeltee/optionparser/fault"
)

// Registry - ordered collection of declarations
//
// The zero value is ready for use.
type Registry struct {
	declarations []*Declaration
}

// NewRegistry - create an empty registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Register - parse syntax forms into a declaration and store it
//
// All forms are validated before anything is stored, so a failed
// registration leaves the registry untouched.  The declaration is
// returned so that callers can extend it later with Also.
func (r *Registry) Register(forms []string, description string, callback Callback) (*Declaration, error) {

	parsed, err := parseSyntaxList(forms)
	if nil != err {
		return nil, err
	}

	// the first form sets the arity, every other form must agree
	needsValue := parsed[0].needsValue
	if err := checkConsistency(forms, parsed, needsValue); nil != err {
		return nil, err
	}

	if nil == callback {
		return nil, fault.ErrNoCallback
	}
	switch callback.(type) {
	case NoValueCallback:
		if needsValue {
			return nil, fault.ConsistencyError(fmt.Sprintf("declaration %q requires a value but has a no-value callback", forms[0]))
		}
	case ValueCallback:
		if !needsValue {
			return nil, fault.ConsistencyError(fmt.Sprintf("declaration %q takes no value but has a value callback", forms[0]))
		}
	}

	decl := &Declaration{
		NeedsValue:  needsValue,
		Description: description,
		callback:    callback,
	}
	decl.merge(parsed)

	r.declarations = append(r.declarations, decl)
	return decl, nil
}

// FindShort - look up a declaration by short name
//
// Linear scan in registration order, first match wins.  The index is
// the declaration's registration position.  Not finding a name is not
// an error; the caller decides.
func (r *Registry) FindShort(name rune) (*Declaration, int, bool) {
	for i, d := range r.declarations {
		if d.HasShort(name) {
			return d, i, true
		}
	}
	return nil, -1, false
}

// FindLong - look up a declaration by long name, style ignored
func (r *Registry) FindLong(name string) (*Declaration, int, bool) {
	for i, d := range r.declarations {
		if d.HasLong(name) {
			return d, i, true
		}
	}
	return nil, -1, false
}

// Declarations - all declarations in registration order
//
// exposed for help text formatting; the slice must be treated as
// read-only
func (r *Registry) Declarations() []*Declaration {
	return r.declarations
}

// Count - number of registered declarations
func (r *Registry) Count() int {
	return len(r.declarations)
}
