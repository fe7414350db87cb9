// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package option

import (
	"github.com/apfeltee/optionparser/value"
)

// LongName - one long form of a declaration
//
// IsGnu records whether the form was declared as "--name" rather than
// "/name"; this only affects help rendering, never dispatch.
type LongName struct {
	Name  string
	IsGnu bool
}

// Declaration - one registered option
//
// Owned by its registry; parse calls only ever read it.  Name slices
// preserve declaration order for help display.
type Declaration struct {
	ShortNames  []rune
	LongNames   []LongName
	NeedsValue  bool
	Description string
	callback    Callback
}

// HasShort - true if the rune is one of this declaration's short names
func (d *Declaration) HasShort(name rune) bool {
	for _, r := range d.ShortNames {
		if r == name {
			return true
		}
	}
	return false
}

// HasLong - true if the name is one of this declaration's long names
func (d *Declaration) HasLong(name string) bool {
	for _, l := range d.LongNames {
		if l.Name == name {
			return true
		}
	}
	return false
}

// Invoke - run the no-value handler
//
// panics if the declaration was registered with a value handler; the
// dispatch engine never takes this path for a NeedsValue declaration
func (d *Declaration) Invoke() {
	fn, ok := d.callback.(NoValueCallback)
	if !ok {
		panic("option: declaration has no no-value callback")
	}
	fn()
}

// InvokeValue - run the with-value handler
//
// panics if the declaration was registered with a no-value handler
func (d *Declaration) InvokeValue(v value.Value) {
	fn, ok := d.callback.(ValueCallback)
	if !ok {
		panic("option: declaration has no value callback")
	}
	fn(v)
}

// Also - alias extension: attach further syntax forms to this
// declaration
//
// The new forms must agree with the declaration's existing value
// requirement.  Failure is atomic: either all forms are added or none.
func (d *Declaration) Also(forms ...string) error {
	parsed, err := parseSyntaxList(forms)
	if nil != err {
		return err
	}
	if err := checkConsistency(forms, parsed, d.NeedsValue); nil != err {
		return err
	}
	d.merge(parsed)
	return nil
}

// append parsed forms to the name sets
func (d *Declaration) merge(parsed []syntaxForm) {
	for _, p := range parsed {
		if p.isLong {
			d.LongNames = append(d.LongNames, LongName{Name: p.longName, IsGnu: p.isGnu})
		} else {
			d.ShortNames = append(d.ShortNames, p.shortName)
		}
	}
}
