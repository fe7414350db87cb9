// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package value - thin wrapper around one extracted option value
//
// The dispatch engine only ever extracts raw strings; any conversion to
// a typed scalar is performed on demand by the caller and fails with a
// fault.ConversionError, which is distinct from all parse failures.
package value

import (
	"fmt"
	"strconv"

	"github.com/apfeltee/optionparser/fault"
)

// Value - one raw extracted value
type Value struct {
	raw string
}

// New - wrap a raw string
func New(raw string) Value {
	return Value{raw: raw}
}

// String - the raw string, verbatim
func (v Value) String() string {
	return v.raw
}

// IsEmpty - true for a zero-length raw string
func (v Value) IsEmpty() bool {
	return 0 == len(v.raw)
}

// Int - convert to a signed integer (base 10)
func (v Value) Int() (int64, error) {
	n, err := strconv.ParseInt(v.raw, 10, 64)
	if nil != err {
		return 0, fault.ConversionError(fmt.Sprintf("value %q is not an integer", v.raw))
	}
	return n, nil
}

// Uint - convert to an unsigned integer (base 10)
func (v Value) Uint() (uint64, error) {
	n, err := strconv.ParseUint(v.raw, 10, 64)
	if nil != err {
		return 0, fault.ConversionError(fmt.Sprintf("value %q is not an unsigned integer", v.raw))
	}
	return n, nil
}

// Float - convert to a floating point number
func (v Value) Float() (float64, error) {
	n, err := strconv.ParseFloat(v.raw, 64)
	if nil != err {
		return 0, fault.ConversionError(fmt.Sprintf("value %q is not a number", v.raw))
	}
	return n, nil
}

// Bool - convert to a boolean, accepting the strconv spellings
func (v Value) Bool() (bool, error) {
	b, err := strconv.ParseBool(v.raw)
	if nil != err {
		return false, fault.ConversionError(fmt.Sprintf("value %q is not a boolean", v.raw))
	}
	return b, nil
}
