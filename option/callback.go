// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package option

import (
	"github.com/apfeltee/optionparser/value"
)

// Callback - tagged union of the two handler shapes
//
// Exactly one shape is attached to a declaration.  The dispatch engine
// invokes NoValueCallback for declarations without a value and
// ValueCallback for declarations with one; invoking the wrong shape is
// a programming-contract violation and panics, it is never surfaced as
// a user-facing error.
type Callback interface {
	isCallback()
}

// NoValueCallback - handler for a declaration without a value
type NoValueCallback func()

// ValueCallback - handler receiving the extracted value
type ValueCallback func(value.Value)

func (NoValueCallback) isCallback() {}
func (ValueCallback) isCallback()   {}
