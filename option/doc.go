// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package option - option declaration grammar and registry
//
// A declaration is registered from one or more syntax strings plus a
// description and a callback.  Recognised grammars:
//   -v        short option
//   -o?       short option requiring a value
//   --out     long option, GNU style
//   --out=?   long option requiring a value, GNU style
//   /out      long option, legacy slash style
//   /out:?    long option requiring a value, legacy slash style
//
// A short name is one character from [0-9A-Za-z?!#]; the literal form
// "-?" declares the question-mark option and does not mean "needs value".
// All forms of one declaration must agree on whether a value is
// required; disagreement is a registration-time fault.ConsistencyError.
// The GNU/slash distinction is presentation only and never affects
// dispatch.
//
// Registration is a build-then-freeze phase: the registry may be read
// concurrently by parse calls, but not while a registration is in
// flight.
package option
