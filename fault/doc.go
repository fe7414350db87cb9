// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides typed error classes so that callers can classify a failure
// without having to resort to partial string matches.  Messages that
// name an offending token are built at the raise site but keep their
// class, e.g. fault.UnknownOptionError("unknown option '--foo'").
package fault
