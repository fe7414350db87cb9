// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package parser - command-line argument dispatch engine
//
// A Parser owns a registry of option declarations and walks a raw
// argument vector left to right, invoking the matching callbacks and
// collecting everything else as positional values:
//
//	prs := parser.New()
//	prs.OnValue([]string{"-o?", "--out=?"}, "set output file name", func(v value.Value) {
//		outputFileName = v.String()
//	})
//	positional, err := prs.Parse(os.Args[1:])
//
// Recognised argument shapes:
//	-v            short option
//	-abc          bundled short options
//	-ofile.txt    short option with attached value
//	-o file.txt   short option taking the next argument as its value
//	--out=file    long option with value
//	--            stop option parsing
//
// Registration is a build-then-freeze phase.  Parse allocates an
// independent State per call and only reads the registry, so a frozen
// parser may serve concurrent Parse calls.  All parse failures halt the
// call immediately; the unknown-option policy hook is the only
// sanctioned recovery path.
package parser
