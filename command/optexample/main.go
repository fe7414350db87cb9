// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// demonstration program for the option parsing library
//
// mirrors a small compiler-style front end: flags, value options,
// repeated include paths and "@file" argument files
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/apfeltee/optionparser/argfile"
	"github.com/apfeltee/optionparser/parser"
	"github.com/apfeltee/optionparser/value"
	"github.com/apfeltee/optionparser/version"
)

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	program := filepath.Base(os.Args[0])

	// dispatch tracing needs logging before the parse starts, so the
	// debug flag is pre-scanned from the raw arguments
	debug := false
	for _, argument := range os.Args[1:] {
		if "-d" == argument || "--debug" == argument {
			debug = true
			break
		}
	}
	if debug {
		logging := logger.Configuration{
			Directory: os.TempDir(),
			File:      program + ".log",
			Size:      1048576,
			Count:     10,
			Console:   true,
			Levels: map[string]string{
				logger.DefaultTag: "debug",
			},
		}
		if err := logger.Initialise(logging); nil != err {
			exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
		}
		defer logger.Finalise()
	}

	verbose := false
	outputFileName := "a.out"
	includePaths := []string{}

	prs := parser.New()
	prs.Banner().WriteString(program + ": demonstrate command-line option parsing")
	prs.Tail().WriteString("arguments may also be read from a file with @file")

	register := func(err error) {
		if nil != err {
			exitwithstatus.Message("%s: option setup error: %s", program, err)
		}
	}

	_, err := prs.On([]string{"-v", "--verbose"}, "toggle verbose", func() {
		verbose = true
	})
	register(err)

	_, err = prs.On([]string{"-d", "--debug"}, "enable debug logging", func() {
		// already handled by the pre-scan
	})
	register(err)

	_, err = prs.On([]string{"-V", "--version"}, "print version and exit", func() {
		fmt.Printf("%s version: %s\n", program, version.Version)
		exitwithstatus.Exit(0)
	})
	register(err)

	_, err = prs.OnValue([]string{"-o?", "--out=?", "/out:?"}, "set output file name", func(v value.Value) {
		outputFileName = v.String()
	})
	register(err)

	_, err = prs.OnValue([]string{"-I?", "--include=?"}, "add a path to the include search path", func(v value.Value) {
		includePaths = append(includePaths, v.String())
	})
	register(err)

	_, err = prs.EnableHelp(program)
	register(err)

	if debug {
		prs.SetLogger(logger.New(program))
	}

	arguments, err := argfile.Expand(os.Args[1:])
	if nil != err {
		exitwithstatus.Message("%s: %s", program, err)
	}

	positional, err := prs.Parse(arguments)
	if nil != err {
		exitwithstatus.Message("%s: %s", program, err)
	}

	if 0 == len(positional) {
		fmt.Fprint(os.Stderr, prs.Help(program))
		exitwithstatus.Exit(1)
	}

	if verbose {
		fmt.Printf("output file: %q\n", outputFileName)
		for i, path := range includePaths {
			fmt.Printf("include[%d]: %q\n", i, path)
		}
	}
	fmt.Printf("positional:\n")
	for i, argument := range positional {
		fmt.Printf("  [%d] %q\n", i, argument)
	}
}
