// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package argfile - file-based argument sourcing
//
// Reads arguments from a plain text file, one argument per line, so a
// long command line can be kept on disk and referenced as "@file".
// Blank lines and lines starting with '#' are skipped; surrounding
// whitespace is trimmed, which keeps embedded spaces intact.
package argfile

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/apfeltee/optionparser/fault"
)

// Read - all arguments from one file, in file order
func Read(path string) ([]string, error) {

	f, err := os.Open(path)
	if nil != err {
		return nil, fault.ProcessError(fmt.Sprintf("cannot read argument file %q: %s", path, err))
	}
	defer f.Close()

	arguments := make([]string, 0, 16)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if 0 == len(line) || strings.HasPrefix(line, "#") {
			continue
		}
		arguments = append(arguments, line)
	}
	if err := scanner.Err(); nil != err {
		return nil, fault.ProcessError(fmt.Sprintf("cannot read argument file %q: %s", path, err))
	}

	return arguments, nil
}

// Expand - replace every "@file" token with that file's arguments
//
// Tokens from a file are spliced in place and are not expanded again,
// so an argument file cannot include another one.  A lone "@" is left
// untouched.
func Expand(arguments []string) ([]string, error) {

	expanded := make([]string, 0, len(arguments))
	for _, argument := range arguments {
		if len(argument) > 1 && strings.HasPrefix(argument, "@") {
			fromFile, err := Read(argument[1:])
			if nil != err {
				return nil, err
			}
			expanded = append(expanded, fromFile...)
		} else {
			expanded = append(expanded, argument)
		}
	}
	return expanded, nil
}
