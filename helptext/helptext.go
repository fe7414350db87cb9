// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package helptext - usage text formatting
//
// Renders the registered declarations into a human-readable usage
// string.  Pure formatting: declarations are read in registration
// order and never modified, no I/O is performed.
package helptext

import (
	"fmt"
	"strings"

	"github.com/apfeltee/optionparser/option"
)

// render one long name in its declared style
func longForm(l option.LongName, needsValue bool) string {
	if l.IsGnu {
		if needsValue {
			return "--" + l.Name + "=<val>"
		}
		return "--" + l.Name
	}
	if needsValue {
		return "/" + l.Name + ":<val>"
	}
	return "/" + l.Name
}

// Synopsis - compact one-bracket rendering of a declaration, e.g.
// "-o / --out=<val>"
func Synopsis(d *option.Declaration) string {
	parts := make([]string, 0, len(d.ShortNames)+len(d.LongNames))
	for _, r := range d.ShortNames {
		s := "-" + string(r)
		if d.NeedsValue {
			s += " <val>"
		}
		parts = append(parts, s)
	}
	for _, l := range d.LongNames {
		parts = append(parts, longForm(l, d.NeedsValue))
	}
	return strings.Join(parts, " / ")
}

// comma-joined forms for the option list
func optionColumn(d *option.Declaration) string {
	parts := make([]string, 0, len(d.ShortNames)+len(d.LongNames))
	for _, r := range d.ShortNames {
		s := "-" + string(r)
		if d.NeedsValue {
			s += " <val>"
		}
		parts = append(parts, s)
	}
	for _, l := range d.LongNames {
		parts = append(parts, longForm(l, d.NeedsValue))
	}
	return strings.Join(parts, ", ")
}

// Format - render the full usage text
//
// banner and tail are free-text buffers owned by the caller; either may
// be empty and is then omitted together with its newline.
func Format(program string, banner string, tail string, declarations []*option.Declaration) string {

	buf := &strings.Builder{}

	if 0 != len(banner) {
		buf.WriteString(banner)
		buf.WriteString("\n")
	}

	buf.WriteString("usage: ")
	buf.WriteString(program)
	for _, d := range declarations {
		buf.WriteString(" [")
		buf.WriteString(Synopsis(d))
		buf.WriteString("]")
	}
	buf.WriteString(" <args ...>\n\n")

	buf.WriteString("available options:\n")

	width := 0
	for _, d := range declarations {
		if n := len(optionColumn(d)); n > width {
			width = n
		}
	}
	for _, d := range declarations {
		fmt.Fprintf(buf, "  %-*s : %s\n", width, optionColumn(d), d.Description)
	}

	if 0 != len(tail) {
		buf.WriteString(tail)
		buf.WriteString("\n")
	}

	return buf.String()
}
