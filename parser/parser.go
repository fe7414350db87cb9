// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package parser

import (
	"fmt"
	"os"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/apfeltee/optionparser/helptext"
	"github.com/apfeltee/optionparser/option"
	"github.com/apfeltee/optionparser/value"
)

// Parser - declaration registry plus dispatch configuration
//
// A Parser carries no per-call state; see State.
type Parser struct {
	registry option.Registry
	stopIf   []StopPredicate
	unknown  UnknownPolicy
	log      *logger.L
	banner   strings.Builder
	tail     strings.Builder
}

// New - create a parser with an empty registry
//
// No declarations are registered implicitly; in particular there is no
// automatic help option, see EnableHelp.
func New() *Parser {
	return &Parser{}
}

// Registry - the underlying declaration registry
func (p *Parser) Registry() *option.Registry {
	return &p.registry
}

// On - register a declaration without a value
func (p *Parser) On(forms []string, description string, fn func()) (*option.Declaration, error) {
	return p.registry.Register(forms, description, option.NoValueCallback(fn))
}

// OnValue - register a declaration requiring a value
func (p *Parser) OnValue(forms []string, description string, fn func(value.Value)) (*option.Declaration, error) {
	return p.registry.Register(forms, description, option.ValueCallback(fn))
}

// StopIf - append an early-stop predicate
func (p *Parser) StopIf(fn StopPredicate) {
	p.stopIf = append(p.stopIf, fn)
}

// OnUnknownOption - install the unknown-option policy, replacing any
// previous one
//
// Without a policy every unknown option token is a hard error.
func (p *Parser) OnUnknownOption(fn UnknownPolicy) {
	p.unknown = fn
}

// SetLogger - attach a logger for dispatch tracing
//
// The parser never initialises logging itself; pass nil to disable.
func (p *Parser) SetLogger(log *logger.L) {
	p.log = log
}

// Banner - text buffer printed before the option list in help output
func (p *Parser) Banner() *strings.Builder {
	return &p.banner
}

// Tail - text buffer printed after the option list in help output
func (p *Parser) Tail() *strings.Builder {
	return &p.tail
}

// Help - render the usage text for the registered declarations
func (p *Parser) Help(program string) string {
	return helptext.Format(program, p.banner.String(), p.tail.String(), p.registry.Declarations())
}

// EnableHelp - opt-in convenience: register "-h"/"--help" to print the
// usage text and terminate via exitwithstatus
//
// Intended for programs that defer exitwithstatus.Handler(); the core
// never terminates the process unless this is explicitly requested.
func (p *Parser) EnableHelp(program string) (*option.Declaration, error) {
	return p.On([]string{"-h", "--help"}, "show this help", func() {
		fmt.Fprint(os.Stdout, p.Help(program))
		exitwithstatus.Exit(0)
	})
}

// ParseOS - parse the process argument vector from a starting offset
//
// begin is normally 1 to skip the program name.
func (p *Parser) ParseOS(begin int) ([]string, error) {
	if begin < 0 || begin > len(os.Args) {
		begin = len(os.Args)
	}
	return p.Parse(os.Args[begin:])
}

// debug tracing, only when a logger is attached
func (p *Parser) trace(format string, arguments ...interface{}) {
	if nil != p.log {
		p.log.Debugf(format, arguments...)
	}
}
