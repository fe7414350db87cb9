// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package option_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/apfeltee/optionparser/fault"
	"github.com/apfeltee/optionparser/option"
	"github.com/apfeltee/optionparser/value"
)

// registration of each valid grammar
func TestRegisterForms(t *testing.T) {
	tests := []struct {
		forms      []string
		shortNames []rune
		longNames  []option.LongName
		needsValue bool
	}{
		{
			forms:      []string{"-v", "--verbose"},
			shortNames: []rune{'v'},
			longNames:  []option.LongName{{Name: "verbose", IsGnu: true}},
			needsValue: false,
		},
		{
			forms:      []string{"-o?", "--out=?"},
			shortNames: []rune{'o'},
			longNames:  []option.LongName{{Name: "out", IsGnu: true}},
			needsValue: true,
		},
		{
			forms:      []string{"/verbose"},
			shortNames: []rune{},
			longNames:  []option.LongName{{Name: "verbose", IsGnu: false}},
			needsValue: false,
		},
		{
			forms:      []string{"-o?", "--out=?", "/out:?"},
			shortNames: []rune{'o'},
			longNames: []option.LongName{
				{Name: "out", IsGnu: true},
				{Name: "out", IsGnu: false},
			},
			needsValue: true,
		},
		{ // literal question mark option, not a value marker
			forms:      []string{"-?"},
			shortNames: []rune{'?'},
			longNames:  []option.LongName{},
			needsValue: false,
		},
		{ // multiple short names on one declaration
			forms:      []string{"-v", "-V", "--verbose"},
			shortNames: []rune{'v', 'V'},
			longNames:  []option.LongName{{Name: "verbose", IsGnu: true}},
			needsValue: false,
		},
	}

	for i, test := range tests {
		registry := option.NewRegistry()

		var callback option.Callback
		if test.needsValue {
			callback = option.ValueCallback(func(value.Value) {})
		} else {
			callback = option.NoValueCallback(func() {})
		}

		decl, err := registry.Register(test.forms, "a description", callback)
		if nil != err {
			t.Fatalf("%d: register error: %s", i, err)
		}

		if decl.NeedsValue != test.needsValue {
			t.Errorf("%d: needsValue: %v  expected: %v", i, decl.NeedsValue, test.needsValue)
		}
		assert.Equal(t, len(test.shortNames), len(decl.ShortNames), "%d: short name count", i)
		for j, r := range test.shortNames {
			if decl.ShortNames[j] != r {
				t.Errorf("%d: short name[%d]: %q  expected: %q", i, j, decl.ShortNames[j], r)
			}
		}
		assert.Equal(t, test.longNames, append([]option.LongName{}, decl.LongNames...), "%d: long names", i)
		if 1 != registry.Count() {
			t.Errorf("%d: registry count: %d  expected: 1", i, registry.Count())
		}
	}
}

// each invalid form must be rejected with a syntax error and leave the
// registry untouched
func TestRegisterSyntaxErrors(t *testing.T) {
	invalid := [][]string{
		{},               // no forms at all
		{""},             // empty string
		{"-"},            // dash without a name
		{"--"},           // no long name
		{"--=?"},         // value marker without a name
		{"/"},            // slash without a name
		{"/:?"},          // slash value marker without a name
		{"-??"},          // marker may not repeat the name character
		{"-ab"},          // short name longer than one character
		{"-o?x"},         // trailing garbage
		{"-$"},           // invalid name character
		{"--out=file"},   // only "=?" is a valid value marker
		{"--a=b=?"},      // '=' inside a long name
		{"/out:y"},       // only ":?" is a valid value marker
		{"verbose"},      // no prefix at all
		{"-v", "--", ""}, // one bad form spoils the whole call
	}

	for i, forms := range invalid {
		registry := option.NewRegistry()
		_, err := registry.Register(forms, "bad", option.NoValueCallback(func() {}))
		if !fault.IsErrSyntax(err) {
			t.Errorf("%d: %v: error: %v  expected a syntax error", i, forms, err)
		}
		if 0 != registry.Count() {
			t.Errorf("%d: %v: registry not empty after failed registration", i, forms)
		}
	}
}

// mixed forms disagreeing on arity must be rejected atomically
func TestRegisterConsistencyErrors(t *testing.T) {
	disagreeing := [][]string{
		{"-o?", "--out"},        // short wants a value, long does not
		{"-o", "--out=?"},       // long wants a value, short does not
		{"--out=?", "/out"},     // GNU and slash suffixes disagree
		{"--out", "/out:?"},     // slash and GNU suffixes disagree
		{"-o", "-O?"},           // same kind may not disagree either
		{"-o?", "--out=?", "/out"},
	}

	for i, forms := range disagreeing {
		registry := option.NewRegistry()
		_, err := registry.Register(forms, "disagreeing", option.ValueCallback(func(value.Value) {}))
		if !fault.IsErrConsistency(err) {
			t.Errorf("%d: %v: error: %v  expected a consistency error", i, forms, err)
		}
		if 0 != registry.Count() {
			t.Errorf("%d: %v: registry not empty after failed registration", i, forms)
		}

		// nothing was registered, so every name must miss
		if _, _, ok := registry.FindShort('o'); ok {
			t.Errorf("%d: found short 'o' after failed registration", i)
		}
		if _, _, ok := registry.FindLong("out"); ok {
			t.Errorf("%d: found long 'out' after failed registration", i)
		}
	}
}

// the callback shape must match the declared arity
func TestRegisterCallbackShape(t *testing.T) {
	registry := option.NewRegistry()

	_, err := registry.Register([]string{"-o?"}, "value option", option.NoValueCallback(func() {}))
	assert.True(t, fault.IsErrConsistency(err), "no-value callback on a value option: %v", err)

	_, err = registry.Register([]string{"-v"}, "flag option", option.ValueCallback(func(value.Value) {}))
	assert.True(t, fault.IsErrConsistency(err), "value callback on a flag option: %v", err)

	_, err = registry.Register([]string{"-v"}, "no callback", nil)
	assert.True(t, fault.IsErrSyntax(err), "nil callback: %v", err)

	assert.Equal(t, 0, registry.Count(), "registry count")
}

func TestFind(t *testing.T) {
	registry := option.NewRegistry()

	first, err := registry.Register([]string{"-v", "--verbose"}, "verbose", option.NoValueCallback(func() {}))
	if nil != err {
		t.Fatalf("register error: %s", err)
	}
	second, err := registry.Register([]string{"-o?", "--out=?"}, "output", option.ValueCallback(func(value.Value) {}))
	if nil != err {
		t.Fatalf("register error: %s", err)
	}

	decl, index, ok := registry.FindShort('v')
	if !ok || decl != first || 0 != index {
		t.Errorf("FindShort('v'): %v, %d, %v", decl, index, ok)
	}
	decl, index, ok = registry.FindLong("out")
	if !ok || decl != second || 1 != index {
		t.Errorf("FindLong(\"out\"): %v, %d, %v", decl, index, ok)
	}
	if _, _, ok = registry.FindShort('x'); ok {
		t.Errorf("FindShort('x') unexpectedly found a declaration")
	}
	if _, _, ok = registry.FindLong("missing"); ok {
		t.Errorf("FindLong(\"missing\") unexpectedly found a declaration")
	}

	decls := registry.Declarations()
	if 2 != len(decls) || decls[0] != first || decls[1] != second {
		t.Errorf("Declarations() not in registration order")
	}
}

// alias extension after registration
func TestAlso(t *testing.T) {
	registry := option.NewRegistry()

	decl, err := registry.Register([]string{"-o?", "--out=?"}, "output", option.ValueCallback(func(value.Value) {}))
	if nil != err {
		t.Fatalf("register error: %s", err)
	}

	err = decl.Also("-O?", "/output:?")
	if nil != err {
		t.Fatalf("alias error: %s", err)
	}

	found, _, ok := registry.FindShort('O')
	if !ok || found != decl {
		t.Errorf("aliased short name not found")
	}
	found, _, ok = registry.FindLong("output")
	if !ok || found != decl {
		t.Errorf("aliased long name not found")
	}

	// the alias must agree with the declaration's arity
	err = decl.Also("--output-file")
	if !fault.IsErrConsistency(err) {
		t.Errorf("error: %v  expected a consistency error", err)
	}
	if decl.HasLong("output-file") {
		t.Errorf("disagreeing alias was partially registered")
	}

	// and a bad alias must not register its valid siblings
	err = decl.Also("-P?", "bogus")
	if !fault.IsErrSyntax(err) {
		t.Errorf("error: %v  expected a syntax error", err)
	}
	if decl.HasShort('P') {
		t.Errorf("alias sibling of a bad form was registered")
	}
}

// wrong-shape invocation is a contract violation, not an error return
func TestInvokeContract(t *testing.T) {
	registry := option.NewRegistry()

	decl, err := registry.Register([]string{"-v"}, "verbose", option.NoValueCallback(func() {}))
	if nil != err {
		t.Fatalf("register error: %s", err)
	}

	defer func() {
		if nil == recover() {
			t.Errorf("InvokeValue on a no-value declaration did not panic")
		}
	}()
	decl.InvokeValue(value.New("x"))
}
