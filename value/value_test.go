// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package value_test

import (
	"testing"

	"github.com/apfeltee/optionparser/fault"
	"github.com/apfeltee/optionparser/value"
)

func TestString(t *testing.T) {
	v := value.New("file.txt")
	if "file.txt" != v.String() {
		t.Errorf("raw string: %q  expected: %q", v.String(), "file.txt")
	}
	if v.IsEmpty() {
		t.Errorf("unexpected empty value")
	}
	if !value.New("").IsEmpty() {
		t.Errorf("empty value not detected")
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		raw string
		n   int64
		ok  bool
	}{
		{"0", 0, true},
		{"42", 42, true},
		{"-17", -17, true},
		{"", 0, false},
		{"4x2", 0, false},
		{"9999999999999999999999", 0, false},
	}

	for i, test := range tests {
		n, err := value.New(test.raw).Int()
		if test.ok {
			if nil != err {
				t.Fatalf("%d: conversion error: %s", i, err)
			}
			if n != test.n {
				t.Errorf("%d: %q converted to: %d  expected: %d", i, test.raw, n, test.n)
			}
		} else {
			if !fault.IsErrConversion(err) {
				t.Errorf("%d: %q: error: %v  expected a conversion error", i, test.raw, err)
			}
		}
	}
}

func TestUint(t *testing.T) {
	n, err := value.New("65535").Uint()
	if nil != err {
		t.Fatalf("conversion error: %s", err)
	}
	if 65535 != n {
		t.Errorf("converted to: %d  expected: 65535", n)
	}

	_, err = value.New("-1").Uint()
	if !fault.IsErrConversion(err) {
		t.Errorf("error: %v  expected a conversion error", err)
	}
}

func TestFloat(t *testing.T) {
	n, err := value.New("2.5").Float()
	if nil != err {
		t.Fatalf("conversion error: %s", err)
	}
	if 2.5 != n {
		t.Errorf("converted to: %f  expected: 2.5", n)
	}

	_, err = value.New("two point five").Float()
	if !fault.IsErrConversion(err) {
		t.Errorf("error: %v  expected a conversion error", err)
	}
}

func TestBool(t *testing.T) {
	b, err := value.New("true").Bool()
	if nil != err {
		t.Fatalf("conversion error: %s", err)
	}
	if !b {
		t.Errorf("converted to: %v  expected: true", b)
	}

	_, err = value.New("yes").Bool()
	if !fault.IsErrConversion(err) {
		t.Errorf("error: %v  expected a conversion error", err)
	}
}
