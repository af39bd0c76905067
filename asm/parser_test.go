// This file is part of stack-assembly - https://github.com/hannobraun/stack-assembly
//
// Copyright 2026 The Stack-Assembly Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package asm

import (
	"strings"
	"testing"

	"github.com/hannobraun/stack-assembly/vm"
)

func parseErr(t *testing.T, script string) *ParseError {
	t.Helper()
	_, err := Parse(strings.NewReader(script))
	if err == nil {
		t.Fatalf("Parse(%q): expected an error, got none", script)
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("Parse(%q): error = %v (%T), want *ParseError", script, err, err)
	}
	return pe
}

func TestUnresolvedReference(t *testing.T) {
	pe := parseErr(t, "@missing jump")
	if pe.Kind != UnresolvedReference || pe.Text != "missing" {
		t.Fatalf("got %+v", pe)
	}
}

func TestDuplicateLabel(t *testing.T) {
	pe := parseErr(t, "a: a: 0 jump")
	if pe.Kind != DuplicateLabel || pe.Text != "a" {
		t.Fatalf("got %+v", pe)
	}
}

func TestDanglingLabel(t *testing.T) {
	pe := parseErr(t, "1 2 + trailing:")
	if pe.Kind != DanglingLabel || pe.Text != "trailing" {
		t.Fatalf("got %+v", pe)
	}
}

func TestMalformedInteger(t *testing.T) {
	// Digit-shaped but out of the accepted [-2^31, 2^32-1] range.
	pe := parseErr(t, "99999999999999")
	if pe.Kind != MalformedInteger {
		t.Fatalf("got %+v", pe)
	}
}

func TestCommentsAreStripped(t *testing.T) {
	program, err := Parse(strings.NewReader("3 ( push two operands ) 5 +"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got, want := len(program.Operators), 3; got != want {
		t.Fatalf("operator count = %d, want %d", got, want)
	}
}

func TestUnsignedLiteralAcceptsFullRange(t *testing.T) {
	// Values in [2^31, 2^32-1] are accepted and stored as their
	// two's-complement bit pattern, so 4294967295 == -1.
	program, err := Parse(strings.NewReader("4294967295"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := program.Operators[0].Integer
	if got.Int32() != -1 {
		t.Fatalf("4294967295 parsed as %d, want -1", got.Int32())
	}
}

func TestLabelResolvesToFollowingOperator(t *testing.T) {
	program, err := Parse(strings.NewReader("start: 1 2 + @start jump"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	idx, ok := program.Labels["start"]
	if !ok || idx != 0 {
		t.Fatalf("label start = %d, %v; want 0, true", idx, ok)
	}
	ref := program.Operators[3]
	if ref.Kind != vm.KindReference || ref.Reference != 0 {
		t.Fatalf("reference operator = %+v, want Reference==0", ref)
	}
}

func TestMultipleLabelsSameOperator(t *testing.T) {
	program, err := Parse(strings.NewReader("a: b: 1"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if program.Labels["a"] != 0 || program.Labels["b"] != 0 {
		t.Fatalf("labels = %v, want both 0", program.Labels)
	}
}

func TestUnknownIdentifierParsesButIsMarked(t *testing.T) {
	// Unknown identifiers are valid at parse time; they only fail at
	// evaluation time.
	program, err := Parse(strings.NewReader("foo"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	op := program.Operators[0]
	if op.Kind != vm.KindIdentifier || op.Op != vm.OpUnknown || op.Name != "foo" {
		t.Fatalf("operator = %+v", op)
	}
}
