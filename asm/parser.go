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
	"io"

	"github.com/hannobraun/stack-assembly/vm"
)

// pendingReference records a Reference operator that still needs its
// Reference field filled in once every label has been seen.
type pendingReference struct {
	name          string
	operatorIndex int
	pos           Position
}

// Parse lexes and resolves r's contents into a vm.Program. It is a pure
// function: it performs no I/O beyond draining r, and has no observable
// side effects, so parsing the same text twice yields equal programs.
func Parse(r io.Reader) (*vm.Program, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	raw := stripComments(tokenize(string(data)))

	var operators []vm.Operator
	labels := make(map[string]int)
	var pendingLabels []string
	var refs []pendingReference

	for _, rt := range raw {
		tok, err := classify(rt)
		if err != nil {
			return nil, err
		}

		if tok.Kind == TokenLabel {
			if _, exists := labels[tok.Text]; exists {
				return nil, &ParseError{Kind: DuplicateLabel, Pos: tok.Pos, Text: tok.Text}
			}
			labels[tok.Text] = -1 // placeholder until the next operator is seen
			pendingLabels = append(pendingLabels, tok.Text)
			continue
		}

		switch tok.Kind {
		case TokenInteger:
			operators = append(operators, vm.Operator{Kind: vm.KindInteger, Integer: tok.Value})
		case TokenReference:
			refs = append(refs, pendingReference{name: tok.Text, operatorIndex: len(operators), pos: tok.Pos})
			operators = append(operators, vm.Operator{Kind: vm.KindReference})
		case TokenIdentifier:
			op, known := vm.LookupIdentifier(tok.Text)
			if !known {
				op = vm.OpUnknown
			}
			operators = append(operators, vm.Operator{Kind: vm.KindIdentifier, Op: op, Name: tok.Text})
		}

		if len(pendingLabels) > 0 {
			idx := len(operators) - 1
			for _, name := range pendingLabels {
				labels[name] = idx
			}
			pendingLabels = pendingLabels[:0]
		}
	}

	if len(pendingLabels) > 0 {
		// Report the position of the trailing label itself, not of some
		// operator that doesn't exist; re-scan for it since we only kept
		// names above.
		pos := lastLabelPosition(raw, pendingLabels[0])
		return nil, &ParseError{Kind: DanglingLabel, Pos: pos, Text: pendingLabels[0]}
	}

	for _, ref := range refs {
		idx, ok := labels[ref.name]
		if !ok || idx < 0 {
			return nil, &ParseError{Kind: UnresolvedReference, Pos: ref.pos, Text: ref.name}
		}
		operators[ref.operatorIndex].Reference = idx
	}

	return &vm.Program{Operators: operators, Labels: labels}, nil
}

// lastLabelPosition finds the position of the (final, since labels can't
// repeat) occurrence of a label token named name, for DanglingLabel
// diagnostics.
func lastLabelPosition(raw []rawToken, name string) Position {
	want := name + ":"
	for _, t := range raw {
		if t.text == want {
			return t.pos
		}
	}
	return Position{}
}
