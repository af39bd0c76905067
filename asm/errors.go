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

import "fmt"

// ParseErrorKind names one of the four static failure modes.
type ParseErrorKind int

const (
	MalformedInteger ParseErrorKind = iota
	DuplicateLabel
	DanglingLabel
	UnresolvedReference
)

func (k ParseErrorKind) String() string {
	switch k {
	case MalformedInteger:
		return "malformed integer"
	case DuplicateLabel:
		return "duplicate label"
	case DanglingLabel:
		return "dangling label"
	case UnresolvedReference:
		return "unresolved reference"
	default:
		return "unknown parse error"
	}
}

// ParseError is returned by Parse. It always carries the source position
// of the offending token.
type ParseError struct {
	Kind ParseErrorKind
	Pos  Position
	Text string // the malformed token, or the label/reference name at fault
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s: %q", e.Pos, e.Kind, e.Text)
}
