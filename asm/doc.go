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

// Package asm lexes and resolves StackAssembly script text into a
// vm.Program.
//
// A script is whitespace-delimited tokens, each classified as one of:
//
//	label        name:     (length >= 2, trailing colon)
//	reference    @name     (length >= 2, leading at-sign)
//	integer      -?[0-9]+  (base 10, range [-2^31, 2^32-1])
//	identifier   anything else, including symbols such as + = >=
//
// Comments run from a lone "(" token to the next lone ")" token, Forth
// style, and are stripped before classification:
//
//	3 5 ( push two operands ) +
//
// A label names the operator that follows it; several labels in a row may
// name the same operator. A reference pushes the resolved index of the
// operator its label names. Parse fails with a *ParseError for a malformed
// integer, a duplicate label, a label with nothing following it, or a
// reference to a label that was never defined.
package asm
