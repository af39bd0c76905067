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

package main

import (
	"io"
	"strconv"

	"github.com/hannobraun/stack-assembly/internal/diag"
	"github.com/hannobraun/stack-assembly/vm"
)

func writeWords(w io.Writer, words []vm.Word) {
	for i, v := range words {
		if i > 0 {
			io.WriteString(w, " ")
		}
		io.WriteString(w, strconv.FormatInt(int64(v.Int32()), 10))
	}
}

// dumpState prints the program counter, operand stack, call stack and
// memory in a stable line-oriented format, one concern per line, so a
// stuck script can be diagnosed with grep. Memory is trimmed of trailing
// zero words; a fresh memory prints as a bare "memory: " line.
func dumpState(s *vm.State, w io.Writer) error {
	ew := diag.NewErrWriter(w)

	io.WriteString(ew, "pc: "+strconv.Itoa(s.PC)+"\n")

	io.WriteString(ew, "stack: ")
	writeWords(ew, s.Stack.Values())
	io.WriteString(ew, "\n")

	io.WriteString(ew, "calls: ")
	for i, idx := range s.CallStack() {
		if i > 0 {
			io.WriteString(ew, " ")
		}
		io.WriteString(ew, strconv.Itoa(idx))
	}
	io.WriteString(ew, "\n")

	mem := s.Memory.Words()
	end := len(mem)
	for end > 0 && mem[end-1] == 0 {
		end--
	}
	io.WriteString(ew, "memory: ")
	writeWords(ew, mem[:end])
	io.WriteString(ew, "\n")

	return ew.Err
}
