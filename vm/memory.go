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

package vm

// DefaultMemorySize is the word count a State is given when no MemorySize
// option is supplied.
const DefaultMemorySize = 65536

// Memory is the engine's linear, word-addressed store. All words are zero
// until written.
type Memory struct {
	words []Word
}

// NewMemory returns a zeroed Memory of the given size, in words.
func NewMemory(size int) Memory {
	return Memory{words: make([]Word, size)}
}

// Len returns the memory's size in words.
func (m *Memory) Len() int { return len(m.words) }

// Read returns the word at addr. ok is false if addr is out of range.
func (m *Memory) Read(addr uint32) (v Word, ok bool) {
	if addr >= uint32(len(m.words)) {
		return 0, false
	}
	return m.words[addr], true
}

// Write stores v at addr. It reports false, leaving memory unchanged, if
// addr is out of range.
func (m *Memory) Write(addr uint32, v Word) bool {
	if addr >= uint32(len(m.words)) {
		return false
	}
	m.words[addr] = v
	return true
}

// Words exposes the full memory contents for host introspection (e.g. a
// -dump flag). The host must not retain the returned slice across further
// mutation of memory.
func (m *Memory) Words() []Word { return m.words }
