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

import "math"

// Word is the engine's only value type: a 32-bit quantity with no attached
// tag. Operators decide whether a given Word is signed, unsigned, or a raw
// bit pattern; the engine itself never interprets one.
type Word uint32

// WordFromInt32 reinterprets v's two's-complement bit pattern as a Word.
func WordFromInt32(v int32) Word { return Word(uint32(v)) }

// WordFromUint32 wraps v as a Word.
func WordFromUint32(v uint32) Word { return Word(v) }

// WordFromBool encodes a boolean the way comparison operators do: 1 for
// true, 0 for false.
func WordFromBool(b bool) Word {
	if b {
		return 1
	}
	return 0
}

// Int32 reinterprets the word's bit pattern as a signed two's-complement
// integer.
func (w Word) Int32() int32 { return int32(w) }

// Uint32 returns the word's bit pattern as an unsigned integer.
func (w Word) Uint32() uint32 { return uint32(w) }

// Index returns the word interpreted as an unsigned array/operator index.
// Where int is 64 bits wide every word fits; where it is only 32 bits wide,
// words above math.MaxInt saturate to math.MaxInt, which no program, stack
// or memory can reach, so the index never turns negative.
func (w Word) Index() int {
	if uint64(w) > math.MaxInt {
		return math.MaxInt
	}
	return int(uint32(w))
}

// Bool reports whether the word is non-zero, the convention every
// conditional operator (jump_if, call_either, assert) uses.
func (w Word) Bool() bool { return w != 0 }
