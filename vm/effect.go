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

import "fmt"

// EffectKind discriminates the payload carried by an Effect.
type EffectKind int

const (
	// EffectContinue means "no observable effect, keep stepping". Step may
	// return it; Run never does, since Run loops until something else
	// comes back.
	EffectContinue EffectKind = iota
	// EffectFinished means the program counter reached the end of the
	// program. Terminal, and idempotent: further Step calls keep returning
	// it.
	EffectFinished
	// EffectYield is a cooperative suspension raised by the yield
	// operator. It is the only effect Resume accepts.
	EffectYield
	// EffectReturn means a return operator executed with an empty call
	// stack. Terminal, like EffectFinished.
	EffectReturn
	EffectUnknownIdentifier
	EffectStackUnderflow
	EffectStackOverflow
	EffectMemoryOutOfBounds
	EffectBadJumpTarget
	EffectDivideByZero
	EffectDivideOverflow
	EffectAssertionFailed
)

func (k EffectKind) String() string {
	switch k {
	case EffectContinue:
		return "continue"
	case EffectFinished:
		return "finished"
	case EffectYield:
		return "yield"
	case EffectReturn:
		return "return"
	case EffectUnknownIdentifier:
		return "unknown identifier"
	case EffectStackUnderflow:
		return "stack underflow"
	case EffectStackOverflow:
		return "stack overflow"
	case EffectMemoryOutOfBounds:
		return "memory out of bounds"
	case EffectBadJumpTarget:
		return "bad jump target"
	case EffectDivideByZero:
		return "divide by zero"
	case EffectDivideOverflow:
		return "divide overflow"
	case EffectAssertionFailed:
		return "assertion failed"
	default:
		return "unknown effect"
	}
}

// Effect is the value Step and Run use to report why execution stopped
// advancing on its own: normal completion, a yield, or one of the error
// conditions. Only the fields relevant to Kind are meaningful.
type Effect struct {
	Kind EffectKind

	Name string // EffectUnknownIdentifier: the offending identifier

	Needed int // EffectStackUnderflow: inputs required
	Had    int // EffectStackUnderflow: inputs available

	Addr uint32 // EffectMemoryOutOfBounds: the address accessed
	Size uint32 // EffectMemoryOutOfBounds: the memory size

	Target      uint32 // EffectBadJumpTarget: the requested target
	ProgramSize int    // EffectBadJumpTarget: the operator count
}

// Halts reports whether this effect halts the execution state, i.e.
// whether every kind other than EffectContinue. EffectYield halts stepping
// until Resume is called; EffectFinished and EffectReturn halt permanently.
func (e Effect) Halts() bool { return e.Kind != EffectContinue }

// IsError reports whether e is one of the error-shaped effects, as
// opposed to Continue, Finished, Yield, or Return.
func (e Effect) IsError() bool {
	switch e.Kind {
	case EffectContinue, EffectFinished, EffectYield, EffectReturn:
		return false
	default:
		return true
	}
}

func (e Effect) String() string {
	switch e.Kind {
	case EffectUnknownIdentifier:
		return fmt.Sprintf("unknown identifier %q", e.Name)
	case EffectStackUnderflow:
		return fmt.Sprintf("stack underflow: needed %d, had %d", e.Needed, e.Had)
	case EffectMemoryOutOfBounds:
		return fmt.Sprintf("memory out of bounds: address %d, size %d", e.Addr, e.Size)
	case EffectBadJumpTarget:
		return fmt.Sprintf("bad jump target: %d, program size %d", e.Target, e.ProgramSize)
	default:
		return e.Kind.String()
	}
}
