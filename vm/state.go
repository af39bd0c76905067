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

// State is one execution of a Program: a program counter, an operand
// stack, memory, and an internal call stack for call/call_either/return.
// A Program may be executed many times by constructing a fresh State for
// each run with New.
type State struct {
	Program *Program

	PC int

	Stack  OperandStack
	Memory Memory

	callStack []int

	halted     bool
	lastEffect Effect

	instructionCount int64
}

// Option configures a State at construction time, following the same
// functional-option shape the rest of the pack uses for its entry points.
type Option func(*State)

// MemorySize overrides the default memory size (DefaultMemorySize words).
func MemorySize(words int) Option {
	return func(s *State) { s.Memory = NewMemory(words) }
}

// StackCap configures a maximum operand stack depth. Exceeding it raises
// EffectStackOverflow. The default is unbounded.
func StackCap(depth int) Option {
	return func(s *State) { s.Stack = NewOperandStack(depth) }
}

// New builds a fresh execution state for program, with the program counter
// at operator 0. The program may be shared across many States; State never
// mutates it.
func New(program *Program, opts ...Option) *State {
	s := &State{
		Program: program,
		Stack:   NewOperandStack(0),
		Memory:  NewMemory(DefaultMemorySize),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Halted reports whether stepping is currently disabled: true after any
// effect other than EffectContinue, until a successful Resume (legal only
// after EffectYield).
func (s *State) Halted() bool { return s.halted }

// LastEffect returns the effect most recently returned by Step or Run.
func (s *State) LastEffect() Effect { return s.lastEffect }

// InstructionCount returns the number of operators evaluated so far.
func (s *State) InstructionCount() int64 { return s.instructionCount }

// CallStack exposes the return-address stack maintained by
// call/call_either/return, for diagnostics (e.g. -dump). Scripts cannot
// address it directly.
func (s *State) CallStack() []int { return s.callStack }
