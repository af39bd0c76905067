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

import (
	"math"
	"math/bits"

	"github.com/pkg/errors"
)

// ErrNotPaused is returned by Resume when the last effect was not
// EffectYield: resuming a state that is not paused on a yield is a
// library-misuse error, not a script-driven condition.
var ErrNotPaused = errors.New("vm: Resume called on a state that is not paused on Yield")

// Step advances s by exactly one operator and returns the effect that
// resulted. Once s is halted (any effect other than EffectContinue), Step
// keeps returning the same effect without evaluating anything, until a
// legal Resume re-enables it. Step never blocks.
func Step(s *State) Effect {
	if s.halted {
		return s.lastEffect
	}
	eff := s.evalOne()
	if eff.Halts() {
		s.halted = true
	}
	s.lastEffect = eff
	return eff
}

// Run repeats Step until it returns an effect other than EffectContinue,
// and returns that effect.
func Run(s *State) Effect {
	for {
		if eff := Step(s); eff.Kind != EffectContinue {
			return eff
		}
	}
}

// Resume re-enables stepping after a yield. It is legal only when the last
// effect was EffectYield; otherwise it returns ErrNotPaused and leaves s
// unchanged.
func Resume(s *State) error {
	if s.lastEffect.Kind != EffectYield {
		return ErrNotPaused
	}
	s.halted = false
	return nil
}

// evalOne executes a single operator. The program counter moves past the
// operator before its body runs, so branch operators overwrite an
// already-advanced PC and a yield leaves the PC pointing at the operator
// after it.
func (s *State) evalOne() Effect {
	ops := s.Program.Operators
	if s.PC >= len(ops) {
		return Effect{Kind: EffectFinished}
	}
	op := ops[s.PC]
	s.PC++
	s.instructionCount++

	switch op.Kind {
	case KindInteger:
		return s.push(op.Integer)
	case KindReference:
		return s.push(WordFromUint32(uint32(op.Reference)))
	case KindIdentifier:
		return s.evalIdentifier(op)
	default:
		return Effect{Kind: EffectUnknownIdentifier, Name: op.Name}
	}
}

func (s *State) push(v Word) Effect {
	if !s.Stack.Push(v) {
		return Effect{Kind: EffectStackOverflow}
	}
	return Effect{Kind: EffectContinue}
}

func (s *State) pop1() (a Word, eff Effect, ok bool) {
	if s.Stack.Depth() < 1 {
		return 0, Effect{Kind: EffectStackUnderflow, Needed: 1, Had: s.Stack.Depth()}, false
	}
	a, _ = s.Stack.Pop()
	return a, Effect{}, true
}

// pop2 pops two words in top-first order: b is the top of the stack
// (popped first), a is the word below it (popped second). Non-commutative
// operators compute a OP b.
func (s *State) pop2() (b, a Word, eff Effect, ok bool) {
	if s.Stack.Depth() < 2 {
		return 0, 0, Effect{Kind: EffectStackUnderflow, Needed: 2, Had: s.Stack.Depth()}, false
	}
	b, _ = s.Stack.Pop()
	a, _ = s.Stack.Pop()
	return b, a, Effect{}, true
}

// pop3 pops three words top-first: c is the top, b the middle, a the
// bottom of the three.
func (s *State) pop3() (c, b, a Word, eff Effect, ok bool) {
	if s.Stack.Depth() < 3 {
		return 0, 0, 0, Effect{Kind: EffectStackUnderflow, Needed: 3, Had: s.Stack.Depth()}, false
	}
	c, _ = s.Stack.Pop()
	b, _ = s.Stack.Pop()
	a, _ = s.Stack.Pop()
	return c, b, a, Effect{}, true
}

func (s *State) jumpTo(target Word) Effect {
	idx := target.Index()
	if idx >= len(s.Program.Operators) {
		return Effect{Kind: EffectBadJumpTarget, Target: target.Uint32(), ProgramSize: len(s.Program.Operators)}
	}
	s.PC = idx
	return Effect{Kind: EffectContinue}
}

func (s *State) call(target Word) Effect {
	idx := target.Index()
	if idx >= len(s.Program.Operators) {
		return Effect{Kind: EffectBadJumpTarget, Target: target.Uint32(), ProgramSize: len(s.Program.Operators)}
	}
	s.callStack = append(s.callStack, s.PC)
	s.PC = idx
	return Effect{Kind: EffectContinue}
}

func (s *State) evalIdentifier(op Operator) Effect {
	switch op.Op {
	case OpUnknown:
		return Effect{Kind: EffectUnknownIdentifier, Name: op.Name}

	case OpAdd:
		b, a, eff, ok := s.pop2()
		if !ok {
			return eff
		}
		return s.push(WordFromUint32(a.Uint32() + b.Uint32()))
	case OpSub:
		b, a, eff, ok := s.pop2()
		if !ok {
			return eff
		}
		return s.push(WordFromUint32(a.Uint32() - b.Uint32()))
	case OpMul:
		b, a, eff, ok := s.pop2()
		if !ok {
			return eff
		}
		return s.push(WordFromUint32(a.Uint32() * b.Uint32()))
	case OpDiv:
		return s.evalDiv()

	case OpAnd:
		b, a, eff, ok := s.pop2()
		if !ok {
			return eff
		}
		return s.push(WordFromUint32(a.Uint32() & b.Uint32()))
	case OpOr:
		b, a, eff, ok := s.pop2()
		if !ok {
			return eff
		}
		return s.push(WordFromUint32(a.Uint32() | b.Uint32()))
	case OpXor:
		b, a, eff, ok := s.pop2()
		if !ok {
			return eff
		}
		return s.push(WordFromUint32(a.Uint32() ^ b.Uint32()))

	case OpCountOnes:
		a, eff, ok := s.pop1()
		if !ok {
			return eff
		}
		return s.push(WordFromUint32(uint32(bits.OnesCount32(a.Uint32()))))
	case OpLeadingZeros:
		a, eff, ok := s.pop1()
		if !ok {
			return eff
		}
		return s.push(WordFromUint32(uint32(bits.LeadingZeros32(a.Uint32()))))
	case OpTrailingZeros:
		a, eff, ok := s.pop1()
		if !ok {
			return eff
		}
		return s.push(WordFromUint32(uint32(bits.TrailingZeros32(a.Uint32()))))
	case OpRotateLeft:
		n, a, eff, ok := s.pop2()
		if !ok {
			return eff
		}
		shift := int(n.Uint32() % 32)
		return s.push(WordFromUint32(bits.RotateLeft32(a.Uint32(), shift)))
	case OpRotateRight:
		n, a, eff, ok := s.pop2()
		if !ok {
			return eff
		}
		shift := int(n.Uint32() % 32)
		return s.push(WordFromUint32(bits.RotateLeft32(a.Uint32(), -shift)))
	case OpShiftLeft:
		n, a, eff, ok := s.pop2()
		if !ok {
			return eff
		}
		shift := n.Uint32() % 32
		return s.push(WordFromUint32(a.Uint32() << shift))
	case OpShiftRight:
		n, a, eff, ok := s.pop2()
		if !ok {
			return eff
		}
		shift := n.Uint32() % 32
		return s.push(WordFromInt32(a.Int32() >> shift))

	case OpEq:
		b, a, eff, ok := s.pop2()
		if !ok {
			return eff
		}
		return s.push(WordFromBool(a.Int32() == b.Int32()))
	case OpGt:
		b, a, eff, ok := s.pop2()
		if !ok {
			return eff
		}
		return s.push(WordFromBool(a.Int32() > b.Int32()))
	case OpGe:
		b, a, eff, ok := s.pop2()
		if !ok {
			return eff
		}
		return s.push(WordFromBool(a.Int32() >= b.Int32()))
	case OpLt:
		b, a, eff, ok := s.pop2()
		if !ok {
			return eff
		}
		return s.push(WordFromBool(a.Int32() < b.Int32()))
	case OpLe:
		b, a, eff, ok := s.pop2()
		if !ok {
			return eff
		}
		return s.push(WordFromBool(a.Int32() <= b.Int32()))

	case OpJump:
		t, eff, ok := s.pop1()
		if !ok {
			return eff
		}
		return s.jumpTo(t)
	case OpJumpIf:
		t, c, eff, ok := s.pop2()
		if !ok {
			return eff
		}
		if !c.Bool() {
			return Effect{Kind: EffectContinue}
		}
		return s.jumpTo(t)

	case OpRead:
		addr, eff, ok := s.pop1()
		if !ok {
			return eff
		}
		v, rok := s.Memory.Read(addr.Uint32())
		if !rok {
			return Effect{Kind: EffectMemoryOutOfBounds, Addr: addr.Uint32(), Size: uint32(s.Memory.Len())}
		}
		return s.push(v)
	case OpWrite:
		addr, v, eff, ok := s.pop2()
		if !ok {
			return eff
		}
		if !s.Memory.Write(addr.Uint32(), v) {
			return Effect{Kind: EffectMemoryOutOfBounds, Addr: addr.Uint32(), Size: uint32(s.Memory.Len())}
		}
		return Effect{Kind: EffectContinue}

	case OpCopy:
		return s.evalCopy()
	case OpDrop:
		return s.evalDrop()

	case OpYield:
		return Effect{Kind: EffectYield}

	case OpCall:
		t, eff, ok := s.pop1()
		if !ok {
			return eff
		}
		return s.call(t)
	case OpCallEither:
		elseT, thenT, c, eff, ok := s.pop3()
		if !ok {
			return eff
		}
		target := elseT
		if c.Bool() {
			target = thenT
		}
		return s.call(target)
	case OpReturn:
		n := len(s.callStack)
		if n == 0 {
			return Effect{Kind: EffectReturn}
		}
		s.PC = s.callStack[n-1]
		s.callStack = s.callStack[:n-1]
		return Effect{Kind: EffectContinue}
	case OpAssert:
		c, eff, ok := s.pop1()
		if !ok {
			return eff
		}
		if !c.Bool() {
			return Effect{Kind: EffectAssertionFailed}
		}
		return Effect{Kind: EffectContinue}

	default:
		return Effect{Kind: EffectUnknownIdentifier, Name: op.Name}
	}
}

func (s *State) evalDiv() Effect {
	b, a, eff, ok := s.pop2()
	if !ok {
		return eff
	}
	bi, ai := b.Int32(), a.Int32()
	if bi == 0 {
		return Effect{Kind: EffectDivideByZero}
	}
	if ai == math.MinInt32 && bi == -1 {
		return Effect{Kind: EffectDivideOverflow}
	}
	q, r := ai/bi, ai%bi
	if eff := s.push(WordFromInt32(q)); eff.Kind != EffectContinue {
		return eff
	}
	return s.push(WordFromInt32(r))
}

func (s *State) evalCopy() Effect {
	idxWord, eff, ok := s.pop1()
	if !ok {
		return eff
	}
	i := idxWord.Index()
	depth := s.Stack.Depth()
	if i >= depth {
		return Effect{Kind: EffectStackUnderflow, Needed: i + 1, Had: depth}
	}
	v, _ := s.Stack.At(i)
	return s.push(v)
}

func (s *State) evalDrop() Effect {
	idxWord, eff, ok := s.pop1()
	if !ok {
		return eff
	}
	i := idxWord.Index()
	depth := s.Stack.Depth()
	if i >= depth {
		return Effect{Kind: EffectStackUnderflow, Needed: i + 1, Had: depth}
	}
	s.Stack.Remove(i)
	return Effect{Kind: EffectContinue}
}
