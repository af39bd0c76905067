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

package vm_test

import (
	"fmt"
	"strings"

	"github.com/hannobraun/stack-assembly/asm"
	"github.com/hannobraun/stack-assembly/vm"
)

// Shows the basic parse-then-run cycle: a program is parsed once into a
// vm.Program and can be run to completion with vm.Run.
func ExampleRun() {
	program, err := asm.Parse(strings.NewReader("1 2 +"))
	if err != nil {
		panic(err)
	}

	state := vm.New(program)
	effect := vm.Run(state)

	fmt.Println(effect)
	fmt.Println(state.Stack.Values())

	// Output:
	// finished
	// [3]
}

// Shows a host servicing a yield: the script pushes two values, yields, and
// the host reads them off the stack before resuming.
func ExampleRun_yield() {
	program, err := asm.Parse(strings.NewReader("2 3 yield *"))
	if err != nil {
		panic(err)
	}

	state := vm.New(program)
	if effect := vm.Run(state); effect.Kind != vm.EffectYield {
		panic(effect)
	}

	fmt.Println("yielded with", state.Stack.Values())

	if err := vm.Resume(state); err != nil {
		panic(err)
	}
	effect := vm.Run(state)
	fmt.Println(effect, state.Stack.Values())

	// Output:
	// yielded with [2 3]
	// finished [6]
}

// Shows a runtime effect halting the state: dividing by zero stops
// execution and leaves the engine unable to continue without a fresh
// state.
func ExampleRun_error() {
	program, err := asm.Parse(strings.NewReader("10 0 /"))
	if err != nil {
		panic(err)
	}

	state := vm.New(program)
	fmt.Println(vm.Run(state))

	// Output:
	// divide by zero
}
