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
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/hannobraun/stack-assembly/asm"
	"github.com/hannobraun/stack-assembly/vm"
)

// Exit codes, one per effect family.
const (
	exitOK     = 0 // Finished
	exitUsage  = 1 // bad invocation, unreadable script, parse error
	exitEffect = 2 // error-shaped runtime effect
	exitReturn = 3 // return with an empty call stack
)

var (
	memWords    int
	stackCap    int
	interactive bool
	dump        bool
	debug       bool
)

func main() {
	flag.IntVar(&memWords, "memory", vm.DefaultMemorySize, "memory size in `words`")
	flag.IntVar(&stackCap, "stack-cap", 0, "operand stack `depth` cap, 0 for unbounded")
	flag.BoolVar(&interactive, "interactive", false, "raw terminal input: each yield reads one keypress onto the stack")
	flag.BoolVar(&dump, "dump", false, "dump program counter, stacks and memory on exit")
	flag.BoolVar(&debug, "debug", false, "print stack traces for host errors")
	flag.Parse()

	os.Exit(run())
}

// run is split from main so that deferred cleanup (terminal restore) runs
// before the process exits.
func run() int {
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: stackrun [flags] script.stack")
		flag.PrintDefaults()
		return exitUsage
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		return fail(errors.Wrap(err, "open script"))
	}
	program, err := asm.Parse(f)
	f.Close()
	if err != nil {
		return fail(errors.Wrap(err, "parse script"))
	}

	opts := []vm.Option{vm.MemorySize(memWords)}
	if stackCap > 0 {
		opts = append(opts, vm.StackCap(stackCap))
	}
	state := vm.New(program, opts...)

	if interactive {
		restore, err := setRawIO()
		if err != nil {
			return fail(errors.Wrap(err, "raw terminal mode"))
		}
		defer restore()
	}

	return drive(state)
}

func fail(err error) int {
	if debug {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	return exitUsage
}

// drive loops the evaluator until the script finishes or fails. Each yield
// prints the operand stack so the script can report intermediate results;
// in -interactive mode it additionally reads one keypress and pushes it,
// giving scripts a way to ask the operator for input.
func drive(s *vm.State) int {
	for {
		eff := vm.Run(s)

		switch eff.Kind {
		case vm.EffectFinished:
			fmt.Fprintln(os.Stderr)
			fmt.Fprintln(os.Stderr, "Evaluation has finished.")
			printStack(s)
			dumpIfRequested(s)
			return exitOK

		case vm.EffectYield:
			printStack(s)
			if interactive {
				var buf [1]byte
				if _, err := os.Stdin.Read(buf[:]); err == nil {
					if !s.Stack.Push(vm.WordFromUint32(uint32(buf[0]))) {
						fmt.Fprintln(os.Stderr, "stackrun: dropped keypress, operand stack is at its cap")
					}
				}
			} else {
				// Give the operator a chance to read the output before the
				// next yield scrolls it away.
				time.Sleep(20 * time.Millisecond)
			}
			if err := vm.Resume(s); err != nil {
				return fail(err)
			}

		case vm.EffectReturn:
			fmt.Fprintln(os.Stderr)
			fmt.Fprintf(os.Stderr, "Script triggered effect: %v\n", eff)
			printStack(s)
			dumpIfRequested(s)
			return exitReturn

		default:
			fmt.Fprintln(os.Stderr)
			fmt.Fprintf(os.Stderr, "Script triggered effect: %v\n", eff)
			printStack(s)
			dumpIfRequested(s)
			return exitEffect
		}
	}
}

func printStack(s *vm.State) {
	fmt.Print("Stack:")
	for _, v := range s.Stack.Values() {
		fmt.Printf(" %d", v.Int32())
	}
	fmt.Println()
}

func dumpIfRequested(s *vm.State) {
	if !dump {
		return
	}
	if err := dumpState(s, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "stackrun: dump failed: %v\n", err)
	}
}
