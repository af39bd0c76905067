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

// The stackrun command line tool parses a StackAssembly script and drives
// it to completion, printing the operand stack whenever the script yields.
//
// Usage:
//
//	stackrun [flags] script.stack
//
//	-debug
//		  print stack traces for host errors
//	-dump
//		  dump program counter, stacks and memory on exit
//	-interactive
//		  raw terminal input: each yield reads one keypress onto the stack
//	-memory words
//		  memory size in words (default 65536)
//	-stack-cap depth
//		  operand stack depth cap, 0 for unbounded
//
// -interactive: switches the controlling terminal to raw mode (no line
// buffering, no echo) for the duration of the run. Each time the script
// yields, stackrun reads a single keypress and pushes its byte value onto
// the operand stack before resuming, so a script can prompt the operator
// for input one key at a time. Without this flag, a yield just prints the
// operand stack and execution resumes after a short pause.
//
// -dump: prints the final program counter, operand stack, call stack and
// the used prefix of memory, one line each, on exit. The format is stable
// and line-oriented, for use in test harnesses and debugging sessions.
//
// Exit status is 0 when the script runs off the end of its program, 1 for
// a bad invocation or a parse error, 2 for any runtime error effect, and
// 3 for a return operator executed with an empty call stack.
package main
