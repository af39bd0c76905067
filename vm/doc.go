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

// Package vm implements the StackAssembly evaluator: the word/operator/program
// data model, the operand stack and linear memory, and the step-driven
// evaluation machine that drives them and communicates with a host through
// Effect values.
//
// The package never reads a script itself; that is the job of package asm.
// A vm.Program is an already-resolved operator vector that asm.Parse
// produces and vm.New consumes.
package vm
