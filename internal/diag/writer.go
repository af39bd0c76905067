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

// Package diag holds small diagnostic helpers shared by the command-line
// driver, such as an io.Writer that latches the first error it sees so
// a long sequence of writes can be checked once at the end.
package diag

import (
	"io"

	"github.com/pkg/errors"
)

// ErrWriter wraps an io.Writer, remembering the first error any Write
// call produces and short-circuiting every call after that.
type ErrWriter struct {
	w   io.Writer
	Err error
}

// NewErrWriter returns a new ErrWriter writing to w.
func NewErrWriter(w io.Writer) *ErrWriter {
	return &ErrWriter{w: w}
}

func (w *ErrWriter) Write(p []byte) (n int, err error) {
	if w.Err != nil {
		return 0, w.Err
	}
	n, err = w.w.Write(p)
	if err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
	return n, w.Err
}
