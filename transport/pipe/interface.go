/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package pipe wraps the OS anonymous pipe (POSIX pipe(2) / Windows
// CreatePipe, both reached through os.Pipe so the same code runs on every
// platform Go itself supports) behind a typed reader/writer-end pair
// suitable for inheritance into a child process.
package pipe

import "os"

// Role identifies which half of a Pair an End represents.
type Role uint8

const (
	RoleReader Role = iota
	RoleWriter
)

func (r Role) String() string {
	if r == RoleWriter {
		return "writer"
	}
	return "reader"
}

// End is one half of an anonymous pipe. A read from a reader End whose
// peer writer has closed returns 0 bytes (io.EOF); writes to a writer
// End whose peer reader has closed fail.
type End interface {
	Role() Role

	// Read is valid on a reader End.
	Read(p []byte) (n int, err error)
	// Write is valid on a writer End.
	Write(p []byte) (n int, err error)
	// Close releases the end. Double-close is a no-op.
	Close() error

	// File exposes the underlying *os.File so callers can pass it via
	// exec.Cmd.ExtraFiles to inherit the end into a child process.
	File() *os.File
}

// Pair is a freshly created anonymous pipe: a reader End and a writer
// End. Either end may be detached with TakeReader/TakeWriter before
// spawning a child process that inherits it; Close then only closes the
// end(s) still held.
type Pair interface {
	Reader() End
	Writer() End

	// TakeReader detaches and returns the reader End; Pair.Close no
	// longer closes it. Calling it twice fails with ErrorAlreadyTaken.
	TakeReader() (End, error)
	// TakeWriter detaches and returns the writer End; Pair.Close no
	// longer closes it. Calling it twice fails with ErrorAlreadyTaken.
	TakeWriter() (End, error)

	// Close closes whichever ends have not been taken. Double-close is
	// a no-op.
	Close() error
}

// New creates a fresh anonymous pipe.
func New() (Pair, error) {
	return newPair()
}
