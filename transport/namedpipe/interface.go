/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
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

// Package namedpipe is the platform-primitive half of spec.md §4.1's
// named-pipe transport: a duplex byte stream bound to a name, one
// listener instance and any number of client connections over its
// lifetime. It wraps a Unix domain stream socket on POSIX (a FIFO is
// half-duplex and cannot serve this role) and a Windows named pipe via
// go-winio. The socket package layers its unified LocalListener/
// LocalStream abstraction, framing and JSON helpers on top of this
// primitive.
package namedpipe

import (
	"context"
	"net"
	"os"
)

// Listener accepts raw net.Conn connections at a bound name.
type Listener interface {
	Accept(ctx context.Context) (net.Conn, error)
	Addr() string
	Close() error
}

// Listen binds a Listener at name. perm and group are applied to the
// POSIX socket file; both are ignored on Windows. group < 0 skips the
// chown call.
func Listen(name string, perm os.FileMode, group int) (Listener, error) {
	return listen(name, perm, group)
}

// Dial connects to the named pipe bound at name.
func Dial(ctx context.Context, name string) (net.Conn, error) {
	return dial(ctx, name)
}
