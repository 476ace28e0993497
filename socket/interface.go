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

// Package socket implements the cross-platform local socket abstraction:
// a Unix domain stream socket on POSIX, a named pipe (via go-winio) on
// Windows, both exposed through the same LocalListener/LocalStream pair.
package socket

import (
	"context"
	"io"

	"github.com/nabbar/ipckit/framed"
	"github.com/nabbar/ipckit/socket/config"
)

// LocalListener accepts LocalStream connections at a bound name.
type LocalListener interface {
	// Accept blocks until a peer connects, ctx is cancelled, or the
	// listener is closed.
	Accept(ctx context.Context) (LocalStream, error)

	// Addr returns the platform-resolved address the listener is bound
	// to (a filesystem path on POSIX, a pipe name on Windows).
	Addr() string

	// Close stops accepting and releases the listener, unlinking the
	// filesystem name on POSIX. Double-close is a no-op.
	Close() error
}

// LocalStream is a full-duplex connection obtained from Accept or Dial.
// Raw read/write are exposed directly; send_json/recv_json are built on
// the framed layer as spec.md §4.2 requires.
type LocalStream interface {
	io.ReadWriteCloser

	// ReadExact reads exactly len(p) bytes or returns an error.
	ReadExact(p []byte) error
	// WriteAll writes all of p or returns an error.
	WriteAll(p []byte) error

	// SendJSON marshals v and sends it as one length-prefixed frame.
	SendJSON(ctx context.Context, v interface{}) error
	// RecvJSON reads one length-prefixed frame and unmarshals it into v.
	RecvJSON(ctx context.Context, v interface{}) error

	// Framed exposes the underlying framed.Channel for callers that want
	// raw frame Send/Recv or graceful shutdown on this stream alone.
	Framed() framed.Channel
}

// Listen binds a LocalListener per cfg.
func Listen(cfg config.Server) (LocalListener, error) {
	if err := cfg.Validate(); err != nil {
		return nil, ErrorInvalidConfig.Error(err)
	}
	return listen(cfg)
}

// Dial connects a LocalStream per cfg.
func Dial(ctx context.Context, cfg config.Client) (LocalStream, error) {
	if err := cfg.Validate(); err != nil {
		return nil, ErrorInvalidConfig.Error(err)
	}
	return dial(ctx, cfg)
}
