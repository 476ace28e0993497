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

// Package framed implements a length-prefixed message channel over any
// bidirectional byte stream, with a graceful-shutdown gate on every
// operation.
package framed

import (
	"context"
	"io"
	"time"

	"github.com/nabbar/ipckit/shutdown"
)

// Channel exchanges length-prefixed frames over an underlying stream.
// Every Send/Recv is gated by an internal shutdown.State: once Shutdown
// has been called, new operations fail with ErrorConnectionClosed while
// operations already in flight are allowed to finish.
type Channel interface {
	// Send writes payload as one frame. It fails with ErrorFrameTooLarge
	// if payload exceeds the configured maximum.
	Send(ctx context.Context, payload []byte) error

	// Recv reads and returns the next frame's payload. It returns io.EOF
	// when the underlying stream is cleanly closed between frames, and
	// ErrorUnexpectedEof when it closes mid-frame.
	Recv(ctx context.Context) ([]byte, error)

	// SendJSON marshals v and sends it as one frame.
	SendJSON(ctx context.Context, v interface{}) error

	// RecvJSON reads one frame and unmarshals it into v.
	RecvJSON(ctx context.Context, v interface{}) error

	// Shutdown marks the channel as shutting down; see shutdown.State.
	Shutdown()

	// Drain waits for in-flight Send/Recv calls to finish.
	Drain(ctx context.Context) error

	// ShutdownTimeout calls Shutdown then Drain with a deadline.
	ShutdownTimeout(d time.Duration) error

	// Close closes the underlying stream. It does not wait for in-flight
	// operations; call ShutdownTimeout first for a graceful close.
	Close() error
}

// New wraps rw in a Channel using cfg. A zero Config uses DefaultConfig.
func New(rw io.ReadWriteCloser, cfg Config) Channel {
	if cfg.MaxFrameSize == 0 {
		cfg = DefaultConfig()
	}

	return &channel{
		rw:  rw,
		cfg: cfg,
		st:  shutdown.New(),
	}
}
