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

// Package runner is a minimal ticker-style periodic task runner,
// trimmed from the teacher's runner/ticker surface down to what
// task.Manager's retention GC pass needs: start, stop, and the last
// error the callback returned.
package runner

import (
	"context"
	"time"
)

const defaultInterval = time.Second

// Func is invoked on every tick. tck is the underlying *time.Ticker so
// a callback may call Reset on slow/adaptive intervals.
type Func func(ctx context.Context, tck *time.Ticker) error

// Ticker runs Func on a fixed interval until Stop. The contexts given to
// Start and Stop are not used: cancelling them does not stop the ticker,
// and Func receives context.Background().
type Ticker interface {
	// Start begins ticking in a background goroutine. Fails with
	// ErrorAlreadyRunning if already started.
	Start(ctx context.Context) error

	// Stop ends the background goroutine and waits for it to exit.
	// Fails with ErrorNotRunning if not started.
	Stop(ctx context.Context) error

	// Restart stops (ignoring ErrorNotRunning) then starts again.
	Restart(ctx context.Context) error

	// IsRunning reports whether the ticker is currently active.
	IsRunning() bool

	// Uptime is the duration since the last Start, or zero if not
	// running.
	Uptime() time.Duration

	// LastError is the most recent non-nil error Func returned, or nil.
	LastError() error
}

// New builds a Ticker. interval <= 0 falls back to a 1 second default.
// fn == nil is accepted; ticks are then no-ops.
func New(interval time.Duration, fn Func) Ticker {
	if interval <= 0 {
		interval = defaultInterval
	}
	if fn == nil {
		fn = func(context.Context, *time.Ticker) error { return nil }
	}
	return newTicker(interval, fn)
}
