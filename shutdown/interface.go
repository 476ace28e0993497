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

// Package shutdown provides a graceful-shutdown coordinator: a counter of
// in-flight operations that new work cannot join once shutdown has been
// requested, plus a drain that waits for the existing ones to finish.
package shutdown

import (
	"context"
	"time"
)

// OperationGuard represents one in-flight operation registered against a
// State. Release must be called exactly once, typically via defer, to
// decrement the pending counter.
type OperationGuard interface {
	// Release marks the operation as finished. Calling it more than once
	// has no further effect.
	Release()
}

// State tracks whether shutdown has been requested and how many operations
// are still in flight. It is safe for concurrent use.
type State interface {
	// Begin registers a new in-flight operation. It fails with
	// ErrorAlreadyShuttingDown once Shutdown has been called.
	Begin() (OperationGuard, error)

	// Shutdown marks the state as shutting down. New calls to Begin fail
	// from this point on; operations already in flight are unaffected.
	// Calling Shutdown more than once has no further effect.
	Shutdown()

	// IsShuttingDown reports whether Shutdown has been called.
	IsShuttingDown() bool

	// Pending returns the current number of in-flight operations.
	Pending() int64

	// Drain blocks until Pending reaches zero or ctx is done, whichever
	// comes first. It returns ctx.Err() in the latter case.
	Drain(ctx context.Context) error

	// DrainTimeout is Drain with a fresh context.WithTimeout(context.
	// Background(), d). A timeout is reported as ErrorDrainTimeout.
	DrainTimeout(d time.Duration) error
}

// New returns a ready-to-use State with no operations in flight.
func New() State {
	return newState()
}
