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

// Package semaphore is a thin admission gate over
// golang.org/x/sync/semaphore.Weighted, sized to task.Manager's
// max_concurrent limit (spec.md §4.7). Unlike the teacher's own
// semaphore package, it carries no progress-bar integration: ipckit's
// task manager needs a yes/no admission decision, not a rendered bar.
package semaphore

import "context"

// Gate bounds the number of concurrently admitted holders to a fixed
// weight, sized at New.
type Gate interface {
	// TryAcquire reserves one slot without blocking. It reports false
	// (no error) when the limit is already reached; callers that need
	// a CodeError for propagation use TryAcquireErr.
	TryAcquire() bool

	// TryAcquireErr is TryAcquire, returning ErrorResourceExhausted
	// instead of a bare bool.
	TryAcquireErr() error

	// Acquire blocks until a slot is available or ctx is done.
	Acquire(ctx context.Context) error

	// Release frees one previously acquired slot. On a bounded Gate,
	// releasing more than was acquired panics, matching
	// golang.org/x/sync/semaphore; on an unbounded Gate it is a no-op.
	Release()

	// Limit returns the configured weight.
	Limit() int64
}

// New builds a Gate with the given maximum concurrent weight. limit<=0
// means unbounded: every TryAcquire/Acquire succeeds immediately.
func New(limit int64) Gate {
	return newGate(limit)
}
