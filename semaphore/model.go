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

package semaphore

import (
	"context"

	"golang.org/x/sync/semaphore"
)

func newGate(limit int64) Gate {
	g := &gate{limit: limit}
	if limit > 0 {
		g.sem = semaphore.NewWeighted(limit)
	}
	return g
}

type gate struct {
	limit int64
	sem   *semaphore.Weighted
}

func (g *gate) TryAcquire() bool {
	if g == nil || g.sem == nil {
		return true
	}
	return g.sem.TryAcquire(1)
}

func (g *gate) TryAcquireErr() error {
	if g == nil {
		return ErrorNilPointer.Error(nil)
	}
	if !g.TryAcquire() {
		return ErrorResourceExhausted.Error(nil)
	}
	return nil
}

func (g *gate) Acquire(ctx context.Context) error {
	if g == nil {
		return ErrorNilPointer.Error(nil)
	}
	if g.sem == nil {
		return nil
	}
	return g.sem.Acquire(ctx, 1)
}

func (g *gate) Release() {
	if g == nil || g.sem == nil {
		return
	}
	g.sem.Release(1)
}

func (g *gate) Limit() int64 {
	if g == nil {
		return 0
	}
	return g.limit
}
