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

package shutdown

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

)

func newState() *state {
	return &state{
		down:    new(atomic.Bool),
		pending: new(atomic.Int64),
	}
}

// state implements State. Waiters registered by Drain are woken by closing
// their channel once pending drops to zero, the same mutex-guarded
// chan-struct{} signal the teacher's httpserver run loop uses for its own
// wait/notify pair.
type state struct {
	down    *atomic.Bool
	pending *atomic.Int64

	mu      sync.Mutex
	waiters []chan struct{}
}

func (s *state) Begin() (OperationGuard, error) {
	if s == nil {
		return nil, ErrorNilPointer.Error(nil)
	}

	if s.down.Load() {
		return nil, ErrorAlreadyShuttingDown.Error(nil)
	}

	s.pending.Add(1)

	if s.down.Load() {
		s.release()
		return nil, ErrorAlreadyShuttingDown.Error(nil)
	}

	return &guard{s: s, done: new(atomic.Bool)}, nil
}

func (s *state) Shutdown() {
	if s == nil {
		return
	}

	if s.down.CompareAndSwap(false, true) && s.pending.Load() == 0 {
		s.wake()
	}
}

func (s *state) IsShuttingDown() bool {
	if s == nil {
		return false
	}
	return s.down.Load()
}

func (s *state) Pending() int64 {
	if s == nil {
		return 0
	}
	return s.pending.Load()
}

func (s *state) Drain(ctx context.Context) error {
	if s == nil {
		return ErrorNilPointer.Error(nil)
	}

	s.mu.Lock()
	if s.pending.Load() == 0 {
		s.mu.Unlock()
		return nil
	}
	ch := make(chan struct{})
	s.waiters = append(s.waiters, ch)
	s.mu.Unlock()

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *state) DrainTimeout(d time.Duration) error {
	if s == nil {
		return ErrorNilPointer.Error(nil)
	}

	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()

	if err := s.Drain(ctx); err != nil {
		return ErrorDrainTimeout.Error(err)
	}

	return nil
}

func (s *state) release() {
	if s.pending.Add(-1) == 0 {
		s.wake()
	}
}

func (s *state) wake() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ch := range s.waiters {
		close(ch)
	}
	s.waiters = nil
}

type guard struct {
	s    *state
	done *atomic.Bool
}

func (g *guard) Release() {
	if g == nil || g.s == nil {
		return
	}
	if g.done.CompareAndSwap(false, true) {
		g.s.release()
	}
}
