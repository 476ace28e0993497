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

package eventbus

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

func newBus(cfg Config) *bus {
	return &bus{
		cfg:  cfg,
		subs: make(map[uint64]*subscriber),
	}
}

type bus struct {
	cfg Config

	mu      sync.RWMutex
	subs    map[uint64]*subscriber
	history []Event

	nextSubID   atomic.Uint64
	nextEventID atomic.Int64
	closed      atomic.Bool
}

func (b *bus) Publish(eventType, resourceID string, payload interface{}) Event {
	e := Event{
		ID:         b.nextEventID.Add(1),
		Timestamp:  time.Now(),
		Type:       eventType,
		ResourceID: resourceID,
		Payload:    payload,
	}

	if b.closed.Load() {
		return e
	}

	b.appendHistory(e)

	b.mu.RLock()
	subs := make([]*subscriber, 0, len(b.subs))
	for _, s := range b.subs {
		subs = append(subs, s)
	}
	b.mu.RUnlock()

	for _, s := range subs {
		if s.filter.Match(e) {
			s.push(e)
		}
	}

	return e
}

func (b *bus) appendHistory(e Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.history) >= b.cfg.HistorySize {
		b.history = append(b.history[1:], e)
	} else {
		b.history = append(b.history, e)
	}
}

func (b *bus) Subscribe(filter EventFilter) Subscriber {
	s := &subscriber{
		bus:      b,
		filter:   filter,
		capacity: b.cfg.SubscriberBuffer,
		policy:   b.cfg.SlowConsumer,
		notifyCh: make(chan struct{}, 1),
		freeCh:   make(chan struct{}, 1),
		closeCh:  make(chan struct{}),
	}

	if b.closed.Load() {
		s.closed = true
		close(s.closeCh)
		return s
	}

	s.id = b.nextSubID.Add(1)
	b.mu.Lock()
	b.subs[s.id] = s
	b.mu.Unlock()

	return s
}

func (b *bus) History(filter EventFilter) []Event {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]Event, 0, len(b.history))
	for _, e := range b.history {
		if filter.Match(e) {
			out = append(out, e)
		}
	}
	return out
}

func (b *bus) Close() error {
	if b == nil {
		return ErrorNilPointer.Error(nil)
	}
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}

	b.mu.Lock()
	subs := make([]*subscriber, 0, len(b.subs))
	for _, s := range b.subs {
		subs = append(subs, s)
	}
	b.subs = make(map[uint64]*subscriber)
	b.mu.Unlock()

	for _, s := range subs {
		s.closeQuiet()
	}

	return nil
}

// subscriber holds a bounded queue fed by bus.Publish and drained by
// one of Recv, TryRecv, RecvTimeout or Drain. notifyCh wakes a blocked
// Recv when an event is pushed; freeCh wakes a blocked push (under
// SlowConsumerBlock) when a slot is freed by a drain.
type subscriber struct {
	bus    *bus
	id     uint64
	filter EventFilter

	capacity int
	policy   SlowConsumerPolicy

	mu      sync.Mutex
	queue   []Event
	closed  bool
	dropped atomic.Uint64

	notifyCh chan struct{}
	freeCh   chan struct{}
	closeCh  chan struct{}
}

func (s *subscriber) push(e Event) {
	for {
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			return
		}

		if len(s.queue) < s.capacity {
			s.queue = append(s.queue, e)
			s.mu.Unlock()
			signal(s.notifyCh)
			return
		}

		switch s.policy {
		case SlowConsumerDropOldest:
			s.queue = append(s.queue[1:], e)
			s.mu.Unlock()
			signal(s.notifyCh)
			return
		case SlowConsumerDropNewest:
			s.mu.Unlock()
			s.dropped.Add(1)
			return
		default: // SlowConsumerBlock
			s.mu.Unlock()
			select {
			case <-s.freeCh:
				continue
			case <-s.closeCh:
				return
			}
		}
	}
}

func (s *subscriber) tryPop() (Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.queue) == 0 {
		return Event{}, false
	}
	e := s.queue[0]
	s.queue = s.queue[1:]
	return e, true
}

func (s *subscriber) Recv(ctx context.Context) (Event, bool) {
	for {
		if e, ok := s.tryPop(); ok {
			signal(s.freeCh)
			return e, true
		}

		select {
		case <-ctx.Done():
			return Event{}, false
		case <-s.closeCh:
			return Event{}, false
		case <-s.notifyCh:
		}
	}
}

func (s *subscriber) TryRecv() (Event, bool) {
	e, ok := s.tryPop()
	if ok {
		signal(s.freeCh)
	}
	return e, ok
}

func (s *subscriber) RecvTimeout(timeout time.Duration) (Event, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.Recv(ctx)
}

func (s *subscriber) Drain() []Event {
	s.mu.Lock()
	out := s.queue
	s.queue = nil
	s.mu.Unlock()

	if len(out) > 0 {
		signal(s.freeCh)
	}
	return out
}

func (s *subscriber) Dropped() uint64 {
	return s.dropped.Load()
}

func (s *subscriber) Close() {
	if !s.closeQuiet() {
		return
	}
	if s.bus != nil {
		s.bus.unregister(s.id)
	}
}

// closeQuiet closes the subscriber without touching the owning bus's
// registry, so bus.Close can close every subscriber while holding no
// lock that subscriber.Close would otherwise try to re-acquire.
func (s *subscriber) closeQuiet() bool {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false
	}
	s.closed = true
	s.queue = nil
	s.mu.Unlock()

	close(s.closeCh)
	return true
}

func (b *bus) unregister(id uint64) {
	b.mu.Lock()
	delete(b.subs, id)
	b.mu.Unlock()
}

func signal(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
