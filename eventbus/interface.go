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

// Package eventbus implements spec.md §4.6's in-process typed pub/sub:
// a ring-buffer history of every published event plus a bounded queue
// per subscriber, each queue applying one of three slow-consumer
// policies when it fills up.
package eventbus

import (
	"context"
	"strings"
	"time"
)

// SlowConsumerPolicy selects what happens when a subscriber's queue is
// full and a new event arrives for it.
type SlowConsumerPolicy uint8

const (
	// SlowConsumerDropOldest evicts the front of the queue and pushes
	// the new event. The default: telemetry-style streams favour
	// freshness over completeness.
	SlowConsumerDropOldest SlowConsumerPolicy = iota
	// SlowConsumerDropNewest drops the incoming event and counts it
	// against the subscriber's Dropped total.
	SlowConsumerDropNewest
	// SlowConsumerBlock back-pressures Publish until the subscriber
	// makes room. Couples publisher latency to the slowest subscriber;
	// use only for correctness-critical consumers.
	SlowConsumerBlock
)

func (p SlowConsumerPolicy) String() string {
	switch p {
	case SlowConsumerDropOldest:
		return "drop_oldest"
	case SlowConsumerDropNewest:
		return "drop_newest"
	case SlowConsumerBlock:
		return "block"
	default:
		return "unknown"
	}
}

const (
	defaultHistorySize      = 1000
	defaultSubscriberBuffer = 256
)

// Config tunes a Bus. Zero values resolve to spec.md §4.6's defaults.
type Config struct {
	HistorySize      int                `json:"history_size" yaml:"history_size"`
	SubscriberBuffer int                `json:"subscriber_buffer" yaml:"subscriber_buffer"`
	SlowConsumer     SlowConsumerPolicy `json:"slow_consumer" yaml:"slow_consumer"`
}

func (c Config) withDefaults() Config {
	if c.HistorySize <= 0 {
		c.HistorySize = defaultHistorySize
	}
	if c.SubscriberBuffer <= 0 {
		c.SubscriberBuffer = defaultSubscriberBuffer
	}
	return c
}

// Event is one published record. ID and Timestamp are assigned by the
// Bus at Publish time.
type Event struct {
	ID         int64
	Timestamp  time.Time
	Type       string
	ResourceID string
	Payload    interface{}
}

// EventFilter narrows which events a subscriber receives, or which
// events a history query returns. The zero value matches everything.
// A filter is immutable once passed to Subscribe or History.
type EventFilter struct {
	// EventType matches exactly, unless it ends in "*" in which case
	// it is a prefix match. Empty matches any type.
	EventType string
	// ResourceID matches exactly. Empty matches any resource.
	ResourceID string
	// Since is an inclusive lower bound on Event.Timestamp. Zero means
	// no lower bound.
	Since time.Time
	// Until is an exclusive upper bound on Event.Timestamp. Zero means
	// no upper bound.
	Until time.Time
}

// Match reports whether e satisfies f.
func (f EventFilter) Match(e Event) bool {
	if f.EventType != "" {
		if prefix, ok := strings.CutSuffix(f.EventType, "*"); ok {
			if !strings.HasPrefix(e.Type, prefix) {
				return false
			}
		} else if e.Type != f.EventType {
			return false
		}
	}
	if f.ResourceID != "" && e.ResourceID != f.ResourceID {
		return false
	}
	if !f.Since.IsZero() && e.Timestamp.Before(f.Since) {
		return false
	}
	if !f.Until.IsZero() && !e.Timestamp.Before(f.Until) {
		return false
	}
	return true
}

// Subscriber is one registered consumer of a Bus. All four receive
// methods are safe to call from a single goroutine at a time; a
// Subscriber is not meant to be drained concurrently by multiple
// goroutines.
type Subscriber interface {
	// Recv blocks until an event matching this subscriber's filter
	// arrives, ctx is cancelled, or the bus is closed. The second
	// return is false in the latter two cases.
	Recv(ctx context.Context) (Event, bool)

	// TryRecv returns immediately: the next queued event, or false if
	// none is available.
	TryRecv() (Event, bool)

	// RecvTimeout is Recv bounded by a relative deadline.
	RecvTimeout(timeout time.Duration) (Event, bool)

	// Drain returns every event currently queued, in arrival order,
	// without blocking.
	Drain() []Event

	// Dropped returns the number of events discarded for this
	// subscriber under SlowConsumerDropNewest.
	Dropped() uint64

	// Close unregisters the subscriber from its Bus. Double-close is
	// a no-op. Pending queued events are discarded.
	Close()
}

// Bus is a typed, in-process publish/subscribe hub with bounded
// per-subscriber delivery and a bounded retained history.
type Bus interface {
	// Publish assigns a monotonically increasing ID and the current
	// timestamp, appends the event to the history ring buffer, and
	// offers a copy to every subscriber whose filter matches. Publish
	// never fails on account of a slow or absent subscriber; see
	// SlowConsumerPolicy.
	Publish(eventType, resourceID string, payload interface{}) Event

	// Subscribe registers a new Subscriber filtered by filter. A
	// subscription created after Close returns an already-closed
	// Subscriber.
	Subscribe(filter EventFilter) Subscriber

	// History returns the retained events matching filter, oldest
	// first.
	History(filter EventFilter) []Event

	// Close unregisters and closes every subscriber. Double-close is
	// a no-op.
	Close() error
}

// New builds a Bus from cfg.
func New(cfg Config) Bus {
	return newBus(cfg.withDefaults())
}
