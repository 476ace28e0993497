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

package filechannel

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// pollFallback bounds how long WaitResponse can go without waking even
// if the fsnotify watch misses an event (e.g. the watched directory
// briefly has no active watch while a rename is being re-armed).
const pollFallback = 200 * time.Millisecond

func newMailbox(dir string, role Role) (Mailbox, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	outboxPath, inboxPath := resolvePaths(dir, role)

	mb := &mailbox{
		dir:        dir,
		role:       role,
		outboxPath: outboxPath,
		inboxPath:  inboxPath,
		counter:    new(atomic.Int64),
		lastSeen:   new(atomic.Int64),
		closed:     new(atomic.Bool),
	}

	existing, err := readMessages(outboxPath)
	if err != nil {
		return nil, err
	}
	mb.counter.Store(maxID(existing))

	return mb, nil
}

type mailbox struct {
	dir        string
	role       Role
	outboxPath string
	inboxPath  string

	mu       sync.Mutex
	counter  *atomic.Int64
	lastSeen *atomic.Int64
	closed   *atomic.Bool
}

func (m *mailbox) Send(kind Kind, method string, payload interface{}, replyTo *int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var raw json.RawMessage
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, ErrorInvalidData.Error(err)
		}
		raw = data
	}

	id := m.counter.Add(1)
	msg := Message{
		ID:        id,
		Timestamp: time.Now().UnixMilli(),
		Type:      kind,
		Method:    method,
		Payload:   raw,
		ReplyTo:   replyTo,
	}

	msgs, err := readMessages(m.outboxPath)
	if err != nil {
		return 0, err
	}
	msgs = append(msgs, msg)

	if err = writeMessagesAtomic(m.dir, m.outboxPath, msgs); err != nil {
		return 0, err
	}

	return id, nil
}

func (m *mailbox) Recv() ([]Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.recvLocked()
}

func (m *mailbox) recvLocked() ([]Message, error) {
	msgs, err := readMessages(m.inboxPath)
	if err != nil {
		return nil, err
	}

	last := m.lastSeen.Load()
	fresh := make([]Message, 0, len(msgs))
	high := last
	for _, msg := range msgs {
		if msg.ID > last {
			fresh = append(fresh, msg)
			if msg.ID > high {
				high = msg.ID
			}
		}
	}
	m.lastSeen.Store(high)

	return fresh, nil
}

func (m *mailbox) WaitResponse(ctx context.Context, id int64) (Message, error) {
	watcher, werr := fsnotify.NewWatcher()
	if werr == nil {
		defer func() { _ = watcher.Close() }()
		_ = watcher.Add(m.dir)
	}

	ticker := time.NewTicker(pollFallback)
	defer ticker.Stop()

	for {
		m.mu.Lock()
		msgs, err := m.recvLocked()
		m.mu.Unlock()
		if err != nil {
			return Message{}, err
		}
		for _, msg := range msgs {
			if msg.ReplyTo != nil && *msg.ReplyTo == id {
				return msg, nil
			}
		}

		var events chan fsnotify.Event
		if watcher != nil {
			events = watcher.Events
		}

		select {
		case <-ctx.Done():
			return Message{}, ErrorTimeout.Error(ctx.Err())
		case <-ticker.C:
		case <-events:
		}
	}
}

func (m *mailbox) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := writeMessagesAtomic(m.dir, m.outboxPath, nil); err != nil {
		return err
	}
	return writeMessagesAtomic(m.dir, m.inboxPath, nil)
}

func (m *mailbox) Close() error {
	m.closed.Store(true)
	return nil
}
