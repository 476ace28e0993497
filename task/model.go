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

package task

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/nabbar/ipckit/eventbus"
	"github.com/nabbar/ipckit/runner"
	"github.com/nabbar/ipckit/semaphore"
)

func newManager(cfg Config) Manager {
	m := &manager{
		cfg:   cfg,
		bus:   eventbus.New(cfg.EventBus),
		gate:  semaphore.New(cfg.MaxConcurrent),
		tasks: make(map[string]*taskHandle),
	}
	m.gc = runner.New(cfg.GCInterval.Time(), m.sweep)
	_ = m.gc.Start(context.Background())
	return m
}

type manager struct {
	cfg  Config
	bus  eventbus.Bus
	gate semaphore.Gate
	gc   runner.Ticker

	mu    sync.RWMutex
	tasks map[string]*taskHandle
}

func (m *manager) Create(name, kind string) (Handle, error) {
	if m == nil {
		return nil, ErrorNilPointer.Error(nil)
	}
	if err := m.gate.TryAcquireErr(); err != nil {
		return nil, err
	}

	now := time.Now()
	h := &taskHandle{
		mgr: m,
		tok: &cancellationToken{},
	}
	h.task = Task{
		ID:        uuid.New().String(),
		Name:      name,
		Kind:      kind,
		State:     StatePending,
		CreatedAt: now,
	}

	m.mu.Lock()
	m.tasks[h.task.ID] = h
	m.mu.Unlock()

	return h, nil
}

func (m *manager) Get(id string) (Handle, bool) {
	if m == nil {
		return nil, false
	}
	m.mu.RLock()
	h, ok := m.tasks[id]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return h, true
}

func (m *manager) List() []Task {
	if m == nil {
		return nil
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Task, 0, len(m.tasks))
	for _, h := range m.tasks {
		out = append(out, h.Snapshot())
	}
	return out
}

func (m *manager) Bus() eventbus.Bus {
	if m == nil {
		return nil
	}
	return m.bus
}

func (m *manager) Close() error {
	if m == nil {
		return ErrorNilPointer.Error(nil)
	}
	_ = m.gc.Stop(context.Background())
	return m.bus.Close()
}

// sweep is the retention GC pass: it removes every terminal task whose
// FinishedAt is older than cfg.RetentionInterval.
func (m *manager) sweep(context.Context, *time.Ticker) error {
	cutoff := time.Now().Add(-m.cfg.RetentionInterval.Time())

	m.mu.Lock()
	for id, h := range m.tasks {
		h.mu.Lock()
		expired := h.task.State.Terminal() && h.task.FinishedAt.Before(cutoff)
		h.mu.Unlock()
		if expired {
			delete(m.tasks, id)
		}
	}
	m.mu.Unlock()

	return nil
}

// release frees the admission slot held by a task once it becomes
// terminal. Safe to call more than once; only the first call after
// admission actually releases.
func (m *manager) release(h *taskHandle) {
	if h.released.CompareAndSwap(false, true) {
		m.gate.Release()
	}
}

type cancellationToken struct {
	cancelled atomic.Bool
}

func (t *cancellationToken) Cancel() {
	t.cancelled.Store(true)
}

func (t *cancellationToken) IsCancelled() bool {
	return t.cancelled.Load()
}

type taskHandle struct {
	mgr *manager
	tok *cancellationToken

	mu       sync.Mutex
	task     Task
	released atomic.Bool
}

func (h *taskHandle) Snapshot() Task {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.task
}

func (h *taskHandle) Token() CancellationToken {
	return h.tok
}

func (h *taskHandle) Start() error {
	h.mu.Lock()
	if h.task.State != StatePending {
		h.mu.Unlock()
		return ErrorInvalidState.Error(nil)
	}
	h.task.State = StateRunning
	h.task.StartedAt = time.Now()
	h.mu.Unlock()

	h.mgr.bus.Publish(EventStarted, h.task.ID, nil)
	return nil
}

func (h *taskHandle) Pause() error {
	h.mu.Lock()
	if h.task.State != StateRunning {
		h.mu.Unlock()
		return ErrorInvalidState.Error(nil)
	}
	h.task.State = StatePaused
	h.mu.Unlock()
	return nil
}

func (h *taskHandle) Resume() error {
	h.mu.Lock()
	if h.task.State != StatePaused {
		h.mu.Unlock()
		return ErrorInvalidState.Error(nil)
	}
	h.task.State = StateRunning
	h.mu.Unlock()
	return nil
}

func (h *taskHandle) SetProgress(pct int, message string) error {
	if pct < 0 {
		pct = 0
	} else if pct > 100 {
		pct = 100
	}

	h.mu.Lock()
	if h.task.State != StateRunning && h.task.State != StatePaused {
		h.mu.Unlock()
		return ErrorInvalidState.Error(nil)
	}
	h.task.Progress = pct
	h.task.Message = message
	h.mu.Unlock()

	h.mgr.bus.Publish(EventProgress, h.task.ID, pct)
	return nil
}

func (h *taskHandle) Complete(result interface{}) error {
	h.mu.Lock()
	if h.task.State != StateRunning && h.task.State != StatePaused {
		h.mu.Unlock()
		return ErrorInvalidState.Error(nil)
	}
	h.task.State = StateCompleted
	h.task.Result = result
	h.task.Progress = 100
	h.task.FinishedAt = time.Now()
	h.mu.Unlock()

	h.mgr.release(h)
	h.mgr.bus.Publish(EventCompleted, h.task.ID, result)
	return nil
}

func (h *taskHandle) Fail(err error) error {
	h.mu.Lock()
	if h.task.State != StateRunning && h.task.State != StatePaused {
		h.mu.Unlock()
		return ErrorInvalidState.Error(nil)
	}
	h.task.State = StateFailed
	if err != nil {
		h.task.Error = err.Error()
	}
	h.task.FinishedAt = time.Now()
	h.mu.Unlock()

	h.mgr.release(h)
	h.mgr.bus.Publish(EventFailed, h.task.ID, h.task.Error)
	return nil
}

func (h *taskHandle) Cancel() error {
	h.tok.Cancel()

	h.mu.Lock()
	if h.task.State.Terminal() {
		h.mu.Unlock()
		return ErrorInvalidState.Error(nil)
	}
	h.task.State = StateCancelled
	h.task.FinishedAt = time.Now()
	h.mu.Unlock()

	h.mgr.release(h)
	h.mgr.bus.Publish(EventCancelled, h.task.ID, nil)
	return nil
}
