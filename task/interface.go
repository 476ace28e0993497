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

// Package task implements spec.md §4.7's task manager: a registry of
// finite-state-machine tasks, admission-gated by max_concurrent,
// publishing lifecycle events onto an embedded eventbus.Bus, and
// garbage-collected by retention age.
package task

import (
	"time"

	"github.com/nabbar/ipckit/duration"
	"github.com/nabbar/ipckit/eventbus"
)

// State is one node of the task state machine.
type State uint8

const (
	StatePending State = iota
	StateRunning
	StatePaused
	StateCompleted
	StateFailed
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Terminal reports whether s is one of the three states a task cannot
// leave: Completed, Failed, Cancelled.
func (s State) Terminal() bool {
	switch s {
	case StateCompleted, StateFailed, StateCancelled:
		return true
	default:
		return false
	}
}

// Event type names published onto the manager's eventbus.Bus, matching
// spec.md §4.7 exactly. ResourceID on each is the task id.
const (
	EventStarted   = "task.started"
	EventProgress  = "task.progress"
	EventCompleted = "task.completed"
	EventFailed    = "task.failed"
	EventCancelled = "task.cancelled"
)

// Task is an immutable snapshot of a task's fields at the moment
// Snapshot or List was called.
type Task struct {
	ID         string
	Name       string
	Kind       string
	State      State
	Progress   int
	Message    string
	Result     interface{}
	Error      string
	CreatedAt  time.Time
	StartedAt  time.Time
	FinishedAt time.Time
}

// CancellationToken is set once, idempotently, by Cancel. A task body
// is expected to poll IsCancelled and wind itself down promptly.
type CancellationToken interface {
	Cancel()
	IsCancelled() bool
}

// Handle is a thread-safe reference to one task. Multiple holders may
// read it concurrently; the lifecycle methods are expected to be
// called by a single owning writer at a time per spec.md §4.7.
type Handle interface {
	// Snapshot returns the task's current fields.
	Snapshot() Task

	// Token returns the task's cancellation token.
	Token() CancellationToken

	// Start transitions Pending -> Running. Any other current state
	// fails with ErrorInvalidState.
	Start() error

	// Pause transitions Running -> Paused.
	Pause() error

	// Resume transitions Paused -> Running.
	Resume() error

	// SetProgress is accepted only in Running or Paused; pct is
	// clamped to [0,100]. The manager does not enforce monotonicity.
	SetProgress(pct int, message string) error

	// Complete transitions Running|Paused -> Completed, recording
	// result.
	Complete(result interface{}) error

	// Fail transitions Running|Paused -> Failed, recording err's
	// message.
	Fail(err error) error

	// Cancel transitions Running|Paused|Pending -> Cancelled and sets
	// the cancellation token regardless of whether the transition
	// succeeds (a token set on an already-terminal task is harmless).
	Cancel() error
}

// Config tunes a Manager. Zero values resolve to spec.md §4.7's
// defaults.
type Config struct {
	// MaxConcurrent bounds the number of non-terminal tasks admitted
	// at once. <= 0 means unbounded.
	MaxConcurrent int64 `json:"max_concurrent" yaml:"max_concurrent"`

	// RetentionInterval is spec.md's retention_secs: how long a
	// terminal task is kept after FinishedAt before the GC pass
	// removes it. Defaults to 1 hour.
	RetentionInterval duration.Duration `json:"retention_interval" yaml:"retention_interval"`

	// GCInterval is how often the retention sweep runs. Defaults to 1
	// minute.
	GCInterval duration.Duration `json:"gc_interval" yaml:"gc_interval"`

	// EventBus configures the embedded bus lifecycle events publish
	// onto.
	EventBus eventbus.Config `json:"event_bus" yaml:"event_bus"`
}

const (
	defaultRetentionInterval = 3600 * time.Second
	defaultGCInterval        = 60 * time.Second
)

func (c Config) withDefaults() Config {
	if c.RetentionInterval.Time() <= 0 {
		c.RetentionInterval = duration.Duration(defaultRetentionInterval)
	}
	if c.GCInterval.Time() <= 0 {
		c.GCInterval = duration.Duration(defaultGCInterval)
	}
	return c
}

// Manager owns the task registry, the admission gate, the retention
// GC pass, and the embedded eventbus.Bus.
type Manager interface {
	// Create admits a new Pending task named name of the given kind.
	// Fails with ErrorResourceExhausted if MaxConcurrent non-terminal
	// tasks are already admitted.
	Create(name, kind string) (Handle, error)

	// Get looks up a task by id.
	Get(id string) (Handle, bool)

	// List returns a snapshot of every currently registered task.
	List() []Task

	// Bus returns the embedded event bus lifecycle events are
	// published onto; callers subscribe to observe task transitions.
	Bus() eventbus.Bus

	// Close stops the retention GC pass and closes the embedded bus.
	Close() error
}

// New builds a Manager from cfg.
func New(cfg Config) Manager {
	return newManager(cfg.withDefaults())
}
