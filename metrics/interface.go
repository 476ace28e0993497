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

// Package metrics implements spec.md §4.8: per-channel atomic counters,
// a bounded latency reservoir with on-demand percentiles, JSON and
// Prometheus text export, a registry keyed by channel name, and a
// metered wrapper around framed.Channel.
package metrics

import "io"

// reservoirSize is spec.md's K: the number of most recent latency
// samples retained for percentile computation.
const reservoirSize = 1024

// LatencySnapshot summarizes the current contents of the latency
// reservoir, in microseconds. Count is the number of samples the
// percentiles were computed from (capped at reservoirSize); it never
// reflects the lifetime total recorded, only what's currently retained.
type LatencySnapshot struct {
	Count uint64  `json:"count"`
	MinUS uint64  `json:"min_us"`
	MaxUS uint64  `json:"max_us"`
	AvgUS float64 `json:"avg_us"`
	P50US uint64  `json:"p50_us"`
	P95US uint64  `json:"p95_us"`
	P99US uint64  `json:"p99_us"`
}

// Snapshot is the full JSON-exportable state of one Metrics instance at
// the moment Snapshot was called.
type Snapshot struct {
	Name              string          `json:"name"`
	MessagesSent      uint64          `json:"messages_sent"`
	MessagesReceived  uint64          `json:"messages_received"`
	BytesSent         uint64          `json:"bytes_sent"`
	BytesReceived     uint64          `json:"bytes_received"`
	SendErrors        uint64          `json:"send_errors"`
	ReceiveErrors     uint64          `json:"receive_errors"`
	QueueDepth        uint64          `json:"queue_depth"`
	PeakQueueDepth    uint64          `json:"peak_queue_depth"`
	ElapsedSecs       float64         `json:"elapsed_secs"`
	SendThroughput    float64         `json:"send_throughput_bps"`
	ReceiveThroughput float64         `json:"receive_throughput_bps"`
	Latency           LatencySnapshot `json:"latency"`
}

// Metrics accumulates counters and latency samples for one named
// channel. All mutating methods are lock-free or short-critical-section
// safe for concurrent use from multiple goroutines, per spec.md §5.
type Metrics interface {
	// Name returns the channel name this instance was created with.
	Name() string

	// RecordSent increments messages_sent by one and bytes_sent by n.
	RecordSent(n uint64)

	// RecordReceived increments messages_received by one and
	// bytes_received by n.
	RecordReceived(n uint64)

	// RecordSendError increments send_errors by one.
	RecordSendError()

	// RecordReceiveError increments receive_errors by one.
	RecordReceiveError()

	// SetQueueDepth sets the current queue_depth gauge and updates
	// peak_queue_depth if n exceeds it.
	SetQueueDepth(n uint64)

	// RecordLatencyUS pushes one latency sample, in microseconds, into
	// the bounded reservoir.
	RecordLatencyUS(us uint64)

	// RecordLatencyMS is RecordLatencyUS scaled from milliseconds.
	RecordLatencyMS(ms uint64)

	// Snapshot returns the current state of every field.
	Snapshot() Snapshot

	// Reset zeroes every counter and gauge and empties the latency
	// reservoir; elapsed_secs restarts from now.
	Reset()

	// ExportJSON marshals Snapshot() to JSON.
	ExportJSON() ([]byte, error)

	// ExportPrometheus writes one `# HELP`+`# TYPE` block per metric in
	// Prometheus text exposition format to w, each metric named
	// ipckit_<Name>_<field>, with characters outside [a-zA-Z0-9_] in
	// Name replaced by '_'.
	ExportPrometheus(w io.Writer) error
}

// New builds a Metrics accumulator named name. name must be non-empty;
// New panics if it is not, matching the teacher's prometheus/metrics
// package's fail-fast construction contract.
func New(name string) Metrics {
	if name == "" {
		panic(ErrorInvalidData.Error(nil))
	}
	return newMetrics(name)
}

// Registry aggregates named Metrics instances, created on first Get.
type Registry interface {
	// Get returns the Metrics registered under name, creating it if
	// absent.
	Get(name string) Metrics

	// Remove drops the Metrics registered under name, if any.
	Remove(name string)

	// List returns every currently registered name.
	List() []string

	// ExportJSON returns every registered instance's Snapshot, keyed by
	// name.
	ExportJSON() ([]byte, error)

	// ExportPrometheus writes every registered instance's Prometheus
	// text export to w, in List order.
	ExportPrometheus(w io.Writer) error
}

// NewRegistry builds an empty Registry.
func NewRegistry() Registry {
	return newRegistry()
}
