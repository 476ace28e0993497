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

package metrics

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

func newMetrics(name string) Metrics {
	return &metrics{
		name:      name,
		createdAt: time.Now(),
		latency:   newReservoir(reservoirSize),
	}
}

type metrics struct {
	name      string
	createdAt time.Time

	sent      atomic.Uint64
	received  atomic.Uint64
	bytesSent atomic.Uint64
	bytesRecv atomic.Uint64
	sendErr   atomic.Uint64
	recvErr   atomic.Uint64
	queueDep  atomic.Uint64
	peakDep   atomic.Uint64

	latency *reservoir
}

func (m *metrics) Name() string {
	if m == nil {
		return ""
	}
	return m.name
}

func (m *metrics) RecordSent(n uint64) {
	if m == nil {
		return
	}
	m.sent.Add(1)
	m.bytesSent.Add(n)
}

func (m *metrics) RecordReceived(n uint64) {
	if m == nil {
		return
	}
	m.received.Add(1)
	m.bytesRecv.Add(n)
}

func (m *metrics) RecordSendError() {
	if m == nil {
		return
	}
	m.sendErr.Add(1)
}

func (m *metrics) RecordReceiveError() {
	if m == nil {
		return
	}
	m.recvErr.Add(1)
}

// SetQueueDepth stores the gauge then races a CAS loop against the
// current peak: Go has no atomic max, so the read-compare-swap retries
// until either it wins or a concurrent, larger update already did.
func (m *metrics) SetQueueDepth(n uint64) {
	if m == nil {
		return
	}
	m.queueDep.Store(n)
	for {
		peak := m.peakDep.Load()
		if n <= peak {
			return
		}
		if m.peakDep.CompareAndSwap(peak, n) {
			return
		}
	}
}

func (m *metrics) RecordLatencyUS(us uint64) {
	if m == nil {
		return
	}
	m.latency.push(us)
}

func (m *metrics) RecordLatencyMS(ms uint64) {
	if m == nil {
		return
	}
	m.latency.push(ms * 1000)
}

func (m *metrics) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}

	elapsed := time.Since(m.createdAt).Seconds()
	sent := m.sent.Load()
	recv := m.received.Load()
	bytesSent := m.bytesSent.Load()
	bytesRecv := m.bytesRecv.Load()

	var sendTput, recvTput float64
	if elapsed > 0 {
		sendTput = float64(bytesSent) / elapsed
		recvTput = float64(bytesRecv) / elapsed
	}

	return Snapshot{
		Name:              m.name,
		MessagesSent:      sent,
		MessagesReceived:  recv,
		BytesSent:         bytesSent,
		BytesReceived:     bytesRecv,
		SendErrors:        m.sendErr.Load(),
		ReceiveErrors:     m.recvErr.Load(),
		QueueDepth:        m.queueDep.Load(),
		PeakQueueDepth:    m.peakDep.Load(),
		ElapsedSecs:       elapsed,
		SendThroughput:    sendTput,
		ReceiveThroughput: recvTput,
		Latency:           m.latency.snapshot(),
	}
}

func (m *metrics) Reset() {
	if m == nil {
		return
	}
	m.sent.Store(0)
	m.received.Store(0)
	m.bytesSent.Store(0)
	m.bytesRecv.Store(0)
	m.sendErr.Store(0)
	m.recvErr.Store(0)
	m.queueDep.Store(0)
	m.peakDep.Store(0)
	m.createdAt = time.Now()
	m.latency.reset()
}

func (m *metrics) ExportJSON() ([]byte, error) {
	if m == nil {
		return nil, ErrorNilPointer.Error(nil)
	}
	return json.Marshal(m.Snapshot())
}

var metricNameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9_]`)

func prometheusName(channel, field string) string {
	return "ipckit_" + metricNameSanitizer.ReplaceAllString(channel, "_") + "_" + field
}

func (m *metrics) ExportPrometheus(w io.Writer) error {
	if m == nil {
		return ErrorNilPointer.Error(nil)
	}
	return writePrometheus(w, m.name, m.Snapshot())
}

// writePrometheus renders one HELP/TYPE/value block per field of snap,
// named ipckit_<channel>_<field>, using expfmt so the module never
// hand-rolls the Prometheus text exposition format.
func writePrometheus(w io.Writer, channel string, snap Snapshot) error {
	reg := prometheus.NewRegistry()

	counters := map[string]struct {
		help  string
		value float64
	}{
		"messages_sent_total":     {"Total messages sent.", float64(snap.MessagesSent)},
		"messages_received_total": {"Total messages received.", float64(snap.MessagesReceived)},
		"bytes_sent_total":        {"Total bytes sent.", float64(snap.BytesSent)},
		"bytes_received_total":    {"Total bytes received.", float64(snap.BytesReceived)},
		"send_errors_total":       {"Total send errors.", float64(snap.SendErrors)},
		"receive_errors_total":    {"Total receive errors.", float64(snap.ReceiveErrors)},
	}
	for field, c := range counters {
		g := prometheus.NewGauge(prometheus.GaugeOpts{
			Name: prometheusName(channel, field),
			Help: c.help,
		})
		g.Set(c.value)
		if err := reg.Register(g); err != nil {
			return err
		}
	}

	gauges := map[string]struct {
		help  string
		value float64
	}{
		"queue_depth":            {"Current queue depth.", float64(snap.QueueDepth)},
		"peak_queue_depth":       {"Historical peak queue depth.", float64(snap.PeakQueueDepth)},
		"elapsed_seconds":        {"Seconds since creation or last reset.", snap.ElapsedSecs},
		"send_throughput_bytes":  {"Send throughput in bytes per second.", snap.SendThroughput},
		"recv_throughput_bytes":  {"Receive throughput in bytes per second.", snap.ReceiveThroughput},
		"latency_microseconds_min": {"Minimum recorded latency.", float64(snap.Latency.MinUS)},
		"latency_microseconds_max": {"Maximum recorded latency.", float64(snap.Latency.MaxUS)},
		"latency_microseconds_avg": {"Average recorded latency.", snap.Latency.AvgUS},
		"latency_microseconds_p50": {"50th percentile recorded latency.", float64(snap.Latency.P50US)},
		"latency_microseconds_p95": {"95th percentile recorded latency.", float64(snap.Latency.P95US)},
		"latency_microseconds_p99": {"99th percentile recorded latency.", float64(snap.Latency.P99US)},
	}
	for field, g := range gauges {
		gg := prometheus.NewGauge(prometheus.GaugeOpts{
			Name: prometheusName(channel, field),
			Help: g.help,
		})
		gg.Set(g.value)
		if err := reg.Register(gg); err != nil {
			return err
		}
	}

	mfs, err := reg.Gather()
	if err != nil {
		return err
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range mfs {
		if err = enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}

// reservoir is a fixed-capacity ring buffer of the most recent latency
// samples, in microseconds. Percentiles are computed on demand over a
// sorted copy; spec.md bounds K at 1024 so a full sort per Snapshot
// call is cheap.
type reservoir struct {
	mu     sync.Mutex
	buf    []uint64
	next   int
	filled bool
	count  uint64
	sum    uint64
}

func newReservoir(capacity int) *reservoir {
	return &reservoir{buf: make([]uint64, capacity)}
}

func (r *reservoir) push(us uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.buf[r.next] = us
	r.next = (r.next + 1) % len(r.buf)
	if r.next == 0 {
		r.filled = true
	}
	r.count++
	r.sum += us
}

func (r *reservoir) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.buf = make([]uint64, len(r.buf))
	r.next = 0
	r.filled = false
	r.count = 0
	r.sum = 0
}

func (r *reservoir) snapshot() LatencySnapshot {
	r.mu.Lock()
	var samples []uint64
	if r.filled {
		samples = append(samples, r.buf...)
	} else {
		samples = append(samples, r.buf[:r.next]...)
	}
	r.mu.Unlock()

	if len(samples) == 0 {
		return LatencySnapshot{}
	}

	count := uint64(len(samples))
	var sum uint64
	for _, s := range samples {
		sum += s
	}

	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })

	return LatencySnapshot{
		Count: count,
		MinUS: samples[0],
		MaxUS: samples[len(samples)-1],
		AvgUS: float64(sum) / float64(count),
		P50US: percentile(samples, 0.50),
		P95US: percentile(samples, 0.95),
		P99US: percentile(samples, 0.99),
	}
}

// percentile returns sorted[int(p*len(sorted))], clamped to the last
// index (for 1..100, p=0.50 gives 51).
func percentile(sorted []uint64, p float64) uint64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(p * float64(len(sorted)))
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

func newRegistry() Registry {
	return &registry{metrics: make(map[string]Metrics)}
}

type registry struct {
	mu      sync.RWMutex
	metrics map[string]Metrics
	order   []string
}

func (r *registry) Get(name string) Metrics {
	r.mu.RLock()
	m, ok := r.metrics[name]
	r.mu.RUnlock()
	if ok {
		return m
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok = r.metrics[name]; ok {
		return m
	}
	m = New(name)
	r.metrics[name] = m
	r.order = append(r.order, name)
	return m
}

func (r *registry) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.metrics[name]; !ok {
		return
	}
	delete(r.metrics, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

func (r *registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

func (r *registry) ExportJSON() ([]byte, error) {
	r.mu.RLock()
	snaps := make(map[string]Snapshot, len(r.metrics))
	for name, m := range r.metrics {
		snaps[name] = m.Snapshot()
	}
	r.mu.RUnlock()
	return json.Marshal(snaps)
}

func (r *registry) ExportPrometheus(w io.Writer) error {
	for _, name := range r.List() {
		m := r.Get(name)
		if err := m.ExportPrometheus(w); err != nil {
			return fmt.Errorf("export %s: %w", name, err)
		}
	}
	return nil
}
