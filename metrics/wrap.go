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
	"context"
	"encoding/json"
	"time"

	"github.com/nabbar/ipckit/framed"
)

// Wrap decorates ch so every Send/Recv updates m's counters and latency
// reservoir around the call to the underlying channel. Failures
// increment the error counters and still propagate, per spec.md §4.8.
// Every other Channel method passes through unmodified.
func Wrap(ch framed.Channel, m Metrics) framed.Channel {
	return &meteredChannel{Channel: ch, m: m}
}

type meteredChannel struct {
	framed.Channel
	m Metrics
}

func (c *meteredChannel) Send(ctx context.Context, payload []byte) error {
	start := time.Now()
	err := c.Channel.Send(ctx, payload)
	c.m.RecordLatencyUS(uint64(time.Since(start).Microseconds()))
	if err != nil {
		c.m.RecordSendError()
		return err
	}
	c.m.RecordSent(uint64(len(payload)))
	return nil
}

func (c *meteredChannel) Recv(ctx context.Context) ([]byte, error) {
	start := time.Now()
	payload, err := c.Channel.Recv(ctx)
	c.m.RecordLatencyUS(uint64(time.Since(start).Microseconds()))
	if err != nil {
		c.m.RecordReceiveError()
		return payload, err
	}
	c.m.RecordReceived(uint64(len(payload)))
	return payload, nil
}

func (c *meteredChannel) SendJSON(ctx context.Context, v interface{}) error {
	start := time.Now()
	err := c.Channel.SendJSON(ctx, v)
	c.m.RecordLatencyUS(uint64(time.Since(start).Microseconds()))
	if err != nil {
		c.m.RecordSendError()
		return err
	}
	n := 0
	if b, merr := json.Marshal(v); merr == nil {
		n = len(b)
	}
	c.m.RecordSent(uint64(n))
	return nil
}

func (c *meteredChannel) RecvJSON(ctx context.Context, v interface{}) error {
	start := time.Now()
	err := c.Channel.RecvJSON(ctx, v)
	c.m.RecordLatencyUS(uint64(time.Since(start).Microseconds()))
	if err != nil {
		c.m.RecordReceiveError()
		return err
	}
	n := 0
	if b, merr := json.Marshal(v); merr == nil {
		n = len(b)
	}
	c.m.RecordReceived(uint64(n))
	return nil
}
