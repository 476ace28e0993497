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

package runner

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nabbar/ipckit/errors"
)

func newTicker(interval time.Duration, fn Func) Ticker {
	return &ticker{
		interval: interval,
		fn:       fn,
	}
}

type ticker struct {
	interval time.Duration
	fn       Func

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
	started time.Time

	lastErr atomic.Value // error
}

func (t *ticker) Start(_ context.Context) error {
	if t == nil {
		return ErrorNilPointer.Error(nil)
	}

	t.mu.Lock()
	if t.running {
		t.mu.Unlock()
		return ErrorAlreadyRunning.Error(nil)
	}

	t.stopCh = make(chan struct{})
	t.doneCh = make(chan struct{})
	t.started = time.Now()
	t.running = true
	stopCh, doneCh := t.stopCh, t.doneCh
	t.mu.Unlock()

	go t.loop(stopCh, doneCh)

	return nil
}

func (t *ticker) loop(stopCh, doneCh chan struct{}) {
	defer close(doneCh)

	tck := time.NewTicker(t.interval)
	defer tck.Stop()

	ctx := context.Background()
	for {
		select {
		case <-stopCh:
			return
		case <-tck.C:
			if err := t.fn(ctx, tck); err != nil {
				t.lastErr.Store(err)
			}
		}
	}
}

func (t *ticker) Stop(_ context.Context) error {
	if t == nil {
		return ErrorNilPointer.Error(nil)
	}

	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return ErrorNotRunning.Error(nil)
	}
	close(t.stopCh)
	doneCh := t.doneCh
	t.running = false
	t.mu.Unlock()

	<-doneCh
	return nil
}

func (t *ticker) Restart(ctx context.Context) error {
	if t == nil {
		return ErrorNilPointer.Error(nil)
	}
	if err := t.Stop(ctx); err != nil && !errors.IsCode(err, ErrorNotRunning) {
		return err
	}
	return t.Start(ctx)
}

func (t *ticker) IsRunning() bool {
	if t == nil {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

func (t *ticker) Uptime() time.Duration {
	if t == nil {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running {
		return 0
	}
	return time.Since(t.started)
}

func (t *ticker) LastError() error {
	if t == nil {
		return nil
	}
	if err, ok := t.lastErr.Load().(error); ok {
		return err
	}
	return nil
}
