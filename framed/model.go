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

package framed

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/nabbar/ipckit/shutdown"
)

const lengthPrefixSize = 4

type channel struct {
	rw  io.ReadWriteCloser
	cfg Config
	st  shutdown.State

	rmu sync.Mutex
	wmu sync.Mutex
}

func (c *channel) Send(ctx context.Context, payload []byte) error {
	if c == nil {
		return ErrorNilPointer.Error(nil)
	} else if ctx != nil && ctx.Err() != nil {
		return ctx.Err()
	} else if uint32(len(payload)) > c.cfg.maxFrameSize() {
		return ErrorFrameTooLarge.Error(nil)
	}

	g, err := c.st.Begin()
	if err != nil {
		return ErrorConnectionClosed.Error(err)
	}
	defer g.Release()

	c.wmu.Lock()
	defer c.wmu.Unlock()

	var hdr [lengthPrefixSize]byte
	binary.BigEndian.PutUint32(hdr[:], uint32(len(payload)))

	if err = writeFull(c.rw, hdr[:]); err != nil {
		return ErrorUnexpectedEof.Error(err)
	}

	if len(payload) == 0 {
		return nil
	}

	if err = writeFull(c.rw, payload); err != nil {
		return ErrorUnexpectedEof.Error(err)
	}

	return nil
}

func (c *channel) Recv(ctx context.Context) ([]byte, error) {
	if c == nil {
		return nil, ErrorNilPointer.Error(nil)
	} else if ctx != nil && ctx.Err() != nil {
		return nil, ctx.Err()
	}

	g, err := c.st.Begin()
	if err != nil {
		return nil, ErrorConnectionClosed.Error(err)
	}
	defer g.Release()

	c.rmu.Lock()
	defer c.rmu.Unlock()

	var hdr [lengthPrefixSize]byte
	if _, err = io.ReadFull(c.rw, hdr[:]); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, ErrorUnexpectedEof.Error(err)
	}

	length := binary.BigEndian.Uint32(hdr[:])
	if length > c.cfg.maxFrameSize() {
		return nil, ErrorFrameTooLarge.Error(nil)
	} else if length == 0 {
		return []byte{}, nil
	}

	payload := make([]byte, length)
	if _, err = io.ReadFull(c.rw, payload); err != nil {
		return nil, ErrorUnexpectedEof.Error(err)
	}

	return payload, nil
}

func (c *channel) SendJSON(ctx context.Context, v interface{}) error {
	if c == nil {
		return ErrorNilPointer.Error(nil)
	}

	p, err := json.Marshal(v)
	if err != nil {
		return ErrorInvalidData.Error(err)
	}

	return c.Send(ctx, p)
}

func (c *channel) RecvJSON(ctx context.Context, v interface{}) error {
	if c == nil {
		return ErrorNilPointer.Error(nil)
	}

	p, err := c.Recv(ctx)
	if err != nil {
		return err
	}

	if err = json.Unmarshal(p, v); err != nil {
		return ErrorInvalidData.Error(err)
	}

	return nil
}

func (c *channel) Shutdown() {
	if c == nil {
		return
	}
	c.st.Shutdown()
}

func (c *channel) Drain(ctx context.Context) error {
	if c == nil {
		return ErrorNilPointer.Error(nil)
	}
	return c.st.Drain(ctx)
}

func (c *channel) ShutdownTimeout(d time.Duration) error {
	if c == nil {
		return ErrorNilPointer.Error(nil)
	}
	c.st.Shutdown()
	return c.st.DrainTimeout(d)
}

func (c *channel) Close() error {
	if c == nil {
		return ErrorNilPointer.Error(nil)
	}
	return c.rw.Close()
}

func writeFull(w io.Writer, p []byte) error {
	for len(p) > 0 {
		n, err := w.Write(p)
		if err != nil {
			return err
		}
		p = p[n:]
	}
	return nil
}
