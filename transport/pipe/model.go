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

package pipe

import (
	"os"
	"sync/atomic"
)

func newPair() (Pair, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, ErrorSyscallPipe.Error(err)
	}

	return &pair{
		r: &end{role: RoleReader, f: r, taken: new(atomic.Bool)},
		w: &end{role: RoleWriter, f: w, taken: new(atomic.Bool)},
	}, nil
}

type end struct {
	role   Role
	f      *os.File
	taken  *atomic.Bool
	closed atomic.Bool
}

func (e *end) Role() Role { return e.role }

func (e *end) Read(p []byte) (int, error) { return e.f.Read(p) }

func (e *end) Write(p []byte) (int, error) { return e.f.Write(p) }

func (e *end) Close() error {
	if e.closed.CompareAndSwap(false, true) {
		return e.f.Close()
	}
	return nil
}

func (e *end) File() *os.File { return e.f }

type pair struct {
	r *end
	w *end
}

func (p *pair) Reader() End { return p.r }

func (p *pair) Writer() End { return p.w }

func (p *pair) TakeReader() (End, error) {
	if !p.r.taken.CompareAndSwap(false, true) {
		return nil, ErrorAlreadyTaken.Error(nil)
	}
	return p.r, nil
}

func (p *pair) TakeWriter() (End, error) {
	if !p.w.taken.CompareAndSwap(false, true) {
		return nil, ErrorAlreadyTaken.Error(nil)
	}
	return p.w, nil
}

func (p *pair) Close() error {
	var err error

	if !p.r.taken.Load() {
		if e := p.r.Close(); e != nil {
			err = e
		}
	}

	if !p.w.taken.Load() {
		if e := p.w.Close(); e != nil {
			err = e
		}
	}

	return err
}
