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

package shm

import "sync/atomic"

// mapping is the platform-neutral bounds-checked view over a []byte
// backed by an OS mapping; shm_unix.go and shm_windows.go each build
// one of these and supply their own release func.
type mapping struct {
	name    string
	data    []byte
	closed  *atomic.Bool
	release func() error
}

func (m *mapping) Name() string { return m.name }

func (m *mapping) Size() int { return len(m.data) }

func (m *mapping) ReadAt(offset int, p []byte) error {
	if offset < 0 || offset+len(p) > len(m.data) {
		return ErrorOutOfBounds.Error(nil)
	}
	copy(p, m.data[offset:offset+len(p)])
	return nil
}

func (m *mapping) WriteAt(offset int, p []byte) error {
	if offset < 0 || offset+len(p) > len(m.data) {
		return ErrorOutOfBounds.Error(nil)
	}
	copy(m.data[offset:offset+len(p)], p)
	return nil
}

func (m *mapping) Close() error {
	if !m.closed.CompareAndSwap(false, true) {
		return nil
	}
	return m.release()
}
