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

//go:build !windows

package namedpipe

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"
)

func resolveName(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(os.TempDir(), name+".sock")
}

func isLive(path string) bool {
	c, err := net.DialTimeout("unix", path, 200*time.Millisecond)
	if err != nil {
		return false
	}
	_ = c.Close()
	return true
}

func listen(name string, perm os.FileMode, group int) (Listener, error) {
	path := resolveName(name)

	if isLive(path) {
		return nil, ErrorAlreadyExists.Error(nil)
	}
	_ = os.Remove(path)

	ln, err := net.Listen("unix", path)
	if err != nil {
		return nil, ErrorPermissionDenied.Error(err)
	}

	if perm != 0 {
		_ = os.Chmod(path, perm)
	}
	if group >= 0 {
		_ = os.Chown(path, -1, group)
	}

	return &unixListener{ln: ln, path: path, closed: new(atomic.Bool)}, nil
}

func dial(ctx context.Context, name string) (net.Conn, error) {
	path := resolveName(name)

	var d net.Dialer
	conn, err := d.DialContext(ctx, "unix", path)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, ErrorNotFound.Error(err)
	}

	return conn, nil
}

type unixListener struct {
	ln     net.Listener
	path   string
	closed *atomic.Bool
}

func (l *unixListener) Accept(ctx context.Context) (net.Conn, error) {
	type result struct {
		c   net.Conn
		err error
	}

	ch := make(chan result, 1)
	go func() {
		c, err := l.ln.Accept()
		ch <- result{c: c, err: err}
	}()

	select {
	case r := <-ch:
		return r.c, r.err
	case <-ctx.Done():
		go func() {
			if r := <-ch; r.err == nil {
				_ = r.c.Close()
			}
		}()
		return nil, ctx.Err()
	}
}

func (l *unixListener) Addr() string { return l.path }

func (l *unixListener) Close() error {
	if !l.closed.CompareAndSwap(false, true) {
		return nil
	}
	err := l.ln.Close()
	_ = os.Remove(l.path)
	return err
}
