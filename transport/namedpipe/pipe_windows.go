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

//go:build windows

package namedpipe

import (
	"context"
	"net"
	"os"
	"strings"
	"sync/atomic"

	"github.com/Microsoft/go-winio"
)

func resolveName(name string) string {
	if strings.HasPrefix(name, `\\.\pipe\`) {
		return name
	}
	return `\\.\pipe\` + name
}

// perm and group have no meaning for a Windows named pipe; access is
// governed by the pipe's security descriptor instead, left at its
// system default here.
func listen(name string, _ os.FileMode, _ int) (Listener, error) {
	path := resolveName(name)

	ln, err := winio.ListenPipe(path, nil)
	if err != nil {
		if strings.Contains(err.Error(), "all pipe instances are busy") ||
			strings.Contains(err.Error(), "already exists") {
			return nil, ErrorAlreadyExists.Error(err)
		}
		return nil, ErrorPermissionDenied.Error(err)
	}

	return &winListener{ln: ln, path: path, closed: new(atomic.Bool)}, nil
}

func dial(ctx context.Context, name string) (net.Conn, error) {
	path := resolveName(name)

	conn, err := winio.DialPipeContext(ctx, path)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, ErrorNotFound.Error(err)
	}

	return conn, nil
}

type winListener struct {
	ln     net.Listener
	path   string
	closed *atomic.Bool
}

func (l *winListener) Accept(ctx context.Context) (net.Conn, error) {
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

func (l *winListener) Addr() string { return l.path }

func (l *winListener) Close() error {
	if !l.closed.CompareAndSwap(false, true) {
		return nil
	}
	return l.ln.Close()
}
