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

package socket

import (
	"context"

	"github.com/nabbar/ipckit/errors"
	"github.com/nabbar/ipckit/socket/config"
	"github.com/nabbar/ipckit/transport/namedpipe"
)

func listen(cfg config.Server) (LocalListener, error) {
	ln, err := namedpipe.Listen(cfg.Address, cfg.PermFile.FileMode(), int(cfg.GroupPerm))
	if err != nil {
		if errors.KindIs(err, errors.KindAlreadyExists) {
			return nil, ErrorAlreadyExists.Error(err)
		}
		return nil, ErrorPermissionDenied.Error(err)
	}
	return &listener{ln: ln}, nil
}

func dial(ctx context.Context, cfg config.Client) (LocalStream, error) {
	conn, err := namedpipe.Dial(ctx, cfg.Address)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, ErrorNotFound.Error(err)
	}
	return newStream(conn), nil
}

type listener struct {
	ln namedpipe.Listener
}

func (l *listener) Accept(ctx context.Context) (LocalStream, error) {
	conn, err := l.ln.Accept(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, ErrorConnectionClosed.Error(err)
	}
	return newStream(conn), nil
}

func (l *listener) Addr() string { return l.ln.Addr() }

func (l *listener) Close() error { return l.ln.Close() }
