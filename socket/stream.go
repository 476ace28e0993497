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

package socket

import (
	"context"
	"io"
	"net"

	"github.com/nabbar/ipckit/framed"
)

// newStream wraps any net.Conn (Unix domain socket, go-winio pipe
// connection) as a LocalStream.
func newStream(conn net.Conn) LocalStream {
	return &stream{
		conn: conn,
		frm:  framed.New(conn, framed.DefaultConfig()),
	}
}

type stream struct {
	conn net.Conn
	frm  framed.Channel
}

func (s *stream) Read(p []byte) (int, error) { return s.conn.Read(p) }

func (s *stream) Write(p []byte) (int, error) { return s.conn.Write(p) }

func (s *stream) Close() error { return s.conn.Close() }

func (s *stream) ReadExact(p []byte) error {
	_, err := io.ReadFull(s.conn, p)
	return err
}

func (s *stream) WriteAll(p []byte) error {
	for len(p) > 0 {
		n, err := s.conn.Write(p)
		if err != nil {
			return err
		}
		p = p[n:]
	}
	return nil
}

func (s *stream) SendJSON(ctx context.Context, v interface{}) error {
	return s.frm.SendJSON(ctx, v)
}

func (s *stream) RecvJSON(ctx context.Context, v interface{}) error {
	return s.frm.RecvJSON(ctx, v)
}

func (s *stream) Framed() framed.Channel { return s.frm }
