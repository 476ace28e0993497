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

package framed_test

import (
	"context"
	"net"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	libfrm "github.com/nabbar/ipckit/framed"
	"github.com/nabbar/ipckit/size"
)

var _ = Describe("Channel", func() {
	var (
		client, server net.Conn
		a, b           libfrm.Channel
	)

	BeforeEach(func() {
		client, server = net.Pipe()
		a = libfrm.New(client, libfrm.DefaultConfig())
		b = libfrm.New(server, libfrm.DefaultConfig())
	})

	AfterEach(func() {
		_ = a.Close()
		_ = b.Close()
	})

	It("should deliver a byte payload unchanged", func() {
		go func() {
			_ = a.Send(context.Background(), []byte("hello"))
		}()

		p, err := b.Recv(context.Background())
		Expect(err).ToNot(HaveOccurred())
		Expect(p).To(Equal([]byte("hello")))
	})

	It("should deliver JSON payloads round-trip", func() {
		type ping struct {
			Ping int `json:"ping"`
		}

		go func() {
			_ = a.SendJSON(context.Background(), ping{Ping: 1})
		}()

		var out ping
		Expect(b.RecvJSON(context.Background(), &out)).ToNot(HaveOccurred())
		Expect(out.Ping).To(Equal(1))
	})

	It("should preserve order across multiple sends", func() {
		go func() {
			for i := 0; i < 5; i++ {
				_ = a.SendJSON(context.Background(), i)
			}
		}()

		for i := 0; i < 5; i++ {
			var v int
			Expect(b.RecvJSON(context.Background(), &v)).ToNot(HaveOccurred())
			Expect(v).To(Equal(i))
		}
	})

	It("should reject a payload larger than the configured maximum", func() {
		small := libfrm.New(client, libfrm.Config{MaxFrameSize: size.Size(4)})
		err := small.Send(context.Background(), []byte("too big"))
		Expect(err).To(HaveOccurred())
	})

	It("should reject new sends once shut down, while allowing drain", func() {
		done := make(chan error, 1)
		go func() {
			done <- a.Send(context.Background(), []byte("x"))
		}()

		_, _ = b.Recv(context.Background())
		Eventually(done).Should(Receive(BeNil()))

		a.Shutdown()
		err := a.Send(context.Background(), []byte("y"))
		Expect(err).To(HaveOccurred())

		Expect(a.Drain(context.Background())).ToNot(HaveOccurred())
	})

	It("ShutdownTimeout should succeed once in-flight work finishes", func() {
		Expect(a.ShutdownTimeout(200 * time.Millisecond)).ToNot(HaveOccurred())
	})
})
