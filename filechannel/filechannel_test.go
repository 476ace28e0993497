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

package filechannel_test

import (
	"context"
	"time"

	"github.com/nabbar/ipckit/filechannel"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Mailbox", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	It("delivers a request from backend to frontend via Recv", func() {
		backend, err := filechannel.Open(dir, filechannel.RoleBackend)
		Expect(err).ToNot(HaveOccurred())
		defer func() { _ = backend.Close() }()

		frontend, err := filechannel.Open(dir, filechannel.RoleFrontend)
		Expect(err).ToNot(HaveOccurred())
		defer func() { _ = frontend.Close() }()

		id, err := backend.Send(filechannel.KindRequest, "ping", map[string]string{"a": "b"}, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(id).To(Equal(int64(1)))

		msgs, err := frontend.Recv()
		Expect(err).ToNot(HaveOccurred())
		Expect(msgs).To(HaveLen(1))
		Expect(msgs[0].Method).To(Equal("ping"))

		// a second Recv before any new Send returns nothing new.
		msgs, err = frontend.Recv()
		Expect(err).ToNot(HaveOccurred())
		Expect(msgs).To(BeEmpty())
	})

	It("assigns strictly increasing ids per writer", func() {
		backend, err := filechannel.Open(dir, filechannel.RoleBackend)
		Expect(err).ToNot(HaveOccurred())
		defer func() { _ = backend.Close() }()

		id1, err := backend.Send(filechannel.KindEvent, "tick", nil, nil)
		Expect(err).ToNot(HaveOccurred())
		id2, err := backend.Send(filechannel.KindEvent, "tick", nil, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(id2).To(BeNumerically(">", id1))
	})

	It("resolves WaitResponse once a matching reply_to arrives", func() {
		backend, err := filechannel.Open(dir, filechannel.RoleBackend)
		Expect(err).ToNot(HaveOccurred())
		defer func() { _ = backend.Close() }()

		frontend, err := filechannel.Open(dir, filechannel.RoleFrontend)
		Expect(err).ToNot(HaveOccurred())
		defer func() { _ = frontend.Close() }()

		reqID, err := backend.Send(filechannel.KindRequest, "compute", nil, nil)
		Expect(err).ToNot(HaveOccurred())

		go func() {
			time.Sleep(20 * time.Millisecond)
			_, _ = frontend.Send(filechannel.KindResponse, "", 42, &reqID)
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		reply, err := backend.WaitResponse(ctx, reqID)
		Expect(err).ToNot(HaveOccurred())
		Expect(*reply.ReplyTo).To(Equal(reqID))
	})

	It("fails WaitResponse with Timeout when no reply arrives in time", func() {
		backend, err := filechannel.Open(dir, filechannel.RoleBackend)
		Expect(err).ToNot(HaveOccurred())
		defer func() { _ = backend.Close() }()

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()
		_, err = backend.WaitResponse(ctx, 999)
		Expect(err).To(HaveOccurred())
	})

	It("truncates both files on Clear", func() {
		backend, err := filechannel.Open(dir, filechannel.RoleBackend)
		Expect(err).ToNot(HaveOccurred())
		defer func() { _ = backend.Close() }()

		frontend, err := filechannel.Open(dir, filechannel.RoleFrontend)
		Expect(err).ToNot(HaveOccurred())
		defer func() { _ = frontend.Close() }()

		_, err = backend.Send(filechannel.KindEvent, "x", nil, nil)
		Expect(err).ToNot(HaveOccurred())

		Expect(backend.Clear()).To(Succeed())

		msgs, err := frontend.Recv()
		Expect(err).ToNot(HaveOccurred())
		Expect(msgs).To(BeEmpty())
	})
})
