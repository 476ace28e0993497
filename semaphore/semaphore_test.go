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

package semaphore_test

import (
	"context"
	"time"

	"github.com/nabbar/ipckit/semaphore"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Gate", func() {
	It("admits up to the configured limit and rejects beyond it", func() {
		g := semaphore.New(2)

		Expect(g.TryAcquire()).To(BeTrue())
		Expect(g.TryAcquire()).To(BeTrue())
		Expect(g.TryAcquire()).To(BeFalse())

		g.Release()
		Expect(g.TryAcquire()).To(BeTrue())
	})

	It("returns ErrorResourceExhausted from TryAcquireErr once full", func() {
		g := semaphore.New(1)
		Expect(g.TryAcquireErr()).ToNot(HaveOccurred())
		Expect(g.TryAcquireErr()).To(HaveOccurred())
	})

	It("is unbounded when constructed with a non-positive limit", func() {
		g := semaphore.New(0)
		for i := 0; i < 100; i++ {
			Expect(g.TryAcquire()).To(BeTrue())
		}
	})

	It("blocks Acquire until a slot is released", func() {
		g := semaphore.New(1)
		Expect(g.TryAcquire()).To(BeTrue())

		released := make(chan struct{})
		go func() {
			time.Sleep(20 * time.Millisecond)
			g.Release()
			close(released)
		}()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		Expect(g.Acquire(ctx)).ToNot(HaveOccurred())
		Eventually(released).Should(BeClosed())
	})
})
