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

package errors_test

import (
	"errors"

	liberr "github.com/nabbar/ipckit/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const testCode liberr.CodeError = liberr.MinPkgTask + 1

func init() {
	liberr.RegisterIdFctMessage(testCode, func(code liberr.CodeError) string {
		if code == testCode {
			return "synthetic test error"
		}
		return ""
	})
	liberr.RegisterKind(testCode, liberr.KindInvalidData)
}

var _ = Describe("CodeError", func() {
	It("builds an Error carrying its own code and message", func() {
		e := testCode.Error(nil)

		Expect(e.GetCode()).To(Equal(testCode))
		Expect(e.Code()).To(Equal(testCode.Uint16()))
		Expect(e.StringError()).To(Equal("synthetic test error"))
	})

	It("is registered against its Kind", func() {
		Expect(liberr.KindOf(testCode)).To(Equal(liberr.KindInvalidData))

		e := testCode.Error(nil)
		Expect(liberr.KindIs(e, liberr.KindInvalidData)).To(BeTrue())
	})
})

var _ = Describe("Hierarchy", func() {
	It("tracks an added parent error", func() {
		parent := errors.New("root cause")
		e := testCode.Error(nil)
		e.Add(parent)

		Expect(e.HasParent()).To(BeTrue())
		Expect(e.HasError(parent)).To(BeTrue())
	})
})

var _ = Describe("Package helpers", func() {
	It("IsCode matches only the exact code", func() {
		e := testCode.Error(nil)

		Expect(liberr.IsCode(e, testCode)).To(BeTrue())
		Expect(liberr.IsCode(e, liberr.UnknownError)).To(BeFalse())
	})

	It("Is/Get recognize an Error value", func() {
		e := testCode.Error(nil)

		Expect(liberr.Is(e)).To(BeTrue())
		Expect(liberr.Get(e)).NotTo(BeNil())
	})

	It("Make wraps a plain error at UnknownError", func() {
		plain := errors.New("plain failure")
		wrapped := liberr.Make(plain)

		Expect(wrapped).NotTo(BeNil())
		Expect(wrapped.GetCode()).To(Equal(liberr.UnknownError))
	})

	It("MakeIfError skips nils and aggregates the rest", func() {
		Expect(liberr.MakeIfError(nil, nil)).To(BeNil())

		e := liberr.MakeIfError(nil, errors.New("one"), errors.New("two"))
		Expect(e).NotTo(BeNil())
		Expect(e.GetParentCode()).NotTo(BeEmpty())
	})

	It("ContainsString searches the error message", func() {
		e := testCode.Error(nil)

		Expect(liberr.ContainsString(e, "synthetic")).To(BeTrue())
		Expect(liberr.ContainsString(e, "nope-not-there")).To(BeFalse())
	})
})
