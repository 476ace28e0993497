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

package namedpipe

import "github.com/nabbar/ipckit/errors"

const (
	ErrorAlreadyExists errors.CodeError = iota + errors.MinPkgTransport + 20
	ErrorNotFound
	ErrorPermissionDenied
)

var isCodeError = false

func IsCodeError() bool {
	return isCodeError
}

func init() {
	isCodeError = errors.ExistInMapMessage(ErrorAlreadyExists)
	errors.RegisterIdFctMessage(ErrorAlreadyExists, getMessage)

	errors.RegisterKind(ErrorAlreadyExists, errors.KindAlreadyExists)
	errors.RegisterKind(ErrorNotFound, errors.KindNotFound)
	errors.RegisterKind(ErrorPermissionDenied, errors.KindPermissionDenied)
}

func getMessage(code errors.CodeError) (message string) {
	switch code {
	case errors.UnknownError:
		return ""
	case ErrorAlreadyExists:
		return "a named pipe is already bound to this name"
	case ErrorNotFound:
		return "no named pipe is bound to this name"
	case ErrorPermissionDenied:
		return "the operating system denied access to the named pipe resource"
	}

	return ""
}
