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

package pipe

import "github.com/nabbar/ipckit/errors"

// The transport/ tree shares errors.MinPkgTransport across its three
// sub-packages; each reserves a 20-code block: pipe at +0, namedpipe at
// +20, shm at +40.
const (
	ErrorSyscallPipe errors.CodeError = iota + errors.MinPkgTransport
	ErrorAlreadyTaken
	ErrorNilPointer
)

var isCodeError = false

func IsCodeError() bool {
	return isCodeError
}

func init() {
	isCodeError = errors.ExistInMapMessage(ErrorSyscallPipe)
	errors.RegisterIdFctMessage(ErrorSyscallPipe, getMessage)

	errors.RegisterKind(ErrorSyscallPipe, errors.KindPlatformError)
	errors.RegisterKind(ErrorAlreadyTaken, errors.KindInvalidState)
	errors.RegisterKind(ErrorNilPointer, errors.KindInvalidState)
}

func getMessage(code errors.CodeError) (message string) {
	switch code {
	case errors.UnknownError:
		return ""
	case ErrorSyscallPipe:
		return "error occurs while creating the anonymous pipe"
	case ErrorAlreadyTaken:
		return "pipe end has already been taken"
	case ErrorNilPointer:
		return "cannot call function for a nil pointer"
	}

	return ""
}
