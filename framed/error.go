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

package framed

import "github.com/nabbar/ipckit/errors"

const (
	ErrorFrameTooLarge errors.CodeError = iota + errors.MinPkgFramed
	ErrorUnexpectedEof
	ErrorConnectionClosed
	ErrorInvalidData
	ErrorNilPointer
)

var isCodeError = false

func IsCodeError() bool {
	return isCodeError
}

func init() {
	isCodeError = errors.ExistInMapMessage(ErrorFrameTooLarge)
	errors.RegisterIdFctMessage(ErrorFrameTooLarge, getMessage)

	errors.RegisterKind(ErrorFrameTooLarge, errors.KindFrameTooLarge)
	errors.RegisterKind(ErrorUnexpectedEof, errors.KindUnexpectedEof)
	errors.RegisterKind(ErrorConnectionClosed, errors.KindConnectionClosed)
	errors.RegisterKind(ErrorInvalidData, errors.KindInvalidData)
	errors.RegisterKind(ErrorNilPointer, errors.KindInvalidState)
}

func getMessage(code errors.CodeError) (message string) {
	switch code {
	case errors.UnknownError:
		return ""
	case ErrorFrameTooLarge:
		return "frame length prefix exceeds the maximum payload size"
	case ErrorUnexpectedEof:
		return "connection closed while reading a frame"
	case ErrorConnectionClosed:
		return "framed channel is shut down"
	case ErrorInvalidData:
		return "payload could not be decoded as JSON"
	case ErrorNilPointer:
		return "cannot call function for a nil pointer"
	}

	return ""
}
