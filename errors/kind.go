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

package errors

import "sync"

// Kind classifies a CodeError along an axis orthogonal to its package
// range: what category of failure it represents, independent of which
// package raised it. Callers that only care "was this a timeout" use
// KindOf instead of comparing against a specific package's constants.
type Kind uint8

const (
	KindNone Kind = iota
	KindAlreadyExists
	KindNotFound
	KindPermissionDenied
	KindConnectionClosed
	KindBrokenPipe
	KindUnexpectedEof
	KindFrameTooLarge
	KindInvalidData
	KindOutOfBounds
	KindInvalidState
	KindResourceExhausted
	KindTimeout
	KindCancelled
	KindPlatformError
)

var (
	kindMu  sync.RWMutex
	kindMap = make(map[CodeError]Kind)
)

// RegisterKind associates a Kind with a CodeError. Packages call this
// from their init() alongside RegisterIdFctMessage, once per exported
// error code that maps to one of the taxonomy kinds.
func RegisterKind(code CodeError, kind Kind) {
	kindMu.Lock()
	defer kindMu.Unlock()
	kindMap[code] = kind
}

// KindOf returns the registered Kind for code, or KindNone if no package
// registered one.
func KindOf(code CodeError) Kind {
	kindMu.RLock()
	defer kindMu.RUnlock()
	return kindMap[code]
}

// KindIs reports whether err carries (directly or through a direct parent
// with a non-zero code) a CodeError registered under kind.
func KindIs(err error, kind Kind) bool {
	e, ok := err.(Error)
	if !ok {
		return false
	}

	for _, c := range e.CodeSlice() {
		if KindOf(CodeError(c)) == kind {
			return true
		}
	}

	return false
}

func (k Kind) String() string {
	switch k {
	case KindAlreadyExists:
		return "already_exists"
	case KindNotFound:
		return "not_found"
	case KindPermissionDenied:
		return "permission_denied"
	case KindConnectionClosed:
		return "connection_closed"
	case KindBrokenPipe:
		return "broken_pipe"
	case KindUnexpectedEof:
		return "unexpected_eof"
	case KindFrameTooLarge:
		return "frame_too_large"
	case KindInvalidData:
		return "invalid_data"
	case KindOutOfBounds:
		return "out_of_bounds"
	case KindInvalidState:
		return "invalid_state"
	case KindResourceExhausted:
		return "resource_exhausted"
	case KindTimeout:
		return "timeout"
	case KindCancelled:
		return "cancelled"
	case KindPlatformError:
		return "platform_error"
	default:
		return "none"
	}
}
