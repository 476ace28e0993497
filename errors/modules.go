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

// Per-package error code ranges. Each package that declares its own
// CodeError constants offsets them from its Min value so that a bare
// numeric code can be traced back to the package that raised it.
const (
	MinPkgIOUtils       = 100
	MinPkgNetwork       = 200
	MinPkgTransport     = 300
	MinPkgSocket        = 400
	MinPkgFramed        = 500
	MinPkgShutdown      = 600
	MinPkgFileChannel   = 700
	MinPkgEventBus      = 800
	MinPkgTask          = 900
	MinPkgMetrics       = 1000
	MinPkgSemaphore     = 1100
	MinPkgLogger        = 1200
	MinPkgRunner        = 1300

	MinAvailable = 2000
)
