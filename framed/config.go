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

import "github.com/nabbar/ipckit/size"

// MaxFramePayload is the hard ceiling on a frame's payload length: a 4-byte
// big-endian length prefix can describe more, but the wire format caps it
// at 64 MiB regardless of Config.
const MaxFramePayload = 64 * 1024 * 1024

// Config tunes a Channel. MaxFrameSize must not exceed MaxFramePayload; a
// zero value defaults to MaxFramePayload.
type Config struct {
	MaxFrameSize size.Size `json:"max_frame_size" yaml:"max_frame_size" mapstructure:"max_frame_size"`
}

// DefaultConfig returns a Config with MaxFrameSize at the wire format's
// ceiling of 64 MiB.
func DefaultConfig() Config {
	return Config{MaxFrameSize: size.Size(MaxFramePayload)}
}

func (c Config) maxFrameSize() uint32 {
	if c.MaxFrameSize == 0 || c.MaxFrameSize.Uint64() > MaxFramePayload {
		return MaxFramePayload
	}
	return uint32(c.MaxFrameSize.Uint64())
}
