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

// Package shm implements spec.md §4.1's shared memory region: a named
// block of memory mapped by multiple processes. The owner creates the
// region at an exact size; any process can open it afterward and reads
// the size back from the OS. Reads and writes are plain byte-slice
// copies at a caller-given offset; the library does not synchronize
// concurrent access, the caller must coordinate through a channel,
// filechannel mailbox, or a lock stored elsewhere.
//
// POSIX regions are backed by a file under /dev/shm (the same tmpfs
// shm_open itself uses on Linux) mapped with golang.org/x/sys/unix's
// Mmap. Windows regions use golang.org/x/sys/windows's
// CreateFileMapping/MapViewOfFile pair, named in the Global\ or Local\
// namespace.
package shm

// Region is a mapped shared memory block.
type Region interface {
	// Name returns the OS-level name the region was created or opened
	// under.
	Name() string
	// Size returns the region's exact byte length.
	Size() int

	// ReadAt copies len(p) bytes starting at offset into p. Fails with
	// OutOfBounds if offset+len(p) exceeds Size().
	ReadAt(offset int, p []byte) error
	// WriteAt copies p into the region starting at offset. Fails with
	// OutOfBounds if offset+len(p) exceeds Size().
	WriteAt(offset int, p []byte) error

	// Close unmaps the region. The owner (the process that called
	// Create) also unlinks the OS-level name; a non-owner only unmaps
	// its local mapping, leaving the region intact for other openers.
	Close() error
}

// Create maps a new named region of exactly size bytes. Fails with
// AlreadyExists if name is already taken.
func Create(name string, size int) (Region, error) {
	if size <= 0 {
		return nil, ErrorOutOfBounds.Error(nil)
	}
	return create(name, size)
}

// Open maps an existing region created by another call to Create,
// reading its size from the OS. Fails with NotFound if no region
// exists under name.
func Open(name string) (Region, error) {
	return open(name)
}
