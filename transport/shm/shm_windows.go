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

//go:build windows

package shm

import (
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/windows"
)

// create backs the region by the system page file, named in the
// caller's namespace (no "Global\"/"Local\" prefix is added; pass one
// in name if cross-session visibility is required).
func create(name string, size int) (Region, error) {
	namePtr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, ErrorPermissionDenied.Error(err)
	}

	sizeHigh := uint32(uint64(size) >> 32)
	sizeLow := uint32(uint64(size) & 0xFFFFFFFF)

	// CreateFileMapping returns a handle to the existing mapping (at its
	// original size) rather than failing when name is already bound;
	// ERROR_ALREADY_EXISTS only surfaces via GetLastError, which this
	// wrapper does not expose, so callers needing strict creation
	// semantics should pick collision-resistant names (e.g. a uuid
	// suffix), the same convention the socket/transport/namedpipe tests
	// in this module use.
	h, err := windows.CreateFileMapping(windows.InvalidHandle, nil, windows.PAGE_READWRITE, sizeHigh, sizeLow, namePtr)
	if err != nil {
		return nil, ErrorPermissionDenied.Error(err)
	}

	addr, err := windows.MapViewOfFile(h, windows.FILE_MAP_WRITE|windows.FILE_MAP_READ, 0, 0, uintptr(size))
	if err != nil {
		_ = windows.CloseHandle(h)
		return nil, ErrorPermissionDenied.Error(err)
	}

	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)

	return &mapping{
		name:   name,
		data:   data,
		closed: new(atomic.Bool),
		release: func() error {
			err1 := windows.UnmapViewOfFile(addr)
			err2 := windows.CloseHandle(h)
			if err1 != nil {
				return err1
			}
			return err2
		},
	}, nil
}

func open(name string) (Region, error) {
	namePtr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, ErrorPermissionDenied.Error(err)
	}

	h, err := windows.OpenFileMapping(windows.FILE_MAP_WRITE|windows.FILE_MAP_READ, false, namePtr)
	if err != nil {
		return nil, ErrorNotFound.Error(err)
	}

	addr, err := windows.MapViewOfFile(h, windows.FILE_MAP_WRITE|windows.FILE_MAP_READ, 0, 0, 0)
	if err != nil {
		_ = windows.CloseHandle(h)
		return nil, ErrorPermissionDenied.Error(err)
	}

	size, err := viewSize(addr)
	if err != nil {
		_ = windows.UnmapViewOfFile(addr)
		_ = windows.CloseHandle(h)
		return nil, ErrorPermissionDenied.Error(err)
	}

	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)

	return &mapping{
		name:   name,
		data:   data,
		closed: new(atomic.Bool),
		release: func() error {
			err1 := windows.UnmapViewOfFile(addr)
			err2 := windows.CloseHandle(h)
			if err1 != nil {
				return err1
			}
			return err2
		},
	}, nil
}

// viewSize queries the committed region size of an existing mapped
// view via VirtualQuery, since MapViewOfFile with length 0 maps the
// entire region but does not itself report its size.
func viewSize(addr uintptr) (int, error) {
	var info windows.MemoryBasicInformation
	err := windows.VirtualQuery(addr, &info, unsafe.Sizeof(info))
	if err != nil {
		return 0, err
	}
	return int(info.RegionSize), nil
}
