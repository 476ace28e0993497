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

//go:build !windows

package shm

import (
	"os"
	"path/filepath"
	"sync/atomic"

	"golang.org/x/sys/unix"
)

const shmDir = "/dev/shm"

func shmPath(name string) string {
	return filepath.Join(shmDir, name)
}

func create(name string, size int) (Region, error) {
	path := shmPath(name)

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		if os.IsExist(err) {
			return nil, ErrorAlreadyExists.Error(err)
		}
		return nil, ErrorPermissionDenied.Error(err)
	}
	defer func() { _ = f.Close() }()

	if err = f.Truncate(int64(size)); err != nil {
		_ = os.Remove(path)
		return nil, ErrorPermissionDenied.Error(err)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		_ = os.Remove(path)
		return nil, ErrorPermissionDenied.Error(err)
	}

	return &mapping{
		name:   name,
		data:   data,
		closed: new(atomic.Bool),
		release: func() error {
			err1 := unix.Munmap(data)
			err2 := os.Remove(path)
			if err1 != nil {
				return err1
			}
			return err2
		},
	}, nil
}

func open(name string) (Region, error) {
	path := shmPath(name)

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrorNotFound.Error(err)
		}
		return nil, ErrorPermissionDenied.Error(err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, ErrorPermissionDenied.Error(err)
	}
	size := int(info.Size())

	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, ErrorPermissionDenied.Error(err)
	}

	return &mapping{
		name:    name,
		data:    data,
		closed:  new(atomic.Bool),
		release: func() error { return unix.Munmap(data) },
	}, nil
}
