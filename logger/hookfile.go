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

package logger

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// HookFile is a logrus.Hook appending formatted entries to a single log
// file, guarded for concurrent writers.
type HookFile interface {
	logrus.Hook
	RegisterHook(log *logrus.Logger)
	io.Closer
}

type hookFile struct {
	mu     sync.Mutex
	file   *os.File
	lvls   []logrus.Level
	format logrus.Formatter
}

func NewHookFile(opt OptionsFile, lvls []logrus.Level, format logrus.Formatter) (HookFile, error) {
	if opt.Filepath == "" {
		return nil, ErrorFileMissingPath.Error(nil)
	}

	opt = opt.withDefaults()

	if opt.CreatePath {
		if err := os.MkdirAll(filepath.Dir(opt.Filepath), opt.PathMode); err != nil {
			return nil, ErrorFileOpen.Error(err)
		}
	}

	flags := os.O_APPEND | os.O_WRONLY
	if opt.Create {
		flags |= os.O_CREATE
	}

	f, err := os.OpenFile(opt.Filepath, flags, opt.FileMode)
	if err != nil {
		return nil, ErrorFileOpen.Error(err)
	}

	return &hookFile{
		file:   f,
		lvls:   lvls,
		format: format,
	}, nil
}

func (h *hookFile) Levels() []logrus.Level {
	if h == nil {
		return nil
	}
	return h.lvls
}

func (h *hookFile) Fire(entry *logrus.Entry) error {
	if h == nil {
		return ErrorNilPointer.Error(nil)
	}

	f := h.format
	if f == nil {
		f = entry.Logger.Formatter
	}

	p, err := f.Format(entry)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err = h.file.Write(p)
	return err
}

func (h *hookFile) RegisterHook(log *logrus.Logger) {
	if h == nil || log == nil {
		return
	}
	log.AddHook(h)
}

func (h *hookFile) Close() error {
	if h == nil {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	return h.file.Close()
}
