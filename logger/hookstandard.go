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

	"github.com/mattn/go-colorable"
	"github.com/sirupsen/logrus"
)

// StdWriter selects which standard stream a HookStandard writes to.
type StdWriter uint8

const (
	StdOut StdWriter = iota
	StdErr
)

func (s StdWriter) writer(disableColor bool) io.Writer {
	switch s {
	case StdErr:
		if disableColor {
			return os.Stderr
		}
		return colorable.NewColorableStderr()
	default:
		if disableColor {
			return os.Stdout
		}
		return colorable.NewColorableStdout()
	}
}

// HookStandard is a logrus.Hook writing formatted entries to an ANSI
// colorized stdout or stderr stream.
type HookStandard interface {
	logrus.Hook
	RegisterHook(log *logrus.Logger)
}

type hookStandard struct {
	out    io.Writer
	lvls   []logrus.Level
	format logrus.Formatter
}

func NewHookStandard(opt Options, s StdWriter, lvls []logrus.Level, format logrus.Formatter) HookStandard {
	return &hookStandard{
		out:    s.writer(opt.DisableColor),
		lvls:   lvls,
		format: format,
	}
}

func (h *hookStandard) Levels() []logrus.Level {
	if h == nil {
		return nil
	}
	return h.lvls
}

func (h *hookStandard) Fire(entry *logrus.Entry) error {
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

	_, err = h.out.Write(p)
	return err
}

func (h *hookStandard) RegisterHook(log *logrus.Logger) {
	if h == nil || log == nil {
		return
	}
	log.AddHook(h)
}
