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

import "os"

// OptionsFile configures one rotating-free log file sink.
type OptionsFile struct {
	// LogLevel restricts this file to the given level names (as parsed by
	// GetLevelString); empty means every level is written.
	LogLevel []string

	Filepath string

	// Create opens/creates the file if it does not exist.
	Create bool
	// CreatePath creates the parent directory tree if missing.
	CreatePath bool

	FileMode os.FileMode
	PathMode os.FileMode

	DisableStack     bool
	DisableTimestamp bool
	EnableTrace      bool
	EnableAccessLog  bool
}

func (o OptionsFile) withDefaults() OptionsFile {
	if o.FileMode == 0 {
		o.FileMode = 0o644
	}
	if o.PathMode == 0 {
		o.PathMode = 0o755
	}
	return o
}

func (o OptionsFile) levels() []Level {
	if len(o.LogLevel) == 0 {
		return []Level{PanicLevel, FatalLevel, ErrorLevel, WarnLevel, InfoLevel, DebugLevel}
	}

	res := make([]Level, 0, len(o.LogLevel))
	for _, l := range o.LogLevel {
		res = append(res, GetLevelString(l))
	}
	return res
}

// Options configures a Logger instance: which standard-output hook to
// install and which file sinks to attach alongside it.
type Options struct {
	// DisableStandard suppresses the stdout/stderr hook entirely.
	DisableStandard bool
	// DisableColor disables ANSI colorization on the standard hook.
	DisableColor bool

	DisableStack     bool
	DisableTimestamp bool
	EnableTrace      bool
	TraceFilter      string
	EnableAccessLog  bool

	LogFile []OptionsFile
}

func (o Options) withDefaults() Options {
	files := make([]OptionsFile, 0, len(o.LogFile))
	for _, f := range o.LogFile {
		files = append(files, f.withDefaults())
	}
	o.LogFile = files
	return o
}

func (o Options) Clone() Options {
	res := o
	res.LogFile = make([]OptionsFile, len(o.LogFile))
	copy(res.LogFile, o.LogFile)
	return res
}
