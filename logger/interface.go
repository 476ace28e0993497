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

// Package logger provides a structured, leveled logger built on top of
// logrus, with pluggable stdout/stderr and file hooks and per-entry
// custom fields. It is the ambient logging facility shared by every
// ipckit component.
package logger

import (
	"context"
)

const (
	FieldTime    = "time"
	FieldLevel   = "level"
	FieldStack   = "stack"
	FieldCaller  = "caller"
	FieldFile    = "file"
	FieldLine    = "line"
	FieldMessage = "message"
	FieldError   = "error"
	FieldData    = "data"
)

// Entry is one in-flight log record: a level, a message, optional
// structured fields/data, and any errors accumulated while building it.
type Entry interface {
	FieldAdd(key string, val interface{}) Entry
	FieldMerge(f Fields) Entry
	FieldSet(f Fields) Entry
	FieldClean(keys ...string) Entry

	DataSet(data interface{}) Entry

	ErrorClean() Entry
	ErrorSet(err ...error) Entry
	ErrorAdd(err ...error) Entry

	// Check returns false, without logging, if every accumulated error
	// is nil.
	Check(lvl Level) bool

	// Log emits the entry at the given level unless the level is
	// NilLevel or less severe than the logger's level; it does not
	// consult Check. The message may contain printf verbs for args.
	Log(lvl Level, message string, args ...interface{})
}

// Logger is a leveled, field-aware logger instance. A Logger is safe
// for concurrent use.
type Logger interface {
	SetLevel(lvl Level)
	GetLevel() Level

	SetOptions(ctx context.Context, opt Options) error
	GetOptions() Options

	SetFields(f Fields)
	GetFields() Fields

	Clone() Logger

	Entry(lvl Level, message string, args ...interface{}) Entry

	Debug(message string, args ...interface{})
	Info(message string, args ...interface{})
	Warning(message string, args ...interface{})
	Error(message string, args ...interface{})
	Fatal(message string, args ...interface{})
	Panic(message string, args ...interface{})

	// LogDetails logs err (if not nil) at lvl, merging extra fields,
	// and returns err unchanged for inline error-handling chains.
	LogDetails(lvl Level, message string, extra Fields, err ...error) error

	// CheckError logs err (if not nil) at lvl and reports whether err
	// was nil.
	CheckError(lvl Level, message string, err error) bool

	Close()
}

// New builds a Logger from opt, installing the stdout/stderr hook
// (unless disabled) and one file hook per opt.LogFile entry.
func New(ctx context.Context, opt Options) (Logger, error) {
	return newLogger(ctx, opt)
}
