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
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

func newLogger(ctx context.Context, opt Options) (Logger, error) {
	l := &lgr{
		ctx:   ctx,
		opt:   opt.withDefaults(),
		level: InfoLevel,
		log:   logrus.New(),
	}
	l.log.SetOutput(io.Discard)
	l.log.SetLevel(logrus.TraceLevel)

	if err := l.installHooks(); err != nil {
		return nil, err
	}

	return l, nil
}

type lgr struct {
	ctx context.Context

	mu     sync.RWMutex
	opt    Options
	level  Level
	fields Fields

	log   *logrus.Logger
	files []HookFile
}

func (l *lgr) installHooks() error {
	l.log.ReplaceHooks(make(logrus.LevelHooks))
	l.files = nil

	if !l.opt.DisableStandard {
		std := NewHookStandard(l.opt, StdOut, allLevels(), nil)
		std.RegisterHook(l.log)
	}

	for _, f := range l.opt.LogFile {
		hf, err := NewHookFile(f, levelsOf(f.levels()), nil)
		if err != nil {
			return err
		}
		hf.RegisterHook(l.log)
		l.files = append(l.files, hf)
	}

	return nil
}

func allLevels() []logrus.Level {
	return []logrus.Level{
		logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel,
		logrus.WarnLevel, logrus.InfoLevel, logrus.DebugLevel, logrus.TraceLevel,
	}
}

func levelsOf(lvls []Level) []logrus.Level {
	res := make([]logrus.Level, 0, len(lvls))
	for _, l := range lvls {
		res = append(res, l.Logrus())
	}
	return res
}

func (l *lgr) SetLevel(lvl Level) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = lvl
}

func (l *lgr) GetLevel() Level {
	if l == nil {
		return NilLevel
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

func (l *lgr) SetOptions(ctx context.Context, opt Options) error {
	if l == nil {
		return ErrorNilPointer.Error(nil)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.ctx = ctx
	l.opt = opt.withDefaults()
	return l.installHooks()
}

func (l *lgr) GetOptions() Options {
	if l == nil {
		return Options{}
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.opt.Clone()
}

func (l *lgr) SetFields(f Fields) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fields = f
}

func (l *lgr) GetFields() Fields {
	if l == nil {
		return nil
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.fields.clone()
}

func (l *lgr) Clone() Logger {
	if l == nil {
		return nil
	}

	l.mu.RLock()
	opt := l.opt.Clone()
	lvl := l.level
	fld := l.fields.clone()
	ctx := l.ctx
	l.mu.RUnlock()

	n, err := newLogger(ctx, opt)
	if err != nil {
		return nil
	}

	c := n.(*lgr)
	c.level = lvl
	c.fields = fld
	return c
}

func (l *lgr) Entry(lvl Level, message string, args ...interface{}) Entry {
	return &entry{
		logger:  l,
		message: fmt.Sprintf(message, args...),
		fields:  l.GetFields(),
	}
}

func (l *lgr) Debug(message string, args ...interface{}) {
	l.Entry(DebugLevel, message, args...).Log(DebugLevel, message, args...)
}

func (l *lgr) Info(message string, args ...interface{}) {
	l.Entry(InfoLevel, message, args...).Log(InfoLevel, message, args...)
}

func (l *lgr) Warning(message string, args ...interface{}) {
	l.Entry(WarnLevel, message, args...).Log(WarnLevel, message, args...)
}

func (l *lgr) Error(message string, args ...interface{}) {
	l.Entry(ErrorLevel, message, args...).Log(ErrorLevel, message, args...)
}

func (l *lgr) Fatal(message string, args ...interface{}) {
	l.Entry(FatalLevel, message, args...).Log(FatalLevel, message, args...)
}

func (l *lgr) Panic(message string, args ...interface{}) {
	l.Entry(PanicLevel, message, args...).Log(PanicLevel, message, args...)
}

func (l *lgr) LogDetails(lvl Level, message string, extra Fields, err ...error) error {
	var out error
	for _, e := range err {
		if e != nil {
			out = e
			break
		}
	}

	if out == nil {
		return nil
	}

	l.Entry(lvl, message).FieldMerge(extra).ErrorAdd(err...).Log(lvl, message)
	return out
}

func (l *lgr) CheckError(lvl Level, message string, err error) bool {
	if err == nil {
		return true
	}

	l.Entry(lvl, message).ErrorAdd(err).Log(lvl, message)
	return false
}

func (l *lgr) Close() {
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, f := range l.files {
		_ = f.Close()
	}
	l.files = nil
}

type entry struct {
	logger  *lgr
	message string
	fields  Fields
	data    interface{}
	errs    []error
}

func (e *entry) FieldAdd(key string, val interface{}) Entry {
	e.fields = e.fields.Add(key, val)
	return e
}

func (e *entry) FieldMerge(f Fields) Entry {
	e.fields = e.fields.Merge(f)
	return e
}

func (e *entry) FieldSet(f Fields) Entry {
	e.fields = f
	return e
}

func (e *entry) FieldClean(keys ...string) Entry {
	e.fields = e.fields.Clean(keys...)
	return e
}

func (e *entry) DataSet(data interface{}) Entry {
	e.data = data
	return e
}

func (e *entry) ErrorClean() Entry {
	e.errs = nil
	return e
}

func (e *entry) ErrorSet(err ...error) Entry {
	e.errs = err
	return e
}

func (e *entry) ErrorAdd(err ...error) Entry {
	e.errs = append(e.errs, err...)
	return e
}

func (e *entry) Check(lvl Level) bool {
	for _, err := range e.errs {
		if err != nil {
			return true
		}
	}
	return false
}

func (e *entry) Log(lvl Level, message string, args ...interface{}) {
	if e == nil || e.logger == nil {
		return
	}

	if lvl == NilLevel {
		return
	}

	if lvl.Uint8() > e.logger.GetLevel().Uint8() {
		return
	}

	fields := e.fields.Logrus()
	if e.data != nil {
		fields[FieldData] = e.data
	}

	var errs []string
	for _, err := range e.errs {
		if err != nil {
			errs = append(errs, err.Error())
		}
	}
	if len(errs) > 0 {
		fields[FieldError] = errs
	}

	msg := e.message
	if len(args) > 0 {
		msg = fmt.Sprintf(message, args...)
	}

	e.logger.log.WithFields(fields).Log(lvl.Logrus(), msg)
}
