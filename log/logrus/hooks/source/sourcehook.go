// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package source

import (
	"fmt"
	"path"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// maxCallerDepth bounds the frames inspected for the first caller outside
// the logging packages.
const maxCallerDepth = 25

// function name prefixes never reported as the source of a log line
var loggingFrames = []string{
	"github.com/sirupsen/logrus.",
	"github.com/BOXFoundation/boxscript/log.",
	"github.com/BOXFoundation/boxscript/log/logrus.",
	"github.com/BOXFoundation/boxscript/log/logrus/hooks/source.(*logrusSourceHook)",
}

type logrusSourceHook struct {
	Field     string
	levels    []logrus.Level
	Formatter func(file, function string, line int) string
}

func (hook *logrusSourceHook) Levels() []logrus.Level {
	return hook.levels
}

func (hook *logrusSourceHook) Fire(entry *logrus.Entry) error {
	file, function, line := findCaller()
	if line == 0 {
		return nil
	}
	entry.Data[hook.Field] = hook.Formatter(file, function, line)
	return nil
}

// NewHook creates logrus source hook which will print source filename and line number
func NewHook(levels ...logrus.Level) logrus.Hook {
	hook := logrusSourceHook{
		Field:  "source",
		levels: levels,
		Formatter: func(file, function string, line int) string {
			return fmt.Sprintf("%s:%d", file, line)
		},
	}
	if len(hook.levels) == 0 {
		hook.levels = logrus.AllLevels
	}

	return &hook
}

// findCaller returns the first frame outside the logging packages, with the
// file trimmed to its last directory, e.g. script/interpreter.go.
func findCaller() (string, string, int) {
	pcs := make([]uintptr, maxCallerDepth)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !isLoggingFrame(frame.Function) {
			dir, file := path.Split(frame.File)
			return path.Join(path.Base(dir), file), frame.Function, frame.Line
		}
		if !more {
			return "", "", 0
		}
	}
}

func isLoggingFrame(function string) bool {
	for _, prefix := range loggingFrames {
		if strings.HasPrefix(function, prefix) {
			return true
		}
	}
	return false
}
