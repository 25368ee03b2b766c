// Copyright (C) 2019-2025 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package logging

import (
	"io"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// Level is a logging severity. Higher levels are more verbose.
type Level uint32

// The levels the ledger logs at, from least to most verbose.
const (
	Error = Level(logrus.ErrorLevel)
	Warn  = Level(logrus.WarnLevel)
	Info  = Level(logrus.InfoLevel)
	Debug = Level(logrus.DebugLevel)
)

const timestampFormat = "2006-01-02T15:04:05.000000Z07:00"

// Fields maps logrus fields
type Fields = logrus.Fields

// Logger is what the bank and the CLI log through. Loggers derived with
// With or WithFields share the level, output and formatter of their parent.
type Logger interface {
	Debug(...interface{})
	Debugf(string, ...interface{})
	Infof(string, ...interface{})
	Warnf(string, ...interface{})
	Errorf(string, ...interface{})

	// With returns a logger that adds key=value to every entry.
	With(key string, value interface{}) Logger
	WithFields(Fields) Logger

	SetLevel(Level)
	IsLevelEnabled(Level) bool
	SetOutput(io.Writer)
	SetJSONFormatter()
}

// baseLogger writes to stderr at warnings and above.
var baseLogger Logger

func init() {
	baseLogger = NewLogger()
	baseLogger.SetLevel(Warn)
}

// Base returns the process-wide logger.
func Base() Logger {
	return baseLogger
}

// NewLogger returns a logger writing text entries to stderr at Info.
func NewLogger() Logger {
	l := logrus.New()
	if tf, ok := l.Formatter.(*logrus.TextFormatter); ok {
		tf.TimestampFormat = timestampFormat
	}
	return logger{logrus.NewEntry(l)}
}

type logger struct {
	entry *logrus.Entry
}

func (l logger) Debug(args ...interface{}) {
	l.source().Debug(args...)
}

func (l logger) Debugf(format string, args ...interface{}) {
	l.source().Debugf(format, args...)
}

func (l logger) Infof(format string, args ...interface{}) {
	l.source().Infof(format, args...)
}

func (l logger) Warnf(format string, args ...interface{}) {
	l.source().Warnf(format, args...)
}

func (l logger) Errorf(format string, args ...interface{}) {
	l.source().Errorf(format, args...)
}

func (l logger) With(key string, value interface{}) Logger {
	return logger{l.entry.WithField(key, value)}
}

func (l logger) WithFields(fields Fields) Logger {
	return logger{l.entry.WithFields(fields)}
}

func (l logger) SetLevel(lvl Level) {
	l.entry.Logger.SetLevel(logrus.Level(lvl))
}

func (l logger) IsLevelEnabled(level Level) bool {
	return l.entry.Logger.IsLevelEnabled(logrus.Level(level))
}

func (l logger) SetOutput(w io.Writer) {
	l.entry.Logger.SetOutput(w)
}

func (l logger) SetJSONFormatter() {
	l.entry.Logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: timestampFormat})
}

// source tags the entry with the file and line of the logging call.
func (l logger) source() *logrus.Entry {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return l.entry
	}
	return l.entry.WithFields(logrus.Fields{
		"file": file[strings.LastIndex(file, "/")+1:],
		"line": line,
	})
}
