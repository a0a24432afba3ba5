// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package log

import (
	"fmt"

	mate "github.com/heralight/logrus_mate"
)

// Logger defines the repod log functions
type Logger interface {
	SetLogLevel(level string)
	LogLevel() string
	Debugf(f string, v ...interface{})
	Debug(v ...interface{})
	Infof(f string, v ...interface{})
	Info(v ...interface{})
	Warnf(f string, v ...interface{})
	Warn(v ...interface{})
	Errorf(f string, v ...interface{})
	Error(v ...interface{})
	Fatalf(f string, v ...interface{})
	Fatal(v ...interface{})
	Panicf(f string, v ...interface{})
	Panic(v ...interface{})
}

// Config is the configuration of the logger
type Config mate.LoggerConfig

type setupFunc func(*Config)
type newLoggerFunc func(string) Logger

// LoggerEntry is a logger impl entry
type LoggerEntry struct {
	Setup     setupFunc
	NewLogger newLoggerFunc
}

var impls = map[string]*LoggerEntry{}

// defaultImpl is the logger impl used by Setup/NewLogger.
const defaultImpl = "logrus"

var loggerMap = map[string]Logger{}

// Register registers a logger impl
func Register(name string, entry *LoggerEntry) {
	impls[name] = entry
}

// Setup loggers globally
func Setup(cfg *Config) {
	if entry, ok := impls[defaultImpl]; ok {
		entry.Setup(cfg)
	} else {
		fmt.Printf("Invalid logger: %s", defaultImpl)
	}
}

// NewLogger creates a new logger with the given tag.
func NewLogger(tag string) Logger {
	entry, ok := impls[defaultImpl]
	if !ok {
		fmt.Printf("Invalid logger: %s", defaultImpl)
		return nil
	}
	newLogger := entry.NewLogger(tag)
	if newLogger != nil {
		loggerMap[tag] = newLogger
	}
	return newLogger
}

// SetLogLevel sets all loggers log level
func SetLogLevel(newLevel string) (ok bool) {
	ok = true
	for _, logger := range loggerMap {
		originLevel := logger.LogLevel()
		logger.SetLogLevel(newLevel)
		currentLevel := logger.LogLevel()
		if currentLevel != newLevel {
			logger.Infof("Error setting log level from %s to %s", originLevel, newLevel)
			ok = false
		}
	}
	return
}
