// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package log

import (
	"testing"

	"github.com/facebookgo/ensure"
)

func TestNewLogger(t *testing.T) {
	logger := NewLogger("test")
	ensure.NotNil(t, logger)

	logger.SetLogLevel("debug")
	ensure.DeepEqual(t, logger.LogLevel(), "debug")

	logger.SetLogLevel("warning")
	ensure.DeepEqual(t, logger.LogLevel(), "warning")

	// bogus levels are ignored
	logger.SetLogLevel("shouting")
	ensure.DeepEqual(t, logger.LogLevel(), "warning")
}

func TestSetLogLevel(t *testing.T) {
	l1 := NewLogger("t1")
	l2 := NewLogger("t2")
	ensure.True(t, SetLogLevel("error"))
	ensure.DeepEqual(t, l1.LogLevel(), "error")
	ensure.DeepEqual(t, l2.LogLevel(), "error")
}
