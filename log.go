// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

import (
	"io"

	"github.com/sirupsen/logrus"
)

var logger logrus.FieldLogger = discardLogger()

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// SetLogger directs the package's diagnostics to l. Rejected inputs and
// cancelled animations are logged at debug level. A nil l silences logging.
//
// SetLogger is not synchronized; call it before axes are in use.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = discardLogger()
	}
	logger = l
}

// Logger returns the logger set with SetLogger.
func Logger() logrus.FieldLogger {
	return logger
}
