package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const (
	logDir      = "logs"
	logFileName = "canvasgame.log"
)

// setupLogging routes log output. With debug enabled, full debug logs go
// to a file under logDir; otherwise only warnings and above reach
// stderr. Returns the log file for the caller to close, nil when
// logging to a file is disabled.
func setupLogging(debug bool) *os.File {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if !debug {
		logrus.SetLevel(logrus.WarnLevel)
		logrus.SetOutput(os.Stderr)
		return nil
	}

	logrus.SetLevel(logrus.DebugLevel)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		logrus.SetOutput(os.Stderr)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logrus.SetOutput(os.Stderr)
		return nil
	}
	logrus.SetOutput(io.MultiWriter(os.Stderr, f))
	return f
}
