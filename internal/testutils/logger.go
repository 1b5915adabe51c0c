package testutils

import (
	"bytes"

	"github.com/sirupsen/logrus"
)

// NewBufferLogger returns a logger at level writing plain text, without
// timestamps, into the returned buffer.
func NewBufferLogger(level logrus.Level) (*logrus.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	return logger, buf
}
