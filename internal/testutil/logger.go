package testutil

import (
	"bytes"
	"log/slog"

	"github.com/preston-bernstein/hoops-analytics/internal/logging"
)

// NewBufferLogger returns a debug level text logger writing to a buffer, and the buffer
// for assertions.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return logging.NewLogger(logging.Config{Level: "debug", Output: &buf}), &buf
}
