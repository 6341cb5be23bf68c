package log

import (
	"fmt"
	"io"
	"strings"
)

// Backend names accepted by New.
const (
	BackendGolog  = "golog"
	BackendLogrus = "logrus"
)

// New builds a Logger for the named backend writing to out.
func New(backend string, out io.Writer, level LogLevel) (Logger, error) {
	switch strings.ToLower(backend) {
	case BackendGolog, "":
		return NewGolog(out, level), nil
	case BackendLogrus:
		return NewLogrus(out, level), nil
	default:
		return nil, fmt.Errorf("log: unknown backend %q", backend)
	}
}
