package renderer

import (
	"fmt"

	"github.com/mhollis/tracepath/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout.
type DefaultLogger struct{}

// NewDefaultLogger creates a logger suitable for command-line use.
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}
