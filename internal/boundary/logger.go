package boundary

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with preprocessing.
var loggerPtr atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	loggerPtr.Store(&nop)
}

// SetLogger configures the logger used by the package.
// By default nothing is logged. Pass nil to restore the silent logger.
//
// Log levels used:
//   - debug: per-call shapes, class counts, edge pixel counts
//   - trace: per-class distance contributions
func SetLogger(l *zerolog.Logger) {
	if l == nil {
		nop := zerolog.Nop()
		l = &nop
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *zerolog.Logger {
	return loggerPtr.Load()
}
