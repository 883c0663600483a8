package errors

import (
	"fmt"

	"github.com/go-ripple/ripple/pkg/logging"
)

// LogHandler is an ErrorHandler that forwards errors through pkg/logging,
// so reports reach whatever sink (foreign or zerolog) is installed.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
}

// HandleError logs a CoreError.
func (h *LogHandler) HandleError(err *CoreError) {
	if err == nil {
		return
	}
	if h.Verbose {
		msg := fmt.Sprintf("%s [%s]", err.Op, err.Kind)
		if err.Method != "" {
			msg += fmt.Sprintf(" method=%s", err.Method)
		}
		msg += fmt.Sprintf(": %v", err.Err)
		if err.StackTrace != "" {
			msg += fmt.Sprintf("\nStack trace:\n%s", err.StackTrace)
		}
		logging.Errorf("errors", "%s", msg)
	} else {
		logging.Errorf("errors", "%s: %v", err.Op, err.Err)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Op != "" {
		logging.Errorf("errors", "panic in %s: %v", err.Op, err.Value)
	} else {
		logging.Errorf("errors", "panic: %v", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		logging.Errorf("errors", "Stack trace:\n%s", err.StackTrace)
	}
}
