package logging

import (
	"fmt"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// RecoverTask recovers a panic raised by a queued task and logs it with the
// stack. It must be called deferred.
func RecoverTask(logger *zerolog.Logger, task string) {
	r := recover()
	if r == nil {
		return
	}
	logPanic(logger, task, r)
}

func logPanic(logger *zerolog.Logger, task string, r any) {
	if logger == nil {
		l := zerolog.Nop()
		logger = &l
	}
	logger.Error().
		Str("task", task).
		Str("panic", fmt.Sprint(r)).
		Bytes("stack", debug.Stack()).
		Msg("recovered panic")
}
