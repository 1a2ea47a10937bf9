package fatal

import (
	"os"
	"sync/atomic"

	"github.com/vkngwrapper/forge/result"
)

var defaultHandler atomic.Pointer[ErrorHandler]

func init() {
	defaultHandler.Store(New(Options{}))
}

// Default returns the process-wide handler.
func Default() *ErrorHandler {
	return defaultHandler.Load()
}

// SetDefault replaces the process-wide handler and returns the previous one.
func SetDefault(handler *ErrorHandler) *ErrorHandler {
	return defaultHandler.Swap(handler)
}

func Initialize() {
	Default().Initialize()
}

func Shutdown() {
	Default().Shutdown()
}

func SetFatalErrorAction(action Action) {
	Default().SetFatalErrorAction(action)
}

func SetCustomFatalErrorHandler(handler Handler) {
	Default().SetCustomFatalErrorHandler(handler)
}

func RegisterSignalHandler(sig os.Signal, handler SignalHandler) {
	Default().RegisterSignalHandler(sig, handler)
}

func ReportError(code result.Code, message string) {
	Default().ReportError(code, message)
}

func ReportFatalError(code result.Code, message string) {
	Default().ReportFatalError(code, message)
}

func Assertf(condition bool, format string, args ...any) bool {
	return Default().Assertf(condition, format, args...)
}

// Verify reports err as fatal when it is non-nil and returns it unchanged.
func Verify(err error) error {
	if err != nil {
		Default().ReportFatalError(result.CodeOf(err), err.Error())
	}
	return err
}
