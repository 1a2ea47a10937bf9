// Package fatal is the process-wide sink for unrecoverable errors. Failures are logged with a
// stack trace and then handled according to the configured Action.
package fatal

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/forge/result"
)

// Action selects what ReportFatalError does after logging.
type Action int32

const (
	ActionAbort Action = iota
	ActionContinue
	ActionCustom
)

var actionMapping = make(map[Action]string)

func init() {
	actionMapping[ActionAbort] = "Abort"
	actionMapping[ActionContinue] = "Continue"
	actionMapping[ActionCustom] = "Custom"
}

func (a Action) String() string {
	str, ok := actionMapping[a]
	if !ok {
		return "unknown"
	}
	return str
}

// ParseAction maps "abort", "continue" or "custom" to an Action.
func ParseAction(name string) (Action, error) {
	switch strings.ToLower(name) {
	case "abort", "":
		return ActionAbort, nil
	case "continue":
		return ActionContinue, nil
	case "custom":
		return ActionCustom, nil
	}
	return ActionAbort, errors.Newf("unknown fatal error action %q", name)
}

// AbortExitCode is the process status used when aborting, matching a SIGABRT termination.
const AbortExitCode = 134

// Handler receives fatal errors when the action is ActionCustom.
type Handler func(code result.Code, message string, stackTrace string)

// SignalHandler replaces the default handling of a single signal.
type SignalHandler func(sig os.Signal)

type Options struct {
	Logger *slog.Logger
	// Exit terminates the process. Defaults to os.Exit.
	Exit func(code int)
}

type ErrorHandler struct {
	logger *slog.Logger
	exit   func(code int)

	mutex          sync.Mutex
	action         Action
	custom         Handler
	signalHandlers map[os.Signal]SignalHandler
	signals        chan os.Signal
	done           chan struct{}
	initialized    bool
}

var signalNames = map[os.Signal]string{
	syscall.SIGSEGV: "SIGSEGV (Segmentation Violation)",
	syscall.SIGABRT: "SIGABRT (Abort)",
	syscall.SIGFPE:  "SIGFPE (Floating Point Exception)",
	syscall.SIGILL:  "SIGILL (Illegal Instruction)",
	syscall.SIGBUS:  "SIGBUS (Bus Error)",
	syscall.SIGTERM: "SIGTERM (Termination Request)",
}

func New(options Options) *ErrorHandler {
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	exit := options.Exit
	if exit == nil {
		exit = os.Exit
	}
	return &ErrorHandler{
		logger:         logger,
		exit:           exit,
		signalHandlers: make(map[os.Signal]SignalHandler),
	}
}

// Initialize installs the signal funnel. Calling it more than once has no additional effect.
func (h *ErrorHandler) Initialize() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.initialized {
		return
	}
	h.initialized = true

	h.signals = make(chan os.Signal, 1)
	h.done = make(chan struct{})
	signal.Notify(h.signals, syscall.SIGSEGV, syscall.SIGABRT, syscall.SIGFPE, syscall.SIGILL, syscall.SIGBUS, syscall.SIGTERM)

	go func(signals <-chan os.Signal, done <-chan struct{}) {
		for {
			select {
			case sig := <-signals:
				h.HandleSignal(sig)
			case <-done:
				return
			}
		}
	}(h.signals, h.done)
}

// Shutdown removes the signal funnel and restores the default action and handlers.
func (h *ErrorHandler) Shutdown() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.initialized {
		signal.Stop(h.signals)
		close(h.done)
		h.initialized = false
	}

	h.action = ActionAbort
	h.custom = nil
	h.signalHandlers = make(map[os.Signal]SignalHandler)
}

func (h *ErrorHandler) SetFatalErrorAction(action Action) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.action = action
}

func (h *ErrorHandler) FatalErrorAction() Action {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return h.action
}

// SetCustomFatalErrorHandler installs handler and switches the action to ActionCustom.
func (h *ErrorHandler) SetCustomFatalErrorHandler(handler Handler) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.custom = handler
	h.action = ActionCustom
}

func (h *ErrorHandler) RegisterSignalHandler(sig os.Signal, handler SignalHandler) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.signalHandlers[sig] = handler
}

// ReportError logs a recoverable error with its stack trace.
func (h *ErrorHandler) ReportError(code result.Code, message string) {
	h.logger.Error("ErrorHandler::ReportError",
		slog.String("code", code.String()),
		slog.String("message", message),
		slog.String("stack", stackTrace(1)))
}

// ReportFatalError logs an unrecoverable error and applies the configured Action.
func (h *ErrorHandler) ReportFatalError(code result.Code, message string) {
	trace := stackTrace(1)
	h.logger.Error("ErrorHandler::ReportFatalError",
		slog.String("code", code.String()),
		slog.String("message", message),
		slog.String("stack", trace))

	h.mutex.Lock()
	action := h.action
	custom := h.custom
	h.mutex.Unlock()

	switch action {
	case ActionContinue:
		return
	case ActionCustom:
		if custom != nil {
			custom(code, message, trace)
		}
	}
	h.exit(AbortExitCode)
}

// Assertf reports a fatal RuntimeError when condition is false. It returns condition so that
// callers running under ActionContinue can bail out.
func (h *ErrorHandler) Assertf(condition bool, format string, args ...any) bool {
	if !condition {
		h.ReportFatalError(result.RuntimeError, "assertion failed: "+fmt.Sprintf(format, args...))
	}
	return condition
}

// HandleSignal runs the handling for sig: a registered signal handler if present, otherwise a
// fatal RuntimeError report. The process always aborts afterward.
func (h *ErrorHandler) HandleSignal(sig os.Signal) {
	h.mutex.Lock()
	signalHandler := h.signalHandlers[sig]
	action := h.action
	custom := h.custom
	h.mutex.Unlock()

	name, ok := signalNames[sig]
	if !ok {
		name = sig.String()
	}

	h.logger.Error("ErrorHandler::HandleSignal", slog.String("signal", name))

	if signalHandler != nil {
		signalHandler(sig)
	} else if action == ActionCustom && custom != nil {
		custom(result.RuntimeError, name, stackTrace(1))
	}
	h.exit(AbortExitCode)
}

// Recover turns a panic in the calling goroutine into a fatal error report. Use it deferred.
// Faults raised by the Go runtime arrive as panics rather than signals.
func (h *ErrorHandler) Recover() {
	recovered := recover()
	if recovered == nil {
		return
	}
	h.ReportFatalError(result.RuntimeError, fmt.Sprintf("panic: %v", recovered))
}

func stackTrace(depth int) string {
	return fmt.Sprintf("%+v", errors.WithStackDepth(errors.New("stack trace"), depth+1))
}

// Discard returns a handler that logs nowhere and never exits the process.
func Discard() *ErrorHandler {
	h := New(Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Exit:   func(int) {},
	})
	h.action = ActionContinue
	return h
}
