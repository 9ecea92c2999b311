package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

// maxStackDepth bounds the frames kept by CaptureStack.
const maxStackDepth = 32

type handlerBox struct{ h Handler }

var current atomic.Pointer[handlerBox]

func init() {
	current.Store(&handlerBox{h: &LogHandler{}})
}

// SetHandler installs h as the global handler and returns the previous
// one. A nil h restores a default LogHandler.
func SetHandler(h Handler) Handler {
	if h == nil {
		h = &LogHandler{}
	}
	return current.Swap(&handlerBox{h: h}).h
}

// CurrentHandler returns the installed global handler.
func CurrentHandler() Handler {
	return current.Load().h
}

// Report stamps err if needed and sends it to the global handler.
func Report(err *CarouselError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	CurrentHandler().HandleError(err)
}

// ReportPanic stamps err if needed and sends it to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	CurrentHandler().HandlePanic(err)
}

// Recover reports a panic in progress as a PanicError tagged with op. It
// must be deferred directly:
//
//	defer errors.Recover("engine.timer")
func Recover(op string) {
	r := recover()
	if r == nil {
		return
	}
	ReportPanic(&PanicError{Op: op, Value: r, StackTrace: CaptureStack()})
}

// CaptureStack formats the caller's caller's stack, one function and
// file:line pair per frame.
func CaptureStack() string {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(3, pcs)
	if n == 0 {
		return ""
	}
	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
		if !more {
			return sb.String()
		}
	}
}
