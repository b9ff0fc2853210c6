package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// crashCleanup restores the terminal before a crash report is printed
var crashCleanup atomic.Pointer[func()]

// SetCrashCleanup registers fn to run once before HandleCrash prints; nil clears it
func SetCrashCleanup(fn func()) {
	if fn == nil {
		crashCleanup.Store(nil)
		return
	}
	crashCleanup.Store(&fn)
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}
	if fn := crashCleanup.Swap(nil); fn != nil {
		(*fn)()
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
	os.Exit(1)
}

// Guard wraps fn so a panic inside it goes through HandleCrash
// Use for goroutine bodies so a crash on any goroutine still restores the terminal
func Guard(fn func() error) func() error {
	return func() error {
		defer func() {
			HandleCrash(recover())
		}()
		return fn()
	}
}
