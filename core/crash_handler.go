// Package core holds process-wide crash handling shared by the game loop and its goroutines.
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
)

var (
	crashMu     sync.Mutex
	crashScreen tcell.Screen

	// Overridable in tests
	crashOutput io.Writer = os.Stderr
	crashExit             = os.Exit
)

// SetCrashScreen registers the screen finalized by HandleCrash; nil unregisters
func SetCrashScreen(s tcell.Screen) {
	crashMu.Lock()
	crashScreen = s
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	s := crashScreen
	crashScreen = nil
	crashMu.Unlock()

	// Restore terminal before printing so the trace is readable
	if s != nil {
		s.Fini()
	}

	fmt.Fprintf(crashOutput, "\r\n\x1b[31mPINGPONG CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOutput, "Stack Trace:\r\n%s\r\n", debug.Stack())

	crashExit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
