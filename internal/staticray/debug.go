package staticray

import (
	"fmt"
	"sync"
)

// Debug gates verbose per-event logging. Set from the DEBUG environment
// variable in cmd/staticray.
var Debug = false

// Verbose gates periodic progress reporting during render/develop passes.
var Verbose = false

func DebugLog(format string, args ...interface{}) {
	if !Debug {
		return
	}
	fmt.Printf("[DEBUG] "+format+"\n", args...)
}

var debugOnce sync.Once

// DebugLogOnce logs a single message the first time it's reached, useful
// inside hot loops where per-iteration logging would be too noisy.
func DebugLogOnce(format string, args ...interface{}) {
	if !Debug {
		return
	}
	debugOnce.Do(func() {
		fmt.Printf("[DEBUG] "+format+"\n", args...)
	})
}

func Progress(format string, args ...interface{}) {
	if !Verbose {
		return
	}
	fmt.Printf("[PROGRESS] "+format+"\n", args...)
}
