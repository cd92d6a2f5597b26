package main

import (
	"os"
	"runtime"
)

func init() {
	// SDL must be driven from the main OS thread.
	runtime.LockOSThread()
}

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
