package parallel

import "runtime"

import "github.com/klauspost/cpuid/v2"

var threads int

func init() {
	// cpuid reports 0 on platforms it cannot probe
	if cpuid.CPU.LogicalCores > 0 {
		threads = cpuid.CPU.LogicalCores
	} else {
		threads = runtime.NumCPU()
	}
}

// Threads reports the default number of goroutines for ForEach on this machine.
// Can't return 0.
func Threads() int {
	if threads < 1 {
		return 1
	}
	return threads
}
