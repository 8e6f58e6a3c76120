package system

import (
	"fmt"
	"log"
	"syscall"

	"github.com/shirou/gopsutil/v3/mem"
)

// InitResourceLimits raises the open-file limit. A Chrome DevTools session
// keeps a surprising number of sockets and pipes open.
func InitResourceLimits() {
	var rLimit syscall.Rlimit
	err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLimit)
	if err != nil {
		log.Printf("[!] Could not read the open file limit: %v", err)
		return
	}

	rLimit.Cur = 2048
	if rLimit.Cur > rLimit.Max {
		rLimit.Cur = rLimit.Max
	}

	err = syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLimit)
	if err != nil {
		log.Printf("[!] Could not raise the open file limit: %v", err)
	}
}

// CheckMemoryBudget reports whether estimated bytes fit in available memory.
// The caller decides how to react; a tight budget can still succeed through
// swap, so this is advisory.
func CheckMemoryBudget(estimated uint64) error {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return fmt.Errorf("could not read memory stats: %w", err)
	}
	if estimated > vm.Available {
		return fmt.Errorf("final image needs ~%d MiB but only %d MiB is available", estimated>>20, vm.Available>>20)
	}
	return nil
}
