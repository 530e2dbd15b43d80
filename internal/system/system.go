package system

import (
	"fmt"
	"log"
	"os"
	"syscall"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/process"
)

// InitResourceLimits raises the open-file limit so that exporting the
// crops of a large table does not trip the default cap.
func InitResourceLimits() {
	var rLimit syscall.Rlimit
	if err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
		log.Printf("[!] could not read open-file limit: %v", err)
		return
	}

	rLimit.Cur = 2048
	if rLimit.Cur > rLimit.Max {
		rLimit.Cur = rLimit.Max
	}

	if err := syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
		log.Printf("[!] could not raise open-file limit: %v", err)
	}
}

// ResourceReport returns a one-line summary of the current process's
// resource usage.
func ResourceReport() (string, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return "", err
	}

	mem, err := p.MemoryInfo()
	if err != nil {
		return "", err
	}

	cpus, err := cpu.Counts(true)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("rss=%.1fMB vms=%.1fMB cpus=%d",
		float64(mem.RSS)/(1024*1024),
		float64(mem.VMS)/(1024*1024),
		cpus), nil
}
