// Package sysmon provides system-wide CPU and memory usage sampling for
// the details view and the TUI header.
package sysmon

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/Oureyelet/funclab/internal/format"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
	MemUsed    uint64  // bytes
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Returns zero values on error.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
		s.MemUsed = vmem.Used
	}
	return s
}

// String renders the snapshot as a single status line.
func (s Stats) String() string {
	return fmt.Sprintf("CPU %.1f%% | MEM %.1f%% (%s)",
		s.CPUPercent, s.MemPercent, format.FormatBytes(s.MemUsed))
}
