package sysinfo

import (
	"github.com/shirou/gopsutil/v3/process"
)

// Processes snapshots the process table. Processes that disappear or deny
// access mid-read are skipped. CPU percent is measured since process start
// (no sampling interval), which keeps the snapshot single-pass.
func (p *SystemProvider) Processes() ([]Process, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}

	out := make([]Process, 0, len(procs))
	for _, proc := range procs {
		cpuPct, err := proc.CPUPercent()
		if err != nil {
			continue
		}

		entry := Process{
			PID:        proc.Pid,
			CPUPercent: cpuPct,
		}

		if ppid, err := proc.Ppid(); err == nil {
			entry.PPID = ppid
		}
		if memPct, err := proc.MemoryPercent(); err == nil {
			entry.MemPercent = memPct
		}
		if cmdline, err := proc.Cmdline(); err == nil && cmdline != "" {
			entry.Command = cmdline
		} else if name, err := proc.Name(); err == nil {
			entry.Command = name
		}

		out = append(out, entry)
	}

	return out, nil
}
