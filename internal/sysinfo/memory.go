package sysinfo

import (
	"github.com/shirou/gopsutil/v3/mem"
)

// Memory reads RAM usage, then swap. A swap read failure degrades to
// zeroed swap fields rather than failing the whole query.
func (p *SystemProvider) Memory() (Memory, error) {
	var m Memory

	vm, err := mem.VirtualMemory()
	if err != nil {
		return m, err
	}
	m.Total = vm.Total
	m.Used = vm.Used
	m.Free = vm.Free
	m.Available = vm.Available
	m.UsedPercent = vm.UsedPercent

	if swap, err := mem.SwapMemory(); err == nil {
		m.SwapTotal = swap.Total
		m.SwapUsed = swap.Used
		m.SwapFree = swap.Free
		m.SwapPercent = swap.UsedPercent
	}

	return m, nil
}
