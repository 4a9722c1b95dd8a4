// Package sysinfo gathers host facts through native OS APIs.
//
// Every query is best-effort: callers receive whatever could be read and an
// error describing what could not. Nothing in this package writes to the
// host or keeps state between calls.
package sysinfo

import (
	"context"
	"time"
)

// Identity holds basic facts about the host and the invoking user.
// Fields are filled independently; a field the OS would not answer for is
// left empty.
type Identity struct {
	WorkingDir string
	Username   string
	Hostname   string
	Kernel     string
	LocalTime  string
	Timezone   string
	Language   string
}

// Memory holds RAM and swap usage in bytes.
type Memory struct {
	Total       uint64
	Used        uint64
	Free        uint64
	Available   uint64
	UsedPercent float64
	SwapTotal   uint64
	SwapUsed    uint64
	SwapFree    uint64
	SwapPercent float64
}

// Disk holds usage for one mounted filesystem.
type Disk struct {
	Device      string
	Mountpoint  string
	Fstype      string
	Total       uint64
	Used        uint64
	Free        uint64
	UsedPercent float64
}

// Process holds the scheduling facts shown in the top-CPU table.
type Process struct {
	PID        int32
	PPID       int32
	Command    string
	MemPercent float32
	CPUPercent float64
}

// File is one entry from the largest-files scan.
type File struct {
	Size int64
	Path string
}

// Interface holds addressing info for one network interface.
type Interface struct {
	Name  string
	Addrs []string
}

// Temperature is one hardware sensor reading in degrees Celsius.
type Temperature struct {
	Sensor  string
	Celsius float64
}

// GPUTemperature is one GPU temperature reading in degrees Celsius.
type GPUTemperature struct {
	Index   int
	Celsius float64
}

// Provider is the capability surface the report steps draw from.
// Implementations must be safe to call in any order and must not panic on
// partially unavailable data.
type Provider interface {
	Identity() Identity
	Memory() (Memory, error)
	Disks() ([]Disk, error)
	Processes() ([]Process, error)
	LargestFiles(ctx context.Context, root string, n int) ([]File, error)
	WiredInterfaces() ([]Interface, error)
	Temperatures() ([]Temperature, error)
	GPUTemperatures(ctx context.Context) ([]GPUTemperature, error)
}

// Prober checks outbound reachability with a single echo request.
type Prober interface {
	Probe(ctx context.Context, host string, timeout time.Duration) error
}

// SystemProvider implements Provider against the running host.
type SystemProvider struct{}

// NewSystemProvider creates a Provider backed by native OS queries.
func NewSystemProvider() *SystemProvider {
	return &SystemProvider{}
}
