package sysinfo

import (
	"github.com/shirou/gopsutil/v3/disk"
)

// Disks lists mounted physical filesystems with their usage. Partitions
// whose usage cannot be read (stale mounts, permission) are skipped.
func (p *SystemProvider) Disks() ([]Disk, error) {
	parts, err := disk.Partitions(false)
	if err != nil {
		return nil, err
	}

	disks := make([]Disk, 0, len(parts))
	for _, part := range parts {
		usage, err := disk.Usage(part.Mountpoint)
		if err != nil {
			continue
		}
		disks = append(disks, Disk{
			Device:      part.Device,
			Mountpoint:  part.Mountpoint,
			Fstype:      part.Fstype,
			Total:       usage.Total,
			Used:        usage.Used,
			Free:        usage.Free,
			UsedPercent: usage.UsedPercent,
		})
	}

	return disks, nil
}
