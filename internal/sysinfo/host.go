package sysinfo

import (
	"os"
	"os/user"
	"time"

	"github.com/shirou/gopsutil/v3/host"
)

// Identity collects working directory, user, hostname, kernel, local time,
// and language. Each value is queried independently so the absence of one
// does not block the others.
func (p *SystemProvider) Identity() Identity {
	var id Identity

	if cwd, err := os.Getwd(); err == nil {
		id.WorkingDir = cwd
	}

	if u, err := user.Current(); err == nil {
		id.Username = u.Username
	}

	if info, err := host.Info(); err == nil {
		id.Hostname = info.Hostname
		id.Kernel = info.KernelVersion
	}

	now := time.Now()
	id.LocalTime = now.Format(time.RFC1123)
	id.Timezone, _ = now.Zone()

	// Display-only; the report never branches on it.
	id.Language = os.Getenv("LANG")

	return id
}
