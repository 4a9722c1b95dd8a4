package sysinfo

import (
	"net"
	"strings"
)

// wiredPrefixes matches systemd predictable names for onboard ("eno") and
// PCI ("enp") ethernet NICs. Known limitation: USB NICs ("enx"), legacy
// "eth" names, and wireless interfaces do not match.
var wiredPrefixes = []string{"eno", "enp"}

// WiredInterfaces lists addressing info for interfaces whose names match
// common wired-NIC prefixes.
func (p *SystemProvider) WiredInterfaces() ([]Interface, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}

	var out []Interface
	for _, iface := range ifaces {
		if !hasWiredPrefix(iface.Name) {
			continue
		}

		entry := Interface{Name: iface.Name}
		if addrs, err := iface.Addrs(); err == nil {
			for _, addr := range addrs {
				entry.Addrs = append(entry.Addrs, addr.String())
			}
		}
		out = append(out, entry)
	}

	return out, nil
}

func hasWiredPrefix(name string) bool {
	for _, prefix := range wiredPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
