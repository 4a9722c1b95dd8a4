package sysinfo

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPingProber_RejectsNonIPv4Targets(t *testing.T) {
	p := NewPingProber()

	tests := []string{"", "not-an-ip", "2606:4700:4700::1111"}
	for _, target := range tests {
		t.Run(target, func(t *testing.T) {
			err := p.Probe(context.Background(), target, time.Second)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "not an IPv4 address")
		})
	}
}

func TestPingProber_UnreachableTargetFailsWithinTimeout(t *testing.T) {
	if !icmpSocketAvailable() {
		t.Skip("no ICMP socket available in this environment")
	}

	p := NewPingProber()
	timeout := 300 * time.Millisecond

	// TEST-NET-1 is reserved for documentation and never answers.
	start := time.Now()
	err := p.Probe(context.Background(), "192.0.2.1", timeout)
	elapsed := time.Since(start)

	assert.Error(t, err)
	assert.Less(t, elapsed, timeout+2*time.Second)
}

func TestPingProber_ContextDeadlineWins(t *testing.T) {
	if !icmpSocketAvailable() {
		t.Skip("no ICMP socket available in this environment")
	}

	p := NewPingProber()
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := p.Probe(ctx, "192.0.2.1", 10*time.Second)
	elapsed := time.Since(start)

	assert.Error(t, err)
	assert.Less(t, elapsed, 2*time.Second)
}

func icmpSocketAvailable() bool {
	conn, _, err := listenEcho(net.ParseIP("192.0.2.1"))
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}
