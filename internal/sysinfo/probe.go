package sysinfo

import (
	"context"
	"fmt"
	"net"
	"os"
	"time"

	"golang.org/x/net/icmp"
	"golang.org/x/net/ipv4"
)

const protocolICMP = 1

// PingProber sends a single ICMP echo request to infer outbound
// connectivity.
type PingProber struct{}

// NewPingProber creates a Prober backed by ICMP echo.
func NewPingProber() *PingProber {
	return &PingProber{}
}

// Probe sends one echo request to host and waits for the reply until the
// timeout expires or ctx is done. A nil return means a reply arrived.
//
// An unprivileged datagram ICMP socket is tried first (works as a normal
// user where ping_group_range allows it), then a raw socket.
func (p *PingProber) Probe(ctx context.Context, host string, timeout time.Duration) error {
	ip := net.ParseIP(host)
	if ip == nil || ip.To4() == nil {
		return fmt.Errorf("probe: not an IPv4 address: %q", host)
	}

	conn, dst, err := listenEcho(ip)
	if err != nil {
		return fmt.Errorf("probe: open socket: %w", err)
	}
	defer func() { _ = conn.Close() }()

	deadline := time.Now().Add(timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return fmt.Errorf("probe: set deadline: %w", err)
	}

	echoID := os.Getpid() & 0xffff
	msg := icmp.Message{
		Type: ipv4.ICMPTypeEcho,
		Code: 0,
		Body: &icmp.Echo{
			ID:   echoID,
			Seq:  1,
			Data: []byte("infodump-probe"),
		},
	}
	wire, err := msg.Marshal(nil)
	if err != nil {
		return fmt.Errorf("probe: marshal echo: %w", err)
	}

	if _, err := conn.WriteTo(wire, dst); err != nil {
		return fmt.Errorf("probe: send: %w", err)
	}

	buf := make([]byte, 1500)
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		n, _, err := conn.ReadFrom(buf)
		if err != nil {
			return fmt.Errorf("probe: no reply: %w", err)
		}

		reply, err := icmp.ParseMessage(protocolICMP, buf[:n])
		if err != nil {
			continue
		}
		if reply.Type == ipv4.ICMPTypeEchoReply {
			return nil
		}
	}
}

// listenEcho opens an ICMP socket and returns it with the destination
// address shaped for that socket type.
func listenEcho(ip net.IP) (*icmp.PacketConn, net.Addr, error) {
	if conn, err := icmp.ListenPacket("udp4", "0.0.0.0"); err == nil {
		return conn, &net.UDPAddr{IP: ip}, nil
	}

	conn, err := icmp.ListenPacket("ip4:icmp", "0.0.0.0")
	if err != nil {
		return nil, nil, err
	}
	return conn, &net.IPAddr{IP: ip}, nil
}
