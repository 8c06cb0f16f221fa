package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wifimon/wifimon/common"
	"github.com/wifimon/wifimon/types"

	"github.com/shirou/gopsutil/v3/net"
)

// Source provides interface names and traffic counters.
type Source interface {
	// List returns interface names in kernel enumeration order. An empty
	// system yields an empty list, not an error.
	List(ctx context.Context) ([]string, error)
	// Counters reads the cumulative byte counters of one interface and
	// stamps them with the read time.
	Counters(ctx context.Context, iface string) (*types.CounterSample, error)
}

// System reads NIC counters from the OS.
type System struct{}

// New .
func New() *System {
	return &System{}
}

// List .
func (s *System) List(ctx context.Context) ([]string, error) {
	counters, err := net.IOCountersWithContext(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrPlatformQuery, err)
	}
	names := make([]string, 0, len(counters))
	for _, nic := range counters {
		names = append(names, nic.Name)
	}
	return names, nil
}

// Counters .
func (s *System) Counters(ctx context.Context, iface string) (*types.CounterSample, error) {
	counters, err := net.IOCountersWithContext(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrPlatformQuery, err)
	}
	at := time.Now()
	names := make([]string, 0, len(counters))
	for _, nic := range counters {
		if nic.Name == iface {
			return &types.CounterSample{
				Interface: nic.Name,
				BytesRecv: nic.BytesRecv,
				BytesSent: nic.BytesSent,
				At:        at,
			}, nil
		}
		names = append(names, nic.Name)
	}
	return nil, fmt.Errorf("%w: %q (available: %s)", common.ErrInterfaceNotFound, iface, strings.Join(names, ", "))
}
