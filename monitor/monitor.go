package monitor

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/wifimon/wifimon/common"
	"github.com/wifimon/wifimon/metric"
	"github.com/wifimon/wifimon/stats"
	"github.com/wifimon/wifimon/types"
	"github.com/wifimon/wifimon/utils"

	log "github.com/sirupsen/logrus"
)

// Monitor samples one interface on a fixed interval and writes a rate row
// per tick until the context is cancelled, the row budget runs out or the
// interface goes away.
type Monitor struct {
	source  stats.Source
	metrics *metric.Client
	out     io.Writer

	iface    string
	interval time.Duration
	count    int   // rows to print, 0 means until cancelled
	alert    int64 // bytes per second, 0 disables
}

// New .
func New(config *types.Config, source stats.Source, out io.Writer, iface string) *Monitor {
	m := &Monitor{
		source:   source,
		out:      out,
		iface:    iface,
		interval: config.Duration(),
		count:    config.Count,
		alert:    config.AlertBytes,
	}
	if config.Statsd != "" {
		m.metrics = metric.NewClient(config.Statsd, config.HostName)
	}
	return m
}

// Run drives the sampling loop. Totals accumulate only positive counter
// deltas, so a counter reset zeroes the rate for that direction and starts
// a fresh baseline instead of poisoning the session. Rates divide by the
// measured gap between reads, not the nominal interval.
func (m *Monitor) Run(ctx context.Context) error {
	prev, err := m.source.Counters(ctx, m.iface)
	if err != nil {
		return err
	}

	m.printHeader(prev.At)
	start := prev.At

	tick := time.NewTicker(m.interval)
	defer tick.Stop()

	var rxTotal, txTotal uint64
	rows := 0
	for {
		select {
		case <-ctx.Done():
			m.printSummary(rxTotal, txTotal, time.Since(start))
			return nil
		case <-tick.C:
			cur, err := m.source.Counters(ctx, m.iface)
			if err != nil {
				m.printSummary(rxTotal, txTotal, time.Since(start))
				return fmt.Errorf("%w: %v", common.ErrInterfaceUnavailable, err)
			}

			elapsed := cur.At.Sub(prev.At).Seconds()
			if elapsed <= 0 {
				// clock went sideways, rebaseline and wait for the next tick
				prev = cur
				continue
			}

			var downRate, upRate float64
			if cur.BytesRecv >= prev.BytesRecv {
				delta := cur.BytesRecv - prev.BytesRecv
				downRate = float64(delta) / elapsed
				rxTotal += delta
			}
			if cur.BytesSent >= prev.BytesSent {
				delta := cur.BytesSent - prev.BytesSent
				upRate = float64(delta) / elapsed
				txTotal += delta
			}
			prev = cur

			sample := &types.RateSample{
				Interface: m.iface,
				DownRate:  downRate,
				UpRate:    upRate,
				RxTotal:   rxTotal,
				TxTotal:   txTotal,
				Elapsed:   cur.At.Sub(start),
			}
			m.printRow(sample)
			m.checkAlert(sample)
			if m.metrics != nil {
				m.metrics.Rate(sample)
				if err := m.metrics.Send(); err != nil {
					log.Errorf("[monitor] send metrics failed %v", err)
				}
			}

			rows++
			if m.count > 0 && rows >= m.count {
				m.printSummary(rxTotal, txTotal, cur.At.Sub(start))
				return nil
			}
		}
	}
}

func (m *Monitor) printHeader(at time.Time) {
	fmt.Fprintf(m.out, "Monitoring interface: %s (Ctrl+C to stop)\n", m.iface)
	fmt.Fprintf(m.out, "Start time: %s\n", at.Format(common.DateTimeFormat))
	fmt.Fprintln(m.out, strings.Repeat("-", 72))
	fmt.Fprintf(m.out, "%8s  %12s  %12s  %10s  %10s\n", "Elapsed", "RX total", "TX total", "Down/s", "Up/s")
	fmt.Fprintln(m.out, strings.Repeat("-", 72))
}

func (m *Monitor) printRow(sample *types.RateSample) {
	fmt.Fprintf(m.out, "%8ds  %12s  %12s  %10s  %10s\n",
		int(sample.Elapsed.Seconds()),
		utils.FormatBytes(float64(sample.RxTotal)),
		utils.FormatBytes(float64(sample.TxTotal)),
		utils.FormatRate(sample.DownRate),
		utils.FormatRate(sample.UpRate),
	)
}

func (m *Monitor) printSummary(rxTotal, txTotal uint64, elapsed time.Duration) {
	fmt.Fprintf(m.out, "\nStopped.\n")
	fmt.Fprintf(m.out, "Session total: RX %s, TX %s in %ds\n",
		utils.FormatBytes(float64(rxTotal)),
		utils.FormatBytes(float64(txTotal)),
		int(elapsed.Seconds()),
	)
}

func (m *Monitor) checkAlert(sample *types.RateSample) {
	if m.alert <= 0 {
		return
	}
	limit := float64(m.alert)
	if sample.DownRate > limit || sample.UpRate > limit {
		log.Warnf("[monitor] %s rate above %s: down %s, up %s",
			m.iface, utils.FormatRate(limit),
			utils.FormatRate(sample.DownRate), utils.FormatRate(sample.UpRate))
	}
}
