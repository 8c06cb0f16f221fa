package metric

import (
	"fmt"
	"strings"

	"github.com/wifimon/wifimon/types"

	statsdlib "github.com/CMGS/statsd"
	log "github.com/sirupsen/logrus"
)

// Client pushes per-sample interface gauges to statsd. Gauges accumulate in
// data between sends; Send drains them.
type Client struct {
	statsd string
	prefix string
	data   map[string]float64
}

// NewClient new a metrics client, keys are scoped by hostname
func NewClient(statsd, hostname string) *Client {
	tag := strings.ReplaceAll(hostname, ".", "-")
	return &Client{
		statsd: statsd,
		prefix: fmt.Sprintf("wifimon.%s", tag),
		data:   map[string]float64{},
	}
}

// DownRate set receive rate in bytes per second
func (m *Client) DownRate(nic string, i float64) {
	m.data[nic+".down.rate"] = i
}

// UpRate set send rate in bytes per second
func (m *Client) UpRate(nic string, i float64) {
	m.data[nic+".up.rate"] = i
}

// RxTotal set session receive total
func (m *Client) RxTotal(nic string, i float64) {
	m.data[nic+".rx.total"] = i
}

// TxTotal set session send total
func (m *Client) TxTotal(nic string, i float64) {
	m.data[nic+".tx.total"] = i
}

// Rate records every gauge of one sample.
func (m *Client) Rate(sample *types.RateSample) {
	m.DownRate(sample.Interface, sample.DownRate)
	m.UpRate(sample.Interface, sample.UpRate)
	m.RxTotal(sample.Interface, float64(sample.RxTotal))
	m.TxTotal(sample.Interface, float64(sample.TxTotal))
}

// Send to statsd
func (m *Client) Send() error {
	if m.statsd == "" {
		return nil
	}
	remote, err := statsdlib.New(m.statsd)
	if err != nil {
		log.Errorf("[statsd] Connect statsd failed: %v", err)
		return err
	}
	defer remote.Close()
	defer remote.Flush()
	for k, v := range m.data {
		key := fmt.Sprintf("%s.%s", m.prefix, k)
		remote.Gauge(key, v)
		delete(m.data, k)
	}
	return nil
}
