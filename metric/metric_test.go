package metric

import (
	"testing"

	"github.com/wifimon/wifimon/types"

	"github.com/stretchr/testify/assert"
)

func TestRateGauges(t *testing.T) {
	assert := assert.New(t)

	client := NewClient("", "neko.example.com")
	client.Rate(&types.RateSample{
		Interface: "wlan0",
		DownRate:  2048,
		UpRate:    1024,
		RxTotal:   4096,
		TxTotal:   2048,
	})

	assert.Equal("wifimon.neko-example-com", client.prefix)
	assert.Equal(2048.0, client.data["wlan0.down.rate"])
	assert.Equal(1024.0, client.data["wlan0.up.rate"])
	assert.Equal(4096.0, client.data["wlan0.rx.total"])
	assert.Equal(2048.0, client.data["wlan0.tx.total"])

	// no statsd configured, Send is a no-op and keeps the data
	assert.NoError(client.Send())
	assert.Len(client.data, 4)
}

func TestSendDrains(t *testing.T) {
	assert := assert.New(t)

	// UDP connect needs no listener on the other side
	client := NewClient("127.0.0.1:8125", "host")
	client.DownRate("wlan0", 1)
	client.UpRate("wlan0", 2)

	assert.NoError(client.Send())
	assert.Len(client.data, 0)
}
