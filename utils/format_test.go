package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "0.00 B", FormatBytes(0))
	assert.Equal(t, "512.00 B", FormatBytes(512))
	assert.Equal(t, "1023.00 B", FormatBytes(1023))
	assert.Equal(t, "1.00 KB", FormatBytes(1024))
	assert.Equal(t, "1.50 KB", FormatBytes(1536))
	assert.Equal(t, "1.00 MB", FormatBytes(1024*1024))
	assert.Equal(t, "1.00 GB", FormatBytes(1024*1024*1024))
	assert.Equal(t, "1.00 TB", FormatBytes(1024*1024*1024*1024))

	// beyond the table everything stays in TB
	assert.Equal(t, "2048.00 TB", FormatBytes(2048*1024*1024*1024*1024))

	// counter glitches clamp to zero instead of printing nonsense
	assert.Equal(t, "0.00 B", FormatBytes(-42))
}

func TestFormatBytesDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, "117.74 MB", FormatBytes(123456789))
	}
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "0.00 B/s", FormatRate(0))
	assert.Equal(t, "2.00 KB/s", FormatRate(2048))
	assert.Equal(t, "1.50 KB/s", FormatRate(1536))
}
