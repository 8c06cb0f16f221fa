package control

import (
	"context"
	"testing"

	"github.com/wifimon/wifimon/common"
	"github.com/wifimon/wifimon/runner"
	"github.com/wifimon/wifimon/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMonitorModeEnable(t *testing.T) {
	assert := assert.New(t)
	ctrl, r, buf := newTestController(t, types.PlatformLinux, true)

	var calls [][]string
	record := func(args mock.Arguments) {
		argv := append([]string{args.String(1)}, args.Get(2).([]string)...)
		calls = append(calls, argv)
	}
	r.On("Run", mock.Anything, "sudo", []string{"ip", "link", "set", "wlan0", "down"}).Run(record).Return(&runner.Output{}, nil).Once()
	r.On("Run", mock.Anything, "sudo", []string{"iw", "dev", "wlan0", "set", "type", "monitor"}).Run(record).Return(&runner.Output{}, nil).Once()
	r.On("Run", mock.Anything, "sudo", []string{"ip", "link", "set", "wlan0", "up"}).Run(record).Return(&runner.Output{}, nil).Once()

	assert.NoError(ctrl.SetMonitorMode(context.Background(), true, "wlan0"))

	// down, set type, up, in that order
	assert.Equal([][]string{
		{"sudo", "ip", "link", "set", "wlan0", "down"},
		{"sudo", "iw", "dev", "wlan0", "set", "type", "monitor"},
		{"sudo", "ip", "link", "set", "wlan0", "up"},
	}, calls)
	assert.Contains(buf.String(), "Monitor mode requested on wlan0. Verify with: iw dev wlan0 info")
}

func TestMonitorModeDisable(t *testing.T) {
	assert := assert.New(t)
	ctrl, r, buf := newTestController(t, types.PlatformLinux, true)

	r.On("Run", mock.Anything, "sudo", []string{"ip", "link", "set", "wlan0", "down"}).Return(&runner.Output{}, nil).Once()
	r.On("Run", mock.Anything, "sudo", []string{"iw", "dev", "wlan0", "set", "type", "managed"}).Return(&runner.Output{}, nil).Once()
	r.On("Run", mock.Anything, "sudo", []string{"ip", "link", "set", "wlan0", "up"}).Return(&runner.Output{}, nil).Once()

	assert.NoError(ctrl.SetMonitorMode(context.Background(), false, "wlan0"))
	assert.Contains(buf.String(), "Managed mode restored on wlan0.")
}

func TestMonitorModeNoSudo(t *testing.T) {
	ctrl, r, _ := newTestController(t, types.PlatformLinux, false)

	r.On("Run", mock.Anything, "ip", []string{"link", "set", "wlan0", "down"}).Return(&runner.Output{}, nil).Once()
	r.On("Run", mock.Anything, "iw", []string{"dev", "wlan0", "set", "type", "monitor"}).Return(&runner.Output{}, nil).Once()
	r.On("Run", mock.Anything, "ip", []string{"link", "set", "wlan0", "up"}).Return(&runner.Output{}, nil).Once()

	assert.NoError(t, ctrl.SetMonitorMode(context.Background(), true, "wlan0"))
}

func TestMonitorModeStepFails(t *testing.T) {
	assert := assert.New(t)
	ctrl, r, _ := newTestController(t, types.PlatformLinux, true)

	r.On("Run", mock.Anything, "sudo", []string{"ip", "link", "set", "wlan0", "down"}).Return(&runner.Output{}, nil).Once()
	r.On("Run", mock.Anything, "sudo", []string{"iw", "dev", "wlan0", "set", "type", "monitor"}).
		Return(&runner.Output{ExitCode: 240, Stderr: "command failed: Operation not supported (-95)"}, nil).Once()
	// no expectation for the third step, the sequence must abort here

	err := ctrl.SetMonitorMode(context.Background(), true, "wlan0")
	assert.Error(err)
	assert.ErrorIs(err, common.ErrControlFailed)
	assert.Contains(err.Error(), "step 2/3")
	assert.Contains(err.Error(), "Operation not supported")
}

func TestMonitorModeNonLinux(t *testing.T) {
	for _, platform := range []types.Platform{types.PlatformDarwin, types.PlatformWindows} {
		ctrl, _, _ := newTestController(t, platform, true)
		err := ctrl.SetMonitorMode(context.Background(), true, "wlan0")
		assert.Error(t, err)
		assert.ErrorIs(t, err, common.ErrUnsupportedPlatform)
	}
}

func TestMonitorModeNeedsInterface(t *testing.T) {
	ctrl, _, _ := newTestController(t, types.PlatformLinux, true)
	err := ctrl.SetMonitorMode(context.Background(), false, "")
	assert.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInterfaceRequired)
}
