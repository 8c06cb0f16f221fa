package control

import (
	"bytes"
	"context"
	"testing"

	"github.com/wifimon/wifimon/common"
	"github.com/wifimon/wifimon/runner/mocks"
	"github.com/wifimon/wifimon/types"
)

// fakeSource hands the controller a fixed interface list for fallback
// detection.
type fakeSource struct {
	names []string
	err   error
}

func (f *fakeSource) List(ctx context.Context) ([]string, error) {
	return f.names, f.err
}

func (f *fakeSource) Counters(ctx context.Context, iface string) (*types.CounterSample, error) {
	return nil, common.ErrInterfaceNotFound
}

func newTestController(t *testing.T, platform types.Platform, sudo bool, names ...string) (*Controller, *mocks.Runner, *bytes.Buffer) {
	r := mocks.NewRunner(t)
	buf := &bytes.Buffer{}
	config := &types.Config{NoSudo: !sudo}
	return New(config, platform, r, &fakeSource{names: names}, buf), r, buf
}
