package service

import (
	"context"
	"net/netip"
	"testing"
	"time"

	"github.com/jxo-me/cfddns/config"
	"github.com/jxo-me/cfddns/consts"
	"github.com/jxo-me/cfddns/core/ddns"
	"github.com/jxo-me/cfddns/core/hook"
	"github.com/jxo-me/cfddns/core/logger"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordingHook struct {
	events []hook.Event
	err    error
}

func (h *recordingHook) String() string {
	return "recording"
}

func (h *recordingHook) ExecHook(_ context.Context, event hook.Event) error {
	h.events = append(h.events, event)
	return h.err
}

func testConfig() *config.Config {
	return &config.Config{
		Zone:     "example.com",
		Domain:   "example.com",
		APIToken: "token",
		OnlyV4:   true,
		Interval: time.Hour,
	}
}

func mockFactory(provider ddns.IProvider, r ddns.IResolver, calls *int) Factory {
	return func(*config.Config, logger.ILogger) (ddns.IProvider, ddns.IResolver, error) {
		*calls++
		return provider, r, nil
	}
}

func TestDDNSService_RunOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := ddns.NewMockIProvider(ctrl)
	r := ddns.NewMockIResolver(ctrl)
	addr := netip.MustParseAddr("203.0.113.9")

	provider.EXPECT().FetchZone(gomock.Any(), "example.com").Return(ddns.Zone{ID: "zone"}, nil)
	provider.EXPECT().FetchAddressRecord(gomock.Any(), "zone", "example.com", ddns.A).
		Return(ddns.AddressRecord{ID: "record", Content: netip.MustParseAddr("203.0.113.5")}, nil)
	r.EXPECT().ResolveV4(gomock.Any()).Return(addr, nil)
	provider.EXPECT().UpdateAddressRecord(gomock.Any(), "zone", "record", addr).Return(nil)

	calls := 0
	h := &recordingHook{err: errors.New("hook unreachable")}
	s := NewDDNS(testConfig(), nil, WithFactory(mockFactory(provider, r, &calls)), WithHook(h))

	report, err := s.RunOnce(context.Background())
	require.NoError(t, err, "webhook failures must not fail the run")
	assert.Equal(t, []string{"A Record updated to: 203.0.113.9"}, report.Lines())
	assert.Equal(t, 1, calls)

	require.Len(t, h.events, 1)
	assert.Equal(t, hook.Event{
		Domain:     "example.com",
		Ipv4Addr:   "203.0.113.9",
		Ipv4Result: consts.UpdatedSuccess,
		Ipv6Result: consts.UpdatedNothing,
	}, h.events[0])
}

func TestDDNSService_RunOnceInvalidConfig(t *testing.T) {
	conf := testConfig()
	conf.OnlyV6 = true

	calls := 0
	s := NewDDNS(conf, nil, WithFactory(mockFactory(nil, nil, &calls)))

	_, err := s.RunOnce(context.Background())
	require.Error(t, err)
	assert.True(t, ddns.IsConfiguration(err))
	assert.Zero(t, calls)
}

func TestDDNSService_StartStop(t *testing.T) {
	ran := make(chan struct{}, 1)
	factory := func(*config.Config, logger.ILogger) (ddns.IProvider, ddns.IResolver, error) {
		ran <- struct{}{}
		return nil, nil, errors.New("offline")
	}
	s := NewDDNS(testConfig(), nil, WithFactory(factory))

	done := make(chan error, 1)
	go func() {
		done <- s.Start()
	}()

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("service did not run on start")
	}

	require.NoError(t, s.Stop())
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("service did not stop")
	}
	assert.NoError(t, s.Stop())
}

func TestDDNSService_StopBeforeStart(t *testing.T) {
	calls := 0
	s := NewDDNS(testConfig(), nil, WithFactory(mockFactory(nil, nil, &calls)))

	require.NoError(t, s.Stop())
	assert.NoError(t, s.Start())
	assert.Zero(t, calls)
}

func TestDDNSService_Identity(t *testing.T) {
	a := NewDDNS(testConfig(), nil)
	b := NewDDNS(testConfig(), nil)
	assert.Equal(t, "cloudflare:example.com", a.String())
	assert.Equal(t, a.Hash(), b.Hash())

	conf := testConfig()
	conf.OnlyV4 = false
	assert.NotEqual(t, a.Hash(), NewDDNS(conf, nil).Hash())
}
