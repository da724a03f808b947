package updater

import (
	"context"
	"net/netip"
	"testing"

	"github.com/jxo-me/cfddns/consts"
	"github.com/jxo-me/cfddns/core/ddns"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	zoneName = "example.com"
	zoneID   = "023e105f4ecef8ad9ca31a8372d0c353"
	v4ID     = "372e67954025e0ba6aaa6d586b9e0b59"
	v6ID     = "0f1e2d3c4b5a69788796a5b4c3d2e1f0"
)

var (
	zone = ddns.Zone{ID: zoneID, Name: zoneName}

	oldV4 = netip.MustParseAddr("203.0.113.5")
	newV4 = netip.MustParseAddr("203.0.113.9")
	oldV6 = netip.MustParseAddr("2001:db8::5")
	newV6 = netip.MustParseAddr("2001:db8::9")
)

type fixture struct {
	provider *ddns.MockIProvider
	resolver *ddns.MockIResolver
	updater  *Updater
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		provider: ddns.NewMockIProvider(ctrl),
		resolver: ddns.NewMockIResolver(ctrl),
	}
	f.updater = New(f.provider, f.resolver, nil)
	return f
}

func target(families ...ddns.Family) Target {
	return Target{Zone: zoneName, Domain: zoneName, Families: families}
}

func TestUpdater_UpdatesStaleRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	gomock.InOrder(
		f.provider.EXPECT().FetchZone(ctx, zoneName).Return(zone, nil),
		f.provider.EXPECT().FetchAddressRecord(ctx, zoneID, zoneName, ddns.A).
			Return(ddns.AddressRecord{ID: v4ID, Content: oldV4}, nil),
		f.resolver.EXPECT().ResolveV4(ctx).Return(newV4, nil),
		f.provider.EXPECT().UpdateAddressRecord(ctx, zoneID, v4ID, newV4).Return(nil).Times(1),
	)

	report, err := f.updater.Run(ctx, target(ddns.A))
	require.NoError(t, err)
	assert.Equal(t, []string{"A Record updated to: 203.0.113.9"}, report.Lines())
	assert.True(t, report.Changed())

	res, ok := report.Get(ddns.A)
	require.True(t, ok)
	assert.Equal(t, consts.UpdatedSuccess, res.Status)
	assert.Equal(t, oldV4, res.Previous)
}

func TestUpdater_SkipsLockedRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.provider.EXPECT().FetchZone(ctx, zoneName).Return(zone, nil)
	f.provider.EXPECT().FetchAddressRecord(ctx, zoneID, zoneName, ddns.A).
		Return(ddns.AddressRecord{ID: v4ID, Content: oldV4, Locked: true}, nil)
	f.resolver.EXPECT().ResolveV4(ctx).Return(newV4, nil)
	f.provider.EXPECT().UpdateAddressRecord(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	report, err := f.updater.Run(ctx, target(ddns.A))
	require.NoError(t, err)
	assert.Equal(t, []string{"A Record is locked; skipping..."}, report.Lines())
	assert.False(t, report.Changed())
}

func TestUpdater_Decision(t *testing.T) {
	tests := []struct {
		name    string
		content netip.Addr
		locked  bool
		updates int
		status  consts.UpdateStatusType
	}{
		{"matching", newV4, false, 0, consts.UpdatedNothing},
		{"matching and locked", newV4, true, 0, consts.UpdatedNothing},
		{"stale and locked", oldV4, true, 0, consts.UpdatedLocked},
		{"stale", oldV4, false, 1, consts.UpdatedSuccess},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()

			f.provider.EXPECT().FetchZone(ctx, zoneName).Return(zone, nil)
			f.provider.EXPECT().FetchAddressRecord(ctx, zoneID, zoneName, ddns.A).
				Return(ddns.AddressRecord{ID: v4ID, Content: tt.content, Locked: tt.locked}, nil)
			f.resolver.EXPECT().ResolveV4(ctx).Return(newV4, nil)
			f.provider.EXPECT().UpdateAddressRecord(ctx, zoneID, v4ID, newV4).Return(nil).Times(tt.updates)

			report, err := f.updater.Run(ctx, target(ddns.A))
			require.NoError(t, err)
			res, ok := report.Get(ddns.A)
			require.True(t, ok)
			assert.Equal(t, tt.status, res.Status)
		})
	}
}

func TestUpdater_MatchingReportsSkip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.provider.EXPECT().FetchZone(ctx, zoneName).Return(zone, nil)
	f.provider.EXPECT().FetchAddressRecord(ctx, zoneID, zoneName, ddns.A).
		Return(ddns.AddressRecord{ID: v4ID, Content: newV4}, nil)
	f.provider.EXPECT().FetchAddressRecord(ctx, zoneID, zoneName, ddns.AAAA).
		Return(ddns.AddressRecord{ID: v6ID, Content: newV6}, nil)
	f.resolver.EXPECT().ResolveV4(ctx).Return(newV4, nil)
	f.resolver.EXPECT().ResolveV6(ctx).Return(newV6, nil)

	report, err := f.updater.Run(ctx, target(ddns.A, ddns.AAAA))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"A Record already matches desired IPv4; skipping...",
		"AAAA Record already matches desired IPv6; skipping...",
	}, report.Lines())
}

func TestUpdater_OnlyV4NeverTouchesAAAA(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.provider.EXPECT().FetchZone(ctx, zoneName).Return(zone, nil)
	f.provider.EXPECT().FetchAddressRecord(ctx, zoneID, zoneName, ddns.A).
		Return(ddns.AddressRecord{ID: v4ID, Content: oldV4}, nil)
	f.provider.EXPECT().FetchAddressRecord(gomock.Any(), gomock.Any(), gomock.Any(), ddns.AAAA).Times(0)
	f.resolver.EXPECT().ResolveV4(ctx).Return(newV4, nil)
	f.resolver.EXPECT().ResolveV6(gomock.Any()).Times(0)
	f.provider.EXPECT().UpdateAddressRecord(ctx, zoneID, v4ID, newV4).Return(nil)

	report, err := f.updater.Run(ctx, target(ddns.Families(true, false)...))
	require.NoError(t, err)
	_, ok := report.Get(ddns.AAAA)
	assert.False(t, ok)
}

func TestUpdater_Idempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// the provider reflects the first run's update
	record := ddns.AddressRecord{ID: v4ID, Content: oldV4}
	f.provider.EXPECT().FetchZone(ctx, zoneName).Return(zone, nil).Times(2)
	f.provider.EXPECT().FetchAddressRecord(ctx, zoneID, zoneName, ddns.A).
		DoAndReturn(func(context.Context, string, string, ddns.Family) (ddns.AddressRecord, error) {
			return record, nil
		}).Times(2)
	f.resolver.EXPECT().ResolveV4(ctx).Return(newV4, nil).Times(2)
	f.provider.EXPECT().UpdateAddressRecord(ctx, zoneID, v4ID, newV4).
		DoAndReturn(func(_ context.Context, _, _ string, addr netip.Addr) error {
			record.Content = addr
			return nil
		}).Times(1)

	first, err := f.updater.Run(ctx, target(ddns.A))
	require.NoError(t, err)
	assert.Equal(t, []string{"A Record updated to: 203.0.113.9"}, first.Lines())

	second, err := f.updater.Run(ctx, target(ddns.A))
	require.NoError(t, err)
	assert.Equal(t, []string{"A Record already matches desired IPv4; skipping..."}, second.Lines())
}

func TestUpdater_EvaluationFailureWritesNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	lookupErr := &ddns.TransportError{Op: "IPv6 lookup", Err: errors.New("network is unreachable")}

	f.provider.EXPECT().FetchZone(ctx, zoneName).Return(zone, nil)
	f.provider.EXPECT().FetchAddressRecord(ctx, zoneID, zoneName, ddns.A).
		Return(ddns.AddressRecord{ID: v4ID, Content: oldV4}, nil)
	f.provider.EXPECT().FetchAddressRecord(ctx, zoneID, zoneName, ddns.AAAA).
		Return(ddns.AddressRecord{ID: v6ID, Content: oldV6}, nil)
	f.resolver.EXPECT().ResolveV4(ctx).Return(newV4, nil)
	f.resolver.EXPECT().ResolveV6(ctx).Return(netip.Addr{}, lookupErr)
	f.provider.EXPECT().UpdateAddressRecord(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	report, err := f.updater.Run(ctx, target(ddns.A, ddns.AAAA))
	require.Error(t, err)
	assert.True(t, ddns.IsTransport(err))
	assert.True(t, errors.Is(err, lookupErr))

	_, ok := report.Get(ddns.A)
	assert.False(t, ok)
	res, ok := report.Get(ddns.AAAA)
	require.True(t, ok)
	assert.Equal(t, consts.UpdatedFailed, res.Status)
}

func TestUpdater_ZoneFailureCarriesFirstError(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first := &ddns.APIError{Code: 1003, Message: "Invalid or missing zone id."}

	f.provider.EXPECT().FetchZone(ctx, zoneName).
		Return(ddns.Zone{}, &ddns.ApplicationError{Op: "Zones", First: first, Others: 1})

	_, err := f.updater.Run(ctx, target(ddns.A, ddns.AAAA))
	require.Error(t, err)
	assert.True(t, ddns.IsApplication(err))

	var apiErr *ddns.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "[1003] Invalid or missing zone id.", apiErr.Error())
}

func TestUpdater_UpdateFailureAbortsRemaining(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	updateErr := &ddns.ApplicationError{Op: "DNS Records update", First: &ddns.APIError{Code: 9109, Message: "Invalid access token"}}

	f.provider.EXPECT().FetchZone(ctx, zoneName).Return(zone, nil)
	f.provider.EXPECT().FetchAddressRecord(ctx, zoneID, zoneName, ddns.A).
		Return(ddns.AddressRecord{ID: v4ID, Content: oldV4}, nil)
	f.provider.EXPECT().FetchAddressRecord(ctx, zoneID, zoneName, ddns.AAAA).
		Return(ddns.AddressRecord{ID: v6ID, Content: oldV6}, nil)
	f.resolver.EXPECT().ResolveV4(ctx).Return(newV4, nil)
	f.resolver.EXPECT().ResolveV6(ctx).Return(newV6, nil)
	f.provider.EXPECT().UpdateAddressRecord(ctx, zoneID, v4ID, newV4).Return(updateErr)
	f.provider.EXPECT().UpdateAddressRecord(ctx, zoneID, v6ID, newV6).Times(0)

	report, err := f.updater.Run(ctx, target(ddns.A, ddns.AAAA))
	require.Error(t, err)
	assert.True(t, ddns.IsApplication(err))
	require.Len(t, report.Results, 1)
	assert.Equal(t, consts.UpdatedFailed, report.Results[0].Status)
	assert.True(t, report.Changed())
}

func TestUpdater_NoFamilies(t *testing.T) {
	f := newFixture(t)
	_, err := f.updater.Run(context.Background(), target())
	assert.True(t, ddns.IsConfiguration(err))
}
