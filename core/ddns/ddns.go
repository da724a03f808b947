package ddns

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -destination ddns_mock.go -package ddns . IProvider,IResolver

import (
	"context"
	"net/netip"
)

// Zone is a DNS zone as identified by the provider.
type Zone struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// AddressRecord is a single A or AAAA record.
type AddressRecord struct {
	ID      string     `json:"id"`
	Name    string     `json:"name,omitempty"`
	Type    string     `json:"type,omitempty"`
	Locked  bool       `json:"locked"`
	Content netip.Addr `json:"content"`
}

// IProvider talks to the DNS provider.
type IProvider interface {
	String() string
	// FetchZone returns the only zone named name.
	FetchZone(ctx context.Context, name string) (Zone, error)
	// FetchAddressRecord returns the only record of the given family named domain.
	FetchAddressRecord(ctx context.Context, zoneID, domain string, family Family) (AddressRecord, error)
	// UpdateAddressRecord sets the content of a record.
	UpdateAddressRecord(ctx context.Context, zoneID, recordID string, addr netip.Addr) error
}

// IResolver discovers the public addresses of the executing host.
type IResolver interface {
	String() string
	ResolveV4(ctx context.Context) (netip.Addr, error)
	ResolveV6(ctx context.Context) (netip.Addr, error)
}

// Resolve dispatches to the lookup matching family.
func Resolve(ctx context.Context, r IResolver, family Family) (netip.Addr, error) {
	switch family {
	case A:
		return r.ResolveV4(ctx)
	case AAAA:
		return r.ResolveV6(ctx)
	default:
		return netip.Addr{}, &ConfigurationError{Reason: "unsupported address family " + family.String()}
	}
}
