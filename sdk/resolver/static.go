package resolver

import (
	"context"
	"net/netip"

	"github.com/jxo-me/cfddns/core/ddns"
	"github.com/pkg/errors"
)

const StaticCode = "static"

// StaticResolver returns fixed addresses taken from configuration.
type StaticResolver struct {
	v4 netip.Addr
	v6 netip.Addr
}

var _ ddns.IResolver = (*StaticResolver)(nil)

// NewStaticResolver parses the configured addresses. Either may be empty,
// in which case resolving that family fails.
func NewStaticResolver(v4, v6 string) (*StaticResolver, error) {
	r := &StaticResolver{}
	var err error
	if v4 != "" {
		if r.v4, err = ParseAddr(ddns.A, v4); err != nil {
			return nil, &ddns.ConfigurationError{Reason: errors.Wrap(err, "static ipv4").Error()}
		}
	}
	if v6 != "" {
		if r.v6, err = ParseAddr(ddns.AAAA, v6); err != nil {
			return nil, &ddns.ConfigurationError{Reason: errors.Wrap(err, "static ipv6").Error()}
		}
	}
	return r, nil
}

func (r *StaticResolver) String() string {
	return StaticCode
}

func (r *StaticResolver) ResolveV4(context.Context) (netip.Addr, error) {
	if !r.v4.IsValid() {
		return netip.Addr{}, &ddns.ConfigurationError{Reason: "no static IPv4 address configured"}
	}
	return r.v4, nil
}

func (r *StaticResolver) ResolveV6(context.Context) (netip.Addr, error) {
	if !r.v6.IsValid() {
		return netip.Addr{}, &ddns.ConfigurationError{Reason: "no static IPv6 address configured"}
	}
	return r.v6, nil
}
