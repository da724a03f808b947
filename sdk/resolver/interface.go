package resolver

import (
	"context"
	"net"
	"net/netip"

	"github.com/jxo-me/cfddns/core/ddns"
	"github.com/pkg/errors"
)

const InterfaceCode = "netInterface"

// InterfaceResolver reads the address straight from a network interface,
// for hosts that hold their public address locally.
type InterfaceResolver struct {
	name  string
	addrs func(name string) ([]net.Addr, error)
}

var _ ddns.IResolver = (*InterfaceResolver)(nil)

func NewInterfaceResolver(name string) *InterfaceResolver {
	return &InterfaceResolver{name: name, addrs: interfaceAddrs}
}

func interfaceAddrs(name string) ([]net.Addr, error) {
	iface, err := net.InterfaceByName(name)
	if err != nil {
		return nil, err
	}
	return iface.Addrs()
}

func (r *InterfaceResolver) String() string {
	return InterfaceCode
}

func (r *InterfaceResolver) ResolveV4(ctx context.Context) (netip.Addr, error) {
	return r.resolve(ddns.A)
}

func (r *InterfaceResolver) ResolveV6(ctx context.Context) (netip.Addr, error) {
	return r.resolve(ddns.AAAA)
}

// resolve returns the first global unicast, non-private address of family.
func (r *InterfaceResolver) resolve(family ddns.Family) (netip.Addr, error) {
	op := family.Network() + " interface lookup"
	addrs, err := r.addrs(r.name)
	if err != nil {
		return netip.Addr{}, &ddns.TransportError{Op: op, Err: errors.Wrapf(err, "interface %s", r.name)}
	}
	for _, a := range addrs {
		// addr: ip+net:fd64:9f44:fc30:0:b951:8b16:2812:a227/64
		prefix, err := netip.ParsePrefix(a.String())
		if err != nil {
			continue
		}
		addr := prefix.Addr().Unmap()
		if !family.Contains(addr) || !addr.IsGlobalUnicast() || addr.IsPrivate() {
			continue
		}
		return addr, nil
	}
	return netip.Addr{}, &ddns.ApplicationError{
		Op:     op,
		Reason: "no public " + family.Network() + " address on interface " + r.name,
	}
}
