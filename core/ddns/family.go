package ddns

import (
	"fmt"
	"net/netip"
)

// Family is an address record type and the IP version it carries.
type Family uint8

const (
	// A records hold IPv4 addresses.
	A Family = iota + 1
	// AAAA records hold IPv6 addresses.
	AAAA
)

// String renders the record type as sent to the provider.
func (f Family) String() string {
	switch f {
	case A:
		return "A"
	case AAAA:
		return "AAAA"
	default:
		return fmt.Sprintf("Family(%d)", uint8(f))
	}
}

// Network renders the IP version, e.g. "IPv4".
func (f Family) Network() string {
	switch f {
	case A:
		return "IPv4"
	case AAAA:
		return "IPv6"
	default:
		return "unknown"
	}
}

// Contains reports whether addr belongs to the family.
func (f Family) Contains(addr netip.Addr) bool {
	switch f {
	case A:
		return addr.Is4() || addr.Is4In6()
	case AAAA:
		return addr.Is6() && !addr.Is4In6()
	default:
		return false
	}
}

// Families returns the families in scope for a run. Both flags set is a
// configuration error and must be rejected before calling this.
func Families(onlyV4, onlyV6 bool) []Family {
	switch {
	case onlyV4:
		return []Family{A}
	case onlyV6:
		return []Family{AAAA}
	default:
		return []Family{A, AAAA}
	}
}
