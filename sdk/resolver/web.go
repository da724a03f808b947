package resolver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/netip"
	"strings"
	"time"

	"github.com/jxo-me/cfddns/consts"
	"github.com/jxo-me/cfddns/core/ddns"
	"github.com/jxo-me/cfddns/core/logger"
	"github.com/jxo-me/cfddns/internal/util"
	xlogger "github.com/jxo-me/cfddns/sdk/logger"
	"github.com/pkg/errors"
)

const (
	WebCode = "url"

	// lookup responses are a few dozen bytes
	maxBodySize = 4 << 10
)

type WebOption func(r *WebResolver)

func WithV4URL(url string) WebOption {
	return func(r *WebResolver) {
		r.v4URL = url
	}
}

func WithV6URL(url string) WebOption {
	return func(r *WebResolver) {
		r.v6URL = url
	}
}

// WithHTTPClients sets the clients used for the IPv4 and IPv6 lookups.
func WithHTTPClients(v4, v6 *http.Client) WebOption {
	return func(r *WebResolver) {
		r.v4Client = v4
		r.v6Client = v6
	}
}

func WithTimeout(timeout time.Duration) WebOption {
	return func(r *WebResolver) {
		r.timeout = timeout
	}
}

func WithLogger(log logger.ILogger) WebOption {
	return func(r *WebResolver) {
		r.logger = log
	}
}

// WebResolver asks an external service for the public address, using a
// separate endpoint and a family-pinned connection for each family.
type WebResolver struct {
	v4URL    string
	v6URL    string
	v4Client *http.Client
	v6Client *http.Client
	timeout  time.Duration
	logger   logger.ILogger
}

var _ ddns.IResolver = (*WebResolver)(nil)

func NewWebResolver(opts ...WebOption) *WebResolver {
	r := &WebResolver{
		v4URL:   consts.DefaultIPv4Lookup,
		v6URL:   consts.DefaultIPv6Lookup,
		timeout: consts.DefaultHTTPTimeout * time.Second,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.v4Client == nil {
		r.v4Client = util.CreateNoProxyHTTPClient("tcp4", r.timeout)
	}
	if r.v6Client == nil {
		r.v6Client = util.CreateNoProxyHTTPClient("tcp6", r.timeout)
	}
	r.logger = xlogger.OrDefault(r.logger)
	return r
}

func (r *WebResolver) String() string {
	return WebCode
}

func (r *WebResolver) ResolveV4(ctx context.Context) (netip.Addr, error) {
	return r.lookup(ctx, ddns.A, r.v4Client, r.v4URL)
}

func (r *WebResolver) ResolveV6(ctx context.Context) (netip.Addr, error) {
	return r.lookup(ctx, ddns.AAAA, r.v6Client, r.v6URL)
}

func (r *WebResolver) lookup(ctx context.Context, family ddns.Family, client *http.Client, url string) (netip.Addr, error) {
	op := family.Network() + " lookup"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return netip.Addr{}, &ddns.ConfigurationError{Reason: fmt.Sprintf("invalid %s URL %q: %v", op, url, err)}
	}
	req.Header.Set(consts.HeaderCacheControl, "no-cache")

	resp, err := client.Do(req)
	if err != nil {
		return netip.Addr{}, &ddns.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return netip.Addr{}, &ddns.ApplicationError{
			Op:     op,
			Reason: fmt.Sprintf("%s returned %s", url, resp.Status),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return netip.Addr{}, &ddns.TransportError{Op: op, Err: errors.Wrap(err, "failed to read response body")}
	}

	addr, err := ParseAddr(family, string(body))
	if err != nil {
		return netip.Addr{}, &ddns.ParseError{Op: op, Err: err}
	}
	r.logger.Debugf("%s lookup via %s returned %s", family.Network(), url, addr)
	return addr, nil
}

// ParseAddr extracts an address of the given family from a lookup response.
// It accepts the bare address text, optionally followed by more lines, and
// the comma separated form "IPv4,203.0.113.9,..." where the address is the
// second field.
func ParseAddr(family ddns.Family, body string) (netip.Addr, error) {
	line, _, _ := strings.Cut(strings.TrimSpace(body), "\n")
	line = strings.TrimSpace(line)
	if fields := strings.Split(line, ","); len(fields) > 1 {
		line = strings.TrimSpace(fields[1])
	}
	if line == "" {
		return netip.Addr{}, errors.Errorf("no %s address in response", family.Network())
	}

	addr, err := netip.ParseAddr(line)
	if err != nil {
		return netip.Addr{}, errors.Wrapf(err, "failed to parse %s address", family.Network())
	}
	addr = addr.Unmap()
	if !family.Contains(addr) {
		return netip.Addr{}, errors.Errorf("%s is not an %s address", addr, family.Network())
	}
	return addr, nil
}
