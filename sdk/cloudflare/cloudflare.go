package cloudflare

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/netip"
	"net/url"
	"strings"

	"github.com/jxo-me/cfddns/consts"
	"github.com/jxo-me/cfddns/core/ddns"
	"github.com/jxo-me/cfddns/core/logger"
	xlogger "github.com/jxo-me/cfddns/sdk/logger"
	"github.com/pkg/errors"
)

const (
	Code = "cloudflare"

	opZones         = "Zones"
	opRecords       = "DNS Records"
	opRecordsUpdate = "DNS Records update"
)

type Option func(c *Client)

// WithEndpoint overrides the API base URL, e.g. for tests.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = strings.TrimRight(endpoint, "/")
	}
}

// WithTransport replaces the HTTP call used for every request.
func WithTransport(t Transport) Option {
	return func(c *Client) {
		c.transport = t
	}
}

func WithLogger(log logger.ILogger) Option {
	return func(c *Client) {
		c.logger = log
	}
}

// Client implements ddns.IProvider against the Cloudflare v4 API.
type Client struct {
	token     string
	endpoint  string
	transport Transport
	logger    logger.ILogger
}

var _ ddns.IProvider = (*Client)(nil)

func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		token:    token,
		endpoint: consts.DefaultAPIEndpoint,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		c.transport = NewHTTPTransport(nil)
	}
	c.logger = xlogger.OrDefault(c.logger)
	c.logger = c.logger.WithFields(map[string]any{"provider": Code})
	return c
}

func (c *Client) String() string {
	return Code
}

// FetchZone looks up the zone by exact name.
func (c *Client) FetchZone(ctx context.Context, name string) (ddns.Zone, error) {
	query := url.Values{}
	query.Set("name", name)

	env, err := request[[]ddns.Zone](ctx, c, opZones, http.MethodGet, "/zones", query, nil)
	if err != nil {
		return ddns.Zone{}, err
	}
	zone, err := single(opZones, "Zone", env, c.logger)
	if err != nil {
		return ddns.Zone{}, err
	}
	c.logger.Debugf("zone %s resolved to %s", name, zone.ID)
	return zone, nil
}

// FetchAddressRecord looks up the record of the given family named domain.
func (c *Client) FetchAddressRecord(ctx context.Context, zoneID, domain string, family ddns.Family) (ddns.AddressRecord, error) {
	query := url.Values{}
	query.Set("name", domain)
	query.Set("type", family.String())

	path := fmt.Sprintf("/zones/%s/dns_records", url.PathEscape(zoneID))
	env, err := request[[]ddns.AddressRecord](ctx, c, opRecords, http.MethodGet, path, query, nil)
	if err != nil {
		return ddns.AddressRecord{}, err
	}
	record, err := single(opRecords, "DNS Records", env, c.logger)
	if err != nil {
		return ddns.AddressRecord{}, err
	}
	if !family.Contains(record.Content) {
		return ddns.AddressRecord{}, &ddns.ApplicationError{
			Op:     opRecords,
			Reason: fmt.Sprintf("%s record %s holds %q, which is not an %s address", family, record.ID, record.Content, family.Network()),
		}
	}
	c.logger.Debugf("%s record %s for %s holds %s (locked: %t)", family, record.ID, domain, record.Content, record.Locked)
	return record, nil
}

// UpdateAddressRecord patches the content of a record. The returned record
// is not inspected.
func (c *Client) UpdateAddressRecord(ctx context.Context, zoneID, recordID string, addr netip.Addr) error {
	path := fmt.Sprintf("/zones/%s/dns_records/%s", url.PathEscape(zoneID), url.PathEscape(recordID))
	body := map[string]string{"content": addr.String()}

	env, err := request[json.RawMessage](ctx, c, opRecordsUpdate, http.MethodPatch, path, nil, body)
	if err != nil {
		return err
	}
	return check(opRecordsUpdate, env, c.logger)
}

// request 统一请求接口
func request[T any](ctx context.Context, c *Client, op, method, path string, query url.Values, data any) (*Envelope[T], error) {
	u, err := url.Parse(c.endpoint + path)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s URL", op)
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var body io.Reader = http.NoBody
	if data != nil {
		buf, err := json.Marshal(data)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode %s request", op)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create %s request", op)
	}
	req.Header.Set(consts.HeaderContentType, consts.MIMEApplicationJSON)
	req.Header.Set(consts.HeaderAuthorization, "Bearer "+c.token)

	c.logger.Tracef("%s %s", method, u.Redacted())
	resp, err := c.transport.Send(req)
	if err != nil {
		return nil, &ddns.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ddns.TransportError{Op: op, Err: errors.Wrap(err, "failed to read response body")}
	}
	c.logger.Tracef("%s %s -> %d", method, u.Redacted(), resp.StatusCode)

	return decode[T](op, resp.StatusCode, raw)
}
