package cloudflare

import (
	"context"
	"net/http"

	cf "github.com/cloudflare/cloudflare-go"
	"github.com/jxo-me/cfddns/core/ddns"
	"github.com/pkg/errors"
)

// TokenStatus is the verification result of an API token.
type TokenStatus struct {
	ID     string
	Status string
}

// Active reports whether the token can be used.
func (s TokenStatus) Active() bool {
	return s.Status == "active"
}

// VerifyToken asks Cloudflare whether token is valid. An empty endpoint uses
// the public API; a nil client uses the library default.
func VerifyToken(ctx context.Context, token, endpoint string, client *http.Client) (TokenStatus, error) {
	var opts []cf.Option
	if endpoint != "" {
		opts = append(opts, cf.BaseURL(endpoint))
	}
	if client != nil {
		opts = append(opts, cf.HTTPClient(client))
	}
	api, err := cf.NewWithAPIToken(token, opts...)
	if err != nil {
		return TokenStatus{}, &ddns.ConfigurationError{Reason: err.Error()}
	}
	result, err := api.VerifyAPIToken(ctx)
	if err != nil {
		return TokenStatus{}, errors.Wrap(err, "unable to verify api token")
	}
	return TokenStatus{ID: result.ID, Status: result.Status}, nil
}
