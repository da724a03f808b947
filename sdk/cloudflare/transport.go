package cloudflare

import (
	"net/http"
	"time"

	"github.com/jxo-me/cfddns/internal/util"
)

// Transport performs a prepared request. Any error it returns is reported as
// a transport failure; responses with error status codes are not errors.
type Transport interface {
	Send(req *http.Request) (*http.Response, error)
}

// TransportFunc adapts a function to Transport.
type TransportFunc func(req *http.Request) (*http.Response, error)

func (f TransportFunc) Send(req *http.Request) (*http.Response, error) {
	return f(req)
}

// HTTPTransport sends requests with an *http.Client.
type HTTPTransport struct {
	client *http.Client
}

func NewHTTPTransport(client *http.Client) *HTTPTransport {
	if client == nil {
		client = util.CreateHTTPClient(30 * time.Second)
	}
	return &HTTPTransport{client: client}
}

func (t *HTTPTransport) Send(req *http.Request) (*http.Response, error) {
	return t.client.Do(req)
}
