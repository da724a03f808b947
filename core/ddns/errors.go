package ddns

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrExclusiveFamilies is returned when both IPv4-only and IPv6-only are requested.
var ErrExclusiveFamilies = &ConfigurationError{Reason: "--only-v4 and --only-v6 are exclusive arguments; pick one or neither"}

// APIError is a single error reported by the provider.
type APIError struct {
	Code       int        `json:"code"`
	Message    string     `json:"message"`
	ErrorChain []APIError `json:"error_chain,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Detail renders the error together with its nested chain.
func (e *APIError) Detail() string {
	if len(e.ErrorChain) == 0 {
		return e.Error()
	}
	chain := make([]string, 0, len(e.ErrorChain))
	for i := range e.ErrorChain {
		chain = append(chain, e.ErrorChain[i].Detail())
	}
	return fmt.Sprintf("%s (caused by: %s)", e.Error(), strings.Join(chain, "; "))
}

// TransportError means the request could not be completed at all.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport failure: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ApplicationError means the remote service answered but reported a failure,
// or answered with an unusable result.
type ApplicationError struct {
	Op string
	// First is the first error reported by the provider, if any.
	First *APIError
	// Others counts the reported errors beyond First.
	Others int
	// Reason describes failures that carry no provider error,
	// such as an unexpected result count.
	Reason string
}

func (e *ApplicationError) Error() string {
	switch {
	case e.First != nil && e.Others > 0:
		return fmt.Sprintf("errors returned from %s API; first one (see log for %d others): %s", e.Op, e.Others, e.First)
	case e.First != nil:
		return fmt.Sprintf("error returned from %s API: %s", e.Op, e.First)
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Reason)
	}
}

func (e *ApplicationError) Unwrap() error {
	if e.First == nil {
		return nil
	}
	return e.First
}

// ParseError means a response body did not have the expected shape.
type ParseError struct {
	Op  string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse response: %v", e.Op, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ConfigurationError means the run was rejected before any remote call.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid configuration: " + e.Reason
}

func IsTransport(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}

func IsApplication(err error) bool {
	var target *ApplicationError
	return errors.As(err, &target)
}

func IsParse(err error) bool {
	var target *ParseError
	return errors.As(err, &target)
}

func IsConfiguration(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}
