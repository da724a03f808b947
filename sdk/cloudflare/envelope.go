package cloudflare

import (
	"encoding/json"
	"fmt"

	"github.com/jxo-me/cfddns/core/ddns"
	"github.com/jxo-me/cfddns/core/logger"
	"github.com/pkg/errors"
)

// Envelope is the wrapper Cloudflare puts around every result.
type Envelope[T any] struct {
	Success bool            `json:"success"`
	Result  *T              `json:"result"`
	Errors  []ddns.APIError `json:"errors"`
}

func decode[T any](op string, status int, data []byte) (*Envelope[T], error) {
	var env Envelope[T]
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, &ddns.ParseError{
			Op:  op,
			Err: errors.Wrapf(err, "failed to parse %s JSON response (HTTP %d)", op, status),
		}
	}
	return &env, nil
}

// check reports the provider errors carried by env. All of them are logged
// when there is more than one; the returned error carries the first.
func check[T any](op string, env *Envelope[T], log logger.ILogger) error {
	if len(env.Errors) == 0 {
		return nil
	}
	if len(env.Errors) > 1 {
		log.Errorf("Errors returned from %s API:", op)
		for i := range env.Errors {
			log.Errorf("- %s", env.Errors[i].Detail())
		}
	}
	first := env.Errors[0]
	return &ddns.ApplicationError{
		Op:     op,
		First:  &first,
		Others: len(env.Errors) - 1,
	}
}

// single unwraps a list envelope that must hold exactly one item.
func single[T any](op, kind string, env *Envelope[[]T], log logger.ILogger) (T, error) {
	var zero T
	if err := check(op, env, log); err != nil {
		return zero, err
	}
	if env.Result == nil {
		return zero, &ddns.ApplicationError{
			Op:     op,
			Reason: fmt.Sprintf("%s results is unexpectedly empty; should be 1 result", kind),
		}
	}
	if n := len(*env.Result); n != 1 {
		return zero, &ddns.ApplicationError{
			Op:     op,
			Reason: fmt.Sprintf("unexpected number of %s results; should be 1: %d", kind, n),
		}
	}
	return (*env.Result)[0], nil
}
