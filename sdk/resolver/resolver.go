package resolver

import (
	"time"

	"github.com/jxo-me/cfddns/config"
	"github.com/jxo-me/cfddns/core/ddns"
	"github.com/jxo-me/cfddns/core/logger"
)

// New builds the resolver selected by cfg.Type.
func New(cfg *config.ResolverConfig, timeout time.Duration, log logger.ILogger) (ddns.IResolver, error) {
	if cfg == nil {
		cfg = &config.ResolverConfig{}
	}
	switch cfg.Type {
	case WebCode, "":
		opts := []WebOption{WithTimeout(timeout), WithLogger(log)}
		if cfg.IPv4URL != "" {
			opts = append(opts, WithV4URL(cfg.IPv4URL))
		}
		if cfg.IPv6URL != "" {
			opts = append(opts, WithV6URL(cfg.IPv6URL))
		}
		return NewWebResolver(opts...), nil
	case StaticCode:
		return NewStaticResolver(cfg.IPv4, cfg.IPv6)
	case InterfaceCode:
		if cfg.Interface == "" {
			return nil, &ddns.ConfigurationError{Reason: "resolver type netInterface requires an interface name"}
		}
		return NewInterfaceResolver(cfg.Interface), nil
	default:
		return nil, &ddns.ConfigurationError{Reason: "unknown resolver type " + cfg.Type}
	}
}
