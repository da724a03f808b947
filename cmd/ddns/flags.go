package main

import (
	"github.com/jxo-me/cfddns/config"
	"github.com/urfave/cli/v2"
)

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"C"},
			Usage:   "configuration file (yaml, json or toml), defaults to $DDNS_CONFIG_FILE_PATH or ~/.cfddns.yaml",
		},
		&cli.StringSliceFlag{
			Name:  "env-file",
			Usage: "load environment variables from `FILE` before reading the configuration",
		},
		&cli.StringFlag{
			Name:    "zone",
			Aliases: []string{"z"},
			Usage:   "the zone which contains the domain, e.g. example.com",
		},
		&cli.StringFlag{
			Name:    "domain",
			Aliases: []string{"d"},
			Usage:   "the domain whose A/AAAA records are updated, e.g. home.example.com",
		},
		&cli.StringFlag{
			Name:    "api-token",
			Aliases: []string{"a"},
			Usage:   "Cloudflare API token with DNS edit permission",
		},
		&cli.BoolFlag{
			Name:    "only-v4",
			Aliases: []string{"4"},
			Usage:   "only update the A record",
		},
		&cli.BoolFlag{
			Name:    "only-v6",
			Aliases: []string{"6"},
			Usage:   "only update the AAAA record",
		},
		&cli.DurationFlag{
			Name:  "interval",
			Usage: "time between updates in serve mode",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "trace, debug, info, warn, error or fatal",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "text or json",
		},
		&cli.StringFlag{
			Name:  "log-output",
			Usage: "stderr, stdout, none or a file path",
		},
	}
}

// configFromFlags collects the flags that were set explicitly.
func configFromFlags(c *cli.Context) *config.Config {
	cfg := &config.Config{
		Zone:     c.String("zone"),
		Domain:   c.String("domain"),
		APIToken: c.String("api-token"),
		OnlyV4:   c.Bool("only-v4"),
		OnlyV6:   c.Bool("only-v6"),
		Interval: c.Duration("interval"),
	}
	if c.IsSet("log-level") || c.IsSet("log-format") || c.IsSet("log-output") {
		cfg.Log = &config.LogConfig{
			Level:  c.String("log-level"),
			Format: c.String("log-format"),
			Output: c.String("log-output"),
		}
	}
	return cfg
}
