package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/jxo-me/cfddns/config"
	"github.com/jxo-me/cfddns/consts"
	"github.com/jxo-me/cfddns/core/logger"
	xlogger "github.com/jxo-me/cfddns/sdk/logger"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"
)

// options is what the command line contributes on top of the config file.
type options struct {
	configPath string
	flags      *config.Config
}

func optionsFromContext(c *cli.Context) (*options, error) {
	if files := c.StringSlice("env-file"); len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return nil, err
		}
	}
	return &options{configPath: configPath(c.String("config")), flags: configFromFlags(c)}, nil
}

// configPath picks the --config value, then DDNS_CONFIG_FILE_PATH, then
// ~/.cfddns.yaml when it exists. An empty result means env and flags only.
func configPath(flag string) string {
	if flag != "" {
		return flag
	}
	path := config.GetConfigFilePath()
	if os.Getenv(consts.ConfigFilePathENV) == "" {
		if _, err := os.Stat(path); err != nil {
			return ""
		}
	}
	return path
}

// read loads the config file, or the environment alone when there is
// none, and applies the command line flags over it.
func (o *options) read() (*config.Config, error) {
	cfg := &config.Config{}
	if o.configPath != "" {
		if err := cfg.ReadFile(o.configPath); err != nil {
			return nil, err
		}
	} else if err := cfg.Load(); err != nil {
		return nil, err
	}
	return cfg.Merge(o.flags), nil
}

// loadConfig reads the configuration and asks for the API token when it
// is missing and stdin is a terminal.
func loadConfig(c *cli.Context) (*config.Config, *options, error) {
	opts, err := optionsFromContext(c)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := opts.read()
	if err != nil {
		return nil, nil, err
	}
	if cfg.APIToken == "" {
		token, err := promptToken(os.Stdin, c.App.ErrWriter)
		if err != nil {
			return nil, nil, err
		}
		opts.flags.APIToken = token
		cfg.APIToken = token
	}
	return cfg, opts, nil
}

func logFromConfig(cfg *config.LogConfig) logger.ILogger {
	if cfg == nil {
		cfg = &config.LogConfig{}
	}
	opts := []xlogger.LoggerOption{
		xlogger.FormatLoggerOption(logger.LogFormat(cfg.Format)),
		xlogger.LevelLoggerOption(logger.LogLevel(cfg.Level)),
	}

	var out io.Writer = os.Stderr
	switch cfg.Output {
	case "none", "null":
		return xlogger.Nop()
	case "stdout":
		out = os.Stdout
	case "stderr", "":
		out = os.Stderr
	default:
		if cfg.Rotation != nil {
			out = &lumberjack.Logger{
				Filename:   cfg.Output,
				MaxSize:    cfg.Rotation.MaxSize,
				MaxAge:     cfg.Rotation.MaxAge,
				MaxBackups: cfg.Rotation.MaxBackups,
				LocalTime:  cfg.Rotation.LocalTime,
				Compress:   cfg.Rotation.Compress,
			}
		} else {
			_ = os.MkdirAll(filepath.Dir(cfg.Output), 0755)
			f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
			if err != nil {
				xlogger.NewLogger().Warn(err)
			} else {
				out = f
			}
		}
	}
	opts = append(opts, xlogger.OutputLoggerOption(out))

	return xlogger.NewLogger(opts...)
}

// watcherLogger is used for config file diagnostics in serve mode.
func watcherLogger(cfg *config.LogConfig) *zerolog.Logger {
	level := zerolog.InfoLevel
	if cfg != nil && cfg.Level != "" {
		if lvl, err := zerolog.ParseLevel(cfg.Level); err == nil {
			level = lvl
		}
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Str("component", "config").Logger()
	return &log
}
