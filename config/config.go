package config

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jxo-me/cfddns/consts"
	"github.com/jxo-me/cfddns/core/ddns"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

type APIConfig struct {
	// 默认 https://api.cloudflare.com/client/v4
	BaseURL string        `yaml:"baseURL,omitempty" json:"baseURL,omitempty"`
	Timeout time.Duration `yaml:"timeout,omitempty" json:"timeout,omitempty"`
}

type ResolverConfig struct {
	// url/static/netInterface
	Type    string `yaml:",omitempty" json:"type,omitempty"`
	IPv4URL string `yaml:"ipv4URL,omitempty" json:"ipv4URL,omitempty"`
	IPv6URL string `yaml:"ipv6URL,omitempty" json:"ipv6URL,omitempty"`
	// static 地址
	IPv4      string `yaml:"ipv4,omitempty" json:"ipv4,omitempty"`
	IPv6      string `yaml:"ipv6,omitempty" json:"ipv6,omitempty"`
	Interface string `yaml:",omitempty" json:"interface,omitempty"`
}

// WebhookConfig Webhook
type WebhookConfig struct {
	// 支持的变量 #{ipv4Addr}=新的IPv4地址,
	// #{ipv4Result}=IPv4地址更新结果: UnChanged Locked Failure Success,
	// #{ipv6Addr}=新的IPv6地址,
	// #{ipv6Result}=IPv6地址更新结果,
	// #{domain}=域名
	URL string `yaml:"url,omitempty" json:"url,omitempty"`
	// 如 RequestBody 为空则为 GET 请求，否则为 POST 请求。支持的变量同上
	RequestBody string `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	// 一行一个Header, 如：Authorization: Bearer API_KEY
	Headers string `yaml:"headers,omitempty" json:"headers,omitempty"`
}

type LogRotationConfig struct {
	// MaxSize is the maximum size in megabytes of the log file before it gets rotated.
	MaxSize    int  `yaml:"maxSize,omitempty" json:"maxSize,omitempty"`
	MaxAge     int  `yaml:"maxAge,omitempty" json:"maxAge,omitempty"`
	MaxBackups int  `yaml:"maxBackups,omitempty" json:"maxBackups,omitempty"`
	LocalTime  bool `yaml:"localTime,omitempty" json:"localTime,omitempty"`
	Compress   bool `yaml:"compress,omitempty" json:"compress,omitempty"`
}

type LogConfig struct {
	// stderr/stdout/none or a file path
	Output   string             `yaml:",omitempty" json:"output,omitempty"`
	Level    string             `yaml:",omitempty" json:"level,omitempty"`
	Format   string             `yaml:",omitempty" json:"format,omitempty"`
	Rotation *LogRotationConfig `yaml:",omitempty" json:"rotation,omitempty"`
}

type Config struct {
	Zone     string `yaml:",omitempty" json:"zone,omitempty"`
	Domain   string `yaml:",omitempty" json:"domain,omitempty"`
	APIToken string `yaml:"apiToken,omitempty" json:"apiToken,omitempty"`
	OnlyV4   bool   `yaml:"onlyV4,omitempty" json:"onlyV4,omitempty"`
	OnlyV6   bool   `yaml:"onlyV6,omitempty" json:"onlyV6,omitempty"`
	// serve 模式下的更新间隔
	Interval time.Duration   `yaml:",omitempty" json:"interval,omitempty"`
	API      *APIConfig      `yaml:",omitempty" json:"api,omitempty"`
	Resolver *ResolverConfig `yaml:",omitempty" json:"resolver,omitempty"`
	Webhook  *WebhookConfig  `yaml:",omitempty" json:"webhook,omitempty"`
	Log      *LogConfig      `yaml:",omitempty" json:"log,omitempty"`
}

// envBindings maps config keys to the environment variables overriding them.
var envBindings = map[string][]string{
	"zone":     {consts.EnvPrefix + "_ZONE"},
	"domain":   {consts.EnvPrefix + "_DOMAIN"},
	"apiToken": {consts.EnvPrefix + "_API_TOKEN", "CLOUDFLARE_API_TOKEN"},
	"onlyV4":   {consts.EnvPrefix + "_ONLY_V4"},
	"onlyV6":   {consts.EnvPrefix + "_ONLY_V6"},
	"interval": {consts.EnvPrefix + "_INTERVAL"},
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(consts.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, envs := range envBindings {
		_ = v.BindEnv(append([]string{key}, envs...)...)
	}
	return v
}

// Load reads the configuration from the environment only.
func (c *Config) Load() error {
	return newViper().Unmarshal(c)
}

// Read parses a yaml document from r.
func (c *Config) Read(r io.Reader) error {
	v := newViper()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(r); err != nil {
		return err
	}
	return v.Unmarshal(c)
}

// ReadFile parses file in any format known to viper, picked by extension.
func (c *Config) ReadFile(file string) error {
	v := newViper()
	v.SetConfigFile(file)
	if filepath.Ext(file) == "" {
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "read config file %s", file)
	}
	return v.Unmarshal(c)
}

func (c *Config) Write(w io.Writer, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(c)
	case "yaml":
		fallthrough
	default:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		enc.SetIndent(2)
		return enc.Encode(c)
	}
}

// Merge overlays the non-zero settings of other onto a copy of c.
func (c *Config) Merge(other *Config) *Config {
	if c == nil {
		return other
	}
	cfg := *c
	if other == nil {
		return &cfg
	}
	if other.Zone != "" {
		cfg.Zone = other.Zone
	}
	if other.Domain != "" {
		cfg.Domain = other.Domain
	}
	if other.APIToken != "" {
		cfg.APIToken = other.APIToken
	}
	if other.OnlyV4 {
		cfg.OnlyV4 = true
	}
	if other.OnlyV6 {
		cfg.OnlyV6 = true
	}
	if other.Interval > 0 {
		cfg.Interval = other.Interval
	}
	if other.API != nil {
		cfg.API = other.API
	}
	if other.Resolver != nil {
		cfg.Resolver = other.Resolver
	}
	if other.Webhook != nil {
		cfg.Webhook = other.Webhook
	}
	if other.Log != nil {
		cfg.Log = other.Log
	}
	return &cfg
}

// Validate rejects configurations the updater cannot run with.
func (c *Config) Validate() error {
	if c.OnlyV4 && c.OnlyV6 {
		return ddns.ErrExclusiveFamilies
	}
	var missing []string
	if c.Zone == "" {
		missing = append(missing, "zone")
	}
	if c.Domain == "" {
		missing = append(missing, "domain")
	}
	if c.APIToken == "" {
		missing = append(missing, "api token")
	}
	if len(missing) > 0 {
		return &ddns.ConfigurationError{Reason: "missing " + strings.Join(missing, ", ")}
	}
	return nil
}

// ValidateServe also checks the settings only the serve loop uses.
func (c *Config) ValidateServe() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Interval != 0 && c.Interval < consts.MinimumIntervalSecs*time.Second {
		return &ddns.ConfigurationError{Reason: "interval must be at least " + (consts.MinimumIntervalSecs * time.Second).String()}
	}
	return nil
}

func (c *Config) Families() []ddns.Family {
	return ddns.Families(c.OnlyV4, c.OnlyV6)
}

// GetInterval returns the serve interval, defaulting to the minimum.
func (c *Config) GetInterval() time.Duration {
	if c.Interval <= 0 {
		return consts.MinimumIntervalSecs * time.Second
	}
	return c.Interval
}

// GetTimeout returns the per request timeout for the provider API.
func (c *Config) GetTimeout() time.Duration {
	if c.API == nil || c.API.Timeout <= 0 {
		return consts.DefaultHTTPTimeout * time.Second
	}
	return c.API.Timeout
}

// Hash identifies the settings that affect a reconciliation run.
func (c *Config) Hash() string {
	byt, _ := json.Marshal(struct {
		*Config
		Log *LogConfig `json:"log,omitempty"`
	}{Config: c})
	sum := sha256.Sum256(byt)
	return hex.EncodeToString(sum[:])
}

// GetConfigFilePath 获得配置文件路径
func GetConfigFilePath() string {
	configFilePath := os.Getenv(consts.ConfigFilePathENV)
	if configFilePath != "" {
		return configFilePath
	}
	return GetConfigFilePathDefault()
}

// GetConfigFilePathDefault 获得默认的配置文件路径
func GetConfigFilePathDefault() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return ".cfddns.yaml"
	}
	return dir + string(os.PathSeparator) + ".cfddns.yaml"
}
