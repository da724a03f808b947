package hook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jxo-me/cfddns/config"
	"github.com/jxo-me/cfddns/consts"
	"github.com/jxo-me/cfddns/core/hook"
	"github.com/jxo-me/cfddns/core/logger"
	"github.com/jxo-me/cfddns/internal/util"
	xlogger "github.com/jxo-me/cfddns/sdk/logger"
	"github.com/pkg/errors"
)

const (
	Code = "webhook"
)

type Option func(w *Webhook)

func WithHTTPClient(client *http.Client) Option {
	return func(w *Webhook) {
		w.client = client
	}
}

func WithLogger(log logger.ILogger) Option {
	return func(w *Webhook) {
		w.logger = log
	}
}

// Webhook Webhook
type Webhook struct {
	WebhookURL         string
	WebhookRequestBody string
	WebhookHeaders     string
	client             *http.Client
	logger             logger.ILogger
}

var _ hook.IHook = (*Webhook)(nil)

// hasJSONPrefix returns true if the string starts with a JSON open brace.
func hasJSONPrefix(s string) bool {
	return strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[")
}

func NewHook(cfg *config.WebhookConfig, opts ...Option) *Webhook {
	w := &Webhook{
		WebhookURL:         cfg.URL,
		WebhookRequestBody: cfg.RequestBody,
		WebhookHeaders:     cfg.Headers,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.client == nil {
		w.client = util.CreateHTTPClient(consts.DefaultHTTPTimeout * time.Second)
	}
	w.logger = xlogger.OrDefault(w.logger)
	return w
}

func (w *Webhook) String() string {
	return Code
}

// ExecHook 有更新成功或失败的记录时调用 webhook
func (w *Webhook) ExecHook(ctx context.Context, event hook.Event) error {
	if w.WebhookURL == "" || !event.Changed() {
		return nil
	}

	// 成功和失败都要触发webhook
	method := http.MethodGet
	postPara := ""
	contentType := "application/x-www-form-urlencoded"
	if w.WebhookRequestBody != "" {
		method = http.MethodPost
		postPara = w.replacePara(event, w.WebhookRequestBody)
		if json.Valid([]byte(postPara)) {
			contentType = consts.MIMEApplicationJSON
			// 如果 RequestBody 的 JSON 无效但前缀为 JSON 括号则为 JSON
		} else if hasJSONPrefix(postPara) {
			w.logger.Warn("webhook request body looks like JSON but is not valid JSON")
		}
	}
	requestURL := w.replacePara(event, w.WebhookURL)
	u, err := url.Parse(requestURL)
	if err != nil {
		return errors.Wrap(err, "invalid webhook URL")
	}
	u.RawQuery = u.Query().Encode()
	u.ForceQuery = false
	u.Fragment = ""
	req, err := http.NewRequestWithContext(ctx, method, u.String(), strings.NewReader(postPara))
	if err != nil {
		return errors.Wrap(err, "create webhook request")
	}

	for key, value := range w.CheckParseHeaders(w.WebhookHeaders) {
		req.Header.Add(key, value)
	}
	req.Header.Set(consts.HeaderContentType, contentType)

	resp, err := w.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "call webhook")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read webhook response")
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("webhook returned %s: %q", resp.Status, string(body))
	}
	w.logger.Debugf("webhook called, response: %q", string(body))
	return nil
}

// replacePara 替换参数
func (w *Webhook) replacePara(event hook.Event, orgPara string) string {
	orgPara = strings.ReplaceAll(orgPara, "#{ipv4Addr}", event.Ipv4Addr)
	orgPara = strings.ReplaceAll(orgPara, "#{ipv4Result}", string(event.Ipv4Result))

	orgPara = strings.ReplaceAll(orgPara, "#{ipv6Addr}", event.Ipv6Addr)
	orgPara = strings.ReplaceAll(orgPara, "#{ipv6Result}", string(event.Ipv6Result))

	orgPara = strings.ReplaceAll(orgPara, "#{domain}", event.Domain)
	return orgPara
}

// CheckParseHeaders 一行一个 Header
func (w *Webhook) CheckParseHeaders(headerStr string) (headers map[string]string) {
	headers = make(map[string]string)
	for _, line := range strings.Split(headerStr, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok || strings.TrimSpace(key) == "" {
			w.logger.Warnf("invalid webhook header %q", line)
			continue
		}
		headers[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return headers
}
