package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/jxo-me/cfddns/config"
	"github.com/jxo-me/cfddns/consts"
	"github.com/jxo-me/cfddns/core/ddns"
	"github.com/jxo-me/cfddns/core/hook"
	"github.com/jxo-me/cfddns/core/logger"
	"github.com/jxo-me/cfddns/core/service"
	"github.com/jxo-me/cfddns/internal/util"
	"github.com/jxo-me/cfddns/sdk/cloudflare"
	xhook "github.com/jxo-me/cfddns/sdk/hook"
	xlogger "github.com/jxo-me/cfddns/sdk/logger"
	"github.com/jxo-me/cfddns/sdk/resolver"
	"github.com/jxo-me/cfddns/sdk/updater"
)

// Factory builds the provider and resolver for one run.
type Factory func(conf *config.Config, log logger.ILogger) (ddns.IProvider, ddns.IResolver, error)

type Option func(s *DDNSService)

func WithFactory(f Factory) Option {
	return func(s *DDNSService) {
		s.factory = f
	}
}

func WithHook(h hook.IHook) Option {
	return func(s *DDNSService) {
		s.hook = h
	}
}

type DDNSService struct {
	Conf    *config.Config
	Delay   time.Duration
	factory Factory
	hook    hook.IHook
	stop    chan chan struct{}
	done    chan struct{}
	status  *int32 // status is the current timer status.
	logger  logger.ILogger
}

var _ service.IDDNSService = (*DDNSService)(nil)

func NewDDNS(conf *config.Config, log logger.ILogger, opts ...Option) *DDNSService {
	log = xlogger.OrDefault(log)
	st := consts.StatusReady
	s := &DDNSService{
		Conf:    conf,
		Delay:   conf.GetInterval(),
		factory: DefaultFactory,
		stop:    make(chan chan struct{}),
		done:    make(chan struct{}),
		status:  &st,
		logger:  log.WithFields(map[string]any{"service": consts.DefaultDDNSName, "domain": conf.Domain}),
	}
	if conf.Webhook != nil && conf.Webhook.URL != "" {
		s.hook = xhook.NewHook(conf.Webhook, xhook.WithLogger(s.logger))
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DefaultFactory builds a Cloudflare client and the configured resolver.
func DefaultFactory(conf *config.Config, log logger.ILogger) (ddns.IProvider, ddns.IResolver, error) {
	timeout := conf.GetTimeout()
	opts := []cloudflare.Option{
		cloudflare.WithTransport(cloudflare.NewHTTPTransport(util.CreateHTTPClient(timeout))),
		cloudflare.WithLogger(log),
	}
	if conf.API != nil && conf.API.BaseURL != "" {
		opts = append(opts, cloudflare.WithEndpoint(conf.API.BaseURL))
	}
	r, err := resolver.New(conf.Resolver, timeout, log)
	if err != nil {
		return nil, nil, err
	}
	return cloudflare.NewClient(conf.APIToken, opts...), r, nil
}

func (s *DDNSService) String() string {
	return consts.DefaultDDNSName + ":" + s.Conf.Domain
}

func (s *DDNSService) Hash() string {
	return s.Conf.Hash()
}

// RunOnce reconciles the records once with freshly built clients.
// Webhook failures are logged and do not fail the run.
func (s *DDNSService) RunOnce(ctx context.Context) (updater.Report, error) {
	if err := s.Conf.Validate(); err != nil {
		return updater.Report{Domain: s.Conf.Domain}, err
	}
	provider, r, err := s.factory(s.Conf, s.logger)
	if err != nil {
		return updater.Report{Domain: s.Conf.Domain}, err
	}

	report, err := updater.New(provider, r, s.logger).Run(ctx, updater.Target{
		Zone:     s.Conf.Zone,
		Domain:   s.Conf.Domain,
		Families: s.Conf.Families(),
	})

	if s.hook != nil {
		if hookErr := s.hook.ExecHook(ctx, eventFromReport(report)); hookErr != nil {
			s.logger.Warnf("%s failed: %v", s.hook.String(), hookErr)
		}
	}
	return report, err
}

func eventFromReport(report updater.Report) hook.Event {
	event := hook.Event{
		Domain:     report.Domain,
		Ipv4Result: consts.UpdatedNothing,
		Ipv6Result: consts.UpdatedNothing,
	}
	if res, ok := report.Get(ddns.A); ok {
		event.Ipv4Result = res.Status
		if res.Address.IsValid() {
			event.Ipv4Addr = res.Address.String()
		}
	}
	if res, ok := report.Get(ddns.AAAA); ok {
		event.Ipv6Result = res.Status
		if res.Address.IsValid() {
			event.Ipv6Addr = res.Address.String()
		}
	}
	return event
}

func (s *DDNSService) Run() {
	report, err := s.RunOnce(context.Background())
	for _, line := range report.Lines() {
		s.logger.Info(line)
	}
	if err != nil {
		s.logger.Errorf("update failed: %v", err)
	}
}

func (s *DDNSService) Worker() error {
	var (
		timerIntervalTicker = time.NewTicker(s.Delay)
	)
	defer timerIntervalTicker.Stop()
	defer close(s.done)

	// Stop was called before the worker got to run
	if !atomic.CompareAndSwapInt32(s.status, consts.StatusReady, consts.StatusRunning) {
		return nil
	}
	s.Run()
	for {
		select {
		case <-timerIntervalTicker.C:
			// Check the timer status.
			switch atomic.LoadInt32(s.status) {
			case consts.StatusRunning:
				s.logger.Debugf("%s DDNS service is running!", s.String())
				// Timer proceeding.
				s.Run()
			case consts.StatusStopped:
				s.logger.Debugf("%s DDNS service has been stopped!", s.String())
				// Do nothing.
			case consts.StatusClosed:
				// Timer exits.
				s.logger.Debugf("%s DDNS service is closed!", s.String())
				return nil
			}
		// call to stop polling
		case confirm := <-s.stop:
			close(confirm)
			s.logger.Debugf("%s DDNS service has been manually stopped!", s.String())
			return nil
		}
	}
}

func (s *DDNSService) Start() error {
	return s.Worker()
}

func (s *DDNSService) Stop() error {
	if atomic.CompareAndSwapInt32(s.status, consts.StatusReady, consts.StatusClosed) {
		return nil
	}
	atomic.StoreInt32(s.status, consts.StatusStopped)
	confirm := make(chan struct{})
	select {
	case s.stop <- confirm:
		<-confirm
	case <-s.done:
	}
	return nil
}
