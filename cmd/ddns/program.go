package main

import (
	"sync"

	"github.com/judwhite/go-svc"
	"github.com/jxo-me/cfddns/cmd/ddns/cliutil"
	"github.com/jxo-me/cfddns/config"
	"github.com/jxo-me/cfddns/core/logger"
	"github.com/jxo-me/cfddns/pkg/overwatch"
	"github.com/jxo-me/cfddns/pkg/watcher"
	"github.com/jxo-me/cfddns/sdk/service"
	"github.com/rs/zerolog"
)

// program runs the updater as a daemon. With a config file it replaces the
// running service whenever the file changes in a way that matters.
type program struct {
	cfg         *config.Config
	opts        *options
	log         logger.ILogger
	zlog        *zerolog.Logger
	manager     overwatch.Manager
	fileManager *config.FileManager
	wg          sync.WaitGroup
}

var _ svc.Service = (*program)(nil)

func newProgram(cfg *config.Config, opts *options, log logger.ILogger) *program {
	return &program{
		cfg:  cfg,
		opts: opts,
		log:  log,
		zlog: watcherLogger(cfg.Log),
	}
}

func (p *program) Init(env svc.Environment) error {
	cliutil.GetBuildInfo(BuildType, Version).Log(p.log.Infof)
	if env.IsWindowsService() {
		p.log.Info("running as a Windows service")
	}
	p.manager = overwatch.NewAppManager(func(name string, err error) {
		if err != nil {
			p.log.Errorf("service %s encountered an error: %v", name, err)
			return
		}
		p.log.Debugf("service %s finished", name)
	})
	return nil
}

func (p *program) Start() error {
	if p.opts.configPath == "" {
		p.manager.Add(service.NewDDNS(p.cfg, p.log))
		return nil
	}

	f, err := watcher.NewFile()
	if err != nil {
		return err
	}
	p.fileManager, err = config.NewFileManager(f, p.opts.configPath, p.zlog)
	if err != nil {
		return err
	}
	// the command line keeps precedence over the file on every reload
	p.fileManager.ReadConfig = func(string, *zerolog.Logger) (config.Config, error) {
		cfg, err := p.opts.read()
		if err != nil {
			return config.Config{}, err
		}
		return *cfg, nil
	}
	p.log.Infof("monitoring config file at: %s", p.opts.configPath)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		if err := p.fileManager.Start(p); err != nil {
			p.log.Errorf("cannot read config file %s: %v", p.opts.configPath, err)
		}
	}()
	return nil
}

// ConfigDidUpdate swaps in a service built from the new config.
func (p *program) ConfigDidUpdate(cfg config.Config) {
	if err := cfg.ValidateServe(); err != nil {
		p.log.Errorf("ignoring config: %v", err)
		return
	}
	p.manager.Add(service.NewDDNS(&cfg, p.log))
}

func (p *program) Stop() error {
	if p.fileManager != nil {
		p.fileManager.Shutdown()
		p.wg.Wait()
	}
	p.manager.Shutdown()
	p.log.Info("cfddns stopped")
	return nil
}
