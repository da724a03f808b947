package main

import (
	"fmt"
	"os"

	"github.com/judwhite/go-svc"
	"github.com/jxo-me/cfddns/cmd/ddns/cliutil"
	"github.com/jxo-me/cfddns/consts"
	"github.com/jxo-me/cfddns/core/logger"
	"github.com/jxo-me/cfddns/internal/util"
	"github.com/jxo-me/cfddns/sdk/cloudflare"
	"github.com/jxo-me/cfddns/sdk/service"
	"github.com/urfave/cli/v2"
)

var (
	Version   = "DEV"
	BuildTime = "unknown"
	BuildType = ""
)

func main() {
	bInfo := cliutil.GetBuildInfo(BuildType, Version)

	app := &cli.App{}
	app.Name = "cfddns"
	app.Usage = "Keep Cloudflare A/AAAA records pointed at this machine's public address"
	app.UsageText = "cfddns [global options] [command] [command options]"
	app.Version = fmt.Sprintf("%s (built %s%s)", Version, BuildTime, bInfo.GetBuildTypeMsg())
	app.Description = `cfddns looks up the public IPv4 and IPv6 addresses of this machine and
	updates the matching A and AAAA records of a Cloudflare zone when they differ.
	Records locked on Cloudflare are never modified.

	Without a command it updates the records once and exits. Use "serve" to keep
	them up to date.`
	app.Flags = flags()
	app.Action = cliutil.Action(updateOnce)
	app.Commands = commands()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:   "serve",
			Usage:  "Update the records every interval and reload on config file changes",
			Action: cliutil.Action(serve),
		},
		{
			Name:   "verify-token",
			Usage:  "Check that the API token is valid and active",
			Action: cliutil.Action(verifyToken),
		},
		{
			Name:  "config",
			Usage: "Print the effective configuration",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "format",
					Value: "yaml",
					Usage: "yaml or json",
				},
			},
			Action: cliutil.Action(printConfig),
		},
	}
}

func updateOnce(c *cli.Context) error {
	cfg, _, err := loadConfig(c)
	if err != nil {
		return err
	}
	log := logFromConfig(cfg.Log)
	logger.SetDefault(log)

	report, err := service.NewDDNS(cfg, log).RunOnce(c.Context)
	for _, line := range report.Lines() {
		fmt.Fprintln(c.App.Writer, line)
	}
	return err
}

func serve(c *cli.Context) error {
	cfg, opts, err := loadConfig(c)
	if err != nil {
		return err
	}
	if err := cfg.ValidateServe(); err != nil {
		return err
	}
	log := logFromConfig(cfg.Log)
	logger.SetDefault(log)

	return svc.Run(newProgram(cfg, opts, log))
}

func verifyToken(c *cli.Context) error {
	cfg, _, err := loadConfig(c)
	if err != nil {
		return err
	}
	endpoint := consts.DefaultAPIEndpoint
	if cfg.API != nil && cfg.API.BaseURL != "" {
		endpoint = cfg.API.BaseURL
	}
	status, err := cloudflare.VerifyToken(c.Context, cfg.APIToken, endpoint, util.CreateHTTPClient(cfg.GetTimeout()))
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "token %s is %s\n", status.ID, status.Status)
	if !status.Active() {
		return cli.Exit("", 1)
	}
	return nil
}

func printConfig(c *cli.Context) error {
	opts, err := optionsFromContext(c)
	if err != nil {
		return err
	}
	cfg, err := opts.read()
	if err != nil {
		return err
	}
	out := *cfg
	if out.APIToken != "" {
		out.APIToken = "********"
	}
	return out.Write(c.App.Writer, c.String("format"))
}
