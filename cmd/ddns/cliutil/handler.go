package cliutil

import (
	"github.com/jxo-me/cfddns/core/ddns"
	"github.com/urfave/cli/v2"
)

const (
	errorExitCode      = 1
	usageErrorExitCode = 2
)

func Action(actionFunc cli.ActionFunc) cli.ActionFunc {
	return WithErrorHandler(actionFunc)
}

// WithErrorHandler makes every error returned by actionFunc terminate the
// process with a non-zero exit code.
func WithErrorHandler(actionFunc cli.ActionFunc) cli.ActionFunc {
	return func(c *cli.Context) error {
		err := actionFunc(c)
		if err == nil {
			return nil
		}
		if _, ok := err.(cli.ExitCoder); ok {
			return err
		}
		if ddns.IsConfiguration(err) {
			return cli.Exit(err.Error(), usageErrorExitCode)
		}
		return cli.Exit(err.Error(), errorExitCode)
	}
}
