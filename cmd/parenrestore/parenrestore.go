package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func mainRun(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Jobs < 0 {
		return fmt.Errorf("%w: -j must not be negative", cli.ErrUsage)
	}
	cfg.log = newLog(os.Stderr, cfg.Verbose)
	name := "run"
	if len(args) != 0 {
		name, args = args[0], args[1:]
	}
	sub := cfg.Main.FindSub(cc, name)
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, name)
	}
	err = sub.Run(cc, args)
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		return cli.ExitCodeErr(sub.Exit(cc, err))
	}
	return err
}
