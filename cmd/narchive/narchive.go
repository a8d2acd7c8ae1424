package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func narchiveMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.J && cfg.Y {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// pathAndFile interprets trailing arguments as [path] [file], where path
// is a /-separated key sequence and file defaults to stdin.
func pathAndFile(args []string) (path []string, file string, err error) {
	switch len(args) {
	case 0:
		return nil, "", nil
	case 1:
		// a lone argument naming an existing file is the file
		if _, statErr := os.Stat(args[0]); statErr == nil {
			return nil, args[0], nil
		}
		return splitPath(args[0]), "", nil
	case 2:
		return splitPath(args[0]), args[1], nil
	default:
		return nil, "", fmt.Errorf("%w: too many arguments", cli.ErrUsage)
	}
}
