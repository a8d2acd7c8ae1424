package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/nomad-lab/go-archive/browse"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		return err
	}
	path, file, err := pathAndFile(args)
	if err != nil {
		return err
	}
	root, err := cfg.rootAdaptor(file)
	if err != nil {
		return err
	}
	a, err := browse.Navigate(root, path)
	if err != nil {
		return err
	}
	for _, key := range a.ListChildKeys() {
		fmt.Fprintln(cc.Out, key)
	}
	return nil
}
