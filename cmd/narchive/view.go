package main

import (
	"github.com/scott-cotton/cli"

	"github.com/nomad-lab/go-archive/browse"
	"github.com/nomad-lab/go-archive/encode"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
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
	opts := append(cfg.encOpts(cc.Out),
		encode.Depth(cfg.Depth),
		encode.ShowAll(cfg.All),
		encode.Descriptions(cfg.Descriptions))
	return encode.Encode(a, cc.Out, opts...)
}
