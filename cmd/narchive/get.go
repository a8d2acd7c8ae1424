package main

import (
	"encoding/json"

	"github.com/scott-cotton/cli"

	"github.com/nomad-lab/go-archive/browse"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
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
	var ropts []browse.RenderOption
	if cfg.All {
		ropts = append(ropts, browse.WithShowAll())
	}
	enc := json.NewEncoder(cc.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(a.Render(ropts...))
}
