package main

import (
	"bytes"
	"fmt"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/nomad-lab/go-archive/encode"
	"github.com/nomad-lab/go-archive/ir"
	"github.com/nomad-lab/go-archive/metainfo"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes exactly two archive files", cli.ErrUsage)
	}
	reg, err := cfg.registry()
	if err != nil {
		return err
	}
	fromDoc, err := cfg.loadArchive(args[0])
	if err != nil {
		return err
	}
	toDoc, err := cfg.loadArchive(args[1])
	if err != nil {
		return err
	}
	// structurally equal documents render identically; skip the text diff
	if ir.Compare(fromDoc, toDoc) == 0 {
		return nil
	}
	from, err := renderText(cfg, reg, fromDoc)
	if err != nil {
		return err
	}
	to, err := renderText(cfg, reg, toDoc)
	if err != nil {
		return err
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from, to, true)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	if cfg.Color {
		fmt.Fprint(cc.Out, diffCfg.DiffPrettyText(diffs))
		return nil
	}
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			fmt.Fprintf(cc.Out, "+%s", d.Text)
		case diffpatch.DiffDelete:
			fmt.Fprintf(cc.Out, "-%s", d.Text)
		case diffpatch.DiffEqual:
			fmt.Fprint(cc.Out, d.Text)
		}
	}
	return nil
}

// renderText produces the uncolored indented view of one archive, the
// common text both sides of the diff are drawn from.
func renderText(cfg *DiffConfig, reg *metainfo.Registry, doc *ir.Node) (string, error) {
	root, err := cfg.rootAdaptorOver(reg, doc)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := encode.Encode(root, &buf, encode.Depth(cfg.Depth), encode.ShowAll(true)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
