package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/nomad-lab/go-archive/archive"
	"github.com/nomad-lab/go-archive/browse"
	"github.com/nomad-lab/go-archive/encode"
	"github.com/nomad-lab/go-archive/ir"
	"github.com/nomad-lab/go-archive/metainfo"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	Schema string `cli:"name=schema desc='metainfo package file (json or yaml)'"`
	Root   string `cli:"name=root desc='root section name'"`
	Filter string `cli:"name=filter desc='property visibility expression over name'"`
	NoExt  bool   `cli:"name=noext desc='hide x_ code extension properties'"`

	InFormat *archive.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**archive.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := archive.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) inFormat(path string) archive.Format {
	switch {
	case cfg.InFormat != nil:
		return *cfg.InFormat
	case cfg.Y:
		return archive.YAMLFormat
	case cfg.J:
		return archive.JSONFormat
	}
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return archive.YAMLFormat
	}
	return archive.JSONFormat
}

func (cfg *MainConfig) registry() (*metainfo.Registry, error) {
	if cfg.Schema == "" {
		return nil, fmt.Errorf("%w: -schema is required", cli.ErrUsage)
	}
	data, err := os.ReadFile(cfg.Schema)
	if err != nil {
		return nil, err
	}
	var pkg *metainfo.Package
	if cfg.inFormat(cfg.Schema) == archive.YAMLFormat {
		pkg, err = metainfo.ParsePackageYAML(data)
	} else {
		pkg, err = metainfo.ParsePackage(data)
	}
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", cfg.Schema, err)
	}
	reg := metainfo.NewRegistry()
	if err := reg.RegisterPackage(pkg); err != nil {
		return nil, fmt.Errorf("schema %s: %w", cfg.Schema, err)
	}
	return reg, nil
}

func (cfg *MainConfig) loadArchive(path string) (*ir.Node, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	doc, err := archive.Parse(data, cfg.inFormat(path))
	if err != nil {
		return nil, fmt.Errorf("archive %s: %w", path, err)
	}
	return doc, nil
}

// rootAdaptor builds a browsing session from the main options plus an
// archive file argument.
func (cfg *MainConfig) rootAdaptor(path string) (browse.Adaptor, error) {
	reg, err := cfg.registry()
	if err != nil {
		return nil, err
	}
	doc, err := cfg.loadArchive(path)
	if err != nil {
		return nil, err
	}
	return cfg.rootAdaptorOver(reg, doc)
}

// rootAdaptorOver builds a browsing session over an already loaded
// document.
func (cfg *MainConfig) rootAdaptorOver(reg *metainfo.Registry, doc *ir.Node) (browse.Adaptor, error) {
	if cfg.Root == "" {
		return nil, fmt.Errorf("%w: -root is required", cli.ErrUsage)
	}
	opts, err := cfg.contextOpts()
	if err != nil {
		return nil, err
	}
	return browse.NewRoot(browse.NewContext(doc, reg, opts...), cfg.Root)
}

func (cfg *MainConfig) contextOpts() ([]browse.ContextOption, error) {
	var fs []browse.Filter
	if cfg.NoExt {
		fs = append(fs, browse.HideExtensions)
	}
	if cfg.Filter != "" {
		f, err := browse.ExprFilter(cfg.Filter)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		fs = append(fs, f)
	}
	switch len(fs) {
	case 0:
		return nil, nil
	case 1:
		return []browse.ContextOption{browse.WithFilter(fs[0])}, nil
	}
	all := func(name string) bool {
		for _, f := range fs {
			if !f(name) {
				return false
			}
		}
		return true
	}
	return []browse.ContextOption{browse.WithFilter(all)}, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// splitPath turns "system/0/atom_count" into navigation keys.
func splitPath(p string) []string {
	var res []string
	for _, part := range strings.Split(p, "/") {
		if part == "" {
			continue
		}
		res = append(res, part)
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	Depth        int  `cli:"name=depth desc='levels to expand inline'"`
	All          bool `cli:"name=all desc='reveal windowed sub-section elements'"`
	Descriptions bool `cli:"name=desc desc='include definition descriptions'"`

	View *cli.Command
}

type ListConfig struct {
	*MainConfig

	List *cli.Command
}

type GetConfig struct {
	*MainConfig

	All bool `cli:"name=all desc='reveal windowed sub-section elements'"`

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Depth int `cli:"name=depth desc='levels to expand inline'"`

	Diff *cli.Command
}

type ServeConfig struct {
	*MainConfig

	Addr string `cli:"name=addr desc='TCP listen address'"`

	Serve *cli.Command
}
