package service

import (
	"log/slog"

	"github.com/nomad-lab/go-archive/metainfo"
)

// Config holds static server settings.
type Config struct {
	// Addr is the TCP address to listen on.
	Addr string
}

func DefaultConfig() *Config {
	return &Config{
		Addr: "127.0.0.1:7886",
	}
}

// Spec holds the runtime specification for the archive server.
type Spec struct {
	Config   *Config
	Registry *metainfo.Registry
	Log      *slog.Logger
}
