package main

import (
	"fmt"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"

	"github.com/nomad-lab/go-archive/service"
)

func serve(cfg *ServeConfig, cc *cli.Context, args []string) error {
	_, err := cfg.Serve.Parse(cc, args)
	if err != nil {
		return err
	}

	reg, err := cfg.registry()
	if err != nil {
		return err
	}

	// gops agent for runtime inspection
	if err := agent.Listen(agent.Options{}); err != nil {
		fmt.Fprintf(cc.Out, "gops agent failed: %v\n", err)
	}

	srv := service.New(&service.Spec{
		Registry: reg,
	})
	if err := srv.StartTCP(cfg.Addr); err != nil {
		return fmt.Errorf("failed to start TCP listener: %w", err)
	}
	fmt.Fprintf(cc.Out, "narchive listening on %s\n", srv.TCPAddr())
	defer srv.StopTCP()

	select {}
}
