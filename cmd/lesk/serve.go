package main

import (
	"context"
	"fmt"

	"github.com/revelaction/lesk/server"
)

func serveCommand(ctx context.Context, opts ServeOptions, e *env, ui UI) error {
	if opts.Addr != "" {
		e.cfg.Server.Addr = opts.Addr
	}

	repo, err := e.repository(ctx, false)
	if err != nil {
		return err
	}

	kb, err := e.reader(repo)
	if err != nil {
		return err
	}

	fmt.Fprintf(ui.Err, "Serving on http://%s\n", e.cfg.Server.Addr)
	srv := server.New(e.pipeline(kb), kb, e.cfg.Server, e.log)
	return srv.ListenAndServe(ctx)
}
