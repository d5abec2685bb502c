package main

import (
	"context"

	"github.com/revelaction/lesk/query"
)

// Query command
func queryCommand(ctx context.Context, opts QueryOptions, e *env, ui UI) error {
	r, err := newTextRenderer(opts.Style, ui)
	if err != nil {
		return err
	}
	r.HasColor = !opts.NoColor
	r.HasPrefix = !opts.NoPrefix

	repo, err := e.repository(ctx, true)
	if err != nil {
		return err
	}

	words, err := repo.Words(ctx)
	if err != nil {
		return err
	}

	kb, err := e.reader(repo)
	if err != nil {
		return err
	}

	// now present the REPL
	h := query.NewHandler(e.pipeline(kb), kb, words, r)
	h.Out = ui.Out
	return h.Run(ctx)
}
