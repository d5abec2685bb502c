package main

import (
	"context"
	"fmt"

	"github.com/revelaction/lesk/storage/filesystem"
)

func exportCommand(ctx context.Context, opts ExportOptions, e *env, ui UI) error {
	if !isJSON(opts.To) {
		return fmt.Errorf("export destination must be a .json file: %s", opts.To)
	}

	repo, err := e.repository(ctx, false)
	if err != nil {
		return err
	}

	all, err := entries(ctx, repo)
	if err != nil {
		return err
	}

	if err := filesystem.WriteLexicon(opts.To, all); err != nil {
		return err
	}

	fmt.Fprintf(ui.Out, "Exported %d entries to %s\n", len(all), opts.To)
	return nil
}
