package main

import (
	"context"

	"github.com/gosuri/uiprogress"

	"github.com/revelaction/lesk/stat"
)

func statCommand(ctx context.Context, opts StatOptions, e *env, ui UI) error {
	r, err := newRenderer(opts.Format, "", false, ui)
	if err != nil {
		return err
	}

	repo, err := e.repository(ctx, false)
	if err != nil {
		return err
	}

	// the bar writes to stdout, keep json output clean
	if opts.Format == "json" {
		stats, err := stat.Collect(ctx, repo, nil)
		if err != nil {
			return err
		}
		return r.Stats(stats)
	}

	p := uiprogress.New()
	p.Start()
	bar := p.AddBar(1)
	bar.AppendCompleted()
	bar.PrependElapsed()

	stats, err := stat.Collect(ctx, repo, func(current, total int) {
		if bar.Total <= 1 {
			bar.Total = total
		}
		_ = bar.Set(current)
	})
	p.Stop()

	if err != nil {
		return err
	}

	return r.Stats(stats)
}
