package main

import (
	"context"
)

func disambiguateCommand(ctx context.Context, opts DisambiguateOptions, e *env, ui UI) error {
	r, err := newRenderer(opts.Format, opts.Style, !opts.NoColor, ui)
	if err != nil {
		return err
	}

	repo, err := e.repository(ctx, false)
	if err != nil {
		return err
	}

	kb, err := e.reader(repo)
	if err != nil {
		return err
	}

	if opts.POS {
		e.cfg.Lesk.POS = true
	}

	p := e.pipeline(kb)
	results, err := p.Disambiguate(ctx, opts.Sentence, opts.Word)
	if err != nil {
		return err
	}

	return r.Results(opts.Sentence, p.Tokenize(opts.Sentence), results)
}
