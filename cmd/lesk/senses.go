package main

import (
	"context"
	"fmt"
)

func sensesCommand(ctx context.Context, opts SensesOptions, e *env, ui UI) error {
	r, err := newRenderer(opts.Format, "", !opts.NoColor, ui)
	if err != nil {
		return err
	}

	tokens := e.tokenizer().Tokenize(opts.Word)
	if len(tokens) != 1 {
		return fmt.Errorf("%q is not a single word", opts.Word)
	}
	word := tokens[0].Text

	repo, err := e.repository(ctx, false)
	if err != nil {
		return err
	}

	kb, err := e.reader(repo)
	if err != nil {
		return err
	}

	senses, err := kb.Senses(ctx, word)
	if err != nil {
		return err
	}

	return r.Senses(word, senses)
}
