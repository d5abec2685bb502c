package main

import (
	"context"
	"fmt"

	"github.com/gosuri/uiprogress"
	"go.uber.org/zap"

	"github.com/revelaction/lesk/sense"
	"github.com/revelaction/lesk/storage/filesystem"
	"github.com/revelaction/lesk/wordnet"
)

// importBatch is the number of entries per write transaction
const importBatch = 500

func importCommand(ctx context.Context, opts ImportOptions, e *env, ui UI) error {
	fmt.Fprintf(ui.Out, "Reading lexicon from %s...\n", opts.From)

	var src []sense.Entry
	if opts.WordNet {
		res, err := wordnet.Parse(opts.From)
		if err != nil {
			return err
		}

		fmt.Fprintf(ui.Out, "Parsed %d synsets, %d entries, %d senses (%d skipped)\n",
			res.Stats.TotalSynsets, res.Stats.TotalEntries, res.Stats.TotalSenses, res.Stats.Skipped)
		src = res.Entries
	} else {
		store, err := filesystem.NewLexiconStore(opts.From)
		if err != nil {
			return err
		}
		if err := store.Preload(nil); err != nil {
			return err
		}
		if src, err = store.Entries(); err != nil {
			return err
		}
	}

	dst, err := NewLexiconWriter(ctx, e.pool, opts.To, e.cfg.Database)
	if err != nil {
		return err
	}

	p := uiprogress.New()
	p.Start()
	bar := p.AddBar(max(len(src), 1))
	bar.AppendCompleted()
	bar.PrependElapsed()

	count := 0
	for start := 0; start < len(src); start += importBatch {
		batch := src[start:min(start+importBatch, len(src))]
		if err := dst.Write(ctx, batch); err != nil {
			p.Stop()
			return fmt.Errorf("failed to write entries %d-%d: %w", start, start+len(batch), err)
		}

		count += len(batch)
		_ = bar.Set(count)
	}
	p.Stop()

	e.log.Info("import done", zap.String("from", opts.From), zap.String("to", opts.To), zap.Int("entries", count))
	fmt.Fprintf(ui.Out, "Successfully imported %d entries from %s to %s\n", count, opts.From, opts.To)
	return nil
}
