package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/revelaction/lesk/storage/postgres"
)

func migrateCommand(ctx context.Context, e *env, ui UI) error {
	dsn := e.cfg.Database.DSN
	if postgres.IsDSN(e.cfg.Lexicon.Path) {
		dsn = e.cfg.Lexicon.Path
	}

	if dsn == "" {
		return errors.New("no PostgreSQL DSN (use a postgres:// --lexicon or LESK_DATABASE_DSN)")
	}

	versions, err := postgres.Migrate(ctx, dsn)
	if err != nil {
		return err
	}

	if len(versions) == 0 {
		fmt.Fprintln(ui.Out, "No pending migrations")
		return nil
	}

	for _, v := range versions {
		fmt.Fprintf(ui.Out, "Applied migration %d\n", v)
	}
	return nil
}
