package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/revelaction/lesk/config"
	"github.com/revelaction/lesk/storage/postgres"
	"github.com/revelaction/lesk/storage/sqlite/zombiezen"
)

// Pool holds the database pools opened by a command, closed on exit.
type Pool struct {
	p  *sqlitex.Pool
	pg *pgxpool.Pool
}

func (p *Pool) Open(path string) (*sqlitex.Pool, error) {
	if p.p != nil {
		return p.p, nil
	}
	pool, err := zombiezen.NewPool(path)
	if err != nil {
		return nil, err
	}
	p.p = pool
	return p.p, nil
}

func (p *Pool) OpenPostgres(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	if p.pg != nil {
		return p.pg, nil
	}
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	p.pg = pool
	return p.pg, nil
}

func (p *Pool) Close() error {
	if p.pg != nil {
		p.pg.Close()
		p.pg = nil
	}
	if p.p != nil {
		err := p.p.Close()
		p.p = nil
		return err
	}
	return nil
}
