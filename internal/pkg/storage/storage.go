package storage

import (
	"context"
	"maps"
	"slices"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/zaken-api/internal/pkg/presentation/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Db reads zaken from the database of the system of record. It never changes
// the schema.
type Db struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, cfg Config) (Db, error) {
	p, err := connect(ctx, cfg)
	if err != nil {
		return Db{}, err
	}

	return Db{
		pool: p,
	}, nil
}

func (db Db) Close() {
	db.pool.Close()
}

// connect waits for the database to accept connections, one attempt per
// second.
func connect(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	log := logging.GetFromContext(ctx)

	conn, err := pgxpool.New(ctx, cfg.ConnStr())
	if err != nil {
		return nil, err
	}

	attempts := cfg.attempts
	if attempts == 0 {
		attempts = 1
	}

	_, err = backoff.Retry(ctx, func() (struct{}, error) {
		err := conn.Ping(ctx)
		if err != nil {
			log.Debug("database is not ready", "err", err.Error())
		}
		return struct{}{}, err
	}, backoff.WithBackOff(backoff.NewConstantBackOff(time.Second)), backoff.WithMaxTries(attempts))
	if err != nil {
		log.Error("could not connect to database", "err", err.Error())
		conn.Close()
		return nil, err
	}

	return conn, nil
}

// source is a filtered table or join that pages are read from. Rows are
// ordered by key, descending.
type source[T any] struct {
	pool  *pgxpool.Pool
	name  string
	from  string
	cols  string
	where string
	args  pgx.NamedArgs
	key   string
	scan  pgx.RowToFunc[T]
	load  func(ctx context.Context, items []T) error
}

func (s *source[T]) Count(ctx context.Context) (int64, error) {
	var n int64

	err := s.pool.QueryRow(ctx, "SELECT count(*) FROM "+s.from+" "+s.where, s.args).Scan(&n)
	if err != nil {
		logging.GetFromContext(ctx).Error("could not count rows", "source", s.name, "err", err.Error())
		return 0, err
	}

	return n, nil
}

func (s *source[T]) Fetch(ctx context.Context, w pagination.Window) ([]T, error) {
	log := logging.GetFromContext(ctx)

	args := maps.Clone(s.args)
	seek, tail := newWindowClause(s.key, w, args)

	query := "SELECT " + s.cols + " FROM " + s.from + " " + s.where + seek + tail

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		log.Error("could not execute query", "source", s.name, "err", err.Error())
		return nil, err
	}

	items, err := pgx.CollectRows(rows, s.scan)
	if err != nil {
		log.Error("could not collect rows", "source", s.name, "err", err.Error())
		return nil, err
	}

	if w.Seek != nil && w.Seek.Reverse {
		slices.Reverse(items)
	}

	if s.load != nil && len(items) > 0 {
		err = s.load(ctx, items)
		if err != nil {
			log.Error("could not load relations", "source", s.name, "err", err.Error())
			return nil, err
		}
	}

	return items, nil
}
