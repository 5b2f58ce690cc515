package trm

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type Transaction interface {
	Commit() error
	Rollback() error
}

type txKey struct{}

func withTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// ExtractTx возвращает транзакцию из ctx или nil, если её нет
func ExtractTx(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey{}).(*sqlx.Tx)
	return tx
}

type Manager interface {
	BeginTx(ctx context.Context) (context.Context, Transaction, error)
	Do(ctx context.Context, callback func(ctx context.Context) error) error
}

type txManager struct {
	db   *sqlx.DB
	opts *sql.TxOptions
}

func NewManager(db *sqlx.DB) Manager {
	return &txManager{
		db:   db,
		opts: &sql.TxOptions{Isolation: sql.LevelReadCommitted},
	}
}

func (t *txManager) BeginTx(ctx context.Context) (context.Context, Transaction, error) {
	tx, err := t.db.BeginTxx(ctx, t.opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin tx: %w", err)
	}
	return withTx(ctx, tx), tx, nil
}

// Do выполняет callback в транзакции. Если в ctx уже есть транзакция,
// callback работает в ней, а фиксирует её внешний Do.
func (t *txManager) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	return run(ctx, t.db, t.opts, callback)
}

var snapshotOpts = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

// ReadSnapshot выполняет несколько чтений над одним снимком базы.
// Внутри уже открытой транзакции используется она.
func ReadSnapshot(ctx context.Context, db *sqlx.DB, callback func(ctx context.Context) error) error {
	return run(ctx, db, snapshotOpts, callback)
}

func run(ctx context.Context, db *sqlx.DB, opts *sql.TxOptions, callback func(ctx context.Context) error) (err error) {
	if ExtractTx(ctx) != nil {
		return callback(ctx)
	}

	tx, err := db.BeginTxx(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	ctx = withTx(ctx, tx)

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = errors.Join(err, fmt.Errorf("failed to rollback tx: %w", rbErr))
			}
		}
	}()

	if err = callback(ctx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}
	return nil
}

// NopManager выполняет callback без транзакции, для хранилищ с атомарной записью
type NopManager struct{}

func (NopManager) BeginTx(ctx context.Context) (context.Context, Transaction, error) {
	return ctx, nopTx{}, nil
}

func (NopManager) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	return callback(ctx)
}

type nopTx struct{}

func (nopTx) Commit() error   { return nil }
func (nopTx) Rollback() error { return nil }
