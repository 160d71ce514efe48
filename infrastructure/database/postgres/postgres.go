package postgres

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/vfg2006/agency-dashboard/internal/config"
)

type Conn interface {
	Queryer
	Close() error
	Ping(context.Context) error
	Execer
	RunInTransaction(context.Context, func(*sql.Tx) error) error
	RunInWriteTransaction(context.Context, func(*sql.Tx) error) error
}

type Connection struct {
	*sql.DB
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Connection{DB: db}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// RunInTransaction executa fn em uma transação somente leitura. O snapshot é
// lido inteiro dentro dela para que as sete tabelas sejam consistentes entre si.
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	return c.runInTransaction(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}, fn)
}

// RunInWriteTransaction executa fn em uma transação de escrita (carga do seed)
func (c *Connection) RunInWriteTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	return c.runInTransaction(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

func (c *Connection) runInTransaction(ctx context.Context, opts *sql.TxOptions, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return rbErr
		}
		return err
	}

	return tx.Commit()
}
