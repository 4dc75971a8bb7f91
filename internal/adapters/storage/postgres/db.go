package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"dogs-api/internal/platform/logger"

	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

const pingTimeout = 3 * time.Second

// Open abre una conexión pool a Postgres usando pgx (database/sql).
// Con log en nivel debug cada query pasa por pgx tracelog.
func Open(ctx context.Context, dsn string, log logger.Logger) (*sql.DB, error) {
	connCfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	zl := logger.Zerolog(log)
	if zl.GetLevel() <= zerolog.DebugLevel {
		connCfg.Tracer = &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(zl),
			LogLevel: tracelog.LogLevelDebug,
		}
	}

	db := stdlib.OpenDB(*connCfg)

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	return db, nil
}
