package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/flarewebs/flarewebs-server/database"
	"github.com/flarewebs/flarewebs-server/internal/logger"
)

type Connection struct {
	*gorm.DB
	sqlDB *sql.DB
}

// NewConection opens a pooled connection, applies pending migrations and
// wraps the pool with gorm.
func NewConection(ctx context.Context, dsn string, l *logger.Logger) (*Connection, error) {
	conf, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres dsn: %w", err)
	}

	sqlDB := stdlib.OpenDB(*conf)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := database.Run(ctx, sqlDB, "up"); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return NewConnectionFromDB(sqlDB, l)
}

// NewConnectionFromDB wraps an already opened *sql.DB without migrating it.
func NewConnectionFromDB(sqlDB *sql.DB, l *logger.Logger) (*Connection, error) {
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger: gormlogger.New(gormWriter{l}, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm session: %w", err)
	}

	return &Connection{
		DB:    gdb,
		sqlDB: sqlDB,
	}, nil
}

func (s *Connection) Close() error {
	if s.sqlDB != nil {
		return s.sqlDB.Close()
	}
	return nil
}

func (s *Connection) Ping(ctx context.Context) error {
	if s.sqlDB == nil {
		return fmt.Errorf("connection pool is nil")
	}
	return s.sqlDB.PingContext(ctx)
}

// SQL returns the underlying pool.
func (s *Connection) SQL() *sql.DB {
	return s.sqlDB
}

type gormWriter struct {
	l *logger.Logger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	if w.l == nil {
		return
	}
	w.l.Warnf(format, args...)
}
