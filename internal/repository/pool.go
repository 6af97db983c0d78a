package repository

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"task-manager/internal/errs"
	"task-manager/internal/logger"
)

// Pool settings. SQLite serializes writers, so the pool stays deliberately
// small; the acquire timeout turns contention into an explicit backpressure
// signal instead of an unbounded queue.
const (
	maxOpenConns    = 5
	maxIdleConns    = 1
	connMaxLifetime = time.Hour
	acquireTimeout  = 3 * time.Second
	busyTimeout     = 5 * time.Second
)

// Pool owns every live connection to the store. Repositories borrow a
// connection for the duration of one call and never retain it.
type Pool struct {
	db  *gorm.DB
	sql *sql.DB
}

// CreatePool opens the SQLite database named by a "sqlite:<path>" connection
// string and configures the bounded connection pool. The database file is
// created if missing; foreign keys, WAL journaling, synchronous=NORMAL and
// the busy timeout are applied to every connection. Any failure surfaces as
// a Database error; nothing is retried here.
func CreatePool(databaseURL string) (*Pool, error) {
	path, err := sqlitePath(databaseURL)
	if err != nil {
		return nil, errs.Database(err)
	}

	if err := ensureDir(path); err != nil {
		return nil, errs.Database(err)
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=%d",
		path, busyTimeout.Milliseconds())

	dbLogger := gormlogger.New(
		gormLogWriter{log: logger.With("gorm")},
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         dbLogger,
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, errs.Database(fmt.Errorf("open db: %w", err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errs.Database(fmt.Errorf("db handle: %w", err))
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), acquireTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, errs.Database(fmt.Errorf("ping db: %w", err))
	}

	return &Pool{db: db, sql: sqlDB}, nil
}

// session hands out a gorm handle whose context is capped at the acquire
// timeout, so a caller stuck waiting for a free connection fails fast
// instead of queuing indefinitely.
func (p *Pool) session(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(ctx, acquireTimeout)
	return p.db.WithContext(ctx), cancel
}

// Healthy runs a trivial liveness query against the pool.
func (p *Pool) Healthy(ctx context.Context) bool {
	var one int
	return p.db.WithContext(ctx).Raw("SELECT 1").Scan(&one).Error == nil
}

// Stats exposes connection checkout counters for the periodic probe.
func (p *Pool) Stats() sql.DBStats {
	return p.sql.Stats()
}

func (p *Pool) Close() error {
	return p.sql.Close()
}

// sqlitePath extracts the on-disk path from a "<driver>:<path>" connection
// string. Bare paths are accepted for compatibility with plain file DSNs;
// any driver other than sqlite is rejected.
func sqlitePath(databaseURL string) (string, error) {
	switch {
	case strings.HasPrefix(databaseURL, "sqlite://"):
		return strings.TrimPrefix(databaseURL, "sqlite://"), nil
	case strings.HasPrefix(databaseURL, "sqlite:"):
		return strings.TrimPrefix(databaseURL, "sqlite:"), nil
	case databaseURL == "":
		return "", fmt.Errorf("empty database url")
	}
	if i := strings.Index(databaseURL, ":"); i > 1 && !strings.HasPrefix(databaseURL, "file:") {
		return "", fmt.Errorf("unsupported driver %q", databaseURL[:i])
	}
	return databaseURL, nil
}

// ensureDir creates the parent directory for the database file if needed.
func ensureDir(path string) error {
	if strings.Contains(path, ":memory:") || strings.Contains(path, "mode=memory") {
		return nil
	}
	clean := strings.TrimPrefix(path, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}

// gormLogWriter routes gorm's slow-query and error output into zerolog.
type gormLogWriter struct {
	log zerolog.Logger
}

func (w gormLogWriter) Printf(format string, args ...interface{}) {
	w.log.Warn().Msgf(format, args...)
}
