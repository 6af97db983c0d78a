package repository

import (
	"fmt"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"task-manager/internal/errs"
	"task-manager/internal/logger"
)

// migrations is the ordered schema history. IDs are applied in slice order
// and recorded in the migrations table, so re-running is a no-op. Never
// edit an entry that has shipped; append a new one.
var migrations = []*gormigrate.Migration{
	{
		ID: "20240101000001_create_users",
		Migrate: func(tx *gorm.DB) error {
			return tx.Exec(`
				CREATE TABLE IF NOT EXISTS users (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					username TEXT NOT NULL UNIQUE,
					password_hash TEXT NOT NULL,
					email TEXT UNIQUE,
					created_at DATETIME NOT NULL DEFAULT (datetime('now')),
					updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
				)`).Error
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.Exec(`DROP TABLE IF EXISTS users`).Error
		},
	},
	{
		ID: "20240101000002_create_tasks",
		Migrate: func(tx *gorm.DB) error {
			return tx.Exec(`
				CREATE TABLE IF NOT EXISTS tasks (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					title TEXT NOT NULL,
					description TEXT NOT NULL DEFAULT '',
					status TEXT NOT NULL DEFAULT 'todo',
					priority TEXT NOT NULL DEFAULT 'medium',
					due_date DATETIME,
					user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
					created_at DATETIME NOT NULL DEFAULT (datetime('now')),
					updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
				)`).Error
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.Exec(`DROP TABLE IF EXISTS tasks`).Error
		},
	},
	{
		ID: "20240101000003_task_indexes",
		Migrate: func(tx *gorm.DB) error {
			for _, stmt := range []string{
				`CREATE INDEX IF NOT EXISTS idx_tasks_user_id ON tasks(user_id)`,
				`CREATE INDEX IF NOT EXISTS idx_tasks_user_status ON tasks(user_id, status)`,
				`CREATE INDEX IF NOT EXISTS idx_tasks_user_priority ON tasks(user_id, priority)`,
			} {
				if err := tx.Exec(stmt).Error; err != nil {
					return err
				}
			}
			return nil
		},
		Rollback: func(tx *gorm.DB) error {
			for _, stmt := range []string{
				`DROP INDEX IF EXISTS idx_tasks_user_id`,
				`DROP INDEX IF EXISTS idx_tasks_user_status`,
				`DROP INDEX IF EXISTS idx_tasks_user_priority`,
			} {
				if err := tx.Exec(stmt).Error; err != nil {
					return err
				}
			}
			return nil
		},
	},
}

// RunMigrations brings the store to the expected schema. It must complete
// before any repository call is issued; a failure here is fatal to startup.
func RunMigrations(pool *Pool) error {
	m := gormigrate.New(pool.db, gormigrate.DefaultOptions, migrations)
	if err := m.Migrate(); err != nil {
		return errs.Database(fmt.Errorf("migrate db: %w", err))
	}
	log := logger.With("migrations")
	log.Info().Int("count", len(migrations)).Msg("database schema up to date")
	return nil
}
