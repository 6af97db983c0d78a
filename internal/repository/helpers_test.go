package repository

import (
	"context"
	"path/filepath"
	"testing"

	"task-manager/internal/model"
)

func newTestPool(t *testing.T) *Pool {
	t.Helper()

	pool, err := CreatePool("sqlite:" + filepath.Join(t.TempDir(), "tasks.db"))
	if err != nil {
		t.Fatalf("create pool: %v", err)
	}
	t.Cleanup(func() { pool.Close() })

	if err := RunMigrations(pool); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	return pool
}

func newTestUser(t *testing.T, pool *Pool, username string) *model.User {
	t.Helper()

	user, err := NewUserRepository(pool).Create(context.Background(), username, "test-hash", nil)
	if err != nil {
		t.Fatalf("create user %q: %v", username, err)
	}
	return user
}
