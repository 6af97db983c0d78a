package service

import (
	"context"
	"path/filepath"
	"testing"

	"task-manager/internal/errs"
	"task-manager/internal/model"
	"task-manager/internal/repository"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()

	pool, err := repository.CreatePool("sqlite:" + filepath.Join(t.TempDir(), "auth.db"))
	if err != nil {
		t.Fatalf("create pool: %v", err)
	}
	t.Cleanup(func() { pool.Close() })

	if err := repository.RunMigrations(pool); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	return NewAuthService(repository.NewUserRepository(pool), "test-secret")
}

func TestRegisterAndLogin(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	resp, err := auth.Register(ctx, model.CreateUser{
		Username: "alice",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if resp.ID == 0 || resp.Username != "alice" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	token, user, err := auth.Login(ctx, "alice", "correct horse")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if user.ID != resp.ID {
		t.Fatalf("login returned user %d, registered %d", user.ID, resp.ID)
	}

	userID, err := auth.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if userID != resp.ID {
		t.Fatalf("token carries user %d, want %d", userID, resp.ID)
	}
}

func TestRegisterValidation(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	cases := []model.CreateUser{
		{Username: "ab", Password: "long enough"},
		{Username: "alice", Password: "short"},
	}
	for _, input := range cases {
		if _, err := auth.Register(ctx, input); !errs.IsValidation(err) {
			t.Errorf("Register(%q): expected validation error, got %v", input.Username, err)
		}
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	if _, err := auth.Register(ctx, model.CreateUser{Username: "alice", Password: "password1"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err := auth.Register(ctx, model.CreateUser{Username: "alice", Password: "password2"})
	if errs.KindOf(err) != errs.KindUsernameExists {
		t.Fatalf("expected username-exists, got %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	if _, err := auth.Register(ctx, model.CreateUser{Username: "alice", Password: "password1"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	// Unknown user and wrong password produce the same error.
	if _, _, err := auth.Login(ctx, "nobody", "password1"); !errs.IsAuth(err) {
		t.Fatalf("expected auth error for unknown user, got %v", err)
	}
	if _, _, err := auth.Login(ctx, "alice", "wrong password"); !errs.IsAuth(err) {
		t.Fatalf("expected auth error for wrong password, got %v", err)
	}
}

func TestParseTokenRejectsTampering(t *testing.T) {
	auth := newTestAuthService(t)

	token, err := auth.GenerateToken(42)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := auth.ParseToken(token + "x"); !errs.IsAuth(err) {
		t.Fatalf("expected auth error for tampered token, got %v", err)
	}
	if _, err := auth.ParseToken("not.a.token"); !errs.IsAuth(err) {
		t.Fatalf("expected auth error for garbage token, got %v", err)
	}

	other := NewAuthService(nil, "other-secret")
	if _, err := other.ParseToken(token); !errs.IsAuth(err) {
		t.Fatalf("expected auth error across secrets, got %v", err)
	}
}
