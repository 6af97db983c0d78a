package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"task-manager/internal/errs"
	"task-manager/internal/model"
)

// UserRepository handles CRUD for user accounts.
type UserRepository struct {
	pool *Pool
}

func NewUserRepository(pool *Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Create inserts a user with an already-hashed password. A duplicate
// username surfaces as UsernameExists.
func (r *UserRepository) Create(ctx context.Context, username, passwordHash string, email *string) (*model.User, error) {
	user := model.User{
		Username:     username,
		PasswordHash: passwordHash,
		Email:        email,
	}

	db, cancel := r.pool.session(ctx)
	defer cancel()
	err := db.Create(&user).Error
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return nil, errs.UsernameExists(username)
	case err != nil:
		return nil, errs.Database(fmt.Errorf("create user: %w", err))
	}

	return r.FindByID(ctx, user.ID)
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	db, cancel := r.pool.session(ctx)
	defer cancel()

	var user model.User
	err := db.First(&user, "id = ?", id).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, errs.UserNotFound(id)
	case err != nil:
		return nil, errs.Database(fmt.Errorf("find user: %w", err))
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	db, cancel := r.pool.session(ctx)
	defer cancel()

	var user model.User
	err := db.First(&user, "username = ?", username).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, errs.UserNotFoundByName(username)
	case err != nil:
		return nil, errs.Database(fmt.Errorf("find user by name: %w", err))
	}
	return &user, nil
}

// Update applies a partial update to username/email; field presence, not
// value, decides which columns are touched. Password changes go through
// the auth service instead.
func (r *UserRepository) Update(ctx context.Context, id int64, input model.UpdateUser) (*model.User, error) {
	if _, err := r.FindByID(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if input.Username != nil {
		updates["username"] = *input.Username
	}
	if input.Email != nil {
		updates["email"] = *input.Email
	}

	db, cancel := r.pool.session(ctx)
	defer cancel()
	err := db.Model(&model.User{}).Where("id = ?", id).Updates(updates).Error
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		name := ""
		if input.Username != nil {
			name = *input.Username
		}
		return nil, errs.UsernameExists(name)
	case err != nil:
		return nil, errs.Database(fmt.Errorf("update user: %w", err))
	}

	return r.FindByID(ctx, id)
}
