package model

import "time"

// User is an account that owns tasks. PasswordHash never leaves the
// process boundary; hand out UserResponse instead.
type User struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex" json:"username"`
	PasswordHash string    `json:"-"`
	Email        *string   `gorm:"uniqueIndex" json:"email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateUser is the registration projection; Password is plain text here
// and must be hashed before it touches the store.
type CreateUser struct {
	Username string  `json:"username"`
	Password string  `json:"-"`
	Email    *string `json:"email"`
}

// UpdateUser is a partial-update projection: nil means "leave unchanged".
// Password changes go through the auth service, not this projection.
type UpdateUser struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

// UserResponse is the only user shape allowed to cross the system boundary.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     *string   `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResponse strips the password hash for external use.
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
