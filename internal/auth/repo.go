package auth

import (
	"context"
	"strings"
)

// Repository resolves user accounts by email.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
}

// StaticRepository holds the configured account list in memory.
type StaticRepository struct {
	users []User
}

// NewStaticRepository builds a repository over a fixed account list.
func NewStaticRepository(users ...User) *StaticRepository {
	return &StaticRepository{users: users}
}

// FindByEmail looks up an account case-insensitively.
func (r *StaticRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	for i := range r.users {
		if strings.EqualFold(r.users[i].Email, email) {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, ErrInvalidCredentials
}
