// Package seed creates the data a fresh installation needs
package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/clubhub/internal/app/models"
	"github.com/yigit/clubhub/internal/db"
	"github.com/yigit/clubhub/internal/pkg/validation"
)

// UserStore is the part of the user repository the seed needs
type UserStore interface {
	LockBootstrap(ctx context.Context) error
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, user *models.User) error
}

// Hasher hashes the seed admin password
type Hasher interface {
	Hash(password string) (string, error)
}

// MainAdmin describes the account created on an empty installation
type MainAdmin struct {
	Name     string
	Email    string
	Password string
}

// CreateMainAdmin creates the main admin when the users table is empty.
// It is a no-op when no seed email is configured or any user already exists.
func CreateMainAdmin(ctx context.Context, tx db.Transactor, users UserStore, hasher Hasher, admin MainAdmin, lgr zerolog.Logger) (bool, error) {
	email := validation.NormalizeEmail(admin.Email)
	if email == "" {
		lgr.Debug().Msg("No seed admin configured, skipping")
		return false, nil
	}

	hashed, err := hasher.Hash(admin.Password)
	if err != nil {
		return false, fmt.Errorf("failed to hash seed admin password: %w", err)
	}

	created := false
	err = tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := users.LockBootstrap(ctx); err != nil {
			return err
		}
		count, err := users.Count(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		user := &models.User{
			ID:       models.NewUserID(),
			Email:    email,
			Password: hashed,
			Name:     admin.Name,
			Role:     models.RoleAdmin,
		}
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to seed main admin: %w", err)
	}

	if created {
		lgr.Info().Str("email", email).Msg("Main admin created")
	} else {
		lgr.Info().Msg("Users already exist, main admin not seeded")
	}
	return created, nil
}
