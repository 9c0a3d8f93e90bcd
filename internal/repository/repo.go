package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/FlamesIsCool/tagz-bio/internal/db"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrUsernameTaken error = errors.New("username already taken")
var ErrEmailRegistered error = errors.New("email already registered")

const defaultThemeHex = "#00ff88"

// linkOrder keeps profile reads deterministic: explicit ordering first,
// insertion order as the tiebreak.
const linkOrder = "order_index ASC, id ASC"

type ProfileRepository struct {
	db db.Storage
}

func NewProfileRepository(storage db.Storage) *ProfileRepository {
	return &ProfileRepository{
		db: storage,
	}
}

func (r *ProfileRepository) MigrateTables() error {
	if err := r.db.MigrateTable(&User{}, &Link{}); err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}
	return nil
}

// CreateUser persists a new user. Username and email are expected to be
// lowercase already; passwordHash is the bcrypt digest, never the plaintext.
func (r *ProfileRepository) CreateUser(ctx context.Context, username, email, passwordHash string) (User, error) {
	taken, err := r.db.ExistsBy(ctx, "username", username, &User{})
	if err != nil {
		return User{}, fmt.Errorf("check username exists: %w", err)
	}
	if taken {
		return User{}, ErrUsernameTaken
	}

	registered, err := r.db.ExistsBy(ctx, "email", email, &User{})
	if err != nil {
		return User{}, fmt.Errorf("check email exists: %w", err)
	}
	if registered {
		return User{}, ErrEmailRegistered
	}

	theme := defaultThemeHex
	user := User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Bio:          "",
		ThemeHex:     &theme,
	}

	if err := r.db.CreateRecord(ctx, &user); err != nil {
		return User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (r *ProfileRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

// GetUserByIdentifier resolves a login identifier that may be either a
// username or an email address.
func (r *ProfileRepository) GetUserByIdentifier(ctx context.Context, identifier string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", identifier, &user)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	err = r.db.GetOneBy(ctx, "email", identifier, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by email: %w", err)
	}

	return user, nil
}

func (r *ProfileRepository) GetUserLinks(ctx context.Context, userID uint) ([]Link, error) {
	links := []Link{}
	err := r.db.GetAllByOrdered(ctx, "user_id", userID, linkOrder, &links)
	if err != nil {
		return nil, fmt.Errorf("get user links: %w", err)
	}

	return links, nil
}

// UpdateProfile applies a partial profile update in a single transaction.
// A non-nil Links slice is a full replacement of the user's link set: every
// existing link is deleted and the new sequence inserted, so a concurrent
// reader never observes a mixture of old and new links.
func (r *ProfileRepository) UpdateProfile(ctx context.Context, userID uint, changes ProfileChanges) error {
	return r.db.Transaction(ctx, func(tx db.Storage) error {
		values := map[string]any{}
		if changes.Bio != nil {
			values["bio"] = *changes.Bio
		}
		if changes.AvatarURL != nil {
			values["avatar_url"] = *changes.AvatarURL
		}
		if changes.ThemeHex != nil {
			values["theme_hex"] = *changes.ThemeHex
		}

		if len(values) > 0 {
			if err := tx.UpdateColumns(ctx, &User{ID: userID}, values); err != nil {
				return fmt.Errorf("update user fields: %w", err)
			}
		}

		if changes.Links == nil {
			return nil
		}

		if err := tx.DeleteAllBy(ctx, "user_id", userID, &Link{}); err != nil {
			return fmt.Errorf("delete user links: %w", err)
		}

		links := make([]Link, 0, len(changes.Links))
		for i, l := range changes.Links {
			orderIndex := l.OrderIndex
			if orderIndex <= 0 {
				orderIndex = i
			}
			links = append(links, Link{
				UserID:     userID,
				Title:      l.Title,
				URL:        l.URL,
				Icon:       l.Icon,
				OrderIndex: orderIndex,
			})
		}

		if err := tx.SaveToTable(ctx, &links); err != nil {
			return fmt.Errorf("insert user links: %w", err)
		}

		return nil
	})
}
