package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avGenie/flexihire/internal/app/entity"
	storage "github.com/avGenie/flexihire/internal/app/storage/api/errors"
	"github.com/jackc/pgx/v5"
)

const selectUser = `SELECT id, login, password, role, display_name, bio, university, skills, created_at, updated_at FROM users`

func (s *Postgres) CreateUser(ctx context.Context, user entity.User) error {
	skills := user.Profile.Skills
	if skills == nil {
		skills = []string{}
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO users (id, login, password, role, display_name, bio, university, skills, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		user.ID.String(),
		user.Login,
		user.Password,
		string(user.Role),
		user.Profile.DisplayName,
		user.Profile.Bio,
		user.Profile.University,
		skills,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrLoginExists
		}

		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

func (s *Postgres) GetUser(ctx context.Context, login string) (entity.User, error) {
	user, err := scanUser(s.pool.QueryRow(ctx, selectUser+` WHERE login = $1`, login))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, storage.ErrLoginNotFound
		}

		return entity.User{}, fmt.Errorf("failed to select user by login: %w", err)
	}

	return user, nil
}

func (s *Postgres) GetUserByID(ctx context.Context, userID entity.UserID) (entity.User, error) {
	user, err := scanUser(s.pool.QueryRow(ctx, selectUser+` WHERE id = $1`, userID.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, storage.ErrUserNotFound
		}

		return entity.User{}, fmt.Errorf("failed to select user by id: %w", err)
	}

	return user, nil
}

func (s *Postgres) UpdateProfile(ctx context.Context, userID entity.UserID, profile entity.Profile, at time.Time) (entity.User, error) {
	skills := profile.Skills
	if skills == nil {
		skills = []string{}
	}

	user, err := scanUser(s.pool.QueryRow(ctx, `
		UPDATE users SET display_name = $2, bio = $3, university = $4, skills = $5, updated_at = $6
		WHERE id = $1
		RETURNING id, login, password, role, display_name, bio, university, skills, created_at, updated_at
	`,
		userID.String(),
		profile.DisplayName,
		profile.Bio,
		profile.University,
		skills,
		at,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, storage.ErrUserNotFound
		}

		return entity.User{}, fmt.Errorf("failed to update profile: %w", err)
	}

	return user, nil
}

func scanUser(row rowScanner) (entity.User, error) {
	var (
		user entity.User
		id   string
		role string
	)

	err := row.Scan(
		&id,
		&user.Login,
		&user.Password,
		&role,
		&user.Profile.DisplayName,
		&user.Profile.Bio,
		&user.Profile.University,
		&user.Profile.Skills,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return entity.User{}, err
	}

	user.ID = entity.UserID(id)
	user.Role = entity.Role(role)

	return user, nil
}
