package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avGenie/flexihire/internal/app/entity"
	storage "github.com/avGenie/flexihire/internal/app/storage/api/errors"
	"github.com/avGenie/flexihire/internal/app/usecase/crypto"
	usecase "github.com/avGenie/flexihire/internal/app/usecase/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserAuthenticator interface {
	CreateUser(ctx context.Context, user entity.User) error
	GetUser(ctx context.Context, login string) (entity.User, error)
	GetUserByID(ctx context.Context, userID entity.UserID) (entity.User, error)
	UpdateProfile(ctx context.Context, userID entity.UserID, profile entity.Profile, at time.Time) (entity.User, error)
}

type Service struct {
	storage UserAuthenticator
}

func NewService(storage UserAuthenticator) *Service {
	return &Service{
		storage: storage,
	}
}

// Register creates an account. Admin accounts cannot be self-registered.
func (s *Service) Register(ctx context.Context, registration entity.Registration) (entity.User, error) {
	if len(registration.Login) == 0 || len(registration.Password) == 0 {
		return entity.User{}, fmt.Errorf("%w: empty login or password", usecase.ErrValidation)
	}

	if !registration.Role.Registrable() {
		return entity.User{}, fmt.Errorf("%w: role %q cannot be registered", usecase.ErrValidation, registration.Role)
	}

	hashedPassword, err := crypto.HashPassword(registration.Password)
	if errors.Is(err, crypto.ErrPasswordTooLong) {
		return entity.User{}, fmt.Errorf("%w: %w", usecase.ErrValidation, err)
	}
	if err != nil {
		return entity.User{}, fmt.Errorf("%w: %w", usecase.ErrStorage, err)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	user := entity.User{
		ID:        entity.UserID(uuid.NewString()),
		Login:     registration.Login,
		Password:  hashedPassword,
		Role:      registration.Role,
		Profile:   normalizeProfile(registration.Profile),
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.storage.CreateUser(ctx, user)
	if err != nil {
		zap.L().Error("error while creating user", zap.Error(err), zap.String("login", user.Login))

		if errors.Is(err, storage.ErrLoginExists) {
			return entity.User{}, fmt.Errorf("%w: %w", usecase.ErrConflict, err)
		}

		return entity.User{}, fmt.Errorf("%w: error while creating user: %w", usecase.ErrStorage, err)
	}

	zap.L().Info("user registered", zap.String("user_id", user.ID.String()), zap.String("role", string(user.Role)))

	return user, nil
}

// Login checks the credentials. An unknown login and a wrong password are
// reported the same way.
func (s *Service) Login(ctx context.Context, login, password string) (entity.User, error) {
	if len(login) == 0 || len(password) == 0 {
		return entity.User{}, fmt.Errorf("%w: empty login or password", usecase.ErrValidation)
	}

	storageUser, err := s.storage.GetUser(ctx, login)
	if err != nil {
		zap.L().Error("error while getting user while authentication request", zap.Error(err))

		if errors.Is(err, storage.ErrLoginNotFound) {
			return entity.User{}, usecase.ErrInvalidCredentials
		}

		return entity.User{}, fmt.Errorf("%w: error while getting user: %w", usecase.ErrStorage, err)
	}

	err = crypto.CheckPasswordHash(password, storageUser.Password)
	if err != nil {
		zap.L().Error("error while checking user password while authentication request", zap.Error(err))

		if errors.Is(err, crypto.ErrWrongPassword) {
			return entity.User{}, usecase.ErrInvalidCredentials
		}

		return entity.User{}, fmt.Errorf("%w: %w", usecase.ErrStorage, err)
	}

	return storageUser, nil
}

func (s *Service) GetProfile(ctx context.Context, actor entity.Actor) (entity.User, error) {
	user, err := s.storage.GetUserByID(ctx, actor.ID)
	if err != nil {
		return entity.User{}, convertStorageError(err)
	}

	return user, nil
}

func (s *Service) UpdateProfile(ctx context.Context, actor entity.Actor, profile entity.Profile) (entity.User, error) {
	if len(profile.Skills) > maxSkills {
		return entity.User{}, fmt.Errorf("%w: at most %d skills are allowed", usecase.ErrValidation, maxSkills)
	}

	user, err := s.storage.UpdateProfile(ctx, actor.ID, normalizeProfile(profile), time.Now().UTC().Truncate(time.Microsecond))
	if err != nil {
		return entity.User{}, convertStorageError(err)
	}

	return user, nil
}

const maxSkills = 30

// normalizeProfile trims the fields and drops empty and repeated skills.
func normalizeProfile(profile entity.Profile) entity.Profile {
	profile.DisplayName = strings.TrimSpace(profile.DisplayName)
	profile.Bio = strings.TrimSpace(profile.Bio)
	profile.University = strings.TrimSpace(profile.University)

	seen := make(map[string]struct{}, len(profile.Skills))
	skills := make([]string, 0, len(profile.Skills))
	for _, skill := range profile.Skills {
		skill = strings.TrimSpace(skill)
		if len(skill) == 0 {
			continue
		}

		key := strings.ToLower(skill)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		skills = append(skills, skill)
	}
	profile.Skills = skills

	return profile
}

func convertStorageError(err error) error {
	if errors.Is(err, storage.ErrUserNotFound) {
		return fmt.Errorf("%w: %w", usecase.ErrNotFound, err)
	}

	return fmt.Errorf("%w: %w", usecase.ErrStorage, err)
}
