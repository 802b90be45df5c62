package auth

import (
	"context"
	"fmt"
	"net/http"

	httputils "github.com/avGenie/flexihire/internal/app/controller/http/utils"
	"github.com/avGenie/flexihire/internal/app/converter"
	"github.com/avGenie/flexihire/internal/app/entity"
	"github.com/avGenie/flexihire/internal/app/model"
	usecase "github.com/avGenie/flexihire/internal/app/usecase/converter"
	err_usecase "github.com/avGenie/flexihire/internal/app/usecase/errors"
	"github.com/avGenie/flexihire/internal/app/validator"
	"go.uber.org/zap"
)

//go:generate mockgen -source=auth.go -destination=mock/auth.go -package=mock

const (
	ErrEmptyUserRequest = "wrong user credentials format: empty login, password or role"
)

type UserAuthenticator interface {
	Register(ctx context.Context, registration entity.Registration) (entity.User, error)
	Login(ctx context.Context, login, password string) (entity.User, error)
	GetProfile(ctx context.Context, actor entity.Actor) (entity.User, error)
	UpdateProfile(ctx context.Context, actor entity.Actor, profile entity.Profile) (entity.User, error)
}

type AuthUser struct {
	service UserAuthenticator
}

func New(service UserAuthenticator) AuthUser {
	return AuthUser{
		service: service,
	}
}

func (a *AuthUser) CreateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request model.CreateUserRequest
		err := httputils.DecodeJSON(r, &request)
		if err != nil {
			zap.L().Error("error while parsing user credentials while creating user", zap.Error(err))
			httputils.WriteError(w, err)
			return
		}

		if !validator.CreateUserRequest(request) {
			httputils.WriteError(w, fmt.Errorf("%w: %s", err_usecase.ErrValidation, ErrEmptyUserRequest))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		user, err := a.service.Register(ctx, converter.ConvertCreateUserRequestToRegistration(request))
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		a.writeUserWithToken(user, w)
	}
}

func (a *AuthUser) AuthenticateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request model.UserCredentialsRequest
		err := httputils.DecodeJSON(r, &request)
		if err != nil {
			zap.L().Error("error while parsing user credentials while authentication", zap.Error(err))
			httputils.WriteError(w, err)
			return
		}

		if !validator.UserCredentialsRequest(request) {
			httputils.WriteError(w, fmt.Errorf("%w: %s", err_usecase.ErrValidation, ErrEmptyUserRequest))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		user, err := a.service.Login(ctx, request.Login, request.Password)
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		a.writeUserWithToken(user, w)
	}
}

func (a *AuthUser) GetProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := httputils.GetActorFromContext(r)
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		user, err := a.service.GetProfile(ctx, actor)
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertUserToProfileResponse(user))
	}
}

func (a *AuthUser) UpdateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := httputils.GetActorFromContext(r)
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		var request model.ProfileRequest
		err = httputils.DecodeJSON(r, &request)
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		user, err := a.service.UpdateProfile(ctx, actor, converter.ConvertProfileRequestToProfile(request))
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertUserToProfileResponse(user))
	}
}

func (a *AuthUser) writeUserWithToken(user entity.User, w http.ResponseWriter) {
	token, err := usecase.SetActorToAuthHeaderFormat(entity.Actor{ID: user.ID, Role: user.Role})
	if err != nil {
		zap.L().Error("error while preparing auth header", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add(usecase.AuthHeader, token)
	httputils.WriteJSON(w, http.StatusOK, converter.ConvertUserToProfileResponse(user))
}
