package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avGenie/flexihire/internal/app/controller/http/auth/mock"
	"github.com/avGenie/flexihire/internal/app/entity"
	"github.com/avGenie/flexihire/internal/app/usecase/crypto"
	"github.com/avGenie/flexihire/internal/app/model"
	usecase "github.com/avGenie/flexihire/internal/app/usecase/converter"
	err_usecase "github.com/avGenie/flexihire/internal/app/usecase/errors"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	crypto.ConfigureTokens("test-secret", 0)
}

var (
	inputCorrect = strings.TrimSpace(`
	{
		"login": "login",
		"password": "password",
		"role": "freelancer",
		"profile": {"displayName": "Ann"}
	}`)

	inputEmptyLogin = strings.TrimSpace(`
	{
		"login": "",
		"password": "password",
		"role": "client"
	}`)

	inputEmptyPassword = strings.TrimSpace(`
	{
		"login": "login",
		"password": "",
		"role": "client"
	}`)

	inputCredentials = strings.TrimSpace(`
	{
		"login": "login",
		"password": "password"
	}`)

	inputInvalid = `<invalid json>`

	storedUser = entity.User{
		ID:      "ac2a4811-4f10-487f-bde3-e39a14af7cd8",
		Login:   "login",
		Role:    entity.RoleFreelancer,
		Profile: entity.Profile{DisplayName: "Ann"},
	}
)

func TestCreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockUserAuthenticator(ctrl)

	type want struct {
		statusCode int
		reason     model.ErrorReason
	}
	tests := []struct {
		name            string
		body            string
		registerErr     error
		isCreateUser    bool
		authHeaderEmpty bool

		want want
	}{
		{
			name:            "correct input data",
			body:            inputCorrect,
			isCreateUser:    true,
			authHeaderEmpty: false,

			want: want{
				statusCode: http.StatusOK,
			},
		},
		{
			name:            "login exists in storage",
			body:            inputCorrect,
			registerErr:     fmt.Errorf("%w: login exists", err_usecase.ErrConflict),
			isCreateUser:    true,
			authHeaderEmpty: true,

			want: want{
				statusCode: http.StatusConflict,
				reason:     model.ReasonConflict,
			},
		},
		{
			name:            "admin role requested",
			body:            inputCorrect,
			registerErr:     fmt.Errorf("%w: role", err_usecase.ErrValidation),
			isCreateUser:    true,
			authHeaderEmpty: true,

			want: want{
				statusCode: http.StatusBadRequest,
				reason:     model.ReasonValidation,
			},
		},
		{
			name:            "storage error",
			body:            inputCorrect,
			registerErr:     errors.New(""),
			isCreateUser:    true,
			authHeaderEmpty: true,

			want: want{
				statusCode: http.StatusInternalServerError,
				reason:     model.ReasonStorage,
			},
		},
		{
			name:            "invalid user credentials",
			body:            inputInvalid,
			authHeaderEmpty: true,

			want: want{
				statusCode: http.StatusBadRequest,
				reason:     model.ReasonValidation,
			},
		},
		{
			name:            "empty login in user credentials",
			body:            inputEmptyLogin,
			authHeaderEmpty: true,

			want: want{
				statusCode: http.StatusBadRequest,
				reason:     model.ReasonValidation,
			},
		},
		{
			name:            "empty password in user credentials",
			body:            inputEmptyPassword,
			authHeaderEmpty: true,

			want: want{
				statusCode: http.StatusBadRequest,
				reason:     model.ReasonValidation,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(test.body))
			writer := httptest.NewRecorder()

			if test.isCreateUser {
				s.EXPECT().
					Register(gomock.Any(), entity.Registration{
						Login:    "login",
						Password: "password",
						Role:     entity.RoleFreelancer,
						Profile:  entity.Profile{DisplayName: "Ann"},
					}).
					Return(storedUser, test.registerErr)
			}

			handler := New(s)
			handler.CreateUser()(writer, request)

			res := writer.Result()
			defer res.Body.Close()

			assert.Equal(t, test.want.statusCode, res.StatusCode)

			authHeader := res.Header.Get(usecase.AuthHeader)
			assert.Equal(t, test.authHeaderEmpty, len(authHeader) == 0)

			if test.authHeaderEmpty {
				var body model.ErrorResponse
				require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
				assert.Equal(t, test.want.reason, body.Reason)
				return
			}

			actor, err := usecase.GetActorFromAuthHeader(authHeader)
			require.NoError(t, err)
			assert.Equal(t, entity.Actor{ID: storedUser.ID, Role: storedUser.Role}, actor)

			var body model.ProfileResponse
			require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
			assert.Equal(t, "Ann", body.DisplayName)
		})
	}
}

func TestAuthenticateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockUserAuthenticator(ctrl)

	tests := []struct {
		name       string
		body       string
		isLogin    bool
		loginErr   error
		statusCode int
	}{
		{
			name:       "correct credentials",
			body:       inputCredentials,
			isLogin:    true,
			statusCode: http.StatusOK,
		},
		{
			name:       "wrong credentials",
			body:       inputCredentials,
			isLogin:    true,
			loginErr:   err_usecase.ErrInvalidCredentials,
			statusCode: http.StatusUnauthorized,
		},
		{
			name:       "invalid body",
			body:       inputInvalid,
			statusCode: http.StatusBadRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(test.body))
			writer := httptest.NewRecorder()

			if test.isLogin {
				s.EXPECT().Login(gomock.Any(), "login", "password").Return(storedUser, test.loginErr)
			}

			handler := New(s)
			handler.AuthenticateUser()(writer, request)

			res := writer.Result()
			defer res.Body.Close()

			assert.Equal(t, test.statusCode, res.StatusCode)
			assert.Equal(t, test.statusCode == http.StatusOK, len(res.Header.Get(usecase.AuthHeader)) != 0)
		})
	}
}

func TestProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockUserAuthenticator(ctrl)
	actor := entity.Actor{ID: storedUser.ID, Role: storedUser.Role}

	withActor := func(r *http.Request) *http.Request {
		userIDCtx := entity.CreateUserIDCtx(actor.ID, actor.Role, http.StatusOK)
		return r.WithContext(context.WithValue(r.Context(), entity.UserIDCtxKey{}, userIDCtx))
	}

	t.Run("get profile", func(t *testing.T) {
		s.EXPECT().GetProfile(gomock.Any(), actor).Return(storedUser, nil)

		writer := httptest.NewRecorder()
		handler := New(s)
		handler.GetProfile()(writer, withActor(httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)))

		assert.Equal(t, http.StatusOK, writer.Code)

		var body model.ProfileResponse
		require.NoError(t, json.NewDecoder(writer.Body).Decode(&body))
		assert.Equal(t, storedUser.ID.String(), body.ID)
		assert.Equal(t, "freelancer", body.Role)
	})

	t.Run("update profile", func(t *testing.T) {
		updated := storedUser
		updated.Profile = entity.Profile{DisplayName: "Ann Lee", Skills: []string{"go"}}

		s.EXPECT().
			UpdateProfile(gomock.Any(), actor, entity.Profile{DisplayName: "Ann Lee", Skills: []string{"go"}}).
			Return(updated, nil)

		body := strings.NewReader(`{"displayName": "Ann Lee", "skills": ["go"]}`)
		writer := httptest.NewRecorder()
		handler := New(s)
		handler.UpdateProfile()(writer, withActor(httptest.NewRequest(http.MethodPut, "/api/user/profile", body)))

		assert.Equal(t, http.StatusOK, writer.Code)

		var response model.ProfileResponse
		require.NoError(t, json.NewDecoder(writer.Body).Decode(&response))
		assert.Equal(t, []string{"go"}, response.Skills)
	})

	t.Run("no user in context", func(t *testing.T) {
		writer := httptest.NewRecorder()
		handler := New(s)
		handler.GetProfile()(writer, httptest.NewRequest(http.MethodGet, "/api/user/profile", nil))

		assert.Equal(t, http.StatusUnauthorized, writer.Code)
	})
}
