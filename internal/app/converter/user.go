package converter

import (
	"github.com/avGenie/flexihire/internal/app/entity"
	"github.com/avGenie/flexihire/internal/app/model"
)

func ConvertCreateUserRequestToRegistration(request model.CreateUserRequest) entity.Registration {
	return entity.Registration{
		Login:    request.Login,
		Password: request.Password,
		Role:     entity.Role(request.Role),
		Profile:  ConvertProfileRequestToProfile(request.Profile),
	}
}

func ConvertProfileRequestToProfile(request model.ProfileRequest) entity.Profile {
	return entity.Profile{
		DisplayName: request.DisplayName,
		Bio:         request.Bio,
		University:  request.University,
		Skills:      request.Skills,
	}
}

func ConvertUserToProfileResponse(user entity.User) model.ProfileResponse {
	skills := user.Profile.Skills
	if skills == nil {
		skills = []string{}
	}

	return model.ProfileResponse{
		ID:          user.ID.String(),
		Login:       user.Login,
		Role:        string(user.Role),
		DisplayName: user.Profile.DisplayName,
		Bio:         user.Profile.Bio,
		University:  user.Profile.University,
		Skills:      skills,
		CreatedAt:   formatTime(user.CreatedAt),
		UpdatedAt:   formatTime(user.UpdatedAt),
	}
}
