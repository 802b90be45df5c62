package validator

import "github.com/avGenie/flexihire/internal/app/model"

func CreateUserRequest(user model.CreateUserRequest) bool {
	return len(user.Login) > 0 && len(user.Password) > 0 && len(user.Role) > 0
}

func UserCredentialsRequest(user model.UserCredentialsRequest) bool {
	return len(user.Login) > 0 && len(user.Password) > 0
}
