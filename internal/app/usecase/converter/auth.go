package usecase

import (
	"fmt"
	"strings"

	"github.com/avGenie/flexihire/internal/app/entity"
	"github.com/avGenie/flexihire/internal/app/usecase/crypto"
)

const (
	bearerHeader = "Bearer"

	AuthHeader = "Authorization"
)

func GetActorFromAuthHeader(header string) (entity.Actor, error) {
	headerParts := strings.Split(header, " ")
	if len(headerParts) != 2 {
		return entity.Actor{}, fmt.Errorf("auth header doesn't contain two parts")
	}

	if headerParts[0] != bearerHeader {
		return entity.Actor{}, fmt.Errorf("first auth header part is invalid")
	}

	claims, err := crypto.GetUserClaims(headerParts[1])
	if err != nil {
		return entity.Actor{}, fmt.Errorf("error while getting user claims from token: %w", err)
	}

	return entity.Actor{ID: claims.UserID, Role: claims.Role}, nil
}

func SetActorToAuthHeaderFormat(actor entity.Actor) (string, error) {
	token, err := crypto.BuildJWTString(actor.ID, actor.Role)
	if err != nil {
		return "", fmt.Errorf("error while creating jwt token: %w", err)
	}

	return fmt.Sprintf("%s %s", bearerHeader, token), nil
}
