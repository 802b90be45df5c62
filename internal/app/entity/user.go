package entity

import "time"

type UserID string

func (u UserID) String() string {
	return string(u)
}

func (u UserID) Valid() bool {
	return len(u) != 0
}

type Role string

const (
	RoleClient     Role = `client`
	RoleFreelancer Role = `freelancer`
	RoleUniversity Role = `university`
	RoleAdmin      Role = `admin`
)

func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleFreelancer, RoleUniversity, RoleAdmin:
		return true
	default:
		return false
	}
}

// Registrable reports whether the role may be picked at self-registration.
func (r Role) Registrable() bool {
	return r.Valid() && r != RoleAdmin
}

type Profile struct {
	DisplayName string
	Bio         string
	University  string
	Skills      []string
}

type User struct {
	ID        UserID
	Login     string
	Password  string
	Role      Role
	Profile   Profile
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Actor is the authenticated caller of a state-changing operation.
type Actor struct {
	ID   UserID
	Role Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

func (a Actor) HasRole(roles ...Role) bool {
	for _, role := range roles {
		if a.Role == role {
			return true
		}
	}

	return false
}

type UserIDCtxKey struct{}

type UserIDCtx struct {
	UserID     UserID
	Role       Role
	StatusCode int
}

func CreateUserIDCtx(userID UserID, role Role, code int) UserIDCtx {
	return UserIDCtx{
		UserID:     userID,
		Role:       role,
		StatusCode: code,
	}
}

func (c UserIDCtx) Actor() Actor {
	return Actor{
		ID:   c.UserID,
		Role: c.Role,
	}
}

type Registration struct {
	Login    string
	Password string
	Role     Role
	Profile  Profile
}
