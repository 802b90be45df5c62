package model

type CreateUserRequest struct {
	Login    string         `json:"login"`
	Password string         `json:"password"`
	Role     string         `json:"role"`
	Profile  ProfileRequest `json:"profile"`
}

type UserCredentialsRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type ProfileRequest struct {
	DisplayName string   `json:"displayName"`
	Bio         string   `json:"bio"`
	University  string   `json:"university"`
	Skills      []string `json:"skills"`
}

type ProfileResponse struct {
	ID          string   `json:"id"`
	Login       string   `json:"login"`
	Role        string   `json:"role"`
	DisplayName string   `json:"displayName"`
	Bio         string   `json:"bio"`
	University  string   `json:"university"`
	Skills      []string `json:"skills"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}
