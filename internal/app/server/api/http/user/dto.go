package user

import "inotebook/internal/domain/user"

type registerInput struct {
	Body RegisterRequest
}

type RegisterRequest struct {
	Name     string `json:"name,omitempty" doc:"Display name, at least 5 characters"`
	Email    string `json:"email,omitempty" doc:"E-mail address, unique across users"`
	Password string `json:"password,omitempty" doc:"Plaintext password, at least 8 characters"`
}

type loginInput struct {
	Body LoginRequest
}

type LoginRequest struct {
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

type authTokenOutput struct {
	Body AuthTokenResponse
}

type AuthTokenResponse struct {
	AuthToken string `json:"authToken"`
}

type profileOutput struct {
	Body user.User
}
