package handler

import (
	"rolodex/internal/user/models"
)

// UserResponse is the public profile shape. The password hash never leaves
// the service; the token appears only in the login response.
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token,omitempty"`
}

func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{Username: user.Username, Name: user.Name}
}

func NewLoginResponse(user *models.User) UserResponse {
	resp := NewUserResponse(user)
	resp.Token = user.Token
	return resp
}
