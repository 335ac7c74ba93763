package usecase

import (
	authdomain "github.com/CHANDANgig/Personalized-To-do-list-app/internal/auth/domain"
	authdto "github.com/CHANDANgig/Personalized-To-do-list-app/internal/auth/dto"
)

// AuthUsecase handles user identity. Login and logout are local state
// transitions: no external handshake, no refresh rotation. The access
// token only routes requests to their collection scope.
type AuthUsecase interface {
	Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error)
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	ValidateToken(tokenString string) (*authdomain.User, error)
}
