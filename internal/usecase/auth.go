package usecase

import (
	"medverify/internal/pkg/apikey"
	"medverify/internal/pkg/errs"
	"medverify/internal/pkg/jwt"
)

var (
	ErrInvalidAPIKey   = errs.New("invalid api key")
	ErrTokenGeneration = errs.New("token generation failed")
	ErrTokenValidation = errs.New("token validation failed")
)

// AuthUseCase exchanges the configured manufacturer API key for an opaque
// bearer credential and validates it for the middleware. There are no user
// accounts or sessions beyond this.
type AuthUseCase interface {
	IssueToken(key string) (string, error)
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

type authUseCaseImpl struct {
	keyHash    string
	jwtService *jwt.Service
}

func NewAuthUseCase(keyHash string, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		keyHash:    keyHash,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) IssueToken(key string) (string, error) {
	if err := apikey.Compare(a.keyHash, key); err != nil {
		return "", ErrInvalidAPIKey
	}

	token, err := a.jwtService.GenerateToken(jwt.RoleManufacturer, jwt.RoleManufacturer)
	if err != nil {
		return "", ErrTokenGeneration
	}
	return token, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (*jwt.Claims, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, ErrTokenValidation
	}
	return claims, nil
}
