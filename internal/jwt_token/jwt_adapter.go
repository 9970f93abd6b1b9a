package jwttoken

import (
	"contactregistry/internal/platform/middleware"
)

// MiddlewareAdapter bridges JWTService to the auth middleware's validator
// interface.
type MiddlewareAdapter struct {
	service *JWTService
}

func NewMiddlewareAdapter(service *JWTService) *MiddlewareAdapter {
	return &MiddlewareAdapter{service: service}
}

func (a *MiddlewareAdapter) ValidateToken(tokenString string) (*middleware.TokenClaims, error) {
	claims, err := a.service.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return &middleware.TokenClaims{
		Username: claims.Username,
		ClientID: claims.ClientID,
	}, nil
}
