package auth

import (
	userUsecases "inkpress/internal/application/user/usecases"
)

// TokenIssuerAdapter adapts JWTService to the application-layer TokenIssuer
// interface.
type TokenIssuerAdapter struct {
	svc *JWTService
}

func NewTokenIssuerAdapter(svc *JWTService) *TokenIssuerAdapter {
	return &TokenIssuerAdapter{svc: svc}
}

func (a *TokenIssuerAdapter) Generate(userID uint, isAdmin bool) (*userUsecases.TokenPair, error) {
	pair, err := a.svc.Generate(userID, isAdmin)
	if err != nil {
		return nil, err
	}
	return &userUsecases.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
