package usecases

import (
	"context"
	"fmt"
	"strings"

	"inkpress/internal/application/user/dto"
	"inkpress/internal/domain/user"
	"inkpress/internal/shared/errors"
	"inkpress/internal/shared/logger"
)

type LoginUserCommand struct {
	Email    string
	Password string
}

type LoginUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUserUseCase) Execute(ctx context.Context, cmd LoginUserCommand) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))

	entity, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	// One generic error for unknown email and wrong password.
	if entity == nil {
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	if err := uc.hasher.Verify(cmd.Password, entity.PasswordHash()); err != nil {
		uc.logger.Warnw("failed login attempt", "user_id", entity.ID())
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	pair, err := uc.tokens.Generate(entity.ID(), entity.IsAdmin())
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "user_id", entity.ID(), "error", err)
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	uc.logger.Infow("user logged in", "user_id", entity.ID())

	return &dto.AuthResponse{
		User:         dto.UserToResponse(entity),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
