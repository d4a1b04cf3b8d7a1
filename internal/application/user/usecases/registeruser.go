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

type RegisterUserCommand struct {
	Name     string
	Email    string
	Password string
}

type RegisterUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewRegisterUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))

	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("email already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	entity, err := user.NewUser(cmd.Name, email, hash, false)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, entity); err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	pair, err := uc.tokens.Generate(entity.ID(), entity.IsAdmin())
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "user_id", entity.ID(), "error", err)
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	uc.logger.Infow("user registered", "user_id", entity.ID())

	return &dto.AuthResponse{
		User:         dto.UserToResponse(entity),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
