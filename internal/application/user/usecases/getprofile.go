package usecases

import (
	"context"
	"fmt"

	"inkpress/internal/application/user/dto"
	"inkpress/internal/domain/user"
	"inkpress/internal/shared/errors"
	"inkpress/internal/shared/logger"
)

type GetProfileQuery struct {
	UserID uint
}

type GetProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetProfileUseCase(userRepo user.Repository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, query GetProfileQuery) (*dto.UserResponse, error) {
	entity, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", query.UserID, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	return dto.UserToResponse(entity), nil
}
