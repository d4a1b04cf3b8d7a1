package usecases

import (
	"context"
	"fmt"

	"inkpress/internal/application/tag/dto"
	"inkpress/internal/domain/article"
	"inkpress/internal/shared/errors"
	"inkpress/internal/shared/logger"
)

type CreateTagCommand struct {
	Name string
	Slug string
}

type CreateTagUseCase struct {
	tagRepo article.TagRepository
	logger  logger.Interface
}

func NewCreateTagUseCase(tagRepo article.TagRepository, logger logger.Interface) *CreateTagUseCase {
	return &CreateTagUseCase{
		tagRepo: tagRepo,
		logger:  logger,
	}
}

func (uc *CreateTagUseCase) Execute(ctx context.Context, cmd CreateTagCommand) (*dto.TagResponse, error) {
	entity, err := article.NewTag(cmd.Name, cmd.Slug)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.tagRepo.Create(ctx, entity); err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create tag", "name", cmd.Name, "error", err)
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	uc.logger.Infow("tag created", "tag_id", entity.ID(), "name", entity.Name())
	return dto.TagToResponse(entity), nil
}
