package usecases

import (
	"context"
	"fmt"

	"inkpress/internal/application/tag/dto"
	"inkpress/internal/domain/article"
	"inkpress/internal/shared/logger"
)

type ListTagsUseCase struct {
	tagRepo article.TagRepository
	logger  logger.Interface
}

func NewListTagsUseCase(tagRepo article.TagRepository, logger logger.Interface) *ListTagsUseCase {
	return &ListTagsUseCase{
		tagRepo: tagRepo,
		logger:  logger,
	}
}

func (uc *ListTagsUseCase) Execute(ctx context.Context) ([]*dto.TagResponse, error) {
	tags, err := uc.tagRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list tags", "error", err)
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	return dto.TagsToResponses(tags), nil
}
