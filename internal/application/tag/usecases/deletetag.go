package usecases

import (
	"context"
	"fmt"

	"inkpress/internal/domain/article"
	"inkpress/internal/shared/errors"
	"inkpress/internal/shared/logger"
)

type DeleteTagCommand struct {
	TagID uint
}

type DeleteTagUseCase struct {
	tagRepo article.TagRepository
	logger  logger.Interface
}

func NewDeleteTagUseCase(tagRepo article.TagRepository, logger logger.Interface) *DeleteTagUseCase {
	return &DeleteTagUseCase{
		tagRepo: tagRepo,
		logger:  logger,
	}
}

// Execute removes the tag and detaches it from every article that carries it.
func (uc *DeleteTagUseCase) Execute(ctx context.Context, cmd DeleteTagCommand) error {
	if err := uc.tagRepo.Delete(ctx, cmd.TagID); err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to delete tag", "tag_id", cmd.TagID, "error", err)
		return fmt.Errorf("failed to delete tag: %w", err)
	}

	uc.logger.Infow("tag deleted", "tag_id", cmd.TagID)
	return nil
}
