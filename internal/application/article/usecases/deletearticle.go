package usecases

import (
	"context"
	"fmt"

	"inkpress/internal/domain/access"
	"inkpress/internal/domain/article"
	"inkpress/internal/shared/errors"
	"inkpress/internal/shared/logger"
)

type DeleteArticleCommand struct {
	ArticleID uint
	Viewer    *access.Viewer
}

type DeleteArticleUseCase struct {
	articleRepo article.Repository
	logger      logger.Interface
}

func NewDeleteArticleUseCase(articleRepo article.Repository, logger logger.Interface) *DeleteArticleUseCase {
	return &DeleteArticleUseCase{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

func (uc *DeleteArticleUseCase) Execute(ctx context.Context, cmd DeleteArticleCommand) error {
	entity, err := uc.articleRepo.FindByID(ctx, cmd.ArticleID)
	if err != nil {
		return fmt.Errorf("failed to load article: %w", err)
	}
	if entity == nil {
		return errors.NewNotFoundError("article not found")
	}

	if !access.CanMutate(entity, cmd.Viewer) {
		return errors.NewForbiddenError("not allowed to delete this article")
	}

	if err := uc.articleRepo.Delete(ctx, cmd.ArticleID); err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to delete article", "article_id", cmd.ArticleID, "error", err)
		return fmt.Errorf("failed to delete article: %w", err)
	}

	uc.logger.Infow("article deleted", "article_id", cmd.ArticleID, "slug", entity.Slug())
	return nil
}
