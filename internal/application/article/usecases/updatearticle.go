package usecases

import (
	"context"
	"fmt"
	"time"

	"inkpress/internal/application/article/dto"
	"inkpress/internal/domain/access"
	"inkpress/internal/domain/article"
	"inkpress/internal/shared/errors"
	"inkpress/internal/shared/logger"
	"inkpress/internal/shared/services/content"
)

type UpdateArticleCommand struct {
	ArticleID     uint
	Title         string
	Slug          string
	Excerpt       *string
	Content       string
	ContentFormat string
	IsPremium     bool
	IsPublished   bool
	PublishedAt   *time.Time
	TagIDs        []uint
	Viewer        *access.Viewer
}

type UpdateArticleUseCase struct {
	articleRepo article.Repository
	tagRepo     article.TagRepository
	renderer    content.Renderer
	logger      logger.Interface
}

func NewUpdateArticleUseCase(
	articleRepo article.Repository,
	tagRepo article.TagRepository,
	renderer content.Renderer,
	logger logger.Interface,
) *UpdateArticleUseCase {
	return &UpdateArticleUseCase{
		articleRepo: articleRepo,
		tagRepo:     tagRepo,
		renderer:    renderer,
		logger:      logger,
	}
}

func (uc *UpdateArticleUseCase) Execute(ctx context.Context, cmd UpdateArticleCommand) (*dto.ArticleResponse, error) {
	entity, err := uc.articleRepo.FindByID(ctx, cmd.ArticleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load article: %w", err)
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("article not found")
	}

	if !access.CanMutate(entity, cmd.Viewer) {
		return nil, errors.NewForbiddenError("not allowed to edit this article")
	}

	rendered, err := uc.renderer.RenderHTML(cmd.Content, cmd.ContentFormat)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.TagIDs != nil {
		if err := uc.validateTagIDs(ctx, cmd.TagIDs); err != nil {
			return nil, err
		}
	}

	if err := entity.Update(
		cmd.Title,
		cmd.Slug,
		cmd.Excerpt,
		rendered,
		cmd.IsPremium,
		cmd.IsPublished,
		cmd.PublishedAt,
	); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.articleRepo.Update(ctx, entity); err != nil {
		if errors.IsConflictError(err) || errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update article", "article_id", cmd.ArticleID, "error", err)
		return nil, fmt.Errorf("failed to update article: %w", err)
	}

	// nil means leave the tag set alone; an empty slice detaches everything.
	if cmd.TagIDs != nil {
		if err := uc.articleRepo.SyncTags(ctx, entity.ID(), cmd.TagIDs); err != nil {
			uc.logger.Errorw("failed to sync tags", "article_id", entity.ID(), "error", err)
			return nil, fmt.Errorf("failed to sync article tags: %w", err)
		}
	}

	updated, err := uc.articleRepo.FindByID(ctx, entity.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to reload updated article: %w", err)
	}

	uc.logger.Infow("article updated", "article_id", entity.ID(), "slug", entity.Slug())

	return dto.ArticleToResponse(updated), nil
}

func (uc *UpdateArticleUseCase) validateTagIDs(ctx context.Context, tagIDs []uint) error {
	if len(tagIDs) == 0 {
		return nil
	}

	tags, err := uc.tagRepo.GetByIDs(ctx, tagIDs)
	if err != nil {
		return fmt.Errorf("failed to load tags: %w", err)
	}

	found := make(map[uint]bool, len(tags))
	for _, t := range tags {
		found[t.ID()] = true
	}
	for _, id := range tagIDs {
		if !found[id] {
			return errors.NewValidationError(fmt.Sprintf("tag %d does not exist", id))
		}
	}
	return nil
}
