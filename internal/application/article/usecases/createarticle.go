package usecases

import (
	"context"
	"fmt"
	"time"

	"inkpress/internal/application/article/dto"
	"inkpress/internal/domain/article"
	"inkpress/internal/shared/errors"
	"inkpress/internal/shared/logger"
	"inkpress/internal/shared/services/content"
)

type CreateArticleCommand struct {
	Title         string
	Slug          string
	Excerpt       *string
	Content       string
	ContentFormat string
	IsPremium     bool
	IsPublished   bool
	PublishedAt   *time.Time
	TagIDs        []uint
	AuthorID      uint
}

type CreateArticleUseCase struct {
	articleRepo article.Repository
	tagRepo     article.TagRepository
	renderer    content.Renderer
	logger      logger.Interface
}

func NewCreateArticleUseCase(
	articleRepo article.Repository,
	tagRepo article.TagRepository,
	renderer content.Renderer,
	logger logger.Interface,
) *CreateArticleUseCase {
	return &CreateArticleUseCase{
		articleRepo: articleRepo,
		tagRepo:     tagRepo,
		renderer:    renderer,
		logger:      logger,
	}
}

func (uc *CreateArticleUseCase) Execute(ctx context.Context, cmd CreateArticleCommand) (*dto.ArticleResponse, error) {
	rendered, err := uc.renderer.RenderHTML(cmd.Content, cmd.ContentFormat)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.validateTagIDs(ctx, cmd.TagIDs); err != nil {
		return nil, err
	}

	entity, err := article.NewArticle(
		cmd.Title,
		cmd.Slug,
		cmd.Excerpt,
		rendered,
		cmd.IsPremium,
		cmd.IsPublished,
		cmd.PublishedAt,
		cmd.AuthorID,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.articleRepo.Create(ctx, entity); err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create article", "title", cmd.Title, "error", err)
		return nil, fmt.Errorf("failed to create article: %w", err)
	}

	if len(cmd.TagIDs) > 0 {
		if err := uc.articleRepo.SyncTags(ctx, entity.ID(), cmd.TagIDs); err != nil {
			uc.logger.Errorw("failed to sync tags for new article", "article_id", entity.ID(), "error", err)
			return nil, fmt.Errorf("failed to sync article tags: %w", err)
		}
	}

	// Reload so the response carries the author name and tag associations.
	created, err := uc.articleRepo.FindByID(ctx, entity.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to reload created article: %w", err)
	}

	uc.logger.Infow("article created",
		"article_id", entity.ID(),
		"slug", entity.Slug(),
		"is_premium", entity.IsPremium(),
		"is_published", entity.IsPublished())

	return dto.ArticleToResponse(created), nil
}

func (uc *CreateArticleUseCase) validateTagIDs(ctx context.Context, tagIDs []uint) error {
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
