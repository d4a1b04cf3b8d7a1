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
)

type GetArticleBySlugQuery struct {
	Slug   string
	Viewer *access.Viewer
}

// GetArticleResult carries the access decision alongside the matching
// projection. Exactly one of Article and Teaser is set.
type GetArticleResult struct {
	Decision access.Decision
	Article  *dto.ArticleResponse
	Teaser   *dto.ArticleTeaserResponse
}

type GetArticleBySlugUseCase struct {
	articleRepo article.Repository
	evaluator   *access.Evaluator
	logger      logger.Interface
}

func NewGetArticleBySlugUseCase(
	articleRepo article.Repository,
	evaluator *access.Evaluator,
	logger logger.Interface,
) *GetArticleBySlugUseCase {
	return &GetArticleBySlugUseCase{
		articleRepo: articleRepo,
		evaluator:   evaluator,
		logger:      logger,
	}
}

// Execute resolves the slug and classifies access. A hidden article returns
// the same not-found error as a slug that does not resolve, so existence
// cannot be probed.
func (uc *GetArticleBySlugUseCase) Execute(ctx context.Context, query GetArticleBySlugQuery) (*GetArticleResult, error) {
	entity, err := uc.articleRepo.FindBySlug(ctx, query.Slug)
	if err != nil {
		return nil, fmt.Errorf("failed to load article: %w", err)
	}

	decision, err := uc.evaluator.Classify(ctx, entity, query.Viewer, time.Now().UTC())
	if err != nil {
		uc.logger.Errorw("access classification failed", "slug", query.Slug, "error", err)
		return nil, fmt.Errorf("failed to classify access: %w", err)
	}

	switch decision {
	case access.DecisionFull:
		return &GetArticleResult{Decision: decision, Article: dto.ArticleToResponse(entity)}, nil
	case access.DecisionTeaser:
		return &GetArticleResult{Decision: decision, Teaser: dto.ArticleToTeaser(entity)}, nil
	default:
		return nil, errors.NewNotFoundError("article not found")
	}
}
