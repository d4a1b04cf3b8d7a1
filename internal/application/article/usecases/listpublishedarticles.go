package usecases

import (
	"context"
	"fmt"

	"inkpress/internal/application/article/dto"
	"inkpress/internal/domain/article"
	"inkpress/internal/shared/logger"
	"inkpress/internal/shared/utils"
)

type ListPublishedArticlesQuery struct {
	Pagination utils.Pagination
}

type ListPublishedArticlesResult struct {
	Articles []*dto.ArticleSummaryResponse
	Total    int64
}

type ListPublishedArticlesUseCase struct {
	articleRepo article.Repository
	logger      logger.Interface
}

func NewListPublishedArticlesUseCase(articleRepo article.Repository, logger logger.Interface) *ListPublishedArticlesUseCase {
	return &ListPublishedArticlesUseCase{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

// Execute lists published articles newest first. Summaries never carry
// content, so premium gating does not apply to the listing.
func (uc *ListPublishedArticlesUseCase) Execute(ctx context.Context, query ListPublishedArticlesQuery) (*ListPublishedArticlesResult, error) {
	articles, total, err := uc.articleRepo.ListPublished(ctx, query.Pagination.Page, query.Pagination.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list published articles", "error", err)
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}

	return &ListPublishedArticlesResult{
		Articles: dto.ArticlesToSummaries(articles),
		Total:    total,
	}, nil
}
