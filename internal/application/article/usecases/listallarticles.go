package usecases

import (
	"context"
	"fmt"

	"inkpress/internal/application/article/dto"
	"inkpress/internal/domain/article"
	"inkpress/internal/shared/logger"
	"inkpress/internal/shared/utils"
)

type ListAllArticlesQuery struct {
	Pagination utils.Pagination
}

type ListAllArticlesResult struct {
	Articles []*dto.ArticleSummaryResponse
	Total    int64
}

// ListAllArticlesUseCase lists every article regardless of publication state.
// Admin surface only; the router must gate it.
type ListAllArticlesUseCase struct {
	articleRepo article.Repository
	logger      logger.Interface
}

func NewListAllArticlesUseCase(articleRepo article.Repository, logger logger.Interface) *ListAllArticlesUseCase {
	return &ListAllArticlesUseCase{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

func (uc *ListAllArticlesUseCase) Execute(ctx context.Context, query ListAllArticlesQuery) (*ListAllArticlesResult, error) {
	articles, total, err := uc.articleRepo.ListAll(ctx, query.Pagination.Page, query.Pagination.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list articles", "error", err)
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}

	return &ListAllArticlesResult{
		Articles: dto.ArticlesToSummaries(articles),
		Total:    total,
	}, nil
}
