package usecases

import (
	"context"
	"fmt"
	"time"

	"inkpress/internal/application/admin/dto"
	articleDTO "inkpress/internal/application/article/dto"
	userDTO "inkpress/internal/application/user/dto"
	"inkpress/internal/domain/article"
	"inkpress/internal/domain/subscription"
	"inkpress/internal/domain/user"
	"inkpress/internal/shared/logger"
	"inkpress/internal/shared/mapper"
)

const recentLimit = 5

type GetDashboardStatsUseCase struct {
	userRepo         user.Repository
	articleRepo      article.Repository
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewGetDashboardStatsUseCase(
	userRepo user.Repository,
	articleRepo article.Repository,
	subscriptionRepo subscription.Repository,
	logger logger.Interface,
) *GetDashboardStatsUseCase {
	return &GetDashboardStatsUseCase{
		userRepo:         userRepo,
		articleRepo:      articleRepo,
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *GetDashboardStatsUseCase) Execute(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	now := time.Now().UTC()
	stats := &dto.DashboardStatsResponse{}

	var err error
	if stats.TotalUsers, err = uc.userRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if stats.TotalArticles, err = uc.articleRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count articles: %w", err)
	}
	if stats.PublishedArticles, err = uc.articleRepo.CountPublished(ctx); err != nil {
		return nil, fmt.Errorf("failed to count published articles: %w", err)
	}
	if stats.PremiumArticles, err = uc.articleRepo.CountPremium(ctx); err != nil {
		return nil, fmt.Errorf("failed to count premium articles: %w", err)
	}
	if stats.ActiveSubscriptions, err = uc.subscriptionRepo.CountActivePremium(ctx, now); err != nil {
		return nil, fmt.Errorf("failed to count active subscriptions: %w", err)
	}
	if stats.MonthlyRevenue, err = uc.subscriptionRepo.SumActivePremiumRevenue(ctx, now); err != nil {
		return nil, fmt.Errorf("failed to sum subscription revenue: %w", err)
	}

	recentArticles, err := uc.articleRepo.ListRecent(ctx, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent articles: %w", err)
	}
	stats.RecentArticles = articleDTO.ArticlesToSummaries(recentArticles)

	recentUsers, err := uc.userRepo.ListRecent(ctx, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent users: %w", err)
	}
	stats.RecentUsers = mapper.MapSlice(recentUsers, userDTO.UserToResponse)

	return stats, nil
}
