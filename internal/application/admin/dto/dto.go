package dto

import (
	articleDTO "inkpress/internal/application/article/dto"
	userDTO "inkpress/internal/application/user/dto"
)

// DashboardStatsResponse aggregates the numbers shown on the admin dashboard.
type DashboardStatsResponse struct {
	TotalUsers          int64   `json:"total_users"`
	TotalArticles       int64   `json:"total_articles"`
	PublishedArticles   int64   `json:"published_articles"`
	PremiumArticles     int64   `json:"premium_articles"`
	ActiveSubscriptions int64   `json:"active_subscriptions"`
	MonthlyRevenue      float64 `json:"monthly_revenue"`

	RecentArticles []*articleDTO.ArticleSummaryResponse `json:"recent_articles"`
	RecentUsers    []*userDTO.UserResponse              `json:"recent_users"`
}
