package handlers

import (
	"github.com/gin-gonic/gin"

	"inkpress/internal/application/admin/usecases"
	"inkpress/internal/shared/logger"
	"inkpress/internal/shared/utils"
)

type AdminHandler struct {
	dashboardStatsUC *usecases.GetDashboardStatsUseCase
	logger           logger.Interface
}

func NewAdminHandler(dashboardStatsUC *usecases.GetDashboardStatsUseCase) *AdminHandler {
	return &AdminHandler{
		dashboardStatsUC: dashboardStatsUC,
		logger:           logger.NewLogger(),
	}
}

// DashboardStats handles GET /admin/dashboard
func (h *AdminHandler) DashboardStats(c *gin.Context) {
	result, err := h.dashboardStatsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "", result)
}
