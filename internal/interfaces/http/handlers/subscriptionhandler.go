package handlers

import (
	"github.com/gin-gonic/gin"

	"inkpress/internal/application/subscription/dto"
	"inkpress/internal/application/subscription/usecases"
	"inkpress/internal/shared/errors"
	"inkpress/internal/shared/logger"
	"inkpress/internal/shared/utils"
)

type SubscriptionHandler struct {
	confirmPaymentUC *usecases.ConfirmPaymentUseCase
	cancelUC         *usecases.CancelSubscriptionUseCase
	getCurrentUC     *usecases.GetCurrentSubscriptionUseCase
	listHistoryUC    *usecases.ListSubscriptionHistoryUseCase
	logger           logger.Interface
}

func NewSubscriptionHandler(
	confirmPaymentUC *usecases.ConfirmPaymentUseCase,
	cancelUC *usecases.CancelSubscriptionUseCase,
	getCurrentUC *usecases.GetCurrentSubscriptionUseCase,
	listHistoryUC *usecases.ListSubscriptionHistoryUseCase,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		confirmPaymentUC: confirmPaymentUC,
		cancelUC:         cancelUC,
		getCurrentUC:     getCurrentUC,
		listHistoryUC:    listHistoryUC,
		logger:           logger.NewLogger(),
	}
}

// ConfirmPayment handles POST /subscriptions
func (h *SubscriptionHandler) ConfirmPayment(c *gin.Context) {
	var req dto.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for confirm payment", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.confirmPaymentUC.Execute(c.Request.Context(), usecases.ConfirmPaymentCommand{
		UserID:      currentUserID(c),
		Provider:    req.Provider,
		PaymentData: req.PaymentData,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Subscription activated successfully")
}

// Cancel handles POST /subscriptions/:id/cancel
func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.cancelUC.Execute(c.Request.Context(), usecases.CancelSubscriptionCommand{
		SubscriptionID: id,
		UserID:         currentUserID(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Subscription cancelled successfully", nil)
}

// GetCurrent handles GET /subscriptions/current
func (h *SubscriptionHandler) GetCurrent(c *gin.Context) {
	result, err := h.getCurrentUC.Execute(c.Request.Context(), usecases.GetCurrentSubscriptionQuery{
		UserID: currentUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "", result)
}

// ListHistory handles GET /subscriptions
func (h *SubscriptionHandler) ListHistory(c *gin.Context) {
	result, err := h.listHistoryUC.Execute(c.Request.Context(), usecases.ListSubscriptionHistoryQuery{
		UserID: currentUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "", result)
}
