package handlers

import (
	"github.com/gin-gonic/gin"

	"inkpress/internal/application/user/dto"
	"inkpress/internal/application/user/usecases"
	"inkpress/internal/shared/errors"
	"inkpress/internal/shared/logger"
	"inkpress/internal/shared/utils"
)

type AuthHandler struct {
	registerUC   *usecases.RegisterUserUseCase
	loginUC      *usecases.LoginUserUseCase
	getProfileUC *usecases.GetProfileUseCase
	logger       logger.Interface
}

func NewAuthHandler(
	registerUC *usecases.RegisterUserUseCase,
	loginUC *usecases.LoginUserUseCase,
	getProfileUC *usecases.GetProfileUseCase,
) *AuthHandler {
	return &AuthHandler{
		registerUC:   registerUC,
		loginUC:      loginUC,
		getProfileUC: getProfileUC,
		logger:       logger.NewLogger(),
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterUserCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Account created successfully")
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginUserCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Logged in successfully", result)
}

// Profile handles GET /auth/profile
func (h *AuthHandler) Profile(c *gin.Context) {
	result, err := h.getProfileUC.Execute(c.Request.Context(), usecases.GetProfileQuery{
		UserID: currentUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "", result)
}
