package handlers

import (
	"github.com/gin-gonic/gin"

	"inkpress/internal/application/tag/dto"
	"inkpress/internal/application/tag/usecases"
	"inkpress/internal/shared/errors"
	"inkpress/internal/shared/logger"
	"inkpress/internal/shared/utils"
)

type TagHandler struct {
	createTagUC *usecases.CreateTagUseCase
	deleteTagUC *usecases.DeleteTagUseCase
	listTagsUC  *usecases.ListTagsUseCase
	logger      logger.Interface
}

func NewTagHandler(
	createTagUC *usecases.CreateTagUseCase,
	deleteTagUC *usecases.DeleteTagUseCase,
	listTagsUC *usecases.ListTagsUseCase,
) *TagHandler {
	return &TagHandler{
		createTagUC: createTagUC,
		deleteTagUC: deleteTagUC,
		listTagsUC:  listTagsUC,
		logger:      logger.NewLogger(),
	}
}

// List handles GET /tags
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.listTagsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "", tags)
}

// Create handles POST /tags
func (h *TagHandler) Create(c *gin.Context) {
	var req dto.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create tag", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.createTagUC.Execute(c.Request.Context(), usecases.CreateTagCommand{
		Name: req.Name,
		Slug: req.Slug,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Tag created successfully")
}

// Delete handles DELETE /tags/:id
func (h *TagHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteTagUC.Execute(c.Request.Context(), usecases.DeleteTagCommand{TagID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
