package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"inkpress/internal/application/article/dto"
	"inkpress/internal/application/article/usecases"
	"inkpress/internal/shared/errors"
	"inkpress/internal/shared/logger"
	"inkpress/internal/shared/utils"
)

type ArticleHandler struct {
	createArticleUC *usecases.CreateArticleUseCase
	updateArticleUC *usecases.UpdateArticleUseCase
	deleteArticleUC *usecases.DeleteArticleUseCase
	getBySlugUC     *usecases.GetArticleBySlugUseCase
	listPublishedUC *usecases.ListPublishedArticlesUseCase
	listAllUC       *usecases.ListAllArticlesUseCase
	logger          logger.Interface
}

func NewArticleHandler(
	createArticleUC *usecases.CreateArticleUseCase,
	updateArticleUC *usecases.UpdateArticleUseCase,
	deleteArticleUC *usecases.DeleteArticleUseCase,
	getBySlugUC *usecases.GetArticleBySlugUseCase,
	listPublishedUC *usecases.ListPublishedArticlesUseCase,
	listAllUC *usecases.ListAllArticlesUseCase,
) *ArticleHandler {
	return &ArticleHandler{
		createArticleUC: createArticleUC,
		updateArticleUC: updateArticleUC,
		deleteArticleUC: deleteArticleUC,
		getBySlugUC:     getBySlugUC,
		listPublishedUC: listPublishedUC,
		listAllUC:       listAllUC,
		logger:          logger.NewLogger(),
	}
}

// ListPublished handles GET /articles
func (h *ArticleHandler) ListPublished(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listPublishedUC.Execute(c.Request.Context(), usecases.ListPublishedArticlesQuery{
		Pagination: pagination,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Articles, result.Total, pagination.Page, pagination.PageSize)
}

// GetBySlug handles GET /articles/:slug. The response shape depends on the
// access decision: full projection, teaser projection, or not found.
func (h *ArticleHandler) GetBySlug(c *gin.Context) {
	result, err := h.getBySlugUC.Execute(c.Request.Context(), usecases.GetArticleBySlugQuery{
		Slug:   c.Param("slug"),
		Viewer: viewerFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result.Article != nil {
		utils.SuccessResponse(c, 200, "", gin.H{"access": result.Decision.String(), "article": result.Article})
		return
	}
	utils.SuccessResponse(c, 200, "", gin.H{"access": result.Decision.String(), "article": result.Teaser})
}

// Create handles POST /articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var req dto.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create article", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	isPublished := true
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}

	result, err := h.createArticleUC.Execute(c.Request.Context(), usecases.CreateArticleCommand{
		Title:         req.Title,
		Slug:          req.Slug,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		ContentFormat: req.ContentFormat,
		IsPremium:     req.IsPremium,
		IsPublished:   isPublished,
		PublishedAt:   req.PublishedAt,
		TagIDs:        req.TagIDs,
		AuthorID:      currentUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Article created successfully")
}

// Update handles PUT /articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update article", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.updateArticleUC.Execute(c.Request.Context(), usecases.UpdateArticleCommand{
		ArticleID:     id,
		Title:         req.Title,
		Slug:          req.Slug,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		ContentFormat: req.ContentFormat,
		IsPremium:     req.IsPremium,
		IsPublished:   req.IsPublished,
		PublishedAt:   req.PublishedAt,
		TagIDs:        req.TagIDs,
		Viewer:        viewerFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Article updated successfully", result)
}

// Delete handles DELETE /articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteArticleUC.Execute(c.Request.Context(), usecases.DeleteArticleCommand{
		ArticleID: id,
		Viewer:    viewerFromContext(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListAll handles GET /admin/articles
func (h *ArticleHandler) ListAll(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listAllUC.Execute(c.Request.Context(), usecases.ListAllArticlesQuery{
		Pagination: pagination,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Articles, result.Total, pagination.Page, pagination.PageSize)
}

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid id parameter")
	}
	return uint(id), nil
}
