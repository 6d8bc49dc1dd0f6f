package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsnd-trivia/trivia-service/internal/services"
)

type CategoryHandler struct {
	BaseHandler
	categoryService services.CategoryService
	questionService services.QuestionService
	defaultPerPage  int
	maxPerPage      int
}

func NewCategoryHandler(categoryService services.CategoryService, questionService services.QuestionService, logger *slog.Logger, defaultPerPage, maxPerPage int) *CategoryHandler {
	return &CategoryHandler{
		BaseHandler:     NewBaseHandler(logger),
		categoryService: categoryService,
		questionService: questionService,
		defaultPerPage:  defaultPerPage,
		maxPerPage:      maxPerPage,
	}
}

type createCategoryRequest struct {
	Type string `json:"type"`
}

// ListCategories returns every category as an id-to-type index
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListAll(c.Request.Context())
	if err != nil {
		h.RespondError(c, err, "Failed to list categories")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories":       categoryIndex(categories),
		"total_categories": len(categories),
	})
}

// GetCategory returns one category by id
// @Summary Get category
// @Tags categories
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	category, err := h.categoryService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.RespondError(c, err, "Failed to get category")
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category.Format()})
}

// CreateCategory creates a category
// @Summary Create category
// @Tags categories
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body", Details: err.Error()})
		return
	}

	h.LogRequest(c, "Creating category", "type", req.Type)

	category, err := h.categoryService.Create(c.Request.Context(), req.Type)
	if err != nil {
		h.RespondError(c, err, "Failed to create category")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"created":  category.ID,
		"category": category.Format(),
	})
}

// ListCategoryQuestions returns one page of a category's questions
// @Summary List questions in a category
// @Tags categories
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Success 200 {object} map[string]interface{}
// @Router /categories/{id}/questions [get]
func (h *CategoryHandler) ListCategoryQuestions(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	// Category must exist even when it holds no questions.
	category, err := h.categoryService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.RespondError(c, err, "Failed to get category")
		return
	}

	page, perPage := ParsePageParams(c, h.defaultPerPage, h.maxPerPage)
	h.LogRequest(c, "Listing category questions", "category_id", id, "page", page)

	result, err := h.questionService.ListByCategory(c.Request.Context(), id, page, perPage)
	if err != nil {
		h.RespondError(c, err, "Failed to list category questions")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"questions":        formatQuestions(result.Questions),
		"total_questions":  result.Total,
		"page":             result.Page,
		"num_pages":        result.NumPages,
		"current_category": category.Type,
	})
}
