package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fsnd-trivia/trivia-service/internal/models"
	"github.com/fsnd-trivia/trivia-service/internal/services"
)

type QuestionHandler struct {
	BaseHandler
	questionService services.QuestionService
	categoryService services.CategoryService
	defaultPerPage  int
	maxPerPage      int
}

func NewQuestionHandler(questionService services.QuestionService, categoryService services.CategoryService, logger *slog.Logger, defaultPerPage, maxPerPage int) *QuestionHandler {
	return &QuestionHandler{
		BaseHandler:     NewBaseHandler(logger),
		questionService: questionService,
		categoryService: categoryService,
		defaultPerPage:  defaultPerPage,
		maxPerPage:      maxPerPage,
	}
}

// searchRequest is the body of the question text search endpoint
type searchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// ListQuestions returns one page of questions plus the category index
// @Summary List questions
// @Tags questions
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param per_page query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Router /questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	page, perPage := ParsePageParams(c, h.defaultPerPage, h.maxPerPage)
	h.LogRequest(c, "Listing questions", "page", page, "per_page", perPage)

	result, err := h.questionService.List(c.Request.Context(), page, perPage)
	if err != nil {
		h.RespondError(c, err, "Failed to list questions")
		return
	}

	categories, err := h.categoryService.ListAll(c.Request.Context())
	if err != nil {
		h.RespondError(c, err, "Failed to list categories")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"questions":        formatQuestions(result.Questions),
		"total_questions":  result.Total,
		"page":             result.Page,
		"per_page":         result.PerPage,
		"num_pages":        result.NumPages,
		"categories":       categoryIndex(categories),
		"current_category": nil,
	})
}

// SearchQuestions returns the questions whose text contains the search term
// @Summary Search questions
// @Tags questions
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /questions/search [post]
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body", Details: err.Error()})
		return
	}

	term := strings.TrimSpace(req.SearchTerm)
	if term == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "searchTerm is required"})
		return
	}

	page, perPage := ParsePageParams(c, h.defaultPerPage, h.maxPerPage)
	h.LogRequest(c, "Searching questions", "term", term, "page", page)

	result, err := h.questionService.SearchByText(c.Request.Context(), term, page, perPage)
	if err != nil {
		h.RespondError(c, err, "Failed to search questions")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"questions":       formatQuestions(result.Questions),
		"total_questions": result.Total,
		"page":            result.Page,
		"num_pages":       result.NumPages,
	})
}

// GetQuestion returns one question by id
// @Summary Get question
// @Tags questions
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /questions/{id} [get]
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	question, err := h.questionService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.RespondError(c, err, "Failed to get question")
		return
	}

	c.JSON(http.StatusOK, gin.H{"question": question.Format()})
}

// CreateQuestion creates a question in an existing category
// @Summary Create question
// @Tags questions
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Router /questions [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req services.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body", Details: err.Error()})
		return
	}

	h.LogRequest(c, "Creating question", "category", req.Category)

	question, err := h.questionService.Create(c.Request.Context(), &req)
	if err != nil {
		h.RespondError(c, err, "Failed to create question")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"created":  question.ID,
		"question": question.Format(),
	})
}

// DeleteQuestion deletes a question by id
// @Summary Delete question
// @Tags questions
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	h.LogRequest(c, "Deleting question", "question_id", id)

	if _, err := h.questionService.Delete(c.Request.Context(), id); err != nil {
		h.RespondError(c, err, "Failed to delete question")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func formatQuestions(questions []*models.Question) []map[string]any {
	formatted := make([]map[string]any, 0, len(questions))
	for _, question := range questions {
		formatted = append(formatted, question.Format())
	}
	return formatted
}

// categoryIndex renders categories as an id-to-type index
func categoryIndex(categories []*models.Category) map[uint]string {
	index := make(map[uint]string, len(categories))
	for _, category := range categories {
		index[category.ID] = category.Type
	}
	return index
}
