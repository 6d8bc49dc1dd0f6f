package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsnd-trivia/trivia-service/internal/services"
)

type QuizHandler struct {
	BaseHandler
	questionService services.QuestionService
	userService     services.UserService
}

func NewQuizHandler(questionService services.QuestionService, userService services.UserService, logger *slog.Logger) *QuizHandler {
	return &QuizHandler{
		BaseHandler:     NewBaseHandler(logger),
		questionService: questionService,
		userService:     userService,
	}
}

// NextQuestion serves the next quiz question, excluding the ones already
// played. A null question signals the quiz is exhausted.
// @Summary Next quiz question
// @Tags quizzes
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /quizzes [post]
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req services.NextQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body", Details: err.Error()})
		return
	}

	h.LogRequest(c, "Serving quiz question", "previous", len(req.PreviousQuestions))

	questions, err := h.questionService.GetRandom(c.Request.Context(), &req, 1)
	if err != nil {
		h.RespondError(c, err, "Failed to pick quiz question")
		return
	}

	if len(questions) == 0 {
		c.JSON(http.StatusOK, gin.H{"question": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"question": questions[0].Format()})
}

// SaveResult adds a finished quiz's counters to the player's totals
// @Summary Save quiz result
// @Tags quizzes
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /quizzes/results [post]
func (h *QuizHandler) SaveResult(c *gin.Context) {
	var req services.QuizResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body", Details: err.Error()})
		return
	}

	h.LogRequest(c, "Saving quiz result", "user_id", req.UserID)

	user, err := h.userService.SaveQuizResult(c.Request.Context(), &req)
	if err != nil {
		h.RespondError(c, err, "Failed to save quiz result")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.PublicFormat()})
}
