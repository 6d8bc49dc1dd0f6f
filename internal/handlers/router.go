package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsnd-trivia/trivia-service/internal/config"
	"github.com/fsnd-trivia/trivia-service/internal/repositories"
	"github.com/fsnd-trivia/trivia-service/internal/services"
)

type HandlerManager struct {
	questionHandler *QuestionHandler
	categoryHandler *CategoryHandler
	quizHandler     *QuizHandler
	userHandler     *UserHandler
	repo            repositories.Repository
}

func NewHandlerManager(serviceManager services.ServiceManager, repo repositories.Repository, logger *slog.Logger, cfg *config.Config) *HandlerManager {
	return &HandlerManager{
		questionHandler: NewQuestionHandler(serviceManager.Question(), serviceManager.Category(), logger, cfg.QuestionsPerPage, cfg.MaxItemsPerPage),
		categoryHandler: NewCategoryHandler(serviceManager.Category(), serviceManager.Question(), logger, cfg.CategoriesPerPage, cfg.MaxItemsPerPage),
		quizHandler:     NewQuizHandler(serviceManager.Question(), serviceManager.User(), logger),
		userHandler:     NewUserHandler(serviceManager.User(), logger),
		repo:            repo,
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		questions := api.Group("/questions")
		{
			questions.GET("", hm.questionHandler.ListQuestions)
			questions.POST("", hm.questionHandler.CreateQuestion)
			questions.POST("/search", hm.questionHandler.SearchQuestions)
			questions.GET("/:id", hm.questionHandler.GetQuestion)
			questions.DELETE("/:id", hm.questionHandler.DeleteQuestion)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", hm.categoryHandler.ListCategories)
			categories.POST("", hm.categoryHandler.CreateCategory)
			categories.GET("/:id", hm.categoryHandler.GetCategory)
			categories.GET("/:id/questions", hm.categoryHandler.ListCategoryQuestions)
		}

		quizzes := api.Group("/quizzes")
		{
			quizzes.POST("", hm.quizHandler.NextQuestion)
			quizzes.POST("/results", hm.quizHandler.SaveResult)
		}

		users := api.Group("/users")
		{
			users.GET("/:id", hm.userHandler.GetUser)
			users.PATCH("/:id", hm.userHandler.UpdateUser)
		}

		api.POST("/login", hm.userHandler.Login)
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		status := http.StatusOK
		health := gin.H{
			"status":  "healthy",
			"service": "trivia-service",
		}
		if err := hm.repo.Ping(c.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			health["status"] = "unhealthy"
		}
		c.JSON(status, health)
	})
}
