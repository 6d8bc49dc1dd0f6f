package services

import (
	"context"

	"github.com/fsnd-trivia/trivia-service/internal/models"
	"github.com/fsnd-trivia/trivia-service/internal/repositories"
	"github.com/fsnd-trivia/trivia-service/internal/validator"
)

// ===== REQUEST/RESPONSE DTOs =====

// Use validator request types
type CreateQuestionRequest = validator.QuestionCreateRequest
type LoginRequest = validator.LoginRequest
type QuizResultRequest = validator.QuizResultRequest
type NextQuestionRequest = validator.NextQuestionRequest

// ListPage carries the pagination fields shared by every paginated listing.
type ListPage struct {
	Page     int   `json:"page"`
	PerPage  int   `json:"per_page"`
	NumPages int   `json:"num_pages"`
	Total    int64 `json:"total"`
	Offset   int   `json:"offset"`
	Limit    int   `json:"limit"`
}

type QuestionListResponse struct {
	Questions []*models.Question `json:"questions"`
	ListPage
}

type CategoryListResponse struct {
	Categories []*models.Category `json:"categories"`
	ListPage
}

// ===== SERVICE INTERFACES =====

type QuestionService interface {
	GetByID(ctx context.Context, id uint) (*models.Question, error)
	List(ctx context.Context, page, perPage int) (*QuestionListResponse, error)
	SearchByText(ctx context.Context, term string, page, perPage int) (*QuestionListResponse, error)
	ListByCategory(ctx context.Context, categoryID uint, page, perPage int) (*QuestionListResponse, error)
	// GetRandom serves quiz questions: count distinct random questions
	// matching the request, excluding the previously served ones.
	GetRandom(ctx context.Context, req *NextQuestionRequest, count int) ([]*models.Question, error)
	Create(ctx context.Context, req *CreateQuestionRequest) (*models.Question, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type CategoryService interface {
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	List(ctx context.Context, page, perPage int) (*CategoryListResponse, error)
	// ListAll returns every category without pagination.
	ListAll(ctx context.Context) ([]*models.Category, error)
	Create(ctx context.Context, categoryType string) (*models.Category, error)
}

type UserService interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	// UpdateByID applies updates to a user inside one transaction and
	// returns the freshly re-read row. UpdateAdd adds submitted counter
	// values to the stored ones, UpdateSet overwrites them.
	UpdateByID(ctx context.Context, id uint, updates map[string]any, op repositories.QueryParam) (*models.User, error)
	// LoginOrRegister logs a user in, registering unknown usernames first.
	LoginOrRegister(ctx context.Context, req *LoginRequest) (*models.User, error)
	// SaveQuizResult adds a finished quiz's counters to the user's totals.
	SaveQuizResult(ctx context.Context, req *QuizResultRequest) (*models.User, error)
}
