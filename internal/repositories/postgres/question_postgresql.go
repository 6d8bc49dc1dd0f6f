package postgres

import (
	"context"

	"github.com/fsnd-trivia/trivia-service/internal/models"
	"github.com/fsnd-trivia/trivia-service/internal/repositories"
	"gorm.io/gorm"
)

type QuestionPostgreSQL struct {
	db *gorm.DB
}

func NewQuestionPostgreSQL(db *gorm.DB) repositories.QuestionRepository {
	return &QuestionPostgreSQL{db: db}
}

func (q *QuestionPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Question, error) {
	return GetEntityByID[models.Question](ctx, q.db, id)
}

func (q *QuestionPostgreSQL) Search(ctx context.Context, params repositories.SearchParams) (repositories.SearchResult[models.Question], error) {
	return SearchEntities[models.Question](ctx, q.db, params)
}

func (q *QuestionPostgreSQL) Create(ctx context.Context, scope *repositories.Scope, question *models.Question) (int64, error) {
	return CreateEntity(ctx, q.db, scope, question)
}

func (q *QuestionPostgreSQL) Delete(ctx context.Context, scope *repositories.Scope, question *models.Question) (int64, error) {
	return DeleteEntity(ctx, q.db, scope, question)
}
