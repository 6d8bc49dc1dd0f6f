package postgres

import (
	"context"

	"github.com/fsnd-trivia/trivia-service/internal/models"
	"github.com/fsnd-trivia/trivia-service/internal/repositories"
	"gorm.io/gorm"
)

type UserPostgreSQL struct {
	db *gorm.DB
}

func NewUserPostgreSQL(db *gorm.DB) repositories.UserRepository {
	return &UserPostgreSQL{db: db}
}

func (u *UserPostgreSQL) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return GetEntityByID[models.User](ctx, u.db, id)
}

func (u *UserPostgreSQL) Get(ctx context.Context, scope *repositories.Scope, criteria repositories.Criteria, mode repositories.QueryParam) (repositories.SearchResult[models.User], error) {
	return GetEntity[models.User](ctx, u.db, scope, criteria, mode)
}

func (u *UserPostgreSQL) Search(ctx context.Context, params repositories.SearchParams) (repositories.SearchResult[models.User], error) {
	return SearchEntities[models.User](ctx, u.db, params)
}

func (u *UserPostgreSQL) Create(ctx context.Context, scope *repositories.Scope, user *models.User) (int64, error) {
	return CreateEntity(ctx, u.db, scope, user)
}

func (u *UserPostgreSQL) Update(ctx context.Context, scope *repositories.Scope, updates map[string]any, criteria repositories.Criteria) (int64, error) {
	return UpdateEntity[models.User](ctx, u.db, scope, updates, criteria)
}
