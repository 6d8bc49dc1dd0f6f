package postgres

import (
	"context"
	"fmt"

	"github.com/fsnd-trivia/trivia-service/internal/cache"
	"github.com/fsnd-trivia/trivia-service/internal/models"
	"github.com/fsnd-trivia/trivia-service/internal/repositories"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CategoryPostgreSQL struct {
	db    *gorm.DB
	cache *cache.Helper
}

func NewCategoryPostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.CategoryRepository {
	return &CategoryPostgreSQL{
		db:    db,
		cache: cache.NewHelper(redisClient, cache.CategoryCacheConfig.Prefix),
	}
}

// GetByID reads through the cache; categories are read-mostly so a short TTL
// absorbs almost all hits.
func (c *CategoryPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	cacheKey := fmt.Sprintf("id:%d", id)

	var category models.Category
	if err := c.cache.Get(ctx, cacheKey, &category); err == nil {
		return &category, nil
	}

	entity, err := GetEntityByID[models.Category](ctx, c.db, id)
	if err != nil || entity == nil {
		return entity, err
	}

	cache.SafeSet(ctx, c.cache, cacheKey, entity, cache.CategoryCacheConfig.TTL)
	return entity, nil
}

func (c *CategoryPostgreSQL) Search(ctx context.Context, params repositories.SearchParams) (repositories.SearchResult[models.Category], error) {
	return SearchEntities[models.Category](ctx, c.db, params)
}

func (c *CategoryPostgreSQL) Create(ctx context.Context, scope *repositories.Scope, category *models.Category) (int64, error) {
	affected, err := CreateEntity(ctx, c.db, scope, category)
	if err == nil {
		cache.SafeInvalidatePattern(ctx, c.cache, "id:*")
	}
	return affected, err
}
