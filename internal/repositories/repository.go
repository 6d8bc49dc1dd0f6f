package repositories

import (
	"context"

	"github.com/fsnd-trivia/trivia-service/internal/models"
)

// QuestionRepository covers question persistence. Reads report an absent row
// as a nil result, not a failure; translating that into a not-found is the
// caller's job.
type QuestionRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Question, error)
	Search(ctx context.Context, params SearchParams) (SearchResult[models.Question], error)
	Create(ctx context.Context, scope *Scope, question *models.Question) (int64, error)
	Delete(ctx context.Context, scope *Scope, question *models.Question) (int64, error)
}

// CategoryRepository covers category persistence. Categories are read-mostly;
// creation happens through seeding or the import tool.
type CategoryRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	Search(ctx context.Context, params SearchParams) (SearchResult[models.Category], error)
	Create(ctx context.Context, scope *Scope, category *models.Category) (int64, error)
}

// UserRepository covers user persistence, including the scoped read and bulk
// update used by the counter-increment chain.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	// Get is the scoped read: it runs inside the supplied scope's transaction
	// so it observes writes staged earlier in the same scope.
	Get(ctx context.Context, scope *Scope, criteria Criteria, mode QueryParam) (SearchResult[models.User], error)
	Search(ctx context.Context, params SearchParams) (SearchResult[models.User], error)
	Create(ctx context.Context, scope *Scope, user *models.User) (int64, error)
	// Update bulk-updates matching rows and returns the count of rows matched
	// before the update was applied.
	Update(ctx context.Context, scope *Scope, updates map[string]any, criteria Criteria) (int64, error)
}

// Repository aggregates the entity repositories and owns scope allocation.
type Repository interface {
	Question() QuestionRepository
	Category() CategoryRepository
	User() UserRepository

	// NewScope allocates a transaction scope over the backing store.
	NewScope(mode ScopeMode) *Scope

	// Health check
	Ping(ctx context.Context) error

	// Close connections
	Close() error
}
