package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/fsnd-trivia/trivia-service/internal/events"
	"github.com/fsnd-trivia/trivia-service/internal/models"
	"github.com/fsnd-trivia/trivia-service/internal/repositories"
	"github.com/fsnd-trivia/trivia-service/internal/validator"
)

// The fakes below script repository responses per call. Criteria are opaque
// store-evaluated predicates, so the fakes record the search parameters and
// return whatever the test queued instead of filtering.

type fakeQuestionRepo struct {
	byID          map[uint]*models.Question
	searchResults []repositories.SearchResult[models.Question]
	searchParams  []repositories.SearchParams
	created       []*models.Question
	deleted       []uint
	err           error
}

func (f *fakeQuestionRepo) GetByID(ctx context.Context, id uint) (*models.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

func (f *fakeQuestionRepo) Search(ctx context.Context, params repositories.SearchParams) (repositories.SearchResult[models.Question], error) {
	f.searchParams = append(f.searchParams, params)
	if f.err != nil {
		return repositories.SearchResult[models.Question]{}, f.err
	}
	if len(f.searchResults) == 0 {
		return repositories.SearchResult[models.Question]{}, nil
	}
	result := f.searchResults[0]
	f.searchResults = f.searchResults[1:]
	return result, nil
}

func (f *fakeQuestionRepo) Create(ctx context.Context, scope *repositories.Scope, question *models.Question) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	question.ID = uint(len(f.created) + 100)
	f.created = append(f.created, question)
	return 1, nil
}

func (f *fakeQuestionRepo) Delete(ctx context.Context, scope *repositories.Scope, question *models.Question) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.deleted = append(f.deleted, question.ID)
	return 1, nil
}

type fakeCategoryRepo struct {
	byID          map[uint]*models.Category
	searchResults []repositories.SearchResult[models.Category]
	created       []*models.Category
	err           error
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

func (f *fakeCategoryRepo) Search(ctx context.Context, params repositories.SearchParams) (repositories.SearchResult[models.Category], error) {
	if f.err != nil {
		return repositories.SearchResult[models.Category]{}, f.err
	}
	if len(f.searchResults) == 0 {
		return repositories.SearchResult[models.Category]{}, nil
	}
	result := f.searchResults[0]
	f.searchResults = f.searchResults[1:]
	return result, nil
}

func (f *fakeCategoryRepo) Create(ctx context.Context, scope *repositories.Scope, category *models.Category) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	category.ID = uint(len(f.created) + 10)
	f.created = append(f.created, category)
	return 1, nil
}

type fakeUserRepo struct {
	byID       map[uint]*models.User
	getResults []repositories.SearchResult[models.User]
	updates    []map[string]any
	created    []*models.User
	err        error
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

func (f *fakeUserRepo) Get(ctx context.Context, scope *repositories.Scope, criteria repositories.Criteria, mode repositories.QueryParam) (repositories.SearchResult[models.User], error) {
	if f.err != nil {
		return repositories.SearchResult[models.User]{}, f.err
	}
	if len(f.getResults) == 0 {
		return repositories.SearchResult[models.User]{}, nil
	}
	result := f.getResults[0]
	f.getResults = f.getResults[1:]
	return result, nil
}

func (f *fakeUserRepo) Search(ctx context.Context, params repositories.SearchParams) (repositories.SearchResult[models.User], error) {
	return f.Get(ctx, nil, params.Criteria, params.Mode)
}

func (f *fakeUserRepo) Create(ctx context.Context, scope *repositories.Scope, user *models.User) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	user.ID = uint(len(f.created) + 1000)
	f.created = append(f.created, user)
	return 1, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, scope *repositories.Scope, updates map[string]any, criteria repositories.Criteria) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.updates = append(f.updates, updates)
	return 1, nil
}

type fakeRepository struct {
	question *fakeQuestionRepo
	category *fakeCategoryRepo
	user     *fakeUserRepo
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		question: &fakeQuestionRepo{byID: map[uint]*models.Question{}},
		category: &fakeCategoryRepo{byID: map[uint]*models.Category{}},
		user:     &fakeUserRepo{byID: map[uint]*models.User{}},
	}
}

func (f *fakeRepository) Question() repositories.QuestionRepository { return f.question }
func (f *fakeRepository) Category() repositories.CategoryRepository { return f.category }
func (f *fakeRepository) User() repositories.UserRepository         { return f.user }

func (f *fakeRepository) NewScope(mode repositories.ScopeMode) *repositories.Scope {
	return repositories.NewScope(nil, mode)
}

func (f *fakeRepository) Ping(ctx context.Context) error { return nil }
func (f *fakeRepository) Close() error                   { return nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestPublisher(t *testing.T) *events.MockEventPublisher {
	t.Helper()
	return events.NewMockEventPublisher(testLogger())
}

func newTestValidator() *validator.Validator {
	return validator.New()
}
