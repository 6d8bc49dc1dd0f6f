package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fsnd-trivia/trivia-service/internal/events"
	"github.com/fsnd-trivia/trivia-service/internal/models"
	"github.com/fsnd-trivia/trivia-service/internal/repositories"
	"github.com/fsnd-trivia/trivia-service/internal/validator"
)

type userService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.Publisher
}

func NewUserService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator, publisher events.Publisher) UserService {
	return &userService{
		repo:      repo,
		logger:    logger,
		validator: validator,
		publisher: publisher,
	}
}

func (s *userService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.User().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateByID runs the read, merge, bulk update and re-read against one
// transaction, so the returned row reflects exactly the update that was
// committed.
func (s *userService) UpdateByID(ctx context.Context, id uint, updates map[string]any, op repositories.QueryParam) (*models.User, error) {
	if op != repositories.UpdateSet && op != repositories.UpdateAdd {
		return nil, fmt.Errorf("%w: unsupported update mode %s", repositories.ErrInvalidArgument, op)
	}
	if errs := s.validator.ValidateUserUpdate(id, updates); len(errs) > 0 {
		return nil, errs
	}

	scope := s.repo.NewScope(repositories.MultiUse)
	defer scope.Rollback()

	current, err := s.repo.User().Get(ctx, scope, repositories.ByID(id), repositories.GetFirst)
	if err != nil {
		return nil, err
	}
	if current.First == nil {
		return nil, ErrUserNotFound
	}

	merged := make(map[string]any, len(updates))
	for key, value := range updates {
		if key == models.FieldID {
			continue
		}
		merged[key] = value
	}
	if op == repositories.UpdateAdd {
		if v, ok := toInt(merged[models.FieldNumQuestions]); ok {
			merged[models.FieldNumQuestions] = current.First.NumQuestions + v
		}
		if v, ok := toInt(merged[models.FieldNumCorrect]); ok {
			merged[models.FieldNumCorrect] = current.First.NumCorrect + v
		}
	}

	matched, err := s.repo.User().Update(ctx, scope, merged, repositories.ByID(id))
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, ErrUserNotFound
	}

	// Re-read inside the scope so the response carries the staged values.
	updated, err := s.repo.User().Get(ctx, scope, repositories.ByID(id), repositories.GetFirst)
	if err != nil {
		return nil, err
	}
	if updated.First == nil {
		return nil, ErrUserNotFound
	}

	if err := scope.Commit(); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "User updated", "user_id", id, "mode", op.String())
	return updated.First, nil
}

// LoginOrRegister logs a user in, creating the account on first sight of the
// username. Passwords are compared as stored.
func (s *userService) LoginOrRegister(ctx context.Context, req *LoginRequest) (*models.User, error) {
	if errs := s.validator.ValidateLogin(req); len(errs) > 0 {
		return nil, errs
	}

	username := strings.TrimSpace(req.Username)
	result, err := s.repo.User().Search(ctx, repositories.SearchParams{
		Criteria: repositories.ByUsername(username),
		Mode:     repositories.GetFirst,
	})
	if err != nil {
		return nil, err
	}

	if result.First == nil {
		user := &models.User{
			Username: username,
			Password: req.Password,
		}
		if _, err := s.repo.User().Create(ctx, nil, user); err != nil {
			return nil, fmt.Errorf("failed to register user: %w", err)
		}
		s.logger.InfoContext(ctx, "User registered", "user_id", user.ID, "username", username)
		return user, nil
	}

	if result.First.Password != req.Password {
		return nil, ErrInvalidCredentials
	}
	return result.First, nil
}

// SaveQuizResult adds a finished quiz's counters to the user's stored totals
// and announces the completed quiz.
func (s *userService) SaveQuizResult(ctx context.Context, req *QuizResultRequest) (*models.User, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	updates := map[string]any{
		models.FieldNumCorrect:   *req.NumCorrect,
		models.FieldNumQuestions: *req.NumQuestions,
	}
	user, err := s.UpdateByID(ctx, req.UserID, updates, repositories.UpdateAdd)
	if err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, events.TopicQuizCompleted, events.QuizCompletedPayload{
		UserID:       user.ID,
		NumCorrect:   *req.NumCorrect,
		NumQuestions: *req.NumQuestions,
	}); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish quiz.completed", "error", err)
	}

	return user, nil
}

func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v != float64(int(v)) {
			return 0, false
		}
		return int(v), true
	default:
		return 0, false
	}
}
