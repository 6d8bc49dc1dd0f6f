package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/fsnd-trivia/trivia-service/internal/events"
	"github.com/fsnd-trivia/trivia-service/internal/repositories"
	"github.com/fsnd-trivia/trivia-service/internal/validator"
)

// ServiceManager wires the entity services over shared dependencies and owns
// their lifecycle.
type ServiceManager interface {
	Question() QuestionService
	Category() CategoryService
	User() UserService

	Initialize(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type serviceManager struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.Publisher

	questionService QuestionService
	categoryService CategoryService
	userService     UserService

	initialized bool
	shutdown    bool
	mu          sync.RWMutex
}

// NewServiceManager creates a service manager over the shared dependencies
func NewServiceManager(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator, publisher events.Publisher) ServiceManager {
	return &serviceManager{
		repo:      repo,
		logger:    logger,
		validator: validator,
		publisher: publisher,
	}
}

// Initialize sets up all services and checks the backing store is reachable
func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	sm.logger.Info("Initializing service manager")

	sm.questionService = NewQuestionService(sm.repo, sm.logger, sm.validator, sm.publisher)
	sm.categoryService = NewCategoryService(sm.repo, sm.logger, sm.validator)
	sm.userService = NewUserService(sm.repo, sm.logger, sm.validator, sm.publisher)

	if err := sm.repo.Ping(ctx); err != nil {
		return fmt.Errorf("repository health check failed: %w", err)
	}

	sm.initialized = true
	sm.logger.Info("Service manager initialized successfully")
	return nil
}

// Shutdown releases the event publisher; repository shutdown belongs to the
// repository manager.
func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.shutdown {
		return nil
	}

	sm.logger.Info("Shutting down service manager")
	if err := sm.publisher.Close(); err != nil {
		sm.logger.Warn("Failed to close event publisher", "error", err)
	}

	sm.shutdown = true
	return nil
}

// Service getters
func (sm *serviceManager) Question() QuestionService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized || sm.questionService == nil {
		panic("question service not initialized")
	}
	return sm.questionService
}

func (sm *serviceManager) Category() CategoryService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized || sm.categoryService == nil {
		panic("category service not initialized")
	}
	return sm.categoryService
}

func (sm *serviceManager) User() UserService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized || sm.userService == nil {
		panic("user service not initialized")
	}
	return sm.userService
}
