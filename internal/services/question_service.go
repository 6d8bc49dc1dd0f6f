package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fsnd-trivia/trivia-service/internal/events"
	"github.com/fsnd-trivia/trivia-service/internal/models"
	"github.com/fsnd-trivia/trivia-service/internal/repositories"
	"github.com/fsnd-trivia/trivia-service/internal/utils"
	"github.com/fsnd-trivia/trivia-service/internal/validator"
)

type questionService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.Publisher
}

func NewQuestionService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator, publisher events.Publisher) QuestionService {
	return &questionService{
		repo:      repo,
		logger:    logger,
		validator: validator,
		publisher: publisher,
	}
}

// ===== READS =====

func (s *questionService) GetByID(ctx context.Context, id uint) (*models.Question, error) {
	question, err := s.repo.Question().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}
	return question, nil
}

func (s *questionService) List(ctx context.Context, page, perPage int) (*QuestionListResponse, error) {
	return s.listQuestions(ctx, nil, page, perPage)
}

func (s *questionService) SearchByText(ctx context.Context, term string, page, perPage int) (*QuestionListResponse, error) {
	return s.listQuestions(ctx, repositories.TextContains(term), page, perPage)
}

func (s *questionService) ListByCategory(ctx context.Context, categoryID uint, page, perPage int) (*QuestionListResponse, error) {
	return s.listQuestions(ctx, repositories.ByCategoryID(categoryID), page, perPage)
}

// listQuestions counts the matching set, derives the page window, and
// fetches that page ordered by id.
func (s *questionService) listQuestions(ctx context.Context, criteria repositories.Criteria, page, perPage int) (*QuestionListResponse, error) {
	countResult, err := s.repo.Question().Search(ctx, repositories.SearchParams{
		Criteria: criteria,
		Mode:     repositories.CountRows,
	})
	if err != nil {
		return nil, err
	}
	total := countResult.Count

	response := &QuestionListResponse{
		Questions: []*models.Question{},
		ListPage: ListPage{
			Page:    page,
			PerPage: perPage,
			Total:   total,
		},
	}

	// An empty set skips pagination and presents an empty window.
	if total == 0 {
		return response, nil
	}

	window, err := utils.Paginate(page, perPage, int(total))
	if err != nil {
		return nil, err
	}

	listResult, err := s.repo.Question().Search(ctx, repositories.SearchParams{
		Criteria: criteria,
		OrderBy:  "id",
		Offset:   window.Offset,
		Limit:    repositories.Limit(perPage),
		Mode:     repositories.GetAll,
	})
	if err != nil {
		return nil, err
	}

	response.Questions = listResult.All
	response.NumPages = utils.NumPages(int(total), perPage)
	response.Offset = window.Offset
	response.Limit = window.Limit
	return response, nil
}

// ===== QUIZ SELECTION =====

// GetRandom picks count random questions matching the request. It scans the
// ids of the candidate set, samples without replacement, and fetches the
// picked rows.
func (s *questionService) GetRandom(ctx context.Context, req *NextQuestionRequest, count int) ([]*models.Question, error) {
	criteria := repositories.IDNotIn(req.PreviousQuestions)
	if req.QuizCategory != nil && req.QuizCategory.ID > 0 {
		criteria = repositories.And(criteria, repositories.ByCategoryID(req.QuizCategory.ID))
	}

	idResult, err := s.repo.Question().Search(ctx, repositories.SearchParams{
		Criteria:   criteria,
		Projection: []string{"id"},
		Mode:       repositories.GetAll,
	})
	if err != nil {
		return nil, err
	}

	if len(idResult.All) == 0 {
		return []*models.Question{}, nil
	}

	candidateIDs := make([]uint, 0, len(idResult.All))
	for _, question := range idResult.All {
		candidateIDs = append(candidateIDs, question.ID)
	}

	pickedIDs := utils.SampleWithoutReplacement(candidateIDs, count)

	pickResult, err := s.repo.Question().Search(ctx, repositories.SearchParams{
		Criteria: repositories.And(repositories.IDIn(pickedIDs), criteria),
		Mode:     repositories.GetAll,
	})
	if err != nil {
		return nil, err
	}

	return pickResult.All, nil
}

// ===== WRITES =====

func (s *questionService) Create(ctx context.Context, req *CreateQuestionRequest) (*models.Question, error) {
	if errs := s.validator.ValidateQuestionCreate(req); len(errs) > 0 {
		return nil, errs
	}

	category, err := s.repo.Category().GetByID(ctx, req.Category)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrUnknownCategory
	}

	question := models.NewQuestion(
		strings.TrimSpace(req.Question),
		strings.TrimSpace(req.Answer),
		req.Category,
		req.Difficulty,
	)

	if _, err := s.repo.Question().Create(ctx, nil, question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	s.logger.InfoContext(ctx, "Question created", "question_id", question.ID, "category_id", question.CategoryID)

	if err := s.publisher.Publish(ctx, events.TopicQuestionCreated, events.QuestionCreatedPayload{
		QuestionID: question.ID,
		CategoryID: question.CategoryID,
		Difficulty: question.Difficulty,
		Text:       question.Text,
	}); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish question.created", "error", err)
	}

	return question, nil
}

func (s *questionService) Delete(ctx context.Context, id uint) (int64, error) {
	question, err := s.repo.Question().GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if question == nil {
		return 0, ErrQuestionNotFound
	}

	deleted, err := s.repo.Question().Delete(ctx, nil, question)
	if err != nil {
		return 0, fmt.Errorf("failed to delete question: %w", err)
	}

	s.logger.InfoContext(ctx, "Question deleted", "question_id", id)
	return deleted, nil
}
