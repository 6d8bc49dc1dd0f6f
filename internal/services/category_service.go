package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fsnd-trivia/trivia-service/internal/models"
	"github.com/fsnd-trivia/trivia-service/internal/repositories"
	"github.com/fsnd-trivia/trivia-service/internal/utils"
	"github.com/fsnd-trivia/trivia-service/internal/validator"
)

type categoryService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewCategoryService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) CategoryService {
	return &categoryService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

func (s *categoryService) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.repo.Category().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

func (s *categoryService) List(ctx context.Context, page, perPage int) (*CategoryListResponse, error) {
	countResult, err := s.repo.Category().Search(ctx, repositories.SearchParams{
		Mode: repositories.CountRows,
	})
	if err != nil {
		return nil, err
	}
	total := countResult.Count

	response := &CategoryListResponse{
		Categories: []*models.Category{},
		ListPage: ListPage{
			Page:    page,
			PerPage: perPage,
			Total:   total,
		},
	}

	if total == 0 {
		return response, nil
	}

	window, err := utils.Paginate(page, perPage, int(total))
	if err != nil {
		return nil, err
	}

	listResult, err := s.repo.Category().Search(ctx, repositories.SearchParams{
		OrderBy: "id",
		Offset:  window.Offset,
		Limit:   repositories.Limit(perPage),
		Mode:    repositories.GetAll,
	})
	if err != nil {
		return nil, err
	}

	response.Categories = listResult.All
	response.NumPages = utils.NumPages(int(total), perPage)
	response.Offset = window.Offset
	response.Limit = window.Limit
	return response, nil
}

func (s *categoryService) ListAll(ctx context.Context) ([]*models.Category, error) {
	result, err := s.repo.Category().Search(ctx, repositories.SearchParams{
		OrderBy: "id",
		Mode:    repositories.GetAll,
	})
	if err != nil {
		return nil, err
	}
	return result.All, nil
}

func (s *categoryService) Create(ctx context.Context, categoryType string) (*models.Category, error) {
	categoryType = strings.TrimSpace(categoryType)
	if categoryType == "" {
		return nil, validator.ValidationErrors{{
			Field:   "type",
			Message: "empty category type",
			Rule:    "business_logic",
		}}
	}

	category := &models.Category{Type: categoryType}
	if _, err := s.repo.Category().Create(ctx, nil, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.logger.InfoContext(ctx, "Category created", "category_id", category.ID, "type", category.Type)
	return category, nil
}
