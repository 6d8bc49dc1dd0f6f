package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsnd-trivia/trivia-service/internal/models"
	"github.com/fsnd-trivia/trivia-service/internal/repositories"
	"gorm.io/gorm"
)

// Generic entity operations shared by every entity repository. Each is
// parameterized over the model type so query building and error translation
// live in exactly one place.

// GetEntityByID fetches a single row by primary key. An absent row is an
// empty result, not a failure.
func GetEntityByID[E models.Entity](ctx context.Context, db *gorm.DB, id uint) (*E, error) {
	var entity E
	err := db.WithContext(ctx).Where("id = ?", id).First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, repositories.TranslateError(err)
	}
	return &entity, nil
}

// SearchEntities runs a generalized filtered query outside any caller scope.
func SearchEntities[E models.Entity](ctx context.Context, db *gorm.DB, params repositories.SearchParams) (repositories.SearchResult[E], error) {
	var result repositories.SearchResult[E]

	if err := validateSearchParams(params); err != nil {
		return result, err
	}

	result, err := runSearch[E](db.WithContext(ctx), params)
	if err != nil {
		return result, repositories.TranslateError(err)
	}
	return result, nil
}

// GetEntity is the scoped read: the query runs inside the scope's
// transaction, so it observes writes staged earlier in the same scope.
func GetEntity[E models.Entity](ctx context.Context, db *gorm.DB, scope *repositories.Scope, criteria repositories.Criteria, mode repositories.QueryParam) (repositories.SearchResult[E], error) {
	var result repositories.SearchResult[E]

	params := repositories.SearchParams{Criteria: criteria, Mode: mode}
	if err := validateSearchParams(params); err != nil {
		return result, err
	}

	scope, err := repositories.SelectScope(db, scope)
	if err != nil {
		return result, err
	}

	err = scope.Run(ctx, func(tx *gorm.DB) error {
		var runErr error
		result, runErr = runSearch[E](tx, params)
		return runErr
	})
	return result, err
}

// CreateEntity inserts a row inside a transaction scope and returns the
// number of rows affected, 1 on success. A uniqueness violation surfaces as
// a conflict through the scope's error translation.
func CreateEntity[E models.Entity](ctx context.Context, db *gorm.DB, scope *repositories.Scope, entity *E) (int64, error) {
	scope, err := repositories.SelectScope(db, scope)
	if err != nil {
		return 0, err
	}

	var affected int64
	err = scope.Run(ctx, func(tx *gorm.DB) error {
		res := tx.Create(entity)
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

// UpdateEntity bulk-updates matching rows and returns the count of rows
// matched before the update was applied, so callers can tell "no such rows"
// apart from "update changed nothing". When chained with a subsequent read
// of the same rows it must share the caller's multi-use scope.
func UpdateEntity[E models.Entity](ctx context.Context, db *gorm.DB, scope *repositories.Scope, updates map[string]any, criteria repositories.Criteria) (int64, error) {
	scope, err := repositories.SelectScope(db, scope)
	if err != nil {
		return 0, err
	}

	var count int64
	err = scope.Run(ctx, func(tx *gorm.DB) error {
		countQuery := tx.Model(new(E))
		if criteria != nil {
			countQuery = criteria(countQuery)
		}
		if err := countQuery.Count(&count).Error; err != nil {
			return err
		}

		updateQuery := tx.Model(new(E))
		if criteria != nil {
			updateQuery = criteria(updateQuery)
		}
		return updateQuery.Updates(updates).Error
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteEntity removes a specific, already-fetched row. An entity without a
// primary key was never persisted and is rejected outright.
func DeleteEntity[E models.Entity](ctx context.Context, db *gorm.DB, scope *repositories.Scope, entity *E) (int64, error) {
	if (*entity).GetID() == 0 {
		return 0, fmt.Errorf("%w: cannot delete unsaved %s row", repositories.ErrInvalidArgument, (*entity).TableName())
	}

	scope, err := repositories.SelectScope(db, scope)
	if err != nil {
		return 0, err
	}

	var affected int64
	err = scope.Run(ctx, func(tx *gorm.DB) error {
		res := tx.Delete(entity)
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

// runSearch builds and executes the query; errors come back untranslated so
// scoped callers can feed them through their scope.
func runSearch[E models.Entity](query *gorm.DB, params repositories.SearchParams) (repositories.SearchResult[E], error) {
	var result repositories.SearchResult[E]

	query = query.Model(new(E))
	if len(params.Projection) > 0 {
		query = query.Select(params.Projection)
	}
	if params.Criteria != nil {
		query = params.Criteria(query)
	}
	if params.OrderBy != "" {
		query = query.Order(params.OrderBy)
	}
	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}
	if params.Limit != nil {
		query = query.Limit(*params.Limit)
	}

	switch params.Mode {
	case repositories.GetFirst:
		var entity E
		err := query.First(&entity).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return result, nil
		}
		if err != nil {
			return result, err
		}
		result.First = &entity

	case repositories.GetAll:
		entities := []*E{}
		if err := query.Find(&entities).Error; err != nil {
			return result, err
		}
		result.All = entities

	case repositories.CountRows:
		if err := query.Count(&result.Count).Error; err != nil {
			return result, err
		}
	}

	return result, nil
}

// validateSearchParams fails fast on programmer errors; these are never
// reported as store failures and never retried.
func validateSearchParams(params repositories.SearchParams) error {
	if params.Limit != nil && *params.Limit <= 0 {
		return fmt.Errorf("%w: invalid query limit: %d", repositories.ErrInvalidArgument, *params.Limit)
	}
	if params.Offset < 0 {
		return fmt.Errorf("%w: invalid query offset: %d", repositories.ErrInvalidArgument, params.Offset)
	}
	switch params.Mode {
	case repositories.GetFirst, repositories.GetAll, repositories.CountRows:
		return nil
	default:
		return fmt.Errorf("%w: query mode not supported: %s", repositories.ErrInvalidArgument, params.Mode)
	}
}
