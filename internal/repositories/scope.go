package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// ScopeMode is the lifetime of a transaction scope.
type ScopeMode int

const (
	// SingleUse scopes serve exactly one repository call; the transaction is
	// opened and closed around that call.
	SingleUse ScopeMode = iota + 1
	// MultiUse scopes are created by an operation and threaded through
	// several repository calls so they commit or roll back together. A
	// multi-use scope is owned exclusively by the operation that created it
	// and must not be shared across concurrent requests.
	MultiUse
)

// Scope bounds one or more repository calls in a single unit of work with
// commit-or-rollback semantics and guaranteed release of the underlying
// transaction on every exit path.
type Scope struct {
	db   *gorm.DB
	tx   *gorm.DB
	mode ScopeMode

	closed  bool
	success bool
}

// NewScope creates a scope over the given database handle.
func NewScope(db *gorm.DB, mode ScopeMode) *Scope {
	return &Scope{db: db, mode: mode}
}

// SelectScope returns the caller-supplied scope when one is given, so a
// repository call can nest inside a larger transaction, and otherwise
// allocates a fresh single-use scope. A scope that has already completed is
// a programmer error and fails fast.
func SelectScope(db *gorm.DB, existing *Scope) (*Scope, error) {
	if existing == nil {
		return NewScope(db, SingleUse), nil
	}
	if existing.closed {
		return nil, fmt.Errorf("%w: scope already completed", ErrInvalidArgument)
	}
	return existing, nil
}

// Run executes fn against the scope's transaction.
//
// For a single-use scope the transaction is begun, committed on normal
// completion, and rolled back on failure or panic, all within this one call.
// For a multi-use scope the transaction is begun on first use and stays open
// across calls, so later calls observe earlier writes; a failing call rolls
// the whole transaction back and closes the scope, and otherwise the
// operation ends the scope with Commit or Rollback.
//
// Failures are translated onto the taxonomy: uniqueness violations surface
// as ErrConflict, any other data-access failure as ErrUnavailable.
func (s *Scope) Run(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if s.closed {
		return fmt.Errorf("%w: scope already completed", ErrInvalidArgument)
	}

	if s.mode == SingleUse {
		return s.runOnce(ctx, fn)
	}
	return s.runShared(ctx, fn)
}

// runShared executes one call against the shared multi-use transaction,
// beginning it on first use. A failure or panic rolls the whole transaction
// back and closes the scope.
func (s *Scope) runShared(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if s.tx == nil {
		tx := s.db.WithContext(ctx).Begin()
		if tx.Error != nil {
			s.closed = true
			return TranslateError(tx.Error)
		}
		s.tx = tx
	}

	defer func() {
		if r := recover(); r != nil {
			s.tx.Rollback()
			s.tx = nil
			s.closed = true
			panic(r)
		}
	}()

	if err := fn(s.tx); err != nil {
		s.tx.Rollback()
		s.tx = nil
		s.closed = true
		return TranslateError(err)
	}

	return nil
}

// runOnce wraps a single call in its own transaction.
func (s *Scope) runOnce(ctx context.Context, fn func(tx *gorm.DB) error) (err error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.closed = true
		return TranslateError(tx.Error)
	}

	defer func() {
		s.closed = true
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err = fn(tx); err != nil {
		tx.Rollback()
		return TranslateError(err)
	}

	if err = tx.Commit().Error; err != nil {
		return TranslateError(err)
	}

	s.success = true
	return nil
}

// Commit ends a multi-use scope, committing everything staged by its Run
// calls. Committing a scope that never ran is a no-op.
func (s *Scope) Commit() error {
	if s.closed {
		return fmt.Errorf("%w: scope already completed", ErrInvalidArgument)
	}
	s.closed = true

	if s.tx == nil {
		s.success = true
		return nil
	}

	if err := s.tx.Commit().Error; err != nil {
		s.tx = nil
		return TranslateError(err)
	}

	s.tx = nil
	s.success = true
	return nil
}

// Rollback discards everything staged in a multi-use scope. It is safe to
// defer alongside Commit; once the scope has completed it does nothing.
func (s *Scope) Rollback() {
	if s.closed {
		return
	}
	s.closed = true

	if s.tx != nil {
		s.tx.Rollback()
		s.tx = nil
	}
}

// Tx returns the open transaction of a multi-use scope, or nil when no
// transaction has begun.
func (s *Scope) Tx() *gorm.DB {
	return s.tx
}

// Mode reports whether the scope is single or multi-use.
func (s *Scope) Mode() ScopeMode {
	return s.mode
}

// Succeeded reports whether the scope committed.
func (s *Scope) Succeeded() bool {
	return s.success
}
