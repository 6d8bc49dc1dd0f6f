package repositories

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil passes through", err: nil, want: nil},
		{name: "duplicated key becomes conflict", err: gorm.ErrDuplicatedKey, want: ErrConflict},
		{name: "unique violation becomes conflict", err: &pgconn.PgError{Code: "23505"}, want: ErrConflict},
		{name: "other pg error becomes unavailable", err: &pgconn.PgError{Code: "23503"}, want: ErrUnavailable},
		{name: "arbitrary error becomes unavailable", err: connectionError(), want: ErrUnavailable},
		{name: "classified conflict passes through", err: fmt.Errorf("%w: dup", ErrConflict), want: ErrConflict},
		{name: "classified invalid argument passes through", err: fmt.Errorf("%w: bad limit", ErrInvalidArgument), want: ErrInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TranslateError(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestTranslateErrorDoesNotDoubleWrap(t *testing.T) {
	once := TranslateError(connectionError())
	twice := TranslateError(once)
	assert.Equal(t, once, twice)
}

func connectionError() error {
	return fmt.Errorf("connection reset")
}
