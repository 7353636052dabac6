package postgres

import (
	"fmt"
	"testing"

	"storefront/internal/infra/persistence/model"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestUniqueConstraintViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: model.OrderNumberUniqueIndex}
	wrapped := fmt.Errorf("insert orders: %w", pgErr)

	assert.True(t, isUniqueConstraintViolation(wrapped))
	assert.Equal(t, model.OrderNumberUniqueIndex, violatedConstraint(wrapped))

	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.Empty(t, violatedConstraint(gorm.ErrDuplicatedKey))

	assert.False(t, isUniqueConstraintViolation(&pgconn.PgError{Code: pgForeignKeyViolation}))
}

func TestForeignKeyAndNotNullViolation(t *testing.T) {
	assert.True(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: pgForeignKeyViolation}))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: pgNotNullViolation}))
	assert.True(t, isNotNullConstraintViolation(fmt.Errorf(`null value in column "city" violates not-null constraint`)))
	assert.False(t, isNotNullConstraintViolation(fmt.Errorf("connection reset")))
}
