package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationHelpers(t *testing.T) {
	unique := errors.Wrap(&pgconn.PgError{Code: "23505"}, "insert review")
	foreignKey := &pgconn.PgError{Code: "23503"}
	notNull := &pgconn.PgError{Code: "23502"}
	check := &pgconn.PgError{Code: "23514"}

	assert.True(t, isUniqueConstraintViolation(unique))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(foreignKey))

	assert.True(t, isForeignKeyConstraintViolation(foreignKey))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.False(t, isForeignKeyConstraintViolation(unique))

	assert.True(t, isNotNullConstraintViolation(notNull))
	assert.False(t, isNotNullConstraintViolation(errors.New("boom")))

	assert.True(t, isCheckConstraintViolation(check))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
}
