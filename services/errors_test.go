package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsConstraintViolation(t *testing.T) {
	conflicts := []error{
		errors.New("constraint failed: UNIQUE constraint failed: users.email (2067)"),
		errors.New("constraint failed: FOREIGN KEY constraint failed (787)"),
		gorm.ErrDuplicatedKey,
		gorm.ErrForeignKeyViolated,
	}
	for _, err := range conflicts {
		assert.True(t, isConstraintViolation(err), err.Error())
	}

	// other constraint classes are store failures, not conflicts
	notConflicts := []error{
		errors.New("constraint failed: NOT NULL constraint failed: users.name (1299)"),
		errors.New("constraint failed: CHECK constraint failed: price (275)"),
		errors.New("database is locked"),
	}
	for _, err := range notConflicts {
		assert.False(t, isConstraintViolation(err), err.Error())
	}
}
