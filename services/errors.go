package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrConflict marks a uniqueness or foreign-key violation reported by the
// store. Handlers map it to 409.
var ErrConflict = errors.New("conflicts with existing data")

// ErrNotFound is returned when no row matches the requested id.
var ErrNotFound = gorm.ErrRecordNotFound

func isConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	// SQLite reports these as plain error strings, e.g.
	// "UNIQUE constraint failed: users.email". Only uniqueness and
	// foreign-key failures are conflicts; NOT NULL and CHECK stay 500s.
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint") ||
		strings.Contains(msg, "FOREIGN KEY constraint")
}
