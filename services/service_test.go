package services

import (
	"path/filepath"
	"testing"

	"food-express/config"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.InitDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return db
}
