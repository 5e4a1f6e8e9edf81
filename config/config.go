package config

import (
	"os"

	"food-express/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds the application configuration
type Config struct {
	AppPort   string
	DBPath    string
	JWTSecret string
	IsProd    bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	return &Config{
		AppPort:   getEnv("APP_PORT", "8080"),
		DBPath:    getEnv("DB_PATH", "food_express.db"),
		JWTSecret: getEnv("JWT_SECRET", "food_express_super_secret_2024"),
		IsProd:    os.Getenv("IS_PROD") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the SQLite database and runs migrations. The returned handle
// is passed into the services — nothing holds it as a package global, so
// tests can substitute their own store.
func InitDB(path string) (*gorm.DB, error) {
	// SQLite only honors ON DELETE CASCADE with the foreign_keys pragma on.
	db, err := gorm.Open(sqlite.Open(path+"?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.Menu{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
