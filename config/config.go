package config

import (
	"log"
	"os"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret signs tokens; populated by Load so .env values are picked up first
var JWTSecret []byte

// Load reads the optional .env file and resolves process-level settings.
func Load() {
	_ = godotenv.Load()
	JWTSecret = []byte(getEnv("JWT_SECRET", "food_ordering_super_secret_2024"))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the relational store. DB_DRIVER selects the dialect (sqlite by
// default, mysql or postgres via DB_DSN). The returned gorm handle is backed by
// database/sql's connection pool, so concurrent requests each acquire their own
// connection.
func InitDB() {
	var dialector gorm.Dialector
	switch getEnv("DB_DRIVER", "sqlite") {
	case "mysql":
		dialector = mysql.Open(getEnv("DB_DSN", "root:@tcp(localhost:3306)/online_delivery?parseTime=true"))
	case "postgres":
		dialector = postgres.Open(getEnv("DB_DSN", "host=localhost user=postgres dbname=online_delivery port=5432 sslmode=disable"))
	default:
		dialector = sqlite.Open(getEnv("DB_DSN", "food_ordering.db"))
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connected successfully")
}
