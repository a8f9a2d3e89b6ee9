package config

import (
	"log"
	"os"

	"food-ordering-api/models"

	"golang.org/x/crypto/bcrypt"
)

// Bootstrap applies the idempotent schema migration and seeds the admin account.
// It is a deliberate startup step invoked from main, not a side effect of opening
// the connection.
func Bootstrap() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.MenuItem{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	seedAdmin()
}

// seedAdmin creates the initial admin user from ADMIN_EMAIL/ADMIN_PASSWORD if it
// does not exist yet. Safe to run on every start.
func seedAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var existing models.User
	if err := DB.Where("email = ?", email).First(&existing).Error; err == nil {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("Failed to hash admin password:", err)
		return
	}

	admin := models.User{
		Name:         getEnv("ADMIN_NAME", "Administrator"),
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Println("Failed to seed admin user:", err)
		return
	}

	log.Printf("Seeded admin user: %s", email)
}
