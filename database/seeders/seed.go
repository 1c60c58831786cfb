package seeders

import (
	"log"
	"os"

	serviceModel "salon-booking/models/service"
	userModel "salon-booking/models/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedServiceCatalog inserts the starter catalog when the table is empty.
func SeedServiceCatalog(db *gorm.DB) {
	log.Printf("🔍 Checking service catalog data integrity...")

	var count int64
	if err := db.Model(&serviceModel.Service{}).Count(&count).Error; err != nil {
		log.Printf("❌ Failed to check service catalog: %v", err)
		return
	}
	if count > 0 {
		return
	}

	services := []serviceModel.Service{
		{Name: "Haircut", Price: 500, TaxRate: 5, Duration: 30, Category: "Hair"},
		{Name: "Hair Coloring", Price: 1500, TaxRate: 5, Duration: 90, Category: "Hair"},
		{Name: "Beard Trim", Price: 300, TaxRate: 5, Duration: 15, Category: "Hair"},
		{Name: "Manicure", Price: 600, TaxRate: 5, Duration: 45, Category: "Nails"},
		{Name: "Pedicure", Price: 700, TaxRate: 5, Duration: 45, Category: "Nails"},
		{Name: "Facial", Price: 1200, TaxRate: 5, Duration: 60, Category: "Skin"},
		{Name: "Full Body Massage", Price: 2000, TaxRate: 5, Duration: 60, Category: "Spa"},
	}

	if err := db.Create(&services).Error; err != nil {
		log.Printf("❌ Failed to seed service catalog: %v", err)
		return
	}
	log.Printf("✅ Seeded %d catalog services", len(services))
}

// SeedAdminUser creates the initial admin account from ADMIN_PHONE and
// ADMIN_PASSWORD when no admin exists yet.
func SeedAdminUser(db *gorm.DB) {
	phone := os.Getenv("ADMIN_PHONE")
	password := os.Getenv("ADMIN_PASSWORD")
	if phone == "" || password == "" {
		return
	}

	var count int64
	if err := db.Model(&userModel.User{}).Where("role = ?", "admin").Count(&count).Error; err != nil {
		log.Printf("❌ Failed to check admin user: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("❌ Failed to hash admin password: %v", err)
		return
	}

	admin := userModel.User{
		Uuid:         uuid.NewString(),
		Name:         "Administrator",
		Phone:        phone,
		PasswordHash: string(hash),
		Role:         "admin",
		IsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("❌ Failed to seed admin user: %v", err)
		return
	}
	log.Printf("✅ Seeded admin user %s", phone)
}
