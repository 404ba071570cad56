// Command admin_seed bootstraps the first admin account and the council's
// default revenue types.
package main

import (
	"log"
	"os"

	"revas/internal/config"
	"revas/internal/models"
	"revas/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadEnv()

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	adminPhone := os.Getenv("ADMIN_PHONE")

	if adminEmail == "" || adminPassword == "" || adminPhone == "" {
		log.Fatal("ADMIN_EMAIL, ADMIN_PASSWORD, and ADMIN_PHONE must be set in environment")
	}

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if repositories.DB != nil {
			sqlDB, err := repositories.DB.DB()
			if err != nil {
				log.Printf("⚠️ Failed to get SQL DB instance: %v", err)
			} else if err := sqlDB.Close(); err != nil {
				log.Printf("⚠️ Failed to close PostgreSQL connection: %v", err)
			}
		}
		if repositories.CacheService != nil {
			if err := repositories.CacheService.Close(); err != nil {
				log.Printf("⚠️ Failed to close Redis connection: %v", err)
			}
		}
	}()

	seedAdmin(adminEmail, adminPassword, adminPhone)
	seedRevenueTypes()
}

func seedAdmin(email, password, phone string) {
	var existing models.User
	if err := repositories.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Println("Admin user already exists")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin := models.User{
		Email:        email,
		Password:     string(hashedPassword),
		Name:         "System Administrator",
		Phone:        phone,
		Role:         models.RoleAdmin,
		Status:       "active",
		TokenVersion: 1,
	}

	if err := repositories.DB.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin user:", err)
	}

	log.Println("✅ Admin account created successfully!")
}

func seedRevenueTypes() {
	defaults := []models.RevenueType{
		{
			Name:              "Business Registration Fee",
			Description:       "One-time fee to put a business on the revenue roll",
			BaseAmount:        7500,
			CalculationMethod: models.CalculationVariable,
			Frequency:         models.FrequencyOneTime,
			IsActive:          true,
		},
		{
			Name:              "Annual Permit Fee",
			BaseAmount:        10000,
			Description:       "Yearly operating permit fee",
			CalculationMethod: models.CalculationVariable,
			Frequency:         models.FrequencyAnnual,
			IsActive:          true,
		},
		{
			Name:              "Signage Permit Fee",
			BaseAmount:        2000,
			Description:       "Fee for outdoor signage and advertising",
			CalculationMethod: models.CalculationVariable,
			Frequency:         models.FrequencyAnnual,
			IsActive:          true,
		},
		{
			Name:              "Environmental Levy",
			BaseAmount:        1000,
			Description:       "Yearly sanitation and environment levy",
			CalculationMethod: models.CalculationVariable,
			Frequency:         models.FrequencyAnnual,
			IsActive:          true,
		},
		{
			Name:              "Shop Premises Tax",
			BaseAmount:        5000,
			Description:       "Yearly tax on occupied premises",
			CalculationMethod: models.CalculationVariable,
			Frequency:         models.FrequencyAnnual,
			IsActive:          true,
		},
	}

	for _, rt := range defaults {
		var existing models.RevenueType
		if err := repositories.DB.Where("name = ?", rt.Name).First(&existing).Error; err == nil {
			continue
		}
		if err := repositories.DB.Create(&rt).Error; err != nil {
			log.Fatalf("Failed to seed revenue type %q: %v", rt.Name, err)
		}
		log.Printf("Seeded revenue type: %s", rt.Name)
	}

	log.Println("✅ Revenue types seeded")
}
