// Seeds the reference users, school and department used by a fresh install.
// Safe to re-run: it exits without writing when any user already exists.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"staff-promotion-api/config"
	"staff-promotion-api/models"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.InitDB()

	if err := config.DB.AutoMigrate(
		&models.School{},
		&models.Department{},
		&models.User{},
		&models.PromotionRequest{},
		&models.PromotionReview{},
		&models.Document{},
		&models.Notification{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	var count int64
	config.DB.Model(&models.User{}).Count(&count)
	if count > 0 {
		log.Println("Users already present, nothing to seed")
		return
	}

	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "SUZAStaff001"
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	idCounter := 1001
	newUser := func(name, email string, role models.Role, rank string) *models.User {
		employeeID := fmt.Sprintf("SUZA%d", idCounter)
		idCounter++
		return &models.User{
			FullName:   name,
			Email:      email,
			Password:   string(hashed),
			Role:       role,
			EmployeeID: &employeeID,
			CurrentRank: func() *string {
				r := rank
				return &r
			}(),
			IsActive: true,
		}
	}

	dean := newUser("Dean User", "dean@suza.ac.tz", models.RoleDean, "Dean")
	hod := newUser("HOD User", "hod@suza.ac.tz", models.RoleHOD, "Senior Lecturer")
	dvc := newUser("DVC User", "dvc@suza.ac.tz", models.RoleDVC, "Professor")
	hr := newUser("HR User", "hr@suza.ac.tz", models.RoleHR, "Officer")
	admin := newUser("Admin User", "admin@suza.ac.tz", models.RoleAdmin, "Admin")
	staff := newUser("Staff User", "staff@suza.ac.tz", models.RoleAcademic, "Assistant Lecturer")

	for _, user := range []*models.User{dean, hod, dvc, hr, admin, staff} {
		if err := config.DB.Create(user).Error; err != nil {
			log.Fatalf("Failed to create user %s: %v", user.Email, err)
		}
	}

	school := models.School{
		Name:        "School of Science",
		Code:        "SCI",
		Description: "Faculty of Science and Technology",
		DeanID:      &dean.ID,
		IsActive:    true,
	}
	if err := config.DB.Create(&school).Error; err != nil {
		log.Fatalf("Failed to create school: %v", err)
	}

	department := models.Department{
		Name:        "Department of Computer Science",
		Code:        "CS",
		Description: "Department of Computer Science and IT",
		SchoolID:    school.ID,
		HeadID:      &hod.ID,
		IsActive:    true,
	}
	if err := config.DB.Create(&department).Error; err != nil {
		log.Fatalf("Failed to create department: %v", err)
	}

	// Assign school and department memberships
	config.DB.Model(dean).Update("school_id", school.ID)
	config.DB.Model(hod).Updates(map[string]interface{}{"school_id": school.ID, "department_id": department.ID})
	config.DB.Model(staff).Updates(map[string]interface{}{"school_id": school.ID, "department_id": department.ID})

	log.Println("Seed data created")
}
