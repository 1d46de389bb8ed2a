package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"hostelhub/backend/internal/api/handler"
	"hostelhub/backend/internal/models"
	"hostelhub/backend/internal/storage"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	storageSvc := storage.NewStorageService(db, nil) // No redis needed for admin CLI

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "promote":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin promote <email>")
			os.Exit(1)
		}
		if err := setRole(storageSvc, os.Args[2], models.RoleAdmin); err != nil {
			log.Fatalf("Error promoting user: %v", err)
		}
		fmt.Printf("User %s is now an administrator.\n", os.Args[2])
	case "demote":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin demote <email>")
			os.Exit(1)
		}
		if err := setRole(storageSvc, os.Args[2], models.RoleStudent); err != nil {
			log.Fatalf("Error demoting user: %v", err)
		}
		fmt.Printf("User %s is now a student.\n", os.Args[2])
	case "skills":
		if len(os.Args) != 4 {
			fmt.Println("Usage: admin skills <email> <category,category,...>")
			os.Exit(1)
		}
		if err := setSkills(storageSvc, os.Args[2], os.Args[3]); err != nil {
			log.Fatalf("Error setting skills: %v", err)
		}
		fmt.Printf("Specialties updated for %s.\n", os.Args[2])
	case "token":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin token <email>")
			os.Exit(1)
		}
		user, err := storageSvc.GetUserByEmail(os.Args[2])
		if err != nil {
			log.Fatalf("Error loading user: %v", err)
		}
		token, err := handler.GenerateToken(user)
		if err != nil {
			log.Fatalf("Error signing token: %v", err)
		}
		fmt.Println(token)
	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}

func setRole(s *storage.Service, email string, role models.Role) error {
	user, err := s.GetUserByEmail(email)
	if err != nil {
		return err
	}
	user.Role = role
	return s.SaveUser(user)
}

func setSkills(s *storage.Service, email, csv string) error {
	user, err := s.GetUserByEmail(email)
	if err != nil {
		return err
	}
	var skills []string
	for _, raw := range strings.Split(csv, ",") {
		cat := models.Category(strings.TrimSpace(raw))
		if !cat.IsValid() {
			return fmt.Errorf("unknown category %q", raw)
		}
		skills = append(skills, string(cat))
	}
	user.Specialties = skills
	return s.SaveUser(user)
}
