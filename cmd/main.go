package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"hostelhub/backend/internal/api/handler"
	"hostelhub/backend/internal/models"
	"hostelhub/backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDependencies() (*gorm.DB, *redis.Client) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	// Redis backs the complaint submission throttle only; without it the
	// portal still runs, just unthrottled.
	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       0,
		})
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Fatalf("Failed to connect Redis: %v", err)
		}
	} else {
		log.Println("REDIS_ADDR not set, submission throttle disabled")
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Complaint{},
		&models.Announcement{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database connections established, migrations complete.")
	return db, rdb
}

func main() {
	log.Println("Starting HostelHub Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	db, rdb := setupDependencies()
	s := storage.NewStorageService(db, rdb)
	h := handler.NewHandler(s)

	r := gin.Default()
	r.GET("/health", h.Health)

	api := r.Group("/api", handler.AuthRequired())
	{
		api.POST("/complaints", h.CreateComplaint)
		api.GET("/complaints", h.ListComplaints)
		api.GET("/complaints/my", h.MyComplaints)
		api.GET("/complaints/stats", h.ComplaintStats)
		api.GET("/complaints/:id", h.GetComplaint)
		api.PUT("/complaints/:id", h.UpdateComplaint)

		api.GET("/announcements", h.StudentAnnouncements)
		api.GET("/announcements/all", h.AllAnnouncements)
		api.POST("/announcements", h.CreateAnnouncement)
		api.PUT("/announcements/:id", h.UpdateAnnouncement)
		api.DELETE("/announcements/:id", h.DeleteAnnouncement)

		api.GET("/leaderboard", h.Leaderboard)
		api.GET("/activity", h.Activity)
		api.GET("/staff", h.ListStaff)
	}

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	server := &http.Server{
		Addr:           addr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
