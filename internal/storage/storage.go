package storage

import (
	"context"
	"errors"
	"fmt"
	"log"

	"hostelhub/backend/internal/apperr"
	"hostelhub/backend/internal/config"
	"hostelhub/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Storage interface {
	CreateComplaint(c *models.Complaint) error
	SaveComplaint(c *models.Complaint) error
	GetComplaintByID(id string) (*models.Complaint, error)
	ListComplaints(filter models.ComplaintFilter) ([]models.Complaint, error)
	ListComplaintsByStudent(studentID string) ([]models.Complaint, error)
	ListResolvedComplaints() ([]models.Complaint, error)
	ListRecentComplaints(limit int) ([]models.Complaint, error)

	CreateAnnouncement(a *models.Announcement) error
	SaveAnnouncement(a *models.Announcement) error
	GetAnnouncementByID(id string) (*models.Announcement, error)
	DeleteAnnouncement(id string) error
	ListAnnouncements() ([]models.Announcement, error)
	ListRecentAnnouncements(limit int) ([]models.Announcement, error)

	GetUserByID(id string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	SaveUser(u *models.User) error
	ListStaffBySpecialty(category models.Category) ([]models.User, error)

	AllowSubmission(studentID string) (bool, error)
}

// Service is the PostgreSQL/Redis implementation of Storage.
type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor. A nil Redis client disables the
// submission throttle.
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// dbErr logs a store failure and surfaces it as Unavailable.
func dbErr(op string, err error) error {
	log.Printf("ERROR: %s: %v", op, err)
	return fmt.Errorf("%s: %w", op, apperr.ErrUnavailable)
}

// --- Complaints ---

func (s *Service) CreateComplaint(c *models.Complaint) error {
	if err := s.DB.Create(c).Error; err != nil {
		return dbErr("create complaint", err)
	}
	return nil
}

func (s *Service) SaveComplaint(c *models.Complaint) error {
	if err := s.DB.Save(c).Error; err != nil {
		return dbErr("save complaint", err)
	}
	return nil
}

func (s *Service) GetComplaintByID(id string) (*models.Complaint, error) {
	var c models.Complaint
	err := s.DB.Preload("Student").Preload("ResolvedBy").
		Where("id = ?", id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, dbErr("get complaint", err)
	}
	return &c, nil
}

// ListComplaints returns complaints newest first, optionally narrowed by
// category, status and priority.
func (s *Service) ListComplaints(filter models.ComplaintFilter) ([]models.Complaint, error) {
	tx := s.DB.Preload("Student").Preload("ResolvedBy").
		Order("created_at DESC, id ASC")
	if filter.Category != nil {
		tx = tx.Where("category = ?", *filter.Category)
	}
	if filter.Status != nil {
		tx = tx.Where("status = ?", *filter.Status)
	}
	if filter.Priority != nil {
		tx = tx.Where("priority = ?", *filter.Priority)
	}
	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
	}
	var out []models.Complaint
	if err := tx.Find(&out).Error; err != nil {
		return nil, dbErr("list complaints", err)
	}
	return out, nil
}

func (s *Service) ListComplaintsByStudent(studentID string) ([]models.Complaint, error) {
	var out []models.Complaint
	err := s.DB.Where("student_id = ?", studentID).
		Order("created_at DESC, id ASC").Find(&out).Error
	if err != nil {
		return nil, dbErr("list student complaints", err)
	}
	return out, nil
}

// ListResolvedComplaints returns every resolved complaint that has a
// recorded resolver, for the staff leaderboard.
func (s *Service) ListResolvedComplaints() ([]models.Complaint, error) {
	var out []models.Complaint
	err := s.DB.Preload("ResolvedBy").
		Where("status = ? AND resolved_by_id IS NOT NULL", models.StatusResolved).
		Find(&out).Error
	if err != nil {
		return nil, dbErr("list resolved complaints", err)
	}
	return out, nil
}

func (s *Service) ListRecentComplaints(limit int) ([]models.Complaint, error) {
	var out []models.Complaint
	err := s.DB.Order("created_at DESC, id ASC").Limit(limit).Find(&out).Error
	if err != nil {
		return nil, dbErr("list recent complaints", err)
	}
	return out, nil
}

// --- Announcements ---

func (s *Service) CreateAnnouncement(a *models.Announcement) error {
	if err := s.DB.Create(a).Error; err != nil {
		return dbErr("create announcement", err)
	}
	return nil
}

func (s *Service) SaveAnnouncement(a *models.Announcement) error {
	if err := s.DB.Save(a).Error; err != nil {
		return dbErr("save announcement", err)
	}
	return nil
}

func (s *Service) GetAnnouncementByID(id string) (*models.Announcement, error) {
	var a models.Announcement
	err := s.DB.Where("id = ?", id).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, dbErr("get announcement", err)
	}
	return &a, nil
}

func (s *Service) DeleteAnnouncement(id string) error {
	res := s.DB.Where("id = ?", id).Delete(&models.Announcement{})
	if res.Error != nil {
		return dbErr("delete announcement", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (s *Service) ListAnnouncements() ([]models.Announcement, error) {
	var out []models.Announcement
	err := s.DB.Preload("CreatedBy").
		Order("created_at DESC, id ASC").Find(&out).Error
	if err != nil {
		return nil, dbErr("list announcements", err)
	}
	return out, nil
}

func (s *Service) ListRecentAnnouncements(limit int) ([]models.Announcement, error) {
	var out []models.Announcement
	err := s.DB.Order("created_at DESC, id ASC").Limit(limit).Find(&out).Error
	if err != nil {
		return nil, dbErr("list recent announcements", err)
	}
	return out, nil
}

// --- Users ---

func (s *Service) GetUserByID(id string) (*models.User, error) {
	var u models.User
	err := s.DB.Where("id = ?", id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, dbErr("get user", err)
	}
	return &u, nil
}

func (s *Service) GetUserByEmail(email string) (*models.User, error) {
	var u models.User
	err := s.DB.Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, dbErr("get user by email", err)
	}
	return &u, nil
}

func (s *Service) SaveUser(u *models.User) error {
	if err := s.DB.Save(u).Error; err != nil {
		return dbErr("save user", err)
	}
	return nil
}

// ListStaffBySpecialty returns administrators whose specialties cover the
// given complaint category.
func (s *Service) ListStaffBySpecialty(category models.Category) ([]models.User, error) {
	var out []models.User
	err := s.DB.Where("role = ? AND ? = ANY(specialties)", models.RoleAdmin, string(category)).
		Order("name ASC").Find(&out).Error
	if err != nil {
		return nil, dbErr("list staff", err)
	}
	return out, nil
}

// --- Throttle ---

// AllowSubmission checks the per-student complaint submission throttle in
// Redis. The first submission of a window sets the key TTL; without a Redis
// client the throttle is disabled and every submission is allowed.
func (s *Service) AllowSubmission(studentID string) (bool, error) {
	if s.Redis == nil {
		return true, nil
	}
	key := "submit:" + studentID
	count, err := s.Redis.Incr(s.Ctx, key).Result()
	if err != nil {
		// Throttle failures must not block complaint submission.
		log.Printf("ERROR: submission throttle for %s: %v", studentID, err)
		return true, nil
	}
	if count == 1 {
		if err := s.Redis.Expire(s.Ctx, key, config.SubmissionWindow).Err(); err != nil {
			log.Printf("ERROR: setting throttle TTL for %s: %v", studentID, err)
		}
	}
	return count <= config.MaxSubmissionsPerWindow, nil
}
