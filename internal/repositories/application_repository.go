package repositories

import (
	"errors"
	"time"

	"jobmatch_backend/internal/models"

	"gorm.io/gorm"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplicationRepository interface {
	Create(db *gorm.DB, application *models.Application) error
	FindByID(db *gorm.DB, id string) (*models.Application, error)
	// UpdateStatus overwrites the status unconditionally. Any string is
	// accepted; there is no enumerated status set beyond the initial one.
	UpdateStatus(db *gorm.DB, id, status string) error
	ListByUser(db *gorm.DB, userID string) ([]models.Application, error)
	// ListAllByScore returns every application ranked by match score,
	// highest first. This is the admin review ordering.
	ListAllByScore(db *gorm.DB) ([]models.Application, error)
	CountAll(db *gorm.DB) (int64, error)
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, application *models.Application) error {
	return db.Create(application).Error
}

func (r *ApplicationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Application, error) {
	var application models.Application
	err := db.Preload("Job").Preload("Resume").First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) UpdateStatus(db *gorm.DB, id, status string) error {
	result := db.Model(&models.Application{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) ListByUser(db *gorm.DB, userID string) ([]models.Application, error) {
	var applications []models.Application
	err := db.Preload("Job").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) ListAllByScore(db *gorm.DB) ([]models.Application, error) {
	var applications []models.Application
	err := db.Preload("Job").Preload("User").
		Order("match_score DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Application{}).Count(&count).Error
	return count, err
}
