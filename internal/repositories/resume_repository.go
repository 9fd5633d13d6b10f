package repositories

import (
	"errors"

	"jobmatch_backend/internal/models"

	"gorm.io/gorm"
)

var ErrResumeNotFound = errors.New("resume not found")

type ResumeRepository interface {
	Create(db *gorm.DB, resume *models.Resume) error
	FindByID(db *gorm.DB, id string) (*models.Resume, error)
	// FindLatestByUser returns the resume with the newest creation
	// timestamp, or ErrResumeNotFound when the user has none.
	FindLatestByUser(db *gorm.DB, userID string) (*models.Resume, error)
	ListByUser(db *gorm.DB, userID string) ([]models.Resume, error)
}

type ResumeRepositoryImpl struct{}

func NewResumeRepository() ResumeRepository {
	return &ResumeRepositoryImpl{}
}

func (r *ResumeRepositoryImpl) Create(db *gorm.DB, resume *models.Resume) error {
	return db.Create(resume).Error
}

func (r *ResumeRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Resume, error) {
	var resume models.Resume
	err := db.First(&resume, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResumeNotFound
		}
		return nil, err
	}
	return &resume, nil
}

func (r *ResumeRepositoryImpl) FindLatestByUser(db *gorm.DB, userID string) (*models.Resume, error) {
	var resume models.Resume
	err := db.Where("user_id = ?", userID).Order("created_at DESC").First(&resume).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResumeNotFound
		}
		return nil, err
	}
	return &resume, nil
}

func (r *ResumeRepositoryImpl) ListByUser(db *gorm.DB, userID string) ([]models.Resume, error) {
	var resumes []models.Resume
	err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&resumes).Error
	return resumes, err
}
