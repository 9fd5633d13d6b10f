package services

import (
	"strings"

	"jobmatch_backend/internal/models"
	"jobmatch_backend/internal/repositories"
	"jobmatch_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ResumeService interface {
	CreateResume(db *gorm.DB, userID, content string) (*models.Resume, error)
	LatestResume(db *gorm.DB, userID string) (*models.Resume, error)
	ListResumes(db *gorm.DB, userID string) ([]models.Resume, error)
}

type ResumeServiceImpl struct {
	resumeRepo repositories.ResumeRepository
}

func NewResumeService(resumeRepo repositories.ResumeRepository) ResumeService {
	return &ResumeServiceImpl{resumeRepo: resumeRepo}
}

// CreateResume stores a new immutable resume for the user. Content must
// be non-empty after trimming; the store itself does not enforce this.
func (s *ResumeServiceImpl) CreateResume(db *gorm.DB, userID, content string) (*models.Resume, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.ErrEmptyResume
	}

	resume := &models.Resume{
		UserID:  userID,
		Content: content,
	}
	if err := s.resumeRepo.Create(db, resume); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return resume, nil
}

func (s *ResumeServiceImpl) LatestResume(db *gorm.DB, userID string) (*models.Resume, error) {
	resume, err := s.resumeRepo.FindLatestByUser(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrResumeNotFound) {
			return nil, apperrors.ErrResumeNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return resume, nil
}

func (s *ResumeServiceImpl) ListResumes(db *gorm.DB, userID string) ([]models.Resume, error) {
	resumes, err := s.resumeRepo.ListByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return resumes, nil
}
