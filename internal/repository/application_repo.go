package repository

import (
	"CareerBridge/internal/model"
	"context"

	"gorm.io/gorm"
)

type ApplicationRepo interface {
	ExistsApplication(ctx context.Context, userID, jobID uint64) (bool, error)
	CreateApplication(ctx context.Context, application *model.JobApplication) error
	ListUserApplications(ctx context.Context, userID uint64) ([]*model.UserApplicationRow, error)
	ListApplications(ctx context.Context) ([]*model.AdminApplicationRow, error)
}

type ApplicationRepoImpl struct {
	db *gorm.DB
}

func NewApplicationRepo(db *gorm.DB) ApplicationRepo {
	return &ApplicationRepoImpl{db: db}
}

func (s *ApplicationRepoImpl) ExistsApplication(ctx context.Context, userID, jobID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.JobApplication{}).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateApplication uk_application 冲突时返回 ErrDuplicateKey
func (s *ApplicationRepoImpl) CreateApplication(ctx context.Context, application *model.JobApplication) error {
	err := s.db.WithContext(ctx).Omit("User", "Job").Create(application).Error
	if isDuplicateKey(err) {
		return ErrDuplicateKey
	}
	return err
}

func (s *ApplicationRepoImpl) ListUserApplications(ctx context.Context, userID uint64) ([]*model.UserApplicationRow, error) {
	rows := make([]*model.UserApplicationRow, 0)
	err := s.db.WithContext(ctx).
		Table("job_applications AS ja").
		Select("ja.id, ja.job_id, ja.status, ja.cover_letter, ja.applied_at, j.title, j.company, j.location, j.job_type").
		Joins("JOIN jobs j ON ja.job_id = j.id").
		Where("ja.user_id = ?", userID).
		Order("ja.applied_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *ApplicationRepoImpl) ListApplications(ctx context.Context) ([]*model.AdminApplicationRow, error) {
	rows := make([]*model.AdminApplicationRow, 0)
	err := s.db.WithContext(ctx).
		Table("job_applications AS ja").
		Select("ja.id, ja.user_id, ja.job_id, ja.status, ja.applied_at, u.username, u.email, j.title AS job_title, j.company").
		Joins("JOIN users u ON ja.user_id = u.id").
		Joins("JOIN jobs j ON ja.job_id = j.id").
		Order("ja.applied_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
