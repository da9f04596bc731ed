package repository

import (
	"CareerBridge/internal/model"
	"context"

	"gorm.io/gorm"
)

type ResumeRepo interface {
	ListResumes(ctx context.Context, userID uint64) ([]*model.UserResume, error)
	CreateResume(ctx context.Context, resume *model.UserResume) error
	DeleteResume(ctx context.Context, id, userID uint64) (int64, error)
	CreateResumeFile(ctx context.Context, file *model.UserResumeFile) error
	ListResumeFiles(ctx context.Context, userID uint64) ([]*model.UserResumeFile, error)
}

type ResumeRepoImpl struct {
	db *gorm.DB
}

func NewResumeRepo(db *gorm.DB) ResumeRepo {
	return &ResumeRepoImpl{db: db}
}

func (s *ResumeRepoImpl) ListResumes(ctx context.Context, userID uint64) ([]*model.UserResume, error) {
	resumes := make([]*model.UserResume, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&resumes).Error
	if err != nil {
		return nil, err
	}
	return resumes, nil
}

func (s *ResumeRepoImpl) CreateResume(ctx context.Context, resume *model.UserResume) error {
	return s.db.WithContext(ctx).Omit("User").Create(resume).Error
}

// DeleteResume 只删除属于该用户的简历
func (s *ResumeRepoImpl) DeleteResume(ctx context.Context, id, userID uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.UserResume{})
	return result.RowsAffected, result.Error
}

func (s *ResumeRepoImpl) CreateResumeFile(ctx context.Context, file *model.UserResumeFile) error {
	return s.db.WithContext(ctx).Omit("User").Create(file).Error
}

// ListResumeFiles 不加载 extracted_text
func (s *ResumeRepoImpl) ListResumeFiles(ctx context.Context, userID uint64) ([]*model.UserResumeFile, error) {
	files := make([]*model.UserResumeFile, 0)
	err := s.db.WithContext(ctx).
		Select("id", "user_id", "file_name", "object_key", "mime_type", "size", "created_at").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}
