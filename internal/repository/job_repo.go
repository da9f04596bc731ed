package repository

import (
	"CareerBridge/internal/model"
	"CareerBridge/internal/pkg/consts"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type JobRepo interface {
	GetJobById(ctx context.Context, id uint64) (*model.Job, error)
	GetActiveJobById(ctx context.Context, id uint64) (*model.Job, error)
	ListJobs(ctx context.Context) ([]*model.Job, error)
	ListActiveJobSkills(ctx context.Context) ([]*model.Job, error)
	ListJobsWithRecommendation(ctx context.Context, userID uint64) ([]*model.JobRecommendationRow, error)
	ListExpiredActiveJobs(ctx context.Context, before time.Time) ([]*model.Job, error)
	CreateJob(ctx context.Context, job *model.Job) error
	UpdateJob(ctx context.Context, job *model.Job) error
	CloseJobs(ctx context.Context, ids []uint64) (int64, error)
	DeleteJob(ctx context.Context, id uint64) (int64, error)
}

type JobRepoImpl struct {
	db *gorm.DB
}

func NewJobRepo(db *gorm.DB) JobRepo {
	return &JobRepoImpl{db: db}
}

func (s *JobRepoImpl) GetJobById(ctx context.Context, id uint64) (*model.Job, error) {
	job := &model.Job{}
	result := s.db.WithContext(ctx).First(job, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return job, nil
}

func (s *JobRepoImpl) GetActiveJobById(ctx context.Context, id uint64) (*model.Job, error) {
	job := &model.Job{}
	result := s.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, consts.JobStatusActive).
		First(job)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return job, nil
}

func (s *JobRepoImpl) ListJobs(ctx context.Context) ([]*model.Job, error) {
	jobs := make([]*model.Job, 0)
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// ListActiveJobSkills 评分所需的最小字段集
func (s *JobRepoImpl) ListActiveJobSkills(ctx context.Context) ([]*model.Job, error) {
	jobs := make([]*model.Job, 0)
	err := s.db.WithContext(ctx).
		Select("id", "skills_required").
		Where("status = ?", consts.JobStatusActive).
		Order("id").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// ListJobsWithRecommendation 全部在招岗位，按推荐分、发布时间倒序
func (s *JobRepoImpl) ListJobsWithRecommendation(ctx context.Context, userID uint64) ([]*model.JobRecommendationRow, error) {
	rows := make([]*model.JobRecommendationRow, 0)
	err := s.db.WithContext(ctx).
		Table("jobs AS j").
		Select("j.*, r.score AS recommendation_score, r.reason AS recommendation_reason, "+
			"ja.status AS application_status, ja.applied_at AS applied_at").
		Joins("LEFT JOIN recommendations r ON j.id = r.job_id AND r.user_id = ? AND r.recommendation_type = ?", userID, consts.RecommendationTypeJob).
		Joins("LEFT JOIN job_applications ja ON j.id = ja.job_id AND ja.user_id = ?", userID).
		Where("j.status = ?", consts.JobStatusActive).
		Order("r.score DESC, j.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *JobRepoImpl) ListExpiredActiveJobs(ctx context.Context, before time.Time) ([]*model.Job, error) {
	jobs := make([]*model.Job, 0)
	err := s.db.WithContext(ctx).
		Where("status = ? AND application_deadline IS NOT NULL AND application_deadline < ?", consts.JobStatusActive, before).
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *JobRepoImpl) CreateJob(ctx context.Context, job *model.Job) error {
	return s.db.WithContext(ctx).Omit("Creator").Create(job).Error
}

func (s *JobRepoImpl) UpdateJob(ctx context.Context, job *model.Job) error {
	return s.db.WithContext(ctx).Omit("Creator").Save(job).Error
}

func (s *JobRepoImpl) CloseJobs(ctx context.Context, ids []uint64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := s.db.WithContext(ctx).
		Model(&model.Job{}).
		Where("id IN ? AND status = ?", ids, consts.JobStatusActive).
		Update("status", consts.JobStatusClosed)
	return result.RowsAffected, result.Error
}

func (s *JobRepoImpl) DeleteJob(ctx context.Context, id uint64) (int64, error) {
	result := s.db.WithContext(ctx).Delete(&model.Job{}, id)
	return result.RowsAffected, result.Error
}
