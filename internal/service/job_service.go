package service

import (
	"CareerBridge/internal/api/dto"
	"CareerBridge/internal/model"
	"CareerBridge/internal/pkg/consts"
	"CareerBridge/internal/pkg/es"
	"CareerBridge/internal/pkg/util"
	"CareerBridge/internal/repository"
	"context"
	log "log/slog"
	"strings"
	"time"

	"github.com/jinzhu/copier"
)

const (
	defaultSearchSize = 10
	maxSearchSize     = 50
)

type JobService interface {
	ListJobs(ctx context.Context) ([]*dto.JobDTO, error)
	CreateJob(ctx context.Context, creatorID uint64, dto *dto.SaveJobDTO) (uint64, error)
	UpdateJob(ctx context.Context, id uint64, dto *dto.SaveJobDTO) error
	DeleteJob(ctx context.Context, id uint64) error
	SearchJobs(ctx context.Context, query string, from, size int) ([]*dto.JobSearchDTO, error)
	CloseExpiredJobs(ctx context.Context, now time.Time) (int64, error)
}

type JobServiceImpl struct {
	jobRepo   repository.JobRepo
	jobESRepo es.JobRepo
}

func NewJobService(jobRepo repository.JobRepo, jobESRepo es.JobRepo) JobService {
	return &JobServiceImpl{
		jobRepo:   jobRepo,
		jobESRepo: jobESRepo,
	}
}

func (s *JobServiceImpl) ListJobs(ctx context.Context) ([]*dto.JobDTO, error) {
	jobs, err := s.jobRepo.ListJobs(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.JobDTO, 0, len(jobs))
	if err = copier.Copy(&res, &jobs); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *JobServiceImpl) CreateJob(ctx context.Context, creatorID uint64, save *dto.SaveJobDTO) (uint64, error) {
	if isBlank(save.Title) || isBlank(save.Company) || isBlank(save.Description) {
		return 0, ErrJobFieldsRequired
	}

	job := &model.Job{
		JobType: consts.DefaultJobType,
		Status:  consts.JobStatusActive,
	}
	if creatorID != 0 {
		job.CreatedBy = &creatorID
	}
	if err := applyJobFields(job, save); err != nil {
		return 0, err
	}

	if err := s.jobRepo.CreateJob(ctx, job); err != nil {
		return 0, err
	}

	s.indexJob(ctx, job)
	return job.ID, nil
}

func (s *JobServiceImpl) UpdateJob(ctx context.Context, id uint64, save *dto.SaveJobDTO) error {
	job, err := s.jobRepo.GetJobById(ctx, id)
	if err != nil {
		return err
	}
	if job == nil {
		return ErrJobNotFound
	}

	if err = applyJobFields(job, save); err != nil {
		return err
	}
	if err = s.jobRepo.UpdateJob(ctx, job); err != nil {
		return err
	}

	s.indexJob(ctx, job)
	return nil
}

func (s *JobServiceImpl) DeleteJob(ctx context.Context, id uint64) error {
	affected, err := s.jobRepo.DeleteJob(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrJobNotFound
	}

	if err = s.jobESRepo.DeleteJob(ctx, id); err != nil {
		log.WarnContext(ctx, "delete job from index failed", "job_id", id, "err", err)
	}
	return nil
}

func (s *JobServiceImpl) SearchJobs(ctx context.Context, query string, from, size int) ([]*dto.JobSearchDTO, error) {
	if from < 0 {
		from = 0
	}
	if size <= 0 {
		size = defaultSearchSize
	}
	if size > maxSearchSize {
		size = maxSearchSize
	}

	docs, err := s.jobESRepo.SearchJobs(ctx, strings.TrimSpace(query), from, size)
	if err != nil {
		log.ErrorContext(ctx, "search jobs failed", "err", err)
		return nil, ErrSearchUnavailable
	}

	res := make([]*dto.JobSearchDTO, 0, len(docs))
	for _, doc := range docs {
		res = append(res, &dto.JobSearchDTO{
			ID:        doc.ID,
			Title:     doc.Title,
			Company:   doc.Company,
			Location:  doc.Location,
			JobType:   doc.JobType,
			Skills:    util.SplitSkills(doc.Skills),
			CreatedAt: doc.CreatedAt,
		})
	}
	return res, nil
}

// CloseExpiredJobs 截止日期早于今天的在招岗位改为 Closed
func (s *JobServiceImpl) CloseExpiredJobs(ctx context.Context, now time.Time) (int64, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	jobs, err := s.jobRepo.ListExpiredActiveJobs(ctx, today)
	if err != nil {
		return 0, err
	}
	if len(jobs) == 0 {
		return 0, nil
	}

	ids := make([]uint64, 0, len(jobs))
	for _, job := range jobs {
		ids = append(ids, job.ID)
	}

	closed, err := s.jobRepo.CloseJobs(ctx, ids)
	if err != nil {
		return 0, err
	}

	for _, job := range jobs {
		job.Status = consts.JobStatusClosed
		s.indexJob(ctx, job)
	}
	return closed, nil
}

// indexJob 索引失败不影响主流程
func (s *JobServiceImpl) indexJob(ctx context.Context, job *model.Job) {
	doc := &es.JobES{
		ID:          job.ID,
		Title:       job.Title,
		Company:     job.Company,
		JobType:     job.JobType,
		Description: job.Description,
		Skills:      job.SkillsRequired,
		Status:      job.Status,
		CreatedAt:   job.CreatedAt,
	}
	if job.Location != nil {
		doc.Location = *job.Location
	}

	if err := s.jobESRepo.IndexJob(ctx, doc); err != nil {
		log.WarnContext(ctx, "index job failed", "job_id", job.ID, "err", err)
	}
}

func applyJobFields(job *model.Job, save *dto.SaveJobDTO) error {
	if err := copier.CopyWithOption(job, save, copier.Option{IgnoreEmpty: true}); err != nil {
		return err
	}

	if save.SkillsRequired != nil {
		job.SkillsRequired = util.NormalizeSkillString(*save.SkillsRequired)
	}

	if save.ApplicationDeadline != nil {
		if *save.ApplicationDeadline == "" {
			job.ApplicationDeadline = nil
		} else {
			deadline, err := time.ParseInLocation(time.DateOnly, *save.ApplicationDeadline, time.Local)
			if err != nil {
				return ErrParamInvalid
			}
			job.ApplicationDeadline = &deadline
		}
	}
	return nil
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
