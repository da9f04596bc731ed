package service

import (
	"CareerBridge/internal/api/dto"
	"CareerBridge/internal/model"
	"CareerBridge/internal/pkg/consts"
	"CareerBridge/internal/repository"
	"context"
	"errors"
	log "log/slog"

	"github.com/jinzhu/copier"
)

// EventPublisher 投递事件发布方
type EventPublisher interface {
	PublishApplication(ctx context.Context, event *dto.ApplicationEvent) error
}

type ApplicationService interface {
	ApplyJob(ctx context.Context, userID uint64, dto *dto.ApplyJobDTO) (uint64, error)
	ListMyApplications(ctx context.Context, userID uint64) ([]*dto.MyApplicationDTO, error)
	ListApplications(ctx context.Context) ([]*dto.AdminApplicationDTO, error)
}

type ApplicationServiceImpl struct {
	jobRepo         repository.JobRepo
	applicationRepo repository.ApplicationRepo
	publisher       EventPublisher
}

func NewApplicationService(jobRepo repository.JobRepo, applicationRepo repository.ApplicationRepo, publisher EventPublisher) ApplicationService {
	return &ApplicationServiceImpl{
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
		publisher:       publisher,
	}
}

func (s *ApplicationServiceImpl) ApplyJob(ctx context.Context, userID uint64, apply *dto.ApplyJobDTO) (uint64, error) {
	job, err := s.jobRepo.GetActiveJobById(ctx, apply.JobID)
	if err != nil {
		return 0, err
	}
	if job == nil {
		return 0, ErrJobNotAvailable
	}

	exists, err := s.applicationRepo.ExistsApplication(ctx, userID, apply.JobID)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, ErrAlreadyApplied
	}

	application := &model.JobApplication{
		UserID:      userID,
		JobID:       apply.JobID,
		CoverLetter: apply.CoverLetter,
		Status:      consts.ApplicationStatusApplied,
	}
	if err = s.applicationRepo.CreateApplication(ctx, application); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return 0, ErrAlreadyApplied
		}
		return 0, err
	}

	event := &dto.ApplicationEvent{
		ApplicationID: application.ID,
		UserID:        userID,
		JobID:         job.ID,
		JobTitle:      job.Title,
		Company:       job.Company,
		AppliedAt:     application.AppliedAt,
	}
	if err = s.publisher.PublishApplication(ctx, event); err != nil {
		log.WarnContext(ctx, "publish application event failed", "application_id", application.ID, "err", err)
	}

	return application.ID, nil
}

func (s *ApplicationServiceImpl) ListMyApplications(ctx context.Context, userID uint64) ([]*dto.MyApplicationDTO, error) {
	rows, err := s.applicationRepo.ListUserApplications(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.MyApplicationDTO, 0, len(rows))
	if err = copier.Copy(&res, &rows); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *ApplicationServiceImpl) ListApplications(ctx context.Context) ([]*dto.AdminApplicationDTO, error) {
	rows, err := s.applicationRepo.ListApplications(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.AdminApplicationDTO, 0, len(rows))
	if err = copier.Copy(&res, &rows); err != nil {
		return nil, err
	}
	return res, nil
}
