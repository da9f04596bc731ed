package service

import (
	"CareerBridge/internal/api/dto"
	"CareerBridge/internal/model"
	"CareerBridge/internal/pkg/consts"
	"CareerBridge/internal/pkg/recommend"
	"CareerBridge/internal/repository"
	"context"
	log "log/slog"
	"math"

	"github.com/jinzhu/copier"
)

type RecommendationService interface {
	// Regenerate 重算并整体替换用户的推荐，失败只记录日志
	Regenerate(ctx context.Context, userID uint64)
	ListJobRecommendations(ctx context.Context, userID uint64) ([]*dto.JobRecommendationDTO, error)
	ListCourseRecommendations(ctx context.Context, userID uint64) ([]*dto.CourseRecommendationDTO, error)
}

type RecommendationServiceImpl struct {
	profileRepo        repository.ProfileRepo
	jobRepo            repository.JobRepo
	courseRepo         repository.CourseRepo
	recommendationRepo repository.RecommendationRepo
	scorer             *recommend.Scorer
}

func NewRecommendationService(
	profileRepo repository.ProfileRepo,
	jobRepo repository.JobRepo,
	courseRepo repository.CourseRepo,
	recommendationRepo repository.RecommendationRepo,
	scorer *recommend.Scorer,
) RecommendationService {
	return &RecommendationServiceImpl{
		profileRepo:        profileRepo,
		jobRepo:            jobRepo,
		courseRepo:         courseRepo,
		recommendationRepo: recommendationRepo,
		scorer:             scorer,
	}
}

func (s *RecommendationServiceImpl) Regenerate(ctx context.Context, userID uint64) {
	if err := s.regenerate(ctx, userID); err != nil {
		log.ErrorContext(ctx, "regenerate recommendations failed", "user_id", userID, "err", err)
	}
}

func (s *RecommendationServiceImpl) regenerate(ctx context.Context, userID uint64) error {
	profile, err := s.profileRepo.GetProfileByUserId(ctx, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return nil
	}

	jobs, err := s.jobRepo.ListActiveJobSkills(ctx)
	if err != nil {
		return err
	}
	courses, err := s.courseRepo.ListCourseSkills(ctx)
	if err != nil {
		return err
	}

	user := recommend.NewSkillSet(
		profile.ProgrammingLanguages,
		profile.Frameworks,
		profile.Databases,
		profile.Tools,
	)

	jobCandidates := make([]recommend.Candidate, 0, len(jobs))
	for _, job := range jobs {
		jobCandidates = append(jobCandidates, recommend.Candidate{ID: job.ID, Skills: job.SkillsRequired})
	}
	courseCandidates := make([]recommend.Candidate, 0, len(courses))
	for _, course := range courses {
		courseCandidates = append(courseCandidates, recommend.Candidate{ID: course.ID, Skills: course.SkillsCovered})
	}

	results := s.scorer.Score(user, jobCandidates, courseCandidates)

	recs := make([]*model.Recommendation, 0, len(results))
	for _, r := range results {
		recs = append(recs, toRecommendation(userID, r))
	}

	if err = s.recommendationRepo.ReplaceForUser(ctx, userID, recs); err != nil {
		return err
	}

	log.InfoContext(ctx, "recommendations regenerated", "user_id", userID, "count", len(recs))
	return nil
}

func toRecommendation(userID uint64, r recommend.Result) *model.Recommendation {
	targetID := r.TargetID
	rec := &model.Recommendation{
		UserID: userID,
		Score:  math.Round(r.Score*10000) / 10000, // DECIMAL(5,4)
		Reason: r.Reason,
	}
	switch r.Type {
	case recommend.TypeJob:
		rec.RecommendationType = consts.RecommendationTypeJob
		rec.JobID = &targetID
	case recommend.TypeCourse:
		rec.RecommendationType = consts.RecommendationTypeCourse
		rec.CourseID = &targetID
	}
	return rec
}

func (s *RecommendationServiceImpl) ListJobRecommendations(ctx context.Context, userID uint64) ([]*dto.JobRecommendationDTO, error) {
	rows, err := s.jobRepo.ListJobsWithRecommendation(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.JobRecommendationDTO, 0, len(rows))
	for _, row := range rows {
		d := &dto.JobRecommendationDTO{}
		if err = copier.Copy(&d.JobDTO, &row.Job); err != nil {
			return nil, err
		}
		d.RecommendationScore = row.RecommendationScore
		d.RecommendationReason = row.RecommendationReason
		d.ApplicationStatus = row.ApplicationStatus
		d.AppliedAt = row.AppliedAt
		d.Applied = row.ApplicationStatus != nil
		res = append(res, d)
	}
	return res, nil
}

func (s *RecommendationServiceImpl) ListCourseRecommendations(ctx context.Context, userID uint64) ([]*dto.CourseRecommendationDTO, error) {
	rows, err := s.recommendationRepo.ListCourseRecommendations(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.CourseRecommendationDTO, 0, len(rows))
	for _, row := range rows {
		d := &dto.CourseRecommendationDTO{}
		if err = copier.Copy(&d.CourseDetailDTO, &row.Course); err != nil {
			return nil, err
		}
		d.RecommendationScore = row.RecommendationScore
		d.RecommendationReason = row.RecommendationReason
		res = append(res, d)
	}
	return res, nil
}
