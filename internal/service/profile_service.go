package service

import (
	"CareerBridge/internal/api/dto"
	"CareerBridge/internal/model"
	"CareerBridge/internal/pkg/consts"
	"CareerBridge/internal/pkg/redis"
	"CareerBridge/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

const (
	profileLockTTL   = 5 * time.Second
	profileLockRetry = 3
)

type ProfileService interface {
	GetProfile(ctx context.Context, userID uint64) (*dto.ProfileDTO, error)
	SaveProfile(ctx context.Context, userID uint64, dto *dto.UpdateProfileDTO) error
}

type ProfileServiceImpl struct {
	profileRepo           repository.ProfileRepo
	recommendationService RecommendationService
}

func NewProfileService(profileRepo repository.ProfileRepo, recommendationService RecommendationService) ProfileService {
	return &ProfileServiceImpl{
		profileRepo:           profileRepo,
		recommendationService: recommendationService,
	}
}

func (s *ProfileServiceImpl) GetProfile(ctx context.Context, userID uint64) (*dto.ProfileDTO, error) {
	profile, err := s.profileRepo.GetProfileByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	res := &dto.ProfileDTO{}
	if err = copier.Copy(res, profile); err != nil {
		return nil, err
	}
	res.DateOfBirth = formatDate(profile.DateOfBirth)
	res.TechnicalSkills = skillsOrEmpty(profile.TechnicalSkills)
	res.SoftSkills = skillsOrEmpty(profile.SoftSkills)
	res.ProgrammingLanguages = skillsOrEmpty(profile.ProgrammingLanguages)
	res.Frameworks = skillsOrEmpty(profile.Frameworks)
	res.Databases = skillsOrEmpty(profile.Databases)
	res.Tools = skillsOrEmpty(profile.Tools)
	return res, nil
}

// SaveProfile 创建或部分更新档案，写入成功后同步重算推荐
func (s *ProfileServiceImpl) SaveProfile(ctx context.Context, userID uint64, update *dto.UpdateProfileDTO) error {
	lockKey := consts.ProfileWriteLock + strconv.FormatUint(userID, 10)
	lockValue := uuid.NewString()
	ok, err := redis.TryLock(ctx, lockKey, lockValue, profileLockTTL, profileLockRetry)
	if err != nil {
		log.ErrorContext(ctx, "acquire profile lock error", "err", err)
		return ErrSystemBusy
	}
	if !ok {
		return ErrSystemBusy
	}

	err = s.writeProfile(ctx, userID, update)
	redis.UnLock(ctx, lockKey, lockValue)
	if err != nil {
		return err
	}

	s.recommendationService.Regenerate(ctx, userID)
	return nil
}

func (s *ProfileServiceImpl) writeProfile(ctx context.Context, userID uint64, update *dto.UpdateProfileDTO) error {
	profile, err := s.profileRepo.GetProfileByUserId(ctx, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		profile = &model.UserProfile{UserID: userID}
	}

	if err = copier.CopyWithOption(profile, update, copier.Option{IgnoreEmpty: true}); err != nil {
		return err
	}
	applySkills(&profile.TechnicalSkills, update.TechnicalSkills)
	applySkills(&profile.SoftSkills, update.SoftSkills)
	applySkills(&profile.ProgrammingLanguages, update.ProgrammingLanguages)
	applySkills(&profile.Frameworks, update.Frameworks)
	applySkills(&profile.Databases, update.Databases)
	applySkills(&profile.Tools, update.Tools)
	// 读出的 DATE 可能带时间和时区，写回前截成日期
	profile.DateOfBirth = formatDate(profile.DateOfBirth)

	return s.profileRepo.SaveProfile(ctx, profile)
}

// applySkills 仅在请求携带该字段时覆盖
func applySkills(dst *model.SkillList, src *[]string) {
	if src == nil {
		return
	}
	*dst = model.NormalizeSkills(*src)
}

func skillsOrEmpty(list model.SkillList) []string {
	if list == nil {
		return []string{}
	}
	return list
}

// formatDate DATE 列可能以 RFC3339 形式读出，只保留日期部分
func formatDate(s *string) *string {
	if s == nil || len(*s) < len(time.DateOnly) {
		return s
	}
	date := (*s)[:len(time.DateOnly)]
	return &date
}
