package repository

import (
	"CareerBridge/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ProfileRepo interface {
	GetProfileByUserId(ctx context.Context, userID uint64) (*model.UserProfile, error)
	SaveProfile(ctx context.Context, profile *model.UserProfile) error
}

type ProfileRepoImpl struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) ProfileRepo {
	return &ProfileRepoImpl{db: db}
}

func (s *ProfileRepoImpl) GetProfileByUserId(ctx context.Context, userID uint64) (*model.UserProfile, error) {
	profile := &model.UserProfile{}
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return profile, nil
}

// SaveProfile ID 为 0 时插入，否则整行更新
func (s *ProfileRepoImpl) SaveProfile(ctx context.Context, profile *model.UserProfile) error {
	return s.db.WithContext(ctx).Omit("User").Save(profile).Error
}
