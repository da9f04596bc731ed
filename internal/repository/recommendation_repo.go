package repository

import (
	"CareerBridge/internal/model"
	"CareerBridge/internal/pkg/consts"
	"context"

	"gorm.io/gorm"
)

type RecommendationRepo interface {
	ReplaceForUser(ctx context.Context, userID uint64, recs []*model.Recommendation) error
	ListCourseRecommendations(ctx context.Context, userID uint64) ([]*model.CourseRecommendationRow, error)
}

type RecommendationRepoImpl struct {
	db *gorm.DB
}

func NewRecommendationRepo(db *gorm.DB) RecommendationRepo {
	return &RecommendationRepoImpl{db: db}
}

// ReplaceForUser 同一事务内先删后插，失败时保留旧结果
func (s *RecommendationRepoImpl) ReplaceForUser(ctx context.Context, userID uint64, recs []*model.Recommendation) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.Recommendation{}).Error; err != nil {
			return err
		}
		if len(recs) == 0 {
			return nil
		}
		for _, rec := range recs {
			rec.UserID = userID
		}
		return tx.Omit("User", "Job", "Course").Create(&recs).Error
	})
}

func (s *RecommendationRepoImpl) ListCourseRecommendations(ctx context.Context, userID uint64) ([]*model.CourseRecommendationRow, error) {
	rows := make([]*model.CourseRecommendationRow, 0)
	err := s.db.WithContext(ctx).
		Table("recommendations AS r").
		Select("c.*, r.score AS recommendation_score, r.reason AS recommendation_reason").
		Joins("JOIN courses c ON r.course_id = c.id").
		Where("r.user_id = ? AND r.recommendation_type = ?", userID, consts.RecommendationTypeCourse).
		Order("r.score DESC, c.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
