package repository

import (
	"CareerBridge/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CourseRepo interface {
	GetCourseById(ctx context.Context, id uint64) (*model.Course, error)
	ListCoursesByRating(ctx context.Context) ([]*model.Course, error)
	ListCourses(ctx context.Context) ([]*model.Course, error)
	ListCourseSkills(ctx context.Context) ([]*model.Course, error)
	CreateCourse(ctx context.Context, course *model.Course) error
}

type CourseRepoImpl struct {
	db *gorm.DB
}

func NewCourseRepo(db *gorm.DB) CourseRepo {
	return &CourseRepoImpl{db: db}
}

func (s *CourseRepoImpl) GetCourseById(ctx context.Context, id uint64) (*model.Course, error) {
	course := &model.Course{}
	result := s.db.WithContext(ctx).First(course, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return course, nil
}

func (s *CourseRepoImpl) ListCoursesByRating(ctx context.Context) ([]*model.Course, error) {
	courses := make([]*model.Course, 0)
	err := s.db.WithContext(ctx).
		Order("rating DESC").
		Order("id").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *CourseRepoImpl) ListCourses(ctx context.Context) ([]*model.Course, error) {
	courses := make([]*model.Course, 0)
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *CourseRepoImpl) ListCourseSkills(ctx context.Context) ([]*model.Course, error) {
	courses := make([]*model.Course, 0)
	err := s.db.WithContext(ctx).
		Select("id", "skills_covered").
		Order("id").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *CourseRepoImpl) CreateCourse(ctx context.Context, course *model.Course) error {
	return s.db.WithContext(ctx).Create(course).Error
}
