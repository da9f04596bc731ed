package service

import (
	"CareerBridge/internal/api/dto"
	"CareerBridge/internal/model"
	"CareerBridge/internal/pkg/consts"
	"CareerBridge/internal/pkg/redis"
	"CareerBridge/internal/pkg/util"
	"CareerBridge/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
)

const (
	courseListTTL = 10 * time.Minute

	baseStudents       = 1000
	studentsPerCourse  = 500
	freeCoursePriceTag = "Free"
)

type CourseService interface {
	ListCourses(ctx context.Context) ([]*dto.CourseDTO, error)
	GetCourse(ctx context.Context, id uint64) (*dto.CourseDetailDTO, error)
	ListAllCourses(ctx context.Context) ([]*dto.CourseDetailDTO, error)
	CreateCourse(ctx context.Context, dto *dto.CreateCourseDTO) (uint64, error)
}

type CourseServiceImpl struct {
	courseRepo repository.CourseRepo
}

func NewCourseService(courseRepo repository.CourseRepo) CourseService {
	return &CourseServiceImpl{
		courseRepo: courseRepo,
	}
}

// ListCourses 按评分排序的展示列表，缓存 10 分钟
func (s *CourseServiceImpl) ListCourses(ctx context.Context) ([]*dto.CourseDTO, error) {
	cached, err := redis.GetValue(ctx, consts.CourseListKey)
	if err != nil {
		log.WarnContext(ctx, "read course cache failed", "err", err)
	}
	if cached != "" {
		var res []*dto.CourseDTO
		if err = json.Unmarshal([]byte(cached), &res); err == nil {
			return res, nil
		}
	}

	courses, err := s.courseRepo.ListCoursesByRating(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.CourseDTO, 0, len(courses))
	for _, course := range courses {
		res = append(res, formatCourse(course))
	}

	if payload, err := json.Marshal(res); err == nil {
		if err = redis.SetWithExpiration(ctx, consts.CourseListKey, payload, courseListTTL); err != nil {
			log.WarnContext(ctx, "write course cache failed", "err", err)
		}
	}
	return res, nil
}

func (s *CourseServiceImpl) GetCourse(ctx context.Context, id uint64) (*dto.CourseDetailDTO, error) {
	course, err := s.courseRepo.GetCourseById(ctx, id)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	res := &dto.CourseDetailDTO{}
	if err = copier.Copy(res, course); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *CourseServiceImpl) ListAllCourses(ctx context.Context) ([]*dto.CourseDetailDTO, error) {
	courses, err := s.courseRepo.ListCourses(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.CourseDetailDTO, 0, len(courses))
	if err = copier.Copy(&res, &courses); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *CourseServiceImpl) CreateCourse(ctx context.Context, create *dto.CreateCourseDTO) (uint64, error) {
	if strings.TrimSpace(create.Title) == "" || strings.TrimSpace(create.Description) == "" || strings.TrimSpace(create.Provider) == "" {
		return 0, ErrCourseFieldsMissing
	}

	course := &model.Course{}
	if err := copier.Copy(course, create); err != nil {
		return 0, err
	}
	course.SkillsCovered = util.NormalizeSkillString(create.SkillsCovered)

	if err := s.courseRepo.CreateCourse(ctx, course); err != nil {
		return 0, err
	}

	if err := redis.DeleteKey(ctx, consts.CourseListKey); err != nil {
		log.WarnContext(ctx, "invalidate course cache failed", "err", err)
	}
	return course.ID, nil
}

func formatCourse(course *model.Course) *dto.CourseDTO {
	d := &dto.CourseDTO{
		ID:          course.ID,
		Title:       course.Title,
		Description: course.Description,
		Provider:    course.Provider,
		Level:       course.DifficultyLevel,
		Students:    baseStudents + course.ID*studentsPerCourse,
		Skills:      util.SplitSkills(course.SkillsCovered),
		Link:        course.CourseURL,
		Price:       freeCoursePriceTag,
	}

	weeks := 0
	if course.DurationWeeks != nil {
		weeks = *course.DurationWeeks
	}
	d.Duration = fmt.Sprintf("%d weeks", weeks)

	if course.Rating != nil {
		d.Rating = *course.Rating
	}
	if course.Price > 0 {
		d.Price = fmt.Sprintf("₹%.2f", course.Price)
	}
	return d
}
