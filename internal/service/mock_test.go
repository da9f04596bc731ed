package service

import (
	"CareerBridge/internal/api/dto"
	"CareerBridge/internal/model"
	"CareerBridge/internal/pkg/es"
	"CareerBridge/internal/pkg/mongo"
	"CareerBridge/internal/repository"
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// 未显式实现的方法落到嵌入的 nil 接口上，被调用即 panic

type MockProfileRepo struct {
	repository.ProfileRepo
	mock.Mock
}

func (m *MockProfileRepo) GetProfileByUserId(ctx context.Context, userID uint64) (*model.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserProfile), args.Error(1)
}

func (m *MockProfileRepo) SaveProfile(ctx context.Context, profile *model.UserProfile) error {
	return m.Called(ctx, profile).Error(0)
}

type MockJobRepo struct {
	repository.JobRepo
	mock.Mock
}

func (m *MockJobRepo) GetActiveJobById(ctx context.Context, id uint64) (*model.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Job), args.Error(1)
}

func (m *MockJobRepo) ListActiveJobSkills(ctx context.Context) ([]*model.Job, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*model.Job), args.Error(1)
}

func (m *MockJobRepo) ListExpiredActiveJobs(ctx context.Context, before time.Time) ([]*model.Job, error) {
	args := m.Called(ctx, before)
	return args.Get(0).([]*model.Job), args.Error(1)
}

func (m *MockJobRepo) CloseJobs(ctx context.Context, ids []uint64) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJobRepo) CreateJob(ctx context.Context, job *model.Job) error {
	return m.Called(ctx, job).Error(0)
}

type MockCourseRepo struct {
	repository.CourseRepo
	mock.Mock
}

func (m *MockCourseRepo) ListCourseSkills(ctx context.Context) ([]*model.Course, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*model.Course), args.Error(1)
}

func (m *MockCourseRepo) ListCoursesByRating(ctx context.Context) ([]*model.Course, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*model.Course), args.Error(1)
}

func (m *MockCourseRepo) CreateCourse(ctx context.Context, course *model.Course) error {
	return m.Called(ctx, course).Error(0)
}

type MockRecommendationRepo struct {
	repository.RecommendationRepo
	mock.Mock
}

func (m *MockRecommendationRepo) ReplaceForUser(ctx context.Context, userID uint64, recs []*model.Recommendation) error {
	return m.Called(ctx, userID, recs).Error(0)
}

type MockApplicationRepo struct {
	repository.ApplicationRepo
	mock.Mock
}

func (m *MockApplicationRepo) ExistsApplication(ctx context.Context, userID, jobID uint64) (bool, error) {
	args := m.Called(ctx, userID, jobID)
	return args.Bool(0), args.Error(1)
}

func (m *MockApplicationRepo) CreateApplication(ctx context.Context, application *model.JobApplication) error {
	return m.Called(ctx, application).Error(0)
}

type MockResumeRepo struct {
	repository.ResumeRepo
	mock.Mock
}

func (m *MockResumeRepo) DeleteResume(ctx context.Context, id, userID uint64) (int64, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockResumeRepo) CreateResume(ctx context.Context, resume *model.UserResume) error {
	return m.Called(ctx, resume).Error(0)
}

type MockUserRepo struct {
	repository.UserRepo
	mock.Mock
}

func (m *MockUserRepo) GetUserById(ctx context.Context, id uint64) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	args := m.Called(ctx, username, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepo) CreateUser(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

type MockJobESRepo struct {
	es.JobRepo
	mock.Mock
}

func (m *MockJobESRepo) IndexJob(ctx context.Context, job *es.JobES) error {
	return m.Called(ctx, job).Error(0)
}

type MockSysBoxRepo struct {
	mongo.SysBoxRepo
	mock.Mock
}

func (m *MockSysBoxRepo) CreateNotification(ctx context.Context, msg *mongo.SysBoxModel) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MockSysBoxRepo) MarkAsRead(ctx context.Context, userID uint64, msgID string) error {
	return m.Called(ctx, userID, msgID).Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishApplication(ctx context.Context, event *dto.ApplicationEvent) error {
	return m.Called(ctx, event).Error(0)
}

type MockRecommendationService struct {
	RecommendationService
	mock.Mock
}

func (m *MockRecommendationService) Regenerate(ctx context.Context, userID uint64) {
	m.Called(ctx, userID)
}

func (m *MockSysBoxRepo) GetNotificationList(ctx context.Context, userID uint64, unreadOnly bool, limit, offset int64) ([]*mongo.SysBoxModel, error) {
	args := m.Called(ctx, userID, unreadOnly, limit, offset)
	return args.Get(0).([]*mongo.SysBoxModel), args.Error(1)
}
