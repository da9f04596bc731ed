package service

import (
	"CareerBridge/internal/api/config"
	"CareerBridge/internal/api/dto"
	"CareerBridge/internal/model"
	"CareerBridge/internal/pkg/consts"
	"CareerBridge/internal/pkg/es"
	"CareerBridge/internal/pkg/mongo"
	"CareerBridge/internal/pkg/recommend"
	"CareerBridge/internal/pkg/redis"
	"CareerBridge/internal/pkg/security"
	"CareerBridge/internal/pkg/util"
	"CareerBridge/internal/repository"
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoDB "go.mongodb.org/mongo-driver/mongo"
)

func setupRedis(t *testing.T) *miniredis.Miniredis {
	mr := miniredis.RunT(t)
	redis.Rdb = goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = redis.Rdb.Close() })
	return mr
}

func TestSaveProfileSucceedsWhenRecommendationFails(t *testing.T) {
	setupRedis(t)
	ctx := context.Background()

	profileRepo := &MockProfileRepo{}
	jobRepo := &MockJobRepo{}
	courseRepo := &MockCourseRepo{}
	recRepo := &MockRecommendationRepo{}

	existing := &model.UserProfile{ID: 1, UserID: 7, City: util.PtrStr("Pune")}
	profileRepo.On("GetProfileByUserId", ctx, uint64(7)).Return(existing, nil)
	profileRepo.On("SaveProfile", ctx, mock.MatchedBy(func(p *model.UserProfile) bool {
		return p.UserID == 7 && *p.City == "Pune" && len(p.ProgrammingLanguages) == 2
	})).Return(nil)
	jobRepo.On("ListActiveJobSkills", ctx).Return([]*model.Job{{ID: 1, SkillsRequired: "Python, Go"}}, nil)
	courseRepo.On("ListCourseSkills", ctx).Return([]*model.Course{}, nil)
	recRepo.On("ReplaceForUser", ctx, uint64(7), mock.Anything).Return(errors.New("deadlock"))

	recService := NewRecommendationService(profileRepo, jobRepo, courseRepo, recRepo, recommend.DefaultScorer())
	svc := NewProfileService(profileRepo, recService)

	langs := []string{"Python", " go ", "python"}
	err := svc.SaveProfile(ctx, 7, &dto.UpdateProfileDTO{ProgrammingLanguages: &langs})
	require.NoError(t, err)

	recRepo.AssertExpectations(t)
	profileRepo.AssertExpectations(t)
}

func TestSaveProfileLockBusy(t *testing.T) {
	mr := setupRedis(t)
	ctx := context.Background()
	require.NoError(t, mr.Set(consts.ProfileWriteLock+"7", "other"))

	profileRepo := &MockProfileRepo{}
	recService := &MockRecommendationService{}
	svc := NewProfileService(profileRepo, recService)

	err := svc.SaveProfile(ctx, 7, &dto.UpdateProfileDTO{})
	assert.ErrorIs(t, err, ErrSystemBusy)
	profileRepo.AssertNotCalled(t, "SaveProfile", mock.Anything, mock.Anything)
	recService.AssertNotCalled(t, "Regenerate", mock.Anything, mock.Anything)
}

func TestGetProfileNotFound(t *testing.T) {
	ctx := context.Background()
	profileRepo := &MockProfileRepo{}
	profileRepo.On("GetProfileByUserId", ctx, uint64(3)).Return(nil, nil)

	_, err := NewProfileService(profileRepo, &MockRecommendationService{}).GetProfile(ctx, 3)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestGetProfileFormatsDateAndSkills(t *testing.T) {
	ctx := context.Background()
	profileRepo := &MockProfileRepo{}
	profileRepo.On("GetProfileByUserId", ctx, uint64(3)).Return(&model.UserProfile{
		UserID:      3,
		DateOfBirth: util.PtrStr("2001-05-20T00:00:00+05:30"),
		Frameworks:  model.SkillList{"React"},
	}, nil)

	res, err := NewProfileService(profileRepo, &MockRecommendationService{}).GetProfile(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "2001-05-20", *res.DateOfBirth)
	assert.Equal(t, []string{"React"}, res.Frameworks)
	assert.Equal(t, []string{}, res.Tools)
}

func TestSaveProfileTrimsStoredDate(t *testing.T) {
	setupRedis(t)
	ctx := context.Background()

	profileRepo := &MockProfileRepo{}
	recService := &MockRecommendationService{}
	profileRepo.On("GetProfileByUserId", ctx, uint64(4)).Return(&model.UserProfile{
		ID:          2,
		UserID:      4,
		DateOfBirth: util.PtrStr("2001-05-20T00:00:00+05:30"),
	}, nil)

	var saved *model.UserProfile
	profileRepo.On("SaveProfile", ctx, mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*model.UserProfile) }).
		Return(nil)
	recService.On("Regenerate", ctx, uint64(4)).Return()

	err := NewProfileService(profileRepo, recService).SaveProfile(ctx, 4, &dto.UpdateProfileDTO{City: util.PtrStr("Chennai")})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "2001-05-20", *saved.DateOfBirth)
	assert.Equal(t, "Chennai", *saved.City)
}

func TestRegenerateReplacesWithScoredResults(t *testing.T) {
	ctx := context.Background()
	profileRepo := &MockProfileRepo{}
	jobRepo := &MockJobRepo{}
	courseRepo := &MockCourseRepo{}
	recRepo := &MockRecommendationRepo{}

	profileRepo.On("GetProfileByUserId", ctx, uint64(2)).Return(&model.UserProfile{
		UserID:               2,
		ProgrammingLanguages: model.SkillList{"Python"},
		Frameworks:           model.SkillList{"React"},
		// 软技能不参与匹配
		SoftSkills: model.SkillList{"AWS"},
	}, nil)
	jobRepo.On("ListActiveJobSkills", ctx).Return([]*model.Job{
		{ID: 1, SkillsRequired: "Python, React, Node.js, AWS"},
		{ID: 2, SkillsRequired: "Java"},
	}, nil)
	courseRepo.On("ListCourseSkills", ctx).Return([]*model.Course{
		{ID: 5, SkillsCovered: "Python, OOP, Data Structures"},
	}, nil)

	var saved []*model.Recommendation
	recRepo.On("ReplaceForUser", ctx, uint64(2), mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(2).([]*model.Recommendation) }).
		Return(nil)

	NewRecommendationService(profileRepo, jobRepo, courseRepo, recRepo, recommend.DefaultScorer()).Regenerate(ctx, 2)

	require.Len(t, saved, 2)
	assert.Equal(t, consts.RecommendationTypeJob, saved[0].RecommendationType)
	require.NotNil(t, saved[0].JobID)
	assert.Equal(t, uint64(1), *saved[0].JobID)
	assert.InDelta(t, 0.5, saved[0].Score, 1e-6)
	assert.Equal(t, consts.RecommendationTypeCourse, saved[1].RecommendationType)
	assert.InDelta(t, 0.6667, saved[1].Score, 1e-6)
	assert.Equal(t, uint64(5), *saved[1].CourseID)
}

func TestApplyJob(t *testing.T) {
	ctx := context.Background()
	job := &model.Job{ID: 9, Title: "Backend Engineer", Company: "Acme", Status: consts.JobStatusActive}

	t.Run("duplicate application", func(t *testing.T) {
		jobRepo := &MockJobRepo{}
		appRepo := &MockApplicationRepo{}
		publisher := &MockPublisher{}
		jobRepo.On("GetActiveJobById", ctx, uint64(9)).Return(job, nil)
		appRepo.On("ExistsApplication", ctx, uint64(4), uint64(9)).Return(true, nil)

		_, err := NewApplicationService(jobRepo, appRepo, publisher).ApplyJob(ctx, 4, &dto.ApplyJobDTO{JobID: 9})
		assert.ErrorIs(t, err, ErrAlreadyApplied)
		appRepo.AssertNotCalled(t, "CreateApplication", mock.Anything, mock.Anything)
		publisher.AssertNotCalled(t, "PublishApplication", mock.Anything, mock.Anything)
	})

	t.Run("unique index race", func(t *testing.T) {
		jobRepo := &MockJobRepo{}
		appRepo := &MockApplicationRepo{}
		publisher := &MockPublisher{}
		jobRepo.On("GetActiveJobById", ctx, uint64(9)).Return(job, nil)
		appRepo.On("ExistsApplication", ctx, uint64(4), uint64(9)).Return(false, nil)
		appRepo.On("CreateApplication", ctx, mock.Anything).Return(repository.ErrDuplicateKey)

		_, err := NewApplicationService(jobRepo, appRepo, publisher).ApplyJob(ctx, 4, &dto.ApplyJobDTO{JobID: 9})
		assert.ErrorIs(t, err, ErrAlreadyApplied)
		publisher.AssertNotCalled(t, "PublishApplication", mock.Anything, mock.Anything)
	})

	t.Run("inactive job", func(t *testing.T) {
		jobRepo := &MockJobRepo{}
		jobRepo.On("GetActiveJobById", ctx, uint64(10)).Return(nil, nil)

		_, err := NewApplicationService(jobRepo, &MockApplicationRepo{}, &MockPublisher{}).ApplyJob(ctx, 4, &dto.ApplyJobDTO{JobID: 10})
		assert.ErrorIs(t, err, ErrJobNotAvailable)
	})

	t.Run("publish failure does not fail apply", func(t *testing.T) {
		jobRepo := &MockJobRepo{}
		appRepo := &MockApplicationRepo{}
		publisher := &MockPublisher{}
		jobRepo.On("GetActiveJobById", ctx, uint64(9)).Return(job, nil)
		appRepo.On("ExistsApplication", ctx, uint64(4), uint64(9)).Return(false, nil)
		appRepo.On("CreateApplication", ctx, mock.MatchedBy(func(a *model.JobApplication) bool {
			return a.Status == consts.ApplicationStatusApplied
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*model.JobApplication).ID = 33
		}).Return(nil)
		publisher.On("PublishApplication", ctx, mock.MatchedBy(func(e *dto.ApplicationEvent) bool {
			return e.ApplicationID == 33 && e.JobTitle == "Backend Engineer" && e.Company == "Acme"
		})).Return(errors.New("broker down"))

		id, err := NewApplicationService(jobRepo, appRepo, publisher).ApplyJob(ctx, 4, &dto.ApplyJobDTO{JobID: 9})
		require.NoError(t, err)
		assert.Equal(t, uint64(33), id)
		publisher.AssertExpectations(t)
	})
}

func TestListCoursesFormatsAndCaches(t *testing.T) {
	mr := setupRedis(t)
	ctx := context.Background()

	courseRepo := &MockCourseRepo{}
	courseRepo.On("ListCoursesByRating", ctx).Return([]*model.Course{
		{ID: 2, Title: "Python", SkillsCovered: "Python, OOP", DurationWeeks: util.PtrInt(6), Rating: util.PtrFloat64(4.5)},
		{ID: 3, Title: "AWS", Price: 1499},
	}, nil).Once()

	svc := NewCourseService(courseRepo)
	first, err := svc.ListCourses(ctx)
	require.NoError(t, err)
	require.Len(t, first, 2)

	assert.Equal(t, "6 weeks", first[0].Duration)
	assert.Equal(t, uint64(2000), first[0].Students)
	assert.Equal(t, "Free", first[0].Price)
	assert.Equal(t, []string{"Python", "OOP"}, first[0].Skills)
	assert.Equal(t, 4.5, first[0].Rating)

	assert.Equal(t, "0 weeks", first[1].Duration)
	assert.Equal(t, "₹1499.00", first[1].Price)
	assert.Equal(t, []string{}, first[1].Skills)
	assert.True(t, mr.Exists(consts.CourseListKey))

	second, err := svc.ListCourses(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	courseRepo.AssertNumberOfCalls(t, "ListCoursesByRating", 1)
}

func TestCreateCourseInvalidatesCache(t *testing.T) {
	mr := setupRedis(t)
	ctx := context.Background()
	require.NoError(t, mr.Set(consts.CourseListKey, "[]"))

	courseRepo := &MockCourseRepo{}
	courseRepo.On("CreateCourse", ctx, mock.MatchedBy(func(c *model.Course) bool {
		return c.SkillsCovered == "Go, gRPC" && c.Provider != nil && *c.Provider == "Udemy"
	})).Return(nil)

	svc := NewCourseService(courseRepo)
	_, err := svc.CreateCourse(ctx, &dto.CreateCourseDTO{Title: "Go", Description: "d", Provider: "Udemy", SkillsCovered: "Go, gRPC, go"})
	require.NoError(t, err)
	assert.False(t, mr.Exists(consts.CourseListKey))

	_, err = svc.CreateCourse(ctx, &dto.CreateCourseDTO{Title: "Go", Description: " "})
	assert.ErrorIs(t, err, ErrCourseFieldsMissing)
}

func TestUploadResumeFileRejectsUnsupportedType(t *testing.T) {
	ctx := context.Background()
	svc := NewResumeService(&MockResumeRepo{})

	png := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)
	_, err := svc.UploadResumeFile(ctx, 1, "photo.pdf", png)
	assert.ErrorIs(t, err, ErrFileNotSupported)

	_, err = svc.UploadResumeFile(ctx, 1, "big.txt", bytes.Repeat([]byte("a"), MaxResumeFileSize+1))
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestDeleteResume(t *testing.T) {
	ctx := context.Background()
	repo := &MockResumeRepo{}
	repo.On("DeleteResume", ctx, uint64(5), uint64(1)).Return(int64(0), nil)
	repo.On("DeleteResume", ctx, uint64(6), uint64(1)).Return(int64(1), nil)

	svc := NewResumeService(repo)
	assert.ErrorIs(t, svc.DeleteResume(ctx, 1, 0), ErrResumeIDRequired)
	assert.ErrorIs(t, svc.DeleteResume(ctx, 1, 5), ErrResumeNotFound)
	assert.NoError(t, svc.DeleteResume(ctx, 1, 6))
}

func TestSaveResumeUsesNameField(t *testing.T) {
	ctx := context.Background()
	repo := &MockResumeRepo{}
	repo.On("CreateResume", ctx, mock.MatchedBy(func(r *model.UserResume) bool {
		return r.ResumeName == "Backend CV" && r.UserID == 1
	})).Return(nil).Once()
	repo.On("CreateResume", ctx, mock.MatchedBy(func(r *model.UserResume) bool {
		return r.ResumeName == consts.DefaultResumeName && r.ResumeData == "{}"
	})).Return(nil).Once()

	svc := NewResumeService(repo)
	_, err := svc.SaveResume(ctx, 1, map[string]any{"name": "Backend CV", "skills": []any{"Go"}})
	require.NoError(t, err)
	_, err = svc.SaveResume(ctx, 1, nil)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCloseExpiredJobs(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 2, 15, 30, 0, 0, time.UTC)
	today := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)

	jobRepo := &MockJobRepo{}
	esRepo := &MockJobESRepo{}
	jobRepo.On("ListExpiredActiveJobs", ctx, today).Return([]*model.Job{
		{ID: 1, Status: consts.JobStatusActive},
		{ID: 2, Status: consts.JobStatusActive},
	}, nil)
	jobRepo.On("CloseJobs", ctx, []uint64{1, 2}).Return(int64(2), nil)
	esRepo.On("IndexJob", ctx, mock.MatchedBy(func(doc *es.JobES) bool {
		return doc.Status == consts.JobStatusClosed
	})).Return(errors.New("es down")).Twice()

	closed, err := NewJobService(jobRepo, esRepo).CloseExpiredJobs(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), closed)
	esRepo.AssertExpectations(t)
}

func TestCloseExpiredJobsNothingToDo(t *testing.T) {
	ctx := context.Background()
	jobRepo := &MockJobRepo{}
	jobRepo.On("ListExpiredActiveJobs", ctx, mock.Anything).Return([]*model.Job{}, nil)

	closed, err := NewJobService(jobRepo, &MockJobESRepo{}).CloseExpiredJobs(ctx, time.Now())
	require.NoError(t, err)
	assert.Zero(t, closed)
	jobRepo.AssertNotCalled(t, "CloseJobs", mock.Anything, mock.Anything)
}

func TestCreateJobDefaults(t *testing.T) {
	ctx := context.Background()
	jobRepo := &MockJobRepo{}
	esRepo := &MockJobESRepo{}
	jobRepo.On("CreateJob", ctx, mock.MatchedBy(func(j *model.Job) bool {
		return j.JobType == consts.DefaultJobType && j.Status == consts.JobStatusActive && *j.CreatedBy == 1
	})).Return(nil)
	esRepo.On("IndexJob", ctx, mock.Anything).Return(nil)

	svc := NewJobService(jobRepo, esRepo)
	_, err := svc.CreateJob(ctx, 1, &dto.SaveJobDTO{
		Title:       util.PtrStr("Go Developer"),
		Company:     util.PtrStr("Acme"),
		Description: util.PtrStr("Build services"),
	})
	require.NoError(t, err)

	_, err = svc.CreateJob(ctx, 1, &dto.SaveJobDTO{Title: util.PtrStr("Go Developer")})
	assert.ErrorIs(t, err, ErrJobFieldsRequired)
}

func TestRegisterAndLogin(t *testing.T) {
	config.Cfg = &config.Config{JWT: config.JWTConfig{Secret: "test", Issuer: "CareerBridge", ExpirationHours: 1}}
	ctx := context.Background()

	userRepo := &MockUserRepo{}
	svc := NewUserService(userRepo)

	assert.ErrorIs(t, svc.Register(ctx, &dto.RegisterDTO{Username: "alice"}), ErrFieldsRequired)

	userRepo.On("ExistsByUsernameOrEmail", ctx, "bob", "bob@example.com").Return(true, nil)
	assert.ErrorIs(t, svc.Register(ctx, &dto.RegisterDTO{Username: "bob", Email: "bob@example.com", Password: "x"}), ErrUserExist)

	hash, err := security.HashPassword("password123")
	require.NoError(t, err)
	userRepo.On("GetUserByUsername", ctx, "alice").Return(&model.User{ID: 3, Username: "alice", PasswordHash: hash, Role: consts.RoleUser}, nil)
	userRepo.On("GetUserByUsername", ctx, "ghost").Return(nil, nil)

	res, err := svc.Login(ctx, &dto.CredentialDTO{Username: "alice", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "Login successful", res.Message)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, uint64(3), res.User.ID)

	_, err = svc.Login(ctx, &dto.CredentialDTO{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, &dto.CredentialDTO{Username: "ghost", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestNotifyApplication(t *testing.T) {
	ctx := context.Background()
	sysBoxRepo := &MockSysBoxRepo{}
	sysBoxRepo.On("CreateNotification", ctx, mock.MatchedBy(func(m *mongo.SysBoxModel) bool {
		return m.ReceiverID == 4 && m.TargetID == 9 && m.Type == consts.SysBoxTypeApplication &&
			m.Payload["company"] == "Acme"
	})).Return(nil)

	publisher := NewDirectPublisher(NewNotifyService(sysBoxRepo, &MockUserRepo{}, nil))
	err := publisher.PublishApplication(ctx, &dto.ApplicationEvent{ApplicationID: 1, UserID: 4, JobID: 9, JobTitle: "SRE", Company: "Acme"})
	require.NoError(t, err)
	sysBoxRepo.AssertExpectations(t)
}

func TestMarkReadErrorMapping(t *testing.T) {
	ctx := context.Background()
	repo := &MockSysBoxRepo{}
	repo.On("MarkAsRead", ctx, uint64(1), "bad").Return(mongo.ErrInvalidID)
	repo.On("MarkAsRead", ctx, uint64(1), "gone").Return(mongoDB.ErrNoDocuments)
	repo.On("MarkAsRead", ctx, uint64(1), "ok").Return(nil)

	svc := NewSysBoxService(repo)
	assert.ErrorIs(t, svc.MarkRead(ctx, 1, "bad"), ErrParamInvalid)
	assert.ErrorIs(t, svc.MarkRead(ctx, 1, "gone"), ErrSysBoxNotFound)
	assert.NoError(t, svc.MarkRead(ctx, 1, "ok"))
}

func TestGetNotificationListPaging(t *testing.T) {
	ctx := context.Background()
	repo := &MockSysBoxRepo{}
	oid := primitive.NewObjectID()
	created := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	repo.On("GetNotificationList", ctx, uint64(4), true, int64(20), int64(20)).Return([]*mongo.SysBoxModel{
		{ID: oid, ReceiverID: 4, Type: consts.SysBoxTypeApplication, TargetID: 9, Content: "submitted", CreatedAt: created},
	}, nil)

	// page_size 越界回落到 20
	list, err := NewSysBoxService(repo).GetNotificationList(ctx, 4, true, 2, 500)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, oid.Hex(), list[0].ID)
	assert.Equal(t, "System", list[0].SenderName)
	assert.Equal(t, uint64(9), list[0].TargetID)
	assert.Equal(t, "2025-03-01T08:00:00Z", list[0].CreatedAt)
}
