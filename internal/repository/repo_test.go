package repository

import (
	"CareerBridge/internal/model"
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func ptrUint64(v uint64) *uint64 { return &v }

func TestReplaceForUserCommits(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecommendationRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `recommendations` WHERE user_id = ?")).
		WithArgs(uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `recommendations`")).
		WillReturnResult(sqlmock.NewResult(1, 2))
	mock.ExpectCommit()

	recs := []*model.Recommendation{
		{JobID: ptrUint64(1), RecommendationType: "job", Score: 0.5, Reason: "Matches 2 out of 4 required skills"},
		{CourseID: ptrUint64(2), RecommendationType: "course", Score: 0.6667, Reason: "Will help you learn 2 new skills"},
	}
	require.NoError(t, repo.ReplaceForUser(context.Background(), 7, recs))
	assert.Equal(t, uint64(7), recs[0].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceForUserRollsBackOnInsertFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecommendationRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `recommendations` WHERE user_id = ?")).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `recommendations`")).
		WillReturnError(errors.New("lock wait timeout"))
	mock.ExpectRollback()

	err := repo.ReplaceForUser(context.Background(), 7, []*model.Recommendation{
		{JobID: ptrUint64(1), RecommendationType: "job", Score: 0.5},
	})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceForUserWithEmptySet(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecommendationRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `recommendations` WHERE user_id = ?")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.ReplaceForUser(context.Background(), 7, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateApplicationDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewApplicationRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `job_applications`")).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry '1-2' for key 'uk_application'"})
	mock.ExpectRollback()

	err := repo.CreateApplication(context.Background(), &model.JobApplication{UserID: 1, JobID: 2, Status: "Applied"})
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByUsernameNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `users` WHERE username = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))

	user, err := repo.GetUserByUsername(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListJobsWithRecommendation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewJobRepo(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT j.*, r.score AS recommendation_score")).
		WithArgs(uint64(3), "job", uint64(3), "Active").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "company", "skills_required", "status", "created_at",
			"recommendation_score", "recommendation_reason", "application_status", "applied_at",
		}).
			AddRow(1, "Software Engineer", "Tech Corp", "Python, React", "Active", now, 0.5, "Matches 1 out of 2 required skills", "Applied", now).
			AddRow(2, "Data Scientist", "Data Analytics Inc", "SQL", "Active", now, nil, nil, nil, nil))

	rows, err := repo.ListJobsWithRecommendation(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Software Engineer", rows[0].Title)
	require.NotNil(t, rows[0].RecommendationScore)
	assert.InDelta(t, 0.5, *rows[0].RecommendationScore, 1e-9)
	require.NotNil(t, rows[0].ApplicationStatus)
	assert.Nil(t, rows[1].RecommendationScore)
	assert.Nil(t, rows[1].ApplicationStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteResumeScopedToOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewResumeRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `user_resumes` WHERE id = ? AND user_id = ?")).
		WithArgs(uint64(5), uint64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	affected, err := repo.DeleteResume(context.Background(), 5, 9)
	require.NoError(t, err)
	assert.Zero(t, affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCloseJobsSkipsEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewJobRepo(db)

	n, err := repo.CloseJobs(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
