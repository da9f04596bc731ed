package handler

import (
	"CareerBridge/internal/api/dto"
	"CareerBridge/internal/api/middleware"
	"CareerBridge/internal/service"
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type MockApplicationService struct {
	service.ApplicationService
	mock.Mock
}

func (m *MockApplicationService) ApplyJob(ctx context.Context, userID uint64, req *dto.ApplyJobDTO) (uint64, error) {
	args := m.Called(ctx, userID, req.JobID)
	return args.Get(0).(uint64), args.Error(1)
}

type MockUserService struct {
	service.UserService
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, req *dto.RegisterDTO) error {
	return m.Called(ctx, req.Username).Error(0)
}

func newRouter(userID uint64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.CtxUserID, userID)
		c.Next()
	})
	return r
}

func serve(r *gin.Engine, req *http.Request) envelope {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body envelope
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return body
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestUploadResumeRejectsImage(t *testing.T) {
	r := newRouter(1)
	h := NewResumeHandler(service.NewResumeService(nil))
	r.POST("/api/resume/upload", h.UploadResumeFile)

	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	part, err := writer.CreateFormFile("file", "resume.pdf")
	require.NoError(t, err)
	_, _ = part.Write(append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/resume/upload", buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	body := serve(r, req)
	assert.Equal(t, 400, body.Code)
	assert.Equal(t, service.ErrFileNotSupported.Error(), body.Message)
}

func TestUploadResumeMissingFile(t *testing.T) {
	r := newRouter(1)
	r.POST("/api/resume/upload", NewResumeHandler(service.NewResumeService(nil)).UploadResumeFile)

	body := serve(r, jsonRequest(http.MethodPost, "/api/resume/upload", "{}"))
	assert.Equal(t, 400, body.Code)
}

func TestDeleteResumeRequiresID(t *testing.T) {
	r := newRouter(1)
	h := NewResumeHandler(service.NewResumeService(nil))
	r.DELETE("/api/resume", h.DeleteResume)

	body := serve(r, httptest.NewRequest(http.MethodDelete, "/api/resume", nil))
	assert.Equal(t, 400, body.Code)
	assert.Equal(t, service.ErrResumeIDRequired.Error(), body.Message)
}

func TestApplyJob(t *testing.T) {
	svc := &MockApplicationService{}
	svc.On("ApplyJob", mock.Anything, uint64(4), uint64(9)).Return(uint64(0), service.ErrAlreadyApplied).Once()
	svc.On("ApplyJob", mock.Anything, uint64(4), uint64(9)).Return(uint64(12), nil).Once()

	r := newRouter(4)
	r.POST("/api/apply-job", NewJobHandler(nil, svc, nil).ApplyJob)

	body := serve(r, jsonRequest(http.MethodPost, "/api/apply-job", `{"job_id": 9}`))
	assert.Equal(t, 400, body.Code)
	assert.Equal(t, "You have already applied for this job", body.Message)

	body = serve(r, jsonRequest(http.MethodPost, "/api/apply-job", `{"job_id": 9, "cover_letter": "hi"}`))
	assert.Equal(t, 201, body.Code)
	assert.JSONEq(t, `{"application_id": 12}`, string(body.Data))

	body = serve(r, jsonRequest(http.MethodPost, "/api/apply-job", `{}`))
	assert.Equal(t, 400, body.Code)
	svc.AssertNumberOfCalls(t, "ApplyJob", 2)
}

func TestRegister(t *testing.T) {
	svc := &MockUserService{}
	svc.On("Register", mock.Anything, "alice").Return(nil)
	svc.On("Register", mock.Anything, "").Return(service.ErrFieldsRequired)

	r := newRouter(0)
	r.POST("/api/register", NewUserHandler(svc).Register)

	body := serve(r, jsonRequest(http.MethodPost, "/api/register", `{"username":"alice","email":"a@example.com","password":"pw"}`))
	assert.Equal(t, 201, body.Code)
	assert.Equal(t, "User registered successfully", body.Message)

	body = serve(r, jsonRequest(http.MethodPost, "/api/register", `{"email":"a@example.com"}`))
	assert.Equal(t, 400, body.Code)
	assert.Equal(t, "All fields are required", body.Message)

	body = serve(r, jsonRequest(http.MethodPost, "/api/register", `{"username":`))
	assert.Equal(t, 400, body.Code)
}

func TestParseIDFallsBackToQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/api/resume?id=42", nil)

	id, err := parseID(c, "id")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)

	c.Request = httptest.NewRequest(http.MethodDelete, "/api/resume?id=abc", nil)
	_, err = parseID(c, "id")
	assert.ErrorIs(t, err, service.ErrParamInvalid)
}
