package service

import (
	"CareerBridge/internal/api/dto"
	"CareerBridge/internal/model"
	"CareerBridge/internal/pkg/consts"
	"CareerBridge/internal/pkg/extract"
	"CareerBridge/internal/pkg/minio"
	"CareerBridge/internal/pkg/util"
	"CareerBridge/internal/repository"
	"bytes"
	"context"
	"fmt"
	log "log/slog"
	"path"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// MaxResumeFileSize 简历附件大小上限
const MaxResumeFileSize = 10 << 20

var resumeExtensions = map[string]string{
	consts.MimeTypePDF:  ".pdf",
	consts.MimeTypeDOCX: ".docx",
	consts.MimeTypeText: ".txt",
}

type ResumeService interface {
	ListResumes(ctx context.Context, userID uint64) ([]*dto.ResumeDTO, error)
	SaveResume(ctx context.Context, userID uint64, data map[string]any) (uint64, error)
	DeleteResume(ctx context.Context, userID, id uint64) error
	UploadResumeFile(ctx context.Context, userID uint64, fileName string, data []byte) (*dto.ResumeFileDTO, error)
	ListResumeFiles(ctx context.Context, userID uint64) ([]*dto.ResumeFileDTO, error)
}

type ResumeServiceImpl struct {
	resumeRepo repository.ResumeRepo
}

func NewResumeService(resumeRepo repository.ResumeRepo) ResumeService {
	return &ResumeServiceImpl{
		resumeRepo: resumeRepo,
	}
}

func (s *ResumeServiceImpl) ListResumes(ctx context.Context, userID uint64) ([]*dto.ResumeDTO, error) {
	resumes, err := s.resumeRepo.ListResumes(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ResumeDTO, 0, len(resumes))
	for _, resume := range resumes {
		data := make(map[string]any)
		if err = json.Unmarshal([]byte(resume.ResumeData), &data); err != nil || data == nil {
			data = make(map[string]any)
		}
		res = append(res, &dto.ResumeDTO{
			ID:         resume.ID,
			UserID:     resume.UserID,
			ResumeName: resume.ResumeName,
			ResumeData: data,
			CreatedAt:  resume.CreatedAt,
			UpdatedAt:  resume.UpdatedAt,
		})
	}
	return res, nil
}

// SaveResume 整个请求体作为 resume_data 保存，name 字段作为简历名
func (s *ResumeServiceImpl) SaveResume(ctx context.Context, userID uint64, data map[string]any) (uint64, error) {
	if data == nil {
		data = make(map[string]any)
	}

	name := consts.DefaultResumeName
	if v, ok := data["name"].(string); ok && strings.TrimSpace(v) != "" {
		name = strings.TrimSpace(v)
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return 0, err
	}

	resume := &model.UserResume{
		UserID:     userID,
		ResumeName: name,
		ResumeData: string(raw),
	}
	if err = s.resumeRepo.CreateResume(ctx, resume); err != nil {
		return 0, err
	}
	return resume.ID, nil
}

func (s *ResumeServiceImpl) DeleteResume(ctx context.Context, userID, id uint64) error {
	if id == 0 {
		return ErrResumeIDRequired
	}
	affected, err := s.resumeRepo.DeleteResume(ctx, id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrResumeNotFound
	}
	return nil
}

// UploadResumeFile 校验真实类型后存入对象存储，并保存抽取出的文本
func (s *ResumeServiceImpl) UploadResumeFile(ctx context.Context, userID uint64, fileName string, data []byte) (*dto.ResumeFileDTO, error) {
	if len(data) > MaxResumeFileSize {
		return nil, ErrFileTooLarge
	}

	contentType, err := util.GetSafeContentType(bytes.NewReader(data))
	if err != nil {
		return nil, ErrFileNotSupported
	}
	ext, ok := resumeExtensions[contentType]
	if !ok {
		return nil, ErrFileNotSupported
	}

	text, err := extract.ResumeText(contentType, data)
	if err != nil {
		log.WarnContext(ctx, "extract resume text failed", "file", fileName, "err", err)
	}

	objectName := fmt.Sprintf("resumes/%d/%s%s%s", userID, time.Now().Format("2006/01/02/"), uuid.NewString(), ext)
	objectKey, err := minio.UploadFile(ctx, objectName, bytes.NewReader(data), int64(len(data)), contentType)
	if err != nil {
		log.ErrorContext(ctx, "MinIO upload failed", "err", err)
		return nil, UnExpectedError
	}

	file := &model.UserResumeFile{
		UserID:        userID,
		FileName:      path.Base(fileName),
		ObjectKey:     objectKey,
		MimeType:      contentType,
		Size:          int64(len(data)),
		ExtractedText: text,
	}
	if err = s.resumeRepo.CreateResumeFile(ctx, file); err != nil {
		if delErr := minio.DeleteFile(ctx, objectKey); delErr != nil {
			log.WarnContext(ctx, "cleanup uploaded resume failed", "object", objectKey, "err", delErr)
		}
		return nil, err
	}

	res := toResumeFileDTO(file)
	res.TextChars = utf8.RuneCountInString(text)
	return res, nil
}

func (s *ResumeServiceImpl) ListResumeFiles(ctx context.Context, userID uint64) ([]*dto.ResumeFileDTO, error) {
	files, err := s.resumeRepo.ListResumeFiles(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ResumeFileDTO, 0, len(files))
	for _, file := range files {
		res = append(res, toResumeFileDTO(file))
	}
	return res, nil
}

func toResumeFileDTO(file *model.UserResumeFile) *dto.ResumeFileDTO {
	return &dto.ResumeFileDTO{
		ID:        file.ID,
		FileName:  file.FileName,
		MimeType:  file.MimeType,
		Size:      file.Size,
		URL:       minio.GetPublicURL(file.ObjectKey),
		CreatedAt: file.CreatedAt,
	}
}
