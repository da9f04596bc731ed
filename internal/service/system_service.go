package service

import (
	"CareerBridge/internal/repository"
	"context"
	log "log/slog"
)

// HealthDTO 数据库连通性检查结果
type HealthDTO struct {
	Message string   `json:"message"`
	Tables  []string `json:"tables"`
}

type SystemService interface {
	CheckDatabase(ctx context.Context) (*HealthDTO, error)
}

type SystemServiceImpl struct {
	systemRepo repository.SystemRepo
}

func NewSystemService(systemRepo repository.SystemRepo) SystemService {
	return &SystemServiceImpl{systemRepo: systemRepo}
}

func (s *SystemServiceImpl) CheckDatabase(ctx context.Context) (*HealthDTO, error) {
	if err := s.systemRepo.Ping(ctx); err != nil {
		log.ErrorContext(ctx, "database ping failed", "err", err)
		return nil, UnExpectedError
	}
	tables, err := s.systemRepo.ListTables(ctx)
	if err != nil {
		return nil, err
	}
	return &HealthDTO{
		Message: "Database connected successfully",
		Tables:  tables,
	}, nil
}
