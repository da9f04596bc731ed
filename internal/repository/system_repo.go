package repository

import (
	"context"

	"gorm.io/gorm"
)

type SystemRepo interface {
	Ping(ctx context.Context) error
	ListTables(ctx context.Context) ([]string, error)
}

type SystemRepoImpl struct {
	db *gorm.DB
}

func NewSystemRepo(db *gorm.DB) SystemRepo {
	return &SystemRepoImpl{db: db}
}

func (s *SystemRepoImpl) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *SystemRepoImpl) ListTables(ctx context.Context) ([]string, error) {
	return s.db.WithContext(ctx).Migrator().GetTables()
}
