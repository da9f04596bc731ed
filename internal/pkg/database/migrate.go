package database

import (
	"CareerBridge/internal/model"
	"fmt"
	log "log/slog"

	"gorm.io/gorm"
)

// Tables 按外键依赖顺序排列
func Tables() []interface{} {
	return []interface{}{
		&model.User{},
		&model.UserProfile{},
		&model.Job{},
		&model.JobApplication{},
		&model.Course{},
		&model.Recommendation{},
		&model.UserResume{},
		&model.UserResumeFile{},
	}
}

// Migrate 自动建表
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Tables()...); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	log.Info("Database schema migrated")
	return nil
}
