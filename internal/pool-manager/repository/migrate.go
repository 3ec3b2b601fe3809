package repository

import (
	"Integration_Pool_Manager/internal/pool-manager/model"
	"fmt"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.ServerConfig{}, &model.Pool{}, &model.AlertRule{}, &model.Alert{}); err != nil {
		return fmt.Errorf("repository.Migrate: %w", err)
	}
	return nil
}
