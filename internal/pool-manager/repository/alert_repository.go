package repository

import (
	apperrors "Integration_Pool_Manager/internal/pool-manager/errors"
	"Integration_Pool_Manager/internal/pool-manager/model"
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type AlertRepository interface {
	CreateRule(ctx context.Context, rule model.AlertRule) (model.AlertRule, error)
	GetRules(ctx context.Context) ([]model.AlertRule, error)
	UpdateRule(ctx context.Context, rule model.AlertRule) error
	DeleteRule(ctx context.Context, id string) error
	CreateAlert(ctx context.Context, alert model.Alert) error
	ResolveAlert(ctx context.Context, id string, resolvedAt time.Time) error
	GetActiveAlerts(ctx context.Context) ([]model.Alert, error)
	GetAlertHistory(ctx context.Context, limit int, offset int) ([]model.Alert, error)
	DeleteResolvedAlertsBefore(ctx context.Context, before time.Time) (int64, error)
}

type alertRepository struct {
	db *gorm.DB
}

func (a *alertRepository) CreateRule(ctx context.Context, rule model.AlertRule) (model.AlertRule, error) {
	result := a.db.WithContext(ctx).Create(&rule)
	if result.Error != nil {
		return rule, fmt.Errorf("AlertRepository.CreateRule: %w", result.Error)
	}
	return rule, nil
}

func (a *alertRepository) GetRules(ctx context.Context) ([]model.AlertRule, error) {
	var rules []model.AlertRule
	result := a.db.WithContext(ctx).Order("created_at asc").Find(&rules)
	if result.Error != nil {
		return nil, fmt.Errorf("AlertRepository.GetRules: %w", result.Error)
	}
	return rules, nil
}

func (a *alertRepository) UpdateRule(ctx context.Context, rule model.AlertRule) error {
	result := a.db.WithContext(ctx).Model(&model.AlertRule{}).Where("id = ?", rule.ID).Select("*").Omit("id", "created_at").Updates(&rule)
	if result.Error != nil {
		return fmt.Errorf("AlertRepository.UpdateRule: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("AlertRepository.UpdateRule: %w", apperrors.NewNotFoundError(apperrors.ErrAlertRuleNotFound, rule.ID))
	}
	return nil
}

func (a *alertRepository) DeleteRule(ctx context.Context, id string) error {
	result := a.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AlertRule{})
	if result.Error != nil {
		return fmt.Errorf("AlertRepository.DeleteRule: %w", result.Error)
	}
	return nil
}

func (a *alertRepository) CreateAlert(ctx context.Context, alert model.Alert) error {
	result := a.db.WithContext(ctx).Create(&alert)
	if result.Error != nil {
		return fmt.Errorf("AlertRepository.CreateAlert: %w", result.Error)
	}
	return nil
}

func (a *alertRepository) ResolveAlert(ctx context.Context, id string, resolvedAt time.Time) error {
	result := a.db.WithContext(ctx).Model(&model.Alert{}).Where("id = ?", id).Updates(map[string]interface{}{
		"resolved":    true,
		"resolved_at": resolvedAt,
	})
	if result.Error != nil {
		return fmt.Errorf("AlertRepository.ResolveAlert: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("AlertRepository.ResolveAlert: %w", apperrors.NewNotFoundError(apperrors.ErrAlertNotFound, id))
	}
	return nil
}

func (a *alertRepository) GetActiveAlerts(ctx context.Context) ([]model.Alert, error) {
	var alerts []model.Alert
	result := a.db.WithContext(ctx).Where("resolved = ?", false).Order("fired_at desc").Find(&alerts)
	if result.Error != nil {
		return nil, fmt.Errorf("AlertRepository.GetActiveAlerts: %w", result.Error)
	}
	return alerts, nil
}

func (a *alertRepository) GetAlertHistory(ctx context.Context, limit int, offset int) ([]model.Alert, error) {
	var alerts []model.Alert
	result := a.db.WithContext(ctx).Order("fired_at desc").Limit(limit).Offset(offset).Find(&alerts)
	if result.Error != nil {
		return nil, fmt.Errorf("AlertRepository.GetAlertHistory: %w", result.Error)
	}
	return alerts, nil
}

func (a *alertRepository) DeleteResolvedAlertsBefore(ctx context.Context, before time.Time) (int64, error) {
	result := a.db.WithContext(ctx).Where("resolved = ? AND fired_at < ?", true, before).Delete(&model.Alert{})
	if result.Error != nil {
		return 0, fmt.Errorf("AlertRepository.DeleteResolvedAlertsBefore: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func NewAlertRepository(db *gorm.DB) AlertRepository {
	return &alertRepository{
		db: db,
	}
}
