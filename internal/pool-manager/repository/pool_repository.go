package repository

import (
	apperrors "Integration_Pool_Manager/internal/pool-manager/errors"
	"Integration_Pool_Manager/internal/pool-manager/model"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type PoolRepository interface {
	CreatePool(ctx context.Context, pool model.Pool) (model.Pool, error)
	GetPools(ctx context.Context) ([]model.Pool, error)
	UpdatePool(ctx context.Context, pool model.Pool) error
	DeletePool(ctx context.Context, name string) error
}

type poolRepository struct {
	db *gorm.DB
}

func (p *poolRepository) CreatePool(ctx context.Context, pool model.Pool) (model.Pool, error) {
	result := p.db.WithContext(ctx).Create(&pool)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "") {
			return pool, fmt.Errorf("PoolRepository.CreatePool: %w", apperrors.NewConflictError(apperrors.ErrPoolNameExists, pool.Name))
		}
		return pool, fmt.Errorf("PoolRepository.CreatePool: %w", result.Error)
	}
	return pool, nil
}

func (p *poolRepository) GetPools(ctx context.Context) ([]model.Pool, error) {
	var pools []model.Pool
	result := p.db.WithContext(ctx).Order("created_at asc").Find(&pools)
	if result.Error != nil {
		return nil, fmt.Errorf("PoolRepository.GetPools: %w", result.Error)
	}
	return pools, nil
}

func (p *poolRepository) UpdatePool(ctx context.Context, pool model.Pool) error {
	result := p.db.WithContext(ctx).Model(&model.Pool{}).Where("name = ?", pool.Name).Select("*").Omit("name", "created_at").Updates(&pool)
	if result.Error != nil {
		return fmt.Errorf("PoolRepository.UpdatePool: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("PoolRepository.UpdatePool: %w", apperrors.NewNotFoundError(apperrors.ErrPoolNotFound, pool.Name))
	}
	return nil
}

func (p *poolRepository) DeletePool(ctx context.Context, name string) error {
	result := p.db.WithContext(ctx).Where("name = ?", name).Delete(&model.Pool{})
	if result.Error != nil {
		return fmt.Errorf("PoolRepository.DeletePool: %w", result.Error)
	}
	return nil
}

func NewPoolRepository(db *gorm.DB) PoolRepository {
	return &poolRepository{
		db: db,
	}
}
