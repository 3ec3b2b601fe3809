package repository

import (
	apperrors "Integration_Pool_Manager/internal/pool-manager/errors"
	"Integration_Pool_Manager/internal/pool-manager/model"
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type ServerRepository interface {
	CreateServer(ctx context.Context, server model.ServerConfig) (model.ServerConfig, error)
	GetServerById(ctx context.Context, serverId string) (model.ServerConfig, error)
	GetServers(ctx context.Context) ([]model.ServerConfig, error)
	UpdateServer(ctx context.Context, server model.ServerConfig) error
	UpdateServerStatus(ctx context.Context, serverId string, status model.ServerStatus) error
	DeleteServerById(ctx context.Context, serverId string) error
}

type serverRepository struct {
	db *gorm.DB
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

func (s *serverRepository) CreateServer(ctx context.Context, server model.ServerConfig) (model.ServerConfig, error) {
	result := s.db.WithContext(ctx).Create(&server)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "servers_name_key") {
			return server, fmt.Errorf("ServerRepository.CreateServer: %w", apperrors.NewConflictError(apperrors.ErrServerNameExists, server.Name))
		}
		return server, fmt.Errorf("ServerRepository.CreateServer: %w", result.Error)
	}
	return server, nil
}

func (s *serverRepository) GetServerById(ctx context.Context, serverId string) (model.ServerConfig, error) {
	var server model.ServerConfig
	result := s.db.WithContext(ctx).First(&server, "id = ?", serverId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return server, fmt.Errorf("ServerRepository.GetServerById: %w", apperrors.NewNotFoundError(apperrors.ErrServerNotFound, serverId))
		}
		return server, fmt.Errorf("ServerRepository.GetServerById: %w", result.Error)
	}
	return server, nil
}

func (s *serverRepository) GetServers(ctx context.Context) ([]model.ServerConfig, error) {
	var servers []model.ServerConfig
	result := s.db.WithContext(ctx).Order("created_at asc").Find(&servers)
	if result.Error != nil {
		return nil, fmt.Errorf("ServerRepository.GetServers: %w", result.Error)
	}
	return servers, nil
}

func (s *serverRepository) UpdateServer(ctx context.Context, server model.ServerConfig) error {
	result := s.db.WithContext(ctx).Model(&model.ServerConfig{}).Where("id = ?", server.ID).Select("*").Omit("id", "created_at").Updates(&server)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "servers_name_key") {
			return fmt.Errorf("ServerRepository.UpdateServer: %w", apperrors.NewConflictError(apperrors.ErrServerNameExists, server.Name))
		}
		return fmt.Errorf("ServerRepository.UpdateServer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ServerRepository.UpdateServer: %w", apperrors.NewNotFoundError(apperrors.ErrServerNotFound, server.ID))
	}
	return nil
}

func (s *serverRepository) UpdateServerStatus(ctx context.Context, serverId string, status model.ServerStatus) error {
	result := s.db.WithContext(ctx).Model(&model.ServerConfig{}).Where("id = ?", serverId).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("ServerRepository.UpdateServerStatus: %w", result.Error)
	}
	return nil
}

func (s *serverRepository) DeleteServerById(ctx context.Context, serverId string) error {
	result := s.db.WithContext(ctx).Where("id = ?", serverId).Delete(&model.ServerConfig{})
	if result.Error != nil {
		return fmt.Errorf("ServerRepository.DeleteServerById: %w", result.Error)
	}
	return nil
}

func NewServerRepository(db *gorm.DB) ServerRepository {
	return &serverRepository{
		db: db,
	}
}
