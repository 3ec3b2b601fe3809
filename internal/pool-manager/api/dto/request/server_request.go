package request

import "Integration_Pool_Manager/internal/pool-manager/model"

type ServerRequest struct {
	Name           string                   `json:"name" binding:"required" validate:"required"`
	Description    string                   `json:"description"`
	Version        string                   `json:"version"`
	Status         string                   `json:"status" binding:"omitempty,oneof=inactive active degraded unhealthy maintenance" validate:"omitempty,oneof=inactive active degraded unhealthy maintenance"`
	Endpoint       string                   `json:"endpoint" binding:"required" validate:"required"`
	Protocol       string                   `json:"protocol" binding:"required,oneof=websocket http grpc" validate:"required,oneof=websocket http grpc"`
	Authentication *model.Authentication    `json:"authentication"`
	Capabilities   []model.Capability       `json:"capabilities"`
	Performance    *model.Performance       `json:"performance"`
	Region         string                   `json:"region"`
	Priority       string                   `json:"priority" binding:"omitempty,oneof=critical high medium normal low" validate:"omitempty,oneof=critical high medium normal low"`
	HealthCheck    *model.HealthCheckConfig `json:"healthCheck"`
	Tags           []string                 `json:"tags"`
	Metadata       map[string]interface{}   `json:"metadata"`
}

type UpdateServerRequest struct {
	Name           *string                  `json:"name" binding:"omitempty,min=1"`
	Description    *string                  `json:"description"`
	Version        *string                  `json:"version"`
	Status         *string                  `json:"status" binding:"omitempty,oneof=inactive active degraded unhealthy maintenance"`
	Endpoint       *string                  `json:"endpoint" binding:"omitempty,min=1"`
	Protocol       *string                  `json:"protocol" binding:"omitempty,oneof=websocket http grpc"`
	Authentication *model.Authentication    `json:"authentication"`
	Capabilities   []model.Capability       `json:"capabilities"`
	Performance    *model.Performance       `json:"performance"`
	Region         *string                  `json:"region"`
	Priority       *string                  `json:"priority" binding:"omitempty,oneof=critical high medium normal low"`
	HealthCheck    *model.HealthCheckConfig `json:"healthCheck"`
	Tags           []string                 `json:"tags"`
	Metadata       map[string]interface{}   `json:"metadata"`
}
