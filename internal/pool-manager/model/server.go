package model

import (
	"encoding/base64"
	"net/http"
	"slices"
	"strings"
	"time"

	"gorm.io/datatypes"
)

type ServerStatus string

const (
	ServerStatusInactive    ServerStatus = "inactive"
	ServerStatusActive      ServerStatus = "active"
	ServerStatusDegraded    ServerStatus = "degraded"
	ServerStatusUnhealthy   ServerStatus = "unhealthy"
	ServerStatusMaintenance ServerStatus = "maintenance"
)

func (s ServerStatus) Valid() bool {
	switch s {
	case ServerStatusInactive, ServerStatusActive, ServerStatusDegraded, ServerStatusUnhealthy, ServerStatusMaintenance:
		return true
	}
	return false
}

type Protocol string

const (
	ProtocolWebSocket Protocol = "websocket"
	ProtocolHTTP      Protocol = "http"
	ProtocolGRPC      Protocol = "grpc"
)

func (p Protocol) Valid() bool {
	return p == ProtocolWebSocket || p == ProtocolHTTP || p == ProtocolGRPC
}

type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityNormal   Priority = "normal"
	PriorityLow      Priority = "low"
)

// Rank orders priorities from most (0) to least important. Medium and normal are equivalent.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium, PriorityNormal, "":
		return 2
	case PriorityLow:
		return 3
	}
	return 2
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityNormal, PriorityLow:
		return true
	}
	return false
}

type AuthType string

const (
	AuthTypeNone   AuthType = "none"
	AuthTypeAPIKey AuthType = "api_key"
	AuthTypeBearer AuthType = "bearer"
	AuthTypeBasic  AuthType = "basic"
	AuthTypeOAuth2 AuthType = "oauth2"
)

type Authentication struct {
	Type        AuthType          `json:"type" yaml:"type"`
	Credentials map[string]string `json:"credentials,omitempty" yaml:"credentials"`
}

// Header builds the request headers that carry the credentials to a downstream server.
func (a Authentication) Header() http.Header {
	h := http.Header{}
	switch a.Type {
	case AuthTypeAPIKey:
		name := a.Credentials["header"]
		if name == "" {
			name = "X-API-Key"
		}
		h.Set(name, a.Credentials["key"])
	case AuthTypeBearer:
		h.Set("Authorization", "Bearer "+a.Credentials["token"])
	case AuthTypeOAuth2:
		h.Set("Authorization", "Bearer "+a.Credentials["accessToken"])
	case AuthTypeBasic:
		raw := a.Credentials["username"] + ":" + a.Credentials["password"]
		h.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(raw)))
	}
	return h
}

type Capability struct {
	Name        string   `json:"name" yaml:"name"`
	Operations  []string `json:"operations" yaml:"operations"`
	InputTypes  []string `json:"inputTypes,omitempty" yaml:"inputTypes"`
	OutputTypes []string `json:"outputTypes,omitempty" yaml:"outputTypes"`
}

type RateLimits struct {
	RequestsPerSecond int `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	RequestsPerMinute int `json:"requestsPerMinute" yaml:"requestsPerMinute"`
}

type Reliability struct {
	Uptime    float64 `json:"uptime" yaml:"uptime"`
	ErrorRate float64 `json:"errorRate" yaml:"errorRate"`
}

type Performance struct {
	MaxConcurrentConnections int         `json:"maxConcurrentConnections" yaml:"maxConcurrentConnections"`
	AverageResponseTimeMs    int         `json:"averageResponseTimeMs" yaml:"averageResponseTimeMs"`
	RateLimits               RateLimits  `json:"rateLimits" yaml:"rateLimits"`
	Reliability              Reliability `json:"reliability" yaml:"reliability"`
}

type ExpectedResponse struct {
	StatusCode   int    `json:"statusCode,omitempty" yaml:"statusCode"`
	BodyContains string `json:"bodyContains,omitempty" yaml:"bodyContains"`
}

type HealthCheckConfig struct {
	Enabled          bool              `json:"enabled" yaml:"enabled"`
	IntervalMs       int               `json:"intervalMs" yaml:"intervalMs"`
	TimeoutMs        int               `json:"timeoutMs" yaml:"timeoutMs"`
	Endpoint         string            `json:"endpoint,omitempty" yaml:"endpoint"`
	ExpectedResponse *ExpectedResponse `json:"expectedResponse,omitempty" yaml:"expectedResponse"`
}

type ServerConfig struct {
	ID             string            `json:"id" gorm:"primaryKey"`
	Name           string            `json:"name" gorm:"uniqueIndex:servers_name_key"`
	Description    string            `json:"description"`
	Version        string            `json:"version"`
	Status         ServerStatus      `json:"status"`
	Endpoint       string            `json:"endpoint"`
	Protocol       Protocol          `json:"protocol"`
	Authentication Authentication    `json:"authentication" gorm:"serializer:json"`
	Capabilities   []Capability      `json:"capabilities" gorm:"serializer:json"`
	Performance    Performance       `json:"performance" gorm:"serializer:json"`
	Region         string            `json:"region"`
	Priority       Priority          `json:"priority"`
	HealthCheck    HealthCheckConfig `json:"healthCheck" gorm:"serializer:json"`
	Tags           []string          `json:"tags" gorm:"serializer:json"`
	Metadata       datatypes.JSONMap `json:"metadata"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

func (ServerConfig) TableName() string {
	return "servers"
}

func (s ServerConfig) HasCapability(name string) bool {
	for _, c := range s.Capabilities {
		if c.Name == name {
			return true
		}
	}
	return false
}

func (s ServerConfig) SupportsOperation(operation string) bool {
	for _, c := range s.Capabilities {
		if slices.Contains(c.Operations, operation) {
			return true
		}
	}
	return false
}

// ServerPatch carries the fields of an administrative update. Nil means unchanged.
type ServerPatch struct {
	Name           *string
	Description    *string
	Version        *string
	Status         *ServerStatus
	Endpoint       *string
	Protocol       *Protocol
	Authentication *Authentication
	Capabilities   []Capability
	Performance    *Performance
	Region         *string
	Priority       *Priority
	HealthCheck    *HealthCheckConfig
	Tags           []string
	Metadata       map[string]interface{}
}

// Apply returns a copy of server with the patch merged in.
func (p ServerPatch) Apply(server ServerConfig) ServerConfig {
	if p.Name != nil {
		server.Name = *p.Name
	}
	if p.Description != nil {
		server.Description = *p.Description
	}
	if p.Version != nil {
		server.Version = *p.Version
	}
	if p.Status != nil {
		server.Status = *p.Status
	}
	if p.Endpoint != nil {
		server.Endpoint = *p.Endpoint
	}
	if p.Protocol != nil {
		server.Protocol = *p.Protocol
	}
	if p.Authentication != nil {
		server.Authentication = *p.Authentication
	}
	if p.Capabilities != nil {
		server.Capabilities = p.Capabilities
	}
	if p.Performance != nil {
		server.Performance = *p.Performance
	}
	if p.Region != nil {
		server.Region = *p.Region
	}
	if p.Priority != nil {
		server.Priority = *p.Priority
	}
	if p.HealthCheck != nil {
		server.HealthCheck = *p.HealthCheck
	}
	if p.Tags != nil {
		server.Tags = p.Tags
	}
	if p.Metadata != nil {
		server.Metadata = p.Metadata
	}
	return server
}

type ServerFilter struct {
	Status     ServerStatus
	Priority   Priority
	Region     string
	Tag        string
	Capability string
	NamePrefix string
}

// GRPCTarget strips the optional grpc:// scheme from the endpoint.
func (s ServerConfig) GRPCTarget() string {
	return strings.TrimPrefix(s.Endpoint, "grpc://")
}

// URL joins the endpoint with a path, keeping exactly one slash between them.
func (s ServerConfig) URL(path string) string {
	if path == "" {
		return s.Endpoint
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimRight(s.Endpoint, "/") + path
}
