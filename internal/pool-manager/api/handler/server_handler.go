package handler

import (
	"Integration_Pool_Manager/internal/pool-manager/api/dto/request"
	"Integration_Pool_Manager/internal/pool-manager/api/dto/response"
	"Integration_Pool_Manager/internal/pool-manager/model"
	"Integration_Pool_Manager/internal/pool-manager/service"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type ServerHandler interface {
	RegisterServer() gin.HandlerFunc
	GetServers() gin.HandlerFunc
	GetServer() gin.HandlerFunc
	UpdateServer() gin.HandlerFunc
	DeleteServer() gin.HandlerFunc
	GetAllHealthScores() gin.HandlerFunc
	GetHealthScore() gin.HandlerFunc
	GetServerUptimePercentage() gin.HandlerFunc
	TestConnection() gin.HandlerFunc
	TestServerConfig() gin.HandlerFunc
	ImportServersFromExcelFile() gin.HandlerFunc
	ExportServersToExcelFile() gin.HandlerFunc
}

type serverHandler struct {
	handlerLogger
	serverService service.ServerService
	validator     *validator.Validate
}

func (s *serverHandler) RegisterServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.ServerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			s.respondBindingError(c, err)
			return
		}
		res, err := s.serverService.RegisterServer(c, toServerConfig(req))
		if err != nil {
			s.respondError(c, fmt.Errorf("ServerHandler.RegisterServer: %w", err), "failed to register server")
			return
		}
		c.JSON(http.StatusCreated, response.RegisterServerResponse{
			ServerID: res.ID,
		})
	}
}

func (s *serverHandler) GetServers() gin.HandlerFunc {
	return func(c *gin.Context) {
		filter, msg := parseServerFilter(c)
		if msg != "" {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: msg,
			})
			return
		}
		c.JSON(http.StatusOK, s.serverService.ListServers(c, filter))
	}
}

func (s *serverHandler) GetServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		server, err := s.serverService.GetServer(c, id)
		if err != nil {
			s.respondError(c, fmt.Errorf("ServerHandler.GetServer: %w", err), fmt.Sprintf("failed to get server %s", id))
			return
		}
		c.JSON(http.StatusOK, server)
	}
}

func (s *serverHandler) UpdateServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.UpdateServerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			s.respondBindingError(c, err)
			return
		}
		id := c.Param("id")
		updatedServer, err := s.serverService.UpdateServer(c, id, toServerPatch(req))
		if err != nil {
			s.respondError(c, fmt.Errorf("ServerHandler.UpdateServer: %w", err), fmt.Sprintf("failed to update server %s", id))
			return
		}
		c.JSON(http.StatusOK, updatedServer)
	}
}

func (s *serverHandler) DeleteServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := s.serverService.RemoveServer(c, id); err != nil {
			s.respondError(c, fmt.Errorf("ServerHandler.DeleteServer: %w", err), fmt.Sprintf("failed to delete server %s", id))
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Server deleted",
		})
	}
}

func (s *serverHandler) GetAllHealthScores() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.serverService.GetAllHealthScores(c))
	}
}

func (s *serverHandler) GetHealthScore() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		score, err := s.serverService.GetHealthScore(c, id)
		if err != nil {
			s.respondError(c, fmt.Errorf("ServerHandler.GetHealthScore: %w", err), fmt.Sprintf("failed to get health score of server %s", id))
			return
		}
		c.JSON(http.StatusOK, score)
	}
}

func (s *serverHandler) GetServerUptimePercentage() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		startTime, err := time.Parse("2006-01-02", c.Query("start_date"))
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid start date",
			})
			return
		}
		endTime, err := time.Parse("2006-01-02", c.Query("end_date"))
		if err != nil || endTime.Before(startTime) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid end date",
			})
			return
		}
		res, err := s.serverService.GetServerUptimePercentage(c, id, startTime, endTime.AddDate(0, 0, 1))
		if err != nil {
			s.respondError(c, fmt.Errorf("ServerHandler.GetServerUptimePercentage: %w", err),
				fmt.Sprintf("failed to get uptime percentage of server %s from %s to %s", id, startTime, endTime))
			return
		}
		c.JSON(http.StatusOK, response.UptimeResponse{
			UptimePercentage: res,
		})
	}
}

func (s *serverHandler) TestConnection() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		res, err := s.serverService.TestConnection(c, id)
		if err != nil {
			s.respondError(c, fmt.Errorf("ServerHandler.TestConnection: %w", err), fmt.Sprintf("failed to test connection of server %s", id))
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func (s *serverHandler) TestServerConfig() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.ServerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			s.respondBindingError(c, err)
			return
		}
		res, err := s.serverService.TestServerConfig(c, toServerConfig(req))
		if err != nil {
			s.respondError(c, fmt.Errorf("ServerHandler.TestServerConfig: %w", err), "failed to test server config")
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func parseServerFilter(c *gin.Context) (model.ServerFilter, string) {
	filter := model.ServerFilter{
		Region:     c.Query("region"),
		Tag:        c.Query("tag"),
		Capability: c.Query("capability"),
		NamePrefix: c.Query("name"),
	}
	if status := model.ServerStatus(c.Query("status")); status != "" {
		if !status.Valid() {
			return filter, "Invalid status"
		}
		filter.Status = status
	}
	if priority := model.Priority(c.Query("priority")); priority != "" {
		if !priority.Valid() {
			return filter, "Invalid priority"
		}
		filter.Priority = priority
	}
	return filter, ""
}

func toServerConfig(req request.ServerRequest) model.ServerConfig {
	server := model.ServerConfig{
		Name:         req.Name,
		Description:  req.Description,
		Version:      req.Version,
		Status:       model.ServerStatus(req.Status),
		Endpoint:     req.Endpoint,
		Protocol:     model.Protocol(req.Protocol),
		Capabilities: req.Capabilities,
		Region:       req.Region,
		Priority:     model.Priority(req.Priority),
		Tags:         req.Tags,
	}
	if req.Authentication != nil {
		server.Authentication = *req.Authentication
	}
	if req.Performance != nil {
		server.Performance = *req.Performance
	}
	if req.HealthCheck != nil {
		server.HealthCheck = *req.HealthCheck
	}
	if req.Metadata != nil {
		server.Metadata = datatypes.JSONMap(req.Metadata)
	}
	return server
}

func toServerPatch(req request.UpdateServerRequest) model.ServerPatch {
	patch := model.ServerPatch{
		Name:           req.Name,
		Description:    req.Description,
		Version:        req.Version,
		Endpoint:       req.Endpoint,
		Authentication: req.Authentication,
		Capabilities:   req.Capabilities,
		Performance:    req.Performance,
		Region:         req.Region,
		HealthCheck:    req.HealthCheck,
		Tags:           req.Tags,
		Metadata:       req.Metadata,
	}
	if req.Status != nil {
		status := model.ServerStatus(*req.Status)
		patch.Status = &status
	}
	if req.Protocol != nil {
		protocol := model.Protocol(*req.Protocol)
		patch.Protocol = &protocol
	}
	if req.Priority != nil {
		priority := model.Priority(*req.Priority)
		patch.Priority = &priority
	}
	return patch
}

func NewServerHandler(logger *zap.Logger, serverService service.ServerService) ServerHandler {
	return &serverHandler{
		handlerLogger: handlerLogger{logger: logger},
		serverService: serverService,
		validator:     validator.New(),
	}
}
