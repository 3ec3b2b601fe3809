package handler

import (
	"Integration_Pool_Manager/internal/pool-manager/api/dto/request"
	"Integration_Pool_Manager/internal/pool-manager/api/dto/response"
	"Integration_Pool_Manager/internal/pool-manager/model"
	"Integration_Pool_Manager/internal/pool-manager/service"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PoolHandler interface {
	CreatePool() gin.HandlerFunc
	UpdatePool() gin.HandlerFunc
	DeletePool() gin.HandlerFunc
	GetPools() gin.HandlerFunc
	GetPoolStatistics() gin.HandlerFunc
}

type poolHandler struct {
	handlerLogger
	poolService service.PoolService
}

func (p *poolHandler) CreatePool() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.PoolRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			p.respondBindingError(c, err)
			return
		}
		pool := model.Pool{
			Name:                  req.Name,
			Description:           req.Description,
			Capability:            req.Capability,
			ServerIDs:             req.ServerIDs,
			LoadBalancingStrategy: model.LoadBalancingStrategy(req.LoadBalancingStrategy),
		}
		if req.Configuration != nil {
			pool.Configuration = *req.Configuration
		}
		created, err := p.poolService.CreatePool(c, pool)
		if err != nil {
			p.respondError(c, fmt.Errorf("PoolHandler.CreatePool: %w", err), "failed to create pool")
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func (p *poolHandler) UpdatePool() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.UpdatePoolRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			p.respondBindingError(c, err)
			return
		}
		name := c.Param("name")
		patch := model.PoolPatch{
			Description:   req.Description,
			Capability:    req.Capability,
			ServerIDs:     req.ServerIDs,
			Configuration: req.Configuration,
		}
		if req.LoadBalancingStrategy != nil {
			strategy := model.LoadBalancingStrategy(*req.LoadBalancingStrategy)
			patch.LoadBalancingStrategy = &strategy
		}
		updated, err := p.poolService.UpdatePool(c, name, patch)
		if err != nil {
			p.respondError(c, fmt.Errorf("PoolHandler.UpdatePool: %w", err), fmt.Sprintf("failed to update pool %s", name))
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func (p *poolHandler) DeletePool() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		if err := p.poolService.DeletePool(c, name); err != nil {
			p.respondError(c, fmt.Errorf("PoolHandler.DeletePool: %w", err), fmt.Sprintf("failed to delete pool %s", name))
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Pool deleted",
		})
	}
}

func (p *poolHandler) GetPools() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, p.poolService.ListPools(c))
	}
}

func (p *poolHandler) GetPoolStatistics() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		stats, err := p.poolService.GetPoolStatistics(c, name)
		if err != nil {
			p.respondError(c, fmt.Errorf("PoolHandler.GetPoolStatistics: %w", err), fmt.Sprintf("failed to get statistics of pool %s", name))
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

func NewPoolHandler(logger *zap.Logger, poolService service.PoolService) PoolHandler {
	return &poolHandler{
		handlerLogger: handlerLogger{logger: logger},
		poolService:   poolService,
	}
}
