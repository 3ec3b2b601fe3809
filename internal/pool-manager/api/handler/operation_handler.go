package handler

import (
	"Integration_Pool_Manager/internal/pool-manager/api/dto/request"
	"Integration_Pool_Manager/internal/pool-manager/api/dto/response"
	"Integration_Pool_Manager/internal/pool-manager/model"
	"Integration_Pool_Manager/internal/pool-manager/service"
	"Integration_Pool_Manager/pkg/middleware"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OperationHandler interface {
	ExecuteOperation() gin.HandlerFunc
	GetOverview() gin.HandlerFunc
	ReportIntegrationsHealth() gin.HandlerFunc
}

type operationHandler struct {
	handlerLogger
	operationService service.OperationService
}

func (o *operationHandler) ExecuteOperation() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.ExecuteOperationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			o.respondBindingError(c, err)
			return
		}
		operation := model.OperationRequest{
			OperationID: req.OperationID,
			ServerID:    req.ServerID,
			PoolID:      req.PoolID,
			Capability:  req.Capability,
			Operation:   req.Operation,
			Parameters:  req.Parameters,
			Context:     req.Context,
			TimeoutMs:   req.TimeoutMs,
			RetryConfig: req.RetryConfig,
			Priority:    model.RequestPriority(req.Priority),
			Consistency: model.Consistency(req.Consistency),
			Idempotent:  req.Idempotent,
			TraceID:     req.TraceID,
			UserID:      c.GetString(middleware.UserIDContextKey),
			SessionID:   req.SessionID,
		}
		if operation.TraceID == "" {
			operation.TraceID = c.GetHeader("X-Trace-Id")
		}

		res, err := o.operationService.ExecuteOperation(c, operation)
		if err != nil {
			o.respondError(c, fmt.Errorf("OperationHandler.ExecuteOperation: %w", err), fmt.Sprintf("failed to execute operation %s", req.Operation))
			return
		}
		switch res.Status {
		case model.OperationStatusSuccess:
			c.JSON(http.StatusOK, res)
		case model.OperationStatusTimeout:
			c.JSON(http.StatusGatewayTimeout, res)
		default:
			c.JSON(http.StatusBadGateway, res)
		}
	}
}

func (o *operationHandler) GetOverview() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, o.operationService.GetOverview(c))
	}
}

func (o *operationHandler) ReportIntegrationsHealth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.ReportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			o.respondBindingError(c, err)
			return
		}
		startTime, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid start date",
			})
			return
		}
		endTime, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil || endTime.Before(startTime) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid end date",
			})
			return
		}
		if err = o.operationService.ReportIntegrationsHealth(c, startTime, endTime.AddDate(0, 0, 1), req.Emails); err != nil {
			err = fmt.Errorf("OperationHandler.ReportIntegrationsHealth: %w", err)
			o.loggingError(c, err, "failed to report integrations health", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Report sent successfully",
		})
	}
}

func NewOperationHandler(logger *zap.Logger, operationService service.OperationService) OperationHandler {
	return &operationHandler{
		handlerLogger:    handlerLogger{logger: logger},
		operationService: operationService,
	}
}
