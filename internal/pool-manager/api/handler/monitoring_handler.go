package handler

import (
	"Integration_Pool_Manager/internal/pool-manager/alert"
	"Integration_Pool_Manager/internal/pool-manager/api/dto/request"
	"Integration_Pool_Manager/internal/pool-manager/api/dto/response"
	"Integration_Pool_Manager/internal/pool-manager/model"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultCooldownMinutes = 15

type MonitoringHandler interface {
	GetActiveAlerts() gin.HandlerFunc
	GetAlertHistory() gin.HandlerFunc
	ResolveAlert() gin.HandlerFunc
	GetAlertRules() gin.HandlerFunc
	CreateAlertRule() gin.HandlerFunc
	UpdateAlertRule() gin.HandlerFunc
	DeleteAlertRule() gin.HandlerFunc
}

type monitoringHandler struct {
	handlerLogger
	alerts alert.Engine
}

func (m *monitoringHandler) GetActiveAlerts() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, m.alerts.ActiveAlerts())
	}
}

func (m *monitoringHandler) GetAlertHistory() gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Offset must be an integer",
			})
			return
		}
		l, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Limit must be an integer",
			})
			return
		}
		if o < 0 {
			o = 0
		}
		if l <= 0 {
			l = 50
		}
		alerts, err := m.alerts.History(c, l, o)
		if err != nil {
			m.respondError(c, fmt.Errorf("MonitoringHandler.GetAlertHistory: %w", err), "failed to get alert history")
			return
		}
		c.JSON(http.StatusOK, response.AlertHistoryResponse{
			Alerts: alerts,
			Limit:  l,
			Offset: o,
		})
	}
}

func (m *monitoringHandler) ResolveAlert() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		resolved, err := m.alerts.ResolveAlert(c, id)
		if err != nil {
			m.respondError(c, fmt.Errorf("MonitoringHandler.ResolveAlert: %w", err), fmt.Sprintf("failed to resolve alert %s", id))
			return
		}
		c.JSON(http.StatusOK, resolved)
	}
}

func (m *monitoringHandler) GetAlertRules() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, m.alerts.ListRules())
	}
}

func (m *monitoringHandler) CreateAlertRule() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.AlertRuleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			m.respondBindingError(c, err)
			return
		}
		rule := model.AlertRule{
			Name:            req.Name,
			Description:     req.Description,
			Condition:       toAlertCondition(req.Condition),
			Severity:        model.AlertSeverity(req.Severity),
			CooldownMinutes: defaultCooldownMinutes,
			Enabled:         true,
			ServerIDs:       req.ServerIDs,
			Tags:            req.Tags,
		}
		if req.CooldownMinutes != nil {
			rule.CooldownMinutes = *req.CooldownMinutes
		}
		if req.Enabled != nil {
			rule.Enabled = *req.Enabled
		}
		created, err := m.alerts.CreateRule(c, rule)
		if err != nil {
			m.respondError(c, fmt.Errorf("MonitoringHandler.CreateAlertRule: %w", err), "failed to create alert rule")
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func (m *monitoringHandler) UpdateAlertRule() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.UpdateAlertRuleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			m.respondBindingError(c, err)
			return
		}
		id := c.Param("id")
		patch := model.AlertRulePatch{
			Name:            req.Name,
			Description:     req.Description,
			CooldownMinutes: req.CooldownMinutes,
			Enabled:         req.Enabled,
			ServerIDs:       req.ServerIDs,
			Tags:            req.Tags,
		}
		if req.Condition != nil {
			condition := toAlertCondition(*req.Condition)
			patch.Condition = &condition
		}
		if req.Severity != nil {
			severity := model.AlertSeverity(*req.Severity)
			patch.Severity = &severity
		}
		updated, err := m.alerts.UpdateRule(c, id, patch)
		if err != nil {
			m.respondError(c, fmt.Errorf("MonitoringHandler.UpdateAlertRule: %w", err), fmt.Sprintf("failed to update alert rule %s", id))
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func (m *monitoringHandler) DeleteAlertRule() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := m.alerts.DeleteRule(c, id); err != nil {
			m.respondError(c, fmt.Errorf("MonitoringHandler.DeleteAlertRule: %w", err), fmt.Sprintf("failed to delete alert rule %s", id))
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Alert rule deleted",
		})
	}
}

func toAlertCondition(req request.AlertConditionRequest) model.AlertCondition {
	condition := model.AlertCondition{
		Metric:          model.AlertMetric(req.Metric),
		Operator:        model.ComparisonOperator(req.Operator),
		DurationSeconds: req.DurationSeconds,
		Aggregation:     model.Aggregation(req.Aggregation),
	}
	if req.Threshold != nil {
		condition.Threshold = *req.Threshold
	}
	if condition.Aggregation == "" {
		condition.Aggregation = model.AggregationAvg
	}
	return condition
}

func NewMonitoringHandler(logger *zap.Logger, alerts alert.Engine) MonitoringHandler {
	return &monitoringHandler{
		handlerLogger: handlerLogger{logger: logger},
		alerts:        alerts,
	}
}
