package routes

import (
	"Integration_Pool_Manager/internal/pool-manager/api/handler"
	"Integration_Pool_Manager/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ScopeIntegrationsRead    = "integrations:read"
	ScopeIntegrationsWrite   = "integrations:write"
	ScopeIntegrationsExecute = "integrations:execute"
	ScopeIntegrationsAdmin   = "integrations:admin"
)

type Handlers struct {
	Server     handler.ServerHandler
	Pool       handler.PoolHandler
	Operation  handler.OperationHandler
	Monitoring handler.MonitoringHandler
}

func AddIntegrationRoutes(r *gin.Engine, h Handlers, m middleware.AuthMiddleware) {
	integrations := r.Group("/integrations", m.ValidateAndExtractJwt())

	integrations.POST("/operations/execute", m.CheckUserPermission(ScopeIntegrationsExecute), h.Operation.ExecuteOperation())
	integrations.GET("/overview", m.CheckUserPermission(ScopeIntegrationsRead), h.Operation.GetOverview())
	integrations.POST("/reports", m.CheckUserPermission(ScopeIntegrationsAdmin), h.Operation.ReportIntegrationsHealth())

	servers := integrations.Group("/servers")
	servers.GET("", m.CheckUserPermission(ScopeIntegrationsRead), h.Server.GetServers())
	servers.GET("/health", m.CheckUserPermission(ScopeIntegrationsRead), h.Server.GetAllHealthScores())
	servers.GET("/export", m.CheckUserPermission(ScopeIntegrationsRead), h.Server.ExportServersToExcelFile())
	servers.POST("/import", m.CheckUserPermission(ScopeIntegrationsWrite), h.Server.ImportServersFromExcelFile())
	servers.POST("/register", m.CheckUserPermission(ScopeIntegrationsWrite), h.Server.RegisterServer())
	servers.POST("/test-connection", m.CheckUserPermission(ScopeIntegrationsRead), h.Server.TestServerConfig())
	servers.POST("/pools", m.CheckUserPermission(ScopeIntegrationsWrite), h.Pool.CreatePool())
	servers.GET("/:id", m.CheckUserPermission(ScopeIntegrationsRead), h.Server.GetServer())
	servers.PUT("/:id", m.CheckUserPermission(ScopeIntegrationsWrite), h.Server.UpdateServer())
	servers.DELETE("/:id", m.CheckUserPermission(ScopeIntegrationsWrite), h.Server.DeleteServer())
	servers.GET("/:id/health", m.CheckUserPermission(ScopeIntegrationsRead), h.Server.GetHealthScore())
	servers.GET("/:id/uptime", m.CheckUserPermission(ScopeIntegrationsRead), h.Server.GetServerUptimePercentage())
	servers.POST("/:id/test-connection", m.CheckUserPermission(ScopeIntegrationsRead), h.Server.TestConnection())

	pools := integrations.Group("/pools")
	pools.GET("", m.CheckUserPermission(ScopeIntegrationsRead), h.Pool.GetPools())
	pools.GET("/:name/statistics", m.CheckUserPermission(ScopeIntegrationsRead), h.Pool.GetPoolStatistics())
	pools.PUT("/:name", m.CheckUserPermission(ScopeIntegrationsWrite), h.Pool.UpdatePool())
	pools.DELETE("/:name", m.CheckUserPermission(ScopeIntegrationsWrite), h.Pool.DeletePool())

	monitoring := integrations.Group("/monitoring")
	monitoring.GET("/alerts", m.CheckUserPermission(ScopeIntegrationsRead), h.Monitoring.GetActiveAlerts())
	monitoring.GET("/alerts/history", m.CheckUserPermission(ScopeIntegrationsRead), h.Monitoring.GetAlertHistory())
	monitoring.POST("/alerts/:id/resolve", m.CheckUserPermission(ScopeIntegrationsAdmin), h.Monitoring.ResolveAlert())
	monitoring.GET("/alert-rules", m.CheckUserPermission(ScopeIntegrationsRead), h.Monitoring.GetAlertRules())
	monitoring.POST("/alert-rules", m.CheckUserPermission(ScopeIntegrationsAdmin), h.Monitoring.CreateAlertRule())
	monitoring.PUT("/alert-rules/:id", m.CheckUserPermission(ScopeIntegrationsAdmin), h.Monitoring.UpdateAlertRule())
	monitoring.DELETE("/alert-rules/:id", m.CheckUserPermission(ScopeIntegrationsAdmin), h.Monitoring.DeleteAlertRule())
}

// AddMetricsRoute exposes the given registry without authentication.
func AddMetricsRoute(r *gin.Engine, registry *prometheus.Registry) {
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
}
