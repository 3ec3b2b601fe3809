package service

import (
	"Integration_Pool_Manager/internal/pool-manager/alert"
	"Integration_Pool_Manager/internal/pool-manager/health"
	"Integration_Pool_Manager/internal/pool-manager/model"
	"Integration_Pool_Manager/internal/pool-manager/registry"
	"Integration_Pool_Manager/internal/pool-manager/repository"
	"Integration_Pool_Manager/internal/pool-manager/router"
	"Integration_Pool_Manager/pkg/mail"
	"context"
	"fmt"
	"math"
	"time"
)

type OperationService interface {
	ExecuteOperation(ctx context.Context, req model.OperationRequest) (model.OperationResponse, error)
	GetOverview(ctx context.Context) model.Overview
	ReportIntegrationsHealth(ctx context.Context, startDate time.Time, endDate time.Time, recipients []string) error
}

type operationService struct {
	router                router.Router
	registry              registry.Registry
	monitor               health.Monitor
	alerts                alert.Engine
	healthCheckRepository repository.HealthCheckRepository
	mailSender            mail.Sender
}

func (o *operationService) ExecuteOperation(ctx context.Context, req model.OperationRequest) (model.OperationResponse, error) {
	res, err := o.router.Execute(ctx, req)
	if err != nil {
		return res, fmt.Errorf("OperationService.ExecuteOperation: %w", err)
	}
	return res, nil
}

func (o *operationService) GetOverview(ctx context.Context) model.Overview {
	servers := o.registry.List(model.ServerFilter{})
	overview := model.Overview{
		TotalServers: len(servers),
		TotalPools:   len(o.registry.ListPools()),
		HealthDistribution: map[model.ServerStatus]int{
			model.ServerStatusInactive:    0,
			model.ServerStatusActive:      0,
			model.ServerStatusDegraded:    0,
			model.ServerStatusUnhealthy:   0,
			model.ServerStatusMaintenance: 0,
		},
		ActiveAlertsBySeverity: o.alerts.CountActiveBySeverity(),
	}
	for _, s := range servers {
		overview.HealthDistribution[s.Status]++
	}
	scores := o.monitor.GetAllHealthScores()
	if len(scores) > 0 {
		var sum float64
		for _, s := range scores {
			sum += s.Score
		}
		overview.AverageHealthScore = math.Round(sum/float64(len(scores))*100) / 100
	}
	return overview
}

func (o *operationService) ReportIntegrationsHealth(ctx context.Context, startDate time.Time, endDate time.Time, recipients []string) error {
	uptime, err := o.healthCheckRepository.GetAverageUptimePercentage(ctx, startDate, endDate)
	if err != nil {
		return fmt.Errorf("OperationService.ReportIntegrationsHealth: %w", err)
	}
	overview := o.GetOverview(ctx)
	textBody := generateTextMailBody(overview, uptime)
	htmlBody := generateHTMLBody(overview, uptime)
	subject := fmt.Sprintf("Integration Servers Health Report From %s To %s", startDate.Format(time.DateOnly), endDate.Add(-1*time.Second).Format(time.DateOnly))
	if err = o.mailSender.SendMail(recipients, subject, htmlBody, textBody, nil); err != nil {
		return fmt.Errorf("OperationService.ReportIntegrationsHealth: %w", err)
	}
	return nil
}

func generateTextMailBody(overview model.Overview, uptime float64) string {
	return fmt.Sprintf(
		"--- SUMMARY ---\n"+
			"Total Servers: %d\n"+
			"Total Pools: %d\n"+
			"Active: %d\n"+
			"Degraded: %d\n"+
			"Unhealthy: %d\n"+
			"Inactive: %d\n"+
			"Maintenance: %d\n"+
			"Average Health Score: %.2f\n"+
			"Active Critical Alerts: %d\n\n"+
			"Average Uptime Across All Servers: %.2f%%",
		overview.TotalServers,
		overview.TotalPools,
		overview.HealthDistribution[model.ServerStatusActive],
		overview.HealthDistribution[model.ServerStatusDegraded],
		overview.HealthDistribution[model.ServerStatusUnhealthy],
		overview.HealthDistribution[model.ServerStatusInactive],
		overview.HealthDistribution[model.ServerStatusMaintenance],
		overview.AverageHealthScore,
		overview.ActiveAlertsBySeverity[model.SeverityCritical],
		uptime,
	)
}

func generateHTMLBody(overview model.Overview, uptime float64) string {
	row := `
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">%s</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%s</td>
        </tr>`
	rows := ""
	for _, r := range [][2]string{
		{"Total Servers:", fmt.Sprint(overview.TotalServers)},
		{"Total Pools:", fmt.Sprint(overview.TotalPools)},
		{"Active Servers:", fmt.Sprint(overview.HealthDistribution[model.ServerStatusActive])},
		{"Degraded Servers:", fmt.Sprint(overview.HealthDistribution[model.ServerStatusDegraded])},
		{"Unhealthy Servers:", fmt.Sprint(overview.HealthDistribution[model.ServerStatusUnhealthy])},
		{"Inactive Servers:", fmt.Sprint(overview.HealthDistribution[model.ServerStatusInactive])},
		{"Servers In Maintenance:", fmt.Sprint(overview.HealthDistribution[model.ServerStatusMaintenance])},
		{"Average Health Score:", fmt.Sprintf("%.2f", overview.AverageHealthScore)},
		{"Active Critical Alerts:", fmt.Sprint(overview.ActiveAlertsBySeverity[model.SeverityCritical])},
		{"Average Uptime Percentage:", fmt.Sprintf("%.2f%%", uptime)},
	} {
		rows += fmt.Sprintf(row, r[0], r[1])
	}
	return fmt.Sprintf(`
<body>
    <table style="width:100%%; border-collapse: collapse;">%s
    </table>
</body>`, rows)
}

func NewOperationService(router router.Router, registry registry.Registry, monitor health.Monitor, alerts alert.Engine, healthCheckRepository repository.HealthCheckRepository, mailSender mail.Sender) OperationService {
	return &operationService{
		router:                router,
		registry:              registry,
		monitor:               monitor,
		alerts:                alerts,
		healthCheckRepository: healthCheckRepository,
		mailSender:            mailSender,
	}
}
