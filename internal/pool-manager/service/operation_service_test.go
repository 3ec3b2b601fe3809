package service

import (
	apperrors "Integration_Pool_Manager/internal/pool-manager/errors"
	mockalert "Integration_Pool_Manager/internal/pool-manager/mocks/alert"
	mockhealth "Integration_Pool_Manager/internal/pool-manager/mocks/health"
	mockregistry "Integration_Pool_Manager/internal/pool-manager/mocks/registry"
	mockrepository "Integration_Pool_Manager/internal/pool-manager/mocks/repository"
	mockrouter "Integration_Pool_Manager/internal/pool-manager/mocks/router"
	"Integration_Pool_Manager/internal/pool-manager/model"
	mockmail "Integration_Pool_Manager/pkg/mail"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type operationMocks struct {
	router          *mockrouter.MockRouter
	registry        *mockregistry.MockRegistry
	monitor         *mockhealth.MockMonitor
	alerts          *mockalert.MockEngine
	healthCheckRepo *mockrepository.MockHealthCheckRepository
	mailSender      *mockmail.MockSender
}

func newOperationMocks(ctrl *gomock.Controller) operationMocks {
	return operationMocks{
		router:          mockrouter.NewMockRouter(ctrl),
		registry:        mockregistry.NewMockRegistry(ctrl),
		monitor:         mockhealth.NewMockMonitor(ctrl),
		alerts:          mockalert.NewMockEngine(ctrl),
		healthCheckRepo: mockrepository.NewMockHealthCheckRepository(ctrl),
		mailSender:      mockmail.NewMockSender(ctrl),
	}
}

func (m operationMocks) service() OperationService {
	return NewOperationService(m.router, m.registry, m.monitor, m.alerts, m.healthCheckRepo, m.mailSender)
}

func (m operationMocks) expectOverview() {
	m.registry.EXPECT().List(model.ServerFilter{}).Return([]model.ServerConfig{
		{ID: "a", Status: model.ServerStatusActive},
		{ID: "b", Status: model.ServerStatusActive},
		{ID: "c", Status: model.ServerStatusUnhealthy},
	})
	m.registry.EXPECT().ListPools().Return([]model.Pool{{Name: "github"}})
	m.alerts.EXPECT().CountActiveBySeverity().Return(map[model.AlertSeverity]int{
		model.SeverityWarning:  1,
		model.SeverityError:    0,
		model.SeverityCritical: 2,
	})
	m.monitor.EXPECT().GetAllHealthScores().Return([]model.HealthScore{{Score: 90}, {Score: 95}, {Score: 10}})
}

func TestOperationService_ExecuteOperation(t *testing.T) {
	ctx := context.Background()
	req := model.OperationRequest{OperationID: "op-1", Operation: "sendMessage", Capability: "slack"}

	testCases := []struct {
		name       string
		setupMocks func(m operationMocks)
		output     model.OperationResponse
		expectErr  error
	}{
		{
			name: "Success",
			setupMocks: func(m operationMocks) {
				m.router.EXPECT().Execute(ctx, req).Return(model.OperationResponse{OperationID: "op-1", Status: model.OperationStatusSuccess}, nil)
			},
			output: model.OperationResponse{OperationID: "op-1", Status: model.OperationStatusSuccess},
		},
		{
			name: "Failure No available servers",
			setupMocks: func(m operationMocks) {
				m.router.EXPECT().Execute(ctx, req).Return(model.OperationResponse{}, apperrors.ErrNoAvailableServers)
			},
			expectErr: apperrors.ErrNoAvailableServers,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newOperationMocks(ctrl)
			tc.setupMocks(m)

			res, err := m.service().ExecuteOperation(ctx, req)

			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.output, res)
		})
	}
}

func TestOperationService_GetOverview(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newOperationMocks(ctrl)
	m.expectOverview()

	overview := m.service().GetOverview(context.Background())

	assert.Equal(t, 3, overview.TotalServers)
	assert.Equal(t, 1, overview.TotalPools)
	assert.Equal(t, 2, overview.HealthDistribution[model.ServerStatusActive])
	assert.Equal(t, 1, overview.HealthDistribution[model.ServerStatusUnhealthy])
	assert.Equal(t, 0, overview.HealthDistribution[model.ServerStatusMaintenance])
	assert.Equal(t, 65.0, overview.AverageHealthScore)
	assert.Equal(t, 2, overview.ActiveAlertsBySeverity[model.SeverityCritical])
}

func TestOperationService_ReportIntegrationsHealth(t *testing.T) {
	ctx := context.Background()
	startDate := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	endDate := startDate.AddDate(0, 0, 1)
	recipients := []string{"admin@example.com"}

	testCases := []struct {
		name       string
		setupMocks func(m operationMocks)
		expectErr  bool
	}{
		{
			name: "Success Report is mailed",
			setupMocks: func(m operationMocks) {
				m.healthCheckRepo.EXPECT().GetAverageUptimePercentage(ctx, startDate, endDate).Return(99.5, nil)
				m.expectOverview()
				m.mailSender.EXPECT().
					SendMail(recipients, "Integration Servers Health Report From 2026-03-01 To 2026-03-01", gomock.Any(), gomock.Any(), gomock.Nil()).
					DoAndReturn(func(to []string, subject, htmlBody, textBody string, _ []mockmail.Attachment) error {
						assert.True(t, strings.Contains(textBody, "Average Uptime Across All Servers: 99.50%"))
						assert.True(t, strings.Contains(textBody, "Active Critical Alerts: 2"))
						assert.Contains(t, htmlBody, "<td style=\"border: 1px solid #dddddd; text-align: left; padding: 8px;\">99.50%</td>")
						return nil
					})
			},
		},
		{
			name: "Failure Elasticsearch error",
			setupMocks: func(m operationMocks) {
				m.healthCheckRepo.EXPECT().GetAverageUptimePercentage(ctx, startDate, endDate).Return(0.0, errors.New("es down"))
			},
			expectErr: true,
		},
		{
			name: "Failure Mail error",
			setupMocks: func(m operationMocks) {
				m.healthCheckRepo.EXPECT().GetAverageUptimePercentage(ctx, startDate, endDate).Return(99.5, nil)
				m.expectOverview()
				m.mailSender.EXPECT().SendMail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newOperationMocks(ctrl)
			tc.setupMocks(m)

			err := m.service().ReportIntegrationsHealth(ctx, startDate, endDate, recipients)

			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
