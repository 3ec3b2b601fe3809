package health

import (
	"Integration_Pool_Manager/internal/pool-manager/model"
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func httpServerConfig(endpoint string, hc model.HealthCheckConfig) model.ServerConfig {
	hc.Enabled = true
	return model.ServerConfig{
		ID:             "server-1",
		Name:           "server-1",
		Endpoint:       endpoint,
		Protocol:       model.ProtocolHTTP,
		Authentication: model.Authentication{Type: model.AuthTypeNone},
		HealthCheck:    hc,
	}
}

func TestProber_ProbeHTTP(t *testing.T) {
	tests := []struct {
		name             string
		handler          http.HandlerFunc
		healthCheck      model.HealthCheckConfig
		auth             model.Authentication
		expectedSuccess  bool
		expectedStatus   int
		expectedAttempts int
		expectedError    string
	}{
		{
			name: "Success on default path",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/health" {
					w.WriteHeader(http.StatusNotFound)
					return
				}
				w.WriteHeader(http.StatusOK)
			},
			expectedSuccess:  true,
			expectedStatus:   http.StatusOK,
			expectedAttempts: 1,
		},
		{
			name: "Custom path and expected body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/status" {
					w.WriteHeader(http.StatusNotFound)
					return
				}
				_, _ = w.Write([]byte(`{"status":"ok"}`))
			},
			healthCheck: model.HealthCheckConfig{
				Endpoint:         "status",
				ExpectedResponse: &model.ExpectedResponse{StatusCode: http.StatusOK, BodyContains: `"ok"`},
			},
			expectedSuccess:  true,
			expectedStatus:   http.StatusOK,
			expectedAttempts: 1,
		},
		{
			name: "Body mismatch is not retried",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"status":"starting"}`))
			},
			healthCheck: model.HealthCheckConfig{
				ExpectedResponse: &model.ExpectedResponse{BodyContains: `"ok"`},
			},
			expectedSuccess:  false,
			expectedStatus:   http.StatusOK,
			expectedAttempts: 1,
			expectedError:    "response body does not contain",
		},
		{
			name: "Unexpected status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			expectedSuccess:  false,
			expectedStatus:   http.StatusServiceUnavailable,
			expectedAttempts: 1,
			expectedError:    "unexpected status 503",
		},
		{
			name: "Expected status other than 200",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			},
			healthCheck: model.HealthCheckConfig{
				ExpectedResponse: &model.ExpectedResponse{StatusCode: http.StatusAccepted},
			},
			expectedSuccess:  false,
			expectedStatus:   http.StatusNoContent,
			expectedAttempts: 1,
			expectedError:    "expected status 202, got 204",
		},
		{
			name: "Bearer credentials are sent",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if r.Header.Get("Authorization") != "Bearer secret" {
					w.WriteHeader(http.StatusUnauthorized)
					return
				}
				w.WriteHeader(http.StatusOK)
			},
			auth:             model.Authentication{Type: model.AuthTypeBearer, Credentials: map[string]string{"token": "secret"}},
			expectedSuccess:  true,
			expectedStatus:   http.StatusOK,
			expectedAttempts: 1,
		},
		{
			name: "Timeouts are retried",
			handler: func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-r.Context().Done():
				case <-time.After(time.Second):
				}
			},
			healthCheck:      model.HealthCheckConfig{TimeoutMs: 50},
			expectedSuccess:  false,
			expectedAttempts: 3,
			expectedError:    "context deadline exceeded",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			server := httpServerConfig(srv.URL, tc.healthCheck)
			if tc.auth.Type != "" {
				server.Authentication = tc.auth
			}
			p := NewProber(2, time.Second, time.Millisecond)

			res := p.Probe(context.Background(), server)

			assert.Equal(t, tc.expectedSuccess, res.Success)
			assert.Equal(t, tc.expectedStatus, res.StatusCode)
			assert.Equal(t, tc.expectedAttempts, res.Attempts)
			assert.Equal(t, "server-1", res.ServerID)
			assert.False(t, res.Timestamp.IsZero())
			if tc.expectedError != "" {
				assert.Contains(t, res.Error, tc.expectedError)
			} else {
				assert.Empty(t, res.Error)
			}
		})
	}
}

func TestProber_ConnectionRefusedIsNotRetried(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := lis.Addr().String()
	require.NoError(t, lis.Close())

	p := NewProber(3, time.Second, 10*time.Millisecond)
	res := p.Probe(context.Background(), httpServerConfig("http://"+addr, model.HealthCheckConfig{}))

	assert.False(t, res.Success)
	assert.Equal(t, 1, res.Attempts)
	assert.Contains(t, res.Error, "connection refused")
}

func TestProber_ProbeWebSocket(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ws" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		_, _, _ = conn.ReadMessage()
	}))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	server := model.ServerConfig{
		ID:          "ws-1",
		Endpoint:    wsURL,
		Protocol:    model.ProtocolWebSocket,
		HealthCheck: model.HealthCheckConfig{Enabled: true, Endpoint: "/ws"},
	}
	p := NewProber(1, time.Second, time.Millisecond)

	res := p.Probe(context.Background(), server)
	assert.True(t, res.Success, res.Error)
	assert.Equal(t, http.StatusSwitchingProtocols, res.StatusCode)

	server.HealthCheck.Endpoint = "/other"
	res = p.Probe(context.Background(), server)
	assert.False(t, res.Success)
	assert.Equal(t, 1, res.Attempts)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestProber_ProbeGRPC(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	grpcServer := grpc.NewServer()
	healthServer := grpchealth.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	go func() { _ = grpcServer.Serve(lis) }()
	defer grpcServer.Stop()

	server := model.ServerConfig{
		ID:          "grpc-1",
		Endpoint:    "grpc://" + lis.Addr().String(),
		Protocol:    model.ProtocolGRPC,
		HealthCheck: model.HealthCheckConfig{Enabled: true, Endpoint: "/integration.v1.IntegrationService"},
	}
	p := NewProber(0, time.Second, time.Millisecond)

	healthServer.SetServingStatus("integration.v1.IntegrationService", healthpb.HealthCheckResponse_SERVING)
	res := p.Probe(context.Background(), server)
	assert.True(t, res.Success, res.Error)

	healthServer.SetServingStatus("integration.v1.IntegrationService", healthpb.HealthCheckResponse_NOT_SERVING)
	res = p.Probe(context.Background(), server)
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "NOT_SERVING")
}

func TestProber_UnsupportedProtocol(t *testing.T) {
	p := NewProber(3, time.Second, time.Millisecond)

	res := p.Probe(context.Background(), model.ServerConfig{ID: "x", Protocol: "ftp"})

	assert.False(t, res.Success)
	assert.Equal(t, 1, res.Attempts)
	assert.Contains(t, res.Error, "unsupported protocol")
}
