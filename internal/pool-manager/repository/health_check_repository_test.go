package repository

import (
	apperrors "Integration_Pool_Manager/internal/pool-manager/errors"
	"Integration_Pool_Manager/internal/pool-manager/model"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRoundTripper struct {
	Response *http.Response
	Err      error
}

func (m *mockRoundTripper) RoundTrip(_ *http.Request) (*http.Response, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Response, nil
}

func newMockEsClient(statusCode int, body string, err error) (*elasticsearch.Client, error) {
	if err != nil {
		return elasticsearch.NewClient(elasticsearch.Config{
			Transport: &mockRoundTripper{Err: err},
		})
	}
	header := http.Header{}
	header.Set("Content-Type", "application/json")
	header.Set("X-Elastic-Product", "Elasticsearch")

	return elasticsearch.NewClient(elasticsearch.Config{
		Transport: &mockRoundTripper{
			Response: &http.Response{
				StatusCode: statusCode,
				Body:       io.NopCloser(strings.NewReader(body)),
				Header:     header,
			},
		},
	})
}

func TestHealthCheckRepository_IndexHealthCheck(t *testing.T) {
	tests := []struct {
		name          string
		statusCode    int
		body          string
		transportErr  error
		expectError   bool
		expectedEsErr bool
	}{
		{
			name:       "Success",
			statusCode: http.StatusCreated,
			body:       `{"result":"created"}`,
		},
		{
			name:          "Error Elasticsearch Rejects Document",
			statusCode:    http.StatusBadRequest,
			body:          `{"error":{"type":"mapper_parsing_exception","reason":"failed to parse"}}`,
			expectError:   true,
			expectedEsErr: true,
		},
		{
			name:         "Error Transport",
			transportErr: errors.New("connection refused"),
			expectError:  true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client, err := newMockEsClient(tc.statusCode, tc.body, tc.transportErr)
			require.NoError(t, err)
			repo := NewHealthCheckRepository(client)

			err = repo.IndexHealthCheck(context.Background(), model.HealthCheck{
				ServerID:      "server-1",
				Status:        string(model.ServerStatusActive),
				StatusNumeric: 1,
				Timestamp:     time.Now(),
			})

			if tc.expectError {
				require.Error(t, err)
				if tc.expectedEsErr {
					var esErr *apperrors.ElasticSearchError
					require.ErrorAs(t, err, &esErr)
					assert.Equal(t, http.StatusBadRequest, esErr.StatusCode)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHealthCheckRepository_GetServerUptimePercentage(t *testing.T) {
	startTime := time.Now().Add(-24 * time.Hour)
	endTime := time.Now()

	tests := []struct {
		name        string
		statusCode  int
		body        string
		expected    float64
		expectError bool
	}{
		{
			name:       "Success",
			statusCode: http.StatusOK,
			body:       `{"aggregations":{"uptime_percentage":{"value":0.95}}}`,
			expected:   95,
		},
		{
			name:       "Success No Documents",
			statusCode: http.StatusOK,
			body:       `{"aggregations":{"uptime_percentage":{"value":null}}}`,
			expected:   0,
		},
		{
			name:        "Error Index Missing",
			statusCode:  http.StatusNotFound,
			body:        `{"error":{"type":"index_not_found_exception","reason":"no such index"}}`,
			expectError: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client, err := newMockEsClient(tc.statusCode, tc.body, nil)
			require.NoError(t, err)
			repo := NewHealthCheckRepository(client)

			uptime, err := repo.GetServerUptimePercentage(context.Background(), "server-1", startTime, endTime)

			if tc.expectError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.InDelta(t, tc.expected, uptime, 0.0001)
			}
		})
	}
}

func TestHealthCheckRepository_GetAverageUptimePercentage(t *testing.T) {
	client, err := newMockEsClient(http.StatusOK, `{"aggregations":{"uptime_percentage":{"value":0.5}}}`, nil)
	require.NoError(t, err)
	repo := NewHealthCheckRepository(client)

	uptime, err := repo.GetAverageUptimePercentage(context.Background(), time.Now().Add(-time.Hour), time.Now())

	require.NoError(t, err)
	assert.InDelta(t, 50, uptime, 0.0001)
}

type recordingRoundTripper struct {
	statuses []int
	requests []string
}

func (r *recordingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	status := r.statuses[len(r.requests)]
	r.requests = append(r.requests, req.Method+" "+req.URL.Path)
	header := http.Header{}
	header.Set("Content-Type", "application/json")
	header.Set("X-Elastic-Product", "Elasticsearch")
	return &http.Response{StatusCode: status, Body: io.NopCloser(strings.NewReader(`{}`)), Header: header}, nil
}

func TestEnsureHealthCheckIndex(t *testing.T) {
	tests := []struct {
		name             string
		statuses         []int
		expectedRequests []string
		expectError      bool
	}{
		{
			name:             "Index exists",
			statuses:         []int{http.StatusOK},
			expectedRequests: []string{"HEAD /health_checks"},
		},
		{
			name:             "Index created",
			statuses:         []int{http.StatusNotFound, http.StatusOK},
			expectedRequests: []string{"HEAD /health_checks", "PUT /health_checks"},
		},
		{
			name:             "Concurrent creation",
			statuses:         []int{http.StatusNotFound, http.StatusBadRequest},
			expectedRequests: []string{"HEAD /health_checks", "PUT /health_checks"},
		},
		{
			name:             "Create rejected",
			statuses:         []int{http.StatusNotFound, http.StatusForbidden},
			expectedRequests: []string{"HEAD /health_checks", "PUT /health_checks"},
			expectError:      true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			transport := &recordingRoundTripper{statuses: tc.statuses}
			client, err := elasticsearch.NewClient(elasticsearch.Config{Transport: transport})
			require.NoError(t, err)

			err = EnsureHealthCheckIndex(context.Background(), client)

			if tc.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.expectedRequests, transport.requests)
		})
	}
}
