package repository

import (
	apperrors "Integration_Pool_Manager/internal/pool-manager/errors"
	"Integration_Pool_Manager/internal/pool-manager/model"
	"Integration_Pool_Manager/pkg/infra"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
)

type HealthCheckRepository interface {
	IndexHealthCheck(ctx context.Context, healthCheck model.HealthCheck) error
	GetServerUptimePercentage(ctx context.Context, serverID string, startTime time.Time, endTime time.Time) (float64, error)
	GetAverageUptimePercentage(ctx context.Context, startTime time.Time, endTime time.Time) (float64, error)
}

const esHealthCheckIndexName = "health_checks"

const esHealthCheckIndexMapping = `{
  "mappings": {
    "properties": {
      "server_id": {"type": "keyword"},
      "status": {"type": "keyword"},
      "status_numeric": {"type": "integer"},
      "timestamp": {"type": "date"},
      "latency_ms": {"type": "long"},
      "attempts": {"type": "integer"},
      "interval_since_last_health_check_ms": {"type": "long"}
    }
  }
}`

// EnsureHealthCheckIndex creates the health check index so uptime aggregations see typed fields.
func EnsureHealthCheckIndex(ctx context.Context, es *elasticsearch.Client) error {
	if err := infra.EnsureIndex(ctx, es, esHealthCheckIndexName, esHealthCheckIndexMapping); err != nil {
		return fmt.Errorf("repository.EnsureHealthCheckIndex: %w", err)
	}
	return nil
}

type healthCheckRepository struct {
	es *elasticsearch.Client
}

type esErrorResponse struct {
	Error struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	}
}

type esUptimePercentageResponse struct {
	Aggregations struct {
		UptimePercentage struct {
			Value *float64 `json:"value"`
		} `json:"uptime_percentage"`
	} `json:"aggregations"`
}

func uptimeAggregation() map[string]interface{} {
	return map[string]interface{}{
		"uptime_percentage": map[string]interface{}{
			"weighted_avg": map[string]interface{}{
				"value": map[string]interface{}{
					"field": "status_numeric",
				},
				"weight": map[string]interface{}{
					"field": "interval_since_last_health_check_ms",
				},
			},
		},
	}
}

func timeRange(startTime time.Time, endTime time.Time) map[string]interface{} {
	return map[string]interface{}{
		"range": map[string]interface{}{
			"timestamp": map[string]interface{}{
				"gte": startTime,
				"lt":  endTime,
			},
		},
	}
}

func (h *healthCheckRepository) IndexHealthCheck(ctx context.Context, healthCheck model.HealthCheck) error {
	b, err := json.Marshal(healthCheck)
	if err != nil {
		return fmt.Errorf("HealthCheckRepo.IndexHealthCheck encode document: %w", err)
	}
	res, err := h.es.Index(esHealthCheckIndexName, bytes.NewReader(b), h.es.Index.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("HealthCheckRepo.IndexHealthCheck: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("HealthCheckRepo.IndexHealthCheck: %w", decodeEsError(res.StatusCode, res.Body))
	}
	return nil
}

func (h *healthCheckRepository) GetServerUptimePercentage(ctx context.Context, serverID string, startTime time.Time, endTime time.Time) (float64, error) {
	query := map[string]interface{}{
		"size": 0,
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"filter": []map[string]interface{}{
					{
						"term": map[string]interface{}{
							"server_id": serverID,
						},
					},
					timeRange(startTime, endTime),
				},
			},
		},
		"aggs": uptimeAggregation(),
	}
	res, err := h.searchUptime(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("HealthCheckRepo.GetServerUptimePercentage: %w", err)
	}
	return res, nil
}

func (h *healthCheckRepository) GetAverageUptimePercentage(ctx context.Context, startTime time.Time, endTime time.Time) (float64, error) {
	query := map[string]interface{}{
		"size":  0,
		"query": timeRange(startTime, endTime),
		"aggs":  uptimeAggregation(),
	}
	res, err := h.searchUptime(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("HealthCheckRepo.GetAverageUptimePercentage: %w", err)
	}
	return res, nil
}

func (h *healthCheckRepository) searchUptime(ctx context.Context, query map[string]interface{}) (float64, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return 0, fmt.Errorf("encode query: %w", err)
	}
	res, err := h.es.Search(
		h.es.Search.WithContext(ctx),
		h.es.Search.WithIndex(esHealthCheckIndexName),
		h.es.Search.WithBody(&buf))
	if err != nil {
		return 0, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return 0, decodeEsError(res.StatusCode, res.Body)
	}

	var uptimeResponse esUptimePercentageResponse
	if err = json.NewDecoder(res.Body).Decode(&uptimeResponse); err != nil {
		return 0, fmt.Errorf("decode response: %w", err)
	}
	// weighted_avg returns null when no document matched
	if uptimeResponse.Aggregations.UptimePercentage.Value == nil {
		return 0, nil
	}
	return *uptimeResponse.Aggregations.UptimePercentage.Value * 100, nil
}

func decodeEsError(statusCode int, body io.Reader) error {
	var e esErrorResponse
	if err := json.NewDecoder(body).Decode(&e); err != nil {
		return fmt.Errorf("decode err response: %w", err)
	}
	return apperrors.NewElasticSearchError(statusCode, e.Error.Type, e.Error.Reason)
}

func NewHealthCheckRepository(esClient *elasticsearch.Client) HealthCheckRepository {
	return &healthCheckRepository{
		es: esClient,
	}
}
