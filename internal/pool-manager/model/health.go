package model

import "time"

type HealthScore struct {
	ServerID            string       `json:"serverId"`
	Score               float64      `json:"score"`
	AverageLatencyMs    float64      `json:"averageLatencyMs"`
	LatencyP95Ms        float64      `json:"latencyP95Ms"`
	ErrorRate           float64      `json:"errorRate"`
	Uptime              float64      `json:"uptime"`
	ConsecutiveFailures int          `json:"consecutiveFailures"`
	SampleCount         int          `json:"sampleCount"`
	Status              ServerStatus `json:"status"`
	Recommendation      string       `json:"recommendation"`
	LastUpdated         time.Time    `json:"lastUpdated"`
}

// ProbeResult is the outcome of a single health probe.
type ProbeResult struct {
	ServerID   string        `json:"serverId"`
	Success    bool          `json:"success"`
	StatusCode int           `json:"statusCode,omitempty"`
	Latency    time.Duration `json:"-"`
	LatencyMs  int64         `json:"latencyMs"`
	Attempts   int           `json:"attempts"`
	Error      string        `json:"error,omitempty"`
	Timestamp  time.Time     `json:"timestamp"`
}

// HealthCheck is the document indexed in Elasticsearch for every probe.
type HealthCheck struct {
	ServerID                       string    `json:"server_id"`
	Status                         string    `json:"status"`
	StatusNumeric                  int       `json:"status_numeric"` // 1 for a successful probe, 0 otherwise
	Timestamp                      time.Time `json:"timestamp"`
	LatencyMs                      int64     `json:"latency_ms"`
	Attempts                       int       `json:"attempts"`
	IntervalSinceLastHealthCheckMs int64     `json:"interval_since_last_health_check_ms"`
}

type Overview struct {
	TotalServers           int                   `json:"totalServers"`
	TotalPools             int                   `json:"totalPools"`
	HealthDistribution     map[ServerStatus]int  `json:"healthDistribution"`
	AverageHealthScore     float64               `json:"averageHealthScore"`
	ActiveAlertsBySeverity map[AlertSeverity]int `json:"activeAlertsBySeverity"`
}
