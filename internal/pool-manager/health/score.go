package health

import (
	"Integration_Pool_Manager/internal/pool-manager/model"
	"math"
	"sort"
	"time"
)

type ScoreConfig struct {
	WindowSize       int
	Decay            float64
	UptimeWeight     float64
	LatencyWeight    float64
	ErrorWeight      float64
	ReferenceLatency time.Duration
	ActiveScore      float64
	DegradedScore    float64
}

type sample struct {
	success bool
	latency time.Duration
	probe   bool
	at      time.Time
}

// window keeps the newest samples, oldest first.
type window struct {
	size    int
	samples []sample
}

func newWindow(size int) *window {
	if size <= 0 {
		size = 1
	}
	return &window{size: size, samples: make([]sample, 0, size)}
}

func (w *window) add(s sample) {
	if len(w.samples) == w.size {
		copy(w.samples, w.samples[1:])
		w.samples = w.samples[:w.size-1]
	}
	w.samples = append(w.samples, s)
}

type signals struct {
	score            float64
	uptime           float64
	errorRate        float64
	averageLatencyMs float64
	latencyP95Ms     float64
}

// effectiveLatency charges a failed sample at least the reference latency so a failure never improves latency.
func effectiveLatency(s sample, ref time.Duration) time.Duration {
	if !s.success && s.latency < ref {
		return ref
	}
	return s.latency
}

// computeSignals derives the score from the window. The newest sample has weight 1, each older one decay^age.
func computeSignals(samples []sample, cfg ScoreConfig) signals {
	if len(samples) == 0 {
		return signals{}
	}

	var weightSum, latencySum float64
	var probeWeight, probeSuccess float64
	var dispatchWeight, dispatchFailure float64
	var allFailure float64
	latencies := make([]float64, 0, len(samples))
	for i, s := range samples {
		age := len(samples) - 1 - i
		w := math.Pow(cfg.Decay, float64(age))
		lat := effectiveLatency(s, cfg.ReferenceLatency)
		weightSum += w
		latencySum += w * float64(lat.Milliseconds())
		latencies = append(latencies, float64(lat.Milliseconds()))
		if !s.success {
			allFailure += w
		}
		if s.probe {
			probeWeight += w
			if s.success {
				probeSuccess += w
			}
		} else {
			dispatchWeight += w
			if !s.success {
				dispatchFailure += w
			}
		}
	}

	uptime := 1 - allFailure/weightSum
	if probeWeight > 0 {
		uptime = probeSuccess / probeWeight
	}
	errorRate := allFailure / weightSum
	if dispatchWeight > 0 {
		errorRate = dispatchFailure / dispatchWeight
	}
	avgLatency := latencySum / weightSum

	ref := float64(cfg.ReferenceLatency.Milliseconds())
	latencyScore := 1.0
	if ref+avgLatency > 0 {
		latencyScore = ref / (ref + avgLatency)
	}

	score := 100 * (cfg.UptimeWeight*uptime + cfg.LatencyWeight*latencyScore + cfg.ErrorWeight*(1-errorRate))
	score = math.Max(0, math.Min(100, score))

	return signals{
		score:            math.Round(score*100) / 100,
		uptime:           uptime,
		errorRate:        errorRate,
		averageLatencyMs: avgLatency,
		latencyP95Ms:     percentile(latencies, 0.95),
	}
}

func percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	idx := int(math.Ceil(p*float64(len(sorted)))) - 1
	if idx < 0 {
		idx = 0
	}
	return sorted[idx]
}

func statusForScore(score float64, cfg ScoreConfig) model.ServerStatus {
	switch {
	case score >= cfg.ActiveScore:
		return model.ServerStatusActive
	case score >= cfg.DegradedScore:
		return model.ServerStatusDegraded
	}
	return model.ServerStatusUnhealthy
}

func recommendation(status model.ServerStatus) string {
	switch status {
	case model.ServerStatusActive:
		return "Server is healthy"
	case model.ServerStatusDegraded:
		return "Performance is degraded, keep watching latency and error rate"
	case model.ServerStatusUnhealthy:
		return "Server is unhealthy and excluded from strong consistency routing, investigate or remove it"
	case model.ServerStatusMaintenance:
		return "Server is in maintenance"
	}
	return "Waiting for the first successful health check"
}
