package metrics

import (
	"Integration_Pool_Manager/internal/pool-manager/model"
	"sync"
	"time"
)

type PoolStatisticsSource interface {
	AllPoolStatistics() []model.PoolStatistics
}

// Collector periodically copies pool statistics into gauges.
type Collector struct {
	source   PoolStatisticsSource
	metrics  *Metrics
	interval time.Duration
	stopCh   chan struct{}
	once     sync.Once
}

func NewCollector(source PoolStatisticsSource, metrics *Metrics, interval time.Duration) *Collector {
	return &Collector{
		source:   source,
		metrics:  metrics,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

func (c *Collector) Start() {
	ticker := time.NewTicker(c.interval)
	go func() {
		c.collect()
		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.stopCh:
				ticker.Stop()
				return
			}
		}
	}()
}

func (c *Collector) Stop() {
	c.once.Do(func() {
		close(c.stopCh)
	})
}

func (c *Collector) collect() {
	if c.metrics == nil {
		return
	}
	c.metrics.PoolActiveServers.Reset()
	c.metrics.PoolLoad.Reset()
	for _, s := range c.source.AllPoolStatistics() {
		c.metrics.PoolActiveServers.WithLabelValues(s.Name).Set(float64(s.ActiveCount))
		c.metrics.PoolLoad.WithLabelValues(s.Name).Set(float64(s.CurrentLoad))
	}
}
