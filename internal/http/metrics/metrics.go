package metrics

import (
	"sync"
	"time"
)

// Collector keeps in-process request and error counters, served at /metrics.
type Collector struct {
	mu           sync.Mutex
	requests     map[string]int64
	statuses     map[int]int64
	errors       map[string]int64
	totalLatency time.Duration
	count        int64
}

func NewCollector() *Collector {
	return &Collector{
		requests: make(map[string]int64),
		statuses: make(map[int]int64),
		errors:   make(map[string]int64),
	}
}

func (c *Collector) ObserveRequest(method, path string, status int, duration time.Duration) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requests[method+" "+path]++
	c.statuses[status]++
	c.totalLatency += duration
	c.count++
}

func (c *Collector) ObserveError(code string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errors[code]++
}

type Snapshot struct {
	Requests     map[string]int64 `json:"requests"`
	Statuses     map[int]int64    `json:"statuses"`
	Errors       map[string]int64 `json:"errors"`
	AvgLatencyMS float64          `json:"avgLatencyMs"`
}

func (c *Collector) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap := Snapshot{
		Requests: make(map[string]int64, len(c.requests)),
		Statuses: make(map[int]int64, len(c.statuses)),
		Errors:   make(map[string]int64, len(c.errors)),
	}
	for k, v := range c.requests {
		snap.Requests[k] = v
	}
	for k, v := range c.statuses {
		snap.Statuses[k] = v
	}
	for k, v := range c.errors {
		snap.Errors[k] = v
	}
	if c.count > 0 {
		snap.AvgLatencyMS = float64(c.totalLatency.Milliseconds()) / float64(c.count)
	}
	return snap
}
