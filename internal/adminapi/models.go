package adminapi

import "time"

// StatusResponse is the /health payload.
type StatusResponse struct {
	Status string `json:"status"`
}

// MemoryStats mirrors gopsutil's virtual memory sample, trimmed to the
// fields this read-only surface reports.
type MemoryStats struct {
	TotalMB     float64 `json:"total_mb"`
	UsedMB      float64 `json:"used_mb"`
	UsedPercent float64 `json:"used_percent"`
}

// CPUStats is a point-in-time CPU utilization sample.
type CPUStats struct {
	NumCPU      int     `json:"num_cpu"`
	UsedPercent float64 `json:"used_percent"`
}

// ResolverStats mirrors resolver.Counters plus the current cache size.
type ResolverStats struct {
	Queries   uint64 `json:"queries"`
	CacheHits uint64 `json:"cache_hits"`
	ZoneHits  uint64 `json:"zone_hits"`
	Upstream  uint64 `json:"upstream_forwards"`
	Errors    uint64 `json:"errors"`
	CacheSize int    `json:"cache_size"`
}

// StatsResponse is the /api/v1/stats payload.
type StatsResponse struct {
	UptimeSeconds int64         `json:"uptime_seconds"`
	StartTime     time.Time     `json:"start_time"`
	InstanceID    string        `json:"instance_id"`
	StartCount    int64         `json:"start_count"`
	CPU           CPUStats      `json:"cpu"`
	Memory        MemoryStats   `json:"memory"`
	Resolver      ResolverStats `json:"resolver"`
}
