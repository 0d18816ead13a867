package adminapi

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/tugunchinov/cacheresolver/internal/audit"
	"github.com/tugunchinov/cacheresolver/internal/resolver"
)

type handler struct {
	resolver  *resolver.Resolver
	store     *audit.Store
	startTime time.Time
}

// health godoc
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /health [get]
func (h *handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// stats godoc
// @Summary Resolver and process statistics
// @Tags system
// @Produce json
// @Success 200 {object} StatsResponse
// @Router /stats [get]
func (h *handler) stats(c *gin.Context) {
	uptime := time.Since(h.startTime)

	var memStats MemoryStats
	if vm, err := mem.VirtualMemory(); err == nil {
		memStats = MemoryStats{
			TotalMB:     float64(vm.Total) / 1024 / 1024,
			UsedMB:      float64(vm.Used) / 1024 / 1024,
			UsedPercent: vm.UsedPercent,
		}
	}

	cpuStats := CPUStats{NumCPU: runtime.NumCPU()}
	if pct, err := cpu.Percent(200*time.Millisecond, false); err == nil && len(pct) > 0 {
		cpuStats.UsedPercent = pct[0]
	}

	counters := h.resolver.Counters()

	var instanceID string
	var startCount int64
	if h.store != nil {
		instanceID = h.store.InstanceID()
		startCount, _ = h.store.StartCount()
	}

	c.JSON(http.StatusOK, StatsResponse{
		UptimeSeconds: int64(uptime.Seconds()),
		StartTime:     h.startTime,
		InstanceID:    instanceID,
		StartCount:    startCount,
		CPU:           cpuStats,
		Memory:        memStats,
		Resolver: ResolverStats{
			Queries:   counters.Queries,
			CacheHits: counters.CacheHits,
			ZoneHits:  counters.ZoneHits,
			Upstream:  counters.Upstream,
			Errors:    counters.Errors,
			CacheSize: h.resolver.CacheSize(),
		},
	})
}
