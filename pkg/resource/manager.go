// pkg/resource/manager.go
package resource

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/opd-ai/go-starfighter/pkg/config"
	"github.com/opd-ai/go-starfighter/pkg/logging"
)

// frameWindow is how many recent frames contribute to the FPS estimate.
const frameWindow = 120

// Monitor tracks runtime resource usage and frame timing so the game
// can surface an FPS readout and warn before memory or goroutine
// exhaustion.
type Monitor struct {
	maxMemoryMB     int64
	maxGoroutines   int64
	shutdownTimeout time.Duration
	checkInterval   time.Duration

	// Atomic counters for thread-safe access
	memoryUsageMB  int64
	goroutineCount int64

	// Frame timing ring, guarded by frameMu
	frameMu     sync.Mutex
	frameTimes  [frameWindow]float64
	frameIndex  int
	frameFilled int

	// Control channels and state
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}
	mu      sync.RWMutex
	running bool
	logger  *logging.Logger

	// Guarded by mu; written by the monitoring goroutine
	lastMemoryCheck time.Time
}

// NewMonitor creates a monitor with limits from environment configuration.
func NewMonitor(config *config.EnvironmentConfig) *Monitor {
	ctx, cancel := context.WithCancel(context.Background())

	return &Monitor{
		maxMemoryMB:     config.MaxMemoryMB,
		maxGoroutines:   int64(config.MaxGoroutines),
		shutdownTimeout: config.ShutdownTimeout,
		checkInterval:   config.ResourceCheckInterval,
		ctx:             ctx,
		cancel:          cancel,
		done:            make(chan struct{}),
		logger:          logging.NewLogger(),
		lastMemoryCheck: time.Now(),
	}
}

// Start begins the periodic resource checks.
func (m *Monitor) Start() error {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return fmt.Errorf("resource monitor already running")
	}
	m.running = true
	m.mu.Unlock()

	go m.monitoringLoop()

	m.logger.Info(m.ctx, "Resource monitor started",
		"max_memory_mb", m.maxMemoryMB,
		"max_goroutines", m.maxGoroutines,
		"check_interval", m.checkInterval,
	)

	return nil
}

// RecordFrame feeds one frame's duration into the FPS window.
func (m *Monitor) RecordFrame(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}

	m.frameMu.Lock()
	m.frameTimes[m.frameIndex] = deltaTime
	m.frameIndex = (m.frameIndex + 1) % frameWindow
	if m.frameFilled < frameWindow {
		m.frameFilled++
	}
	m.frameMu.Unlock()
}

// FPS returns the average frame rate over the recent window, or zero
// before any frames are recorded.
func (m *Monitor) FPS() float64 {
	m.frameMu.Lock()
	defer m.frameMu.Unlock()

	if m.frameFilled == 0 {
		return 0
	}

	var total float64
	for i := 0; i < m.frameFilled; i++ {
		total += m.frameTimes[i]
	}
	if total <= 0 {
		return 0
	}
	return float64(m.frameFilled) / total
}

// CheckMemoryUsage samples heap usage and compares it against the limit.
func (m *Monitor) CheckMemoryUsage() error {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	currentMB := int64(stats.Alloc / 1024 / 1024)
	atomic.StoreInt64(&m.memoryUsageMB, currentMB)
	m.mu.Lock()
	m.lastMemoryCheck = time.Now()
	m.mu.Unlock()

	if currentMB > m.maxMemoryMB {
		return fmt.Errorf("memory usage %dMB exceeds limit %dMB", currentMB, m.maxMemoryMB)
	}

	return nil
}

// CheckGoroutines samples the goroutine count and compares it against
// the limit.
func (m *Monitor) CheckGoroutines() error {
	current := int64(runtime.NumGoroutine())
	atomic.StoreInt64(&m.goroutineCount, current)

	if current > m.maxGoroutines {
		return fmt.Errorf("goroutine count %d exceeds limit %d", current, m.maxGoroutines)
	}

	return nil
}

// GetMemoryUsage returns the last sampled heap usage in MB.
func (m *Monitor) GetMemoryUsage() int64 {
	return atomic.LoadInt64(&m.memoryUsageMB)
}

// GetGoroutineCount returns the last sampled goroutine count.
func (m *Monitor) GetGoroutineCount() int64 {
	return atomic.LoadInt64(&m.goroutineCount)
}

// Stats is a point-in-time snapshot of resource usage.
type Stats struct {
	FPS             float64   `json:"fps"`
	MemoryUsageMB   int64     `json:"memory_usage_mb"`
	MaxMemoryMB     int64     `json:"max_memory_mb"`
	GoroutineCount  int64     `json:"goroutine_count"`
	MaxGoroutines   int64     `json:"max_goroutines"`
	LastMemoryCheck time.Time `json:"last_memory_check"`
}

// Snapshot returns current resource usage statistics.
func (m *Monitor) Snapshot() Stats {
	m.mu.RLock()
	lastCheck := m.lastMemoryCheck
	m.mu.RUnlock()

	return Stats{
		FPS:             m.FPS(),
		MemoryUsageMB:   m.GetMemoryUsage(),
		MaxMemoryMB:     m.maxMemoryMB,
		GoroutineCount:  m.GetGoroutineCount(),
		MaxGoroutines:   m.maxGoroutines,
		LastMemoryCheck: lastCheck,
	}
}

// Stop halts the monitoring loop, waiting up to the shutdown timeout.
func (m *Monitor) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	m.running = false
	m.mu.Unlock()

	m.cancel()

	select {
	case <-m.done:
	case <-time.After(m.shutdownTimeout):
		m.logger.Warn(m.ctx, "Resource monitoring loop did not stop gracefully")
	}
}

// monitoringLoop runs periodic resource checks.
func (m *Monitor) monitoringLoop() {
	defer close(m.done)

	ticker := time.NewTicker(m.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.performResourceChecks()
		case <-m.ctx.Done():
			m.logger.Info(m.ctx, "Resource monitoring loop stopping")
			return
		}
	}
}

// performResourceChecks executes one round of usage checks.
func (m *Monitor) performResourceChecks() {
	if err := m.CheckMemoryUsage(); err != nil {
		m.logger.Error(m.ctx, "Memory limit exceeded", err,
			"current_mb", m.GetMemoryUsage(),
			"limit_mb", m.maxMemoryMB,
		)
	}

	if err := m.CheckGoroutines(); err != nil {
		m.logger.Error(m.ctx, "Goroutine limit exceeded", err,
			"current", m.GetGoroutineCount(),
			"limit", m.maxGoroutines,
		)
	}

	m.logger.Debug(m.ctx, "Resource usage check",
		"fps", m.FPS(),
		"memory_mb", m.GetMemoryUsage(),
		"max_memory_mb", m.maxMemoryMB,
		"goroutines", m.GetGoroutineCount(),
		"max_goroutines", m.maxGoroutines,
	)
}
