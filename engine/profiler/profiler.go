// Package profiler logs render and tick rates together with Go runtime memory statistics.
package profiler

import (
	"log"
	"runtime"
	"sync"
	"time"
)

// Stats is one reporting window's worth of measurements.
type Stats struct {
	// FPS is render frames per second.
	FPS float64
	// TPS is engine ticks per second.
	TPS float64
	// HeapMB is live heap memory.
	HeapMB float64
	// AllocRateMB is heap allocation churn in MB/s.
	AllocRateMB float64
	// SysMB is total memory obtained from the OS.
	SysMB float64
	// GCCount is the cumulative number of completed GC cycles.
	GCCount uint32
	// LastPauseUs and MaxPauseUs are the latest and worst GC pauses in the window.
	LastPauseUs uint64
	MaxPauseUs  uint64
}

// Profiler counts frames and ticks and reports at a fixed interval. Frame and Tick may be called
// from different goroutines.
type Profiler struct {
	mu *sync.Mutex

	frameCount     int
	tickCount      int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64

	now    func() time.Time
	report func(Stats)
}

// NewProfiler creates a new Profiler. The update interval defaults to 1 second and reports are
// written to the standard logger.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		mu:             &sync.Mutex{},
		updateInterval: time.Second,
		now:            time.Now,
		report:         logStats,
	}
	for _, opt := range options {
		opt(p)
	}
	p.lastTime = p.now()
	return p
}

// Tick records one engine tick. Ticks are reported but never trigger a report themselves.
func (p *Profiler) Tick() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tickCount++
}

// Frame should be called once per rendered frame. Reports statistics when the update interval has elapsed.
//
// Returns:
//   - bool: true if stats were reported this frame, false otherwise
func (p *Profiler) Frame() bool {
	p.mu.Lock()
	p.frameCount++
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		p.mu.Unlock()
		return false
	}

	stats := p.collect(elapsed)
	p.frameCount = 0
	p.tickCount = 0
	p.lastTime = currentTime
	report := p.report
	p.mu.Unlock()

	report(stats)
	return true
}

// collect reads runtime memory statistics for the window that just ended. Caller holds mu.
func (p *Profiler) collect(elapsed time.Duration) Stats {
	seconds := elapsed.Seconds()
	runtime.ReadMemStats(&p.memStats)

	stats := Stats{
		FPS:     float64(p.frameCount) / seconds,
		TPS:     float64(p.tickCount) / seconds,
		HeapMB:  float64(p.memStats.Alloc) / 1024 / 1024,
		SysMB:   float64(p.memStats.Sys) / 1024 / 1024,
		GCCount: p.memStats.NumGC,
	}

	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	stats.AllocRateMB = float64(allocDelta) / 1024 / 1024 / seconds

	if gc := stats.GCCount; gc > 0 {
		// PauseNs is a circular buffer of the last 256 GC pauses.
		stats.LastPauseUs = p.memStats.PauseNs[(gc-1)%256] / 1000

		start := p.lastGCCount
		if gc-start > 256 {
			start = gc - 256
		}
		for i := start; i < gc; i++ {
			if pause := p.memStats.PauseNs[i%256] / 1000; pause > stats.MaxPauseUs {
				stats.MaxPauseUs = pause
			}
		}
	}

	p.lastGCCount = stats.GCCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return stats
}

func logStats(s Stats) {
	log.Printf("[Profiler] FPS: %.2f | TPS: %.2f | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
		s.FPS, s.TPS, s.HeapMB, s.AllocRateMB, s.GCCount, s.LastPauseUs, s.MaxPauseUs, s.SysMB)
}
