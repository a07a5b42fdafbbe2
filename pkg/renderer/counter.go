package renderer

import (
	"sync/atomic"
	"time"

	"github.com/mhollis/tracepath/pkg/core"
)

// ProgressCounter tracks rows completed across three independent channels
// (main, albedo, normal), each counting toward the same total. Workers
// increment their channel atomically per completed row.
type ProgressCounter struct {
	main, albedo, normal int64
	total                int64
}

// NewProgressCounter creates a counter whose channels each count up to
// total (imageHeight * workerCount).
func NewProgressCounter(total int64) *ProgressCounter {
	return &ProgressCounter{total: total}
}

// IncrementMain records one completed row of the main pass.
func (p *ProgressCounter) IncrementMain() { atomic.AddInt64(&p.main, 1) }

// IncrementAlbedo records one completed row of the albedo pass.
func (p *ProgressCounter) IncrementAlbedo() { atomic.AddInt64(&p.albedo, 1) }

// IncrementNormal records one completed row of the normal pass.
func (p *ProgressCounter) IncrementNormal() { atomic.AddInt64(&p.normal, 1) }

// Done reports whether all three channels have reached their total.
func (p *ProgressCounter) Done() bool {
	return atomic.LoadInt64(&p.main) >= p.total &&
		atomic.LoadInt64(&p.albedo) >= p.total &&
		atomic.LoadInt64(&p.normal) >= p.total
}

// Snapshot returns the current (main, albedo, normal) row counts.
func (p *ProgressCounter) Snapshot() (main, albedo, normal int64) {
	return atomic.LoadInt64(&p.main), atomic.LoadInt64(&p.albedo), atomic.LoadInt64(&p.normal)
}

// RunReporter polls the counter every 500ms and logs combined progress
// until all three channels reach their totals. It is meant to run on its
// own goroutine, one per render.
func RunReporter(counter *ProgressCounter, logger core.Logger) {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for range ticker.C {
		main, albedo, normal := counter.Snapshot()
		logger.Printf("render progress: main=%d/%d albedo=%d/%d normal=%d/%d",
			main, counter.total, albedo, counter.total, normal, counter.total)
		if counter.Done() {
			return
		}
	}
}
