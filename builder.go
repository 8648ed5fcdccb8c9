// This file implements a fluent builder API for constructing Detectors.
// The builder is immutable: each method returns a new builder with the
// updated configuration, so a partially configured builder can be reused
// and extended safely from multiple call sites.
package scancontext

import "log/slog"

// NewBuilder starts a new DetectorBuilder with the original paper's
// defaults (see New).
//
// Example:
//
//	det := scancontext.NewBuilder().
//	    GridSize(20, 60).
//	    DistanceThreshold(0.13).
//	    Build()
func NewBuilder() DetectorBuilder {
	return DetectorBuilder{
		opts: applyOptions(nil),
	}
}

// DetectorBuilder is an immutable fluent builder for Detector. Each method
// returns a new builder with the updated configuration.
type DetectorBuilder struct {
	opts options
}

// GridSize sets the descriptor's ring and sector counts.
func (b DetectorBuilder) GridSize(rings, sectors int) DetectorBuilder {
	b.opts.rings = rings
	b.opts.sectors = sectors
	return b
}

// MaxRadius sets the planar range beyond which a point is dropped.
func (b DetectorBuilder) MaxRadius(meters float64) DetectorBuilder {
	b.opts.maxRadius = meters
	return b
}

// LidarHeight sets the vertical offset added to every point's Z before
// binning.
func (b DetectorBuilder) LidarHeight(meters float64) DetectorBuilder {
	b.opts.lidarHeight = meters
	return b
}

// NumExcludeRecent sets the size of the temporal exclusion window.
func (b DetectorBuilder) NumExcludeRecent(n int) DetectorBuilder {
	b.opts.numExcludeRecent = n
	return b
}

// NumCandidatesFromTree sets K, the upper bound on nearest-ring-key
// candidates retrieved per query.
func (b DetectorBuilder) NumCandidatesFromTree(k int) DetectorBuilder {
	b.opts.numCandidatesFromTree = k
	return b
}

// SearchRatio sets the fraction of sectors searched around the coarse yaw
// estimate when refining the full scan-context distance.
func (b DetectorBuilder) SearchRatio(ratio float64) DetectorBuilder {
	b.opts.searchRatio = ratio
	return b
}

// DistanceThreshold sets the maximum scan-context distance a candidate may
// have and still count as a loop closure.
func (b DetectorBuilder) DistanceThreshold(threshold float64) DetectorBuilder {
	b.opts.scDistThreshold = threshold
	return b
}

// TreeMakingPeriod sets how many ingests elapse between k-d tree rebuilds.
func (b DetectorBuilder) TreeMakingPeriod(n int) DetectorBuilder {
	b.opts.treeMakingPeriod = n
	return b
}

// Logger configures structured logging for operations.
func (b DetectorBuilder) Logger(logger *Logger) DetectorBuilder {
	b.opts.logger = logger
	return b
}

// LogLevel creates a text logger with the specified level and sets it.
func (b DetectorBuilder) LogLevel(level slog.Level) DetectorBuilder {
	b.opts.logger = NewTextLogger(level)
	return b
}

// Metrics configures a metrics collector for monitoring operations.
func (b DetectorBuilder) Metrics(mc MetricsCollector) DetectorBuilder {
	b.opts.metricsCollector = mc
	return b
}

// Build creates the Detector.
func (b DetectorBuilder) Build() *Detector {
	return &Detector{
		opts:      b.opts,
		ringIndex: newRingKeyIndex(b.opts),
	}
}
