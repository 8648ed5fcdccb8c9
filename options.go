package scancontext

import (
	"log/slog"

	"github.com/saurabh1002/scancontext/descriptor"
	"github.com/saurabh1002/scancontext/scdistance"
)

type options struct {
	rings       int
	sectors     int
	maxRadius   float64
	lidarHeight float64

	numExcludeRecent      int
	numCandidatesFromTree int
	searchRatio           float64
	scDistThreshold       float64
	treeMakingPeriod      int

	logger           *Logger
	metricsCollector MetricsCollector
}

// Option configures a Detector constructed with New.
type Option func(*options)

// WithGridSize sets the descriptor's ring and sector counts (R and S in the
// spec). Defaults: 20 rings, 60 sectors.
func WithGridSize(rings, sectors int) Option {
	return func(o *options) {
		o.rings = rings
		o.sectors = sectors
	}
}

// WithMaxRadius sets the planar range beyond which a point is dropped when
// building a descriptor. Default: 80 meters.
func WithMaxRadius(meters float64) Option {
	return func(o *options) {
		o.maxRadius = meters
	}
}

// WithLidarHeight sets the vertical offset added to every point's Z before
// binning. Default: 2.0 meters.
func WithLidarHeight(meters float64) Option {
	return func(o *options) {
		o.lidarHeight = meters
	}
}

// WithNumExcludeRecent sets the size of the temporal exclusion window: the
// number of most-recently ingested records a query can never match.
// Default: 50.
func WithNumExcludeRecent(n int) Option {
	return func(o *options) {
		o.numExcludeRecent = n
	}
}

// WithNumCandidatesFromTree sets K, the upper bound on nearest-ring-key
// candidates retrieved per query. Default: 10.
func WithNumCandidatesFromTree(k int) Option {
	return func(o *options) {
		o.numCandidatesFromTree = k
	}
}

// WithSearchRatio sets the fraction of sectors searched around the coarse
// yaw estimate when refining the full scan-context distance. Default: 0.1.
func WithSearchRatio(ratio float64) Option {
	return func(o *options) {
		o.searchRatio = ratio
	}
}

// WithDistanceThreshold sets the maximum scan-context distance a candidate
// may have and still count as a loop closure. Default: 0.13.
func WithDistanceThreshold(threshold float64) Option {
	return func(o *options) {
		o.scDistThreshold = threshold
	}
}

// WithTreeMakingPeriod sets how many ingests elapse between k-d tree
// rebuilds. Default: 50.
func WithTreeMakingPeriod(n int) Option {
	return func(o *options) {
		o.treeMakingPeriod = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// ingest/detect/rebuild operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := scancontext.NewJSONLogger(slog.LevelInfo)
//	det := scancontext.New(scancontext.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		rings:                 descriptor.DefaultParams.Rings,
		sectors:               descriptor.DefaultParams.Sectors,
		maxRadius:             descriptor.DefaultParams.MaxRadius,
		lidarHeight:           descriptor.DefaultParams.LidarHeight,
		numExcludeRecent:      50,
		numCandidatesFromTree: 10,
		searchRatio:           scdistance.DefaultSearchRatio,
		scDistThreshold:       0.13,
		treeMakingPeriod:      50,
		metricsCollector:      NoopMetricsCollector{},
		logger:                NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}

func (o options) descriptorParams() descriptor.Params {
	return descriptor.Params{
		Rings:       o.rings,
		Sectors:     o.sectors,
		MaxRadius:   o.maxRadius,
		LidarHeight: o.lidarHeight,
	}
}
