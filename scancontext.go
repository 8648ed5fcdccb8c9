package scancontext

import (
	"context"
	"time"

	"github.com/saurabh1002/scancontext/descriptor"
	"github.com/saurabh1002/scancontext/geometry"
	"github.com/saurabh1002/scancontext/index"
	"github.com/saurabh1002/scancontext/scdistance"
	"gonum.org/v1/gonum/mat"
)

// record is one stored descriptor (§3): a scan context plus its derived
// keys and an optional caller-supplied timestamp, identified by its
// position in Detector.records (the node index).
type record struct {
	sc        *mat.Dense
	rk        []float64
	vk        []float64
	timestamp *time.Time
}

// Detector owns the descriptor database (full history, ring-key search
// view, and k-d tree) and orchestrates ingest and loop-closure detection
// (§4.E). It is single-threaded and synchronous: callers must serialize
// their own calls into a single Detector, and independent Detectors never
// share state.
type Detector struct {
	opts options

	records        []record
	ringIndex      *index.RingKeyIndex
	rebuildCounter int
}

// New creates a Detector with the given options. With no options it uses
// the original paper's defaults: 20 rings, 60 sectors, 80m max radius, 2m
// lidar height, a 50-record exclusion window, 10 candidates per query, a
// 0.1 search ratio, a 0.13 distance threshold, and a 50-ingest rebuild
// period.
func New(optFns ...Option) *Detector {
	o := applyOptions(optFns)
	return &Detector{
		opts:      o,
		ringIndex: newRingKeyIndex(o),
	}
}

func newRingKeyIndex(o options) *index.RingKeyIndex {
	return index.New(o.numExcludeRecent, o.numCandidatesFromTree)
}

// Ingest builds a scan-context descriptor from points and appends it to
// the descriptor database (§4.E "makeAndSave"). timestamp is an optional
// caller-supplied value attached to the record, not interpreted by the
// detector, surfaced back by Timestamp.
func (d *Detector) Ingest(points []geometry.Point, timestamp ...time.Time) {
	start := time.Now()

	sc := descriptor.Build(points, d.opts.descriptorParams())
	rk := descriptor.RingKey(sc)
	vk := descriptor.SectorKey(sc)

	rec := record{sc: sc, rk: rk, vk: vk}
	if len(timestamp) > 0 {
		t := timestamp[0]
		rec.timestamp = &t
	}

	d.records = append(d.records, rec)
	d.ringIndex.Insert(rk)
	d.rebuildCounter++

	d.opts.logger.LogIngest(context.Background(), len(d.records)-1, len(points))
	d.opts.metricsCollector.RecordIngest(time.Since(start), len(points))
}

// Result is the outcome of a Detect call.
type Result struct {
	// QueryIndex is the node index of the record evaluated (always the most
	// recently ingested one).
	QueryIndex int
	// MatchIndex is the node index of the matched record, or -1 if no loop
	// closure was found.
	MatchIndex int
	// Distance is the scan-context distance to the best-scoring candidate.
	// It is reported even when no loop closure is declared.
	Distance float64
	// YawDeg is the estimated relative yaw in degrees between the query and
	// the best-scoring candidate.
	YawDeg float64
}

// Matched reports whether Result represents a loop closure.
func (r Result) Matched() bool {
	return r.MatchIndex >= 0
}

// Detect evaluates the most recently ingested record against the
// descriptor database and decides whether it revisits a previously
// observed place (§4.E "detectLoopClosureID").
func (d *Detector) Detect() Result {
	start := time.Now()

	queryIndex := len(d.records) - 1

	if len(d.records) < d.opts.numExcludeRecent+1 {
		result := Result{QueryIndex: queryIndex, MatchIndex: -1}
		d.opts.logger.LogQuery(context.Background(), queryIndex, -1, 0, 0)
		d.opts.metricsCollector.RecordQuery(time.Since(start), false)
		return result
	}

	if d.rebuildCounter >= d.opts.treeMakingPeriod {
		d.rebuild()
	}

	query := d.records[queryIndex]
	candidates := d.ringIndex.Query(query.rk)

	bestDist := 1.0
	bestIndex := -1
	bestShift := 0
	for _, c := range candidates {
		candidate := d.records[c.Index]
		dist, shift := scdistance.Distance(query.sc, candidate.sc, query.vk, candidate.vk, d.opts.searchRatio)
		if bestIndex == -1 || dist < bestDist || (dist == bestDist && c.Index < bestIndex) {
			bestDist = dist
			bestIndex = c.Index
			bestShift = shift
		}
	}

	yawDeg := float64(bestShift) * (360.0 / float64(d.opts.sectors))

	matchIndex := -1
	if bestIndex >= 0 && bestDist < d.opts.scDistThreshold {
		matchIndex = bestIndex
	}

	result := Result{QueryIndex: queryIndex, MatchIndex: matchIndex, Distance: bestDist, YawDeg: yawDeg}

	d.opts.logger.LogQuery(context.Background(), queryIndex, matchIndex, bestDist, yawDeg)
	d.opts.metricsCollector.RecordQuery(time.Since(start), result.Matched())
	return result
}

func (d *Detector) rebuild() {
	start := time.Now()
	d.ringIndex.Rebuild()
	d.rebuildCounter = 0

	searchViewSize := len(d.records) - d.opts.numExcludeRecent
	if searchViewSize < 0 {
		searchViewSize = 0
	}
	d.opts.logger.LogRebuild(context.Background(), searchViewSize)
	d.opts.metricsCollector.RecordRebuild(time.Since(start), searchViewSize)
}

// Len returns the number of records ingested so far.
func (d *Detector) Len() int {
	return len(d.records)
}

// Descriptor returns a copy of the stored scan context for the given node
// index, or ErrIndexOutOfRange if index is outside [0, Len()).
func (d *Detector) Descriptor(nodeIndex int) (*mat.Dense, error) {
	if nodeIndex < 0 || nodeIndex >= len(d.records) {
		return nil, &ErrIndexOutOfRange{Index: nodeIndex, Len: len(d.records)}
	}
	return mat.DenseCopyOf(d.records[nodeIndex].sc), nil
}

// Timestamp returns the timestamp attached to the record at nodeIndex, if
// any. ok is false when the record was ingested without one.
func (d *Detector) Timestamp(nodeIndex int) (ts time.Time, ok bool, err error) {
	if nodeIndex < 0 || nodeIndex >= len(d.records) {
		return time.Time{}, false, &ErrIndexOutOfRange{Index: nodeIndex, Len: len(d.records)}
	}
	rec := d.records[nodeIndex]
	if rec.timestamp == nil {
		return time.Time{}, false, nil
	}
	return *rec.timestamp, true, nil
}
