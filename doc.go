// Package scancontext implements a place-recognition / loop-closure core
// for streams of 3D LiDAR point clouds.
//
// For every scan it builds a compact, rotation-equivariant descriptor (the
// "scan context": a polar grid of per-bin maximum height) together with two
// derived keys used for coarse indexing. On query it searches a k-d tree of
// past ring keys, re-scores the candidates with a rotation-aligned distance,
// and reports whether the current scan revisits a previously seen place.
//
// # Quick Start
//
//	det := scancontext.New()
//
//	for scan := range scans {
//	    det.Ingest(scan)
//
//	    result := det.Detect()
//	    if result.Matched() {
//	        fmt.Printf("loop closure: scan %d revisits scan %d (d=%.3f, yaw=%.1f deg)\n",
//	            result.QueryIndex, result.MatchIndex, result.Distance, result.YawDeg)
//	    }
//	}
//
// # Scope
//
// The core consumes an already-downsampled, already-motion-compensated point
// cloud per scan; acquisition, preprocessing, persistence of the descriptor
// database across runs, and geometric verification beyond the yaw/similarity
// estimate are the host application's responsibility, not this package's.
//
// # Concurrency
//
// A Detector is single-threaded and synchronous: Ingest and Detect are
// blocking calls with no internal goroutines, no cancellation, and no
// background work. Callers must serialize their own calls into a single
// Detector; independent Detector instances never share state.
package scancontext
