// Package scdistance implements the circular-shift alignment and similarity
// metric that make scan-context comparison rotation-invariant (§4.C).
package scdistance

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DefaultSearchRatio is the fraction of sectors searched around the
// sector-key coarse alignment when refining the full scan-context distance,
// matching the original paper's tuning.
const DefaultSearchRatio = 0.1

// ShiftVector returns v with its entries cyclically shifted to the right by
// k positions: entry j of v becomes entry (j+k) mod len(v) of the result.
func ShiftVector(v []float64, k int) []float64 {
	n := len(v)
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	k = ((k % n) + n) % n
	for j := 0; j < n; j++ {
		out[(j+k)%n] = v[j]
	}
	return out
}

// Shift returns sc with its columns cyclically shifted to the right by k
// positions: column j of sc becomes column (j+k) mod S of the result. A yaw
// rotation of Δθ degrees corresponds to a shift of round(Δθ·S/360).
func Shift(sc *mat.Dense, k int) *mat.Dense {
	r, s := sc.Dims()
	out := mat.NewDense(r, s, nil)
	if s == 0 {
		return out
	}
	k = ((k % s) + s) % s
	for j := 0; j < s; j++ {
		dstCol := (j + k) % s
		for i := 0; i < r; i++ {
			out.Set(i, dstCol, sc.At(i, j))
		}
	}
	return out
}

// FastAlign finds the shift k* in [0, S) minimizing the L1 distance between
// vkQuery and ShiftVector(vkCandidate, k). Ties are broken by the smallest k.
func FastAlign(vkQuery, vkCandidate []float64) int {
	s := len(vkCandidate)
	best := 0
	bestDist := math.Inf(1)
	for k := 0; k < s; k++ {
		shifted := ShiftVector(vkCandidate, k)
		d := floats.Distance(vkQuery, shifted, 1)
		if d < bestDist {
			bestDist = d
			best = k
		}
	}
	return best
}

// DistDirectSC computes the column-wise cosine distance between sc1 and sc2,
// averaged over columns where both columns are non-zero. If no column
// qualifies, the distance is 1.0 (maximally dissimilar).
func DistDirectSC(sc1, sc2 *mat.Dense) float64 {
	r, s := sc1.Dims()

	c1 := make([]float64, r)
	c2 := make([]float64, r)

	var sum float64
	var n int
	for j := 0; j < s; j++ {
		mat.Col(c1, j, sc1)
		mat.Col(c2, j, sc2)

		norm1 := floats.Norm(c1, 2)
		norm2 := floats.Norm(c2, 2)
		if norm1 == 0 || norm2 == 0 {
			continue
		}

		cosine := floats.Dot(c1, c2) / (norm1 * norm2)
		sum += 1 - cosine
		n++
	}

	if n == 0 {
		return 1.0
	}
	return sum / float64(n)
}

// Distance computes the full rotation-aligned scan-context distance D
// between a query and a candidate descriptor (§4.C): a coarse yaw estimate
// from the sector keys, refined by a small brute-force search window around
// it. It returns the minimum distance found and the shift k such that, if
// scCandidate were produced by rotating scQuery's source cloud by m sectors
// (scCandidate = Shift(scQuery, m)), k recovers m. This holds when the
// sector-key estimate lands within the refinement window of the true
// shift; shifts outside that window are not searched. k converts to a yaw
// estimate via k*(360/S) degrees.
//
// The search itself walks candidate shifts forward (Shift(scCandidate, j)),
// the natural direction for aligning the candidate's columns onto the
// query's; the recovered rotation m is the inverse of the best such j, so
// the reported shift is (S - j) mod S.
//
// searchRatio sets the width of the refinement window as a fraction of S;
// pass DefaultSearchRatio for the original paper's tuning.
func Distance(scQuery, scCandidate *mat.Dense, vkQuery, vkCandidate []float64, searchRatio float64) (dist float64, shift int) {
	_, s := scCandidate.Dims()

	j0 := FastAlign(vkQuery, vkCandidate)

	half := int(float64(s) * searchRatio / 2)

	bestDist := math.Inf(1)
	bestJ := j0
	for delta := -half; delta <= half; delta++ {
		j := ((j0+delta)%s + s) % s
		d := DistDirectSC(scQuery, Shift(scCandidate, j))
		if d < bestDist {
			bestDist = d
			bestJ = j
		}
	}

	return bestDist, (s - bestJ) % s
}
