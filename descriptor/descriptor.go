// Package descriptor builds the scan-context descriptor (§4.A) and its two
// derived keys (§4.B) from a downsampled point cloud.
package descriptor

import (
	"math"

	"github.com/saurabh1002/scancontext/geometry"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Params controls the polar grid the descriptor is built on.
type Params struct {
	// Rings is the number of radial bins (R in the spec).
	Rings int
	// Sectors is the number of azimuthal bins (S in the spec).
	Sectors int
	// MaxRadius is the planar range beyond which a point is dropped (meters).
	MaxRadius float64
	// LidarHeight is added to every point's Z before binning (meters).
	LidarHeight float64
}

// DefaultParams matches the original paper (IROS 18): 20 rings, 60 sectors,
// an 80 meter max radius, and a 2 meter lidar height offset.
var DefaultParams = Params{
	Rings:       20,
	Sectors:     60,
	MaxRadius:   80.0,
	LidarHeight: 2.0,
}

// Build computes the scan context for a point cloud: an R x S matrix whose
// (i, j) entry is the maximum height-adjusted Z among points that fall into
// ring i, sector j. Bins with no points are 0.
//
// Points farther than params.MaxRadius on the XY plane are skipped.
func Build(points []geometry.Point, params Params) *mat.Dense {
	sc := mat.NewDense(params.Rings, params.Sectors, nil)

	ringGap := params.MaxRadius / float64(params.Rings)
	sectorAngle := 360.0 / float64(params.Sectors)

	for _, p := range points {
		r := p.PlanarRange()
		if r > params.MaxRadius {
			continue
		}

		z := p.Z + params.LidarHeight
		theta := geometry.AzimuthDeg(p.X, p.Y)

		ring := int(math.Floor(r / ringGap))
		if ring >= params.Rings {
			ring = params.Rings - 1
		}
		sector := int(math.Floor(theta / sectorAngle))
		if sector >= params.Sectors {
			sector = params.Sectors - 1
		}

		if z > sc.At(ring, sector) {
			sc.Set(ring, sector, z)
		}
	}

	return sc
}

// RingKey returns the ring key (§4.B): entry i is the arithmetic mean of row
// i of sc, including zero bins.
func RingKey(sc *mat.Dense) []float64 {
	r, c := sc.Dims()
	rk := make([]float64, r)
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat.Row(row, i, sc)
		rk[i] = floats.Sum(row) / float64(c)
	}
	return rk
}

// SectorKey returns the sector key (§4.B): entry j is the arithmetic mean of
// column j of sc, including zero bins. Used only for coarse yaw alignment.
func SectorKey(sc *mat.Dense) []float64 {
	r, c := sc.Dims()
	vk := make([]float64, c)
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, sc)
		vk[j] = floats.Sum(col) / float64(r)
	}
	return vk
}
