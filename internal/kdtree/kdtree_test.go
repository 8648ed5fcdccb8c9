package kdtree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEmpty(t *testing.T) {
	tr := Build(nil, nil)
	assert.Equal(t, 0, tr.Len())
	assert.Nil(t, tr.KNN([]float64{0, 0}, 3))
}

func TestKNNFindsExactNearest(t *testing.T) {
	points := [][]float64{
		{0, 0},
		{10, 10},
		{1, 0},
		{0, 1},
		{5, 5},
	}
	tr := Build(points, nil)
	require.Equal(t, 5, tr.Len())

	got := tr.KNN([]float64{0, 0}, 2)
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].Index)
	assert.InDelta(t, 0.0, got[0].Distance, 1e-9)
	assert.Contains(t, []int{2, 3}, got[1].Index)
}

func TestKNNOrdersByDistance(t *testing.T) {
	points := [][]float64{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}
	tr := Build(points, nil)

	got := tr.KNN([]float64{2.1, 0}, 3)
	require.Len(t, got, 3)
	assert.Equal(t, 2, got[0].Index)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i].Distance, got[i-1].Distance)
	}
}

func TestKNNRespectsCustomIndices(t *testing.T) {
	points := [][]float64{{0, 0}, {1, 1}}
	indices := []int{42, 7}
	tr := Build(points, indices)

	got := tr.KNN([]float64{0, 0}, 1)
	require.Len(t, got, 1)
	assert.Equal(t, 42, got[0].Index)
}

func TestKNNCappedAtTreeSize(t *testing.T) {
	points := [][]float64{{0, 0}, {1, 1}, {2, 2}}
	tr := Build(points, nil)
	got := tr.KNN([]float64{0, 0}, 10)
	assert.Len(t, got, 3)
}

func TestKNNMatchesBruteForceOnRandomData(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	dim := 5
	n := 200
	points := make([][]float64, n)
	for i := range points {
		p := make([]float64, dim)
		for j := range p {
			p[j] = rng.Float64() * 100
		}
		points[i] = p
	}
	tr := Build(points, nil)

	query := make([]float64, dim)
	for j := range query {
		query[j] = rng.Float64() * 100
	}

	got := tr.KNN(query, 5)
	require.Len(t, got, 5)

	want := bruteForceKNN(points, query, 5)
	for i := range want {
		assert.Equal(t, want[i], got[i].Index)
	}
}

func bruteForceKNN(points [][]float64, query []float64, k int) []int {
	type cand struct {
		index int
		d     float64
	}
	cands := make([]cand, len(points))
	for i, p := range points {
		cands[i] = cand{index: i, d: sqDist(query, p)}
	}
	for i := 0; i < k && i < len(cands); i++ {
		min := i
		for j := i + 1; j < len(cands); j++ {
			if cands[j].d < cands[min].d {
				min = j
			}
		}
		cands[i], cands[min] = cands[min], cands[i]
	}
	out := make([]int, 0, k)
	for i := 0; i < k && i < len(cands); i++ {
		out = append(out, cands[i].index)
	}
	return out
}
