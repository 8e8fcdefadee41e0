package bench

import (
	"sort"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Median returns the lower median of samples: element (n-1)/2 once sorted.
// samples is sorted in place. It panics on an empty slice.
func Median(samples []float64) time.Duration {
	sort.Float64s(samples)
	return time.Duration(stat.Quantile(0.5, stat.Empirical, samples, nil))
}

// SamplePool recycles per-operation sample buffers between lines.
type SamplePool struct {
	pool sync.Pool
	size int
}

func NewSamplePool(size int) *SamplePool {
	return &SamplePool{
		size: size,
		pool: sync.Pool{
			New: func() interface{} {
				return make([]float64, size)
			},
		},
	}
}

func (p *SamplePool) Get() []float64 {
	return p.pool.Get().([]float64)
}

func (p *SamplePool) Put(s []float64) {
	if len(s) == p.size {
		p.pool.Put(s)
	}
}
