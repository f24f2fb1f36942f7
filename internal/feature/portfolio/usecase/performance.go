package usecase

import (
	"math"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"crypto_dashboard/internal/feature/portfolio/domain/entity"
)

const (
	// PerformanceBase is the index value a fresh series starts from.
	PerformanceBase = 100.0
	// PerformanceMin and PerformanceMax bound every point of the series.
	PerformanceMin = 80.0
	PerformanceMax = 140.0

	performanceBias = 0.48 // slightly below 0.5 gives the walk an upward drift
	performanceStep = 2.0

	seedDays         = 30
	seedPointsPerDay = 144 // one point every 10 minutes
	seedSpacing      = 10 * time.Minute
)

// NextPerformanceValue advances the random walk by one step.
// r is expected in [0, 1); the result always lies in [PerformanceMin, PerformanceMax].
func NextPerformanceValue(last, r float64) float64 {
	next := last + (r-performanceBias)*performanceStep
	return math.Max(PerformanceMin, math.Min(PerformanceMax, next))
}

// PerformanceSeries is the append-only, session-scoped series driving the performance chart.
// The values are simulated: they are not derived from the remote portfolio data.
type PerformanceSeries struct {
	mu     sync.Mutex
	points []entity.PortfolioDataPoint
	rand   func() float64
}

// NewPerformanceSeries creates an empty series. If random is nil, math/rand/v2 is used.
func NewPerformanceSeries(random func() float64) *PerformanceSeries {
	if random == nil {
		random = rand.Float64
	}
	return &PerformanceSeries{rand: random}
}

// Seed fills an empty series with a simulated 30-day history ending at now.
// It does nothing when the series already holds points.
func (s *PerformanceSeries) Seed(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.points) > 0 {
		return
	}

	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -seedDays)
	value := PerformanceBase
	total := (seedDays + 1) * seedPointsPerDay
	points := make([]entity.PortfolioDataPoint, 0, total)
	for i := 0; i < total; i++ {
		ts := start.Add(time.Duration(i) * seedSpacing)
		if ts.After(now) {
			break
		}
		value = NextPerformanceValue(value, s.rand())
		points = append(points, entity.PortfolioDataPoint{
			Timestamp: ts,
			Value:     math.Round(value*100) / 100,
		})
	}
	s.points = points
}

// Append adds one simulated point at now and returns it.
func (s *PerformanceSeries) Append(now time.Time) entity.PortfolioDataPoint {
	s.mu.Lock()
	defer s.mu.Unlock()

	last := PerformanceBase
	if n := len(s.points); n > 0 {
		last = s.points[n-1].Value
	}
	p := entity.PortfolioDataPoint{
		Timestamp: now,
		Value:     NextPerformanceValue(last, s.rand()),
	}
	s.points = append(s.points, p)
	return p
}

// Points returns a copy of the series.
func (s *PerformanceSeries) Points() []entity.PortfolioDataPoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.points)
}

// Len returns the number of points in the series.
func (s *PerformanceSeries) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.points)
}
