// Package sweep evaluates a TSV path over a range of TSV counts and plots the
// results.
package sweep

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/sarchlab/tsvcost/estimator"
	"github.com/sarchlab/tsvcost/tsvpath"
)

// Point is the result of one TSV count.
type Point struct {
	NumTSV            float64
	ReadLatency       float64
	ReadDynamicEnergy float64
	LatencyInCycles   bool
}

// Factory creates a fresh TSV path.
type Factory func() (*tsvpath.Comp, error)

// Run evaluates a new path for every count in numTSVs.
func Run(newPath Factory, numTSVs []float64, numRead float64) ([]Point, error) {
	points := make([]Point, 0, len(numTSVs))

	for _, n := range numTSVs {
		path, err := newPath()
		if err != nil {
			return nil, err
		}

		path.Initialize()

		err = path.CalculateArea(0, 0, estimator.LayoutNone)
		if err != nil {
			return nil, err
		}

		err = path.CalculateLatency(n, numRead)
		if err != nil {
			return nil, err
		}

		err = path.CalculatePower(n, numRead)
		if err != nil {
			return nil, err
		}

		points = append(points, Point{
			NumTSV:            n,
			ReadLatency:       path.ReadLatency,
			ReadDynamicEnergy: path.ReadDynamicEnergy,
			LatencyInCycles:   path.LatencyInCycles,
		})
	}

	return points, nil
}

// Range returns 1, 2, ..., maxCount.
func Range(maxCount int) []float64 {
	counts := make([]float64, 0, max(maxCount, 0))
	for i := 1; i <= maxCount; i++ {
		counts = append(counts, float64(i))
	}

	return counts
}

// Metric selects what a plot shows.
type Metric int

// Metrics that can be plotted.
const (
	MetricLatency Metric = iota
	MetricEnergy
)

func (m Metric) label(points []Point) string {
	switch m {
	case MetricLatency:
		if len(points) > 0 && points[0].LatencyInCycles {
			return "Read latency (cycles)"
		}

		return "Read latency (s)"
	case MetricEnergy:
		return "Read dynamic energy (J)"
	default:
		panic(fmt.Sprintf("unknown metric %d", int(m)))
	}
}

func (m Metric) value(p Point) float64 {
	if m == MetricEnergy {
		return p.ReadDynamicEnergy
	}

	return p.ReadLatency
}

// Plot draws one metric against the TSV count into filename. The format
// follows the extension of filename, e.g. .png or .svg.
func Plot(points []Point, m Metric, filename string) error {
	p := plot.New()
	p.Title.Text = "TSV path"
	p.X.Label.Text = "TSVs crossed"
	p.Y.Label.Text = m.label(points)

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = pt.NumTSV
		xys[i].Y = m.value(pt)
	}

	line, scatter, err := plotter.NewLinePoints(xys)
	if err != nil {
		return fmt.Errorf("sweep: plotting %d points: %w", len(points), err)
	}

	p.Add(plotter.NewGrid(), line, scatter)

	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}
