package history

// Summary describes a run of points for a chart header.
type Summary struct {
	Current float64
	Max     float64
	Avg     float64
	// AxisMax is the chart's y-axis ceiling.
	AxisMax float64
}

var axisThresholds = []float64{5, 10, 20, 40, 60, 80, 100}

// AxisMax returns the smallest threshold strictly above max, or 100.
func AxisMax(max float64) float64 {
	for _, t := range axisThresholds {
		if max < t {
			return t
		}
	}
	return 100
}

// Summarize computes Summary over points. An empty run gives zeros with a
// 100 axis.
func Summarize(points []Point) Summary {
	if len(points) == 0 {
		return Summary{AxisMax: 100}
	}

	var sum float64
	s := Summary{Current: points[len(points)-1].CPU, Max: points[0].CPU}
	for _, p := range points {
		sum += p.CPU
		if p.CPU > s.Max {
			s.Max = p.CPU
		}
	}
	s.Avg = sum / float64(len(points))
	s.AxisMax = AxisMax(s.Max)
	return s
}
