package tui

import "strings"

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// sparkline renders a series as unicode block characters, downsampled to
// width columns.
func sparkline(points []float64, width int) string {
	if len(points) == 0 || width <= 0 {
		return ""
	}
	sampled := resample(points, width)

	min, max := sampled[0], sampled[0]
	for _, v := range sampled {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	span := max - min

	var sb strings.Builder
	for _, v := range sampled {
		idx := 0
		if span > 0 {
			idx = int((v - min) / span * float64(len(sparkRunes)-1))
		}
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkRunes) {
			idx = len(sparkRunes) - 1
		}
		sb.WriteRune(sparkRunes[idx])
	}
	return sb.String()
}

func resample(points []float64, width int) []float64 {
	if len(points) <= width {
		return points
	}
	out := make([]float64, width)
	for i := 0; i < width; i++ {
		out[i] = points[i*len(points)/width]
	}
	return out
}
