package render

import (
	"fmt"
	"math"
	"strings"
)

// WinRatePlot draws a series of rates in [0, 1] as a height×width character
// chart with a labelled y axis. Longer series are averaged into buckets.
func (r *Renderer) WinRatePlot(title string, rates []float64, height, width int) string {
	if height < 2 {
		height = 2
	}
	if width < 1 {
		width = 1
	}
	columns := bucket(rates, width)

	grid := make([][]bool, height)
	for i := range grid {
		grid[i] = make([]bool, len(columns))
	}
	for col, rate := range columns {
		level := int(math.Round(clamp(rate) * float64(height-1)))
		grid[height-1-level][col] = true
	}

	var sb strings.Builder
	if title != "" {
		sb.WriteString(r.out.String(title).Bold().String() + "\n")
	}
	point := r.out.String("*").Foreground(r.out.Color("2")).String()
	for row := 0; row < height; row++ {
		value := float64(height-1-row) / float64(height-1)
		fmt.Fprintf(&sb, "%4.2f |", value)
		for _, filled := range grid[row] {
			if filled {
				sb.WriteString(point)
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("     +" + strings.Repeat("-", len(columns)) + "\n")
	fmt.Fprintf(&sb, "      1%*d games\n", max(len(columns)-1, 1), len(rates))
	return sb.String()
}

// bucket averages values into at most width consecutive groups.
func bucket(values []float64, width int) []float64 {
	if len(values) <= width {
		return values
	}
	buckets := make([]float64, width)
	for i := range buckets {
		start := i * len(values) / width
		end := (i + 1) * len(values) / width
		sum := 0.0
		for _, v := range values[start:end] {
			sum += v
		}
		buckets[i] = sum / float64(end-start)
	}
	return buckets
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
