// Package chart renders the keyword-frequency bar chart.
package chart

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dtnitsch/post-theme-analyzer/models"
	gochart "github.com/wcharczuk/go-chart/v2"
)

// Title is drawn above the bars.
const Title = "Frequência das Palavras-chave"

// ErrNoData is returned when there is nothing to plot.
var ErrNoData = errors.New("no keyword counts to chart")

// Format selects the chart output encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatSVG  Format = "svg"
	FormatNone Format = "none"
)

// ParseFormat resolves a --chart flag value. Empty means png.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FormatPNG:
		return FormatPNG, nil
	case FormatSVG:
		return FormatSVG, nil
	case FormatNone:
		return FormatNone, nil
	default:
		return "", fmt.Errorf("invalid chart format %q (want png, svg or none)", raw)
	}
}

// FileName returns the artifact name for a chart in format f.
func FileName(f Format) string {
	return "keyword_frequency." + string(f)
}

const (
	// minWidth keeps small charts at a readable size.
	minWidth = 1000
	height   = 600
	barWidth = 40
	// labelPadding separates neighbouring x-axis labels.
	labelPadding = 16
	// axisAllowance covers the canvas padding and the y-axis labels.
	axisAllowance = 160
	// maxYTicks bounds the number of y-axis ticks.
	maxYTicks = 10
)

// Render draws one bar per keyword, in first-appearance order, and writes
// the encoded image to w. Every bar slot is as wide as the widest keyword
// label, so go-chart never has to wrap or squeeze a label out of view.
func Render(w io.Writer, counts *models.KeywordCounts, f Format) error {
	if counts.Len() == 0 {
		return ErrNoData
	}

	var provider gochart.RendererProvider
	switch f {
	case FormatPNG:
		provider = gochart.PNG
	case FormatSVG:
		provider = gochart.SVG
	default:
		return fmt.Errorf("cannot render chart as %q", f)
	}

	bars := make([]gochart.Value, 0, counts.Len())
	labels := make([]string, 0, counts.Len())
	maxCount := 0
	for _, k := range counts.Keys() {
		n := counts.Get(k)
		if n > maxCount {
			maxCount = n
		}
		bars = append(bars, gochart.Value{Label: k, Value: float64(n)})
		labels = append(labels, k)
	}

	labelWidth, err := maxLabelWidth(labels)
	if err != nil {
		return fmt.Errorf("failed to measure chart labels: %w", err)
	}
	slot := labelWidth + labelPadding
	if slot < barWidth+labelPadding {
		slot = barWidth + labelPadding
	}
	width := len(bars)*slot + axisAllowance
	if width < minWidth {
		width = minWidth
	}

	ticks, yMax := integerTicks(maxCount)

	graph := gochart.BarChart{
		Title: Title,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40},
		},
		Width:      width,
		Height:     height,
		BarWidth:   barWidth,
		BarSpacing: slot - barWidth,
		// An explicit range keeps a chart of equal counts from collapsing to zero height.
		YAxis: gochart.YAxis{
			Range:          &gochart.ContinuousRange{Min: 0, Max: yMax},
			Ticks:          ticks,
			ValueFormatter: gochart.IntValueFormatter,
		},
		Bars: bars,
	}

	if err := graph.Render(provider, w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// maxLabelWidth measures labels in pixels with the font and size go-chart
// uses for axis labels.
func maxLabelWidth(labels []string) (int, error) {
	font, err := gochart.GetDefaultFont()
	if err != nil {
		return 0, err
	}
	r, err := gochart.PNG(1, 1)
	if err != nil {
		return 0, err
	}
	r.SetDPI(gochart.DefaultDPI)
	r.SetFont(font)
	r.SetFontSize(gochart.DefaultAxisFontSize)

	widest := 0
	for _, label := range labels {
		if w := r.MeasureText(label).Width(); w > widest {
			widest = w
		}
	}
	return widest, nil
}

// integerTicks returns whole-number y-axis ticks from 0 and the axis top,
// which is maxCount rounded up to a whole step.
func integerTicks(maxCount int) ([]gochart.Tick, float64) {
	if maxCount < 1 {
		maxCount = 1
	}
	step := (maxCount + maxYTicks - 1) / maxYTicks
	top := ((maxCount + step - 1) / step) * step

	ticks := make([]gochart.Tick, 0, top/step+1)
	for v := 0; v <= top; v += step {
		ticks = append(ticks, gochart.Tick{Value: float64(v), Label: strconv.Itoa(v)})
	}
	return ticks, float64(top)
}
