package chart

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/SscSPs/krw_rates_dashboard/internal/apperrors"
	"github.com/SscSPs/krw_rates_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/krw_rates_dashboard/internal/core/ports/services"
	gochart "github.com/wcharczuk/go-chart/v2"
)

const (
	defaultWidth  = 1024
	defaultHeight = 420

	xAxisLabel = "기간"
	yAxisLabel = "환율(원)"
)

// SVGRenderer draws rate-vs-period line charts as SVG.
type SVGRenderer struct {
	width  int
	height int
}

// NewSVGRenderer creates a renderer with the given canvas size.
// Non-positive sizes use the defaults.
func NewSVGRenderer(width, height int) *SVGRenderer {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return &SVGRenderer{width: width, height: height}
}

// Ensure SVGRenderer implements the ChartRenderer interface
var _ portssvc.ChartRenderer = (*SVGRenderer)(nil)

// ContentType returns the MIME type of the rendered chart.
func (r *SVGRenderer) ContentType() string {
	return "image/svg+xml"
}

// measureSeries holds one measure's points in ascending period order.
type measureSeries struct {
	name  string
	times []time.Time
	rates []float64
}

// groupByMeasure splits observations into one series per measure, in order of first appearance.
func groupByMeasure(observations []domain.Observation) []*measureSeries {
	index := make(map[string]*measureSeries)
	var groups []*measureSeries
	for _, o := range observations {
		g, ok := index[o.Measure]
		if !ok {
			g = &measureSeries{name: o.Measure}
			index[o.Measure] = g
			groups = append(groups, g)
		}
		g.times = append(g.times, o.PeriodDate)
		g.rates = append(g.rates, o.Rate.InexactFloat64())
	}
	return groups
}

// RenderLineChart writes a line chart of rate against period, one colored series per measure.
func (r *SVGRenderer) RenderLineChart(w io.Writer, title string, observations []domain.Observation) error {
	if len(observations) == 0 {
		return fmt.Errorf("cannot render chart: %w", apperrors.ErrEmptySelection)
	}

	groups := groupByMeasure(observations)
	lo, hi := math.Inf(1), math.Inf(-1)
	series := make([]gochart.Series, 0, len(groups))
	for _, g := range groups {
		xs, ys := g.times, g.rates
		for _, y := range ys {
			lo = math.Min(lo, y)
			hi = math.Max(hi, y)
		}
		// go-chart rejects a zero-width x range; stretch single points by a day.
		if len(xs) == 1 {
			xs = []time.Time{xs[0], xs[0].AddDate(0, 0, 1)}
			ys = []float64{ys[0], ys[0]}
		}
		series = append(series, gochart.TimeSeries{
			Name:    g.name,
			XValues: xs,
			YValues: ys,
			Style: gochart.Style{
				StrokeWidth: 2,
				DotWidth:    3,
			},
		})
	}

	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = math.Max(math.Abs(hi)*0.01, 1)
	}

	graph := gochart.Chart{
		Title:  title,
		Width:  r.width,
		Height: r.height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 48, Left: 24, Right: 24, Bottom: 24},
		},
		XAxis: gochart.XAxis{
			Name:           xAxisLabel,
			ValueFormatter: gochart.TimeValueFormatterWithFormat(domain.PeriodDisplayLayout),
		},
		YAxis: gochart.YAxis{
			Name:  yAxisLabel,
			Range: &gochart.ContinuousRange{Min: lo - pad, Max: hi + pad},
		},
		Series: series,
	}
	if len(groups) > 1 {
		graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}
	}

	if err := graph.Render(gochart.SVG, w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
