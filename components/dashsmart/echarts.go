package dashsmart

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

const (
	defaultChartHeight = "360px"
	fullWidthHeight    = "420px"
)

var sharedChartCache = NewChartCache(5 * time.Minute)

// HTMLRenderer turns render plans into self-contained ECharts markup.
type HTMLRenderer struct {
	cache      RenderCache
	theme      string
	assetsHost string
}

// HTMLRendererOption customizes renderer behavior.
type HTMLRendererOption func(*HTMLRenderer)

// WithRenderCache injects a render cache.
func WithRenderCache(cache RenderCache) HTMLRendererOption {
	return func(r *HTMLRenderer) {
		r.cache = cache
	}
}

// WithTheme sets the chart theme (defaults to Westeros).
func WithTheme(theme string) HTMLRendererOption {
	return func(r *HTMLRenderer) {
		r.theme = theme
	}
}

// WithAssetsHost rewrites the assets host so ECharts JS loads from a CDN.
func WithAssetsHost(host string) HTMLRendererOption {
	return func(r *HTMLRenderer) {
		r.assetsHost = host
	}
}

// NewHTMLRenderer builds a renderer with optional overrides.
func NewHTMLRenderer(options ...HTMLRendererOption) *HTMLRenderer {
	r := &HTMLRenderer{
		cache: sharedChartCache,
		theme: types.ThemeWesteros,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// Render converts a plan into HTML. Chart markup is cached by widget id
// plus a hash of the plan, so edits invalidate stale entries.
func (r *HTMLRenderer) Render(plan RenderPlan) (string, error) {
	if plan.Table != nil {
		return renderTableHTML(plan)
	}
	if plan.Chart == nil {
		return "", fmt.Errorf("dashsmart: render plan has no content")
	}

	renderFn := func() (string, error) {
		return r.renderChartPlan(plan)
	}
	if r.cache != nil {
		key := fmt.Sprintf("%s:%s", plan.WidgetID, planHash(plan))
		return r.cache.GetOrRender(key, renderFn)
	}
	return renderFn()
}

func (r *HTMLRenderer) renderChartPlan(plan RenderPlan) (string, error) {
	switch plan.Chart.Kind {
	case TypeArea:
		return r.renderAreaChart(plan)
	case TypeBar:
		return r.renderBarChart(plan)
	case TypeLine:
		return r.renderLineChart(plan)
	case TypePie:
		return r.renderPieChart(plan)
	case TypeComposed:
		return r.renderComposedChart(plan)
	default:
		return "", fmt.Errorf("dashsmart: unsupported chart kind %q", plan.Chart.Kind)
	}
}

func (r *HTMLRenderer) renderAreaChart(plan RenderPlan) (string, error) {
	line := charts.NewLine()
	line.SetGlobalOptions(r.globalChartOptions(plan)...)
	line.SetXAxis(plan.Chart.XLabels)
	for _, s := range plan.Chart.Series {
		line.AddSeries(s.Name, toLineData(s.Values),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}),
			charts.WithAreaStyleOpts(opts.AreaStyle{}),
		)
	}
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	return renderChart(line)
}

func (r *HTMLRenderer) renderBarChart(plan RenderPlan) (string, error) {
	bar := charts.NewBar()
	bar.SetGlobalOptions(r.globalChartOptions(plan)...)
	bar.SetXAxis(plan.Chart.XLabels)
	for _, s := range plan.Chart.Series {
		bar.AddSeries(s.Name, toBarData(s.Values),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}),
		)
	}
	return renderChart(bar)
}

func (r *HTMLRenderer) renderLineChart(plan RenderPlan) (string, error) {
	line := charts.NewLine()
	line.SetGlobalOptions(r.globalChartOptions(plan)...)
	line.SetXAxis(plan.Chart.XLabels)
	for _, s := range plan.Chart.Series {
		line.AddSeries(s.Name, toLineData(s.Values),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}),
		)
	}
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	return renderChart(line)
}

func (r *HTMLRenderer) renderPieChart(plan RenderPlan) (string, error) {
	pie := charts.NewPie()
	pie.SetGlobalOptions(r.globalChartOptions(plan)...)
	// A pie with no series renders as an empty placeholder, same as
	// the cartesian kinds, so one hollow widget never sinks the page.
	if len(plan.Chart.Series) > 0 {
		s := plan.Chart.Series[0]
		pie.AddSeries(s.Name, toPieData(plan.Chart.XLabels, s.Values))
	}
	return renderChart(pie)
}

// renderComposedChart overlays line series on a bar chart: the first series
// draws as bars, every later one as a line.
func (r *HTMLRenderer) renderComposedChart(plan RenderPlan) (string, error) {
	bar := charts.NewBar()
	bar.SetGlobalOptions(r.globalChartOptions(plan)...)
	bar.SetXAxis(plan.Chart.XLabels)

	line := charts.NewLine()
	line.SetXAxis(plan.Chart.XLabels)

	for _, s := range plan.Chart.Series {
		switch s.Role {
		case RoleBar:
			bar.AddSeries(s.Name, toBarData(s.Values),
				charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}),
			)
		default:
			line.AddSeries(s.Name, toLineData(s.Values),
				charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}),
			)
		}
	}
	bar.Overlap(line)
	return renderChart(bar)
}

func renderChart(renderable interface{ Render(io.Writer) error }) (string, error) {
	var buf bytes.Buffer
	if err := renderable.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *HTMLRenderer) globalChartOptions(plan RenderPlan) []charts.GlobalOpts {
	height := defaultChartHeight
	if plan.Span == SpanDouble {
		height = fullWidthHeight
	}
	initOpts := opts.Initialization{
		Theme:  r.theme,
		Width:  "100%",
		Height: height,
	}
	if r.assetsHost != "" {
		initOpts.AssetsHost = r.assetsHost
	}
	return []charts.GlobalOpts{
		charts.WithTitleOpts(opts.Title{Title: plan.Title, Subtitle: plan.Description}),
		charts.WithInitializationOpts(initOpts),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	}
}

func toBarData(values []float64) []opts.BarData {
	data := make([]opts.BarData, len(values))
	for i, v := range values {
		data[i] = opts.BarData{Value: v}
	}
	return data
}

func toLineData(values []float64) []opts.LineData {
	data := make([]opts.LineData, len(values))
	for i, v := range values {
		data[i] = opts.LineData{Value: v}
	}
	return data
}

// toPieData colors slices from the pie palette, cycling when the slice
// count exceeds it.
func toPieData(labels []string, values []float64) []opts.PieData {
	data := make([]opts.PieData, len(values))
	for i, v := range values {
		name := fmt.Sprintf("Slice %d", i+1)
		if i < len(labels) && labels[i] != "" {
			name = labels[i]
		}
		data[i] = opts.PieData{
			Name:      name,
			Value:     v,
			ItemStyle: &opts.ItemStyle{Color: PieColor(i)},
		}
	}
	return data
}
