package dashsmart

import "fmt"

// SlotSpan is the number of grid slots a widget occupies in its tab.
type SlotSpan int

const (
	SpanSingle SlotSpan = 1
	SpanDouble SlotSpan = 2
)

// SpanFor applies the layout heuristic: a widget spans a double slot when it
// is the only widget on its tab or when its variant reads better wide
// (area, composed). The result is recomputed per render, never cached,
// because edits can change both the variant and the tab population.
func SpanFor(w Widget, widgetsOnTab int) SlotSpan {
	if widgetsOnTab == 1 {
		return SpanDouble
	}
	switch w.Type() {
	case TypeArea, TypeComposed:
		return SpanDouble
	}
	return SpanSingle
}

// SeriesRole tells the chart backend how to draw one series.
type SeriesRole string

const (
	RoleArea  SeriesRole = "area"
	RoleBar   SeriesRole = "bar"
	RoleLine  SeriesRole = "line"
	RoleSlice SeriesRole = "slice"
)

// RenderPlan is a pure description of how one widget renders: either Chart
// or Table is set, matching the widget variant.
type RenderPlan struct {
	WidgetID    string
	Title       string
	Description string
	Span        SlotSpan
	Editing     bool
	Chart       *ChartPlan
	Table       *TablePlan
}

// ChartPlan binds widget data to plotted series.
type ChartPlan struct {
	Kind    WidgetType
	XLabels []string
	Series  []SeriesPlan
}

// SeriesPlan is one resolved metric: values aligned with XLabels, with
// missing row fields degraded to zero rather than failing the render.
type SeriesPlan struct {
	Key    string
	Name   string
	Color  string
	Role   SeriesRole
	Values []float64
}

// TablePlan is a fully formatted table: cells already passed through the
// column format rules.
type TablePlan struct {
	Headers []string
	Rows    [][]string
}

// BuildPlan maps a widget plus the ambient edit state to render
// instructions. It is a pure function of its inputs.
func BuildPlan(w Widget, widgetsOnTab int, editTarget string) (RenderPlan, error) {
	if w == nil {
		return RenderPlan{}, fmt.Errorf("dashsmart: nil widget")
	}
	base := w.Base()
	plan := RenderPlan{
		WidgetID:    base.ID,
		Title:       base.Title,
		Description: base.Description,
		Span:        SpanFor(w, widgetsOnTab),
		Editing:     editTarget != "" && editTarget == base.ID,
	}
	switch widget := w.(type) {
	case *ChartWidget:
		plan.Chart = buildChartPlan(widget)
	case *TableWidget:
		plan.Table = buildTablePlan(widget)
	default:
		return RenderPlan{}, fmt.Errorf("dashsmart: unknown widget variant %T", w)
	}
	return plan, nil
}

func buildChartPlan(w *ChartWidget) *ChartPlan {
	plan := &ChartPlan{
		Kind:    w.Variant,
		XLabels: make([]string, len(w.Data)),
	}
	for i, row := range w.Data {
		plan.XLabels[i] = fmt.Sprintf("%v", valueOr(row, w.XAxisKey, ""))
	}

	series := w.Series
	if w.Variant == TypePie && len(series) > 1 {
		// Pies plot a single metric; series beyond the first are ignored.
		series = series[:1]
	}
	for i, s := range series {
		plan.Series = append(plan.Series, SeriesPlan{
			Key:    s.Key,
			Name:   seriesName(s),
			Color:  seriesColor(s, i),
			Role:   seriesRole(w.Variant, i),
			Values: seriesValues(w.Data, s.Key),
		})
	}
	return plan
}

func buildTablePlan(w *TableWidget) *TablePlan {
	columns := w.Columns
	if len(columns) == 0 {
		columns = SynthesizeColumns(firstRow(w.WidgetBase))
	}
	plan := &TablePlan{Headers: make([]string, len(columns))}
	for i, col := range columns {
		plan.Headers[i] = col.Label
	}
	for _, row := range w.Data {
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i] = FormatValue(valueOr(row, col.Key, ""), col.Format)
		}
		plan.Rows = append(plan.Rows, cells)
	}
	return plan
}

// seriesRole encodes the composed convention: the first series draws as a
// bar and every subsequent one as a line. The ordering is fixed, not a
// per-series option.
func seriesRole(variant WidgetType, index int) SeriesRole {
	switch variant {
	case TypeArea:
		return RoleArea
	case TypeBar:
		return RoleBar
	case TypePie:
		return RoleSlice
	case TypeComposed:
		if index == 0 {
			return RoleBar
		}
		return RoleLine
	default:
		return RoleLine
	}
}

func seriesName(s Series) string {
	if s.Name != "" {
		return s.Name
	}
	return s.Key
}

func seriesColor(s Series, index int) string {
	if s.Color != "" {
		return s.Color
	}
	return PresetColor(index)
}

// seriesValues extracts a numeric column from the rows. Missing or
// non-numeric fields degrade to zero; the remaining points still plot.
func seriesValues(rows []Row, key string) []float64 {
	values := make([]float64, len(rows))
	for i, row := range rows {
		if num, ok := numericValue(row[key]); ok {
			values[i] = num
		}
	}
	return values
}

func valueOr(row Row, key string, fallback any) any {
	if v, ok := row[key]; ok && v != nil {
		return v
	}
	return fallback
}
