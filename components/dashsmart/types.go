package dashsmart

import "encoding/json"

// WidgetType tags the widget union. Five chart variants plus a table variant.
type WidgetType string

const (
	TypeArea     WidgetType = "area"
	TypeBar      WidgetType = "bar"
	TypeLine     WidgetType = "line"
	TypePie      WidgetType = "pie"
	TypeComposed WidgetType = "composed"
	TypeTable    WidgetType = "table"
)

// ChartTypes lists the variants that plot series against an axis.
var ChartTypes = []WidgetType{TypeArea, TypeBar, TypeLine, TypePie, TypeComposed}

// IsChart reports whether t is one of the plotted variants.
func (t WidgetType) IsChart() bool {
	switch t {
	case TypeArea, TypeBar, TypeLine, TypePie, TypeComposed:
		return true
	}
	return false
}

// DefaultXAxisKey is the field name charts fall back to when the payload
// leaves xAxisKey unset.
const DefaultXAxisKey = "name"

// Row is a single data record keyed by field name.
type Row map[string]any

// Series binds one plotted metric to a field of each data row.
type Series struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// Format selects the display rule for a table cell.
type Format string

const (
	FormatCurrency Format = "currency"
	FormatNumber   Format = "number"
	FormatPercent  Format = "percent"
	FormatString   Format = "string"
)

// Column describes one table column and how its cells are formatted.
type Column struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Format Format `json:"format,omitempty"`
}

// Trend marks the direction of a KPI movement.
type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

// IconHint nudges the presentation layer toward a glyph for a KPI card.
type IconHint string

const (
	IconMoney    IconHint = "money"
	IconUsers    IconHint = "users"
	IconBox      IconHint = "box"
	IconActivity IconHint = "activity"
	IconTime     IconHint = "time"
	IconChart    IconHint = "chart"
	IconAlert    IconHint = "alert"
)

// KPICard is a single headline metric. Display-only, no cross references.
type KPICard struct {
	ID         string   `json:"id"`
	Label      string   `json:"label"`
	Value      any      `json:"value"`
	SubValue   string   `json:"subValue,omitempty"`
	Trend      Trend    `json:"trend,omitempty"`
	TrendValue string   `json:"trendValue,omitempty"`
	IconHint   IconHint `json:"iconHint,omitempty"`
}

// InsightType classifies a narrative insight.
type InsightType string

const (
	InsightPositive InsightType = "positive"
	InsightNegative InsightType = "negative"
	InsightNeutral  InsightType = "neutral"
)

// Insight is an immutable narrative finding attached to the payload.
type Insight struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Type        InsightType `json:"type"`
}

// WidgetBase carries the fields shared by every widget variant.
type WidgetBase struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Tab         string `json:"tab"`
	Data        []Row  `json:"data"`
}

// Widget is the tagged union over chart and table descriptors. Renderers
// switch exhaustively on the concrete type; there is no optional-field
// sniffing at render time.
type Widget interface {
	json.Marshaler

	// Type returns the variant tag.
	Type() WidgetType
	// Base returns a copy of the shared descriptor fields.
	Base() WidgetBase
	// Clone returns a deep copy safe to mutate independently.
	Clone() Widget
}

// ChartWidget plots one or more series against an x axis.
type ChartWidget struct {
	WidgetBase
	Variant  WidgetType
	XAxisKey string
	Series   []Series
}

// Type implements Widget.
func (w *ChartWidget) Type() WidgetType { return w.Variant }

// Base implements Widget.
func (w *ChartWidget) Base() WidgetBase { return w.WidgetBase }

// Clone implements Widget.
func (w *ChartWidget) Clone() Widget {
	out := *w
	out.Data = cloneRows(w.Data)
	out.Series = append([]Series(nil), w.Series...)
	return &out
}

// MarshalJSON emits the wire shape shared with the analysis service.
func (w *ChartWidget) MarshalJSON() ([]byte, error) {
	return json.Marshal(chartWire{
		ID:          w.ID,
		Title:       w.Title,
		Description: w.Description,
		Tab:         w.Tab,
		Type:        w.Variant,
		XAxisKey:    w.XAxisKey,
		Data:        w.Data,
		Series:      w.Series,
	})
}

// TableWidget lists rows under formatted columns.
type TableWidget struct {
	WidgetBase
	Columns []Column
}

// Type implements Widget.
func (w *TableWidget) Type() WidgetType { return TypeTable }

// Base implements Widget.
func (w *TableWidget) Base() WidgetBase { return w.WidgetBase }

// Clone implements Widget.
func (w *TableWidget) Clone() Widget {
	out := *w
	out.Data = cloneRows(w.Data)
	out.Columns = append([]Column(nil), w.Columns...)
	return &out
}

// MarshalJSON emits the wire shape shared with the analysis service.
func (w *TableWidget) MarshalJSON() ([]byte, error) {
	return json.Marshal(tableWire{
		ID:          w.ID,
		Title:       w.Title,
		Description: w.Description,
		Tab:         w.Tab,
		Type:        TypeTable,
		Data:        w.Data,
		Columns:     w.Columns,
	})
}

type chartWire struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Tab         string     `json:"tab"`
	Type        WidgetType `json:"type"`
	XAxisKey    string     `json:"xAxisKey,omitempty"`
	Data        []Row      `json:"data"`
	Series      []Series   `json:"series"`
}

type tableWire struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Tab         string     `json:"tab"`
	Type        WidgetType `json:"type"`
	Data        []Row      `json:"data"`
	Columns     []Column   `json:"columns"`
}

// Payload is the full decoded analysis result for one session.
type Payload struct {
	Title    string
	Summary  string
	KPIs     []KPICard
	Widgets  []Widget
	Insights []Insight
}

// MarshalJSON emits the wire names used by the analysis contract
// (dataset_title / dataset_summary).
func (p *Payload) MarshalJSON() ([]byte, error) {
	widgets := p.Widgets
	if widgets == nil {
		widgets = []Widget{}
	}
	return json.Marshal(struct {
		Title    string    `json:"dataset_title"`
		Summary  string    `json:"dataset_summary"`
		KPIs     []KPICard `json:"kpis"`
		Widgets  []Widget  `json:"widgets"`
		Insights []Insight `json:"insights"`
	}{p.Title, p.Summary, p.KPIs, widgets, p.Insights})
}

// Clone returns a deep copy of the payload.
func (p *Payload) Clone() *Payload {
	if p == nil {
		return nil
	}
	out := &Payload{
		Title:    p.Title,
		Summary:  p.Summary,
		KPIs:     append([]KPICard(nil), p.KPIs...),
		Insights: append([]Insight(nil), p.Insights...),
	}
	if p.Widgets != nil {
		out.Widgets = make([]Widget, len(p.Widgets))
		for i, w := range p.Widgets {
			out.Widgets[i] = w.Clone()
		}
	}
	return out
}

func cloneRows(rows []Row) []Row {
	if rows == nil {
		return nil
	}
	out := make([]Row, len(rows))
	for i, row := range rows {
		cloned := make(Row, len(row))
		for k, v := range row {
			cloned[k] = v
		}
		out[i] = cloned
	}
	return out
}
