package dashsmart

// Edit operations backing the widget customizer. Every operation returns a
// new widget value and never mutates its input; callers pass the result to
// Store.UpdateWidget. Requests that would produce an unrenderable widget
// (removing the last series of a chart) are silent no-ops.

// SeriesField selects which series attribute UpdateSeriesField changes.
type SeriesField string

const (
	SeriesKey   SeriesField = "key"
	SeriesName  SeriesField = "name"
	SeriesColor SeriesField = "color"
)

// ChangeType swaps a widget's variant tag. Converting a table to a chart
// synthesizes a single series from the first numeric-looking field of the
// sample row (or the first field when none is numeric); converting a chart
// to a table synthesizes columns from the first data row.
func ChangeType(w Widget, newType WidgetType) Widget {
	if w == nil {
		return nil
	}
	if w.Type() == newType {
		return w.Clone()
	}
	base := cloneBase(w)
	switch {
	case newType == TypeTable:
		return &TableWidget{WidgetBase: base, Columns: SynthesizeColumns(firstRow(base))}
	case newType.IsChart():
		chart := &ChartWidget{
			WidgetBase: base,
			Variant:    newType,
			XAxisKey:   DefaultXAxisKey,
		}
		if src, ok := w.(*ChartWidget); ok {
			chart.XAxisKey = src.XAxisKey
			chart.Series = append([]Series(nil), src.Series...)
		}
		if len(chart.Series) == 0 {
			chart.Series = []Series{synthesizeSeries(firstRow(base), 0)}
		}
		return chart
	default:
		return w.Clone()
	}
}

// ChangeXAxis rebinds a chart's x axis to another data field. Tables have
// no axis; for them the call is a no-op.
func ChangeXAxis(w Widget, field string) Widget {
	chart, ok := w.Clone().(*ChartWidget)
	if !ok || field == "" {
		return w.Clone()
	}
	chart.XAxisKey = field
	return chart
}

// AddSeries appends a new series bound to the first numeric-looking field of
// the sample row, colored with the next palette entry for the current
// series count.
func AddSeries(w Widget) Widget {
	chart, ok := w.Clone().(*ChartWidget)
	if !ok {
		return w.Clone()
	}
	chart.Series = append(chart.Series, synthesizeSeries(firstRow(chart.WidgetBase), len(chart.Series)))
	return chart
}

// RemoveSeries drops the series at index. A chart must always retain at
// least one series, so removing the last one (or an out-of-range index) is
// a no-op.
func RemoveSeries(w Widget, index int) Widget {
	chart, ok := w.Clone().(*ChartWidget)
	if !ok {
		return w.Clone()
	}
	if len(chart.Series) <= 1 || index < 0 || index >= len(chart.Series) {
		return chart
	}
	chart.Series = append(chart.Series[:index:index], chart.Series[index+1:]...)
	return chart
}

// UpdateSeriesField rewrites one attribute of the series at index.
func UpdateSeriesField(w Widget, index int, field SeriesField, value string) Widget {
	chart, ok := w.Clone().(*ChartWidget)
	if !ok {
		return w.Clone()
	}
	if index < 0 || index >= len(chart.Series) {
		return chart
	}
	switch field {
	case SeriesKey:
		chart.Series[index].Key = value
	case SeriesName:
		chart.Series[index].Name = value
	case SeriesColor:
		chart.Series[index].Color = value
	}
	return chart
}

// DataFields returns the field names available for axis/series binding,
// taken from the widget's sample row.
func DataFields(w Widget) []string {
	if w == nil {
		return nil
	}
	return fieldKeys(firstRow(w.Base()))
}

func synthesizeSeries(row Row, position int) Series {
	key := firstNumericField(row)
	return Series{
		Key:   key,
		Name:  key,
		Color: PresetColor(position),
	}
}

// firstNumericField scans the row's fields in deterministic order and
// returns the first whose value looks numeric, or the first field at all
// when none does.
func firstNumericField(row Row) string {
	keys := fieldKeys(row)
	for _, k := range keys {
		if isNumericValue(row[k]) {
			return k
		}
	}
	if len(keys) > 0 {
		return keys[0]
	}
	return ""
}

func firstRow(base WidgetBase) Row {
	if len(base.Data) == 0 {
		return nil
	}
	return base.Data[0]
}

func cloneBase(w Widget) WidgetBase {
	base := w.Base()
	base.Data = cloneRows(base.Data)
	return base
}
