package dashsmart

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/ettle/strcase"
	"github.com/google/uuid"
)

// DecodePayload validates and normalizes an untrusted analysis payload into
// the typed model. The external model is instructed to return strict JSON,
// but field presence is never trusted: missing series/columns are repaired
// per widget instead of sinking the whole dashboard, and only a structurally
// unusable document (no widgets array, unknown widget tag) is rejected.
func DecodePayload(raw []byte) (*Payload, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if err := payloadValidator.validate(doc); err != nil {
		return nil, err
	}

	var envelope struct {
		DatasetTitle   string            `json:"dataset_title"`
		DatasetSummary string            `json:"dataset_summary"`
		Title          string            `json:"title"`
		Summary        string            `json:"summary"`
		KPIs           []KPICard         `json:"kpis"`
		Widgets        []json.RawMessage `json:"widgets"`
		Insights       []Insight         `json:"insights"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	payload := &Payload{
		Title:    firstNonEmpty(envelope.DatasetTitle, envelope.Title),
		Summary:  firstNonEmpty(envelope.DatasetSummary, envelope.Summary),
		KPIs:     envelope.KPIs,
		Insights: envelope.Insights,
		Widgets:  make([]Widget, 0, len(envelope.Widgets)),
	}

	seen := make(map[string]struct{}, len(envelope.Widgets))
	for i, rawWidget := range envelope.Widgets {
		widget, err := decodeWidget(rawWidget)
		if err != nil {
			return nil, fmt.Errorf("%w: widget %d: %v", ErrInvalidPayload, i, err)
		}
		base := widget.Base()
		if _, dup := seen[base.ID]; base.ID == "" || dup {
			assignWidgetID(widget, uuid.NewString())
		}
		seen[widget.Base().ID] = struct{}{}
		payload.Widgets = append(payload.Widgets, widget)
	}
	return payload, nil
}

type widgetEnvelope struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Tab         string            `json:"tab"`
	Type        WidgetType        `json:"type"`
	XAxisKey    string            `json:"xAxisKey"`
	Data        []json.RawMessage `json:"data"`
	Series      []Series          `json:"series"`
	Columns     []Column          `json:"columns"`
}

func decodeWidget(raw json.RawMessage) (Widget, error) {
	var in widgetEnvelope
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(in.Data))
	for _, rawRow := range in.Data {
		var row Row
		if err := json.Unmarshal(rawRow, &row); err != nil {
			return nil, fmt.Errorf("data row: %v", err)
		}
		rows = append(rows, row)
	}
	base := WidgetBase{
		ID:          in.ID,
		Title:       in.Title,
		Description: in.Description,
		Tab:         in.Tab,
		Data:        rows,
	}

	switch {
	case in.Type == TypeTable:
		columns := keyedColumns(in.Columns)
		if len(columns) == 0 && len(in.Data) > 0 {
			columns = synthesizeColumnsWire(in.Data[0])
		}
		return &TableWidget{WidgetBase: base, Columns: columns}, nil
	case in.Type.IsChart():
		// Keyless series can never resolve a value, so they are
		// dropped rather than rendered as empty lines. A widget left
		// with none still loads and lists in its tab, the customizer
		// can add series later.
		series := keyedSeries(in.Series)
		xAxisKey := in.XAxisKey
		if xAxisKey == "" {
			xAxisKey = DefaultXAxisKey
		}
		return &ChartWidget{
			WidgetBase: base,
			Variant:    in.Type,
			XAxisKey:   xAxisKey,
			Series:     series,
		}, nil
	default:
		return nil, fmt.Errorf("unknown widget type %q", in.Type)
	}
}

func keyedSeries(in []Series) []Series {
	out := make([]Series, 0, len(in))
	for _, s := range in {
		if s.Key == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

func keyedColumns(in []Column) []Column {
	out := make([]Column, 0, len(in))
	for _, c := range in {
		if c.Key == "" {
			continue
		}
		out = append(out, c)
	}
	return out
}

// synthesizeColumnsWire infers table columns from the first row, preserving
// the field order of the wire document.
func synthesizeColumnsWire(rawRow json.RawMessage) []Column {
	keys, err := jsonObjectKeys(rawRow)
	if err != nil {
		return nil
	}
	columns := make([]Column, 0, len(keys))
	for _, key := range keys {
		columns = append(columns, Column{
			Key:    key,
			Label:  humanizeLabel(key),
			Format: FormatString,
		})
	}
	return columns
}

// SynthesizeColumns infers table columns from an in-memory row. Map rows
// have no field order, so keys are sorted for determinism.
func SynthesizeColumns(row Row) []Column {
	keys := fieldKeys(row)
	columns := make([]Column, 0, len(keys))
	for _, key := range keys {
		columns = append(columns, Column{
			Key:    key,
			Label:  humanizeLabel(key),
			Format: FormatString,
		})
	}
	return columns
}

// jsonObjectKeys returns the top-level keys of a JSON object in document
// order.
func jsonObjectKeys(raw json.RawMessage) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("not a JSON object")
	}
	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return keys, err
		}
		key, ok := tok.(string)
		if !ok {
			return keys, fmt.Errorf("unexpected token %v", tok)
		}
		keys = append(keys, key)
		if err := skipValue(dec); err != nil {
			return keys, err
		}
	}
	return keys, nil
}

func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); ok && (delim == '{' || delim == '[') {
		depth := 1
		for depth > 0 {
			tok, err := dec.Token()
			if err != nil {
				return err
			}
			if d, ok := tok.(json.Delim); ok {
				switch d {
				case '{', '[':
					depth++
				case '}', ']':
					depth--
				}
			}
		}
	}
	return nil
}

func assignWidgetID(w Widget, id string) {
	switch widget := w.(type) {
	case *ChartWidget:
		widget.ID = id
	case *TableWidget:
		widget.ID = id
	}
}

// humanizeLabel turns a wire field name into a display label,
// e.g. "unit_price" becomes "Unit Price".
func humanizeLabel(key string) string {
	if key == "" {
		return key
	}
	return strcase.ToCase(key, strcase.TitleCase, ' ')
}

// fieldKeys returns the row's field names in sorted order.
func fieldKeys(row Row) []string {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// isNumericValue reports whether v is a number or a string that parses as
// one, the loose "numeric-looking" test used when synthesizing series.
func isNumericValue(v any) bool {
	switch val := v.(type) {
	case float64, float32, int, int64, json.Number:
		return true
	case string:
		_, err := strconv.ParseFloat(val, 64)
		return err == nil
	}
	return false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
