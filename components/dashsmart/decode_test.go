package dashsmart

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePayloadJSON = `{
  "dataset_title": "Sales Overview",
  "dataset_summary": "Revenue is trending up across regions.",
  "kpis": [
    {"id": "kpi_1", "label": "Total Revenue", "value": "$1.2M", "trend": "up", "trendValue": "+8%", "iconHint": "money"}
  ],
  "widgets": [
    {
      "id": "w1",
      "tab": "Overview",
      "title": "Revenue Trend",
      "type": "area",
      "xAxisKey": "month",
      "data": [{"month": "Jan", "sales": 100}, {"month": "Feb", "sales": 130}],
      "series": [{"key": "sales", "name": "Sales", "color": "#3B82F6"}]
    },
    {
      "id": "w2",
      "tab": "Details",
      "title": "Top Products",
      "type": "table",
      "data": [{"product": "Widget A", "revenue": 5000, "unit_price": 9.5}]
    }
  ],
  "insights": [
    {"title": "Strong Q1", "description": "January outperformed forecast.", "type": "positive"}
  ]
}`

func TestDecodePayload(t *testing.T) {
	payload, err := DecodePayload([]byte(samplePayloadJSON))
	require.NoError(t, err)

	assert.Equal(t, "Sales Overview", payload.Title)
	assert.Equal(t, "Revenue is trending up across regions.", payload.Summary)
	require.Len(t, payload.KPIs, 1)
	assert.Equal(t, TrendUp, payload.KPIs[0].Trend)
	require.Len(t, payload.Widgets, 2)
	require.Len(t, payload.Insights, 1)

	chart, ok := payload.Widgets[0].(*ChartWidget)
	require.True(t, ok)
	assert.Equal(t, TypeArea, chart.Variant)
	assert.Equal(t, "month", chart.XAxisKey)
	require.Len(t, chart.Series, 1)
	assert.Equal(t, "sales", chart.Series[0].Key)
	require.Len(t, chart.Data, 2)
}

func TestDecodePayloadSynthesizesTableColumns(t *testing.T) {
	payload, err := DecodePayload([]byte(samplePayloadJSON))
	require.NoError(t, err)

	table, ok := payload.Widgets[1].(*TableWidget)
	require.True(t, ok)
	// Columns come from the first row, in document order.
	require.Len(t, table.Columns, 3)
	assert.Equal(t, "product", table.Columns[0].Key)
	assert.Equal(t, "Product", table.Columns[0].Label)
	assert.Equal(t, "revenue", table.Columns[1].Key)
	assert.Equal(t, "unit_price", table.Columns[2].Key)
	assert.Equal(t, "Unit Price", table.Columns[2].Label)
}

func TestDecodePayloadChartDefaults(t *testing.T) {
	doc := `{"widgets": [{"id": "w1", "tab": "Main", "title": "Bars", "type": "bar", "data": [{"name": "A", "count": 3}]}]}`
	payload, err := DecodePayload([]byte(doc))
	require.NoError(t, err)

	chart, ok := payload.Widgets[0].(*ChartWidget)
	require.True(t, ok)
	assert.Equal(t, DefaultXAxisKey, chart.XAxisKey)
	require.NotNil(t, chart.Series)
	assert.Empty(t, chart.Series)
}

func TestDecodePayloadRejectsBrokenDocuments(t *testing.T) {
	cases := map[string]string{
		"not json":        `{"widgets": [`,
		"missing widgets": `{"dataset_title": "x"}`,
		"unknown type":    `{"widgets": [{"id": "w", "type": "gauge"}]}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodePayload([]byte(doc))
			assert.ErrorIs(t, err, ErrInvalidPayload)
		})
	}
}

func TestDecodePayloadToleratesOffVocabularyValues(t *testing.T) {
	doc := `{
	  "widgets": [{
	    "id": "sales", "type": "bar", "tab": "Overview",
	    "data": [{"name": "Q1", "revenue": 100}],
	    "series": [
	      {"key": "revenue", "name": "Revenue"},
	      {"name": "No key, never resolves"}
	    ]
	  }],
	  "kpis": [{"id": "k", "label": "Momentum", "trend": "sideways", "iconHint": "rocket"}],
	  "insights": [{"title": "Mixed", "type": "ambivalent"}]
	}`
	payload, err := DecodePayload([]byte(doc))
	require.NoError(t, err)
	require.Len(t, payload.Widgets, 1)

	chart, ok := payload.Widgets[0].(*ChartWidget)
	require.True(t, ok)
	require.Len(t, chart.Series, 1, "keyless series should be dropped")
	assert.Equal(t, "revenue", chart.Series[0].Key)

	require.Len(t, payload.KPIs, 1)
	assert.Equal(t, Trend("sideways"), payload.KPIs[0].Trend)
	assert.Equal(t, IconHint("rocket"), payload.KPIs[0].IconHint)
	require.Len(t, payload.Insights, 1)
	assert.Equal(t, InsightType("ambivalent"), payload.Insights[0].Type)
}

func TestDecodePayloadRepairsWidgetIDs(t *testing.T) {
	doc := `{"widgets": [
	  {"id": "dup", "tab": "A", "title": "One", "type": "line", "data": []},
	  {"id": "dup", "tab": "A", "title": "Two", "type": "line", "data": []},
	  {"tab": "A", "title": "Three", "type": "line", "data": []}
	]}`
	payload, err := DecodePayload([]byte(doc))
	require.NoError(t, err)
	require.Len(t, payload.Widgets, 3)

	seen := map[string]bool{}
	for _, w := range payload.Widgets {
		id := w.Base().ID
		assert.NotEmpty(t, id)
		assert.False(t, seen[id], "duplicate id %q survived decode", id)
		seen[id] = true
	}
	assert.Equal(t, "dup", payload.Widgets[0].Base().ID)
}

func TestPayloadRoundTrip(t *testing.T) {
	payload, err := DecodePayload([]byte(samplePayloadJSON))
	require.NoError(t, err)

	encoded, err := json.Marshal(payload)
	require.NoError(t, err)

	decoded, err := DecodePayload(encoded)
	require.NoError(t, err)

	assert.Equal(t, payload.Title, decoded.Title)
	assert.Equal(t, payload.Summary, decoded.Summary)
	assert.Equal(t, payload.KPIs, decoded.KPIs)
	assert.Equal(t, payload.Insights, decoded.Insights)
	require.Len(t, decoded.Widgets, len(payload.Widgets))
	for i := range payload.Widgets {
		assert.Equal(t, payload.Widgets[i].Type(), decoded.Widgets[i].Type())
		assert.Equal(t, payload.Widgets[i].Base(), decoded.Widgets[i].Base())
	}
}

func TestSynthesizeColumnsSortsKeys(t *testing.T) {
	columns := SynthesizeColumns(Row{"zeta": 1, "alpha": "x"})
	require.Len(t, columns, 2)
	assert.Equal(t, "alpha", columns[0].Key)
	assert.Equal(t, "Alpha", columns[0].Label)
	assert.Equal(t, "zeta", columns[1].Key)
}
