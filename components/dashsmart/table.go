package dashsmart

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
)

// renderTableHTML renders a table plan as HTML. Cells arrive already
// formatted, so this is pure layout.
func renderTableHTML(plan RenderPlan) (string, error) {
	if plan.Table == nil {
		return "", fmt.Errorf("dashsmart: render plan has no table")
	}
	tw := newTableWriter(plan)
	return tw.RenderHTML(), nil
}

// RenderTableText renders a table plan for terminal output.
func RenderTableText(plan RenderPlan) (string, error) {
	if plan.Table == nil {
		return "", fmt.Errorf("dashsmart: render plan has no table")
	}
	tw := newTableWriter(plan)
	return tw.Render(), nil
}

func newTableWriter(plan RenderPlan) table.Writer {
	tw := table.NewWriter()
	tw.SetTitle("%s", plan.Title)
	tw.AppendHeader(toTableRow(plan.Table.Headers))
	for _, cells := range plan.Table.Rows {
		tw.AppendRow(toTableRow(cells))
	}
	tw.SetStyle(table.StyleLight)
	return tw
}

func toTableRow(cells []string) table.Row {
	row := make(table.Row, len(cells))
	for i, cell := range cells {
		row[i] = cell
	}
	return row
}
