package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/goliatone/go-dashsmart/components/dashsmart"
	"github.com/goliatone/go-dashsmart/pkg/csvsniff"
)

type cli struct {
	Sniff    sniffCmd    `cmd:"" help:"Profile a CSV file: headers, sample rows, inferred column types."`
	Validate validateCmd `cmd:"" help:"Validate a dashboard configuration document and print its contents."`
	Render   renderCmd   `cmd:"" help:"Render a dashboard configuration document to static HTML."`
}

func main() {
	ctx := kong.Parse(&cli{},
		kong.Description("Developer utility for dashboard configuration documents."),
		kong.UsageOnError(),
	)
	err := ctx.Run(context.Background())
	ctx.FatalIfErrorf(err)
}

type sniffCmd struct {
	Path string `arg:"" type:"existingfile" help:"CSV file to profile."`
	JSON bool   `help:"Emit the profile as JSON instead of a table."`
}

func (cmd *sniffCmd) Run(_ context.Context) error {
	content, err := os.ReadFile(cmd.Path)
	if err != nil {
		return fmt.Errorf("dashctl: read %s: %w", cmd.Path, err)
	}
	preview, err := csvsniff.Sniff(string(content))
	if err != nil {
		return err
	}

	if cmd.JSON {
		out := make([]map[string]any, len(preview.Columns))
		for i, col := range preview.Columns {
			out[i] = map[string]any{
				"name":    col.Name,
				"type":    col.Type,
				"samples": col.Samples,
			}
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"headers":   preview.Headers,
			"row_count": preview.RowCount,
			"columns":   out,
		})
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetTitle("%s (%d rows)", filepath.Base(cmd.Path), preview.RowCount)
	tw.AppendHeader(table.Row{"Column", "Type", "Samples"})
	for _, col := range preview.Columns {
		tw.AppendRow(table.Row{col.Name, col.Type, strings.Join(col.Samples, ", ")})
	}
	tw.SetStyle(table.StyleLight)
	tw.Render()
	return nil
}

type validateCmd struct {
	Path string `arg:"" type:"existingfile" help:"JSON document to validate."`
}

func (cmd *validateCmd) Run(_ context.Context) error {
	raw, err := os.ReadFile(cmd.Path)
	if err != nil {
		return fmt.Errorf("dashctl: read %s: %w", cmd.Path, err)
	}
	payload, err := dashsmart.DecodePayload(raw)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", payload.Title)
	if payload.Summary != "" {
		fmt.Printf("  %s\n", payload.Summary)
	}
	fmt.Printf("  kpis: %d, widgets: %d, insights: %d\n", len(payload.KPIs), len(payload.Widgets), len(payload.Insights))

	store := dashsmart.NewStore()
	store.Load(payload)
	for _, tab := range store.Tabs() {
		store.SetActiveTab(tab)
		widgets := store.ActiveWidgets()
		fmt.Printf("  [%s]\n", tab)
		for _, w := range widgets {
			fmt.Printf("    %-8s %s (%d rows)\n", w.Type(), w.Base().Title, len(w.Base().Data))
		}
	}
	return nil
}

type renderCmd struct {
	Path  string `arg:"" type:"existingfile" help:"JSON document to render."`
	Out   string `default:"dashboard.html" help:"Output HTML file."`
	Theme string `help:"Chart theme override."`
}

func (cmd *renderCmd) Run(_ context.Context) error {
	raw, err := os.ReadFile(cmd.Path)
	if err != nil {
		return fmt.Errorf("dashctl: read %s: %w", cmd.Path, err)
	}
	payload, err := dashsmart.DecodePayload(raw)
	if err != nil {
		return err
	}

	store := dashsmart.NewStore()
	store.Load(payload)

	options := []dashsmart.HTMLRendererOption{}
	if cmd.Theme != "" {
		options = append(options, dashsmart.WithTheme(cmd.Theme))
	}
	renderer := dashsmart.NewHTMLRenderer(options...)

	var page strings.Builder
	page.WriteString("<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>")
	page.WriteString(payload.Title)
	page.WriteString("</title></head>\n<body>\n")
	fmt.Fprintf(&page, "<h1>%s</h1>\n<p>%s</p>\n", payload.Title, payload.Summary)

	for _, kpi := range store.KPIs() {
		fmt.Fprintf(&page, "<div class=\"kpi\"><strong>%s</strong>: %s", kpi.Label, dashsmart.FormatValue(kpi.Value, ""))
		if kpi.TrendValue != "" {
			fmt.Fprintf(&page, " (%s %s)", kpi.Trend, kpi.TrendValue)
		}
		page.WriteString("</div>\n")
	}

	for _, tab := range store.Tabs() {
		store.SetActiveTab(tab)
		widgets := store.ActiveWidgets()
		fmt.Fprintf(&page, "<h2>%s</h2>\n", tab)
		for _, w := range widgets {
			plan, err := dashsmart.BuildPlan(w, len(widgets), "")
			if err != nil {
				return err
			}
			html, err := renderer.Render(plan)
			if err != nil {
				return err
			}
			page.WriteString(html)
			page.WriteString("\n")
		}
	}

	for _, insight := range store.Insights() {
		fmt.Fprintf(&page, "<div class=\"insight %s\"><strong>%s</strong> %s</div>\n", insight.Type, insight.Title, insight.Description)
	}
	page.WriteString("</body>\n</html>\n")

	if err := os.WriteFile(cmd.Out, []byte(page.String()), 0o644); err != nil {
		return fmt.Errorf("dashctl: write %s: %w", cmd.Out, err)
	}
	fmt.Printf("wrote %s (%d widgets)\n", cmd.Out, len(payload.Widgets))
	return nil
}
