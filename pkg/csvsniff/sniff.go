package csvsniff

import (
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/araddon/dateparse"
)

// ErrEmptyInput is returned when the CSV has no header row.
var ErrEmptyInput = errors.New("csvsniff: empty input")

const (
	maxSampleRows    = 5
	maxColumnSamples = 3
)

// ColumnType classifies the values observed in one column.
type ColumnType string

const (
	TypeNumerical   ColumnType = "Numerical"
	TypeDateTime    ColumnType = "Date/Time"
	TypeCategorical ColumnType = "Categorical"
)

// ColumnProfile describes a single column: its header, inferred type, and
// a few sample values.
type ColumnProfile struct {
	Name    string
	Type    ColumnType
	Samples []string
}

// Preview summarizes a CSV for display before analysis.
type Preview struct {
	Headers    []string
	SampleRows [][]string
	RowCount   int
	Columns    []ColumnProfile
}

// Sniff parses CSV text and profiles each column. A column is Numerical
// when every non-empty value parses as a number, Date/Time when every
// non-empty value parses as a date and the column is not numeric, and
// Categorical otherwise. Empty columns are Categorical.
func Sniff(csvText string) (Preview, error) {
	reader := csv.NewReader(strings.NewReader(csvText))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return Preview{}, fmt.Errorf("csvsniff: parse: %w", err)
	}
	if len(records) == 0 {
		return Preview{}, ErrEmptyInput
	}

	headers := records[0]
	rows := records[1:]

	preview := Preview{
		Headers:  append([]string(nil), headers...),
		RowCount: len(rows),
		Columns:  make([]ColumnProfile, len(headers)),
	}
	for _, row := range rows {
		if len(preview.SampleRows) == maxSampleRows {
			break
		}
		preview.SampleRows = append(preview.SampleRows, append([]string(nil), row...))
	}

	// Types are inferred from the sample rows only, matching what the
	// preview actually shows.
	for i, header := range headers {
		values := columnValues(preview.SampleRows, i)
		preview.Columns[i] = ColumnProfile{
			Name:    header,
			Type:    inferType(values),
			Samples: sampleValues(values),
		}
	}
	return preview, nil
}

func columnValues(rows [][]string, index int) []string {
	var values []string
	for _, row := range rows {
		if index >= len(row) {
			continue
		}
		value := strings.TrimSpace(row[index])
		if value == "" {
			continue
		}
		values = append(values, value)
	}
	return values
}

func inferType(values []string) ColumnType {
	if len(values) == 0 {
		return TypeCategorical
	}
	numeric := true
	dates := true
	for _, value := range values {
		if !isNumeric(value) {
			numeric = false
		}
		if !isDate(value) {
			dates = false
		}
		if !numeric && !dates {
			return TypeCategorical
		}
	}
	if numeric {
		return TypeNumerical
	}
	if dates {
		return TypeDateTime
	}
	return TypeCategorical
}

func sampleValues(values []string) []string {
	if len(values) > maxColumnSamples {
		values = values[:maxColumnSamples]
	}
	return append([]string(nil), values...)
}

func isNumeric(value string) bool {
	_, err := strconv.ParseFloat(value, 64)
	return err == nil
}

func isDate(value string) bool {
	_, err := dateparse.ParseAny(value)
	return err == nil
}
