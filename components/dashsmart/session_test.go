package dashsmart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = "month,sales,region\nJan,100,North\nFeb,130,South\n"

type stubAnalyzer struct {
	document []byte
	err      error
	started  chan struct{}
	release  chan struct{}
}

func (a *stubAnalyzer) Analyze(ctx context.Context, csvText string) ([]byte, error) {
	if a.started != nil {
		close(a.started)
	}
	if a.release != nil {
		select {
		case <-a.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if a.err != nil {
		return nil, a.err
	}
	return a.document, nil
}

func TestSessionLoadFileValidation(t *testing.T) {
	session := NewSession(&stubAnalyzer{})

	err := session.LoadFile("report.txt", "text/plain", []byte(sampleCSV))
	assert.ErrorIs(t, err, ErrInvalidFile)

	err = session.LoadFile("report.csv", "", nil)
	assert.ErrorIs(t, err, ErrInvalidFile)

	// Either the media type or the extension qualifies a file.
	require.NoError(t, session.LoadFile("report", "text/csv", []byte(sampleCSV)))
	require.NoError(t, session.LoadFile("report.csv", "application/octet-stream", []byte(sampleCSV)))
	assert.Equal(t, StepPreview, session.Step())
}

func TestSessionPreview(t *testing.T) {
	session := NewSession(&stubAnalyzer{})
	require.NoError(t, session.LoadFile("sales.csv", "text/csv", []byte(sampleCSV)))

	preview := session.Preview()
	assert.Equal(t, []string{"month", "sales", "region"}, preview.Headers)
	assert.Equal(t, 2, preview.RowCount)
	require.Len(t, preview.Columns, 3)
	assert.Equal(t, "sales", preview.Columns[1].Name)
	assert.EqualValues(t, "Numerical", preview.Columns[1].Type)
}

func TestSessionAnalyze(t *testing.T) {
	analyzer := &stubAnalyzer{document: []byte(samplePayloadJSON)}
	session := NewSession(analyzer)
	require.NoError(t, session.LoadFile("sales.csv", "text/csv", []byte(sampleCSV)))

	require.NoError(t, session.Analyze(context.Background()))
	assert.Equal(t, StepDashboard, session.Step())
	assert.Equal(t, "Sales Overview", session.Store().Title())
	assert.Len(t, session.Store().Widgets(), 2)
}

func TestSessionAnalyzeWithoutFile(t *testing.T) {
	session := NewSession(&stubAnalyzer{document: []byte(samplePayloadJSON)})
	assert.ErrorIs(t, session.Analyze(context.Background()), ErrInvalidFile)
}

func TestSessionAnalyzeRejectsInvalidDocument(t *testing.T) {
	session := NewSession(&stubAnalyzer{document: []byte(`{"no": "widgets"}`)})
	require.NoError(t, session.LoadFile("sales.csv", "text/csv", []byte(sampleCSV)))

	err := session.Analyze(context.Background())
	assert.ErrorIs(t, err, ErrInvalidPayload)
	assert.Equal(t, StepPreview, session.Step())
}

func TestSessionAnalyzeGuardsReentry(t *testing.T) {
	analyzer := &stubAnalyzer{
		document: []byte(samplePayloadJSON),
		started:  make(chan struct{}),
		release:  make(chan struct{}),
	}
	session := NewSession(analyzer)
	require.NoError(t, session.LoadFile("sales.csv", "text/csv", []byte(sampleCSV)))

	done := make(chan error, 1)
	go func() {
		done <- session.Analyze(context.Background())
	}()

	<-analyzer.started
	assert.True(t, session.Loading())
	assert.ErrorIs(t, session.Analyze(context.Background()), ErrAnalysisInFlight)

	close(analyzer.release)
	require.NoError(t, <-done)
	assert.False(t, session.Loading())
}

func TestSessionNewFileDiscardsDashboard(t *testing.T) {
	session := NewSession(&stubAnalyzer{document: []byte(samplePayloadJSON)})
	require.NoError(t, session.LoadFile("sales.csv", "text/csv", []byte(sampleCSV)))
	require.NoError(t, session.Analyze(context.Background()))

	session.Store().SetEditTarget(session.Store().Widgets()[0].Base().ID)

	require.NoError(t, session.LoadFile("other.csv", "text/csv", []byte(sampleCSV)))
	assert.Equal(t, StepPreview, session.Step())
	assert.Empty(t, session.Store().EditTarget())
	assert.Empty(t, session.Store().Widgets())
}

func TestSessionReset(t *testing.T) {
	session := NewSession(&stubAnalyzer{document: []byte(samplePayloadJSON)})
	require.NoError(t, session.LoadFile("sales.csv", "text/csv", []byte(sampleCSV)))
	require.NoError(t, session.Analyze(context.Background()))

	session.Reset()
	assert.Equal(t, StepUpload, session.Step())
	assert.Empty(t, session.FileName())
	assert.Empty(t, session.Store().Widgets())
}
