package dashsmart

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-dashsmart/pkg/csvsniff"
)

// Step identifies where a session is in the upload lifecycle.
type Step string

const (
	StepUpload    Step = "upload"
	StepPreview   Step = "preview"
	StepDashboard Step = "dashboard"
)

var (
	// ErrInvalidFile is returned when an upload is not a usable CSV.
	ErrInvalidFile = errors.New("dashsmart: invalid file")
	// ErrAnalysisInFlight is returned when Analyze is called while a
	// previous call has not finished.
	ErrAnalysisInFlight = errors.New("dashsmart: analysis in flight")
)

// Analyzer produces a dashboard configuration document for a CSV. The
// returned bytes must decode through DecodePayload.
type Analyzer interface {
	Analyze(ctx context.Context, csvText string) ([]byte, error)
}

// Session drives one upload through preview, analysis, and the resulting
// dashboard. It owns the store it loads into.
type Session struct {
	mu       sync.Mutex
	analyzer Analyzer
	store    *Store
	logger   *logrus.Logger

	step     Step
	fileName string
	csvText  string
	preview  csvsniff.Preview
	loading  bool
}

// SessionOption customizes session construction.
type SessionOption func(*Session)

// WithSessionStore supplies the store the session loads into.
func WithSessionStore(store *Store) SessionOption {
	return func(s *Session) {
		if store != nil {
			s.store = store
		}
	}
}

// WithSessionLogger attaches a logger for analysis lifecycle events.
func WithSessionLogger(logger *logrus.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSession builds a session around the given analyzer.
func NewSession(analyzer Analyzer, options ...SessionOption) *Session {
	s := &Session{
		analyzer: analyzer,
		store:    NewStore(),
		logger:   logrus.New(),
		step:     StepUpload,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// LoadFile accepts an uploaded CSV and moves the session to the preview
// step. A file qualifies when its media type is text/csv or its name ends
// in .csv, and it has content. Any previously loaded dashboard, including
// an in-progress edit, is discarded.
func (s *Session) LoadFile(name, mediaType string, content []byte) error {
	if !isCSVFile(name, mediaType) {
		return fmt.Errorf("%w: %q is not a CSV file", ErrInvalidFile, name)
	}
	if len(content) == 0 {
		return fmt.Errorf("%w: %q is empty", ErrInvalidFile, name)
	}

	preview, err := csvsniff.Sniff(string(content))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading {
		return ErrAnalysisInFlight
	}
	s.fileName = name
	s.csvText = string(content)
	s.preview = preview
	s.step = StepPreview
	s.store.Reset()
	return nil
}

// Analyze sends the loaded CSV to the analyzer and loads the resulting
// dashboard. Calls made while a run is in flight fail immediately with
// ErrAnalysisInFlight instead of queueing.
func (s *Session) Analyze(ctx context.Context) error {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return ErrAnalysisInFlight
	}
	if s.step == StepUpload || s.csvText == "" {
		s.mu.Unlock()
		return fmt.Errorf("%w: no file loaded", ErrInvalidFile)
	}
	s.loading = true
	csvText := s.csvText
	fileName := s.fileName
	s.mu.Unlock()

	s.logger.WithField("file", fileName).Info("starting analysis")
	raw, err := s.analyzer.Analyze(ctx, csvText)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.logger.WithError(err).Error("analysis failed")
		return err
	}

	payload, err := DecodePayload(raw)
	if err != nil {
		s.logger.WithError(err).Error("analysis produced an invalid dashboard")
		return err
	}
	s.store.Load(payload)
	s.step = StepDashboard
	s.logger.WithFields(logrus.Fields{
		"file":    fileName,
		"widgets": len(payload.Widgets),
	}).Info("dashboard loaded")
	return nil
}

// Reset returns the session to the upload step and clears all state.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading {
		return
	}
	s.fileName = ""
	s.csvText = ""
	s.preview = csvsniff.Preview{}
	s.step = StepUpload
	s.store.Reset()
}

// Step reports the current lifecycle step.
func (s *Session) Step() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// Loading reports whether an analysis call is in flight.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// FileName returns the name of the loaded file, if any.
func (s *Session) FileName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fileName
}

// Preview returns the sniffed column profile for the loaded file.
func (s *Session) Preview() csvsniff.Preview {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preview
}

// Store exposes the dashboard store the session loads into.
func (s *Session) Store() *Store {
	return s.store
}

func isCSVFile(name, mediaType string) bool {
	if mediaType == "text/csv" {
		return true
	}
	return strings.HasSuffix(strings.ToLower(name), ".csv")
}
