package dashsmart

import (
	"context"
	"sync"
)

// Store owns the mutable widget list for one dashboard session. Tabs and
// per-tab widget sets are pure projections of the current list, never stored
// redundantly, so they cannot go stale after an edit moves a widget between
// tabs.
//
// Edit state is global rather than per-tab: switching tabs while a widget is
// in edit mode keeps the edit target attached to the now-hidden widget. That
// mirrors the customizer behavior this store backs and is intentional.
type Store struct {
	mu         sync.RWMutex
	title      string
	summary    string
	kpis       []KPICard
	widgets    []Widget
	insights   []Insight
	activeTab  string
	editTarget string
	telemetry  Telemetry
}

// StoreOption customizes a Store.
type StoreOption func(*Store)

// WithTelemetry records load/edit events against the provided sink.
func WithTelemetry(t Telemetry) StoreOption {
	return func(s *Store) {
		s.telemetry = normalizeTelemetry(t)
	}
}

// NewStore builds an empty session store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{telemetry: noopTelemetry{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the entire session state with a new payload. The swap is
// atomic: the prior widget list, active tab, and edit target are discarded
// together, never merged.
func (s *Store) Load(payload *Payload) {
	cloned := payload.Clone()
	s.mu.Lock()
	if cloned == nil {
		cloned = &Payload{}
	}
	s.title = cloned.Title
	s.summary = cloned.Summary
	s.kpis = cloned.KPIs
	s.widgets = cloned.Widgets
	s.insights = cloned.Insights
	s.editTarget = ""
	s.activeTab = ""
	if tabs := deriveTabs(s.widgets); len(tabs) > 0 {
		s.activeTab = tabs[0]
	}
	s.mu.Unlock()
	s.telemetry.Record(context.Background(), EventStoreLoad, map[string]any{
		"widgets": len(cloned.Widgets),
	})
}

// Reset discards all session state.
func (s *Store) Reset() {
	s.Load(nil)
}

// Title returns the dashboard title.
func (s *Store) Title() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.title
}

// Summary returns the dashboard executive summary.
func (s *Store) Summary() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.summary
}

// KPIs returns the headline metric cards.
func (s *Store) KPIs() []KPICard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]KPICard(nil), s.kpis...)
}

// Insights returns the narrative findings.
func (s *Store) Insights() []Insight {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Insight(nil), s.insights...)
}

// Widgets returns deep copies of every widget in payload order.
func (s *Store) Widgets() []Widget {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneWidgets(s.widgets)
}

// Widget returns a copy of the widget with the given id.
func (s *Store) Widget(id string) (Widget, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, w := range s.widgets {
		if w.Base().ID == id {
			return w.Clone(), true
		}
	}
	return nil, false
}

// Tabs returns the distinct tab names in first-occurrence order.
func (s *Store) Tabs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return deriveTabs(s.widgets)
}

// ActiveTab returns the currently selected tab.
func (s *Store) ActiveTab() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeTab
}

// SetActiveTab selects a tab. Unknown tabs are ignored. The edit target is
// left untouched, even when the edited widget lives on another tab.
func (s *Store) SetActiveTab(tab string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, known := range deriveTabs(s.widgets) {
		if known == tab {
			s.activeTab = tab
			return
		}
	}
}

// ActiveWidgets returns copies of the widgets on the active tab, preserving
// payload order.
func (s *Store) ActiveWidgets() []Widget {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Widget
	for _, w := range s.widgets {
		if w.Base().Tab == s.activeTab {
			out = append(out, w.Clone())
		}
	}
	return out
}

// UpdateWidget replaces the stored widget whose id matches the update.
// Identity is immutable: an id that matches no widget makes the call a
// silent no-op, the chosen failure policy for purely local edits.
func (s *Store) UpdateWidget(updated Widget) {
	if updated == nil {
		return
	}
	id := updated.Base().ID
	s.mu.Lock()
	replaced := false
	for i, w := range s.widgets {
		if w.Base().ID == id {
			s.widgets[i] = updated.Clone()
			replaced = true
			break
		}
	}
	s.mu.Unlock()
	if replaced {
		s.telemetry.Record(context.Background(), EventWidgetUpdate, map[string]any{
			"widget_id": id,
		})
	}
}

// EditTarget returns the id of the widget in edit mode, or "" when none is.
func (s *Store) EditTarget() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.editTarget
}

// SetEditTarget puts a single widget into edit mode, or clears edit mode
// when id is empty. At most one widget can be edited at a time; ids that
// match no widget are ignored.
func (s *Store) SetEditTarget(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == "" {
		s.editTarget = ""
		return
	}
	for _, w := range s.widgets {
		if w.Base().ID == id {
			s.editTarget = id
			return
		}
	}
}

func deriveTabs(widgets []Widget) []string {
	var tabs []string
	seen := make(map[string]struct{}, len(widgets))
	for _, w := range widgets {
		tab := w.Base().Tab
		if _, ok := seen[tab]; ok {
			continue
		}
		seen[tab] = struct{}{}
		tabs = append(tabs, tab)
	}
	return tabs
}

func cloneWidgets(widgets []Widget) []Widget {
	if widgets == nil {
		return nil
	}
	out := make([]Widget, len(widgets))
	for i, w := range widgets {
		out[i] = w.Clone()
	}
	return out
}
