package dashsmart

import "context"

// Store lifecycle events emitted through Telemetry.
const (
	// EventStoreLoad fires when a decoded payload replaces the store
	// state, carrying widget and tab counts.
	EventStoreLoad = "dashsmart.store.load"
	// EventWidgetUpdate fires when a customizer edit lands on a widget.
	EventWidgetUpdate = "dashsmart.widget.update"
)

// Telemetry receives store lifecycle events. The store calls Record
// outside its lock, so implementations may read back from the store
// but must be safe for concurrent use.
type Telemetry interface {
	Record(ctx context.Context, event string, payload map[string]any)
}

type noopTelemetry struct{}

func (noopTelemetry) Record(context.Context, string, map[string]any) {}

func normalizeTelemetry(t Telemetry) Telemetry {
	if t == nil {
		return noopTelemetry{}
	}
	return t
}
