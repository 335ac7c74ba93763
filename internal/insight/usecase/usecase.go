package usecase

import (
	"context"

	"github.com/CHANDANgig/Personalized-To-do-list-app/pkg/ai"
)

// Status is the coach panel lifecycle: Idle -> Loading -> Ready.
// A failed remote call still lands in Ready with the fallback payload;
// there is no distinct error state.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
)

// Kind selects which collection feeds the snapshot.
const (
	KindTask  = "task"
	KindHabit = "habit"
)

// PanelState is what the coach panel renders.
type PanelState struct {
	Status   Status       `json:"status"`
	Insights *ai.Insights `json:"insights,omitempty"`
	Fallback bool         `json:"fallback"` // true when the canned payload was substituted
}

// InsightUsecase drives the AI coach panel.
type InsightUsecase interface {
	// Get returns the current panel state without touching the remote.
	Get(userID string) PanelState

	// RequestNow synchronously produces insights for the current
	// collection: onboarding payload when the collection is empty,
	// fallback payload on any provider failure. It never returns an
	// error and never blocks past the configured timeout.
	RequestNow(ctx context.Context, userID, kind string) *ai.Insights

	// Refresh queues a background generation; completion is announced
	// over SSE. Stale results (older than the latest Refresh or any
	// Dismiss) are dropped on arrival.
	Refresh(userID, kind string)

	// Dismiss clears the panel; a result resolving afterwards is a no-op.
	Dismiss(userID string)

	// Stop drains the background workers.
	Stop()
}

// Notifier pushes panel updates to connected clients.
type Notifier interface {
	Publish(userID, name string, payload interface{})
}
