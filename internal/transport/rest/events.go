package rest

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/casedesk/casedesk-backend/internal/events"
)

// eventBroker is the subscription side of the update broker.
type eventBroker interface {
	Subscribe(h events.Handler) *events.Subscription
}

// EventsHandler streams case change notifications over SSE so the case view
// can refresh when the catalog view attaches configs (and vice versa).
type EventsHandler struct {
	broker eventBroker
	log    *slog.Logger
}

// NewEventsHandler creates an EventsHandler.
func NewEventsHandler(broker eventBroker, logger *slog.Logger) *EventsHandler {
	return &EventsHandler{broker: broker, log: logger.With("handler", "events")}
}

// Stream handles GET /api/v1/cases/{caseID}/events.
// The broker delivers every event to every subscriber; filtering down to the
// requested case happens here. Events published before the stream opened are
// never replayed.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	caseID, ok := caseIDFromPath(w, r)
	if !ok {
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	// Broker handlers run on the publisher's goroutine and must not block;
	// hand events to the writer loop through a buffered channel. A client
	// too slow to drain the buffer loses events rather than stalling
	// publishers.
	ch := make(chan events.CaseConfigsChanged, 16)
	sub := h.broker.Subscribe(func(ev events.CaseConfigsChanged) {
		if ev.CaseID != caseID {
			return
		}
		select {
		case ch <- ev:
		default:
			h.log.Warn("dropping event for slow subscriber",
				slog.String("case_id", caseID.String()))
		}
	})
	defer sub.Cancel()

	h.log.InfoContext(r.Context(), "event stream opened", slog.String("case_id", caseID.String()))

	for {
		select {
		case <-r.Context().Done():
			h.log.InfoContext(r.Context(), "event stream closed", slog.String("case_id", caseID.String()))
			return
		case ev := <-ch:
			if err := writeSSE(w, ev); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func writeSSE(w http.ResponseWriter, ev events.CaseConfigsChanged) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: case-configs-changed\ndata: %s\n\n", data)
	return err
}
