package engine

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"
)

// LogEvents subscribes a debug logger to every battle event on the bus and returns the
// subscription ids
func LogEvents(bus events.EventBus, logger *slog.Logger) []string {
	if logger == nil {
		logger = slog.Default()
	}

	handler := func(ctx context.Context, e events.Event) error {
		attrs := []any{"event", e.Type()}
		if src := e.Source(); src != nil {
			attrs = append(attrs, "source", src.GetID())
		}
		if tgt := e.Target(); tgt != nil {
			attrs = append(attrs, "target", tgt.GetID())
		}
		logger.DebugContext(ctx, "Battle event", attrs...)
		return nil
	}

	ids := make([]string, 0, 3)
	for _, eventType := range []string{EventTurn, EventKnockOut, EventDraw} {
		ids = append(ids, bus.SubscribeFunc(eventType, 0, handler))
	}
	return ids
}
