package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/projecttracker/tracker/internal/modules/model"
	"go.uber.org/zap"
)

// Notifier delivers change events to other clients. Implementations must be
// safe for concurrent use.
type Notifier interface {
	Publish(ctx context.Context, ev model.ChangeEvent) error
}

type notifier struct {
	n   Notifier
	log *zap.Logger
}

// emit publishes best-effort: a failed publish is logged, never returned.
func (e notifier) emit(ctx context.Context, typ model.EventType, id uuid.UUID, name string, affected int64) {
	if e.n == nil {
		return
	}
	ev := model.ChangeEvent{
		Type:       typ,
		ID:         id,
		Name:       name,
		Affected:   affected,
		OccurredAt: time.Now().UTC(),
	}
	if err := e.n.Publish(ctx, ev); err != nil {
		e.log.Sugar().Warnw("publish change event", "type", typ, "id", id, "err", err)
	}
}
