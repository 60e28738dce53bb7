package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/cafeoro/storefront/pkg/logger"
	"github.com/cafeoro/storefront/pkg/metrics"
	"github.com/google/uuid"
)

// Notification is one transient on-screen message.
type Notification struct {
	ID      uuid.UUID
	Message string
}

// Sink renders notifications. Display must not block; Dismiss is invoked by
// the emitter's timer once the display duration has elapsed.
type Sink interface {
	Display(n Notification)
	Dismiss(id uuid.UUID)
}

// Emitter shows self-dismissing messages for user feedback. Dismissal timers
// are fire-and-forget; nothing cancels them.
type Emitter struct {
	sink     Sink
	duration time.Duration
	logg     *logger.Logger
	metrics  *metrics.StorefrontMetrics
}

// Params collects the emitter dependencies.
type Params struct {
	Sink            Sink
	DisplayDuration time.Duration
	Logger          *logger.Logger
	Metrics         *metrics.StorefrontMetrics
}

// NewEmitter wires a notification emitter.
func NewEmitter(params Params) (*Emitter, error) {
	if params.Sink == nil {
		return nil, fmt.Errorf("notification sink required")
	}
	if params.DisplayDuration <= 0 {
		return nil, fmt.Errorf("display duration must be positive")
	}
	return &Emitter{
		sink:     params.Sink,
		duration: params.DisplayDuration,
		logg:     params.Logger,
		metrics:  params.Metrics,
	}, nil
}

// Notify displays the message and schedules its dismissal.
func (e *Emitter) Notify(ctx context.Context, message string) Notification {
	n := Notification{ID: uuid.New(), Message: message}
	e.sink.Display(n)
	e.metrics.IncNotification()
	if e.logg != nil {
		e.logg.Debug(e.logg.WithField(ctx, "notification_id", n.ID.String()), "notification shown")
	}

	time.AfterFunc(e.duration, func() {
		e.sink.Dismiss(n.ID)
	})
	return n
}
