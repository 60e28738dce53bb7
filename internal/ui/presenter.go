// Package ui holds the presentation collaborators the core drives. The real
// rendering layer (markup, styling, dialog widgets) lives outside this
// repository; these implementations log what a renderer would do, which is
// enough for the demo binary and for wiring tests.
package ui

import (
	"context"

	"github.com/cafeoro/storefront/internal/checkout"
	"github.com/cafeoro/storefront/internal/notifications"
	"github.com/cafeoro/storefront/pkg/logger"
	"github.com/google/uuid"
)

// LogPresenter narrates panel, focus, notification and confirmation activity
// through the structured logger.
type LogPresenter struct {
	logg *logger.Logger
}

// NewLogPresenter wraps the provided logger.
func NewLogPresenter(logg *logger.Logger) *LogPresenter {
	return &LogPresenter{logg: logg}
}

func (p *LogPresenter) ShowPanel(name string) {
	p.logg.Info(p.logg.WithField(context.Background(), "panel", name), "panel shown")
}

func (p *LogPresenter) HidePanel(name string) {
	p.logg.Info(p.logg.WithField(context.Background(), "panel", name), "panel hidden")
}

func (p *LogPresenter) Focus(field string) {
	p.logg.Info(p.logg.WithField(context.Background(), "field", field), "focus placed")
}

// Display implements notifications.Sink.
func (p *LogPresenter) Display(n notifications.Notification) {
	ctx := p.logg.WithField(context.Background(), "notification_id", n.ID.String())
	p.logg.Info(p.logg.WithField(ctx, "message", n.Message), "notification displayed")
}

// Dismiss implements notifications.Sink.
func (p *LogPresenter) Dismiss(id uuid.UUID) {
	p.logg.Info(p.logg.WithField(context.Background(), "notification_id", id.String()), "notification dismissed")
}

// RenderConfirmation implements checkout.ConfirmationRenderer.
func (p *LogPresenter) RenderConfirmation(view checkout.ConfirmationView) {
	ctx := p.logg.WithFields(context.Background(), map[string]any{
		"customer": view.Customer.FullName,
		"payment":  view.PaymentLabel,
		"items":    len(view.Items),
		"total":    view.Summary.Total().StringFixed(2),
	})
	p.logg.Info(ctx, "confirmation rendered")
}

// NoopPresenter satisfies the presentation contracts without output.
type NoopPresenter struct{}

func (NoopPresenter) ShowPanel(string)                             {}
func (NoopPresenter) HidePanel(string)                             {}
func (NoopPresenter) Focus(string)                                 {}
func (NoopPresenter) Display(notifications.Notification)           {}
func (NoopPresenter) Dismiss(uuid.UUID)                            {}
func (NoopPresenter) RenderConfirmation(checkout.ConfirmationView) {}
