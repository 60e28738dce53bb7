package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/cafeoro/storefront/internal/cart"
	"github.com/cafeoro/storefront/internal/checkout"
	"github.com/cafeoro/storefront/internal/notifications"
	"github.com/cafeoro/storefront/pkg/enums"
	pkgerrors "github.com/cafeoro/storefront/pkg/errors"
	"github.com/cafeoro/storefront/pkg/logger"
	"github.com/cafeoro/storefront/pkg/metrics"
	"github.com/google/uuid"
)

// Order is the assembled record surfaced to the confirmation display. It is
// not persisted or transmitted; a real order backend is the intended
// integration point.
type Order struct {
	ID            uuid.UUID
	Number        string
	PlacedAt      time.Time
	Customer      checkout.ContactInfo
	Address       checkout.AddressInfo
	Items         []cart.Line
	Summary       cart.Summary
	PaymentMethod enums.PaymentMethod
}

type notifier interface {
	Notify(ctx context.Context, message string) notifications.Notification
}

type panelPresenter interface {
	ShowPanel(name string)
	HidePanel(name string)
}

// Service assembles and "dispatches" completed orders.
type Service struct {
	cart         *cart.Store
	notifier     notifier
	presenter    panelPresenter
	logg         *logger.Logger
	metrics      *metrics.StorefrontMetrics
	numberPrefix string
	panelDelay   time.Duration
	now          func() time.Time
}

// Params collects the service dependencies.
type Params struct {
	Cart         *cart.Store
	Notifier     notifier
	Presenter    panelPresenter
	Logger       *logger.Logger
	Metrics      *metrics.StorefrontMetrics
	NumberPrefix string
	PanelDelay   time.Duration
	Now          func() time.Time
}

// NewService wires an order submission service.
func NewService(params Params) (*Service, error) {
	if params.Cart == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if params.Notifier == nil {
		return nil, fmt.Errorf("notifier required")
	}
	if params.Presenter == nil {
		return nil, fmt.Errorf("presenter required")
	}
	if params.NumberPrefix == "" {
		params.NumberPrefix = "CO-"
	}
	if params.Now == nil {
		params.Now = time.Now
	}
	return &Service{
		cart:         params.Cart,
		notifier:     params.Notifier,
		presenter:    params.Presenter,
		logg:         params.Logger,
		metrics:      params.Metrics,
		numberPrefix: params.NumberPrefix,
		panelDelay:   params.PanelDelay,
		now:          params.Now,
	}, nil
}

// Submit finalizes the checkout: it assembles the order from the validated
// form and the current cart, hands the UI over from the checkout panel to
// the success panel, and clears the cart. Without accepted terms nothing
// happens beyond a notification.
func (s *Service) Submit(ctx context.Context, form *checkout.Form) (*Order, error) {
	if form == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "checkout form required")
	}
	if !form.AcceptTerms {
		err := pkgerrors.New(pkgerrors.CodeTermsRequired, "terms not accepted")
		s.notifier.Notify(ctx, pkgerrors.MetadataFor(err.Code()).PublicMessage)
		return nil, err
	}

	placedAt := s.now()
	order := &Order{
		ID:            uuid.New(),
		Number:        s.orderNumber(placedAt),
		PlacedAt:      placedAt,
		Customer:      form.Contact,
		Address:       form.Address,
		Items:         s.cart.Items(),
		Summary:       s.cart.Summary(),
		PaymentMethod: form.Payment.Method,
	}

	s.presenter.HidePanel(checkout.PanelCheckout)
	time.AfterFunc(s.panelDelay, func() {
		s.presenter.ShowPanel(checkout.PanelSuccess)
	})

	if _, err := s.cart.Clear(ctx); err != nil {
		return nil, err
	}

	s.metrics.IncOrderSubmitted()
	if s.logg != nil {
		s.logg.Info(s.logg.WithOrderNumber(ctx, order.Number), "order submitted")
	}
	return order, nil
}

// orderNumber derives the display identifier from the submission time, the
// prefix plus the last eight digits of the epoch milliseconds. Uniqueness is
// best-effort, good enough for a confirmation screen.
func (s *Service) orderNumber(at time.Time) string {
	return fmt.Sprintf("%s%08d", s.numberPrefix, at.UnixMilli()%100_000_000)
}
