package checkout

import (
	"context"
	"fmt"

	"github.com/cafeoro/storefront/internal/cart"
	"github.com/cafeoro/storefront/internal/notifications"
	"github.com/cafeoro/storefront/pkg/enums"
	pkgerrors "github.com/cafeoro/storefront/pkg/errors"
	"github.com/cafeoro/storefront/pkg/logger"
)

// Panel names the flow drives through the presenter.
const (
	PanelCheckout = "checkoutModal"
	PanelSuccess  = "successModal"
)

// StepPanel returns the panel name for a checkout step.
func StepPanel(step enums.CheckoutStep) string {
	return fmt.Sprintf("step%d", int(step))
}

type notifier interface {
	Notify(ctx context.Context, message string) notifications.Notification
}

// Presenter is the UI collaborator the flow drives. It only needs to show
// and hide named panels and place focus on a named field.
type Presenter interface {
	ShowPanel(name string)
	HidePanel(name string)
	Focus(field string)
}

// ConfirmationRenderer populates the review panel. It is invoked before the
// confirmation step is shown.
type ConfirmationRenderer interface {
	RenderConfirmation(view ConfirmationView)
}

// Flow is the linear checkout step machine. Backward moves are
// unconditional; forward moves are gated on the current step's validation.
type Flow struct {
	step      enums.CheckoutStep
	form      Form
	cart      *cart.Store
	notifier  notifier
	presenter Presenter
	renderer  ConfirmationRenderer
	logg      *logger.Logger
	open      bool
}

// FlowParams collects the flow dependencies.
type FlowParams struct {
	Cart      *cart.Store
	Notifier  notifier
	Presenter Presenter
	Renderer  ConfirmationRenderer
	Logger    *logger.Logger
}

// NewFlow wires a checkout flow.
func NewFlow(params FlowParams) (*Flow, error) {
	if params.Cart == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if params.Notifier == nil {
		return nil, fmt.Errorf("notifier required")
	}
	if params.Presenter == nil {
		return nil, fmt.Errorf("presenter required")
	}
	if params.Renderer == nil {
		return nil, fmt.Errorf("confirmation renderer required")
	}
	return &Flow{
		cart:      params.Cart,
		notifier:  params.Notifier,
		presenter: params.Presenter,
		renderer:  params.Renderer,
		logg:      params.Logger,
	}, nil
}

// Open starts a fresh checkout session at the contact step. An empty cart
// refuses to open with a notification.
func (f *Flow) Open(ctx context.Context) error {
	if len(f.cart.Items()) == 0 {
		err := pkgerrors.New(pkgerrors.CodeEmptyCart, "cannot start checkout with an empty cart")
		f.notifier.Notify(ctx, pkgerrors.MetadataFor(err.Code()).PublicMessage)
		return err
	}
	f.form = Form{}
	f.step = enums.StepContact
	f.open = true
	f.presenter.ShowPanel(PanelCheckout)
	f.presenter.ShowPanel(StepPanel(f.step))
	f.info(ctx, "checkout opened")
	return nil
}

// Close abandons the checkout session, dropping the transient form.
func (f *Flow) Close(ctx context.Context) {
	if !f.open {
		return
	}
	f.open = false
	f.form = Form{}
	f.presenter.HidePanel(StepPanel(f.step))
	f.presenter.HidePanel(PanelCheckout)
	f.info(ctx, "checkout closed")
}

// Step returns the current step.
func (f *Flow) Step() enums.CheckoutStep {
	return f.step
}

// Form returns the mutable checkout form for field binding.
func (f *Flow) Form() *Form {
	return &f.form
}

// Next validates the current step and, on success, advances to the
// following one. Moving onto the confirmation step renders the review
// content before the panel switch.
func (f *Flow) Next(ctx context.Context) (enums.CheckoutStep, error) {
	if !f.open {
		return f.step, pkgerrors.New(pkgerrors.CodeValidation, "checkout is not open")
	}
	if f.step.Last() {
		return f.step, nil
	}

	if err := f.gate(ctx); err != nil {
		return f.step, err
	}

	next := f.step.Next()
	if next == enums.StepConfirmation {
		f.renderer.RenderConfirmation(buildConfirmation(&f.form, f.cart.Items(), f.cart.Summary()))
	}
	f.presenter.HidePanel(StepPanel(f.step))
	f.step = next
	f.presenter.ShowPanel(StepPanel(f.step))
	f.info(ctx, "checkout step advanced")
	return f.step, nil
}

// Back moves to the previous step unconditionally.
func (f *Flow) Back(ctx context.Context) enums.CheckoutStep {
	if !f.open || f.step.First() {
		return f.step
	}
	f.presenter.HidePanel(StepPanel(f.step))
	f.step = f.step.Prev()
	f.presenter.ShowPanel(StepPanel(f.step))
	return f.step
}

// gate runs the leave-validation for the current step. Failures focus the
// offending field where one is known and always notify the shopper.
func (f *Flow) gate(ctx context.Context) error {
	switch f.step {
	case enums.StepContact:
		f.form.Contact.normalize()
		if v := checkStruct(&f.form.Contact); v != nil {
			return f.reject(ctx, v)
		}
	case enums.StepAddress:
		f.form.Address.normalize()
		if v := checkStruct(&f.form.Address); v != nil {
			return f.reject(ctx, v)
		}
	case enums.StepPayment:
		f.form.Payment.normalize()
		if !f.form.Payment.Method.IsValid() {
			return f.reject(ctx, &fieldViolation{Field: "payment_method", Message: "is required"})
		}
		if f.form.Payment.Method.RequiresCard() {
			if err := validateCard(f.form.Payment.Card); err != nil {
				f.notifier.Notify(ctx, err.Message())
				return err
			}
		}
	}
	return nil
}

func (f *Flow) reject(ctx context.Context, v *fieldViolation) error {
	if v.Field != "" {
		f.presenter.Focus(v.Field)
	}
	err := validationError(v, "step validation failed")
	message := pkgerrors.MetadataFor(err.Code()).PublicMessage
	if v.Field == "email" && v.Message == "must be a valid email" {
		message = "please enter a valid email"
	}
	f.notifier.Notify(ctx, message)
	return err
}

func (f *Flow) info(ctx context.Context, msg string) {
	if f.logg != nil {
		f.logg.Info(f.logg.WithStep(ctx, f.step.String()), msg)
	}
}
