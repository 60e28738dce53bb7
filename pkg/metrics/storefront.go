package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// StorefrontMetrics records shopper-facing activity counters. A nil
// registerer yields a no-op instance, which tests and the demo rely on.
type StorefrontMetrics struct {
	cartMutations *prometheus.CounterVec
	orders        prometheus.Counter
	notifications prometheus.Counter
}

// NewStorefrontMetrics registers the storefront metrics on the provided registerer.
func NewStorefrontMetrics(reg prometheus.Registerer) *StorefrontMetrics {
	if reg == nil {
		return &StorefrontMetrics{}
	}
	cartMutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_mutations_total",
		Help: "Cart mutations by operation.",
	}, []string{"operation"})
	orders := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_submitted_total",
		Help: "Orders successfully submitted.",
	})
	notifications := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "notifications_emitted_total",
		Help: "Transient notifications shown to the shopper.",
	})
	reg.MustRegister(cartMutations, orders, notifications)
	return &StorefrontMetrics{
		cartMutations: cartMutations,
		orders:        orders,
		notifications: notifications,
	}
}

// IncCartMutation increments the mutation counter for the named operation.
func (m *StorefrontMetrics) IncCartMutation(operation string) {
	if m == nil || m.cartMutations == nil {
		return
	}
	m.cartMutations.WithLabelValues(operation).Inc()
}

// IncOrderSubmitted increments the submitted order counter.
func (m *StorefrontMetrics) IncOrderSubmitted() {
	if m == nil || m.orders == nil {
		return
	}
	m.orders.Inc()
}

// IncNotification increments the emitted notification counter.
func (m *StorefrontMetrics) IncNotification() {
	if m == nil || m.notifications == nil {
		return
	}
	m.notifications.Inc()
}
