package main

import (
	"context"
	"os"
	"time"

	"github.com/cafeoro/storefront/internal/cart"
	"github.com/cafeoro/storefront/internal/catalog"
	"github.com/cafeoro/storefront/internal/checkout"
	"github.com/cafeoro/storefront/internal/notifications"
	"github.com/cafeoro/storefront/internal/orders"
	"github.com/cafeoro/storefront/internal/storage"
	"github.com/cafeoro/storefront/internal/ui"
	"github.com/cafeoro/storefront/pkg/config"
	"github.com/cafeoro/storefront/pkg/db"
	"github.com/cafeoro/storefront/pkg/enums"
	"github.com/cafeoro/storefront/pkg/logger"
	"github.com/cafeoro/storefront/pkg/metrics"
	"github.com/cafeoro/storefront/pkg/redis"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "storefront"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "storefront",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx := context.Background()

	backing, cleanup, err := buildStorage(ctx, cfg, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap storage", err)
		os.Exit(1)
	}
	defer cleanup()

	storefrontMetrics := metrics.NewStorefrontMetrics(prometheus.NewRegistry())
	presenter := ui.NewLogPresenter(logg)
	products := catalog.Default()

	cartStore, err := cart.NewStore(cart.Params{
		Storage:          backing,
		Key:              cfg.Storage.CartKey,
		Catalog:          products,
		ShippingFeeCents: cfg.Checkout.ShippingFeeCents,
		Logger:           logg,
		Metrics:          storefrontMetrics,
	})
	if err != nil {
		logg.Error(ctx, "failed to create cart store", err)
		os.Exit(1)
	}
	if err := cartStore.Load(ctx); err != nil {
		logg.Error(ctx, "failed to load cart", err)
		os.Exit(1)
	}

	emitter, err := notifications.NewEmitter(notifications.Params{
		Sink:            presenter,
		DisplayDuration: cfg.Notifications.DisplayDuration,
		Logger:          logg,
		Metrics:         storefrontMetrics,
	})
	if err != nil {
		logg.Error(ctx, "failed to create notification emitter", err)
		os.Exit(1)
	}

	flow, err := checkout.NewFlow(checkout.FlowParams{
		Cart:      cartStore,
		Notifier:  emitter,
		Presenter: presenter,
		Renderer:  presenter,
		Logger:    logg,
	})
	if err != nil {
		logg.Error(ctx, "failed to create checkout flow", err)
		os.Exit(1)
	}

	orderService, err := orders.NewService(orders.Params{
		Cart:         cartStore,
		Notifier:     emitter,
		Presenter:    presenter,
		Logger:       logg,
		Metrics:      storefrontMetrics,
		NumberPrefix: cfg.Orders.NumberPrefix,
		PanelDelay:   cfg.Checkout.SuccessPanelDelay,
	})
	if err != nil {
		logg.Error(ctx, "failed to create order service", err)
		os.Exit(1)
	}

	runDemoSession(ctx, logg, emitter, cartStore, products, flow, orderService)

	// Let the fire-and-forget dismissal and panel timers run out.
	time.Sleep(cfg.Notifications.DisplayDuration + cfg.Checkout.SuccessPanelDelay + 100*time.Millisecond)
}

func buildStorage(ctx context.Context, cfg *config.Config, logg *logger.Logger) (storage.Store, func(), error) {
	switch cfg.Storage.Backend {
	case config.StorageBackendRedis:
		client, err := redis.New(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		store, err := storage.NewRedisStore(client)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {
			if err := client.Close(); err != nil {
				logg.Error(ctx, "error closing redis", err)
			}
		}, nil
	case config.StorageBackendSQLite:
		client, err := db.New(ctx, cfg.Storage, logg)
		if err != nil {
			return nil, nil, err
		}
		store, err := storage.NewSQLiteStore(client.DB())
		if err != nil {
			return nil, nil, err
		}
		return store, func() {
			if err := client.Close(); err != nil {
				logg.Error(ctx, "error closing sqlite", err)
			}
		}, nil
	default:
		return storage.NewMemoryStore(), func() {}, nil
	}
}

// runDemoSession walks one shopper journey end to end: browse, fill the
// cart, step through checkout and submit the order.
func runDemoSession(
	ctx context.Context,
	logg *logger.Logger,
	emitter *notifications.Emitter,
	cartStore *cart.Store,
	products *catalog.Catalog,
	flow *checkout.Flow,
	orderService *orders.Service,
) {
	for _, product := range products.Products() {
		entry := logg.WithFields(ctx, map[string]any{
			"product_id": product.ID,
			"name":       product.Name,
			"price":      product.Price().StringFixed(2),
		})
		logg.Info(entry, "catalog product")
	}

	if _, err := cartStore.Add(ctx, 2); err != nil {
		logg.Error(ctx, "add to cart failed", err)
		return
	}
	emitter.Notify(ctx, "Café Oro Soluble Liofilizado 170g added to cart")
	if _, err := cartStore.Add(ctx, 2); err != nil {
		logg.Error(ctx, "add to cart failed", err)
		return
	}
	if _, err := cartStore.Add(ctx, 3); err != nil {
		logg.Error(ctx, "add to cart failed", err)
		return
	}
	summary, err := cartStore.UpdateQuantity(ctx, 2, -1)
	if err != nil {
		logg.Error(ctx, "quantity change failed", err)
		return
	}
	logg.Info(logg.WithFields(ctx, map[string]any{
		"count":    cartStore.Count(),
		"subtotal": summary.Subtotal().StringFixed(2),
		"shipping": summary.Shipping().StringFixed(2),
		"total":    summary.Total().StringFixed(2),
	}), "cart summary")

	if err := flow.Open(ctx); err != nil {
		logg.Error(ctx, "checkout open failed", err)
		return
	}

	form := flow.Form()
	form.Contact = checkout.ContactInfo{
		FullName: "Ana López",
		Phone:    checkout.FormatPhone("99991234"),
		Email:    "ana@example.com",
	}
	form.Address = checkout.AddressInfo{
		Department: "Cortés",
		City:       "San Pedro Sula",
		Street:     "Calle Principal 12",
		Reference:  "frente al parque",
	}
	form.Payment = checkout.PaymentInfo{
		Method: enums.PaymentMethodCredit,
		Card: checkout.CardDetails{
			Number: checkout.FormatCardNumber("4111111111111111"),
			Holder: "Ana López",
			Expiry: checkout.FormatExpiry("1227"),
			CVV:    checkout.FormatCVV("123"),
		},
	}

	for !flow.Step().Last() {
		if _, err := flow.Next(ctx); err != nil {
			logg.Error(ctx, "checkout step rejected", err)
			return
		}
	}

	form.AcceptTerms = true
	order, err := orderService.Submit(ctx, form)
	if err != nil {
		logg.Error(ctx, "order submission failed", err)
		return
	}
	logg.Info(logg.WithFields(ctx, map[string]any{
		"order_number": order.Number,
		"placed_at":    order.PlacedAt.Format(time.RFC3339),
		"total":        order.Summary.Total().StringFixed(2),
	}), "order confirmed")
}
