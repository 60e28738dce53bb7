package cart

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/cafeoro/storefront/internal/catalog"
	"github.com/cafeoro/storefront/internal/storage"
	pkgerrors "github.com/cafeoro/storefront/pkg/errors"
)

const testCartKey = "cafeOroCart"

func newTestStore(t *testing.T, backing storage.Store) *Store {
	t.Helper()
	store, err := NewStore(Params{
		Storage:          backing,
		Key:              testCartKey,
		Catalog:          catalog.Default(),
		ShippingFeeCents: testShippingFeeCents,
	})
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	return store
}

func TestRepeatedAddAccumulatesOneLine(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t, storage.NewMemoryStore())

	for i := 0; i < 5; i++ {
		if _, err := store.Add(ctx, 2); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}

	items := store.Items()
	if len(items) != 1 {
		t.Fatalf("expected exactly one line, got %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", items[0].Quantity)
	}
	if store.Count() != 5 {
		t.Fatalf("expected count 5, got %d", store.Count())
	}
}

func TestAddUnknownProductIsSilentNoop(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backing := storage.NewMemoryStore()
	store := newTestStore(t, backing)

	summary, err := store.Add(ctx, 999)
	if err != nil {
		t.Fatalf("expected silent no-op, got error %v", err)
	}
	if summary.TotalCents != 0 {
		t.Fatalf("expected unchanged totals, got %+v", summary)
	}
	if _, err := backing.Get(ctx, testCartKey); !errors.Is(err, storage.ErrNotFound) {
		t.Fatal("no-op must not persist anything")
	}
}

func TestAddSnapshotsProductAtAddTime(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t, storage.NewMemoryStore())

	if _, err := store.Add(ctx, 3); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	line := store.Items()[0]
	if line.Name != "Café Oro Molido 378g" || line.PriceCents != 14500 {
		t.Fatalf("expected denormalized product copy, got %+v", line)
	}
	if line.Icon == "" || line.Image == "" {
		t.Fatalf("expected icon/image copied onto line, got %+v", line)
	}
}

func TestUpdateQuantityDeltaRemovesAtZero(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t, storage.NewMemoryStore())

	if _, err := store.Add(ctx, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := store.Add(ctx, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if _, err := store.UpdateQuantity(ctx, 2, -2); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(store.Items()) != 0 {
		t.Fatal("expected line removed when quantity hits zero")
	}
}

func TestUpdateQuantityUnknownLineIsSilentNoop(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t, storage.NewMemoryStore())

	if _, err := store.Add(ctx, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := store.UpdateQuantity(ctx, 42, 3); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
	if store.Count() != 1 {
		t.Fatalf("expected cart unchanged, count %d", store.Count())
	}
}

func TestRemoveAndClearPersist(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backing := storage.NewMemoryStore()
	store := newTestStore(t, backing)

	if _, err := store.Add(ctx, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := store.Add(ctx, 3); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if _, err := store.Remove(ctx, 2); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(store.Items()) != 1 || store.Items()[0].ID != 3 {
		t.Fatalf("expected only product 3 left, got %+v", store.Items())
	}

	if _, err := store.Clear(ctx); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	payload, err := backing.Get(ctx, testCartKey)
	if err != nil {
		t.Fatalf("expected cleared cart to be rewritten, got %v", err)
	}
	if payload != "[]" {
		t.Fatalf("expected empty array persisted, got %q", payload)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backing := storage.NewMemoryStore()
	store := newTestStore(t, backing)

	if _, err := store.Add(ctx, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := store.Add(ctx, 4); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	before := store.Items()

	reloaded := newTestStore(t, backing)
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	after := reloaded.Items()
	if len(after) != len(before) {
		t.Fatalf("expected %d lines after reload, got %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("line %d changed across round-trip: %+v vs %+v", i, before[i], after[i])
		}
	}
}

func TestLoadNumericFieldsSurviveAsNumbers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backing := storage.NewMemoryStore()
	store := newTestStore(t, backing)

	if _, err := store.Add(ctx, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	payload, err := backing.Get(ctx, testCartKey)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	var raw []map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	for _, field := range []string{"id", "price_cents", "quantity"} {
		value, ok := raw[0][field]
		if !ok {
			t.Fatalf("missing field %q in %s", field, payload)
		}
		if value[0] == '"' {
			t.Fatalf("field %q persisted as string: %s", field, value)
		}
	}
}

func TestLoadMalformedPayloadYieldsEmptyCart(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backing := storage.NewMemoryStore()
	if err := backing.Set(ctx, testCartKey, "{not json"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	store := newTestStore(t, backing)
	if err := store.Load(ctx); err != nil {
		t.Fatalf("malformed payload must not surface an error, got %v", err)
	}
	if len(store.Items()) != 0 {
		t.Fatal("expected empty cart after malformed load")
	}
}

func TestLoadAbsentKeyYieldsEmptyCart(t *testing.T) {
	t.Parallel()

	store := newTestStore(t, storage.NewMemoryStore())
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("absent key must not surface an error, got %v", err)
	}
	if len(store.Items()) != 0 {
		t.Fatal("expected empty cart")
	}
}

func TestLoadSanitizesInvalidLines(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backing := storage.NewMemoryStore()
	seed := `[{"id":2,"price_cents":26000,"quantity":0},{"id":3,"price_cents":14500,"quantity":2},{"id":3,"price_cents":14500,"quantity":9}]`
	if err := backing.Set(ctx, testCartKey, seed); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	store := newTestStore(t, backing)
	if err := store.Load(ctx); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	items := store.Items()
	if len(items) != 1 {
		t.Fatalf("expected one surviving line, got %+v", items)
	}
	if items[0].ID != 3 || items[0].Quantity != 2 {
		t.Fatalf("expected first duplicate kept, got %+v", items[0])
	}
}

func TestExampleScenario(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t, storage.NewMemoryStore())

	if _, err := store.Add(ctx, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := store.Add(ctx, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	summary, err := store.UpdateQuantity(ctx, 2, -1)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	items := store.Items()
	if len(items) != 1 || items[0].Quantity != 1 {
		t.Fatalf("expected one line with quantity 1, got %+v", items)
	}
	if summary.SubtotalCents != 26000 {
		t.Fatalf("expected subtotal 26000, got %d", summary.SubtotalCents)
	}
	if summary.TotalCents != 26000+testShippingFeeCents {
		t.Fatalf("expected total %d, got %d", 26000+testShippingFeeCents, summary.TotalCents)
	}
}

type failingStore struct {
	storage.Store
	setErr error
}

func (f *failingStore) Set(ctx context.Context, key, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	return f.Store.Set(ctx, key, value)
}

func TestStorageFailureSurfacesDependencyError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backing := &failingStore{Store: storage.NewMemoryStore(), setErr: errors.New("redis down")}
	store := newTestStore(t, backing)

	if _, err := store.Add(ctx, 2); err == nil {
		t.Fatal("expected dependency error")
	} else if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("unexpected error code: %v", err)
	}
	if len(store.Items()) != 0 {
		t.Fatal("failed persist must not leave in-memory state mutated")
	}
}
