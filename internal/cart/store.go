package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/cafeoro/storefront/internal/catalog"
	"github.com/cafeoro/storefront/internal/storage"
	pkgerrors "github.com/cafeoro/storefront/pkg/errors"
	"github.com/cafeoro/storefront/pkg/logger"
	"github.com/cafeoro/storefront/pkg/metrics"
)

// Store owns the cart lines and their persistence. Every mutation rewrites
// the whole serialized cart under the configured storage key, then the new
// summary is returned for display.
type Store struct {
	mu sync.Mutex

	storage          storage.Store
	key              string
	catalog          *catalog.Catalog
	shippingFeeCents int64
	logg             *logger.Logger
	metrics          *metrics.StorefrontMetrics

	lines []Line
}

// Params collects the store dependencies.
type Params struct {
	Storage          storage.Store
	Key              string
	Catalog          *catalog.Catalog
	ShippingFeeCents int64
	Logger           *logger.Logger
	Metrics          *metrics.StorefrontMetrics
}

// NewStore wires a cart store backed by the provided storage slot.
func NewStore(params Params) (*Store, error) {
	if params.Storage == nil {
		return nil, fmt.Errorf("storage required")
	}
	if params.Catalog == nil {
		return nil, fmt.Errorf("catalog required")
	}
	if params.Key == "" {
		return nil, fmt.Errorf("storage key required")
	}
	return &Store{
		storage:          params.Storage,
		key:              params.Key,
		catalog:          params.Catalog,
		shippingFeeCents: params.ShippingFeeCents,
		logg:             params.Logger,
		metrics:          params.Metrics,
	}, nil
}

// Load reads the persisted cart. Absent or malformed payloads yield an empty
// cart without surfacing an error; storage outages do.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := s.storage.Get(ctx, s.key)
	if errors.Is(err, storage.ErrNotFound) {
		s.lines = nil
		return nil
	}
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}

	var lines []Line
	if err := json.Unmarshal([]byte(payload), &lines); err != nil {
		s.warn(ctx, "persisted cart is malformed, starting empty")
		s.lines = nil
		return nil
	}
	s.lines = sanitize(lines)
	return nil
}

// sanitize enforces the stored invariants: quantity >= 1 and one line per id.
func sanitize(lines []Line) []Line {
	seen := make(map[int]struct{}, len(lines))
	kept := lines[:0]
	for _, line := range lines {
		if line.Quantity <= 0 {
			continue
		}
		if _, dup := seen[line.ID]; dup {
			continue
		}
		seen[line.ID] = struct{}{}
		kept = append(kept, line)
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}

// Add puts one unit of the product in the cart, incrementing an existing
// line's quantity. An unknown product id is a silent no-op.
func (s *Store) Add(ctx context.Context, productID int) (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.catalog.Lookup(productID)
	if !ok {
		s.debug(s.withProduct(ctx, productID), "add ignored, product not in catalog")
		return s.summaryLocked(), nil
	}

	next := s.copyLinesLocked()
	found := false
	for i := range next {
		if next[i].ID == productID {
			next[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		next = append(next, lineFromProduct(product))
	}

	if err := s.persistLocked(ctx, next); err != nil {
		return s.summaryLocked(), err
	}
	s.lines = next
	s.metrics.IncCartMutation("add")
	return s.summaryLocked(), nil
}

// UpdateQuantity applies a delta to the line's quantity. A result of zero or
// less removes the line. An unknown line id is a silent no-op.
func (s *Store) UpdateQuantity(ctx context.Context, lineID, delta int) (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOfLocked(lineID)
	if index < 0 {
		s.debug(s.withProduct(ctx, lineID), "quantity change ignored, line not in cart")
		return s.summaryLocked(), nil
	}

	next := s.copyLinesLocked()
	next[index].Quantity += delta
	if next[index].Quantity <= 0 {
		next = append(next[:index], next[index+1:]...)
	}

	if err := s.persistLocked(ctx, next); err != nil {
		return s.summaryLocked(), err
	}
	s.lines = next
	s.metrics.IncCartMutation("update_quantity")
	return s.summaryLocked(), nil
}

// Remove deletes the matching line. An unknown line id is a silent no-op.
func (s *Store) Remove(ctx context.Context, lineID int) (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOfLocked(lineID)
	if index < 0 {
		s.debug(s.withProduct(ctx, lineID), "remove ignored, line not in cart")
		return s.summaryLocked(), nil
	}

	next := s.copyLinesLocked()
	next = append(next[:index], next[index+1:]...)

	if err := s.persistLocked(ctx, next); err != nil {
		return s.summaryLocked(), err
	}
	s.lines = next
	s.metrics.IncCartMutation("remove")
	return s.summaryLocked(), nil
}

// Clear empties the cart unconditionally and rewrites the persisted value.
func (s *Store) Clear(ctx context.Context) (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persistLocked(ctx, nil); err != nil {
		return s.summaryLocked(), err
	}
	s.lines = nil
	s.metrics.IncCartMutation("clear")
	return s.summaryLocked(), nil
}

// Items returns a snapshot of the current lines.
func (s *Store) Items() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLinesLocked()
}

// Count returns the sum of line quantities, the badge number next to the
// cart icon.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, line := range s.lines {
		total += line.Quantity
	}
	return total
}

// Summary recomputes the totals for the current lines.
func (s *Store) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summaryLocked()
}

func (s *Store) summaryLocked() Summary {
	return Summarize(s.lines, s.shippingFeeCents)
}

func (s *Store) indexOfLocked(lineID int) int {
	for i, line := range s.lines {
		if line.ID == lineID {
			return i
		}
	}
	return -1
}

func (s *Store) copyLinesLocked() []Line {
	if len(s.lines) == 0 {
		return nil
	}
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *Store) persistLocked(ctx context.Context, lines []Line) error {
	if lines == nil {
		lines = []Line{}
	}
	payload, err := json.Marshal(lines)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "serialize cart")
	}
	if err := s.storage.Set(ctx, s.key, string(payload)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart")
	}
	return nil
}

func (s *Store) withProduct(ctx context.Context, productID int) context.Context {
	if s.logg == nil {
		return ctx
	}
	return s.logg.WithProductID(ctx, productID)
}

func (s *Store) debug(ctx context.Context, msg string) {
	if s.logg != nil {
		s.logg.Debug(ctx, msg)
	}
}

func (s *Store) warn(ctx context.Context, msg string) {
	if s.logg != nil {
		s.logg.Warn(ctx, msg)
	}
}
