package repo

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/tractorcare/order-service/internal/entities"
)

type catalogKey struct {
	id       string
	itemType entities.ItemType
}

// MemoryRepo keeps orders, catalog and customers in process memory. Every
// read and write copies the order, so callers never share state with the store.
type MemoryRepo struct {
	mu        sync.RWMutex
	orders    map[string]entities.Order
	catalog   map[catalogKey]entities.CatalogItem
	customers map[string]entities.Customer
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		orders:    make(map[string]entities.Order),
		catalog:   make(map[catalogKey]entities.CatalogItem),
		customers: make(map[string]entities.Customer),
	}
}

func (r *MemoryRepo) CreateOrder(_ context.Context, o entities.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[o.ID]; ok {
		return fmt.Errorf("order %s already exists", o.ID)
	}
	r.orders[o.ID] = o.Clone()
	return nil
}

func (r *MemoryRepo) GetOrder(_ context.Context, orderID string) (entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[orderID]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return o.Clone(), nil
}

func (r *MemoryRepo) OrderVersion(_ context.Context, orderID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[orderID]
	if !ok {
		return 0, entities.ErrOrderNotFound
	}
	return o.Version, nil
}

func (r *MemoryRepo) GetOrderForUpdate(ctx context.Context, orderID string) (entities.Order, error) {
	return r.GetOrder(ctx, orderID)
}

func (r *MemoryRepo) UpdateOrder(_ context.Context, o entities.Order, expectedVersion int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.orders[o.ID]
	if !ok {
		return entities.ErrOrderNotFound
	}
	if stored.Version != expectedVersion {
		return entities.ErrVersionConflict
	}
	r.orders[o.ID] = o.Clone()
	return nil
}

func (r *MemoryRepo) DeleteOrder(_ context.Context, orderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[orderID]; !ok {
		return entities.ErrOrderNotFound
	}
	delete(r.orders, orderID)
	return nil
}

func (r *MemoryRepo) ListOrders(_ context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	r.mu.RLock()
	result := make([]entities.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if filter.CustomerID != "" && o.CustomerID != filter.CustomerID {
			continue
		}
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		result = append(result, o.Clone())
	}
	r.mu.RUnlock()

	slices.SortFunc(result, func(a, b entities.Order) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	if filter.Offset >= len(result) {
		return []entities.Order{}, nil
	}
	result = result[filter.Offset:]
	if filter.Limit > 0 && len(result) > filter.Limit {
		result = result[:filter.Limit]
	}
	return result, nil
}

func (r *MemoryRepo) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	return r.ListOrders(ctx, entities.OrderFilter{Limit: count})
}

func (r *MemoryRepo) ResolveCatalogItem(_ context.Context, itemID string, itemType entities.ItemType) (entities.CatalogItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.catalog[catalogKey{id: itemID, itemType: itemType}]
	if !ok {
		return entities.CatalogItem{}, fmt.Errorf("%w: %s %s", entities.ErrCatalogItemNotFound, itemType, itemID)
	}
	return item, nil
}

func (r *MemoryRepo) SaveCatalogItem(_ context.Context, item entities.CatalogItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.catalog[catalogKey{id: item.ID, itemType: item.Type}] = item
	return nil
}

func (r *MemoryRepo) CustomerExists(_ context.Context, customerID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.customers[customerID]
	return ok, nil
}

func (r *MemoryRepo) SaveCustomer(_ context.Context, c entities.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stored, ok := r.customers[c.ID]; ok && stored.UpdatedAt.After(c.UpdatedAt) {
		return nil
	}
	r.customers[c.ID] = c
	return nil
}
