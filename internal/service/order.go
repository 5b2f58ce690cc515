package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"

	"github.com/tractorcare/order-service/internal/entities"
	"github.com/tractorcare/order-service/pkg/keymutex"
	"github.com/tractorcare/order-service/pkg/trm"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

type OrderRepo interface {
	CreateOrder(ctx context.Context, o entities.Order) error
	GetOrder(ctx context.Context, orderID string) (entities.Order, error)
	// OrderVersion читает только версию, для проверки снимка из кэша
	OrderVersion(ctx context.Context, orderID string) (int, error)
	// GetOrderForUpdate держит блокировку строки до конца транзакции
	GetOrderForUpdate(ctx context.Context, orderID string) (entities.Order, error)
	UpdateOrder(ctx context.Context, o entities.Order, expectedVersion int) error
	DeleteOrder(ctx context.Context, orderID string) error
	ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	LatestOrders(ctx context.Context, count int) ([]entities.Order, error)
}

type Catalog interface {
	ResolveCatalogItem(ctx context.Context, itemID string, itemType entities.ItemType) (entities.CatalogItem, error)
}

type CustomerDirectory interface {
	CustomerExists(ctx context.Context, customerID string) (bool, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event entities.OrderEvent) error
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	catalog   Catalog
	customers CustomerDirectory
	cache     Cache
	publisher EventPublisher

	locks *keymutex.KeyedMutex
	group singleflight.Group
	now   func() time.Time
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo OrderRepo,
	catalog Catalog,
	customers CustomerDirectory,
	cache Cache,
	publisher EventPublisher,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		catalog:   catalog,
		customers: customers,
		cache:     cache,
		publisher: publisher,
		locks:     keymutex.New(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *orderService) CreateDraft(ctx context.Context, customerID string, tractor *entities.Tractor) (entities.Order, error) {
	exists, err := s.customers.CustomerExists(ctx, customerID)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to check customer: %w", err)
	}
	if !exists {
		return entities.Order{}, fmt.Errorf("%w: %s", entities.ErrCustomerNotFound, customerID)
	}

	order := entities.NewDraftOrder(uuid.NewString(), customerID, normalizeTractor(tractor), s.now())
	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return entities.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	ordersCreated.Inc()
	s.cacheOrder(order)
	s.publish(ctx, entities.EventOrderCreated, order, "")

	s.logger.Debug("draft created", slog.String("order_id", order.ID), slog.String("customer_id", customerID))
	return order, nil
}

// GetOrder отдаёт снимок из кэша, только если его версия совпадает с сохранённой:
// заказ могла изменить другая реплика.
func (s *orderService) GetOrder(ctx context.Context, orderID string) (entities.Order, error) {
	if order, ok := s.cachedOrder(orderID); ok {
		version, err := s.repo.OrderVersion(ctx, orderID)
		if errors.Is(err, entities.ErrOrderNotFound) {
			s.cache.Delete(orderID)
			return entities.Order{}, err
		}
		if err != nil {
			return entities.Order{}, fmt.Errorf("failed to check order version: %w", err)
		}
		if version == order.Version {
			return order, nil
		}
		cacheStale.Inc()
	}

	v, err, _ := s.group.Do(orderID, func() (any, error) {
		// заполнение кэша под блокировкой заказа, чтобы не затереть результат параллельной мутации
		unlock := s.locks.Lock(orderID)
		defer unlock()

		order, err := s.repo.GetOrder(ctx, orderID)
		if err != nil {
			return entities.Order{}, err
		}
		s.cacheOrder(order)
		return order, nil
	})
	if err != nil {
		return entities.Order{}, err
	}
	return v.(entities.Order).Clone(), nil
}

func (s *orderService) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultListLimit
	}
	filter.Limit = min(filter.Limit, MaxListLimit)
	filter.Offset = max(filter.Offset, 0)

	orders, err := s.repo.ListOrders(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, orderID string) error {
	unlock := s.locks.Lock(orderID)
	defer unlock()

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repo.GetOrderForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if !order.Deletable() {
			return fmt.Errorf("%w: cannot delete %s order", entities.ErrInvalidState, order.Status)
		}
		return s.repo.DeleteOrder(ctx, orderID)
	})
	mutationsTotal.WithLabelValues("delete", resultLabel(err)).Inc()
	if err != nil {
		return err
	}

	s.cache.Delete(orderID)
	s.logger.Debug("order deleted", slog.String("order_id", orderID))
	return nil
}

func (s *orderService) UpdateTractor(ctx context.Context, orderID string, tractor *entities.Tractor) (entities.Order, error) {
	tractor = normalizeTractor(tractor)
	return s.mutate(ctx, "update_tractor", orderID, func(o *entities.Order, _ time.Time) (bool, error) {
		if sameTractor(o.Tractor, tractor) {
			return false, o.SetTractor(o.Tractor)
		}
		return true, o.SetTractor(tractor)
	})
}

func (s *orderService) AddItem(ctx context.Context, orderID, itemID string, itemType entities.ItemType, quantity int) (entities.Order, error) {
	if quantity <= 0 {
		return entities.Order{}, fmt.Errorf("%w: %d", entities.ErrInvalidQuantity, quantity)
	}

	return s.mutate(ctx, "add_item", orderID, func(o *entities.Order, _ time.Time) (bool, error) {
		resolve := func(id string, t entities.ItemType) (entities.CatalogItem, error) {
			return s.catalog.ResolveCatalogItem(ctx, id, t)
		}
		if err := o.AddItem(itemID, itemType, quantity, resolve); err != nil {
			return false, err
		}
		return true, nil
	})
}

func (s *orderService) RemoveItem(ctx context.Context, orderID, itemID string) (entities.Order, error) {
	return s.mutate(ctx, "remove_item", orderID, func(o *entities.Order, _ time.Time) (bool, error) {
		if err := o.RemoveItem(itemID); err != nil {
			return false, err
		}
		return true, nil
	})
}

// UpdateItemQuantity replaces the quantity of a line; zero or less removes it.
func (s *orderService) UpdateItemQuantity(ctx context.Context, orderID, itemID string, quantity int) (entities.Order, error) {
	return s.mutate(ctx, "update_quantity", orderID, func(o *entities.Order, _ time.Time) (bool, error) {
		before, _ := o.Item(itemID)
		if err := o.SetQuantity(itemID, quantity); err != nil {
			return false, err
		}
		after, ok := o.Item(itemID)
		return !ok || after.Quantity != before.Quantity, nil
	})
}

// UpdateItemDiscount shifts the line discount by delta percentage points.
func (s *orderService) UpdateItemDiscount(ctx context.Context, orderID, itemID string, delta int) (entities.Order, error) {
	return s.mutate(ctx, "update_discount", orderID, func(o *entities.Order, _ time.Time) (bool, error) {
		return o.AdjustDiscount(itemID, delta)
	})
}

func (s *orderService) ApplyOrderDiscount(ctx context.Context, orderID string, amount decimal.Decimal) (entities.Order, error) {
	if amount.IsNegative() || !amount.Equal(amount.Round(2)) {
		return entities.Order{}, fmt.Errorf("%w: %s", entities.ErrInvalidDiscount, amount)
	}

	return s.mutate(ctx, "order_discount", orderID, func(o *entities.Order, _ time.Time) (bool, error) {
		return o.ApplyOrderDiscount(amount)
	})
}

func (s *orderService) Start(ctx context.Context, orderID string) (entities.Order, error) {
	return s.mutate(ctx, "start", orderID, func(o *entities.Order, now time.Time) (bool, error) {
		return true, o.Start(now)
	})
}

func (s *orderService) Complete(ctx context.Context, orderID string) (entities.Order, error) {
	return s.mutate(ctx, "complete", orderID, func(o *entities.Order, now time.Time) (bool, error) {
		return true, o.Complete(now)
	})
}

func (s *orderService) Cancel(ctx context.Context, orderID string) (entities.Order, error) {
	return s.mutate(ctx, "cancel", orderID, func(o *entities.Order, now time.Time) (bool, error) {
		return true, o.Cancel(now)
	})
}

// WarmUpCache loads the latest orders into the snapshot cache.
func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	if count <= 0 {
		return nil
	}

	orders, err := s.repo.LatestOrders(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to load latest orders: %w", err)
	}
	for _, order := range orders {
		s.cacheOrder(order)
	}

	s.logger.Info("cache warmed up", slog.Int("orders", len(orders)))
	return nil
}

type mutation func(o *entities.Order, now time.Time) (changed bool, err error)

// mutate применяет fn к копии заказа под блокировкой и в транзакции.
// При ошибке сохранённый заказ не меняется.
func (s *orderService) mutate(ctx context.Context, op, orderID string, fn mutation) (entities.Order, error) {
	unlock := s.locks.Lock(orderID)
	defer unlock()

	var (
		result   entities.Order
		previous entities.Status
		changed  bool
	)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repo.GetOrderForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		previous = order.Status

		now := s.now()
		updated := order.Clone()
		changed, err = fn(&updated, now)
		if err != nil {
			return err
		}
		if !changed {
			result = order
			return nil
		}

		expected := updated.Version
		updated.Version++
		updated.UpdatedAt = now
		if err := s.repo.UpdateOrder(ctx, updated, expected); err != nil {
			return err
		}
		result = updated
		return nil
	})

	mutationsTotal.WithLabelValues(op, resultLabel(err)).Inc()
	if err != nil {
		s.logger.Debug("mutation rejected", slog.String("op", op), slog.String("order_id", orderID), slog.Any("error", err))
		return entities.Order{}, err
	}

	if changed {
		s.cacheOrder(result)
		if result.Status != previous {
			statusTransitions.WithLabelValues(string(result.Status)).Inc()
			s.publish(ctx, transitionEvents[result.Status], result, previous)
		}
	}
	return result, nil
}

var transitionEvents = map[entities.Status]entities.EventType{
	entities.StatusStarted:   entities.EventOrderStarted,
	entities.StatusCompleted: entities.EventOrderCompleted,
	entities.StatusCancelled: entities.EventOrderCancelled,
}

func (s *orderService) publish(ctx context.Context, t entities.EventType, order entities.Order, previous entities.Status) {
	// заказ уже закоммичен, отмена запроса не должна терять событие
	ctx = context.WithoutCancel(ctx)
	if err := s.publisher.PublishOrderEvent(ctx, entities.NewOrderEvent(t, order, previous)); err != nil {
		s.logger.Warn("failed to publish order event",
			slog.String("type", string(t)),
			slog.String("order_id", order.ID),
			slog.Any("error", err),
		)
	}
}

func (s *orderService) cachedOrder(orderID string) (entities.Order, bool) {
	data, ok := s.cache.Get(orderID)
	if !ok {
		return entities.Order{}, false
	}

	var order entities.Order
	if err := order.Unmarshal(data); err != nil {
		s.logger.Error("failed to unmarshal cached order", slog.String("order_id", orderID), slog.Any("error", err))
		s.cache.Delete(orderID)
		return entities.Order{}, false
	}
	return order, true
}

func (s *orderService) cacheOrder(order entities.Order) {
	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_id", order.ID), slog.Any("error", err))
		s.cache.Delete(order.ID)
		return
	}
	s.cache.Set(order.ID, data)
}

func normalizeTractor(t *entities.Tractor) *entities.Tractor {
	if t == nil || (t.Name == "" && t.Model == "") {
		return nil
	}
	c := *t
	return &c
}

func sameTractor(a, b *entities.Tractor) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
