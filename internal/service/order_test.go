package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tractorcare/order-service/internal/entities"
	"github.com/tractorcare/order-service/internal/repo"
	"github.com/tractorcare/order-service/internal/service"
	mocks "github.com/tractorcare/order-service/internal/service/mocks"
	"github.com/tractorcare/order-service/pkg/cache"
	"github.com/tractorcare/order-service/pkg/trm"
)

type orderService interface {
	CreateDraft(ctx context.Context, customerID string, tractor *entities.Tractor) (entities.Order, error)
	GetOrder(ctx context.Context, orderID string) (entities.Order, error)
	DeleteOrder(ctx context.Context, orderID string) error
	UpdateTractor(ctx context.Context, orderID string, tractor *entities.Tractor) (entities.Order, error)
	AddItem(ctx context.Context, orderID, itemID string, itemType entities.ItemType, quantity int) (entities.Order, error)
	RemoveItem(ctx context.Context, orderID, itemID string) (entities.Order, error)
	UpdateItemQuantity(ctx context.Context, orderID, itemID string, quantity int) (entities.Order, error)
	UpdateItemDiscount(ctx context.Context, orderID, itemID string, delta int) (entities.Order, error)
	ApplyOrderDiscount(ctx context.Context, orderID string, amount decimal.Decimal) (entities.Order, error)
	Start(ctx context.Context, orderID string) (entities.Order, error)
	Complete(ctx context.Context, orderID string) (entities.Order, error)
	Cancel(ctx context.Context, orderID string) (entities.Order, error)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newStore(t *testing.T) *repo.MemoryRepo {
	ctx := context.Background()
	store := repo.NewMemoryRepo()

	require.NoError(t, store.SaveCustomer(ctx, entities.Customer{ID: "C1", Name: "Green Acres", UpdatedAt: time.Now()}))
	for _, item := range []entities.CatalogItem{
		{ID: "P1", Type: entities.ItemTypePart, Name: "Oil filter", UnitPrice: dec("100"), Status: entities.CatalogStatusAvailable},
		{ID: "P2", Type: entities.ItemTypePart, Name: "Hydraulic pump", UnitPrice: dec("420.50"), Status: entities.CatalogStatusOutOfStock},
		{ID: "S1", Type: entities.ItemTypeService, Name: "Engine diagnostics", UnitPrice: dec("75.25"), Status: entities.CatalogStatusAvailable},
	} {
		require.NoError(t, store.SaveCatalogItem(ctx, item))
	}
	return store
}

// newService собирает сервис на in-memory хранилище, события не проверяются
func newService(t *testing.T) (orderService, *repo.MemoryRepo) {
	store := newStore(t)
	publisher := mocks.NewMockEventPublisher(t)
	publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	svc := service.NewOrderService(discardLogger(), trm.NopManager{}, store, store, store, cache.NewLRUCache(100, time.Minute), publisher)
	return svc, store
}

func assertTotals(t *testing.T, o entities.Order) {
	t.Helper()
	itemDiscounts := decimal.Zero
	for _, it := range o.Items {
		itemDiscounts = itemDiscounts.Add(it.DiscountAmount)
	}
	assert.True(t, o.TotalDiscount.Equal(itemDiscounts.Add(o.OrderDiscount)), "totalDiscount = %s", o.TotalDiscount)
	assert.True(t, o.Total.Equal(decimal.Max(decimal.Zero, o.Subtotal.Sub(o.TotalDiscount))), "total = %s", o.Total)
}

func TestOrderService_DiscountScenario(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	order, err := svc.CreateDraft(ctx, "C1", &entities.Tractor{Name: "Belarus", Model: "MTZ-82"})
	require.NoError(t, err)
	assert.Equal(t, entities.StatusDraft, order.Status)
	assert.Equal(t, 1, order.Version)

	order, err = svc.AddItem(ctx, order.ID, "P1", entities.ItemTypePart, 2)
	require.NoError(t, err)
	assert.True(t, order.Subtotal.Equal(dec("200")))

	order, err = svc.UpdateItemDiscount(ctx, order.ID, "P1", 5)
	require.NoError(t, err)
	order, err = svc.UpdateItemDiscount(ctx, order.ID, "P1", 5)
	require.NoError(t, err)
	assert.True(t, order.Items[0].DiscountAmount.Equal(dec("20")))
	assert.True(t, order.Total.Equal(dec("180")))

	order, err = svc.ApplyOrderDiscount(ctx, order.ID, dec("30"))
	require.NoError(t, err)
	assert.True(t, order.Total.Equal(dec("150")))
	assertTotals(t, order)
	assert.Equal(t, 5, order.Version)

	order, err = svc.Start(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusStarted, order.Status)
	require.NotNil(t, order.StartedAt)

	order, err = svc.Complete(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusCompleted, order.Status)
	require.NotNil(t, order.CompletedAt)

	got, err := svc.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusCompleted, got.Status)
	assert.True(t, got.Total.Equal(dec("150")))
	assert.Equal(t, order.Version, got.Version)
}

func TestOrderService_CreateDraft(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	_, err := svc.CreateDraft(ctx, "unknown", nil)
	assert.ErrorIs(t, err, entities.ErrCustomerNotFound)

	order, err := svc.CreateDraft(ctx, "C1", &entities.Tractor{})
	require.NoError(t, err)
	assert.Nil(t, order.Tractor)
	assert.Empty(t, order.Items)
	assert.True(t, order.Total.IsZero())
}

func TestOrderService_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("same item merges into one line", func(t *testing.T) {
		svc, _ := newService(t)
		order, err := svc.CreateDraft(ctx, "C1", nil)
		require.NoError(t, err)

		_, err = svc.AddItem(ctx, order.ID, "P1", entities.ItemTypePart, 1)
		require.NoError(t, err)
		order, err = svc.AddItem(ctx, order.ID, "P1", entities.ItemTypePart, 2)
		require.NoError(t, err)

		require.Len(t, order.Items, 1)
		assert.Equal(t, 3, order.Items[0].Quantity)
		assert.Equal(t, "Oil filter", order.Items[0].Name)
		assert.True(t, order.Subtotal.Equal(dec("300")))
	})

	testCases := []struct {
		name     string
		itemID   string
		itemType entities.ItemType
		quantity int
		wantErr  error
	}{
		{name: "zero quantity", itemID: "P1", itemType: entities.ItemTypePart, quantity: 0, wantErr: entities.ErrInvalidQuantity},
		{name: "negative quantity", itemID: "P1", itemType: entities.ItemTypePart, quantity: -1, wantErr: entities.ErrInvalidQuantity},
		{name: "unknown item", itemID: "X", itemType: entities.ItemTypePart, quantity: 1, wantErr: entities.ErrCatalogItemNotFound},
		{name: "wrong type", itemID: "P1", itemType: entities.ItemTypeService, quantity: 1, wantErr: entities.ErrCatalogItemNotFound},
		{name: "out of stock", itemID: "P2", itemType: entities.ItemTypePart, quantity: 1, wantErr: entities.ErrItemUnavailable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, store := newService(t)
			order, err := svc.CreateDraft(ctx, "C1", nil)
			require.NoError(t, err)

			_, err = svc.AddItem(ctx, order.ID, tc.itemID, tc.itemType, tc.quantity)
			assert.ErrorIs(t, err, tc.wantErr)

			stored, err := store.GetOrder(ctx, order.ID)
			require.NoError(t, err)
			assert.Empty(t, stored.Items)
			assert.Equal(t, 1, stored.Version)
		})
	}
}

func TestOrderService_ItemEdits(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	order, err := svc.CreateDraft(ctx, "C1", nil)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, order.ID, "P1", entities.ItemTypePart, 1)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, order.ID, "S1", entities.ItemTypeService, 2)
	require.NoError(t, err)

	order, err = svc.UpdateItemQuantity(ctx, order.ID, "S1", 4)
	require.NoError(t, err)
	assert.True(t, order.Subtotal.Equal(dec("401")))

	version := order.Version
	order, err = svc.UpdateItemQuantity(ctx, order.ID, "S1", 4)
	require.NoError(t, err)
	assert.Equal(t, version, order.Version, "same quantity is not a change")

	order, err = svc.UpdateItemQuantity(ctx, order.ID, "S1", 0)
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "P1", order.Items[0].ItemID)

	_, err = svc.RemoveItem(ctx, order.ID, "S1")
	assert.ErrorIs(t, err, entities.ErrItemNotFound)

	order, err = svc.RemoveItem(ctx, order.ID, "P1")
	require.NoError(t, err)
	assert.Empty(t, order.Items)
	assert.True(t, order.Total.IsZero())

	_, err = svc.UpdateItemDiscount(ctx, order.ID, "P1", 5)
	assert.ErrorIs(t, err, entities.ErrItemNotFound)

	order, err = svc.UpdateTractor(ctx, order.ID, &entities.Tractor{Name: "John Deere", Model: "6M"})
	require.NoError(t, err)
	require.NotNil(t, order.Tractor)
	assert.Equal(t, "6M", order.Tractor.Model)
}

func TestOrderService_DiscountClampIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	order, err := svc.CreateDraft(ctx, "C1", nil)
	require.NoError(t, err)
	order, err = svc.AddItem(ctx, order.ID, "P1", entities.ItemTypePart, 1)
	require.NoError(t, err)
	version := order.Version

	for range 3 {
		order, err = svc.UpdateItemDiscount(ctx, order.ID, "P1", -5)
		require.NoError(t, err)
	}
	assert.Equal(t, 0, order.Items[0].DiscountPercent)
	assert.Equal(t, version, order.Version)

	for range 25 {
		order, err = svc.UpdateItemDiscount(ctx, order.ID, "P1", 5)
		require.NoError(t, err)
	}
	assert.Equal(t, 100, order.Items[0].DiscountPercent)
	assert.Equal(t, version+20, order.Version)
	assert.True(t, order.Total.IsZero())

	_, err = svc.ApplyOrderDiscount(ctx, order.ID, dec("-1"))
	assert.ErrorIs(t, err, entities.ErrInvalidDiscount)
	_, err = svc.ApplyOrderDiscount(ctx, order.ID, dec("1.005"))
	assert.ErrorIs(t, err, entities.ErrInvalidDiscount)
}

func TestOrderService_StateGuard(t *testing.T) {
	ctx := context.Background()

	mutations := []struct {
		name string
		fn   func(svc orderService, orderID string) error
	}{
		{name: "add item", fn: func(svc orderService, id string) error {
			_, err := svc.AddItem(ctx, id, "S1", entities.ItemTypeService, 1)
			return err
		}},
		{name: "add existing item", fn: func(svc orderService, id string) error {
			_, err := svc.AddItem(ctx, id, "P1", entities.ItemTypePart, 1)
			return err
		}},
		{name: "remove item", fn: func(svc orderService, id string) error {
			_, err := svc.RemoveItem(ctx, id, "P1")
			return err
		}},
		{name: "update quantity", fn: func(svc orderService, id string) error {
			_, err := svc.UpdateItemQuantity(ctx, id, "P1", 7)
			return err
		}},
		{name: "item discount", fn: func(svc orderService, id string) error {
			_, err := svc.UpdateItemDiscount(ctx, id, "P1", 5)
			return err
		}},
		{name: "order discount", fn: func(svc orderService, id string) error {
			_, err := svc.ApplyOrderDiscount(ctx, id, dec("10"))
			return err
		}},
		{name: "tractor", fn: func(svc orderService, id string) error {
			_, err := svc.UpdateTractor(ctx, id, &entities.Tractor{Name: "Kubota"})
			return err
		}},
	}

	states := []struct {
		name    string
		prepare func(svc orderService, orderID string) error
	}{
		{name: "started", prepare: func(svc orderService, id string) error {
			_, err := svc.Start(ctx, id)
			return err
		}},
		{name: "completed", prepare: func(svc orderService, id string) error {
			if _, err := svc.Start(ctx, id); err != nil {
				return err
			}
			_, err := svc.Complete(ctx, id)
			return err
		}},
		{name: "cancelled", prepare: func(svc orderService, id string) error {
			_, err := svc.Cancel(ctx, id)
			return err
		}},
	}

	for _, st := range states {
		for _, m := range mutations {
			t.Run(st.name+"/"+m.name, func(t *testing.T) {
				svc, store := newService(t)
				order, err := svc.CreateDraft(ctx, "C1", nil)
				require.NoError(t, err)
				_, err = svc.AddItem(ctx, order.ID, "P1", entities.ItemTypePart, 2)
				require.NoError(t, err)
				require.NoError(t, st.prepare(svc, order.ID))

				before, err := store.GetOrder(ctx, order.ID)
				require.NoError(t, err)
				beforeData, err := before.Marshal()
				require.NoError(t, err)

				assert.ErrorIs(t, m.fn(svc, order.ID), entities.ErrInvalidState)

				after, err := store.GetOrder(ctx, order.ID)
				require.NoError(t, err)
				afterData, err := after.Marshal()
				require.NoError(t, err)
				assert.Equal(t, beforeData, afterData)
			})
		}
	}
}

func TestOrderService_Transitions(t *testing.T) {
	ctx := context.Background()

	t.Run("start requires items", func(t *testing.T) {
		svc, _ := newService(t)
		order, err := svc.CreateDraft(ctx, "C1", nil)
		require.NoError(t, err)

		_, err = svc.Start(ctx, order.ID)
		assert.ErrorIs(t, err, entities.ErrEmptyOrder)
	})

	t.Run("complete requires start", func(t *testing.T) {
		svc, _ := newService(t)
		order, err := svc.CreateDraft(ctx, "C1", nil)
		require.NoError(t, err)
		_, err = svc.AddItem(ctx, order.ID, "P1", entities.ItemTypePart, 1)
		require.NoError(t, err)

		_, err = svc.Complete(ctx, order.ID)
		assert.ErrorIs(t, err, entities.ErrInvalidState)
	})

	t.Run("cancel started order", func(t *testing.T) {
		svc, _ := newService(t)
		order, err := svc.CreateDraft(ctx, "C1", nil)
		require.NoError(t, err)
		_, err = svc.AddItem(ctx, order.ID, "P1", entities.ItemTypePart, 1)
		require.NoError(t, err)
		_, err = svc.Start(ctx, order.ID)
		require.NoError(t, err)

		order, err = svc.Cancel(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.StatusCancelled, order.Status)
		assert.NotNil(t, order.CancelledAt)
	})

	t.Run("completed order cannot be cancelled", func(t *testing.T) {
		svc, _ := newService(t)
		order, err := svc.CreateDraft(ctx, "C1", nil)
		require.NoError(t, err)
		_, err = svc.AddItem(ctx, order.ID, "P1", entities.ItemTypePart, 1)
		require.NoError(t, err)
		_, err = svc.Start(ctx, order.ID)
		require.NoError(t, err)
		_, err = svc.Complete(ctx, order.ID)
		require.NoError(t, err)

		_, err = svc.Cancel(ctx, order.ID)
		assert.ErrorIs(t, err, entities.ErrInvalidState)
	})

	t.Run("unknown order", func(t *testing.T) {
		svc, _ := newService(t)
		_, err := svc.Start(ctx, "missing")
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
		_, err = svc.GetOrder(ctx, "missing")
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}

func TestOrderService_DeleteOrder(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	draft, err := svc.CreateDraft(ctx, "C1", nil)
	require.NoError(t, err)
	_, err = svc.GetOrder(ctx, draft.ID)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOrder(ctx, draft.ID))
	_, err = svc.GetOrder(ctx, draft.ID)
	assert.ErrorIs(t, err, entities.ErrOrderNotFound, "deleted order must not be served from cache")
	assert.ErrorIs(t, svc.DeleteOrder(ctx, draft.ID), entities.ErrOrderNotFound)

	started, err := svc.CreateDraft(ctx, "C1", nil)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, started.ID, "P1", entities.ItemTypePart, 1)
	require.NoError(t, err)
	_, err = svc.Start(ctx, started.ID)
	require.NoError(t, err)
	assert.ErrorIs(t, svc.DeleteOrder(ctx, started.ID), entities.ErrInvalidState)

	_, err = svc.Cancel(ctx, started.ID)
	require.NoError(t, err)
	assert.NoError(t, svc.DeleteOrder(ctx, started.ID))
}

func TestOrderService_ConcurrentDiscountsSerialize(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t)

	order, err := svc.CreateDraft(ctx, "C1", nil)
	require.NoError(t, err)
	order, err = svc.AddItem(ctx, order.ID, "P1", entities.ItemTypePart, 2)
	require.NoError(t, err)
	version := order.Version

	const workers = 10
	var wg sync.WaitGroup
	errs := make(chan error, workers*2)
	for range workers {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := svc.UpdateItemDiscount(ctx, order.ID, "P1", 5)
			errs <- err
		}()
		go func() {
			defer wg.Done()
			_, err := svc.AddItem(ctx, order.ID, "S1", entities.ItemTypeService, 1)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	stored, err := store.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	p1, ok := stored.Item("P1")
	require.True(t, ok)
	s1, ok := stored.Item("S1")
	require.True(t, ok)

	assert.Equal(t, 50, p1.DiscountPercent)
	assert.Equal(t, workers, s1.Quantity)
	assert.Equal(t, version+workers*2, stored.Version)
	assertTotals(t, stored)

	got, err := svc.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.Version, got.Version)
}

func TestOrderService_PublishesLifecycleEvents(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	publisher := mocks.NewMockEventPublisher(t)

	var (
		mu     sync.Mutex
		events []entities.OrderEvent
	)
	publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, e entities.OrderEvent) error {
			mu.Lock()
			defer mu.Unlock()
			events = append(events, e)
			return nil
		})

	svc := service.NewOrderService(discardLogger(), trm.NopManager{}, store, store, store, cache.NewLRUCache(10, time.Minute), publisher)

	order, err := svc.CreateDraft(ctx, "C1", nil)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, order.ID, "P1", entities.ItemTypePart, 1)
	require.NoError(t, err)
	_, err = svc.Start(ctx, order.ID)
	require.NoError(t, err)
	order, err = svc.Complete(ctx, order.ID)
	require.NoError(t, err)

	require.Len(t, events, 3)
	assert.Equal(t, entities.EventOrderCreated, events[0].Type)
	assert.Equal(t, entities.EventOrderStarted, events[1].Type)
	assert.Equal(t, entities.StatusDraft, events[1].PreviousStatus)
	assert.Equal(t, entities.EventOrderCompleted, events[2].Type)
	assert.Equal(t, entities.StatusStarted, events[2].PreviousStatus)
	assert.Equal(t, order.Version, events[2].Version)
	assert.True(t, events[2].Total.Equal(dec("100")))
}

func TestOrderService_PublishFailureDoesNotFailMutation(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	publisher := mocks.NewMockEventPublisher(t)
	publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	svc := service.NewOrderService(discardLogger(), trm.NopManager{}, store, store, store, cache.NewLRUCache(10, time.Minute), publisher)

	order, err := svc.CreateDraft(ctx, "C1", nil)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, order.ID, "P1", entities.ItemTypePart, 1)
	require.NoError(t, err)
	order, err = svc.Start(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusStarted, order.Status)
}

func TestOrderService_FailedPersistLeavesNoTrace(t *testing.T) {
	ctx := context.Background()
	dbError := errors.New("db error")

	draft := entities.NewDraftOrder("o1", "C1", nil, time.Now())
	draft.Items = []entities.LineItem{{ItemID: "P1", Type: entities.ItemTypePart, UnitPrice: dec("100"), Quantity: 1}}
	draft.Recalculate()

	orderRepo := mocks.NewMockOrderRepo(t)
	orderRepo.EXPECT().GetOrderForUpdate(mock.Anything, "o1").Return(draft, nil).Once()
	orderRepo.EXPECT().UpdateOrder(mock.Anything, mock.Anything, 1).Return(dbError).Once()

	// кэш и издатель не должны вызываться
	orderCache := mocks.NewMockCache(t)
	publisher := mocks.NewMockEventPublisher(t)

	svc := service.NewOrderService(discardLogger(), trm.NopManager{}, orderRepo, mocks.NewMockCatalog(t), mocks.NewMockCustomerDirectory(t), orderCache, publisher)

	_, err := svc.Start(ctx, "o1")
	assert.ErrorIs(t, err, dbError)
	assert.Equal(t, entities.StatusDraft, draft.Status)
}

func TestOrderService_VersionConflict(t *testing.T) {
	ctx := context.Background()

	draft := entities.NewDraftOrder("o1", "C1", nil, time.Now())
	orderRepo := mocks.NewMockOrderRepo(t)
	orderRepo.EXPECT().GetOrderForUpdate(mock.Anything, "o1").Return(draft, nil).Once()
	orderRepo.EXPECT().UpdateOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
		return o.Version == 2
	}), 1).Return(entities.ErrVersionConflict).Once()

	svc := service.NewOrderService(discardLogger(), trm.NopManager{}, orderRepo, mocks.NewMockCatalog(t),
		mocks.NewMockCustomerDirectory(t), mocks.NewMockCache(t), mocks.NewMockEventPublisher(t))

	_, err := svc.ApplyOrderDiscount(ctx, "o1", dec("5"))
	assert.ErrorIs(t, err, entities.ErrVersionConflict)
}

func TestOrderService_GetOrderUsesCache(t *testing.T) {
	ctx := context.Background()

	order := entities.NewDraftOrder("o1", "C1", &entities.Tractor{Name: "MTZ"}, time.Now())
	orderRepo := mocks.NewMockOrderRepo(t)
	orderRepo.EXPECT().GetOrder(mock.Anything, "o1").Return(order, nil).Once()
	orderRepo.EXPECT().OrderVersion(mock.Anything, "o1").Return(order.Version, nil).Times(2)

	svc := service.NewOrderService(discardLogger(), trm.NopManager{}, orderRepo, mocks.NewMockCatalog(t),
		mocks.NewMockCustomerDirectory(t), cache.NewLRUCache(10, time.Minute), mocks.NewMockEventPublisher(t))

	for range 3 {
		got, err := svc.GetOrder(ctx, "o1")
		require.NoError(t, err)
		assert.Equal(t, "o1", got.ID)
		require.NotNil(t, got.Tractor)
		assert.Equal(t, "MTZ", got.Tractor.Name)
	}
}

func TestOrderService_GetOrderReloadsNewerVersion(t *testing.T) {
	ctx := context.Background()

	stale := entities.NewDraftOrder("o1", "C1", nil, time.Now())
	fresh := stale.Clone()
	fresh.OrderDiscount = dec("30")
	fresh.Version = 4

	orderCache := cache.NewLRUCache(10, time.Minute)
	data, err := stale.Marshal()
	require.NoError(t, err)
	orderCache.Set("o1", data)

	orderRepo := mocks.NewMockOrderRepo(t)
	orderRepo.EXPECT().OrderVersion(mock.Anything, "o1").Return(4, nil).Once()
	orderRepo.EXPECT().GetOrder(mock.Anything, "o1").Return(fresh, nil).Once()

	svc := service.NewOrderService(discardLogger(), trm.NopManager{}, orderRepo, mocks.NewMockCatalog(t),
		mocks.NewMockCustomerDirectory(t), orderCache, mocks.NewMockEventPublisher(t))

	got, err := svc.GetOrder(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, 4, got.Version)
	assert.True(t, got.OrderDiscount.Equal(dec("30")))

	var cached entities.Order
	data, ok := orderCache.Get("o1")
	require.True(t, ok)
	require.NoError(t, cached.Unmarshal(data))
	assert.Equal(t, 4, cached.Version)
}

func TestOrderService_GetOrderDeletedElsewhere(t *testing.T) {
	ctx := context.Background()

	order := entities.NewDraftOrder("o1", "C1", nil, time.Now())
	orderCache := cache.NewLRUCache(10, time.Minute)
	data, err := order.Marshal()
	require.NoError(t, err)
	orderCache.Set("o1", data)

	orderRepo := mocks.NewMockOrderRepo(t)
	orderRepo.EXPECT().OrderVersion(mock.Anything, "o1").Return(0, entities.ErrOrderNotFound).Once()

	svc := service.NewOrderService(discardLogger(), trm.NopManager{}, orderRepo, mocks.NewMockCatalog(t),
		mocks.NewMockCustomerDirectory(t), orderCache, mocks.NewMockEventPublisher(t))

	_, err = svc.GetOrder(ctx, "o1")
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	assert.Equal(t, 0, orderCache.Len())
}

func TestOrderService_GetOrderIgnoresBrokenCacheEntry(t *testing.T) {
	ctx := context.Background()

	order := entities.NewDraftOrder("o1", "C1", nil, time.Now())
	orderRepo := mocks.NewMockOrderRepo(t)
	orderRepo.EXPECT().GetOrder(mock.Anything, "o1").Return(order, nil).Once()

	orderCache := mocks.NewMockCache(t)
	orderCache.EXPECT().Get("o1").Return([]byte("garbage"), true)
	orderCache.EXPECT().Delete("o1").Return()
	orderCache.EXPECT().Set("o1", mock.Anything).Return().Once()

	svc := service.NewOrderService(discardLogger(), trm.NopManager{}, orderRepo, mocks.NewMockCatalog(t),
		mocks.NewMockCustomerDirectory(t), orderCache, mocks.NewMockEventPublisher(t))

	got, err := svc.GetOrder(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, "o1", got.ID)
}

func TestOrderService_ListOrdersLimits(t *testing.T) {
	testCases := []struct {
		name      string
		filter    entities.OrderFilter
		wantLimit int
	}{
		{name: "default", filter: entities.OrderFilter{}, wantLimit: service.DefaultListLimit},
		{name: "explicit", filter: entities.OrderFilter{Limit: 5}, wantLimit: 5},
		{name: "capped", filter: entities.OrderFilter{Limit: 1000}, wantLimit: service.MaxListLimit},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo := mocks.NewMockOrderRepo(t)
			orderRepo.EXPECT().ListOrders(mock.Anything, mock.MatchedBy(func(f entities.OrderFilter) bool {
				return f.Limit == tc.wantLimit
			})).Return([]entities.Order{}, nil).Once()

			svc := service.NewOrderService(discardLogger(), trm.NopManager{}, orderRepo, mocks.NewMockCatalog(t),
				mocks.NewMockCustomerDirectory(t), mocks.NewMockCache(t), mocks.NewMockEventPublisher(t))

			orders, err := svc.ListOrders(context.Background(), tc.filter)
			require.NoError(t, err)
			assert.Empty(t, orders)
		})
	}
}

func TestOrderService_WarmUpCache(t *testing.T) {
	orders := []entities.Order{
		entities.NewDraftOrder("o1", "C1", nil, time.Now()),
		entities.NewDraftOrder("o2", "C1", nil, time.Now()),
	}

	orderRepo := mocks.NewMockOrderRepo(t)
	orderRepo.EXPECT().LatestOrders(mock.Anything, 2).Return(orders, nil).Once()

	orderCache := cache.NewLRUCache(10, time.Minute)
	svc := service.NewOrderService(discardLogger(), trm.NopManager{}, orderRepo, mocks.NewMockCatalog(t),
		mocks.NewMockCustomerDirectory(t), orderCache, mocks.NewMockEventPublisher(t))

	require.NoError(t, svc.WarmUpCache(context.Background(), 2))
	assert.Equal(t, 2, orderCache.Len())
	require.NoError(t, svc.WarmUpCache(context.Background(), 0))
}
