package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tractorcare/order-service/internal/entities"
	"github.com/tractorcare/order-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) error {
	row := OrderFromEntity(o)
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			row.ID, row.CustomerID, row.TractorName, row.TractorModel, row.Status,
			row.OrderDiscount, row.Subtotal, row.ItemDiscounts, row.TotalDiscount, row.Total,
			row.Version, row.CreatedAt, row.UpdatedAt, row.StartedAt, row.CompletedAt, row.CancelledAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return r.insertItems(ctx, o.ID, o.Items)
}

// GetOrder читает заказ и позиции из одного снимка, чтобы не смешать версии
func (r *postgresRepo) GetOrder(ctx context.Context, orderID string) (order entities.Order, err error) {
	err = trm.ReadSnapshot(ctx, r.db, func(ctx context.Context) error {
		order, err = r.getOrder(ctx, orderID, false)
		return err
	})
	return order, err
}

func (r *postgresRepo) OrderVersion(ctx context.Context, orderID string) (int, error) {
	query, args := r.qb.Select("version").
		From("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()

	var version int
	err := r.getContext(ctx, &version, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, entities.ErrOrderNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get order version: %w", err)
	}
	return version, nil
}

// GetOrderForUpdate блокирует строку заказа до конца текущей транзакции
func (r *postgresRepo) GetOrderForUpdate(ctx context.Context, orderID string) (entities.Order, error) {
	return r.getOrder(ctx, orderID, true)
}

func (r *postgresRepo) getOrder(ctx context.Context, orderID string, forUpdate bool) (entities.Order, error) {
	qb := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID})
	if forUpdate {
		qb = qb.Suffix("FOR UPDATE")
	}
	query, args := qb.MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("position").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get items: %w", err)
	}

	return OrderToEntity(order, items), nil
}

// UpdateOrder saves o if the stored version still equals expectedVersion.
func (r *postgresRepo) UpdateOrder(ctx context.Context, o entities.Order, expectedVersion int) error {
	row := OrderFromEntity(o)
	query, args := r.qb.Update("orders").
		SetMap(map[string]any{
			"tractor_name":   row.TractorName,
			"tractor_model":  row.TractorModel,
			"status":         row.Status,
			"order_discount": row.OrderDiscount,
			"subtotal":       row.Subtotal,
			"item_discounts": row.ItemDiscounts,
			"total_discount": row.TotalDiscount,
			"total":          row.Total,
			"version":        row.Version,
			"updated_at":     row.UpdatedAt,
			"started_at":     row.StartedAt,
			"completed_at":   row.CompletedAt,
			"cancelled_at":   row.CancelledAt,
		}).
		Where(sq.Eq{"id": o.ID, "version": expectedVersion}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if rows == 0 {
		return entities.ErrVersionConflict
	}

	query, args = r.qb.Delete("order_items").
		Where(sq.Eq{"order_id": o.ID}).
		MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear items: %w", err)
	}

	return r.insertItems(ctx, o.ID, o.Items)
}

func (r *postgresRepo) insertItems(ctx context.Context, orderID string, items []entities.LineItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").Columns(itemColumns...)
	for i, it := range items {
		q = q.Values(
			orderID,
			i,
			it.ItemID,
			string(it.Type),
			it.Name,
			it.UnitPrice,
			it.Quantity,
			it.DiscountPercent,
		)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save items: %w", err)
	}
	return nil
}

func (r *postgresRepo) DeleteOrder(ctx context.Context, orderID string) error {
	// позиции удаляются каскадно
	query, args := r.qb.Delete("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if rows == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *postgresRepo) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	qb := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC", "id").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))
	if filter.CustomerID != "" {
		qb = qb.Where(sq.Eq{"customer_id": filter.CustomerID})
	}
	if filter.Status != "" {
		qb = qb.Where(sq.Eq{"status": string(filter.Status)})
	}

	query, args := qb.MustSql()

	var result []entities.Order
	err := trm.ReadSnapshot(ctx, r.db, func(ctx context.Context) error {
		var orders []Order
		if err := r.selectContext(ctx, &orders, query, args...); err != nil {
			return fmt.Errorf("failed to select orders: %w", err)
		}

		var err error
		result, err = r.withItems(ctx, orders)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	return r.ListOrders(ctx, entities.OrderFilter{Limit: count})
}

func (r *postgresRepo) withItems(ctx context.Context, orders []Order) ([]entities.Order, error) {
	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	query, args := r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("order_id", "position").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	itemsMap := make(map[string][]Item, len(ids))
	for _, item := range items {
		itemsMap[item.OrderID] = append(itemsMap[item.OrderID], item)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order, itemsMap[order.ID]))
	}
	return result, nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
