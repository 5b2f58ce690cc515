package repo

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tractorcare/order-service/internal/entities"
)

var orderColumns = []string{
	"id", "customer_id", "tractor_name", "tractor_model", "status",
	"order_discount", "subtotal", "item_discounts", "total_discount", "total",
	"version", "created_at", "updated_at", "started_at", "completed_at", "cancelled_at",
}

var itemColumns = []string{
	"order_id", "position", "item_id", "item_type", "name",
	"unit_price", "quantity", "discount_percent",
}

type Order struct {
	ID            string          `db:"id"`
	CustomerID    string          `db:"customer_id"`
	TractorName   sql.NullString  `db:"tractor_name"`
	TractorModel  sql.NullString  `db:"tractor_model"`
	Status        string          `db:"status"`
	OrderDiscount decimal.Decimal `db:"order_discount"`
	Subtotal      decimal.Decimal `db:"subtotal"`
	ItemDiscounts decimal.Decimal `db:"item_discounts"`
	TotalDiscount decimal.Decimal `db:"total_discount"`
	Total         decimal.Decimal `db:"total"`
	Version       int             `db:"version"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
	StartedAt     sql.NullTime    `db:"started_at"`
	CompletedAt   sql.NullTime    `db:"completed_at"`
	CancelledAt   sql.NullTime    `db:"cancelled_at"`
}

type Item struct {
	OrderID         string          `db:"order_id"`
	Position        int             `db:"position"`
	ItemID          string          `db:"item_id"`
	ItemType        string          `db:"item_type"`
	Name            string          `db:"name"`
	UnitPrice       decimal.Decimal `db:"unit_price"`
	Quantity        int             `db:"quantity"`
	DiscountPercent int             `db:"discount_percent"`
}

type CatalogItem struct {
	ID       string          `db:"id"`
	ItemType string          `db:"item_type"`
	Name     string          `db:"name"`
	Price    decimal.Decimal `db:"price"`
	Status   string          `db:"status"`
}

func ItemToEntity(i Item) entities.LineItem {
	return entities.LineItem{
		ItemID:          i.ItemID,
		Type:            entities.ItemType(i.ItemType),
		Name:            i.Name,
		UnitPrice:       i.UnitPrice,
		Quantity:        i.Quantity,
		DiscountPercent: i.DiscountPercent,
	}
}

// OrderToEntity собирает заказ из строк; производные суммы пересчитываются
func OrderToEntity(o Order, items []Item) entities.Order {
	order := entities.Order{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		Status:        entities.Status(o.Status),
		OrderDiscount: o.OrderDiscount,
		Version:       o.Version,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
		StartedAt:     nullTimeToPtr(o.StartedAt),
		CompletedAt:   nullTimeToPtr(o.CompletedAt),
		CancelledAt:   nullTimeToPtr(o.CancelledAt),
		Items:         make([]entities.LineItem, 0, len(items)),
	}

	if o.TractorName.Valid || o.TractorModel.Valid {
		order.Tractor = &entities.Tractor{
			Name:  nullStringToString(o.TractorName),
			Model: nullStringToString(o.TractorModel),
		}
	}

	for _, it := range items {
		order.Items = append(order.Items, ItemToEntity(it))
	}

	order.Recalculate()
	return order
}

func OrderFromEntity(o entities.Order) Order {
	row := Order{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		Status:        string(o.Status),
		OrderDiscount: o.OrderDiscount,
		Subtotal:      o.Subtotal,
		ItemDiscounts: o.ItemDiscounts,
		TotalDiscount: o.TotalDiscount,
		Total:         o.Total,
		Version:       o.Version,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
		StartedAt:     ptrToNullTime(o.StartedAt),
		CompletedAt:   ptrToNullTime(o.CompletedAt),
		CancelledAt:   ptrToNullTime(o.CancelledAt),
	}
	if o.Tractor != nil {
		row.TractorName = nullString(o.Tractor.Name)
		row.TractorModel = nullString(o.Tractor.Model)
	}
	return row
}

func CatalogItemToEntity(c CatalogItem) entities.CatalogItem {
	return entities.CatalogItem{
		ID:        c.ID,
		Type:      entities.ItemType(c.ItemType),
		Name:      c.Name,
		UnitPrice: c.Price,
		Status:    entities.CatalogStatus(c.Status),
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullTimeToPtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}

func ptrToNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
