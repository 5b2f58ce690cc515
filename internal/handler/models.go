package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tractorcare/order-service/internal/entities"
	"github.com/tractorcare/order-service/internal/pricing"
)

// Order полный снимок заказа, суммы округлены до копеек
type Order struct {
	ID            string     `json:"id"`
	CustomerID    string     `json:"customerId"`
	Tractor       *Tractor   `json:"tractor,omitempty"`
	Status        string     `json:"status" enums:"draft,started,completed,cancelled"`
	Items         []Item     `json:"items"`
	Subtotal      string     `json:"subtotal" example:"200.00"`
	ItemDiscounts string     `json:"itemDiscounts" example:"20.00"`
	OrderDiscount string     `json:"orderDiscount" example:"30.00"`
	TotalDiscount string     `json:"totalDiscount" example:"50.00"`
	Total         string     `json:"total" example:"150.00"`
	Version       int        `json:"version"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	StartedAt     *time.Time `json:"startedAt,omitempty"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
	CancelledAt   *time.Time `json:"cancelledAt,omitempty"`
}

// Item позиция заказа
type Item struct {
	ItemID          string `json:"itemId"`
	Type            string `json:"type" enums:"service,part"`
	Name            string `json:"name"`
	UnitPrice       string `json:"unitPrice" example:"100.00"`
	Quantity        int    `json:"quantity"`
	DiscountPercent int    `json:"discountPercent"`
	Subtotal        string `json:"subtotal"`
	DiscountAmount  string `json:"discountAmount"`
	Total           string `json:"total"`
}

// Tractor техника клиента
type Tractor struct {
	Name  string `json:"name" validate:"max=100"`
	Model string `json:"model" validate:"max=100"`
}

// OrderList страница заказов
type OrderList struct {
	Orders []Order `json:"orders"`
	Limit  int     `json:"limit"`
	Offset int     `json:"offset"`
}

type CreateOrderRequest struct {
	CustomerID string   `json:"customerId" validate:"required,max=64"`
	Tractor    *Tractor `json:"tractor,omitempty"`
}

type AddItemRequest struct {
	ItemID   string `json:"itemId" validate:"required,max=64"`
	Type     string `json:"type" validate:"required,oneof=service part" enums:"service,part"`
	Quantity int    `json:"quantity"`
}

type UpdateQuantityRequest struct {
	// 0 и меньше удаляет позицию
	Quantity *int `json:"quantity" validate:"required"`
}

type UpdateDiscountRequest struct {
	// относительное изменение в процентных пунктах, обычно ±5
	Delta *int `json:"delta" validate:"required,gte=-100,lte=100"`
}

type OrderDiscountRequest struct {
	Amount *decimal.Decimal `json:"amount" validate:"required" swaggertype:"string" example:"30.00"`
}

func money(d decimal.Decimal) string {
	return pricing.Round(d).StringFixed(2)
}

func ItemEntityToJSON(i entities.LineItem, totals pricing.LineTotals) Item {
	return Item{
		ItemID:          i.ItemID,
		Type:            string(i.Type),
		Name:            i.Name,
		UnitPrice:       money(i.UnitPrice),
		Quantity:        i.Quantity,
		DiscountPercent: i.DiscountPercent,
		Subtotal:        money(totals.Subtotal),
		DiscountAmount:  money(totals.Discount),
		Total:           money(totals.Final),
	}
}

// OrderEntityToJSON отдаёт суммы в копейках; итоги считаются из округлённых
// слагаемых, чтобы total == subtotal - totalDiscount выполнялось и в ответе.
func OrderEntityToJSON(o entities.Order) Order {
	exact := pricing.Totals{
		Lines:         make([]pricing.LineTotals, 0, len(o.Items)),
		OrderDiscount: o.OrderDiscount,
	}
	for _, it := range o.Items {
		exact.Lines = append(exact.Lines, pricing.LineTotals{Subtotal: it.Subtotal, Discount: it.DiscountAmount})
	}
	totals := pricing.Rounded(exact)

	items := make([]Item, 0, len(o.Items))
	for i, it := range o.Items {
		items = append(items, ItemEntityToJSON(it, totals.Lines[i]))
	}

	res := Order{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		Status:        string(o.Status),
		Items:         items,
		Subtotal:      money(totals.Subtotal),
		ItemDiscounts: money(totals.ItemDiscounts),
		OrderDiscount: money(totals.OrderDiscount),
		TotalDiscount: money(totals.TotalDiscount),
		Total:         money(totals.Total),
		Version:       o.Version,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
		StartedAt:     o.StartedAt,
		CompletedAt:   o.CompletedAt,
		CancelledAt:   o.CancelledAt,
	}
	if o.Tractor != nil {
		res.Tractor = &Tractor{Name: o.Tractor.Name, Model: o.Tractor.Model}
	}
	return res
}

func TractorJSONToEntity(t *Tractor) *entities.Tractor {
	if t == nil {
		return nil
	}
	return &entities.Tractor{Name: t.Name, Model: t.Model}
}
