package entities

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tractorcare/order-service/internal/pricing"
)

type Tractor struct {
	Name  string
	Model string
}

type Order struct {
	ID         string
	CustomerID string
	Tractor    *Tractor
	Status     Status
	Items      []LineItem

	OrderDiscount decimal.Decimal

	// вычисляемые поля, пересчитываются после каждой мутации
	Subtotal      decimal.Decimal
	ItemDiscounts decimal.Decimal
	TotalDiscount decimal.Decimal
	Total         decimal.Decimal

	Version     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time
}

type OrderFilter struct {
	CustomerID string
	Status     Status
	Limit      int
	Offset     int
}

func NewDraftOrder(id, customerID string, tractor *Tractor, now time.Time) Order {
	o := Order{
		ID:            id,
		CustomerID:    customerID,
		Tractor:       tractor,
		Status:        StatusDraft,
		Items:         []LineItem{},
		OrderDiscount: decimal.Zero,
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	o.Recalculate()
	return o
}

// Recalculate refreshes every derived amount from items and the order discount.
func (o *Order) Recalculate() {
	lines := make([]pricing.Line, len(o.Items))
	for i, it := range o.Items {
		lines[i] = pricing.Line{
			UnitPrice:       it.UnitPrice,
			Quantity:        it.Quantity,
			DiscountPercent: it.DiscountPercent,
		}
	}

	totals := pricing.Calculate(lines, o.OrderDiscount)
	for i, lt := range totals.Lines {
		o.Items[i].Subtotal = lt.Subtotal
		o.Items[i].DiscountAmount = lt.Discount
		o.Items[i].Final = lt.Final
	}

	o.Subtotal = totals.Subtotal
	o.ItemDiscounts = totals.ItemDiscounts
	o.TotalDiscount = totals.TotalDiscount
	o.Total = totals.Total
}

func (o *Order) ensureEditable() error {
	if !o.Status.Editable() {
		return fmt.Errorf("%w: order is %s", ErrInvalidState, o.Status)
	}
	return nil
}

func (o *Order) SetTractor(t *Tractor) error {
	if err := o.ensureEditable(); err != nil {
		return err
	}
	o.Tractor = t
	return nil
}

// ApplyOrderDiscount sets the flat order-level discount. It reports whether
// the amount changed.
func (o *Order) ApplyOrderDiscount(amount decimal.Decimal) (bool, error) {
	if err := o.ensureEditable(); err != nil {
		return false, err
	}
	if amount.IsNegative() || !amount.Equal(amount.Round(2)) {
		return false, fmt.Errorf("%w: %s", ErrInvalidDiscount, amount)
	}
	if o.OrderDiscount.Equal(amount) {
		return false, nil
	}
	o.OrderDiscount = amount
	o.Recalculate()
	return true, nil
}

func (o *Order) transition(next Status) error {
	if !o.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: cannot move from %s to %s", ErrInvalidState, o.Status, next)
	}
	o.Status = next
	return nil
}

func (o *Order) Start(now time.Time) error {
	if o.Status == StatusDraft && len(o.Items) == 0 {
		return ErrEmptyOrder
	}
	if err := o.transition(StatusStarted); err != nil {
		return err
	}
	o.StartedAt = &now
	return nil
}

func (o *Order) Complete(now time.Time) error {
	if err := o.transition(StatusCompleted); err != nil {
		return err
	}
	o.CompletedAt = &now
	return nil
}

func (o *Order) Cancel(now time.Time) error {
	if err := o.transition(StatusCancelled); err != nil {
		return err
	}
	o.CancelledAt = &now
	return nil
}

// Deletable reports whether the order may be removed together with its items.
func (o *Order) Deletable() bool {
	return o.Status == StatusDraft || o.Status == StatusCancelled
}

// Clone returns a copy that shares no mutable state with o.
func (o Order) Clone() Order {
	c := o
	c.Items = make([]LineItem, len(o.Items))
	copy(c.Items, o.Items)
	if o.Tractor != nil {
		t := *o.Tractor
		c.Tractor = &t
	}
	c.StartedAt = cloneTime(o.StartedAt)
	c.CompletedAt = cloneTime(o.CompletedAt)
	c.CancelledAt = cloneTime(o.CancelledAt)
	return c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	if err := dec.Decode(o); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOrder, err)
	}
	return nil
}

func init() {
	gob.Register(Order{})
	gob.Register(Tractor{})
	gob.Register(LineItem{})
}
