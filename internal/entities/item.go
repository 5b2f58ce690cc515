package entities

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tractorcare/order-service/internal/pricing"
)

// LineItem is one catalog entry on an order. UnitPrice and Name are captured
// when the item is first added and never refreshed from the catalog.
type LineItem struct {
	ItemID          string
	Type            ItemType
	Name            string
	UnitPrice       decimal.Decimal
	Quantity        int
	DiscountPercent int

	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	Final          decimal.Decimal
}

// PriceResolver looks up the current catalog entry for an item.
type PriceResolver func(itemID string, itemType ItemType) (CatalogItem, error)

func (o *Order) findItem(itemID string) int {
	for i, it := range o.Items {
		if it.ItemID == itemID {
			return i
		}
	}
	return -1
}

func (o *Order) Item(itemID string) (LineItem, bool) {
	if i := o.findItem(itemID); i >= 0 {
		return o.Items[i], true
	}
	return LineItem{}, false
}

// AddItem adds quantity units of an item. An item already on the order keeps
// its frozen price and only has its quantity increased; resolve is called for
// new lines only.
func (o *Order) AddItem(itemID string, itemType ItemType, quantity int, resolve PriceResolver) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	if err := o.ensureEditable(); err != nil {
		return err
	}

	if i := o.findItem(itemID); i >= 0 {
		if o.Items[i].Type != itemType {
			return fmt.Errorf("%w: %s is a %s", ErrItemTypeMismatch, itemID, o.Items[i].Type)
		}
		o.Items[i].Quantity += quantity
		o.Recalculate()
		return nil
	}

	ci, err := resolve(itemID, itemType)
	if err != nil {
		return err
	}
	if !ci.Available() {
		return fmt.Errorf("%w: %s is %s", ErrItemUnavailable, itemID, ci.Status)
	}

	o.Items = append(o.Items, LineItem{
		ItemID:    itemID,
		Type:      itemType,
		Name:      ci.Name,
		UnitPrice: ci.UnitPrice,
		Quantity:  quantity,
	})
	o.Recalculate()
	return nil
}

func (o *Order) RemoveItem(itemID string) error {
	if err := o.ensureEditable(); err != nil {
		return err
	}
	i := o.findItem(itemID)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}
	o.Items = append(o.Items[:i], o.Items[i+1:]...)
	o.Recalculate()
	return nil
}

// SetQuantity replaces the quantity of a line; zero or less removes it.
func (o *Order) SetQuantity(itemID string, quantity int) error {
	if quantity <= 0 {
		return o.RemoveItem(itemID)
	}
	if err := o.ensureEditable(); err != nil {
		return err
	}
	i := o.findItem(itemID)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}
	o.Items[i].Quantity = quantity
	o.Recalculate()
	return nil
}

// AdjustDiscount moves the line discount percent by delta points, clamped to
// [0, 100]. It reports whether the percent changed.
func (o *Order) AdjustDiscount(itemID string, delta int) (bool, error) {
	if err := o.ensureEditable(); err != nil {
		return false, err
	}
	i := o.findItem(itemID)
	if i < 0 {
		return false, fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}

	next := pricing.ClampPercent(o.Items[i].DiscountPercent + delta)
	if next == o.Items[i].DiscountPercent {
		return false, nil
	}
	o.Items[i].DiscountPercent = next
	o.Recalculate()
	return true, nil
}
