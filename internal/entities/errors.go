package entities

import "errors"

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrItemNotFound        = errors.New("item not found")
	ErrCatalogItemNotFound = errors.New("catalog item not found")
	ErrCustomerNotFound    = errors.New("customer not found")

	ErrItemUnavailable  = errors.New("item unavailable")
	ErrItemTypeMismatch = errors.New("item already added with another type")
	ErrInvalidQuantity  = errors.New("invalid quantity")
	ErrInvalidDiscount  = errors.New("invalid discount")
	ErrInvalidState     = errors.New("invalid order state")
	ErrEmptyOrder       = errors.New("order has no items")

	// Запись заказа изменилась между чтением и сохранением
	ErrVersionConflict = errors.New("order version conflict")

	ErrInvalidOrder = errors.New("invalid order data")
)
