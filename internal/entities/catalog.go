package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type ItemType string

const (
	ItemTypeService ItemType = "service"
	ItemTypePart    ItemType = "part"
)

func ParseItemType(s string) (ItemType, error) {
	switch t := ItemType(s); t {
	case ItemTypeService, ItemTypePart:
		return t, nil
	}
	return "", fmt.Errorf("unknown item type %q", s)
}

// CatalogStatus follows the admin catalog enum.
type CatalogStatus string

const (
	CatalogStatusAvailable  CatalogStatus = "AVAILABLE"
	CatalogStatusOutOfStock CatalogStatus = "OUT_OF_STOCK"
	CatalogStatusDisabled   CatalogStatus = "DISABLED"
)

type CatalogItem struct {
	ID        string
	Type      ItemType
	Name      string
	UnitPrice decimal.Decimal
	Status    CatalogStatus
}

func (c CatalogItem) Available() bool {
	return c.Status == CatalogStatusAvailable
}
