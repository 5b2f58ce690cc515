package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/tractorcare/order-service/internal/entities"
)

func (r *postgresRepo) ResolveCatalogItem(ctx context.Context, itemID string, itemType entities.ItemType) (entities.CatalogItem, error) {
	query, args := r.qb.Select("id", "item_type", "name", "price", "status").
		From("catalog_items").
		Where(sq.Eq{"id": itemID, "item_type": string(itemType)}).
		MustSql()

	var item CatalogItem
	err := r.getContext(ctx, &item, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.CatalogItem{}, fmt.Errorf("%w: %s %s", entities.ErrCatalogItemNotFound, itemType, itemID)
	}
	if err != nil {
		return entities.CatalogItem{}, fmt.Errorf("failed to get catalog item: %w", err)
	}
	return CatalogItemToEntity(item), nil
}

func (r *postgresRepo) SaveCatalogItem(ctx context.Context, item entities.CatalogItem) error {
	query, args := r.qb.Insert("catalog_items").
		Columns("id", "item_type", "name", "price", "status").
		Values(item.ID, string(item.Type), item.Name, item.UnitPrice, string(item.Status)).
		Suffix("ON CONFLICT (id, item_type) DO UPDATE SET name = EXCLUDED.name, price = EXCLUDED.price, status = EXCLUDED.status").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save catalog item: %w", err)
	}
	return nil
}
