package repo

import (
	"context"
	"fmt"

	"github.com/tractorcare/order-service/internal/entities"
)

func (r *postgresRepo) CustomerExists(ctx context.Context, customerID string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1)`

	var exists bool
	if err := r.getContext(ctx, &exists, query, customerID); err != nil {
		return false, fmt.Errorf("failed to check customer: %w", err)
	}
	return exists, nil
}

// SaveCustomer upserts a customer record; older updates never overwrite newer ones.
func (r *postgresRepo) SaveCustomer(ctx context.Context, c entities.Customer) error {
	query, args := r.qb.Insert("customers").
		Columns("id", "name", "phone", "email", "updated_at").
		Values(c.ID, c.Name, nullString(c.Phone), nullString(c.Email), c.UpdatedAt).
		Suffix(`ON CONFLICT (id) DO UPDATE
			SET name = EXCLUDED.name, phone = EXCLUDED.phone, email = EXCLUDED.email, updated_at = EXCLUDED.updated_at
			WHERE customers.updated_at <= EXCLUDED.updated_at`).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save customer: %w", err)
	}
	return nil
}
