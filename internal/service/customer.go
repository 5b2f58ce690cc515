package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tractorcare/order-service/internal/entities"
	"github.com/tractorcare/order-service/pkg/utils"
)

type CustomerStore interface {
	// SaveCustomer не перезаписывает более свежую запись
	SaveCustomer(ctx context.Context, c entities.Customer) error
}

type customerService struct {
	logger   *slog.Logger
	store    CustomerStore
	retryCfg utils.RetryConfig
}

func NewCustomerService(logger *slog.Logger, store CustomerStore) *customerService {
	return &customerService{
		logger: logger.With(slog.String("service", "customer")),
		store:  store,
		retryCfg: utils.RetryConfig{
			InitialDelay: 100 * time.Millisecond,
			MaxAttempts:  5,
			Multiplier:   2,
		},
	}
}

// SaveCustomer upserts a customer directory entry coming from the customers topic.
func (s *customerService) SaveCustomer(ctx context.Context, c entities.Customer) error {
	fn := func(ctx context.Context) error {
		return s.store.SaveCustomer(ctx, c)
	}

	if err := utils.Retry(ctx, s.retryCfg, fn, context.Canceled); err != nil {
		customersSynced.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to save customer: %w", err)
	}

	customersSynced.WithLabelValues("ok").Inc()
	s.logger.Debug("customer saved", slog.String("customer_id", c.ID))
	return nil
}
