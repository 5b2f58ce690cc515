package utils_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tractorcare/order-service/pkg/utils"
)

func TestRetry(t *testing.T) {
	errTemporary := errors.New("temporary")
	errPermanent := errors.New("permanent")
	cfg := utils.RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond}

	testCases := []struct {
		name      string
		results   []error
		wantCalls int
		wantErr   error
	}{
		{
			name:      "first attempt succeeds",
			results:   []error{nil},
			wantCalls: 1,
		},
		{
			name:      "succeeds after temporary failure",
			results:   []error{errTemporary, nil},
			wantCalls: 2,
		},
		{
			name:      "gives up after max attempts",
			results:   []error{errTemporary, errTemporary, errTemporary, nil},
			wantCalls: 3,
			wantErr:   errTemporary,
		},
		{
			name:      "permanent error is not retried",
			results:   []error{errPermanent, nil},
			wantCalls: 1,
			wantErr:   errPermanent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			err := utils.Retry(context.Background(), cfg, func(context.Context) error {
				err := tc.results[calls]
				calls++
				return err
			}, errPermanent)

			assert.Equal(t, tc.wantCalls, calls)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRetry_ContextCancelled(t *testing.T) {
	errTemporary := errors.New("temporary")
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := utils.Retry(ctx, utils.RetryConfig{MaxAttempts: 5, InitialDelay: time.Hour}, func(context.Context) error {
		calls++
		cancel()
		return errTemporary
	})

	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, errTemporary)
	assert.ErrorIs(t, err, context.Canceled)
}
