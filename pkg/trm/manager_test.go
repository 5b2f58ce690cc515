package trm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tractorcare/order-service/pkg/trm"
)

func TestExtractTx_Empty(t *testing.T) {
	assert.Nil(t, trm.ExtractTx(context.Background()))
}

func TestNopManager(t *testing.T) {
	var m trm.Manager = trm.NopManager{}
	errCallback := errors.New("callback failed")

	calls := 0
	err := m.Do(context.Background(), func(ctx context.Context) error {
		calls++
		assert.Nil(t, trm.ExtractTx(ctx))
		return errCallback
	})
	assert.ErrorIs(t, err, errCallback)
	assert.Equal(t, 1, calls)

	ctx, tx, err := m.BeginTx(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, ctx)
	assert.NoError(t, tx.Commit())
	assert.NoError(t, tx.Rollback())
}
