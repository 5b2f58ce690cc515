package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/tractorcare/order-service/internal/entities"
	"github.com/tractorcare/order-service/internal/service"
	mocks "github.com/tractorcare/order-service/internal/service/mocks"
)

func TestCustomerService_SaveCustomer(t *testing.T) {
	customer := entities.Customer{ID: "C1", Name: "Green Acres", UpdatedAt: time.Now()}

	testCases := []struct {
		name         string
		mockBehavior func(store *mocks.MockCustomerStore)
		wantErr      bool
	}{
		{
			name: "OK",
			mockBehavior: func(store *mocks.MockCustomerStore) {
				store.EXPECT().SaveCustomer(mock.Anything, customer).Return(nil).Once()
			},
		},
		{
			name: "Retry works (first attempt fails, second succeeds)",
			mockBehavior: func(store *mocks.MockCustomerStore) {
				store.EXPECT().SaveCustomer(mock.Anything, customer).Return(errors.New("temporary error")).Once()
				store.EXPECT().SaveCustomer(mock.Anything, customer).Return(nil).Once()
			},
		},
		{
			name: "All attempts fail",
			mockBehavior: func(store *mocks.MockCustomerStore) {
				store.EXPECT().SaveCustomer(mock.Anything, customer).Return(errors.New("db error")).Times(5)
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := mocks.NewMockCustomerStore(t)
			tc.mockBehavior(store)

			svc := service.NewCustomerService(discardLogger(), store)
			err := svc.SaveCustomer(context.Background(), customer)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
