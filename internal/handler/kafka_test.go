package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tractorcare/order-service/internal/entities"
	mocks "github.com/tractorcare/order-service/internal/handler/mocks"
)

type fakeReader struct {
	messages  []kafka.Message
	committed []kafka.Message
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.messages) == 0 {
		return kafka.Message{}, io.EOF
	}
	m := r.messages[0]
	r.messages = r.messages[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error { return nil }

type fakeWriter struct {
	written []kafka.Message
	err     error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestKafkaHandler_Consume(t *testing.T) {
	updatedAt := time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		value         string
		mockBehavior  func(saver *mocks.MockCustomerSaver)
		dlqErr        error
		wantDLQ       int
		wantCommitted int
	}{
		{
			name:  "valid customer",
			value: `{"id":"C1","name":"Green Acres","phone":"+79991234567","email":"farm@example.com","updatedAt":"2026-05-04T08:00:00Z"}`,
			mockBehavior: func(saver *mocks.MockCustomerSaver) {
				saver.EXPECT().SaveCustomer(mock.Anything, entities.Customer{
					ID: "C1", Name: "Green Acres", Phone: "+79991234567", Email: "farm@example.com", UpdatedAt: updatedAt,
				}).Return(nil).Once()
			},
			wantCommitted: 1,
		},
		{
			name:          "broken json goes to dlq",
			value:         `{"id":`,
			wantDLQ:       1,
			wantCommitted: 1,
		},
		{
			name:          "invalid email goes to dlq",
			value:         `{"id":"C1","name":"Green Acres","email":"nope","updatedAt":"2026-05-04T08:00:00Z"}`,
			wantDLQ:       1,
			wantCommitted: 1,
		},
		{
			name:  "save failure goes to dlq",
			value: `{"id":"C1","name":"Green Acres","updatedAt":"2026-05-04T08:00:00Z"}`,
			mockBehavior: func(saver *mocks.MockCustomerSaver) {
				saver.EXPECT().SaveCustomer(mock.Anything, mock.Anything).Return(errors.New("db error")).Once()
			},
			wantDLQ:       1,
			wantCommitted: 1,
		},
		{
			name:          "dlq failure leaves message uncommitted",
			value:         `{"id":""}`,
			dlqErr:        errors.New("broker down"),
			wantCommitted: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			saver := mocks.NewMockCustomerSaver(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(saver)
			}

			reader := &fakeReader{messages: []kafka.Message{{Topic: "customers", Value: []byte(tc.value)}}}
			dlq := &fakeWriter{err: tc.dlqErr}
			h := newKafkaHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), reader, dlq, saver)

			h.Consume(context.Background())

			require.Len(t, dlq.written, tc.wantDLQ)
			for _, m := range dlq.written {
				assert.Equal(t, "customers-dlq", m.Topic)
			}
			assert.Len(t, reader.committed, tc.wantCommitted)
			assert.NoError(t, h.Close())
		})
	}
}
