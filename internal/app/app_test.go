package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tractorcare/order-service/internal/config"
)

type pingHandler struct{}

func (pingHandler) Init(r chi.Router) {
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Context().Deadline(); !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("pong"))
	})
}

type starterFunc func(ctx context.Context) error

func (f starterFunc) Start(ctx context.Context) error { return f(ctx) }

type blockingConsumer struct {
	closed atomic.Bool
}

func (c *blockingConsumer) Consume(ctx context.Context) { <-ctx.Done() }
func (c *blockingConsumer) Close() error {
	c.closed.Store(true)
	return nil
}

func testConfig() config.Config {
	cfg := config.New()
	cfg.Http.Host = "127.0.0.1"
	cfg.Http.Port = "0"
	cfg.Http.RequestTimeout = time.Second
	return cfg
}

func TestApplication_Routes(t *testing.T) {
	a := New(slog.New(slog.NewTextHandler(io.Discard, nil)), testConfig())

	var marked atomic.Bool
	a.UseAPI(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			marked.Store(true)
			next.ServeHTTP(w, r)
		})
	})
	a.SetHTTPHandlers(pingHandler{})

	testCases := []struct {
		path       string
		wantStatus int
		wantMarked bool
	}{
		{path: "/health", wantStatus: http.StatusOK},
		{path: "/metrics", wantStatus: http.StatusOK},
		{path: "/ping", wantStatus: http.StatusOK, wantMarked: true},
		{path: "/missing", wantStatus: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			marked.Store(false)
			rr := httptest.NewRecorder()
			a.httpSrv.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Equal(t, tc.wantMarked, marked.Load())
		})
	}
}

func TestApplication_StartStop(t *testing.T) {
	a := New(slog.New(slog.NewTextHandler(io.Discard, nil)), testConfig())

	var started atomic.Bool
	consumer := &blockingConsumer{}
	a.SetStarters(starterFunc(func(context.Context) error {
		started.Store(true)
		return nil
	}))
	a.SetConsumers(consumer)

	require.NoError(t, a.Start(context.Background()))
	assert.True(t, started.Load())

	require.NoError(t, a.Stop())
	assert.True(t, consumer.closed.Load())
}

func TestApplication_StarterFailure(t *testing.T) {
	a := New(slog.New(slog.NewTextHandler(io.Discard, nil)), testConfig())
	starterErr := errors.New("cache warm up failed")
	a.SetStarters(starterFunc(func(context.Context) error { return starterErr }))

	assert.ErrorIs(t, a.Start(context.Background()), starterErr)
}
