package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/tractorcare/order-service/internal/idempotency"
	"github.com/tractorcare/order-service/pkg/utils"
)

const (
	IdempotencyKeyHeader = "Idempotency-Key"
	ReplayedHeader       = "Idempotent-Replayed"

	maxIdempotencyKeyLen = 255
)

type IdempotencyStore interface {
	Reserve(ctx context.Context, key string) (bool, error)
	Load(ctx context.Context, key string) (idempotency.Response, bool, error)
	Save(ctx context.Context, key string, resp idempotency.Response) error
	Release(ctx context.Context, key string) error
}

// Idempotency выполняет мутирующий запрос с заголовком Idempotency-Key не
// больше одного раза; повтор получает сохранённый ответ. Ответы не 2xx не
// сохраняются, ключ освобождается.
func Idempotency(logger *slog.Logger, store IdempotencyStore) func(next http.Handler) http.Handler {
	logger = logger.With(slog.String("middleware", "idempotency"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get(IdempotencyKeyHeader)
			if header == "" || !mutating(r.Method) {
				next.ServeHTTP(w, r)
				return
			}
			if len(header) > maxIdempotencyKeyLen {
				utils.WriteError(w, "invalid_idempotency_key", "idempotency key is too long", http.StatusBadRequest)
				return
			}

			ctx := r.Context()
			key := r.Method + " " + r.URL.Path + " " + header

			reserved, err := store.Reserve(ctx, key)
			if err != nil {
				logger.ErrorContext(ctx, "failed to reserve idempotency key", slog.Any("error", err))
				utils.WriteError(w, "internal_error", "internal server error", http.StatusInternalServerError)
				return
			}

			if !reserved {
				replay(w, r, logger, store, key)
				return
			}

			// ответ уже отправлен клиенту, работа с ключом не зависит от отмены запроса
			storeCtx := context.WithoutCancel(ctx)
			release := func() {
				idempotentRequests.WithLabelValues("released").Inc()
				if err := store.Release(storeCtx, key); err != nil {
					logger.ErrorContext(storeCtx, "failed to release idempotency key", slog.Any("error", err))
				}
			}

			// паника в обработчике не должна оставить ключ занятым до истечения TTL
			defer func() {
				if p := recover(); p != nil {
					release()
					panic(p)
				}
			}()

			var body bytes.Buffer
			rec := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			rec.Tee(&body)
			next.ServeHTTP(rec, r)

			status := statusOf(rec)
			if status < 200 || status >= 300 {
				release()
				return
			}

			resp := idempotency.Response{
				Status:      status,
				ContentType: rec.Header().Get("Content-Type"),
				Body:        body.Bytes(),
			}
			idempotentRequests.WithLabelValues("stored").Inc()
			if err := store.Save(storeCtx, key, resp); err != nil {
				logger.ErrorContext(storeCtx, "failed to save idempotent response", slog.Any("error", err))
			}
		})
	}
}

func replay(w http.ResponseWriter, r *http.Request, logger *slog.Logger, store IdempotencyStore, key string) {
	ctx := r.Context()
	resp, done, err := store.Load(ctx, key)
	if err != nil {
		logger.ErrorContext(ctx, "failed to load idempotent response", slog.Any("error", err))
		utils.WriteError(w, "internal_error", "internal server error", http.StatusInternalServerError)
		return
	}
	if !done {
		idempotentRequests.WithLabelValues("in_progress").Inc()
		utils.WriteError(w, "request_in_progress", "request with this idempotency key is in progress", http.StatusConflict)
		return
	}

	idempotentRequests.WithLabelValues("replayed").Inc()
	if resp.ContentType != "" {
		w.Header().Set("Content-Type", resp.ContentType)
	}
	w.Header().Set(ReplayedHeader, "true")
	w.WriteHeader(resp.Status)
	w.Write(resp.Body)
}

func mutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}
