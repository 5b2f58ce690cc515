package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/tractorcare/order-service/internal/entities"
	"github.com/tractorcare/order-service/pkg/utils"
)

type OrderService interface {
	CreateDraft(ctx context.Context, customerID string, tractor *entities.Tractor) (entities.Order, error)
	GetOrder(ctx context.Context, orderID string) (entities.Order, error)
	ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	DeleteOrder(ctx context.Context, orderID string) error
	UpdateTractor(ctx context.Context, orderID string, tractor *entities.Tractor) (entities.Order, error)
	AddItem(ctx context.Context, orderID, itemID string, itemType entities.ItemType, quantity int) (entities.Order, error)
	RemoveItem(ctx context.Context, orderID, itemID string) (entities.Order, error)
	UpdateItemQuantity(ctx context.Context, orderID, itemID string, quantity int) (entities.Order, error)
	UpdateItemDiscount(ctx context.Context, orderID, itemID string, delta int) (entities.Order, error)
	ApplyOrderDiscount(ctx context.Context, orderID string, amount decimal.Decimal) (entities.Order, error)
	Start(ctx context.Context, orderID string) (entities.Order, error)
	Complete(ctx context.Context, orderID string) (entities.Order, error)
	Cancel(ctx context.Context, orderID string) (entities.Order, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService) *HTTPHandler {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validate,
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.CreateOrder)
		r.Get("/", h.ListOrders)

		r.Route("/{order_id}", func(r chi.Router) {
			r.Get("/", h.GetOrder)
			r.Delete("/", h.DeleteOrder)
			r.Patch("/tractor", h.UpdateTractor)
			r.Put("/discount", h.ApplyOrderDiscount)

			r.Post("/start", h.StartOrder)
			r.Post("/complete", h.CompleteOrder)
			r.Post("/cancel", h.CancelOrder)

			r.Post("/items", h.AddItem)
			r.Delete("/items/{item_id}", h.RemoveItem)
			r.Patch("/items/{item_id}/quantity", h.UpdateItemQuantity)
			r.Patch("/items/{item_id}/discount", h.UpdateItemDiscount)
		})
	})
}

// CreateOrder создаёт черновик заказа.
// @Summary      Создать черновик заказа
// @Description  Создаёт заказ в статусе draft для существующего клиента
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string              false  "Ключ идемпотентности"
// @Param        request          body      CreateOrderRequest  true   "Клиент и техника"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Клиент не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if !h.decode(w, r, &req) {
		return
	}

	order, err := h.svc.CreateDraft(r.Context(), req.CustomerID, TractorJSONToEntity(req.Tractor))
	h.respond(w, r, order, err, http.StatusCreated)
}

// GetOrder возвращает заказ по ID.
// @Summary      Получить заказ
// @Description  Возвращает полный снимок заказа с пересчитанными суммами
// @Tags         orders
// @Produce      json
// @Param        order_id  path      string  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.orderID(w, r)
	if !ok {
		return
	}

	order, err := h.svc.GetOrder(r.Context(), orderID)
	h.respond(w, r, order, err, http.StatusOK)
}

// ListOrders возвращает страницу заказов.
// @Summary      Список заказов
// @Description  Заказы от новых к старым, по умолчанию 20, максимум 100
// @Tags         orders
// @Produce      json
// @Param        customerId  query     string  false  "Клиент"
// @Param        status      query     string  false  "Статус"  Enums(draft, started, completed, cancelled)
// @Param        limit       query     int     false  "Размер страницы"
// @Param        offset      query     int     false  "Смещение"
// @Success      200  {object}  OrderList
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := entities.OrderFilter{CustomerID: q.Get("customerId")}

	if s := q.Get("status"); s != "" {
		status, err := entities.ParseStatus(s)
		if err != nil {
			utils.WriteFieldError(w, "status", "oneof")
			return
		}
		filter.Status = status
	}

	var ok bool
	if filter.Limit, ok = h.queryInt(w, r, "limit"); !ok {
		return
	}
	if filter.Offset, ok = h.queryInt(w, r, "offset"); !ok {
		return
	}

	orders, err := h.svc.ListOrders(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	res := OrderList{Orders: make([]Order, 0, len(orders)), Limit: filter.Limit, Offset: filter.Offset}
	for _, o := range orders {
		res.Orders = append(res.Orders, OrderEntityToJSON(o))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// DeleteOrder удаляет заказ вместе с позициями.
// @Summary      Удалить заказ
// @Description  Удалить можно только черновик или отменённый заказ
// @Tags         orders
// @Param        order_id  path  string  true  "Идентификатор заказа"
// @Success      204
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Недопустимый статус"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id} [delete]
func (h *HTTPHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.orderID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteOrder(r.Context(), orderID); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateTractor меняет данные техники.
// @Summary      Изменить технику
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order_id  path      string   true  "Идентификатор заказа"
// @Param        request   body      Tractor  true  "Техника, пустые поля убирают её"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ не в черновике"
// @Router       /orders/{order_id}/tractor [patch]
func (h *HTTPHandler) UpdateTractor(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.orderID(w, r)
	if !ok {
		return
	}
	var req Tractor
	if !h.decode(w, r, &req) {
		return
	}

	order, err := h.svc.UpdateTractor(r.Context(), orderID, TractorJSONToEntity(&req))
	h.respond(w, r, order, err, http.StatusOK)
}

// AddItem добавляет позицию в заказ.
// @Summary      Добавить позицию
// @Description  Повторное добавление того же itemId увеличивает количество, цена фиксируется при первом добавлении
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string          false  "Ключ идемпотентности"
// @Param        order_id         path      string          true   "Идентификатор заказа"
// @Param        request          body      AddItemRequest  true   "Позиция"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ или позиция каталога не найдены"
// @Failure      409  {object}  utils.ErrorResponse "Позиция недоступна или заказ не в черновике"
// @Router       /orders/{order_id}/items [post]
func (h *HTTPHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.orderID(w, r)
	if !ok {
		return
	}
	var req AddItemRequest
	if !h.decode(w, r, &req) {
		return
	}

	itemType, err := entities.ParseItemType(req.Type)
	if err != nil {
		utils.WriteFieldError(w, "type", "oneof")
		return
	}

	order, err := h.svc.AddItem(r.Context(), orderID, req.ItemID, itemType, req.Quantity)
	h.respond(w, r, order, err, http.StatusOK)
}

// RemoveItem удаляет позицию из заказа.
// @Summary      Удалить позицию
// @Tags         items
// @Produce      json
// @Param        order_id  path      string  true  "Идентификатор заказа"
// @Param        item_id   path      string  true  "Идентификатор позиции"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ или позиция не найдены"
// @Failure      409  {object}  utils.ErrorResponse "Заказ не в черновике"
// @Router       /orders/{order_id}/items/{item_id} [delete]
func (h *HTTPHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	orderID, itemID, ok := h.itemPath(w, r)
	if !ok {
		return
	}

	order, err := h.svc.RemoveItem(r.Context(), orderID, itemID)
	h.respond(w, r, order, err, http.StatusOK)
}

// UpdateItemQuantity меняет количество позиции.
// @Summary      Изменить количество
// @Description  Количество 0 и меньше удаляет позицию
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        order_id  path      string                 true  "Идентификатор заказа"
// @Param        item_id   path      string                 true  "Идентификатор позиции"
// @Param        request   body      UpdateQuantityRequest  true  "Количество"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ или позиция не найдены"
// @Failure      409  {object}  utils.ErrorResponse "Заказ не в черновике"
// @Router       /orders/{order_id}/items/{item_id}/quantity [patch]
func (h *HTTPHandler) UpdateItemQuantity(w http.ResponseWriter, r *http.Request) {
	orderID, itemID, ok := h.itemPath(w, r)
	if !ok {
		return
	}
	var req UpdateQuantityRequest
	if !h.decode(w, r, &req) {
		return
	}

	order, err := h.svc.UpdateItemQuantity(r.Context(), orderID, itemID, *req.Quantity)
	h.respond(w, r, order, err, http.StatusOK)
}

// UpdateItemDiscount сдвигает скидку позиции.
// @Summary      Изменить скидку позиции
// @Description  Скидка меняется на delta процентных пунктов и ограничивается диапазоном 0..100
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        order_id  path      string                 true  "Идентификатор заказа"
// @Param        item_id   path      string                 true  "Идентификатор позиции"
// @Param        request   body      UpdateDiscountRequest  true  "Изменение скидки"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ или позиция не найдены"
// @Failure      409  {object}  utils.ErrorResponse "Заказ не в черновике"
// @Router       /orders/{order_id}/items/{item_id}/discount [patch]
func (h *HTTPHandler) UpdateItemDiscount(w http.ResponseWriter, r *http.Request) {
	orderID, itemID, ok := h.itemPath(w, r)
	if !ok {
		return
	}
	var req UpdateDiscountRequest
	if !h.decode(w, r, &req) {
		return
	}

	order, err := h.svc.UpdateItemDiscount(r.Context(), orderID, itemID, *req.Delta)
	h.respond(w, r, order, err, http.StatusOK)
}

// ApplyOrderDiscount задаёт скидку на весь заказ.
// @Summary      Скидка на заказ
// @Description  Фиксированная сумма, применяется после скидок позиций
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order_id  path      string                true  "Идентификатор заказа"
// @Param        request   body      OrderDiscountRequest  true  "Сумма скидки"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "Некорректная сумма"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ не в черновике"
// @Router       /orders/{order_id}/discount [put]
func (h *HTTPHandler) ApplyOrderDiscount(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.orderID(w, r)
	if !ok {
		return
	}
	var req OrderDiscountRequest
	if !h.decode(w, r, &req) {
		return
	}

	order, err := h.svc.ApplyOrderDiscount(r.Context(), orderID, *req.Amount)
	h.respond(w, r, order, err, http.StatusOK)
}

// StartOrder переводит заказ в работу.
// @Summary      Начать работы
// @Tags         lifecycle
// @Produce      json
// @Param        order_id  path      string  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Пустой заказ или недопустимый статус"
// @Router       /orders/{order_id}/start [post]
func (h *HTTPHandler) StartOrder(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Start)
}

// CompleteOrder завершает заказ.
// @Summary      Завершить заказ
// @Tags         lifecycle
// @Produce      json
// @Param        order_id  path      string  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Недопустимый статус"
// @Router       /orders/{order_id}/complete [post]
func (h *HTTPHandler) CompleteOrder(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Complete)
}

// CancelOrder отменяет заказ.
// @Summary      Отменить заказ
// @Tags         lifecycle
// @Produce      json
// @Param        order_id  path      string  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Недопустимый статус"
// @Router       /orders/{order_id}/cancel [post]
func (h *HTTPHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Cancel)
}

func (h *HTTPHandler) transition(w http.ResponseWriter, r *http.Request, fn func(context.Context, string) (entities.Order, error)) {
	orderID, ok := h.orderID(w, r)
	if !ok {
		return
	}

	order, err := fn(r.Context(), orderID)
	h.respond(w, r, order, err, http.StatusOK)
}

func (h *HTTPHandler) respond(w http.ResponseWriter, r *http.Request, order entities.Order, err error, status int) {
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), status)
}

func (h *HTTPHandler) orderID(w http.ResponseWriter, r *http.Request) (string, bool) {
	orderID := chi.URLParam(r, "order_id")
	if err := h.validate.Var(orderID, "required,uuid"); err != nil {
		utils.WriteFieldError(w, "order_id", "uuid")
		return "", false
	}
	return orderID, true
}

func (h *HTTPHandler) itemPath(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	orderID, ok := h.orderID(w, r)
	if !ok {
		return "", "", false
	}
	itemID := chi.URLParam(r, "item_id")
	if err := h.validate.Var(itemID, "required,max=64"); err != nil {
		utils.WriteFieldError(w, "item_id", "max")
		return "", "", false
	}
	return orderID, itemID, true
}

func (h *HTTPHandler) queryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		utils.WriteFieldError(w, name, "gte=0")
		return 0, false
	}
	return v, true
}

func (h *HTTPHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := utils.DecodeBody(r, v); err != nil {
		utils.WriteError(w, "invalid_body", "invalid request body", http.StatusBadRequest)
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		utils.WriteValidationError(w, err)
		return false
	}
	return true
}

type errorMapping struct {
	target error
	status int
	code   string
}

var errorMappings = []errorMapping{
	{entities.ErrOrderNotFound, http.StatusNotFound, "not_found"},
	{entities.ErrItemNotFound, http.StatusNotFound, "not_found"},
	{entities.ErrCatalogItemNotFound, http.StatusNotFound, "not_found"},
	{entities.ErrCustomerNotFound, http.StatusNotFound, "customer_not_found"},
	{entities.ErrItemUnavailable, http.StatusConflict, "unavailable"},
	{entities.ErrInvalidQuantity, http.StatusBadRequest, "invalid_quantity"},
	{entities.ErrInvalidDiscount, http.StatusBadRequest, "invalid_discount"},
	{entities.ErrInvalidState, http.StatusConflict, "invalid_state"},
	{entities.ErrEmptyOrder, http.StatusConflict, "empty_order"},
	{entities.ErrItemTypeMismatch, http.StatusConflict, "item_type_mismatch"},
	{entities.ErrVersionConflict, http.StatusConflict, "version_conflict"},
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			utils.WriteError(w, m.code, err.Error(), m.status)
			return
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		h.logger.WarnContext(r.Context(), "request timed out", slog.String("path", r.URL.Path))
		utils.WriteError(w, "timeout", "request timed out", http.StatusGatewayTimeout)
		return
	}

	h.logger.ErrorContext(r.Context(), "request failed",
		slog.Any("error", err),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)
	utils.WriteError(w, "internal_error", "internal server error", http.StatusInternalServerError)
}
