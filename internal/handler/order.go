package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/store-service/internal/auth"
	"github.com/SergeyBogomolovv/store-service/internal/entities"
	"github.com/SergeyBogomolovv/store-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	CreateOrder(ctx context.Context, actor entities.Identity, positions []entities.PositionInput) (entities.Order, error)
	UpdateOrder(ctx context.Context, actor entities.Identity, id int64, upd entities.OrderUpdate) (entities.Order, error)
	GetOrder(ctx context.Context, actor entities.Identity, id int64) (entities.Order, error)
	ListOrders(ctx context.Context, actor entities.Identity, filter entities.OrderFilter) ([]entities.Order, error)
	DeleteOrder(ctx context.Context, actor entities.Identity, id int64) error
}

type OrderHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewOrderHandler(logger *slog.Logger, svc OrderService) *OrderHandler {
	return &OrderHandler{
		logger:   logger.With(slog.String("handler", "order")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.ListOrders)
		r.Post("/", h.CreateOrder)
		r.Get("/{id}", h.GetOrder)
		r.Put("/{id}", h.ReplaceOrder)
		r.Patch("/{id}", h.PatchOrder)
		r.Delete("/{id}", h.DeleteOrder)
	})
}

// ListOrders возвращает заказы. Обычный пользователь видит только свои.
// @Summary      Список заказов
// @Tags         orders
// @Security     BearerAuth
// @Param        status             query     string  false  "Статус"  Enums(NEW, IN_PROGRESS, DONE)
// @Param        total_amount_from  query     string  false  "Минимальная сумма"
// @Param        total_amount_to    query     string  false  "Максимальная сумма"
// @Param        products           query     []int   false  "Содержит любой из товаров"  collectionFormat(multi)
// @Param        created_at_after   query     string  false  "Создан не раньше (дата или RFC 3339)"
// @Param        created_at_before  query     string  false  "Создан не позже"
// @Param        updated_at_after   query     string  false  "Изменён не раньше"
// @Param        updated_at_before  query     string  false  "Изменён не позже"
// @Success      200  {array}   Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Требуется аутентификация"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	filter, err := parseOrderFilter(r.URL.Query())
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	orders, err := h.svc.ListOrders(r.Context(), auth.FromContext(r.Context()), filter)
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to list orders")
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// CreateOrder создаёт заказ текущего пользователя.
// @Summary      Создать заказ
// @Description  Сумма заказа считается по текущим ценам товаров
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Param        order  body      CreateOrderRequest  true  "Позиции заказа"
// @Success      201    {object}  Order
// @Failure      400    {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401    {object}  utils.ErrorResponse "Требуется аутентификация"
// @Failure      500    {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	if !authenticated(w, r) {
		return
	}

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.CreateOrder(r.Context(), auth.FromContext(r.Context()), PositionsJSONToEntity(req.Products))
	if err != nil {
		countRejection("create", err)
		writeServiceError(w, r, h.logger, err, "failed to create order")
		return
	}

	ordersCreated.Inc()
	observeTotal(order)
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// GetOrder возвращает заказ по ID.
// @Summary      Получить заказ
// @Tags         orders
// @Security     BearerAuth
// @Param        id   path      int  true  "ID заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Требуется аутентификация"
// @Failure      403  {object}  utils.ErrorResponse "Нет доступа"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.GetOrder(r.Context(), auth.FromContext(r.Context()), id)
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to get order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ReplaceOrder заменяет позиции заказа и, для администратора, статус.
// @Summary      Заменить заказ
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Param        id     path      int                  true  "ID заказа"
// @Param        order  body      ReplaceOrderRequest  true  "Новые позиции"
// @Success      200    {object}  Order
// @Failure      400    {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401    {object}  utils.ErrorResponse "Требуется аутентификация"
// @Failure      403    {object}  utils.ErrorResponse "Нет доступа"
// @Failure      404    {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500    {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{id} [put]
func (h *OrderHandler) ReplaceOrder(w http.ResponseWriter, r *http.Request) {
	if !authenticated(w, r) {
		return
	}

	id, err := pathID(r)
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	var req ReplaceOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	positions := PositionsJSONToEntity(req.Products)
	h.update(w, r, id, entities.OrderUpdate{
		Positions: &positions,
		Status:    statusFromRequest(req.Status),
	})
}

// PatchOrder частично обновляет заказ.
// @Summary      Изменить заказ
// @Description  Отсутствующие поля не меняются. Пустой список позиций обнуляет сумму
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Param        id     path      int                true  "ID заказа"
// @Param        order  body      PatchOrderRequest  true  "Изменяемые поля"
// @Success      200    {object}  Order
// @Failure      400    {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401    {object}  utils.ErrorResponse "Требуется аутентификация"
// @Failure      403    {object}  utils.ErrorResponse "Нет доступа"
// @Failure      404    {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500    {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{id} [patch]
func (h *OrderHandler) PatchOrder(w http.ResponseWriter, r *http.Request) {
	if !authenticated(w, r) {
		return
	}

	id, err := pathID(r)
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	var req PatchOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	upd := entities.OrderUpdate{Status: statusFromRequest(req.Status)}
	if req.Products != nil {
		for _, p := range *req.Products {
			if err := h.validate.Struct(p); err != nil {
				utils.WriteValidationError(w, err)
				return
			}
		}
		positions := PositionsJSONToEntity(*req.Products)
		upd.Positions = &positions
	}

	h.update(w, r, id, upd)
}

func (h *OrderHandler) update(w http.ResponseWriter, r *http.Request, id int64, upd entities.OrderUpdate) {
	order, err := h.svc.UpdateOrder(r.Context(), auth.FromContext(r.Context()), id, upd)
	if err != nil {
		countRejection("update", err)
		writeServiceError(w, r, h.logger, err, "failed to update order")
		return
	}

	if upd.Status != nil {
		orderStatusChanges.WithLabelValues(string(order.Status)).Inc()
	}
	if upd.Positions != nil {
		observeTotal(order)
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// DeleteOrder удаляет заказ вместе с позициями.
// @Summary      Удалить заказ
// @Tags         orders
// @Security     BearerAuth
// @Param        id   path  int  true  "ID заказа"
// @Success      204
// @Failure      401  {object}  utils.ErrorResponse "Требуется аутентификация"
// @Failure      403  {object}  utils.ErrorResponse "Нет доступа"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if err := h.svc.DeleteOrder(r.Context(), auth.FromContext(r.Context()), id); err != nil {
		writeServiceError(w, r, h.logger, err, "failed to delete order")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func statusFromRequest(raw *string) *entities.OrderStatus {
	if raw == nil {
		return nil
	}
	status := entities.OrderStatus(*raw)
	return &status
}

func observeTotal(o entities.Order) {
	if !o.TotalAmount.Valid {
		return
	}
	v, _ := o.TotalAmount.Decimal.Float64()
	orderTotalAmount.Observe(v)
}

func countRejection(operation string, err error) {
	var ve *entities.ValidationError
	if errors.As(err, &ve) {
		orderRejections.WithLabelValues(operation).Inc()
	}
}
