package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/store-service/internal/auth"
	"github.com/SergeyBogomolovv/store-service/internal/entities"
	"github.com/SergeyBogomolovv/store-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type ProductService interface {
	CreateProduct(ctx context.Context, actor entities.Identity, in entities.ProductInput) (entities.Product, error)
	UpdateProduct(ctx context.Context, actor entities.Identity, id int64, in entities.ProductInput) (entities.Product, error)
	DeleteProduct(ctx context.Context, actor entities.Identity, id int64) error
	GetProduct(ctx context.Context, actor entities.Identity, id int64) (entities.Product, error)
	ListProducts(ctx context.Context, actor entities.Identity, filter entities.ProductFilter) ([]entities.Product, error)
}

type ProductHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      ProductService
}

func NewProductHandler(logger *slog.Logger, svc ProductService) *ProductHandler {
	return &ProductHandler{
		logger:   logger.With(slog.String("handler", "product")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *ProductHandler) Init(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Post("/", h.CreateProduct)
		r.Get("/{id}", h.GetProduct)
		r.Put("/{id}", h.UpdateProduct)
		r.Delete("/{id}", h.DeleteProduct)
	})
}

// ListProducts возвращает каталог.
// @Summary      Список товаров
// @Tags         products
// @Param        name         query     string  false  "Точное название"
// @Param        description  query     string  false  "Подстрока описания без учёта регистра"
// @Param        min_price    query     string  false  "Минимальная цена"
// @Param        max_price    query     string  false  "Максимальная цена"
// @Success      200  {array}   Product
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /products [get]
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter, err := parseProductFilter(r.URL.Query())
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	products, err := h.svc.ListProducts(r.Context(), auth.FromContext(r.Context()), filter)
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to list products")
		return
	}

	utils.WriteJSON(w, ProductsEntityToJSON(products), http.StatusOK)
}

// CreateProduct добавляет товар. Только для администраторов.
// @Summary      Создать товар
// @Tags         products
// @Security     BearerAuth
// @Accept       json
// @Param        product  body      ProductRequest  true  "Товар"
// @Success      201      {object}  Product
// @Failure      400      {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401      {object}  utils.ErrorResponse "Требуется аутентификация"
// @Failure      403      {object}  utils.ErrorResponse "Нет доступа"
// @Failure      500      {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /products [post]
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	product, err := h.svc.CreateProduct(r.Context(), auth.FromContext(r.Context()), ProductRequestToEntity(req))
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to create product")
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusCreated)
}

// GetProduct возвращает товар по ID.
// @Summary      Получить товар
// @Tags         products
// @Param        id   path      int  true  "ID товара"
// @Success      200  {object}  Product
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Товар не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /products/{id} [get]
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	product, err := h.svc.GetProduct(r.Context(), auth.FromContext(r.Context()), id)
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to get product")
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}

// UpdateProduct заменяет товар. Суммы существующих заказов не меняются.
// @Summary      Заменить товар
// @Tags         products
// @Security     BearerAuth
// @Accept       json
// @Param        id       path      int             true  "ID товара"
// @Param        product  body      ProductRequest  true  "Товар"
// @Success      200      {object}  Product
// @Failure      400      {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401      {object}  utils.ErrorResponse "Требуется аутентификация"
// @Failure      403      {object}  utils.ErrorResponse "Нет доступа"
// @Failure      404      {object}  utils.ErrorResponse "Товар не найден"
// @Failure      500      {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /products/{id} [put]
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	var req ProductRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	product, err := h.svc.UpdateProduct(r.Context(), auth.FromContext(r.Context()), id, ProductRequestToEntity(req))
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to update product")
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}

// DeleteProduct удаляет товар вместе с позициями заказов и отзывами.
// @Summary      Удалить товар
// @Tags         products
// @Security     BearerAuth
// @Param        id   path  int  true  "ID товара"
// @Success      204
// @Failure      401  {object}  utils.ErrorResponse "Требуется аутентификация"
// @Failure      403  {object}  utils.ErrorResponse "Нет доступа"
// @Failure      404  {object}  utils.ErrorResponse "Товар не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if err := h.svc.DeleteProduct(r.Context(), auth.FromContext(r.Context()), id); err != nil {
		writeServiceError(w, r, h.logger, err, "failed to delete product")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
