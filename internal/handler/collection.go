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

type CollectionService interface {
	CreateCollection(ctx context.Context, actor entities.Identity, in entities.CollectionInput) (entities.Collection, error)
	UpdateCollection(ctx context.Context, actor entities.Identity, id int64, in entities.CollectionInput) (entities.Collection, error)
	DeleteCollection(ctx context.Context, actor entities.Identity, id int64) error
	GetCollection(ctx context.Context, actor entities.Identity, id int64) (entities.Collection, error)
	ListCollections(ctx context.Context, actor entities.Identity) ([]entities.Collection, error)
}

type CollectionHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      CollectionService
}

func NewCollectionHandler(logger *slog.Logger, svc CollectionService) *CollectionHandler {
	return &CollectionHandler{
		logger:   logger.With(slog.String("handler", "collection")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *CollectionHandler) Init(r chi.Router) {
	r.Route("/product-collections", func(r chi.Router) {
		r.Get("/", h.ListCollections)
		r.Post("/", h.CreateCollection)
		r.Get("/{id}", h.GetCollection)
		r.Put("/{id}", h.UpdateCollection)
		r.Delete("/{id}", h.DeleteCollection)
	})
}

// @Summary      Список подборок
// @Tags         collections
// @Success      200  {array}   Collection
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /product-collections [get]
func (h *CollectionHandler) ListCollections(w http.ResponseWriter, r *http.Request) {
	collections, err := h.svc.ListCollections(r.Context(), auth.FromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to list collections")
		return
	}

	result := make([]Collection, 0, len(collections))
	for _, c := range collections {
		result = append(result, CollectionEntityToJSON(c))
	}
	utils.WriteJSON(w, result, http.StatusOK)
}

// @Summary      Создать подборку
// @Tags         collections
// @Security     BearerAuth
// @Accept       json
// @Param        collection  body      CollectionRequest  true  "Подборка"
// @Success      201         {object}  Collection
// @Failure      400         {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401         {object}  utils.ErrorResponse "Требуется аутентификация"
// @Failure      403         {object}  utils.ErrorResponse "Нет доступа"
// @Failure      500         {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /product-collections [post]
func (h *CollectionHandler) CreateCollection(w http.ResponseWriter, r *http.Request) {
	var req CollectionRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	collection, err := h.svc.CreateCollection(r.Context(), auth.FromContext(r.Context()), CollectionRequestToEntity(req))
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to create collection")
		return
	}

	utils.WriteJSON(w, CollectionEntityToJSON(collection), http.StatusCreated)
}

// @Summary      Получить подборку
// @Tags         collections
// @Param        id   path      int  true  "ID подборки"
// @Success      200  {object}  Collection
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Подборка не найдена"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /product-collections/{id} [get]
func (h *CollectionHandler) GetCollection(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	collection, err := h.svc.GetCollection(r.Context(), auth.FromContext(r.Context()), id)
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to get collection")
		return
	}

	utils.WriteJSON(w, CollectionEntityToJSON(collection), http.StatusOK)
}

// @Summary      Заменить подборку
// @Description  Заголовок, текст и набор товаров заменяются целиком
// @Tags         collections
// @Security     BearerAuth
// @Accept       json
// @Param        id          path      int                true  "ID подборки"
// @Param        collection  body      CollectionRequest  true  "Подборка"
// @Success      200         {object}  Collection
// @Failure      400         {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401         {object}  utils.ErrorResponse "Требуется аутентификация"
// @Failure      403         {object}  utils.ErrorResponse "Нет доступа"
// @Failure      404         {object}  utils.ErrorResponse "Подборка не найдена"
// @Failure      500         {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /product-collections/{id} [put]
func (h *CollectionHandler) UpdateCollection(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	var req CollectionRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	collection, err := h.svc.UpdateCollection(r.Context(), auth.FromContext(r.Context()), id, CollectionRequestToEntity(req))
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to update collection")
		return
	}

	utils.WriteJSON(w, CollectionEntityToJSON(collection), http.StatusOK)
}

// @Summary      Удалить подборку
// @Tags         collections
// @Security     BearerAuth
// @Param        id   path  int  true  "ID подборки"
// @Success      204
// @Failure      401  {object}  utils.ErrorResponse "Требуется аутентификация"
// @Failure      403  {object}  utils.ErrorResponse "Нет доступа"
// @Failure      404  {object}  utils.ErrorResponse "Подборка не найдена"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /product-collections/{id} [delete]
func (h *CollectionHandler) DeleteCollection(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if err := h.svc.DeleteCollection(r.Context(), auth.FromContext(r.Context()), id); err != nil {
		writeServiceError(w, r, h.logger, err, "failed to delete collection")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
