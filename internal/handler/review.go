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

type ReviewService interface {
	CreateReview(ctx context.Context, actor entities.Identity, in entities.ReviewInput) (entities.Review, error)
	UpdateReview(ctx context.Context, actor entities.Identity, id int64, in entities.ReviewInput) (entities.Review, error)
	DeleteReview(ctx context.Context, actor entities.Identity, id int64) error
	GetReview(ctx context.Context, actor entities.Identity, id int64) (entities.Review, error)
	ListReviews(ctx context.Context, actor entities.Identity, filter entities.ReviewFilter) ([]entities.Review, error)
}

type ReviewHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      ReviewService
}

func NewReviewHandler(logger *slog.Logger, svc ReviewService) *ReviewHandler {
	return &ReviewHandler{
		logger:   logger.With(slog.String("handler", "review")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *ReviewHandler) Init(r chi.Router) {
	r.Route("/product-reviews", func(r chi.Router) {
		r.Get("/", h.ListReviews)
		r.Post("/", h.CreateReview)
		r.Get("/{id}", h.GetReview)
		r.Put("/{id}", h.UpdateReview)
		r.Delete("/{id}", h.DeleteReview)
	})
}

// ListReviews возвращает отзывы.
// @Summary      Список отзывов
// @Tags         reviews
// @Param        user_id            query     int     false  "Автор"
// @Param        product_id         query     int     false  "Товар"
// @Param        created_at_after   query     string  false  "Создан не раньше"
// @Param        created_at_before  query     string  false  "Создан не позже"
// @Success      200  {array}   Review
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /product-reviews [get]
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	filter, err := parseReviewFilter(r.URL.Query())
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	reviews, err := h.svc.ListReviews(r.Context(), auth.FromContext(r.Context()), filter)
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to list reviews")
		return
	}

	result := make([]Review, 0, len(reviews))
	for _, review := range reviews {
		result = append(result, ReviewEntityToJSON(review))
	}
	utils.WriteJSON(w, result, http.StatusOK)
}

// CreateReview добавляет отзыв текущего пользователя.
// @Summary      Оставить отзыв
// @Description  Пользователь может оставить только один отзыв на товар
// @Tags         reviews
// @Security     BearerAuth
// @Accept       json
// @Param        review  body      ReviewRequest  true  "Отзыв"
// @Success      201     {object}  Review
// @Failure      400     {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401     {object}  utils.ErrorResponse "Требуется аутентификация"
// @Failure      500     {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /product-reviews [post]
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req ReviewRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	review, err := h.svc.CreateReview(r.Context(), auth.FromContext(r.Context()), ReviewRequestToEntity(req))
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to create review")
		return
	}

	reviewsCreated.Inc()
	utils.WriteJSON(w, ReviewEntityToJSON(review), http.StatusCreated)
}

// GetReview возвращает отзыв по ID.
// @Summary      Получить отзыв
// @Tags         reviews
// @Param        id   path      int  true  "ID отзыва"
// @Success      200  {object}  Review
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Отзыв не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /product-reviews/{id} [get]
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	review, err := h.svc.GetReview(r.Context(), auth.FromContext(r.Context()), id)
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to get review")
		return
	}

	utils.WriteJSON(w, ReviewEntityToJSON(review), http.StatusOK)
}

// UpdateReview меняет текст и оценку.
// @Summary      Изменить отзыв
// @Tags         reviews
// @Security     BearerAuth
// @Accept       json
// @Param        id      path      int            true  "ID отзыва"
// @Param        review  body      ReviewRequest  true  "Отзыв"
// @Success      200     {object}  Review
// @Failure      400     {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401     {object}  utils.ErrorResponse "Требуется аутентификация"
// @Failure      403     {object}  utils.ErrorResponse "Нет доступа"
// @Failure      404     {object}  utils.ErrorResponse "Отзыв не найден"
// @Failure      500     {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /product-reviews/{id} [put]
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	var req ReviewRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	review, err := h.svc.UpdateReview(r.Context(), auth.FromContext(r.Context()), id, ReviewRequestToEntity(req))
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to update review")
		return
	}

	utils.WriteJSON(w, ReviewEntityToJSON(review), http.StatusOK)
}

// DeleteReview удаляет отзыв.
// @Summary      Удалить отзыв
// @Tags         reviews
// @Security     BearerAuth
// @Param        id   path  int  true  "ID отзыва"
// @Success      204
// @Failure      401  {object}  utils.ErrorResponse "Требуется аутентификация"
// @Failure      403  {object}  utils.ErrorResponse "Нет доступа"
// @Failure      404  {object}  utils.ErrorResponse "Отзыв не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /product-reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if err := h.svc.DeleteReview(r.Context(), auth.FromContext(r.Context()), id); err != nil {
		writeServiceError(w, r, h.logger, err, "failed to delete review")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
