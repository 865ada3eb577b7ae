package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/store-service/internal/auth"
	"github.com/SergeyBogomolovv/store-service/internal/entities"
	"github.com/SergeyBogomolovv/store-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/store-service/internal/handler/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	owner = entities.Identity{UserID: 1}
	admin = entities.Identity{UserID: 100, IsAdmin: true}
)

func newRequest(method, target, body string, actor entities.Identity) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	return req.WithContext(auth.WithIdentity(req.Context(), actor))
}

func serve(t *testing.T, h interface{ Init(r chi.Router) }, req *http.Request) (int, string) {
	t.Helper()

	r := chi.NewRouter()
	h.Init(r)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(body)
}

func TestOrderHandler(t *testing.T) {
	order := entities.Order{
		ID:          7,
		UserID:      owner.UserID,
		Status:      entities.OrderStatusNew,
		TotalAmount: decimal.NewNullDecimal(decimal.RequireFromString("40")),
		Positions: []entities.Position{
			{ID: 1, OrderID: 7, ProductID: 1, Quantity: 2},
			{ID: 2, OrderID: 7, ProductID: 2, Quantity: 4},
		},
	}

	testCases := []struct {
		name         string
		method       string
		target       string
		body         string
		actor        entities.Identity
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "create",
			method: http.MethodPost,
			target: "/orders",
			body:   `{"products":[{"product":1,"quantity":2},{"product":2,"quantity":4}]}`,
			actor:  owner,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, owner, []entities.PositionInput{
						{ProductID: 1, Quantity: 2},
						{ProductID: 2, Quantity: 4},
					}).
					Return(order, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"total_amount":"40.00"`,
		},
		{
			name:   "create with default quantity",
			method: http.MethodPost,
			target: "/orders",
			body:   `{"products":[{"product":1}]}`,
			actor:  owner,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, owner, []entities.PositionInput{{ProductID: 1, Quantity: 1}}).
					Return(order, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"id":7`,
		},
		{
			name:         "create anonymous",
			method:       http.MethodPost,
			target:       "/orders",
			body:         `{"products":[]}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusUnauthorized,
			wantBody:     `"authentication required"`,
		},
		{
			name:         "create anonymous with invalid body",
			method:       http.MethodPost,
			target:       "/orders",
			body:         `{}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusUnauthorized,
			wantBody:     `"authentication required"`,
		},
		{
			name:         "patch anonymous",
			method:       http.MethodPatch,
			target:       "/orders/7",
			body:         `{"status":"bogus"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusUnauthorized,
			wantBody:     `"authentication required"`,
		},
		{
			name:   "create with duplicate product",
			method: http.MethodPost,
			target: "/orders",
			body:   `{"products":[{"product":1,"quantity":1},{"product":1,"quantity":1}]}`,
			actor:  owner,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, owner, mock.Anything).
					Return(entities.Order{}, entities.ErrDuplicateProduct).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"duplicate product"`,
		},
		{
			name:   "create with unknown product",
			method: http.MethodPost,
			target: "/orders",
			body:   `{"products":[{"product":9,"quantity":1}]}`,
			actor:  owner,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, owner, mock.Anything).
					Return(entities.Order{}, entities.UnknownProductError(9)).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"product with id 9 does not exist"`,
		},
		{
			name:         "create without products",
			method:       http.MethodPost,
			target:       "/orders",
			body:         `{}`,
			actor:        owner,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Products":"required"`,
		},
		{
			name:         "create with malformed body",
			method:       http.MethodPost,
			target:       "/orders",
			body:         `{"products":`,
			actor:        owner,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `invalid request body`,
		},
		{
			name:   "get",
			method: http.MethodGet,
			target: "/orders/7",
			actor:  owner,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, owner, int64(7)).Return(order, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"products":[{"id":1,"product":1,"quantity":2},{"id":2,"product":2,"quantity":4}]`,
		},
		{
			name:   "get someone else's order",
			method: http.MethodGet,
			target: "/orders/7",
			actor:  entities.Identity{UserID: 2},
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, mock.Anything, int64(7)).
					Return(entities.Order{}, entities.ErrForbidden).Once()
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `"permission denied"`,
		},
		{
			name:   "get missing order",
			method: http.MethodGet,
			target: "/orders/8",
			actor:  owner,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, owner, int64(8)).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:         "get with bad id",
			method:       http.MethodGet,
			target:       "/orders/abc",
			actor:        owner,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `invalid id`,
		},
		{
			name:   "internal error",
			method: http.MethodGet,
			target: "/orders/7",
			actor:  owner,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, owner, int64(7)).
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
		{
			name:   "owner patches status",
			method: http.MethodPatch,
			target: "/orders/7",
			body:   `{"status":"DONE"}`,
			actor:  owner,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().UpdateOrder(mock.Anything, owner, int64(7), mock.MatchedBy(func(u entities.OrderUpdate) bool {
					return u.Positions == nil && u.Status != nil && *u.Status == entities.OrderStatusDone
				})).
					Return(entities.Order{}, entities.ErrStatusChangeDenied).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"only administrators may change order status"`,
		},
		{
			name:   "admin patches status",
			method: http.MethodPatch,
			target: "/orders/7",
			body:   `{"status":"DONE"}`,
			actor:  admin,
			mockBehavior: func(svc *mocks.MockOrderService) {
				done := order
				done.Status = entities.OrderStatusDone
				svc.EXPECT().UpdateOrder(mock.Anything, admin, int64(7), mock.Anything).Return(done, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"DONE"`,
		},
		{
			name:   "patch with empty positions",
			method: http.MethodPatch,
			target: "/orders/7",
			body:   `{"products":[]}`,
			actor:  owner,
			mockBehavior: func(svc *mocks.MockOrderService) {
				emptied := order
				emptied.Positions = []entities.Position{}
				emptied.TotalAmount = decimal.NewNullDecimal(decimal.Zero)
				svc.EXPECT().UpdateOrder(mock.Anything, owner, int64(7), mock.MatchedBy(func(u entities.OrderUpdate) bool {
					return u.Positions != nil && len(*u.Positions) == 0 && u.Status == nil
				})).
					Return(emptied, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total_amount":"0.00"`,
		},
		{
			name:         "put without products",
			method:       http.MethodPut,
			target:       "/orders/7",
			body:         `{"status":"DONE"}`,
			actor:        admin,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Products":"required"`,
		},
		{
			name:   "put replaces positions",
			method: http.MethodPut,
			target: "/orders/7",
			body:   `{"products":[{"product":1,"quantity":1}]}`,
			actor:  owner,
			mockBehavior: func(svc *mocks.MockOrderService) {
				replaced := order
				replaced.Positions = []entities.Position{{ID: 3, OrderID: 7, ProductID: 1, Quantity: 1}}
				replaced.TotalAmount = decimal.NewNullDecimal(decimal.RequireFromString("10"))
				svc.EXPECT().UpdateOrder(mock.Anything, owner, int64(7), mock.MatchedBy(func(u entities.OrderUpdate) bool {
					return u.Positions != nil && len(*u.Positions) == 1 && u.Status == nil
				})).
					Return(replaced, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total_amount":"10.00"`,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			target: "/orders/7",
			actor:  owner,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().DeleteOrder(mock.Anything, owner, int64(7)).Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "list with filters",
			method: http.MethodGet,
			target: "/orders?status=NEW&products=1&products=2&total_amount_from=10&created_at_before=2024-03-01",
			actor:  owner,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().ListOrders(mock.Anything, owner, mock.MatchedBy(func(f entities.OrderFilter) bool {
					return f.Status != nil && *f.Status == entities.OrderStatusNew &&
						assert.ObjectsAreEqual([]int64{1, 2}, f.ProductIDs) &&
						f.TotalAmountFrom != nil && f.TotalAmountFrom.Equal(decimal.NewFromInt(10)) &&
						f.CreatedBefore != nil && f.CreatedBefore.Hour() == 23
				})).
					Return([]entities.Order{order}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":7`,
		},
		{
			name:         "list with unknown status",
			method:       http.MethodGet,
			target:       "/orders?status=LOST",
			actor:        owner,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `invalid status`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			h := handler.NewOrderHandler(logger, svc)

			status, body := serve(t, h, newRequest(tc.method, tc.target, tc.body, tc.actor))

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestOrderHandler_Response(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	svc.EXPECT().GetOrder(mock.Anything, owner, int64(7)).Return(entities.Order{
		ID:     7,
		UserID: owner.UserID,
		Status: entities.OrderStatusInProgress,
	}, nil).Once()

	h := handler.NewOrderHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), svc)
	status, body := serve(t, h, newRequest(http.MethodGet, "/orders/7", "", owner))
	require.Equal(t, http.StatusOK, status)

	var resp map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, float64(7), resp["id"])
	assert.Equal(t, float64(1), resp["user"])
	assert.Equal(t, "IN_PROGRESS", resp["status"])
	assert.Nil(t, resp["total_amount"])
	assert.Equal(t, []any{}, resp["products"])
}
