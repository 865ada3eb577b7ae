package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/store-service/internal/entities"
	"github.com/SergeyBogomolovv/store-service/pkg/trm"

	"github.com/shopspring/decimal"
)

type OrderRepo interface {
	CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error)
	UpdateOrder(ctx context.Context, o entities.Order) (entities.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
	GetOrderByID(ctx context.Context, id int64) (entities.Order, error)
	GetOrderForUpdate(ctx context.Context, id int64) (entities.Order, error)
	ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)

	SavePositions(ctx context.Context, orderID int64, positions []entities.PositionInput) ([]entities.Position, error)
	DeletePositions(ctx context.Context, orderID int64) error
}

// ProductLookup resolves current product prices. Missing ids are skipped.
type ProductLookup interface {
	GetProductsByIDs(ctx context.Context, ids []int64) ([]entities.Product, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event entities.OrderEvent) error
}

type Authorizer interface {
	Authorize(actor entities.Identity, action entities.Action, res entities.Resource) error
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	products  ProductLookup
	policy    Authorizer
	events    EventPublisher
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	products ProductLookup,
	policy Authorizer,
	events EventPublisher,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		orders:    orders,
		products:  products,
		policy:    policy,
		events:    events,
	}
}

// CreateOrder places an order owned by the actor. Prices are taken from the
// catalog at the moment of the call.
func (s *orderService) CreateOrder(ctx context.Context, actor entities.Identity, positions []entities.PositionInput) (entities.Order, error) {
	if err := s.policy.Authorize(actor, entities.ActionCreate, entities.Unscoped(entities.KindOrder)); err != nil {
		return entities.Order{}, err
	}
	if err := entities.ValidatePositions(positions); err != nil {
		return entities.Order{}, err
	}

	var order entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		total, err := s.totalAmount(ctx, positions)
		if err != nil {
			return err
		}

		created, err := s.orders.CreateOrder(ctx, entities.Order{
			UserID:      actor.UserID,
			Status:      entities.OrderStatusNew,
			TotalAmount: decimal.NewNullDecimal(total),
		})
		if err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		saved, err := s.orders.SavePositions(ctx, created.ID, positions)
		if err != nil {
			return fmt.Errorf("failed to save positions: %w", err)
		}
		created.Positions = saved
		order = created
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.Debug("order created", slog.Int64("order_id", order.ID), slog.Int64("user_id", order.UserID))
	s.publish(ctx, entities.OrderCreated, order)
	return order, nil
}

// UpdateOrder applies a full or partial update. A nil Positions keeps the
// current positions; a non-nil empty list removes them all.
func (s *orderService) UpdateOrder(ctx context.Context, actor entities.Identity, id int64, upd entities.OrderUpdate) (entities.Order, error) {
	if err := s.policy.Authorize(actor, entities.ActionUpdate, entities.Unscoped(entities.KindOrder)); err != nil {
		return entities.Order{}, err
	}

	var order entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.orders.GetOrderForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := s.policy.Authorize(actor, entities.ActionUpdate, entities.Owned(entities.KindOrder, current.UserID)); err != nil {
			return err
		}

		if upd.Status != nil {
			if actor.Role() != entities.RoleAdmin {
				return entities.ErrStatusChangeDenied
			}
			if !upd.Status.Valid() {
				return entities.ErrInvalidStatus
			}
			current.Status = *upd.Status
		}

		if upd.Positions != nil {
			positions := *upd.Positions
			if err := entities.ValidatePositions(positions); err != nil {
				return err
			}
			total, err := s.totalAmount(ctx, positions)
			if err != nil {
				return err
			}
			if err := s.orders.DeletePositions(ctx, id); err != nil {
				return err
			}
			if _, err := s.orders.SavePositions(ctx, id, positions); err != nil {
				return fmt.Errorf("failed to save positions: %w", err)
			}
			current.TotalAmount = decimal.NewNullDecimal(total)
		}

		updated, err := s.orders.UpdateOrder(ctx, current)
		if err != nil {
			return err
		}
		order = updated
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.Debug("order updated", slog.Int64("order_id", order.ID), slog.String("status", string(order.Status)))
	s.publish(ctx, entities.OrderUpdated, order)
	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, actor entities.Identity, id int64) (entities.Order, error) {
	if err := s.policy.Authorize(actor, entities.ActionRead, entities.Unscoped(entities.KindOrder)); err != nil {
		return entities.Order{}, err
	}

	order, err := s.orders.GetOrderByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if err := s.policy.Authorize(actor, entities.ActionRead, entities.Owned(entities.KindOrder, order.UserID)); err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

// ListOrders returns orders matching filter. Regular users only ever see
// their own orders, whatever the filter says.
func (s *orderService) ListOrders(ctx context.Context, actor entities.Identity, filter entities.OrderFilter) ([]entities.Order, error) {
	if err := s.policy.Authorize(actor, entities.ActionList, entities.Unscoped(entities.KindOrder)); err != nil {
		return nil, err
	}
	if actor.Role() != entities.RoleAdmin {
		owner := actor.UserID
		filter.UserID = &owner
	}
	return s.orders.ListOrders(ctx, filter)
}

func (s *orderService) DeleteOrder(ctx context.Context, actor entities.Identity, id int64) error {
	if err := s.policy.Authorize(actor, entities.ActionDelete, entities.Unscoped(entities.KindOrder)); err != nil {
		return err
	}

	var order entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.orders.GetOrderForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := s.policy.Authorize(actor, entities.ActionDelete, entities.Owned(entities.KindOrder, current.UserID)); err != nil {
			return err
		}
		if err := s.orders.DeleteOrder(ctx, id); err != nil {
			return err
		}
		order = current
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Debug("order deleted", slog.Int64("order_id", id))
	s.publish(ctx, entities.OrderDeleted, order)
	return nil
}

func (s *orderService) totalAmount(ctx context.Context, positions []entities.PositionInput) (decimal.Decimal, error) {
	if len(positions) == 0 {
		return decimal.Zero, nil
	}

	ids := make([]int64, len(positions))
	for i, p := range positions {
		ids[i] = p.ProductID
	}

	products, err := s.products.GetProductsByIDs(ctx, ids)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to get prices: %w", err)
	}
	prices := make(map[int64]decimal.Decimal, len(products))
	for _, p := range products {
		prices[p.ID] = p.Price
	}

	return entities.CalculateTotal(positions, prices)
}

// publish runs after commit; a broker failure never fails the request.
func (s *orderService) publish(ctx context.Context, t entities.OrderEventType, order entities.Order) {
	if err := s.events.Publish(ctx, entities.NewOrderEvent(t, order)); err != nil {
		s.logger.Warn("failed to publish order event",
			slog.String("type", string(t)),
			slog.Int64("order_id", order.ID),
			slog.Any("error", err),
		)
	}
}
