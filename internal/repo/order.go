package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/store-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	query, args := r.qb.Insert("orders").
		Columns("user_id", "status", "total_amount").
		Values(o.UserID, string(o.Status), o.TotalAmount).
		Suffix(returning(orderColumns)).
		MustSql()

	var order Order
	if err := checkRange(r.getContext(ctx, &order, query, args...)); err != nil {
		if errors.Is(err, entities.ErrValueOutOfRange) {
			return entities.Order{}, err
		}
		return entities.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}
	return OrderToEntity(order, nil), nil
}

// UpdateOrder writes status and total. The owner column is never touched.
func (r *postgresRepo) UpdateOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	query, args := r.qb.Update("orders").
		Set("status", string(o.Status)).
		Set("total_amount", o.TotalAmount).
		Set("updated_at", touch).
		Where(sq.Eq{"id": o.ID}).
		Suffix(returning(orderColumns)).
		MustSql()

	var order Order
	err := checkRange(r.getContext(ctx, &order, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if errors.Is(err, entities.ErrValueOutOfRange) {
		return entities.Order{}, err
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to update order: %w", err)
	}

	positions, err := r.positions(ctx, order.ID)
	if err != nil {
		return entities.Order{}, err
	}
	return OrderToEntity(order, positions), nil
}

func (r *postgresRepo) DeleteOrder(ctx context.Context, id int64) error {
	// позиции удаляются каскадно
	query, args := r.qb.Delete("orders").Where(sq.Eq{"id": id}).MustSql()

	if err := r.execAffecting(ctx, entities.ErrOrderNotFound, query, args...); err != nil {
		if errors.Is(err, entities.ErrOrderNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, id int64) (entities.Order, error) {
	return r.getOrder(ctx, id, false)
}

// GetOrderForUpdate loads the order and locks its row until the surrounding
// transaction ends, so position replacements on one order never interleave.
func (r *postgresRepo) GetOrderForUpdate(ctx context.Context, id int64) (entities.Order, error) {
	return r.getOrder(ctx, id, true)
}

func (r *postgresRepo) getOrder(ctx context.Context, id int64, lock bool) (entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id})
	if lock {
		q = q.Suffix("FOR UPDATE")
	}
	query, args := q.MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	positions, err := r.positions(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	return OrderToEntity(order, positions), nil
}

func (r *postgresRepo) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy(defaultOrdering)
	query, args := applyOrderFilter(q, filter).MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]int64, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	query, args = r.qb.Select(positionColumns...).
		From("positions").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("id").
		MustSql()

	var positions []Position
	if err := r.selectContext(ctx, &positions, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select positions: %w", err)
	}
	positionsMap := make(map[int64][]Position, len(orders))
	for _, p := range positions {
		positionsMap[p.OrderID] = append(positionsMap[p.OrderID], p)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order, positionsMap[order.ID]))
	}
	return result, nil
}

// SavePositions inserts positions of one order in a single statement.
func (r *postgresRepo) SavePositions(ctx context.Context, orderID int64, positions []entities.PositionInput) ([]entities.Position, error) {
	if len(positions) == 0 {
		return []entities.Position{}, nil
	}

	q := r.qb.Insert("positions").
		Columns("order_id", "product_id", "quantity").
		Suffix(returning(positionColumns))
	for _, p := range positions {
		q = q.Values(orderID, p.ProductID, p.Quantity)
	}
	query, args := q.MustSql()

	var saved []Position
	err := r.selectContext(ctx, &saved, query, args...)
	switch pqCode(err) {
	case uniqueViolation:
		return nil, entities.ErrDuplicateProduct
	case foreignKeyViolation:
		return nil, fmt.Errorf("%w: %w", entities.ErrUnknownProduct, entities.ErrProductNotFound)
	case numericOutOfRange:
		return nil, entities.ErrValueOutOfRange
	}
	if err != nil {
		return nil, fmt.Errorf("failed to insert positions: %w", err)
	}

	result := make([]entities.Position, 0, len(saved))
	for _, p := range saved {
		result = append(result, PositionToEntity(p))
	}
	return result, nil
}

func (r *postgresRepo) DeletePositions(ctx context.Context, orderID int64) error {
	query, args := r.qb.Delete("positions").Where(sq.Eq{"order_id": orderID}).MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete positions: %w", err)
	}
	return nil
}

func (r *postgresRepo) positions(ctx context.Context, orderID int64) ([]Position, error) {
	query, args := r.qb.Select(positionColumns...).
		From("positions").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("id").
		MustSql()

	var positions []Position
	if err := r.selectContext(ctx, &positions, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select positions: %w", err)
	}
	return positions, nil
}
