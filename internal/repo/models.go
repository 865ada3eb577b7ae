package repo

import (
	"time"

	"github.com/SergeyBogomolovv/store-service/internal/entities"

	"github.com/shopspring/decimal"
)

var productColumns = []string{"id", "name", "description", "price", "created_at", "updated_at"}

type Product struct {
	ID          int64           `db:"id"`
	Name        string          `db:"name"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

var orderColumns = []string{"id", "user_id", "status", "total_amount", "created_at", "updated_at"}

type Order struct {
	ID          int64               `db:"id"`
	UserID      int64               `db:"user_id"`
	Status      string              `db:"status"`
	TotalAmount decimal.NullDecimal `db:"total_amount"`
	CreatedAt   time.Time           `db:"created_at"`
	UpdatedAt   time.Time           `db:"updated_at"`
}

var positionColumns = []string{"id", "order_id", "product_id", "quantity"}

type Position struct {
	ID        int64 `db:"id"`
	OrderID   int64 `db:"order_id"`
	ProductID int64 `db:"product_id"`
	Quantity  int   `db:"quantity"`
}

var reviewColumns = []string{
	"r.id", "r.user_id", "r.text", "r.rating", "r.created_at", "r.updated_at",
	"p.id AS product_id", "p.name AS product_name", "p.description AS product_description",
	"p.price AS product_price", "p.created_at AS product_created_at", "p.updated_at AS product_updated_at",
}

// Review is a review row joined with its product.
type Review struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Text      string    `db:"text"`
	Rating    int       `db:"rating"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	ProductID          int64           `db:"product_id"`
	ProductName        string          `db:"product_name"`
	ProductDescription string          `db:"product_description"`
	ProductPrice       decimal.Decimal `db:"product_price"`
	ProductCreatedAt   time.Time       `db:"product_created_at"`
	ProductUpdatedAt   time.Time       `db:"product_updated_at"`
}

var collectionColumns = []string{"id", "title", "text", "created_at", "updated_at"}

type Collection struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	Text      string    `db:"text"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type CollectionProduct struct {
	CollectionID int64 `db:"collection_id"`
	Product
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func PositionToEntity(p Position) entities.Position {
	return entities.Position{
		ID:        p.ID,
		OrderID:   p.OrderID,
		ProductID: p.ProductID,
		Quantity:  p.Quantity,
	}
}

func OrderToEntity(o Order, positions []Position) entities.Order {
	order := entities.Order{
		ID:          o.ID,
		UserID:      o.UserID,
		Status:      entities.OrderStatus(o.Status),
		TotalAmount: o.TotalAmount,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
		Positions:   make([]entities.Position, 0, len(positions)),
	}

	for _, p := range positions {
		order.Positions = append(order.Positions, PositionToEntity(p))
	}

	return order
}

func ReviewToEntity(r Review) entities.Review {
	return entities.Review{
		ID:     r.ID,
		UserID: r.UserID,
		Product: entities.Product{
			ID:          r.ProductID,
			Name:        r.ProductName,
			Description: r.ProductDescription,
			Price:       r.ProductPrice,
			CreatedAt:   r.ProductCreatedAt,
			UpdatedAt:   r.ProductUpdatedAt,
		},
		Text:      r.Text,
		Rating:    r.Rating,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func CollectionToEntity(c Collection, products []Product) entities.Collection {
	collection := entities.Collection{
		ID:        c.ID,
		Title:     c.Title,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Products:  make([]entities.Product, 0, len(products)),
	}

	for _, p := range products {
		collection.Products = append(collection.Products, ProductToEntity(p))
	}

	return collection
}
