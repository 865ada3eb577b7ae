package handler

import (
	"time"

	"github.com/SergeyBogomolovv/store-service/internal/entities"
	"github.com/shopspring/decimal"
)

// Product товар каталога
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price" example:"10.00"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductRequest тело запроса на создание или замену товара
type ProductRequest struct {
	Name        string           `json:"name" validate:"required,max=200"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price" validate:"required" swaggertype:"string" example:"10.00"`
}

// Position позиция заказа
type Position struct {
	ID       int64 `json:"id"`
	Product  int64 `json:"product"`
	Quantity int   `json:"quantity"`
}

// PositionRequest позиция в запросе. Количество по умолчанию 1
type PositionRequest struct {
	Product  int64 `json:"product" validate:"required,gt=0"`
	Quantity *int  `json:"quantity,omitempty" example:"1"`
}

// Order заказ
type Order struct {
	ID          int64      `json:"id"`
	User        int64      `json:"user"`
	Status      string     `json:"status" enums:"NEW,IN_PROGRESS,DONE"`
	Products    []Position `json:"products"`
	TotalAmount *string    `json:"total_amount" example:"40.00"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CreateOrderRequest тело запроса на создание заказа
type CreateOrderRequest struct {
	Products []PositionRequest `json:"products" validate:"required,dive"`
}

// ReplaceOrderRequest полная замена заказа. Статус может менять только администратор
type ReplaceOrderRequest struct {
	Products []PositionRequest `json:"products" validate:"required,dive"`
	Status   *string           `json:"status,omitempty" enums:"NEW,IN_PROGRESS,DONE"`
}

// PatchOrderRequest частичное обновление заказа
type PatchOrderRequest struct {
	Products *[]PositionRequest `json:"products,omitempty"`
	Status   *string            `json:"status,omitempty" enums:"NEW,IN_PROGRESS,DONE"`
}

// Review отзыв о товаре
type Review struct {
	ID        int64     `json:"id"`
	User      int64     `json:"user"`
	Product   Product   `json:"product"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReviewRequest тело запроса на создание или изменение отзыва
type ReviewRequest struct {
	ProductID int64  `json:"product_id" validate:"required,gt=0"`
	Text      string `json:"text"`
	Rating    int    `json:"rating" minimum:"1" maximum:"5"`
}

// Collection подборка товаров
type Collection struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Products  []Product `json:"products"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CollectionProductRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
}

// CollectionRequest тело запроса на создание или замену подборки
type CollectionRequest struct {
	Title    string                     `json:"title" validate:"required,max=200"`
	Text     string                     `json:"text"`
	Products []CollectionProductRequest `json:"products" validate:"dive"`
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func ProductEntityToJSON(p entities.Product) Product {
	return Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       money(p.Price),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func ProductsEntityToJSON(products []entities.Product) []Product {
	result := make([]Product, 0, len(products))
	for _, p := range products {
		result = append(result, ProductEntityToJSON(p))
	}
	return result
}

func ProductRequestToEntity(p ProductRequest) entities.ProductInput {
	in := entities.ProductInput{
		Name:        p.Name,
		Description: p.Description,
	}
	if p.Price != nil {
		in.Price = *p.Price
	}
	return in
}

func OrderEntityToJSON(o entities.Order) Order {
	positions := make([]Position, 0, len(o.Positions))
	for _, p := range o.Positions {
		positions = append(positions, Position{
			ID:       p.ID,
			Product:  p.ProductID,
			Quantity: p.Quantity,
		})
	}

	var total *string
	if o.TotalAmount.Valid {
		v := money(o.TotalAmount.Decimal)
		total = &v
	}

	return Order{
		ID:          o.ID,
		User:        o.UserID,
		Status:      string(o.Status),
		Products:    positions,
		TotalAmount: total,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderEntityToJSON(o))
	}
	return result
}

func PositionsJSONToEntity(positions []PositionRequest) []entities.PositionInput {
	result := make([]entities.PositionInput, 0, len(positions))
	for _, p := range positions {
		quantity := 1
		if p.Quantity != nil {
			quantity = *p.Quantity
		}
		result = append(result, entities.PositionInput{
			ProductID: p.Product,
			Quantity:  quantity,
		})
	}
	return result
}

func ReviewEntityToJSON(r entities.Review) Review {
	return Review{
		ID:        r.ID,
		User:      r.UserID,
		Product:   ProductEntityToJSON(r.Product),
		Text:      r.Text,
		Rating:    r.Rating,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func ReviewRequestToEntity(r ReviewRequest) entities.ReviewInput {
	return entities.ReviewInput{
		ProductID: r.ProductID,
		Text:      r.Text,
		Rating:    r.Rating,
	}
}

func CollectionEntityToJSON(c entities.Collection) Collection {
	return Collection{
		ID:        c.ID,
		Title:     c.Title,
		Text:      c.Text,
		Products:  ProductsEntityToJSON(c.Products),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func CollectionRequestToEntity(c CollectionRequest) entities.CollectionInput {
	ids := make([]int64, 0, len(c.Products))
	for _, p := range c.Products {
		ids = append(ids, p.ProductID)
	}
	return entities.CollectionInput{
		Title:      c.Title,
		Text:       c.Text,
		ProductIDs: ids,
	}
}
