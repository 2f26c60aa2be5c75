// product.go
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name           string             `bson:"name" json:"name"`
	Series         string             `bson:"series" json:"series"`
	Scale          string             `bson:"scale,omitempty" json:"scale,omitempty"`
	Price          float64            `bson:"price" json:"price"`
	OldPrice       float64            `bson:"oldPrice,omitempty" json:"oldPrice,omitempty"`
	Description    string             `bson:"description,omitempty" json:"description,omitempty"`
	Images         []string           `bson:"images" json:"images"`
	Specifications string             `bson:"specifications,omitempty" json:"specifications,omitempty"`

	// Invariante: Stock nunca baja de cero. El ledger rechaza descuentos
	// que lo dejarían negativo.
	Stock int `bson:"stock" json:"stock"`

	AvgRating    float64   `bson:"avgRating" json:"avgRating"`
	RatingCount  int       `bson:"ratingCount" json:"ratingCount"`
	IsNewProduct bool      `bson:"isNewProduct" json:"isNewProduct"`
	DiscountText string    `bson:"discountText" json:"discountText"`
	Category     string    `bson:"category" json:"category"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Tipos de movimiento de stock.
type StockMovement string

const (
	StockIn         StockMovement = "in"
	StockOut        StockMovement = "out"
	StockAdjustment StockMovement = "adjustment"
)

// StockHistory registra cada mutación de stock: descuentos por pago,
// reposiciones por cancelación/devolución y ajustes manuales del admin.
type StockHistory struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	Product     primitive.ObjectID  `bson:"product" json:"product"`
	Type        StockMovement       `bson:"type" json:"type"`
	Quantity    int                 `bson:"quantity" json:"quantity"`
	Reason      string              `bson:"reason,omitempty" json:"reason,omitempty"`
	Order       *primitive.ObjectID `bson:"order,omitempty" json:"order,omitempty"`
	PerformedBy *primitive.ObjectID `bson:"performedBy,omitempty" json:"performedBy,omitempty"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
}
