// order.go
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RequestStatus es el estado de una solicitud de cancelación o devolución.
// El zero value ("") significa que todavía no hay solicitud.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// IsResolution indica si el valor es una resolución de admin (approved/rejected).
func (s RequestStatus) IsResolution() bool {
	return s == RequestApproved || s == RequestRejected
}

type OrderItem struct {
	Name  string  `bson:"name" json:"name"`
	Qty   int     `bson:"qty" json:"qty"`
	Image string  `bson:"image" json:"image"`
	Price float64 `bson:"price" json:"price"`

	// Referencia al producto. Viene del front como string y puede no ser
	// un ObjectID válido (items legacy), por eso no se tipa como ObjectID.
	Product string `bson:"product" json:"product"`
}

type ShippingAddress struct {
	FullName string `bson:"fullName" json:"fullName"`
	Address  string `bson:"address" json:"address"`
	City     string `bson:"city" json:"city"`
	Country  string `bson:"country" json:"country"`
	Phone    string `bson:"phone" json:"phone"`
}

// PaymentResult es la referencia opaca que devuelve el procesador de pagos.
type PaymentResult struct {
	ID       string  `bson:"id,omitempty" json:"id,omitempty"`
	Status   string  `bson:"status,omitempty" json:"status,omitempty"`
	Amount   float64 `bson:"amount,omitempty" json:"amount,omitempty"`
	Currency string  `bson:"currency,omitempty" json:"currency,omitempty"`
}

type Order struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	User       primitive.ObjectID `bson:"user" json:"user"`
	OrderItems []OrderItem        `bson:"orderItems" json:"orderItems"`

	ShippingAddress ShippingAddress `bson:"shippingAddress" json:"shippingAddress"`
	PaymentMethod   string          `bson:"paymentMethod" json:"paymentMethod"`
	PaymentResult   *PaymentResult  `bson:"paymentResult,omitempty" json:"paymentResult,omitempty"`

	ItemsPrice     float64 `bson:"itemsPrice" json:"itemsPrice"`
	ShippingPrice  float64 `bson:"shippingPrice" json:"shippingPrice"`
	TaxPrice       float64 `bson:"taxPrice" json:"taxPrice"`
	CouponCode     string  `bson:"couponCode,omitempty" json:"couponCode,omitempty"`
	CouponDiscount float64 `bson:"couponDiscount" json:"couponDiscount"`
	TotalPrice     float64 `bson:"totalPrice" json:"totalPrice"`

	IsPaid bool       `bson:"isPaid" json:"isPaid"`
	PaidAt *time.Time `bson:"paidAt,omitempty" json:"paidAt,omitempty"`

	// StockDeducted es true sii el stock fue descontado por esta orden y
	// todavía no fue repuesto. Lo administra únicamente el StockLedger.
	StockDeducted bool `bson:"stockDeducted" json:"stockDeducted"`

	// Campos legacy, se mantienen sincronizados con DeliveryStatus.
	IsDelivered bool       `bson:"isDelivered" json:"isDelivered"`
	DeliveredAt *time.Time `bson:"deliveredAt,omitempty" json:"deliveredAt,omitempty"`

	DeliveryStatus DeliveryStatus `bson:"deliveryStatus" json:"deliveryStatus"`

	IsCancelled       bool          `bson:"isCancelled" json:"isCancelled"`
	CancelReason      string        `bson:"cancelReason,omitempty" json:"cancelReason,omitempty"`
	CancelRequestedAt *time.Time    `bson:"cancelRequestedAt,omitempty" json:"cancelRequestedAt,omitempty"`
	CancelStatus      RequestStatus `bson:"cancelStatus,omitempty" json:"cancelStatus,omitempty"`

	IsReturnRequested bool          `bson:"isReturnRequested" json:"isReturnRequested"`
	ReturnReason      string        `bson:"returnReason,omitempty" json:"returnReason,omitempty"`
	ReturnBankAccount string        `bson:"returnBankAccount,omitempty" json:"returnBankAccount,omitempty"`
	ReturnRequestedAt *time.Time    `bson:"returnRequestedAt,omitempty" json:"returnRequestedAt,omitempty"`
	ReturnStatus      RequestStatus `bson:"returnStatus,omitempty" json:"returnStatus,omitempty"`
	ReturnProcessedAt *time.Time    `bson:"returnProcessedAt,omitempty" json:"returnProcessedAt,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
