// dto.go
package dto

import (
	"time"

	"toy-store-backend/internal/model"
)

// ---------- Auth ----------

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

// UserResponse es el usuario sin campos sensibles (password, refresh token).
type UserResponse struct {
	ID        string    `json:"_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	Country   string    `json:"country,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID.Hex(),
		Username:  u.Username,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		Phone:     u.Phone,
		Address:   u.Address,
		City:      u.City,
		Country:   u.Country,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ---------- Users ----------

type UpdateProfileRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Avatar   string `json:"avatar"`
}

type AdminUpdateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	IsAdmin  *bool  `json:"isAdmin"`
}

// ---------- Products ----------

type ProductRequest struct {
	Name           string   `json:"name" binding:"required"`
	Series         string   `json:"series" binding:"required"`
	Scale          string   `json:"scale"`
	Price          float64  `json:"price" binding:"required"`
	OldPrice       float64  `json:"oldPrice"`
	Description    string   `json:"description"`
	Images         []string `json:"images" binding:"required,min=1"`
	Specifications string   `json:"specifications"`
	Stock          int      `json:"stock"`
	IsNewProduct   bool     `json:"isNewProduct"`
	DiscountText   string   `json:"discountText"`
	Category       string   `json:"category"`
}

type UpdateStockRequest struct {
	Stock *int `json:"stock" binding:"required"`
}

type ProductListResponse struct {
	Items []*model.Product `json:"items"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Pages int              `json:"pages"`
	Limit int              `json:"limit"`
}

// ---------- Orders ----------

type OrderItemRequest struct {
	Name    string  `json:"name" binding:"required"`
	Qty     int     `json:"qty" binding:"required,min=1"`
	Image   string  `json:"image"`
	Price   float64 `json:"price"`
	Product string  `json:"product"`
}

type CreateOrderRequest struct {
	OrderItems      []OrderItemRequest    `json:"orderItems" binding:"required,min=1,dive"`
	ShippingAddress model.ShippingAddress `json:"shippingAddress" binding:"required"`
	PaymentMethod   string                `json:"paymentMethod" binding:"required"`
	PaymentResult   *model.PaymentResult  `json:"paymentResult"`
	ItemsPrice      float64               `json:"itemsPrice"`
	ShippingPrice   float64               `json:"shippingPrice"`
	TaxPrice        float64               `json:"taxPrice"`
	CouponCode      string                `json:"couponCode"`
	CouponDiscount  float64               `json:"couponDiscount"`
	TotalPrice      float64               `json:"totalPrice"`
}

type CancelOrderRequest struct {
	CancelReason string `json:"cancelReason"`
}

type ReturnOrderRequest struct {
	ReturnReason      string `json:"returnReason"`
	ReturnBankAccount string `json:"returnBankAccount"`
}

// UpdateOrderStatusRequest es el request del endpoint de admin. Todos los
// campos son opcionales; los punteros distinguen "no vino" de zero value.
type UpdateOrderStatusRequest struct {
	IsPaid         *bool   `json:"isPaid"`
	IsDelivered    *bool   `json:"isDelivered"`
	DeliveryStatus *string `json:"deliveryStatus"`
	CancelStatus   *string `json:"cancelStatus"`
	CancelReason   string  `json:"cancelReason"`
	ReturnStatus   *string `json:"returnStatus"`
}

// ---------- Support ----------

type SupportMessageRequest struct {
	Message        string `json:"message" binding:"required"`
	ConversationID string `json:"conversationId"`
	SenderName     string `json:"senderName"`
	SenderEmail    string `json:"senderEmail"`
	OrderID        string `json:"orderId"`
}
