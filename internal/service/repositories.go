package service

import (
	"context"

	"toy-store-backend/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Interfaces que deben implementar los repositorios.

type OrderRepository interface {
	Create(ctx context.Context, o *model.Order) error
	Save(ctx context.Context, o *model.Order) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Order, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*model.Order, error)
	FindAll(ctx context.Context) ([]*model.Order, error)
}

type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	Save(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Product, error)
	FindPage(ctx context.Context, page, limit int) ([]*model.Product, int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	Save(ctx context.Context, u *model.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindAll(ctx context.Context) ([]*model.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type SupportRepository interface {
	Create(ctx context.Context, msg *model.SupportMessage) error
	FindByConversation(ctx context.Context, conversationID string) ([]*model.SupportMessage, error)
	Conversations(ctx context.Context) ([]*model.ConversationSummary, error)
	MarkConversationRead(ctx context.Context, conversationID string) error
}

type StockHistoryRepository interface {
	Create(ctx context.Context, h *model.StockHistory) error
	FindByProduct(ctx context.Context, productID primitive.ObjectID) ([]*model.StockHistory, error)
}

// EventPublisher publica eventos de órdenes para los servicios que consumen
// el exchange order_events. Es fire-and-forget: un error de publicación se
// loguea pero nunca falla el request.
type EventPublisher interface {
	PublishOrderEvent(event string, o *model.Order)
}
