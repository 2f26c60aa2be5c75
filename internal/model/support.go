// support.go
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SenderType string

const (
	SenderAdmin    SenderType = "admin"
	SenderCustomer SenderType = "customer"
)

// SupportMessage es un mensaje del chat de soporte. La conversación se
// identifica por el email del cliente en minúsculas.
type SupportMessage struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	ConversationID string              `bson:"conversationId" json:"conversationId"`
	SenderType     SenderType          `bson:"senderType" json:"senderType"`
	SenderName     string              `bson:"senderName" json:"senderName"`
	SenderEmail    string              `bson:"senderEmail,omitempty" json:"senderEmail,omitempty"`
	Message        string              `bson:"message" json:"message"`
	OrderID        *primitive.ObjectID `bson:"orderId,omitempty" json:"orderId,omitempty"`
	IsRead         bool                `bson:"isRead" json:"isRead"`
	CreatedAt      time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// ConversationSummary es el resultado de la agregación que arma la bandeja
// del admin: último mensaje y cantidad de no leídos por conversación.
type ConversationSummary struct {
	ConversationID string    `bson:"_id" json:"conversationId"`
	LastMessage    string    `bson:"lastMessage" json:"lastMessage"`
	LastMessageAt  time.Time `bson:"lastMessageAt" json:"lastMessageAt"`
	LastSender     string    `bson:"lastSender" json:"lastSender"`
	CustomerEmail  string    `bson:"customerEmail,omitempty" json:"customerEmail,omitempty"`
	CustomerName   string    `bson:"customerName,omitempty" json:"customerName,omitempty"`
	UnreadCount    int       `bson:"unreadCount" json:"unreadCount"`
}
