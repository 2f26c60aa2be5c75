package service

import (
	"context"
	"strings"

	"toy-store-backend/internal/dto"
	"toy-store-backend/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SupportService struct {
	messages SupportRepository
}

func NewSupportService(messages SupportRepository) *SupportService {
	return &SupportService{messages: messages}
}

// normalizeConversationID: la conversación se identifica por el email del
// cliente, siempre en minúsculas.
func normalizeConversationID(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return strings.ToLower(v)
	}
	if f := strings.TrimSpace(fallback); f != "" {
		return strings.ToLower(f)
	}
	return ""
}

// CreateMessage guarda un mensaje del chat. El admin escribe sobre la
// conversación del cliente; el cliente siempre escribe en la suya.
func (s *SupportService) CreateMessage(ctx context.Context, actor model.Principal, req dto.SupportMessageRequest) (*model.SupportMessage, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, ruleErr("El mensaje no puede estar vacío")
	}

	if !actor.IsAdmin && actor.Email == "" {
		return nil, ruleErr("No se pudo determinar el email del usuario")
	}

	fallback := actor.Email
	if actor.IsAdmin {
		fallback = req.SenderEmail
	}
	conversationID := normalizeConversationID(req.ConversationID, fallback)
	if conversationID == "" {
		return nil, ruleErr("No se pudo determinar la conversación")
	}

	msg := &model.SupportMessage{
		ConversationID: conversationID,
		Message:        message,
		// Los mensajes del admin nacen leídos; los del cliente quedan
		// pendientes hasta que el admin abre la conversación.
		IsRead: actor.IsAdmin,
	}

	if actor.IsAdmin {
		msg.SenderType = model.SenderAdmin
		msg.SenderName = firstNonEmpty(req.SenderName, actor.Username, "Admin")
		msg.SenderEmail = strings.ToLower(strings.TrimSpace(req.SenderEmail))
	} else {
		msg.SenderType = model.SenderCustomer
		msg.SenderName = firstNonEmpty(actor.Username, req.SenderName, "Cliente")
		msg.SenderEmail = strings.ToLower(firstNonEmpty(actor.Email, req.SenderEmail))
	}

	if req.OrderID != "" {
		if orderID, err := primitive.ObjectIDFromHex(req.OrderID); err == nil {
			msg.OrderID = &orderID
		}
	}

	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// Conversations es la bandeja del admin.
func (s *SupportService) Conversations(ctx context.Context) ([]*model.ConversationSummary, error) {
	return s.messages.Conversations(ctx)
}

// ConversationMessages lista una conversación y, si la abre un admin, marca
// como leídos los mensajes del cliente.
func (s *SupportService) ConversationMessages(ctx context.Context, actor model.Principal, conversationID string) ([]*model.SupportMessage, error) {
	conversationID = strings.ToLower(strings.TrimSpace(conversationID))
	if conversationID == "" {
		return nil, ruleErr("Falta el id de conversación")
	}

	messages, err := s.messages.FindByConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	if actor.IsAdmin {
		if err := s.messages.MarkConversationRead(ctx, conversationID); err != nil {
			return nil, err
		}
	}
	return messages, nil
}

// MyMessages devuelve la conversación del usuario autenticado.
func (s *SupportService) MyMessages(ctx context.Context, actor model.Principal) ([]*model.SupportMessage, error) {
	if actor.Email == "" {
		return nil, ruleErr("No se pudo determinar el email del usuario")
	}
	return s.messages.FindByConversation(ctx, strings.ToLower(actor.Email))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
