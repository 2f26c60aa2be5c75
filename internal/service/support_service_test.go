package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"toy-store-backend/internal/dto"
	"toy-store-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeSupportRepo struct {
	mu       sync.Mutex
	messages []model.SupportMessage
}

func (f *fakeSupportRepo) Create(ctx context.Context, msg *model.SupportMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	msg.ID = primitive.NewObjectID()
	msg.CreatedAt = time.Now().UTC()
	f.messages = append(f.messages, *msg)
	return nil
}

func (f *fakeSupportRepo) FindByConversation(ctx context.Context, conversationID string) ([]*model.SupportMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.SupportMessage
	for _, m := range f.messages {
		if m.ConversationID == conversationID {
			v := m
			out = append(out, &v)
		}
	}
	return out, nil
}

func (f *fakeSupportRepo) Conversations(ctx context.Context) ([]*model.ConversationSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	byConv := map[string]*model.ConversationSummary{}
	for _, m := range f.messages {
		s, ok := byConv[m.ConversationID]
		if !ok {
			s = &model.ConversationSummary{ConversationID: m.ConversationID}
			byConv[m.ConversationID] = s
		}
		s.LastMessage = m.Message
		s.LastMessageAt = m.CreatedAt
		s.LastSender = string(m.SenderType)
		if m.SenderType == model.SenderCustomer && !m.IsRead {
			s.UnreadCount++
		}
	}
	var out []*model.ConversationSummary
	for _, s := range byConv {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSupportRepo) MarkConversationRead(ctx context.Context, conversationID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.messages {
		if f.messages[i].ConversationID == conversationID && f.messages[i].SenderType == model.SenderCustomer {
			f.messages[i].IsRead = true
		}
	}
	return nil
}

func TestSupportService_MensajeDelCliente(t *testing.T) {
	repo := &fakeSupportRepo{}
	svc := NewSupportService(repo)
	ctx := context.Background()

	actor := model.Principal{ID: primitive.NewObjectID().Hex(), Username: "gundamfan", Email: "Fan@Example.com"}
	msg, err := svc.CreateMessage(ctx, actor, dto.SupportMessageRequest{Message: "  ¿Tienen stock del RX-78-2?  "})
	require.NoError(t, err)

	assert.Equal(t, "fan@example.com", msg.ConversationID, "la conversación es el email en minúsculas")
	assert.Equal(t, model.SenderCustomer, msg.SenderType)
	assert.Equal(t, "gundamfan", msg.SenderName)
	assert.Equal(t, "¿Tienen stock del RX-78-2?", msg.Message)
	assert.False(t, msg.IsRead, "los mensajes del cliente quedan pendientes")
}

func TestSupportService_MensajeDelAdminVaALaConversacionDelCliente(t *testing.T) {
	repo := &fakeSupportRepo{}
	svc := NewSupportService(repo)
	ctx := context.Background()

	adminActor := model.Principal{ID: primitive.NewObjectID().Hex(), Username: "admin", Email: "admin@example.com", IsAdmin: true}
	msg, err := svc.CreateMessage(ctx, adminActor, dto.SupportMessageRequest{
		Message:        "Sí, tenemos stock",
		ConversationID: "Fan@Example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "fan@example.com", msg.ConversationID)
	assert.Equal(t, model.SenderAdmin, msg.SenderType)
	assert.True(t, msg.IsRead, "los mensajes del admin nacen leídos")
}

func TestSupportService_MensajeVacio(t *testing.T) {
	svc := NewSupportService(&fakeSupportRepo{})

	actor := model.Principal{Email: "fan@example.com"}
	_, err := svc.CreateMessage(context.Background(), actor, dto.SupportMessageRequest{Message: "   "})
	var ruleError *RuleError
	require.ErrorAs(t, err, &ruleError)
	assert.True(t, strings.Contains(err.Error(), "vacío"))
}

func TestSupportService_AdminAbreLaConversacionYMarcaLeidos(t *testing.T) {
	repo := &fakeSupportRepo{}
	svc := NewSupportService(repo)
	ctx := context.Background()

	customerActor := model.Principal{Username: "fan", Email: "fan@example.com"}
	_, err := svc.CreateMessage(ctx, customerActor, dto.SupportMessageRequest{Message: "hola"})
	require.NoError(t, err)
	_, err = svc.CreateMessage(ctx, customerActor, dto.SupportMessageRequest{Message: "¿hay alguien?"})
	require.NoError(t, err)

	convs, err := svc.Conversations(ctx)
	require.NoError(t, err)
	require.Len(t, convs, 1)
	assert.Equal(t, 2, convs[0].UnreadCount)

	adminActor := model.Principal{Username: "admin", IsAdmin: true}
	messages, err := svc.ConversationMessages(ctx, adminActor, "FAN@example.com")
	require.NoError(t, err)
	assert.Len(t, messages, 2)

	convs, err = svc.Conversations(ctx)
	require.NoError(t, err)
	require.Len(t, convs, 1)
	assert.Equal(t, 0, convs[0].UnreadCount, "abrir la conversación marca los mensajes como leídos")
}

func TestSupportService_MyMessagesRequiereEmail(t *testing.T) {
	svc := NewSupportService(&fakeSupportRepo{})

	_, err := svc.MyMessages(context.Background(), model.Principal{Username: "sin-email"})
	var ruleError *RuleError
	require.ErrorAs(t, err, &ruleError)
}
