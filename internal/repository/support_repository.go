package repository

import (
	"context"
	"time"

	"toy-store-backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoSupportRepository struct {
	col *mongo.Collection
}

func NewMongoSupportRepository(db *mongo.Database) *MongoSupportRepository {
	return &MongoSupportRepository{col: db.Collection("support_messages")}
}

func (m *MongoSupportRepository) Create(ctx context.Context, msg *model.SupportMessage) error {
	now := time.Now().UTC()
	msg.CreatedAt = now
	msg.UpdatedAt = now

	res, err := m.col.InsertOne(ctx, msg)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		msg.ID = id
	}
	return nil
}

func (m *MongoSupportRepository) FindByConversation(ctx context.Context, conversationID string) ([]*model.SupportMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cur, err := m.col.Find(ctx, bson.M{"conversationId": conversationID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*model.SupportMessage
	for cur.Next(ctx) {
		var v model.SupportMessage
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, &v)
	}
	return out, cur.Err()
}

// Conversations arma la bandeja del admin: agrupa por conversación,
// se queda con el último mensaje y cuenta los no leídos del cliente.
func (m *MongoSupportRepository) Conversations(ctx context.Context) ([]*model.ConversationSummary, error) {
	isCustomer := bson.D{{Key: "$eq", Value: bson.A{"$senderType", "customer"}}}

	pipeline := mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$conversationId"},
			{Key: "lastMessage", Value: bson.D{{Key: "$first", Value: "$message"}}},
			{Key: "lastMessageAt", Value: bson.D{{Key: "$first", Value: "$createdAt"}}},
			{Key: "lastSender", Value: bson.D{{Key: "$first", Value: "$senderType"}}},
			{Key: "customerEmail", Value: bson.D{{Key: "$first", Value: bson.D{
				{Key: "$cond", Value: bson.A{isCustomer, "$senderEmail", nil}},
			}}}},
			{Key: "customerName", Value: bson.D{{Key: "$first", Value: bson.D{
				{Key: "$cond", Value: bson.A{isCustomer, "$senderName", nil}},
			}}}},
			{Key: "unreadCount", Value: bson.D{{Key: "$sum", Value: bson.D{
				{Key: "$cond", Value: bson.A{
					bson.D{{Key: "$and", Value: bson.A{
						isCustomer,
						bson.D{{Key: "$eq", Value: bson.A{"$isRead", false}}},
					}}},
					1,
					0,
				}},
			}}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "lastMessageAt", Value: -1}}}},
	}

	cur, err := m.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*model.ConversationSummary
	for cur.Next(ctx) {
		var v model.ConversationSummary
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, &v)
	}
	return out, cur.Err()
}

// MarkConversationRead marca como leídos los mensajes del cliente.
func (m *MongoSupportRepository) MarkConversationRead(ctx context.Context, conversationID string) error {
	_, err := m.col.UpdateMany(ctx,
		bson.M{"conversationId": conversationID, "senderType": "customer", "isRead": false},
		bson.M{"$set": bson.M{"isRead": true}},
	)
	return err
}
