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

type MongoStockHistoryRepository struct {
	col *mongo.Collection
}

func NewMongoStockHistoryRepository(db *mongo.Database) *MongoStockHistoryRepository {
	return &MongoStockHistoryRepository{col: db.Collection("stock_histories")}
}

func (m *MongoStockHistoryRepository) Create(ctx context.Context, h *model.StockHistory) error {
	h.CreatedAt = time.Now().UTC()

	res, err := m.col.InsertOne(ctx, h)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		h.ID = id
	}
	return nil
}

func (m *MongoStockHistoryRepository) FindByProduct(ctx context.Context, productID primitive.ObjectID) ([]*model.StockHistory, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := m.col.Find(ctx, bson.M{"product": productID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*model.StockHistory
	for cur.Next(ctx) {
		var v model.StockHistory
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, &v)
	}
	return out, cur.Err()
}
