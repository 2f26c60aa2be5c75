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

// Mongo implementation
type MongoOrderRepository struct {
	col *mongo.Collection
}

func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{col: db.Collection("orders")}
}

func (m *MongoOrderRepository) Create(ctx context.Context, o *model.Order) error {
	now := time.Now().UTC()
	o.CreatedAt = now
	o.UpdatedAt = now

	res, err := m.col.InsertOne(ctx, o)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		o.ID = id
	}
	return nil
}

// Save reemplaza el documento completo. El estado en memoria es la fuente
// de verdad durante el request, igual que el order.save() original.
func (m *MongoOrderRepository) Save(ctx context.Context, o *model.Order) error {
	o.UpdatedAt = time.Now().UTC()
	res, err := m.col.ReplaceOne(ctx, bson.M{"_id": o.ID}, o)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoOrderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Order, error) {
	var res model.Order
	err := m.col.FindOne(ctx, bson.M{"_id": id}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	return &res, err
}

func (m *MongoOrderRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*model.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := m.col.Find(ctx, bson.M{"user": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*model.Order
	for cur.Next(ctx) {
		var v model.Order
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, &v)
	}
	return out, cur.Err()
}

func (m *MongoOrderRepository) FindAll(ctx context.Context) ([]*model.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := m.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*model.Order
	for cur.Next(ctx) {
		var v model.Order
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, &v)
	}
	return out, cur.Err()
}
