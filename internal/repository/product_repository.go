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

type MongoProductRepository struct {
	col *mongo.Collection
}

func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{col: db.Collection("products")}
}

func (m *MongoProductRepository) Create(ctx context.Context, p *model.Product) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	res, err := m.col.InsertOne(ctx, p)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = id
	}
	return nil
}

func (m *MongoProductRepository) Save(ctx context.Context, p *model.Product) error {
	p.UpdatedAt = time.Now().UTC()
	res, err := m.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Product, error) {
	var res model.Product
	err := m.col.FindOne(ctx, bson.M{"_id": id}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	return &res, err
}

// FindPage devuelve una página del catálogo ordenada por fecha de alta.
func (m *MongoProductRepository) FindPage(ctx context.Context, page, limit int) ([]*model.Product, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	total, err := m.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cur, err := m.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var out []*model.Product
	for cur.Next(ctx) {
		var v model.Product
		if err := cur.Decode(&v); err != nil {
			return nil, 0, err
		}
		out = append(out, &v)
	}
	return out, total, cur.Err()
}

func (m *MongoProductRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := m.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
