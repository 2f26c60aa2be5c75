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

type MongoUserRepository struct {
	col *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{col: db.Collection("users")}
}

func (m *MongoUserRepository) Create(ctx context.Context, u *model.User) error {
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	res, err := m.col.InsertOne(ctx, u)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = id
	}
	return nil
}

func (m *MongoUserRepository) Save(ctx context.Context, u *model.User) error {
	u.UpdatedAt = time.Now().UTC()
	res, err := m.col.ReplaceOne(ctx, bson.M{"_id": u.ID}, u)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	var res model.User
	err := m.col.FindOne(ctx, bson.M{"_id": id}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	return &res, err
}

func (m *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var res model.User
	err := m.col.FindOne(ctx, bson.M{"email": email}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	return &res, err
}

func (m *MongoUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var res model.User
	err := m.col.FindOne(ctx, bson.M{"username": username}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	return &res, err
}

func (m *MongoUserRepository) FindAll(ctx context.Context) ([]*model.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := m.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*model.User
	for cur.Next(ctx) {
		var v model.User
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, &v)
	}
	return out, cur.Err()
}

func (m *MongoUserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := m.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
