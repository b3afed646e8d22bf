package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/JoanixX/high-concurrency-api/internal/core/domain"
)

const usersCollection = "users"

// MongoUserRepository implements the UserRepository port.
type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(usersCollection)}
}

type mongoUser struct {
	ID           string    `bson:"_id"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	Name         string    `bson:"name,omitempty"`
	CreatedAt    time.Time `bson:"created_at"`
}

func (r *MongoUserRepository) Save(ctx context.Context, id, email, passwordHash, name string) error {
	doc := mongoUser{
		ID:           id,
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		CreatedAt:    time.Now().UTC(),
	}

	_, err := r.coll.InsertOne(ctx, doc)
	return mapStorageError("insert user", err)
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.UserRecord, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, mapStorageError("find user", err)
	}

	return &domain.UserRecord{
		ID:           mu.ID,
		PasswordHash: mu.PasswordHash,
		Name:         mu.Name,
	}, nil
}
