package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/JoanixX/high-concurrency-api/internal/core/domain"
)

const betsCollection = "bets"

// MongoBetRepository implements the BetRepository port.
type MongoBetRepository struct {
	coll *mongo.Collection
}

func NewBetRepository(db *mongo.Database) *MongoBetRepository {
	return &MongoBetRepository{coll: db.Collection(betsCollection)}
}

type mongoBet struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	MatchID   string    `bson:"match_id"`
	Amount    float64   `bson:"amount"`
	Odds      float64   `bson:"odds"`
	Status    string    `bson:"status"`
	CreatedAt time.Time `bson:"created_at"`
}

func (r *MongoBetRepository) Save(ctx context.Context, id string, ticket domain.BetTicket, status domain.BetStatus) error {
	doc := mongoBet{
		ID:        id,
		UserID:    ticket.UserID,
		MatchID:   ticket.MatchID,
		Amount:    ticket.Amount,
		Odds:      ticket.Odds,
		Status:    string(status),
		CreatedAt: time.Now().UTC(),
	}

	_, err := r.coll.InsertOne(ctx, doc)
	return mapStorageError("insert bet", err)
}

func (r *MongoBetRepository) FindByID(ctx context.Context, id string) (*domain.BetTicket, error) {
	var mb mongoBet
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, mapStorageError("find bet", err)
	}

	return &domain.BetTicket{
		UserID:  mb.UserID,
		MatchID: mb.MatchID,
		Amount:  mb.Amount,
		Odds:    mb.Odds,
	}, nil
}
