package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bankstack/bankstack/internal/core/domain"
)

const loginAttemptsCollection = "login_attempts"

// MongoLoginAttemptRepository appends to the login audit log. The collection
// is insert-only; nothing in the codebase updates or deletes these records.
type MongoLoginAttemptRepository struct {
	coll *mongo.Collection
}

func NewLoginAttemptRepository(db *mongo.Database) *MongoLoginAttemptRepository {
	return &MongoLoginAttemptRepository{coll: db.Collection(loginAttemptsCollection)}
}

type mongoLoginAttempt struct {
	Email     string `bson:"email"`
	SourceIP  string `bson:"source_ip"`
	Outcome   string `bson:"outcome"`
	Timestamp int64  `bson:"timestamp"`
}

func (r *MongoLoginAttemptRepository) Append(ctx context.Context, attempt domain.LoginAttempt) error {
	doc := mongoLoginAttempt{
		Email:     attempt.Email,
		SourceIP:  attempt.SourceIP,
		Outcome:   string(attempt.Outcome),
		Timestamp: attempt.Timestamp.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("append login attempt: %w", err)
	}
	return nil
}
