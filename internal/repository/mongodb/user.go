package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/congrega/attendance-backend/internal/domain/auth"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type userDocument struct {
	ID        string    `bson:"id"`
	Username  string    `bson:"username"`
	Password  string    `bson:"password"`
	CreatedAt time.Time `bson:"created_at"`
}

type userRepositoryImpl struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) auth.UserRepository {
	return &userRepositoryImpl{col: db.Collection("users")}
}

// FindByUsername implements auth.UserRepository.
func (r *userRepositoryImpl) FindByUsername(ctx context.Context, username string) (*auth.User, error) {
	var doc userDocument
	err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &auth.User{
		ID:        doc.ID,
		Username:  doc.Username,
		Password:  doc.Password,
		CreatedAt: doc.CreatedAt,
	}, nil
}

// Create implements auth.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, u auth.User) error {
	_, err := r.col.InsertOne(ctx, userDocument{
		ID:        u.ID,
		Username:  u.Username,
		Password:  u.Password,
		CreatedAt: u.CreatedAt,
	})
	return err
}
