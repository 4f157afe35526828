package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"lovemypet-backend/internal/apperr"
	authdomain "lovemypet-backend/internal/auth/domain"

	"github.com/google/uuid"
)

const usersCollection = "users"

// userRepository implements UserRepository on a mongo collection.
type userRepository struct {
	users *mongo.Collection
}

// NewUserRepository creates a new instance of userRepository
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{
		users: db.Collection(usersCollection),
	}
}

func (r *userRepository) Create(ctx context.Context, user *authdomain.User) error {
	user.ID = uuid.New().String()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	if _, err := r.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return authdomain.ErrDuplicateEmail
		}
		return apperr.Store(err)
	}
	return nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*authdomain.User, error) {
	var user authdomain.User
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, apperr.Store(err)
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*authdomain.User, error) {
	var user authdomain.User
	err := r.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, apperr.Store(err)
	}
	return &user, nil
}

func (r *userRepository) UpdateByID(ctx context.Context, id string, patch *authdomain.UserUpdate) (*authdomain.User, error) {
	update := bson.M{"$set": patch, "$currentDate": bson.M{"updatedAt": true}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user authdomain.User
	err := r.users.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, authdomain.ErrDuplicateEmail
		}
		return nil, apperr.Store(err)
	}
	return &user, nil
}

func (r *userRepository) DeleteByID(ctx context.Context, id string) error {
	res, err := r.users.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperr.Store(err)
	}
	if res.DeletedCount == 0 {
		return authdomain.ErrUserNotFound
	}
	return nil
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
