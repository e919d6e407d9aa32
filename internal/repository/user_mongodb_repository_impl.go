package repository

import (
	"context"

	"github.com/AsadUllahBilal/TechThrive/internal/domain"
	pkgdto "github.com/AsadUllahBilal/TechThrive/pkg/dto"
	"github.com/AsadUllahBilal/TechThrive/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBUserRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewUserRepository(db *mongo.Database) UserRepository {
	return &MongoDBUserRepositoryImpl{db: db}
}

func (r *MongoDBUserRepositoryImpl) AddUser(ctx context.Context, data domain.User) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("users").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddUser").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBUserRepositoryImpl) GetUserByEmail(ctx context.Context, email string) (user domain.User, err error) {
	filter := bson.D{{Key: "email", Value: email}}

	err = r.db.Collection("users").FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return user, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUserByEmail").Msg("")

		return user, err
	}
	return user, nil
}

func (r *MongoDBUserRepositoryImpl) GetUserByID(ctx context.Context, id string) (user domain.User, err error) {
	userID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUserByID").Msg("")
		return user, errs.ErrNotFound
	}

	filter := bson.D{{Key: "_id", Value: userID}}

	err = r.db.Collection("users").FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return user, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUserByID").Msg("")

		return user, err
	}
	return user, nil
}

func (r *MongoDBUserRepositoryImpl) MarkUserVerified(ctx context.Context, id string) (err error) {
	userID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "MarkUserVerified").Msg("")
		return errs.ErrNotFound
	}

	filter := bson.D{{Key: "_id", Value: userID}}
	update := bson.D{
		{Key: "$set", Value: bson.D{{Key: "verified", Value: true}}},
		{Key: "$unset", Value: bson.D{
			{Key: "otp", Value: ""},
			{Key: "otp_expires_at", Value: ""},
		}},
	}

	result, err := r.db.Collection("users").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "MarkUserVerified").Msg("Failed to update user")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *MongoDBUserRepositoryImpl) GetUsers(ctx context.Context, param pkgdto.Filter) (data []domain.User, err error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if param.Limit != 0 && param.Page != 0 {
		opts = opts.SetSkip((int64(param.Page) - 1) * int64(param.Limit)).SetLimit(int64(param.Limit))
	}

	cursor, err := r.db.Collection("users").Find(ctx, bson.D{}, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUsers").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUsers").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBUserRepositoryImpl) CountUsers(ctx context.Context) (count int64, err error) {
	count, err = r.db.Collection("users").CountDocuments(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountUsers").Msg("")
	}

	return
}

func (r *MongoDBUserRepositoryImpl) CountUsersSince(ctx context.Context, since int64) (count int64, err error) {
	filter := bson.D{{Key: "created_at", Value: bson.D{{Key: "$gte", Value: since}}}}
	count, err = r.db.Collection("users").CountDocuments(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountUsersSince").Msg("")
	}

	return
}
